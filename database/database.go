package database

import (
	"database/sql"
	"log"
	"time"

	"sudokuGo/auth"
	"sudokuGo/models"
	"sudokuGo/store"
	"sudokuGo/sudoku"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Database connection
func ConnectDB(connStr string) *sql.DB {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	log.Println("Database connected successfully!")
	return db
}

// SeedDemoData inserts a handful of demo players with one saved puzzle each.
// It only runs against an empty accounts table, so restarting the server
// never duplicates data.
func SeedDemoData(db *sql.DB, accounts store.AccountStore, games store.GameStore) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM accounts").Scan(&count)
	if err != nil {
		log.Printf("Error checking for existing data: %v", err)
		return
	}
	if count > 0 {
		log.Println("Data exists. Skipping demo seed.")
		return
	}

	log.Println("Seeding demo data...")
	solution := demoSolution()
	for i := 0; i < 5; i++ {
		password := gofakeit.Password(true, true, true, true, false, 12)
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Printf("Error hashing demo password: %v", err)
			continue
		}

		acc := models.Account{
			ID:           uuid.New().String(),
			Username:     gofakeit.Username(),
			Email:        gofakeit.Email(),
			PasswordHash: hash,
		}
		if err := accounts.Create(acc); err != nil {
			log.Printf("Error creating demo account %s: %v", acc.Username, err)
			continue
		}

		initial := demoPuzzle(solution)
		game := models.GameSession{
			ID:            uuid.New().String(),
			UserID:        acc.ID,
			Board:         initial,
			InitialPuzzle: initial,
			Solution:      solution,
			TimePlayed:    0,
			Level:         "easy",
			CreatedAt:     time.Now().UTC(),
			IsHidden:      false,
		}
		if err := games.Create(game); err != nil {
			log.Printf("Error creating demo game for %s: %v", acc.Username, err)
		}
	}
	log.Println("Demo seed complete.")
}

// demoSolution builds a valid completed grid from the standard shift pattern.
func demoSolution() sudoku.Grid {
	var g sudoku.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = (r*3+r/3+c)%9 + 1
		}
	}
	return g
}

// demoPuzzle blanks out two of every three cells to leave playable clues.
func demoPuzzle(solution sudoku.Grid) sudoku.Grid {
	puzzle := solution
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if (r+c)%3 != 0 {
				puzzle[r][c] = 0
			}
		}
	}
	return puzzle
}
