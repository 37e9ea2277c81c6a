package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sudokuGo/models"
	"sudokuGo/sudoku"
)

// Postgres stores persist grids as JSON text columns. Schemas are created on
// construction so a fresh database works out of the box.

type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) (*PostgresAccountStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	s := &PostgresAccountStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresAccountStore) ensureSchema() error {
	const q = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
)`
	if _, err := s.db.Exec(q); err != nil {
		return fmt.Errorf("ensure accounts schema: %w", err)
	}
	return nil
}

func (s *PostgresAccountStore) Create(a models.Account) error {
	const q = `INSERT INTO accounts (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`
	if _, err := s.db.Exec(q, a.ID, a.Username, a.Email, a.PasswordHash); err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (s *PostgresAccountStore) getBy(field, value string) (models.Account, error) {
	var a models.Account
	q := fmt.Sprintf(`SELECT id, username, email, password_hash FROM accounts WHERE %s = $1`, field)
	err := s.db.QueryRow(q, value).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("query account by %s: %w", field, err)
	}
	return a, nil
}

func (s *PostgresAccountStore) GetByID(id string) (models.Account, error) {
	return s.getBy("id", id)
}

func (s *PostgresAccountStore) GetByUsername(username string) (models.Account, error) {
	return s.getBy("username", username)
}

func (s *PostgresAccountStore) GetByEmail(email string) (models.Account, error) {
	return s.getBy("email", email)
}

func (s *PostgresAccountStore) UpdatePasswordHash(id, hash string) error {
	const q = `UPDATE accounts SET password_hash = $1 WHERE id = $2`
	res, err := s.db.Exec(q, hash, id)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type PostgresGameStore struct {
	db *sql.DB
}

func NewPostgresGameStore(db *sql.DB) (*PostgresGameStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	s := &PostgresGameStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresGameStore) ensureSchema() error {
	const q = `
CREATE TABLE IF NOT EXISTS game_sessions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES accounts(id),
	board TEXT NOT NULL,
	initial_puzzle TEXT NOT NULL,
	solution TEXT NOT NULL,
	time_played INTEGER NOT NULL DEFAULT 0,
	level TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	is_hidden BOOLEAN NOT NULL DEFAULT TRUE
)`
	if _, err := s.db.Exec(q); err != nil {
		return fmt.Errorf("ensure game_sessions schema: %w", err)
	}
	return nil
}

func encodeGrid(g sudoku.Grid) (string, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("encode grid: %w", err)
	}
	return string(b), nil
}

func decodeGrid(raw string, g *sudoku.Grid) error {
	if err := json.Unmarshal([]byte(raw), g); err != nil {
		return fmt.Errorf("decode grid: %w", err)
	}
	return nil
}

func (s *PostgresGameStore) Create(g models.GameSession) error {
	board, err := encodeGrid(g.Board)
	if err != nil {
		return err
	}
	initial, err := encodeGrid(g.InitialPuzzle)
	if err != nil {
		return err
	}
	solution, err := encodeGrid(g.Solution)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO game_sessions (id, user_id, board, initial_puzzle, solution, time_played, level, created_at, is_hidden)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.db.Exec(q, g.ID, g.UserID, board, initial, solution, g.TimePlayed, g.Level, g.CreatedAt, g.IsHidden); err != nil {
		return fmt.Errorf("insert game session: %w", err)
	}
	return nil
}

func scanGame(row interface{ Scan(...any) error }) (models.GameSession, error) {
	var g models.GameSession
	var board, initial, solution string
	err := row.Scan(&g.ID, &g.UserID, &board, &initial, &solution, &g.TimePlayed, &g.Level, &g.CreatedAt, &g.IsHidden)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameSession{}, ErrNotFound
	}
	if err != nil {
		return models.GameSession{}, fmt.Errorf("scan game session: %w", err)
	}
	if err := decodeGrid(board, &g.Board); err != nil {
		return models.GameSession{}, err
	}
	if err := decodeGrid(initial, &g.InitialPuzzle); err != nil {
		return models.GameSession{}, err
	}
	if err := decodeGrid(solution, &g.Solution); err != nil {
		return models.GameSession{}, err
	}
	return g, nil
}

const gameColumns = `id, user_id, board, initial_puzzle, solution, time_played, level, created_at, is_hidden`

func (s *PostgresGameStore) GetByID(id string) (models.GameSession, error) {
	q := `SELECT ` + gameColumns + ` FROM game_sessions WHERE id = $1`
	return scanGame(s.db.QueryRow(q, id))
}

func (s *PostgresGameStore) ListVisibleByUser(userID string) ([]models.GameSession, error) {
	q := `SELECT ` + gameColumns + ` FROM game_sessions WHERE user_id = $1 AND is_hidden = FALSE ORDER BY created_at`
	rows, err := s.db.Query(q, userID)
	if err != nil {
		return nil, fmt.Errorf("list game sessions: %w", err)
	}
	defer rows.Close()

	out := make([]models.GameSession, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list game sessions: %w", err)
	}
	return out, nil
}

func (s *PostgresGameStore) Update(g models.GameSession) error {
	board, err := encodeGrid(g.Board)
	if err != nil {
		return err
	}
	// Last write wins: no version check on purpose, matching the frontend's
	// autosave contract.
	const q = `UPDATE game_sessions SET board = $1, time_played = $2, is_hidden = $3 WHERE id = $4`
	res, err := s.db.Exec(q, board, g.TimePlayed, g.IsHidden, g.ID)
	if err != nil {
		return fmt.Errorf("update game session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update game session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresGameStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM game_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete game session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete game session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type PostgresCodeStore struct {
	db *sql.DB
}

func NewPostgresCodeStore(db *sql.DB) (*PostgresCodeStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	s := &PostgresCodeStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresCodeStore) ensureSchema() error {
	const q = `
CREATE TABLE IF NOT EXISTS verification_codes (
	code TEXT NOT NULL,
	purpose TEXT NOT NULL,
	user_id TEXT NOT NULL REFERENCES accounts(id),
	created_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (code, purpose)
)`
	if _, err := s.db.Exec(q); err != nil {
		return fmt.Errorf("ensure verification_codes schema: %w", err)
	}
	return nil
}

func (s *PostgresCodeStore) Create(c models.VerificationCode) error {
	const q = `
INSERT INTO verification_codes (code, purpose, user_id, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (code, purpose) DO UPDATE
SET user_id = EXCLUDED.user_id,
	created_at = EXCLUDED.created_at,
	expires_at = EXCLUDED.expires_at`
	if _, err := s.db.Exec(q, c.Code, c.Purpose, c.UserID, c.CreatedAt, c.ExpiresAt); err != nil {
		return fmt.Errorf("insert verification code: %w", err)
	}
	return nil
}

func (s *PostgresCodeStore) Get(code, purpose string) (models.VerificationCode, error) {
	var c models.VerificationCode
	const q = `SELECT code, purpose, user_id, created_at, expires_at FROM verification_codes WHERE code = $1 AND purpose = $2`
	err := s.db.QueryRow(q, code, purpose).Scan(&c.Code, &c.Purpose, &c.UserID, &c.CreatedAt, &c.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VerificationCode{}, ErrNotFound
	}
	if err != nil {
		return models.VerificationCode{}, fmt.Errorf("query verification code: %w", err)
	}
	return c, nil
}

// Delete removes the code in a single statement, so of two concurrent
// submissions of the same code exactly one observes the removal.
func (s *PostgresCodeStore) Delete(code, purpose string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM verification_codes WHERE code = $1 AND purpose = $2`, code, purpose)
	if err != nil {
		return false, fmt.Errorf("delete verification code: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete verification code: %w", err)
	}
	return n > 0, nil
}
