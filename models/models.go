package models

import (
	"time"

	"sudokuGo/sudoku"
)

// Account represents a registered player.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never sent back to the frontend
}

// GameSession represents one saved puzzle belonging to an account.
// Board holds the player's entries, InitialPuzzle the starting clues and
// Solution the unique correct fill. Cells that are clues in InitialPuzzle
// are never overwritten in Board by the frontend.
type GameSession struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Board         sudoku.Grid `json:"board"`
	InitialPuzzle sudoku.Grid `json:"initial_puzzle"`
	Solution      sudoku.Grid `json:"solution"`
	TimePlayed    int         `json:"time_played"`
	Level         string      `json:"level"`
	CreatedAt     time.Time   `json:"created_at"`
	IsHidden      bool        `json:"is_hidden"`
}

// Verification code purposes. The purpose is part of the lookup key, so the
// same code value may exist for both purposes at once.
const (
	PurposeRegistration  = "registration"
	PurposePasswordReset = "password_reset"
)

// VerificationCode is a short-lived, single-use numeric credential mailed to
// an account's email address.
type VerificationCode struct {
	UserID    string    `json:"user_id"`
	Code      string    `json:"code"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
