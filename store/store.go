package store

import (
	"errors"

	"sudokuGo/models"
)

// ErrNotFound is returned when no record matches the lookup key.
var ErrNotFound = errors.New("record not found")

// AccountStore persists player accounts.
type AccountStore interface {
	Create(a models.Account) error
	GetByID(id string) (models.Account, error)
	GetByUsername(username string) (models.Account, error)
	GetByEmail(email string) (models.Account, error)
	UpdatePasswordHash(id, hash string) error
}

// GameStore persists saved puzzle sessions. Update overwrites the mutable
// fields wholesale; concurrent updates to the same session are
// last-write-wins, there is no version column.
type GameStore interface {
	Create(g models.GameSession) error
	GetByID(id string) (models.GameSession, error)
	ListVisibleByUser(userID string) ([]models.GameSession, error)
	Update(g models.GameSession) error
	Delete(id string) error
}

// CodeStore persists verification codes. The (code, purpose) pair is the
// lookup key. Delete reports whether a row was actually removed so callers
// can enforce single use under concurrent submissions: only one of two
// racing deletes sees true.
type CodeStore interface {
	Create(c models.VerificationCode) error
	Get(code, purpose string) (models.VerificationCode, error)
	Delete(code, purpose string) (bool, error)
}
