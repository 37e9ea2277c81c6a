package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"sudokuGo/models"
	"sudokuGo/store"
	"sudokuGo/utils"
)

var (
	ErrInvalidCode     = errors.New("invalid verification code")
	ErrExpiredCode     = errors.New("verification code has expired")
	ErrAccountMismatch = errors.New("verification code does not belong to this email")
)

// CodeManager issues and validates the 6-digit verification codes used for
// registration confirmation and password resets. Codes are purpose-scoped:
// the same value may be live for both purposes at once.
type CodeManager struct {
	codes    store.CodeStore
	accounts store.AccountStore
	nowFunc  func() time.Time
}

func NewCodeManager(codes store.CodeStore, accounts store.AccountStore) *CodeManager {
	return &CodeManager{codes: codes, accounts: accounts, nowFunc: time.Now}
}

// Issue stores a fresh random code for the account and returns it.
func (m *CodeManager) Issue(userID, purpose string, ttl time.Duration) (models.VerificationCode, error) {
	value, err := generateCode()
	if err != nil {
		return models.VerificationCode{}, fmt.Errorf("generate code: %w", err)
	}
	now := m.nowFunc()
	code := models.VerificationCode{
		UserID:    userID,
		Code:      value,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := m.codes.Create(code); err != nil {
		return models.VerificationCode{}, err
	}
	return code, nil
}

// Validate checks a submitted code against the store. When consume is true
// the code is deleted as part of validation; the store's delete reports
// whether this caller actually removed the row, so a code can never be
// consumed twice even under concurrent submission.
func (m *CodeManager) Validate(code, purpose, email string, consume bool) (models.Account, error) {
	rec, err := m.codes.Get(code, purpose)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrInvalidCode
	}
	if err != nil {
		return models.Account{}, err
	}

	if m.nowFunc().After(rec.ExpiresAt) {
		return models.Account{}, ErrExpiredCode
	}

	account, err := m.accounts.GetByID(rec.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrAccountMismatch
	}
	if err != nil {
		return models.Account{}, err
	}
	if account.Email != utils.NormalizeEmail(email) {
		return models.Account{}, ErrAccountMismatch
	}

	if consume {
		removed, err := m.codes.Delete(code, purpose)
		if err != nil {
			return models.Account{}, err
		}
		if !removed {
			// Someone else consumed it between our read and delete.
			return models.Account{}, ErrInvalidCode
		}
	}
	return account, nil
}

// generateCode draws a uniformly random 6-digit string, leading zeros kept.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
