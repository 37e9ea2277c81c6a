package auth

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sudokuGo/models"
	"sudokuGo/store"
)

func newTestCodeManager(t *testing.T) (*CodeManager, models.Account) {
	t.Helper()
	accounts := store.NewMemoryAccountStore()
	account := models.Account{ID: "acc-1", Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, accounts.Create(account))
	return NewCodeManager(store.NewMemoryCodeStore(), accounts), account
}

func TestIssueProducesSixDigits(t *testing.T) {
	m, account := newTestCodeManager(t)
	now := time.Now()
	m.nowFunc = func() time.Time { return now }

	code, err := m.Issue(account.ID, models.PurposeRegistration, 10*time.Minute)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^\d{6}$`), code.Code)
	require.Equal(t, now.Add(10*time.Minute), code.ExpiresAt)
	require.Equal(t, account.ID, code.UserID)
}

func TestValidateConsumesExactlyOnce(t *testing.T) {
	m, account := newTestCodeManager(t)

	code, err := m.Issue(account.ID, models.PurposeRegistration, 10*time.Minute)
	require.NoError(t, err)

	got, err := m.Validate(code.Code, models.PurposeRegistration, account.Email, true)
	require.NoError(t, err)
	require.Equal(t, account.ID, got.ID)

	_, err = m.Validate(code.Code, models.PurposeRegistration, account.Email, true)
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyCode_ProbeDoesNotConsume(t *testing.T) {
	m, account := newTestCodeManager(t)

	code, err := m.Issue(account.ID, models.PurposePasswordReset, 15*time.Minute)
	require.NoError(t, err)

	// Probing any number of times leaves the code usable.
	for i := 0; i < 3; i++ {
		_, err = m.Validate(code.Code, models.PurposePasswordReset, account.Email, false)
		require.NoError(t, err)
	}

	// The finalizing call still consumes it.
	_, err = m.Validate(code.Code, models.PurposePasswordReset, account.Email, true)
	require.NoError(t, err)
	_, err = m.Validate(code.Code, models.PurposePasswordReset, account.Email, false)
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestValidateExpiredCode(t *testing.T) {
	m, account := newTestCodeManager(t)
	now := time.Now()
	m.nowFunc = func() time.Time { return now }

	code, err := m.Issue(account.ID, models.PurposeRegistration, 10*time.Minute)
	require.NoError(t, err)

	m.nowFunc = func() time.Time { return now.Add(10*time.Minute + time.Second) }
	_, err = m.Validate(code.Code, models.PurposeRegistration, account.Email, true)
	require.ErrorIs(t, err, ErrExpiredCode)
}

func TestValidateAccountMismatch(t *testing.T) {
	m, account := newTestCodeManager(t)

	code, err := m.Issue(account.ID, models.PurposeRegistration, 10*time.Minute)
	require.NoError(t, err)

	_, err = m.Validate(code.Code, models.PurposeRegistration, "someone-else@x.com", true)
	require.ErrorIs(t, err, ErrAccountMismatch)

	// The failed attempt must not have burned the code.
	_, err = m.Validate(code.Code, models.PurposeRegistration, account.Email, true)
	require.NoError(t, err)
}

func TestValidatePurposeIsPartOfTheKey(t *testing.T) {
	m, account := newTestCodeManager(t)

	code, err := m.Issue(account.ID, models.PurposeRegistration, 10*time.Minute)
	require.NoError(t, err)

	_, err = m.Validate(code.Code, models.PurposePasswordReset, account.Email, true)
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestValidateEmailIsCaseInsensitive(t *testing.T) {
	m, account := newTestCodeManager(t)

	code, err := m.Issue(account.ID, models.PurposeRegistration, 10*time.Minute)
	require.NoError(t, err)

	_, err = m.Validate(code.Code, models.PurposeRegistration, "A@X.com", true)
	require.NoError(t, err)
}
