package auth

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sudokuGo/config"
	"sudokuGo/store"
)

var codeRe = regexp.MustCompile(`<strong>(\d{6})</strong>`)

// fakeMailer records outgoing mail so tests can read the mailed code.
type fakeMailer struct {
	fail     bool
	sent     int
	lastTo   string
	lastBody string
}

func (m *fakeMailer) Send(toEmail, subject, body string) error {
	if m.fail {
		return errors.New("smtp connection refused")
	}
	m.sent++
	m.lastTo = toEmail
	m.lastBody = body
	return nil
}

func (m *fakeMailer) lastCode(t *testing.T) string {
	t.Helper()
	match := codeRe.FindStringSubmatch(m.lastBody)
	require.Len(t, match, 2, "no code found in mail body")
	return match[1]
}

func newTestService(t *testing.T) (*Service, *fakeMailer) {
	t.Helper()
	accounts := store.NewMemoryAccountStore()
	codes := NewCodeManager(store.NewMemoryCodeStore(), accounts)
	tokens := NewTokenIssuer("test-secret", 30*time.Minute)
	mailer := &fakeMailer{}
	cfg := config.Config{
		RegistrationCodeTTL:  10 * time.Minute,
		PasswordResetCodeTTL: 15 * time.Minute,
	}
	return NewService(accounts, codes, tokens, mailer, cfg), mailer
}

func TestRegisterConfirmLogin(t *testing.T) {
	svc, mailer := newTestService(t)

	account, token, err := svc.Register("alice", "a@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice", account.Username)
	require.Equal(t, "a@x.com", account.Email)
	require.Equal(t, 1, mailer.sent)
	require.Equal(t, "a@x.com", mailer.lastTo)

	require.NoError(t, svc.ConfirmRegistration("a@x.com", mailer.lastCode(t)))

	_, _, err = svc.Login("alice", "p1")
	require.NoError(t, err)
	_, _, err = svc.Login("a@x.com", "p1")
	require.NoError(t, err)
	_, _, err = svc.Login("alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("nobody", "p1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register("alice", "a@x.com", "p1")
	require.NoError(t, err)

	_, _, err = svc.Register("bob", "a@x.com", "p2")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// Email comparison ignores case.
	_, _, err = svc.Register("carol", "A@X.COM", "p3")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	_, _, err = svc.Register("alice", "b@x.com", "p4")
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegisterMailFailureSurfaces(t *testing.T) {
	svc, mailer := newTestService(t)
	mailer.fail = true

	_, _, err := svc.Register("alice", "a@x.com", "p1")
	require.ErrorIs(t, err, ErrNotificationDelivery)
}

func TestConfirmRegistrationReplayFails(t *testing.T) {
	svc, mailer := newTestService(t)

	_, _, err := svc.Register("alice", "a@x.com", "p1")
	require.NoError(t, err)
	code := mailer.lastCode(t)

	require.NoError(t, svc.ConfirmRegistration("a@x.com", code))
	require.ErrorIs(t, svc.ConfirmRegistration("a@x.com", code), ErrInvalidCode)
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, mailer := newTestService(t)

	_, _, err := svc.Register("alice", "a@x.com", "p1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.ForgotPassword("unknown@x.com"), ErrUnknownEmail)

	require.NoError(t, svc.ForgotPassword("a@x.com"))
	code := mailer.lastCode(t)

	// The probe may run repeatedly without burning the code.
	require.NoError(t, svc.VerifyResetCode("a@x.com", code))
	require.NoError(t, svc.VerifyResetCode("a@x.com", code))

	require.NoError(t, svc.ResetPassword("a@x.com", code, "p2"))

	_, _, err = svc.Login("alice", "p2")
	require.NoError(t, err)
	_, _, err = svc.Login("alice", "p1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// The reset consumed the code, both for another reset and the probe.
	require.ErrorIs(t, svc.ResetPassword("a@x.com", code, "p3"), ErrInvalidCode)
	require.ErrorIs(t, svc.VerifyResetCode("a@x.com", code), ErrInvalidCode)
}

func TestCurrentAccount(t *testing.T) {
	svc, _ := newTestService(t)

	account, token, err := svc.Register("alice", "a@x.com", "p1")
	require.NoError(t, err)

	got, err := svc.CurrentAccount(token)
	require.NoError(t, err)
	require.Equal(t, account.ID, got.ID)

	_, err = svc.CurrentAccount("garbage")
	require.ErrorIs(t, err, ErrUnauthenticated)

	ghost, err := svc.tokens.Issue("ghost@x.com", "ghost")
	require.NoError(t, err)
	_, err = svc.CurrentAccount(ghost)
	require.ErrorIs(t, err, ErrUnknownSubject)
}
