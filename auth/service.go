package auth

import (
	"errors"
	"fmt"
	"time"

	"sudokuGo/config"
	"sudokuGo/mail"
	"sudokuGo/models"
	"sudokuGo/store"
	"sudokuGo/utils"

	"github.com/google/uuid"
)

var (
	ErrDuplicateUsername    = errors.New("username already taken")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrUnknownEmail         = errors.New("email not registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnknownSubject       = errors.New("token subject no longer resolves to an account")
	ErrNotificationDelivery = errors.New("could not deliver verification email")
)

// Service implements the account flows: registration, email confirmation,
// login, and password reset. All collaborators are injected; the service
// keeps no mutable state of its own and is safe for concurrent use.
type Service struct {
	accounts store.AccountStore
	codes    *CodeManager
	tokens   *TokenIssuer
	mailer   mail.Mailer

	regTTL   time.Duration
	resetTTL time.Duration
}

func NewService(accounts store.AccountStore, codes *CodeManager, tokens *TokenIssuer, mailer mail.Mailer, cfg config.Config) *Service {
	return &Service{
		accounts: accounts,
		codes:    codes,
		tokens:   tokens,
		mailer:   mailer,
		regTTL:   cfg.RegistrationCodeTTL,
		resetTTL: cfg.PasswordResetCodeTTL,
	}
}

// Register creates the account, mails a registration code and returns a
// session token so the frontend can proceed while the user confirms.
func (s *Service) Register(username, email, password string) (models.Account, string, error) {
	email = utils.NormalizeEmail(email)

	if _, err := s.accounts.GetByEmail(email); err == nil {
		return models.Account{}, "", ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.Account{}, "", err
	}
	if _, err := s.accounts.GetByUsername(username); err == nil {
		return models.Account{}, "", ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.Account{}, "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.Account{}, "", fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(account); err != nil {
		return models.Account{}, "", err
	}

	code, err := s.codes.Issue(account.ID, models.PurposeRegistration, s.regTTL)
	if err != nil {
		return models.Account{}, "", err
	}
	if err := s.sendCode(account.Email, code); err != nil {
		return models.Account{}, "", err
	}

	token, err := s.tokens.Issue(account.Email, account.Username)
	if err != nil {
		return models.Account{}, "", fmt.Errorf("issue token: %w", err)
	}
	return account, token, nil
}

// ConfirmRegistration consumes the registration code. The code is gone after
// the first success, a replay fails with ErrInvalidCode.
func (s *Service) ConfirmRegistration(email, code string) error {
	_, err := s.codes.Validate(code, models.PurposeRegistration, email, true)
	return err
}

// VerifyResetCode is the pre-reset probe. It applies the same matching and
// expiry rules as ResetPassword but leaves the code in place, so probing
// never burns the code the actual reset still needs.
func (s *Service) VerifyResetCode(email, code string) error {
	_, err := s.codes.Validate(code, models.PurposePasswordReset, email, false)
	return err
}

// Login accepts a username or an email address. The error never reveals
// which half of the credentials was wrong.
func (s *Service) Login(usernameOrEmail, password string) (models.Account, string, error) {
	account, err := s.accounts.GetByEmail(utils.NormalizeEmail(usernameOrEmail))
	if errors.Is(err, store.ErrNotFound) {
		account, err = s.accounts.GetByUsername(usernameOrEmail)
	}
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.Account{}, "", err
	}

	if !CheckPassword(account.PasswordHash, password) {
		return models.Account{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Email, account.Username)
	if err != nil {
		return models.Account{}, "", fmt.Errorf("issue token: %w", err)
	}
	return account, token, nil
}

// ForgotPassword issues a reset code and mails it.
func (s *Service) ForgotPassword(email string) error {
	email = utils.NormalizeEmail(email)
	account, err := s.accounts.GetByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUnknownEmail
	}
	if err != nil {
		return err
	}

	code, err := s.codes.Issue(account.ID, models.PurposePasswordReset, s.resetTTL)
	if err != nil {
		return err
	}
	return s.sendCode(account.Email, code)
}

// ResetPassword consumes the reset code, then replaces the password hash.
// Consumption happens first so the code can never authorize two resets.
func (s *Service) ResetPassword(email, code, newPassword string) error {
	account, err := s.codes.Validate(code, models.PurposePasswordReset, email, true)
	if err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.accounts.UpdatePasswordHash(account.ID, hash)
}

// CurrentAccount resolves a Bearer token to the account it identifies.
func (s *Service) CurrentAccount(token string) (models.Account, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return models.Account{}, err
	}
	account, err := s.accounts.GetByEmail(claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrUnknownSubject
	}
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (s *Service) sendCode(email string, code models.VerificationCode) error {
	ttl := code.ExpiresAt.Sub(code.CreatedAt)
	subject, body := mail.VerificationEmail(code.Code, code.Purpose, ttl)
	if err := s.mailer.Send(email, subject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationDelivery, err)
	}
	return nil
}
