package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sudokuGo/models"
)

func TestVerificationEmailRegistration(t *testing.T) {
	subject, body := VerificationEmail("042317", models.PurposeRegistration, 10*time.Minute)

	require.Equal(t, "Your registration verification code", subject)
	require.Contains(t, body, "<strong>042317</strong>")
	require.Contains(t, body, "registration request")
	require.Contains(t, body, "expires in 10 minutes")
}

func TestVerificationEmailPasswordReset(t *testing.T) {
	subject, body := VerificationEmail("900001", models.PurposePasswordReset, 15*time.Minute)

	require.Equal(t, "Your password reset verification code", subject)
	require.Contains(t, body, "<strong>900001</strong>")
	require.Contains(t, body, "password reset request")
	require.Contains(t, body, "expires in 15 minutes")
}
