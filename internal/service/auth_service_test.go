package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/supportly-beer/supportly-backend/internal/config"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/pkg/jwt"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeMailer, *jwt.Manager) {
	t.Helper()
	users := newFakeUserRepo()
	mailer := &fakeMailer{}
	tokens := jwt.NewManager("test-secret", "supportly-backend", time.Hour)
	cfg := config.JWTConfig{
		TwofaTokenTTL: time.Minute,
		EmailTokenTTL: 24 * time.Hour,
		ResetTokenTTL: time.Hour,
	}
	svc := NewAuthService(users, newFakeRoleRepo(), tokens, mailer, cfg, "http://frontend.test")
	return svc, users, mailer, tokens
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestLoginIssuesAccessToken(t *testing.T) {
	svc, users, _, tokens := newAuthFixture(t)
	users.add(domain.UserModel{
		Email:    "jane@example.com",
		Password: hashPassword(t, "hunter2hunter2"),
	})

	result, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, MessageSuccess, result.Message)

	claims, err := tokens.ValidateTokenOfType(result.Token, jwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Subject)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)
	users.add(domain.UserModel{
		Email:    "jane@example.com",
		Password: hashPassword(t, "hunter2hunter2"),
	})

	_, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithTwofaReturnsIntermediateToken(t *testing.T) {
	svc, users, _, tokens := newAuthFixture(t)
	users.add(domain.UserModel{
		Email:        "jane@example.com",
		Password:     hashPassword(t, "hunter2hunter2"),
		TwofaEnabled: true,
		TwofaSecret:  "JBSWY3DPEHPK3PXP",
	})

	result, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, MessageTwofaRequired, result.Message)

	claims, err := tokens.ValidateTokenOfType(result.Token, jwt.TypeTwofa)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Subject)
}

func TestTwofaTradesCodeForAccessToken(t *testing.T) {
	svc, users, _, tokens := newAuthFixture(t)
	secret := "JBSWY3DPEHPK3PXP"
	users.add(domain.UserModel{
		Email:        "jane@example.com",
		Password:     hashPassword(t, "hunter2hunter2"),
		TwofaEnabled: true,
		TwofaSecret:  secret,
	})

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	result, err := svc.Twofa(context.Background(), &domain.TwofaRequest{
		Email: "jane@example.com",
		Token: code,
	})
	require.NoError(t, err)
	assert.Equal(t, MessageSuccess, result.Message)

	_, err = tokens.ValidateTokenOfType(result.Token, jwt.TypeAccess)
	assert.NoError(t, err)
}

func TestTwofaRejectsWrongCode(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)
	users.add(domain.UserModel{
		Email:        "jane@example.com",
		Password:     hashPassword(t, "hunter2hunter2"),
		TwofaEnabled: true,
		TwofaSecret:  "JBSWY3DPEHPK3PXP",
	})

	_, err := svc.Twofa(context.Background(), &domain.TwofaRequest{
		Email: "jane@example.com",
		Token: "000000",
	})
	assert.ErrorIs(t, err, ErrWrongTwofaCode)
}

func TestRegisterCreatesUserAndSendsMail(t *testing.T) {
	svc, users, mailer, _ := newAuthFixture(t)

	err := svc.Register(context.Background(), &domain.CreateUserRequest{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "longenoughpw",
	})
	require.NoError(t, err)

	user, err := users.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.RoleID)
	assert.Equal(t, domain.TwofaSecretUnset, user.TwofaSecret)
	assert.False(t, user.EmailVerified)
	assert.NotEqual(t, "longenoughpw", user.Password)
	assert.Len(t, mailer.validationLinks, 1)
	assert.Contains(t, mailer.validationLinks[0], "http://frontend.test/validate-email?token=")

	err = svc.Register(context.Background(), &domain.CreateUserRequest{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "longenoughpw",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestValidateEmail(t *testing.T) {
	svc, users, _, tokens := newAuthFixture(t)
	user := users.add(domain.UserModel{Email: "jane@example.com"})

	token, err := tokens.GenerateToken(user.ID, user.Email, jwt.TypeEmailVerify, time.Hour)
	require.NoError(t, err)

	err = svc.ValidateEmail(context.Background(), &domain.ValidateEmailRequest{
		Email: "jane@example.com",
		Token: token,
	})
	require.NoError(t, err)

	updated, err := users.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.True(t, updated.EmailVerified)

	err = svc.ValidateEmail(context.Background(), &domain.ValidateEmailRequest{
		Email: "jane@example.com",
		Token: token,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyVerified)
}

func TestValidateEmailResendsOnExpiredToken(t *testing.T) {
	svc, users, mailer, tokens := newAuthFixture(t)
	user := users.add(domain.UserModel{Email: "jane@example.com"})

	expired, err := tokens.GenerateToken(user.ID, user.Email, jwt.TypeEmailVerify, -time.Minute)
	require.NoError(t, err)

	err = svc.ValidateEmail(context.Background(), &domain.ValidateEmailRequest{
		Email: "jane@example.com",
		Token: expired,
	})
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Len(t, mailer.validationLinks, 1)
}

func TestForgotPasswordIsSilentForUnknownAccounts(t *testing.T) {
	svc, _, mailer, _ := newAuthFixture(t)

	err := svc.ForgotPassword(context.Background(), &domain.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	assert.NoError(t, err)
	assert.Empty(t, mailer.resetLinks)
}

func TestResetPassword(t *testing.T) {
	svc, users, _, tokens := newAuthFixture(t)
	user := users.add(domain.UserModel{
		Email:    "jane@example.com",
		Password: hashPassword(t, "oldpassword1"),
	})

	token, err := tokens.GenerateToken(user.ID, user.Email, jwt.TypeReset, time.Hour)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), &domain.ResetPasswordRequest{
		Token:    token,
		Password: "newpassword1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "jane@example.com",
		Password: "newpassword1",
	})
	assert.NoError(t, err)

	// An access token must not pass as a reset token.
	access, _, err := tokens.GenerateAccessToken(user.ID, user.Email)
	require.NoError(t, err)
	err = svc.ResetPassword(context.Background(), &domain.ResetPasswordRequest{
		Token:    access,
		Password: "anotherpassword1",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateReportsTokenState(t *testing.T) {
	svc, users, _, tokens := newAuthFixture(t)
	user := users.add(domain.UserModel{Email: "jane@example.com"})

	token, _, err := tokens.GenerateAccessToken(user.ID, user.Email)
	require.NoError(t, err)

	result, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, result.Successful)

	result, err = svc.Validate(context.Background(), "garbage")
	require.NoError(t, err)
	assert.False(t, result.Successful)
}
