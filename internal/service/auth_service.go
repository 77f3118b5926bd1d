package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"

	"github.com/supportly-beer/supportly-backend/internal/audit"
	"github.com/supportly-beer/supportly-backend/internal/config"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/mail"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/internal/twofa"
	"github.com/supportly-beer/supportly-backend/pkg/jwt"
	"github.com/supportly-beer/supportly-backend/pkg/log"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrWrongTwofaCode       = errors.New("two-factor code is wrong")
	ErrUserExists           = errors.New("user already exists")
	ErrEmailAlreadyVerified = errors.New("email already verified")
	ErrInvalidToken         = errors.New("invalid token")
	ErrExpiredToken         = errors.New("token has expired")
)

// Login responses.
const (
	MessageSuccess       = "success"
	MessageTwofaRequired = "twofa_required"
)

// authServiceImpl implements AuthService.
type authServiceImpl struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	tokens *jwt.Manager
	mailer mail.Mailer
	cfg    config.JWTConfig
	// Base URL of the frontend, used to build mail links.
	frontendURL string
}

// NewAuthService creates a new auth service.
func NewAuthService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	tokens *jwt.Manager,
	mailer mail.Mailer,
	cfg config.JWTConfig,
	frontendURL string,
) AuthService {
	return &authServiceImpl{
		users:       users,
		roles:       roles,
		tokens:      tokens,
		mailer:      mailer,
		cfg:         cfg,
		frontendURL: frontendURL,
	}
}

// Login checks the credentials. Users with two-factor auth enabled get
// a short-lived twofa token to trade in via Twofa; everyone else gets
// an access token directly.
func (s *authServiceImpl) Login(ctx context.Context, req *domain.LoginRequest) (*domain.TokenResponse, error) {
	l := log.Ctx(ctx)

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		audit.LogWithDetail(ctx, audit.ActionLogin, user.ID, req.Email, "login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	if user.TwofaEnabled {
		token, err := s.tokens.GenerateToken(user.ID, user.Email, jwt.TypeTwofa, s.cfg.TwofaTokenTTL)
		if err != nil {
			l.Error().Err(err).Msg("failed to generate twofa token")
			return nil, err
		}
		return &domain.TokenResponse{Message: MessageTwofaRequired, Token: token}, nil
	}

	token, _, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		l.Error().Err(err).Msg("failed to generate access token")
		return nil, err
	}

	audit.Log(ctx, audit.ActionLogin, user.ID, "user logged in")
	return &domain.TokenResponse{Message: MessageSuccess, Token: token}, nil
}

// Twofa trades a TOTP code for an access token.
func (s *authServiceImpl) Twofa(ctx context.Context, req *domain.TwofaRequest) (*domain.TokenResponse, error) {
	l := log.Ctx(ctx)

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}

	if !user.TwofaEnabled || !twofa.Validate(req.Token, user.TwofaSecret) {
		return nil, ErrWrongTwofaCode
	}

	token, _, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		l.Error().Err(err).Msg("failed to generate access token")
		return nil, err
	}

	audit.Log(ctx, audit.ActionLogin, user.ID, "user logged in with twofa")
	return &domain.TokenResponse{Message: MessageSuccess, Token: token}, nil
}

// Validate reports whether the presented token is a valid token of any
// type for an existing user.
func (s *authServiceImpl) Validate(ctx context.Context, token string) (*domain.ValidateResponse, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return &domain.ValidateResponse{Successful: false}, nil
	}

	if _, err := s.users.GetByEmail(ctx, claims.Subject); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &domain.ValidateResponse{Successful: false}, nil
		}
		return nil, err
	}

	return &domain.ValidateResponse{Successful: true}, nil
}

// Register creates a new account with the default role and sends the
// email-verification mail.
func (s *authServiceImpl) Register(ctx context.Context, req *domain.CreateUserRequest) error {
	l := log.Ctx(ctx)

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		l.Error().Err(err).Msg("failed to check for existing user")
		return err
	}

	role, err := s.roles.GetByName(ctx, domain.RoleUser)
	if err != nil {
		l.Error().Err(err).Msg("failed to resolve default role")
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error().Err(err).Msg("failed to hash password")
		return err
	}

	user := &domain.UserModel{
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Password:          string(hashed),
		ProfilePictureURL: req.ProfilePictureURL,
		TwofaSecret:       domain.TwofaSecretUnset,
		RoleID:            role.ID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return ErrUserExists
		}
		l.Error().Err(err).Msg("failed to create user")
		return err
	}

	audit.Log(ctx, audit.ActionRegister, user.ID, "user registered")
	s.sendEmailValidation(ctx, user)
	return nil
}

// ValidateEmail confirms an email address with the token from the
// verification mail. An expired token triggers a fresh mail.
func (s *authServiceImpl) ValidateEmail(ctx context.Context, req *domain.ValidateEmailRequest) error {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	claims, err := s.tokens.ValidateTokenOfType(req.Token, jwt.TypeEmailVerify)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			s.sendEmailValidation(ctx, user)
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}
	if claims.Subject != user.Email {
		return ErrInvalidToken
	}

	user.EmailVerified = true
	return s.users.Update(ctx, user)
}

// ForgotPassword sends a password-reset mail. The outcome is the same
// whether or not the account exists.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, req *domain.ForgotPasswordRequest) error {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, jwt.TypeReset, s.cfg.ResetTokenTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, url.QueryEscape(token))
	if err := s.mailer.SendForgotPassword(ctx, user.Email, user.FirstName, link); err != nil {
		return err
	}
	return nil
}

// ResetPassword sets a new password with the token from the reset mail.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req *domain.ResetPasswordRequest) error {
	claims, err := s.tokens.ValidateTokenOfType(req.Token, jwt.TypeReset)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	audit.Log(ctx, audit.ActionPasswordReset, user.ID, "password reset via mail token")
	return nil
}

// sendEmailValidation is best-effort: registration must not fail just
// because the mail relay is down.
func (s *authServiceImpl) sendEmailValidation(ctx context.Context, user *domain.UserModel) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email, jwt.TypeEmailVerify, s.cfg.EmailTokenTTL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to generate email verification token")
		return
	}

	link := fmt.Sprintf("%s/validate-email?token=%s&email=%s",
		s.frontendURL, url.QueryEscape(token), url.QueryEscape(user.Email))
	if err := s.mailer.SendEmailValidation(ctx, user.Email, user.FirstName, link); err != nil {
		log.Ctx(ctx).Error().Err(err).Int64(log.FieldUserID, user.ID).Msg("failed to send verification mail")
	}
}
