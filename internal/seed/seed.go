package seed

import (
	"context"
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/pkg/log"
)

const (
	adminPasswordLength = 15
	passwordAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Run seeds the roles and, on a completely fresh database, a default
// administrator account. The generated admin password is logged exactly
// once and never stored in plaintext.
func Run(ctx context.Context, users repository.UserRepository, roles repository.RoleRepository, adminEmail string) error {
	roleCount, err := roles.Count(ctx)
	if err != nil {
		return err
	}

	if roleCount == 0 {
		err := roles.CreateAll(ctx, []domain.RoleModel{
			{Name: domain.RoleUser},
			{Name: domain.RoleAgent},
			{Name: domain.RoleAdministrator},
		})
		if err != nil {
			return err
		}
		log.L().Info().Msg("generated required roles [ROLE_USER, ROLE_AGENT, ROLE_ADMINISTRATOR]")
	}

	userCount, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	adminRole, err := roles.GetByName(ctx, domain.RoleAdministrator)
	if err != nil {
		return err
	}

	password, err := randomPassword(adminPasswordLength)
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.UserModel{
		Email:         adminEmail,
		FirstName:     "Supportly",
		LastName:      "Admin",
		Password:      string(hashed),
		TwofaSecret:   domain.TwofaSecretUnset,
		EmailVerified: true,
		RoleID:        adminRole.ID,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	l := log.L()
	l.Info().Msg("########################################################################")
	l.Info().Msg("Created new default user with administrator permissions!")
	l.Info().Str(log.FieldEmail, adminEmail).Msg("admin email")
	l.Info().Str("password", password).Msg("admin password")
	l.Info().Msg("Please save these credentials! You will never see them again!")
	l.Info().Msg("########################################################################")
	return nil
}

func randomPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
