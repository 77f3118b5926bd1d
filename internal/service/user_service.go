package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/supportly-beer/supportly-backend/internal/audit"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/internal/twofa"
	"github.com/supportly-beer/supportly-backend/pkg/log"
	"github.com/supportly-beer/supportly-backend/pkg/storage"
)

var (
	ErrTwofaAlreadyEnabled = errors.New("two-factor auth already enabled")
	ErrUnknownRole         = errors.New("unknown role")
)

const resolveRoleTimeout = 3 * time.Second

// userServiceImpl implements UserService.
type userServiceImpl struct {
	users repository.UserRepository
	roles repository.RoleRepository
	blobs storage.Storage
	twofa *twofa.Generator
}

// NewUserService creates a new user service.
func NewUserService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	blobs storage.Storage,
	twofaGen *twofa.Generator,
) UserService {
	return &userServiceImpl{
		users: users,
		roles: roles,
		blobs: blobs,
		twofa: twofaGen,
	}
}

// GetUser returns a user by id.
func (s *userServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.UserDTO, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := user.ToDTO()
	return &dto, nil
}

// GetUserByEmail returns a user by email.
func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.UserDTO, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	dto := user.ToDTO()
	return &dto, nil
}

// ListUsers returns a page of users.
func (s *userServiceImpl) ListUsers(ctx context.Context, start, limit int) ([]domain.UserDTO, error) {
	users, err := s.users.List(ctx, start*limit, limit)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}
	return dtos, nil
}

// CountUsers returns the total number of accounts.
func (s *userServiceImpl) CountUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

// UpdateUser applies a self-service profile update.
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID int64, req *domain.UpdateUserRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}

	return s.users.Update(ctx, user)
}

// UpdateRole changes another user's role.
func (s *userServiceImpl) UpdateRole(ctx context.Context, actorID int64, req *domain.UpdateRoleRequest) error {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	role, err := s.roles.GetByName(ctx, req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return ErrUnknownRole
		}
		return err
	}

	user.RoleID = role.ID
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	audit.LogWithDetail(ctx, audit.ActionRoleChange, actorID,
		fmt.Sprintf("user %d -> %s", req.UserID, role.Name), "role changed")
	return nil
}

// EnableTwofa generates a TOTP secret for the user and returns the
// enrollment QR code. The secret is shown exactly once.
func (s *userServiceImpl) EnableTwofa(ctx context.Context, userID int64) (*domain.TwofaEnabledResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.TwofaEnabled {
		return nil, ErrTwofaAlreadyEnabled
	}

	secret, qrCode, err := s.twofa.Generate(user.Email)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to generate twofa secret")
		return nil, err
	}

	user.TwofaSecret = secret
	user.TwofaEnabled = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	audit.Log(ctx, audit.ActionTwofaEnable, userID, "twofa enabled")
	return &domain.TwofaEnabledResponse{QRCode: qrCode}, nil
}

// DisableTwofa turns off two-factor auth and discards the secret.
func (s *userServiceImpl) DisableTwofa(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.TwofaEnabled = false
	user.TwofaSecret = domain.TwofaSecretUnset
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	audit.Log(ctx, audit.ActionTwofaDisable, userID, "twofa disabled")
	return nil
}

// UploadProfilePicture stores the image blob and points the user's
// profile picture URL at it. Returns the public URL.
func (s *userServiceImpl) UploadProfilePicture(ctx context.Context, userID int64, filename, contentType string, r io.Reader, size int64) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("users/%s-%d%s", uuid.New(), userID, path.Ext(filename))
	if err := s.blobs.Write(ctx, key, r, size, contentType); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to store profile picture")
		return "", err
	}

	user.ProfilePictureURL = s.blobs.PublicURL(key)
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}
	return user.ProfilePictureURL, nil
}

// ResolveRole looks up a user's role by email for the auth middleware.
func (s *userServiceImpl) ResolveRole(email string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), resolveRoleTimeout)
	defer cancel()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role.Name, nil
}
