package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/twofa"
)

func newUserFixture() (UserService, *fakeUserRepo, *fakeBlobStorage) {
	users := newFakeUserRepo()
	blobs := newFakeBlobStorage()
	svc := NewUserService(users, newFakeRoleRepo(), blobs, twofa.NewGenerator("Supportly"))
	return svc, users, blobs
}

func TestEnableAndDisableTwofa(t *testing.T) {
	svc, users, _ := newUserFixture()
	ctx := context.Background()
	user := users.add(domain.UserModel{Email: "jane@example.com", TwofaSecret: domain.TwofaSecretUnset})

	result, err := svc.EnableTwofa(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, result.QRCode)

	updated, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, updated.TwofaEnabled)
	assert.NotEqual(t, domain.TwofaSecretUnset, updated.TwofaSecret)

	_, err = svc.EnableTwofa(ctx, user.ID)
	assert.ErrorIs(t, err, ErrTwofaAlreadyEnabled)

	require.NoError(t, svc.DisableTwofa(ctx, user.ID))
	updated, err = users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, updated.TwofaEnabled)
	assert.Equal(t, domain.TwofaSecretUnset, updated.TwofaSecret)
}

func TestUpdateRole(t *testing.T) {
	svc, users, _ := newUserFixture()
	ctx := context.Background()
	user := users.add(domain.UserModel{Email: "jane@example.com", RoleID: 1})

	err := svc.UpdateRole(ctx, 99, &domain.UpdateRoleRequest{UserID: user.ID, Role: domain.RoleAgent})
	require.NoError(t, err)

	updated, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.RoleID)

	err = svc.UpdateRole(ctx, 99, &domain.UpdateRoleRequest{UserID: user.ID, Role: "ROLE_WIZARD"})
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestUploadProfilePicture(t *testing.T) {
	svc, users, blobs := newUserFixture()
	ctx := context.Background()
	user := users.add(domain.UserModel{Email: "jane@example.com"})

	url, err := svc.UploadProfilePicture(ctx, user.ID, "me.png", "image/png",
		strings.NewReader("not really a png"), 16)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://blobs.test/users/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Len(t, blobs.blobs, 1)

	updated, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, url, updated.ProfilePictureURL)
}

func TestResolveRole(t *testing.T) {
	svc, users, _ := newUserFixture()
	users.add(domain.UserModel{
		Email: "jane@example.com",
		Role:  domain.RoleModel{ID: 2, Name: domain.RoleAgent},
	})

	role, err := svc.ResolveRole("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAgent, role)

	_, err = svc.ResolveRole("nobody@example.com")
	assert.Error(t, err)
}
