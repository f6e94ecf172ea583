package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/nemid-codegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) Put(ctx context.Context, i *domain.Identity) error {
	return m.Called(ctx, i).Error(0)
}

func TestCreate_HappyPath(t *testing.T) {
	repo := &mockWriter{}
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Identity")).Return(nil)

	got, err := NewService(repo, 9).Create(context.Background(), domain.CreateIdentityRequest{
		CPR: "0101901234", NemID: "012345678", Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Len(t, got.ID, 26) // ULID
	assert.Equal(t, "012345678", got.NemID)
	assert.NotEqual(t, "hunter22", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("hunter22")))
	repo.AssertExpectations(t)
}

func TestCreate_WrongNemIDLength(t *testing.T) {
	repo := &mockWriter{}
	_, err := NewService(repo, 9).Create(context.Background(), domain.CreateIdentityRequest{
		CPR: "1", NemID: "1234", Password: "hunter22",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCreate_NonNumeric(t *testing.T) {
	repo := &mockWriter{}
	_, err := NewService(repo, 9).Create(context.Background(), domain.CreateIdentityRequest{
		CPR: "1", NemID: "12345678x", Password: "hunter22",
	})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_Conflict(t *testing.T) {
	repo := &mockWriter{}
	repo.On("Put", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := NewService(repo, 9).Create(context.Background(), domain.CreateIdentityRequest{
		CPR: "1", NemID: "123456789", Password: "hunter22",
	})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}
