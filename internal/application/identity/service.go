package identity

import (
	"context"
	"fmt"

	"github.com/nemid-codegen/internal/domain"
	"github.com/nemid-codegen/internal/pkg/id"
	"github.com/nemid-codegen/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// Writer persists identity records.
type Writer interface {
	Put(ctx context.Context, i *domain.Identity) error
}

// Service seeds the identity set that the verifier reads.
type Service interface {
	Create(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error)
}

type service struct {
	repo        Writer
	nemIDLength int
}

func NewService(repo Writer, nemIDLength int) Service {
	return &service{repo: repo, nemIDLength: nemIDLength}
}

func (s *service) Create(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	if err := validate.Len("NemID", req.NemID, s.nemIDLength); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	i := &domain.Identity{
		ID:           id.New(),
		CPR:          req.CPR,
		NemID:        req.NemID,
		PasswordHash: string(hash),
	}
	if err := s.repo.Put(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}
