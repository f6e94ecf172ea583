package nemid

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nemid-codegen/internal/domain"
	"github.com/nemid-codegen/internal/pkg/validate"
)

// IdentityStore answers whether a NemID is known. Implementations must bind
// nemID as a query parameter, never format it into the query text.
type IdentityStore interface {
	Exists(ctx context.Context, nemID string) (bool, error)
}

// Service verifies a NemID/code pair and hands out a fresh one-time code.
type Service interface {
	Verify(ctx context.Context, req domain.VerificationRequest) (domain.VerificationResult, error)
}

// Lengths fixes the expected shape of requests and generated codes.
type Lengths struct {
	NemIDCode     int
	NemID         int
	GeneratedCode int
}

type ServiceDeps struct {
	Identities IdentityStore
	Generator  CodeGenerator // optional; defaults to DigitGenerator
	Lengths    Lengths
	Logger     *slog.Logger // optional; defaults to slog.Default()
}

type service struct {
	identities IdentityStore
	generator  CodeGenerator
	lengths    Lengths
	log        *slog.Logger
}

func NewService(deps ServiceDeps) Service {
	gen := deps.Generator
	if gen == nil {
		gen = DigitGenerator{}
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &service{
		identities: deps.Identities,
		generator:  gen,
		lengths:    deps.Lengths,
		log:        log,
	}
}

// Verify returns rejections as 403 results with a nil error. A non-nil error
// means the identity store could not be consulted and wraps
// domain.ErrStorageUnavailable.
func (s *service) Verify(ctx context.Context, req domain.VerificationRequest) (domain.VerificationResult, error) {
	const op = "nemid.Verify"

	log := s.log.With(
		slog.String("op", op),
		slog.String("nem_id", maskNemID(req.NemID)),
	)

	if err := s.checkShape(req); err != nil {
		log.Info("rejected: invalid input", slog.String("reason", err.Error()))
		return domain.Rejected(domain.MsgInvalidInput), nil
	}

	found, err := s.identities.Exists(ctx, req.NemID)
	if err != nil {
		log.Error("identity lookup failed", slog.String("err", err.Error()))
		return domain.VerificationResult{}, fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
	}
	if !found {
		log.Info("rejected: nemid not found")
		return domain.Rejected(domain.MsgNotFound), nil
	}

	code, err := s.generator.Generate(s.lengths.GeneratedCode)
	if err != nil {
		log.Error("code generation failed", slog.String("err", err.Error()))
		return domain.VerificationResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("code generated")
	return domain.Generated(code), nil
}

func (s *service) checkShape(req domain.VerificationRequest) error {
	if err := validate.Len("nemIdCode", req.NemIDCode, s.lengths.NemIDCode); err != nil {
		return err
	}
	return validate.Len("nemId", req.NemID, s.lengths.NemID)
}

// maskNemID keeps the last three characters for correlation.
func maskNemID(nemID string) string {
	r := []rune(nemID)
	if len(r) <= 3 {
		return "***"
	}
	return "***" + string(r[len(r)-3:])
}
