package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/rollcall/backend/internal/domain"
	"github.com/pkordes/rollcall/backend/internal/repo"
)

// Renderer turns a TableDocument into the bytes of a printable document.
// render.PDFRenderer is the production implementation.
type Renderer interface {
	Render(doc domain.TableDocument) ([]byte, error)
}

// SheetService generates sign-in sheets and manages the stored artifacts.
type SheetService struct {
	roster    repo.RosterRepo
	renderer  Renderer
	artifacts repo.ArtifactRepo
	log       *slog.Logger
}

// NewSheetService constructs a SheetService. A nil logger falls back to
// slog.Default().
func NewSheetService(roster repo.RosterRepo, renderer Renderer, artifacts repo.ArtifactRepo, log *slog.Logger) *SheetService {
	if log == nil {
		log = slog.Default()
	}
	return &SheetService{roster: roster, renderer: renderer, artifacts: artifacts, log: log}
}

// Generate lays out, renders, and stores a sign-in sheet for the account's
// roster. days is validated before the roster is read, so an invalid request
// does no work and leaves the artifact directory untouched.
//
// Returns an error wrapping domain.ErrInvalidRange for a bad day count,
// domain.ErrMalformedDocument if the layout is structurally broken, and
// domain.ErrConflict if an artifact was already generated this second.
func (s *SheetService) Generate(ctx context.Context, accountID uuid.UUID, days int) (domain.Artifact, error) {
	if err := domain.ValidateDays(days); err != nil {
		return domain.Artifact{}, fmt.Errorf("service.SheetService.Generate: %w", err)
	}

	roster, err := s.roster.ListEmails(ctx, accountID)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("service.SheetService.Generate: %w", err)
	}

	doc, err := Layout(roster, days)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("service.SheetService.Generate: %w", err)
	}

	data, err := s.renderer.Render(doc)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedDocument) {
			s.log.ErrorContext(ctx, "layout produced a malformed document",
				"account_id", accountID, "days", days, "error", err)
		}
		return domain.Artifact{}, fmt.Errorf("service.SheetService.Generate: %w", err)
	}

	artifact, err := s.artifacts.Create(ctx, data)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("service.SheetService.Generate: %w", err)
	}

	s.log.InfoContext(ctx, "sign-in sheet generated",
		"account_id", accountID,
		"artifact", artifact.Name,
		"days", days,
		"students", len(roster),
		"bytes", artifact.Size,
	)
	return artifact, nil
}

// List returns all stored artifacts, oldest first.
func (s *SheetService) List(ctx context.Context) ([]domain.Artifact, error) {
	artifacts, err := s.artifacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SheetService.List: %w", err)
	}
	if artifacts == nil {
		return []domain.Artifact{}, nil
	}
	return artifacts, nil
}

// Read returns the bytes of a stored artifact.
// Returns domain.ErrValidation for unsafe names, domain.ErrNotFound if absent.
func (s *SheetService) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := s.artifacts.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service.SheetService.Read: %w", err)
	}
	return data, nil
}

// Delete removes a stored artifact. Both domain.Deleted and
// domain.AlreadyAbsent are successful outcomes.
func (s *SheetService) Delete(ctx context.Context, name string) (domain.DeleteOutcome, error) {
	outcome, err := s.artifacts.Delete(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("service.SheetService.Delete: %w", err)
	}
	if outcome == domain.Deleted {
		s.log.InfoContext(ctx, "sign-in sheet deleted", "artifact", name)
	}
	return outcome, nil
}
