package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/rollcall/backend/internal/domain"
	"github.com/pkordes/rollcall/backend/internal/repo"
)

// RosterService manages the list of student emails owned by an account.
type RosterService struct {
	accounts repo.AccountRepo
	roster   repo.RosterRepo
}

// NewRosterService constructs a RosterService backed by the provided repos.
func NewRosterService(accounts repo.AccountRepo, roster repo.RosterRepo) *RosterService {
	return &RosterService{accounts: accounts, roster: roster}
}

// CreateAccount registers a new account under a unique username.
// Returns domain.ErrValidation for a blank username and domain.ErrConflict
// if the username is taken.
func (s *RosterService) CreateAccount(ctx context.Context, username string) (domain.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Account{}, fmt.Errorf("service.RosterService.CreateAccount: %w: username is required", domain.ErrValidation)
	}
	acct, err := s.accounts.Create(ctx, username)
	if err != nil {
		return domain.Account{}, fmt.Errorf("service.RosterService.CreateAccount: %w", err)
	}
	return acct, nil
}

// AddEmails parses a whitespace-delimited list of emails and appends the new
// ones to the account's roster in the order given. Returns the number added.
// Returns domain.ErrNotFound if the account does not exist and
// domain.ErrValidation if the blob holds no identifiers.
func (s *RosterService) AddEmails(ctx context.Context, accountID uuid.UUID, raw string) (int, error) {
	emails := ParseIdentifiers(raw)
	if len(emails) == 0 {
		return 0, fmt.Errorf("service.RosterService.AddEmails: %w: at least one email is required", domain.ErrValidation)
	}
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return 0, fmt.Errorf("service.RosterService.AddEmails: %w", err)
	}
	added, err := s.roster.Add(ctx, accountID, emails)
	if err != nil {
		return 0, fmt.Errorf("service.RosterService.AddEmails: %w", err)
	}
	return added, nil
}

// List returns the account's roster in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RosterService) List(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error) {
	students, err := s.roster.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("service.RosterService.List: %w", err)
	}
	if students == nil {
		return []domain.Student{}, nil
	}
	return students, nil
}

// Remove deletes one email from the account's roster.
// Returns domain.ErrNotFound if it is not on the roster.
func (s *RosterService) Remove(ctx context.Context, accountID uuid.UUID, email string) error {
	if err := s.roster.Remove(ctx, accountID, strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("service.RosterService.Remove: %w", err)
	}
	return nil
}

// Rename replaces oldEmail with newEmail on the account's roster, keeping the
// student's place in roster order. newEmail must be a single identifier.
// Returns domain.ErrNotFound if oldEmail is not on the roster and
// domain.ErrConflict if newEmail already is.
func (s *RosterService) Rename(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error) {
	ids := ParseIdentifiers(newEmail)
	if len(ids) != 1 {
		return domain.Student{}, fmt.Errorf("service.RosterService.Rename: %w: new email must be exactly one identifier", domain.ErrValidation)
	}
	st, err := s.roster.Rename(ctx, accountID, strings.TrimSpace(oldEmail), ids[0])
	if err != nil {
		return domain.Student{}, fmt.Errorf("service.RosterService.Rename: %w", err)
	}
	return st, nil
}
