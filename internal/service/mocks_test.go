package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/rollcall/backend/internal/domain"
	"github.com/pkordes/rollcall/backend/internal/repo"
	"github.com/pkordes/rollcall/backend/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs; calling an unset one panics, which flags an unexpected
// dependency call.

// ---- mock RosterRepo -------------------------------------------------------

type mockRosterRepo struct {
	listByAccount func(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error)
	listEmails    func(ctx context.Context, accountID uuid.UUID) ([]string, error)
	add           func(ctx context.Context, accountID uuid.UUID, emails []string) (int, error)
	remove        func(ctx context.Context, accountID uuid.UUID, email string) error
	rename        func(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error)
}

func (m *mockRosterRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error) {
	return m.listByAccount(ctx, accountID)
}
func (m *mockRosterRepo) ListEmails(ctx context.Context, accountID uuid.UUID) ([]string, error) {
	return m.listEmails(ctx, accountID)
}
func (m *mockRosterRepo) Add(ctx context.Context, accountID uuid.UUID, emails []string) (int, error) {
	return m.add(ctx, accountID, emails)
}
func (m *mockRosterRepo) Remove(ctx context.Context, accountID uuid.UUID, email string) error {
	return m.remove(ctx, accountID, email)
}
func (m *mockRosterRepo) Rename(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error) {
	return m.rename(ctx, accountID, oldEmail, newEmail)
}

var _ repo.RosterRepo = (*mockRosterRepo)(nil)

// rosterOf returns a RosterRepo whose ListEmails always yields emails.
func rosterOf(emails ...string) *mockRosterRepo {
	return &mockRosterRepo{
		listEmails: func(_ context.Context, _ uuid.UUID) ([]string, error) {
			return emails, nil
		},
	}
}

// ---- mock AccountRepo ------------------------------------------------------

type mockAccountRepo struct {
	create  func(ctx context.Context, username string) (domain.Account, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Account, error)
}

func (m *mockAccountRepo) Create(ctx context.Context, username string) (domain.Account, error) {
	return m.create(ctx, username)
}
func (m *mockAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	return m.getByID(ctx, id)
}

var _ repo.AccountRepo = (*mockAccountRepo)(nil)

// ---- mock ArtifactRepo -----------------------------------------------------

type mockArtifactRepo struct {
	create func(ctx context.Context, data []byte) (domain.Artifact, error)
	list   func(ctx context.Context) ([]domain.Artifact, error)
	read   func(ctx context.Context, name string) ([]byte, error)
	delete func(ctx context.Context, name string) (domain.DeleteOutcome, error)
}

func (m *mockArtifactRepo) Create(ctx context.Context, data []byte) (domain.Artifact, error) {
	return m.create(ctx, data)
}
func (m *mockArtifactRepo) List(ctx context.Context) ([]domain.Artifact, error) {
	return m.list(ctx)
}
func (m *mockArtifactRepo) Read(ctx context.Context, name string) ([]byte, error) {
	return m.read(ctx, name)
}
func (m *mockArtifactRepo) Delete(ctx context.Context, name string) (domain.DeleteOutcome, error) {
	return m.delete(ctx, name)
}

var _ repo.ArtifactRepo = (*mockArtifactRepo)(nil)

// ---- mock Renderer ---------------------------------------------------------

type mockRenderer struct {
	render func(doc domain.TableDocument) ([]byte, error)
}

func (m *mockRenderer) Render(doc domain.TableDocument) ([]byte, error) {
	return m.render(doc)
}

var _ service.Renderer = (*mockRenderer)(nil)
