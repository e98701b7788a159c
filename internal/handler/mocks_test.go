package handler_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/rollcall/backend/internal/domain"
	"github.com/pkordes/rollcall/backend/internal/handler"
)

// ---- mockRosterService ----

type mockRosterService struct {
	createAccountFn func(ctx context.Context, username string) (domain.Account, error)
	addEmailsFn     func(ctx context.Context, accountID uuid.UUID, raw string) (int, error)
	listFn          func(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error)
	removeFn        func(ctx context.Context, accountID uuid.UUID, email string) error
	renameFn        func(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error)
}

var _ handler.RosterServicer = (*mockRosterService)(nil)

func (m *mockRosterService) CreateAccount(ctx context.Context, username string) (domain.Account, error) {
	return m.createAccountFn(ctx, username)
}

func (m *mockRosterService) AddEmails(ctx context.Context, accountID uuid.UUID, raw string) (int, error) {
	return m.addEmailsFn(ctx, accountID, raw)
}

func (m *mockRosterService) List(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error) {
	return m.listFn(ctx, accountID)
}

func (m *mockRosterService) Remove(ctx context.Context, accountID uuid.UUID, email string) error {
	return m.removeFn(ctx, accountID, email)
}

func (m *mockRosterService) Rename(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error) {
	return m.renameFn(ctx, accountID, oldEmail, newEmail)
}

// ---- mockAttendanceService ----

type mockAttendanceService struct {
	absenteesFn func(ctx context.Context, accountID uuid.UUID, raw string) ([]string, error)
}

var _ handler.AttendanceServicer = (*mockAttendanceService)(nil)

func (m *mockAttendanceService) Absentees(ctx context.Context, accountID uuid.UUID, raw string) ([]string, error) {
	return m.absenteesFn(ctx, accountID, raw)
}

// ---- mockSheetService ----

type mockSheetService struct {
	generateFn func(ctx context.Context, accountID uuid.UUID, days int) (domain.Artifact, error)
	listFn     func(ctx context.Context) ([]domain.Artifact, error)
	readFn     func(ctx context.Context, name string) ([]byte, error)
	deleteFn   func(ctx context.Context, name string) (domain.DeleteOutcome, error)
}

var _ handler.SheetServicer = (*mockSheetService)(nil)

func (m *mockSheetService) Generate(ctx context.Context, accountID uuid.UUID, days int) (domain.Artifact, error) {
	return m.generateFn(ctx, accountID, days)
}

func (m *mockSheetService) List(ctx context.Context) ([]domain.Artifact, error) {
	return m.listFn(ctx)
}

func (m *mockSheetService) Read(ctx context.Context, name string) ([]byte, error) {
	return m.readFn(ctx, name)
}

func (m *mockSheetService) Delete(ctx context.Context, name string) (domain.DeleteOutcome, error) {
	return m.deleteFn(ctx, name)
}
