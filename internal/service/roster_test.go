package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rollcall/backend/internal/domain"
	"github.com/pkordes/rollcall/backend/internal/service"
)

func existingAccount(id uuid.UUID) *mockAccountRepo {
	return &mockAccountRepo{
		getByID: func(_ context.Context, got uuid.UUID) (domain.Account, error) {
			if got != id {
				return domain.Account{}, domain.ErrNotFound
			}
			return domain.Account{ID: id, Username: "instructor"}, nil
		},
	}
}

// ---- CreateAccount ---------------------------------------------------------

func TestRosterService_CreateAccount_TrimsUsername(t *testing.T) {
	var captured string
	svc := service.NewRosterService(&mockAccountRepo{
		create: func(_ context.Context, username string) (domain.Account, error) {
			captured = username
			return domain.Account{ID: uuid.New(), Username: username}, nil
		},
	}, nil)

	got, err := svc.CreateAccount(context.Background(), "  ms-frizzle ")

	require.NoError(t, err)
	assert.Equal(t, "ms-frizzle", captured)
	assert.Equal(t, "ms-frizzle", got.Username)
}

func TestRosterService_CreateAccount_Blank(t *testing.T) {
	svc := service.NewRosterService(&mockAccountRepo{}, nil)

	_, err := svc.CreateAccount(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "service.RosterService.CreateAccount:")
}

// ---- AddEmails -------------------------------------------------------------

func TestRosterService_AddEmails_ParsesBlob(t *testing.T) {
	accountID := uuid.New()
	var captured []string
	svc := service.NewRosterService(existingAccount(accountID), &mockRosterRepo{
		add: func(_ context.Context, _ uuid.UUID, emails []string) (int, error) {
			captured = emails
			return len(emails), nil
		},
	})

	added, err := svc.AddEmails(context.Background(), accountID, "student1@example.com\n student2@example.com student1@example.com")

	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"student1@example.com", "student2@example.com"}, captured)
}

func TestRosterService_AddEmails_EmptyBlob(t *testing.T) {
	svc := service.NewRosterService(&mockAccountRepo{}, &mockRosterRepo{})

	_, err := svc.AddEmails(context.Background(), uuid.New(), " \n ")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "service.RosterService.AddEmails:")
}

func TestRosterService_AddEmails_UnknownAccount(t *testing.T) {
	svc := service.NewRosterService(existingAccount(uuid.New()), &mockRosterRepo{})

	_, err := svc.AddEmails(context.Background(), uuid.New(), "a@x.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List / Remove ---------------------------------------------------------

func TestRosterService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewRosterService(nil, &mockRosterRepo{
		listByAccount: func(_ context.Context, _ uuid.UUID) ([]domain.Student, error) { return nil, nil },
	})

	got, err := svc.List(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRosterService_Remove_NotFound(t *testing.T) {
	var captured string
	svc := service.NewRosterService(nil, &mockRosterRepo{
		remove: func(_ context.Context, _ uuid.UUID, email string) error {
			captured = email
			return domain.ErrNotFound
		},
	})

	err := svc.Remove(context.Background(), uuid.New(), " a@x.com ")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "a@x.com", captured)
}

// ---- Rename ----------------------------------------------------------------

func TestRosterService_Rename_TrimsAndDelegates(t *testing.T) {
	accountID := uuid.New()
	var gotOld, gotNew string
	svc := service.NewRosterService(nil, &mockRosterRepo{
		rename: func(_ context.Context, id uuid.UUID, oldEmail, newEmail string) (domain.Student, error) {
			assert.Equal(t, accountID, id)
			gotOld, gotNew = oldEmail, newEmail
			return domain.Student{AccountID: id, Email: newEmail, Position: 2}, nil
		},
	})

	st, err := svc.Rename(context.Background(), accountID, " old@x.com ", "\tnew@x.com\n")

	require.NoError(t, err)
	assert.Equal(t, "old@x.com", gotOld)
	assert.Equal(t, "new@x.com", gotNew)
	assert.Equal(t, "new@x.com", st.Email)
	assert.Equal(t, int64(2), st.Position)
}

func TestRosterService_Rename_RejectsBadNewEmail(t *testing.T) {
	svc := service.NewRosterService(nil, &mockRosterRepo{})

	for _, newEmail := range []string{"", "   ", "a@x.com b@x.com"} {
		t.Run(newEmail, func(t *testing.T) {
			_, err := svc.Rename(context.Background(), uuid.New(), "old@x.com", newEmail)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, "service.RosterService.Rename:")
		})
	}
}

func TestRosterService_Rename_PropagatesRepoErrors(t *testing.T) {
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrConflict} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			svc := service.NewRosterService(nil, &mockRosterRepo{
				rename: func(context.Context, uuid.UUID, string, string) (domain.Student, error) {
					return domain.Student{}, sentinel
				},
			})

			_, err := svc.Rename(context.Background(), uuid.New(), "old@x.com", "new@x.com")

			assert.ErrorIs(t, err, sentinel)
		})
	}
}
