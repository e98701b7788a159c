// Package repo contains the persistence logic for the Rollcall service.
// Rosters live in Postgres (roster.go, account.go); generated sign-in sheets
// live as files in a single directory (artifact.go).
// No business logic lives here, only storage access and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RosterRepo defines the persistence operations for an account's roster.
// The service layer depends on this interface, not the Postgres implementation.
type RosterRepo interface {
	// ListByAccount returns every student of the account in insertion order.
	// An unknown account yields an empty, non-nil slice.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error)

	// ListEmails returns the account's roster as ordered email identifiers.
	ListEmails(ctx context.Context, accountID uuid.UUID) ([]string, error)

	// Add appends emails to the account's roster in the given order, skipping
	// any already present. Returns the number of rows inserted.
	Add(ctx context.Context, accountID uuid.UUID, emails []string) (int, error)

	// Remove deletes one email from the roster.
	// Returns domain.ErrNotFound if the email is not on the roster.
	Remove(ctx context.Context, accountID uuid.UUID, email string) error

	// Rename changes a roster entry's email in place, keeping its position.
	// Returns domain.ErrNotFound if oldEmail is not on the roster and
	// domain.ErrConflict if newEmail already is.
	Rename(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error)
}

// pgRosterRepo is the Postgres implementation of RosterRepo.
type pgRosterRepo struct {
	db db
}

// NewRosterRepo constructs a RosterRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRosterRepo(db db) RosterRepo {
	return &pgRosterRepo{db: db}
}

// ListByAccount returns the account's students ordered by position.
func (r *pgRosterRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error) {
	const q = `
		SELECT id, account_id, email, position, created_at
		FROM students
		WHERE account_id = @account_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"account_id": accountID})
	if err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.ListByAccount: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RosterRepo.ListByAccount: scan: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.ListByAccount: rows: %w", err)
	}
	return students, nil
}

// ListEmails returns only the email column, ordered by position.
func (r *pgRosterRepo) ListEmails(ctx context.Context, accountID uuid.UUID) ([]string, error) {
	const q = `
		SELECT email
		FROM students
		WHERE account_id = @account_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"account_id": accountID})
	if err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.ListEmails: %w", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("repo.RosterRepo.ListEmails: collect: %w", err)
	}
	if emails == nil {
		emails = []string{}
	}
	return emails, nil
}

// Add inserts emails one statement at a time so that position follows the
// order of the input slice. Duplicates are skipped via ON CONFLICT DO NOTHING.
func (r *pgRosterRepo) Add(ctx context.Context, accountID uuid.UUID, emails []string) (int, error) {
	const q = `
		INSERT INTO students (account_id, email)
		VALUES (@account_id, @email)
		ON CONFLICT (account_id, email) DO NOTHING`

	added := 0
	for _, email := range emails {
		tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"account_id": accountID, "email": email})
		if err != nil {
			return added, fmt.Errorf("repo.RosterRepo.Add: %w", err)
		}
		added += int(tag.RowsAffected())
	}
	return added, nil
}

// Remove deletes a single roster entry by email.
func (r *pgRosterRepo) Remove(ctx context.Context, accountID uuid.UUID, email string) error {
	const q = `DELETE FROM students WHERE account_id = @account_id AND email = @email`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"account_id": accountID, "email": email})
	if err != nil {
		return fmt.Errorf("repo.RosterRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RosterRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// Rename updates the email column only, so the student keeps its position.
func (r *pgRosterRepo) Rename(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error) {
	const q = `
		UPDATE students
		SET email = @new_email
		WHERE account_id = @account_id AND email = @old_email
		RETURNING id, account_id, email, position, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"account_id": accountID,
		"old_email":  oldEmail,
		"new_email":  newEmail,
	})
	st, err := scanStudent(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Student{}, fmt.Errorf("repo.RosterRepo.Rename: %w", domain.ErrConflict)
		}
		return domain.Student{}, fmt.Errorf("repo.RosterRepo.Rename: %w", err)
	}
	return st, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanStudent maps a single database row into a domain.Student.
func scanStudent(s scanner) (domain.Student, error) {
	var (
		st        domain.Student
		accountID pgtype.UUID
	)
	err := s.Scan(&st.ID, &accountID, &st.Email, &st.Position, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Student{}, domain.ErrNotFound
		}
		return domain.Student{}, err
	}
	st.AccountID = uuid.UUID(accountID.Bytes)
	return st, nil
}
