package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

// AccountRepo defines the persistence operations for accounts.
type AccountRepo interface {
	// Create inserts a new account and returns it with its generated ID.
	// Returns domain.ErrConflict if the username is already taken.
	Create(ctx context.Context, username string) (domain.Account, error)

	// GetByID returns domain.ErrNotFound if no account with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error)
}

type pgAccountRepo struct {
	db db
}

// NewAccountRepo constructs an AccountRepo backed by the provided db connection.
func NewAccountRepo(db db) AccountRepo {
	return &pgAccountRepo{db: db}
}

// Create inserts an account row. The ON CONFLICT clause turns a duplicate
// username into zero returned rows, which scanAccount reports as ErrNotFound;
// that case is translated to ErrConflict here.
func (r *pgAccountRepo) Create(ctx context.Context, username string) (domain.Account, error) {
	const q = `
		INSERT INTO accounts (username)
		VALUES (@username)
		ON CONFLICT (username) DO NOTHING
		RETURNING id, username, created_at`

	acct, err := scanAccount(r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username}))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", domain.ErrConflict)
		}
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", err)
	}
	return acct, nil
}

// GetByID retrieves an account by primary key.
func (r *pgAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	const q = `
		SELECT id, username, created_at
		FROM accounts
		WHERE id = @id`

	acct, err := scanAccount(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.GetByID: %w", err)
	}
	return acct, nil
}

func scanAccount(s scanner) (domain.Account, error) {
	var (
		a  domain.Account
		id pgtype.UUID
	)
	if err := s.Scan(&id, &a.Username, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, domain.ErrNotFound
		}
		return domain.Account{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	return a, nil
}
