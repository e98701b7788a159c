// Package domain contains the core data types for the Rollcall service.
// This package has no dependencies beyond google/uuid and is imported by
// every other internal package (repo, service, render, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Student is one roster entry: an email address owned by an account.
// Position records insertion order, which defines row order both in
// absentee lists and on printed sign-in sheets.
type Student struct {
	ID        int64
	AccountID uuid.UUID
	Email     string
	Position  int64
	CreatedAt time.Time
}

// Account owns a roster. Authentication lives outside this service; an
// account here is only the identity that scopes a list of students.
type Account struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}
