// Package service contains the business logic for the Rollcall service.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// The reconciliation and layout functions are pure and have no dependencies;
// the service types wrap them with roster lookups and artifact storage.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/rollcall/backend/internal/repo"
)

// ParseIdentifiers splits a whitespace-delimited blob (as pasted into a form)
// into identifiers, dropping empties and repeated entries while keeping the
// order of first occurrence. It never fails: malformed input yields fewer
// identifiers, and empty input yields an empty, non-nil slice.
func ParseIdentifiers(raw string) []string {
	fields := strings.Fields(raw)
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Reconcile returns every roster entry that is not in attending, in roster
// order. Matching is exact and case-sensitive. Entries of attending that are
// not on the roster, and repeats within attending, have no effect.
// The result is always a new, non-nil slice.
func Reconcile(roster, attending []string) []string {
	present := make(map[string]struct{}, len(attending))
	for _, id := range attending {
		present[id] = struct{}{}
	}
	absent := make([]string, 0, len(roster))
	for _, id := range roster {
		if _, ok := present[id]; !ok {
			absent = append(absent, id)
		}
	}
	return absent
}

// AttendanceService answers "who is missing" for an account's roster.
type AttendanceService struct {
	roster repo.RosterRepo
}

// NewAttendanceService constructs an AttendanceService backed by the roster repo.
func NewAttendanceService(roster repo.RosterRepo) *AttendanceService {
	return &AttendanceService{roster: roster}
}

// Absentees parses the reported attendance list and reconciles it against
// the account's current roster.
func (s *AttendanceService) Absentees(ctx context.Context, accountID uuid.UUID, rawReport string) ([]string, error) {
	roster, err := s.roster.ListEmails(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("service.AttendanceService.Absentees: %w", err)
	}
	return Reconcile(roster, ParseIdentifiers(rawReport)), nil
}
