package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/rollcall/backend/internal/handler"
)

// newTestServer wires a Server around the given mocks. Nil mocks are fine
// for tests that never reach the corresponding service.
func newTestServer(roster *mockRosterService, att *mockAttendanceService, sheets *mockSheetService) http.Handler {
	var (
		r handler.RosterServicer
		a handler.AttendanceServicer
		s handler.SheetServicer
	)
	if roster != nil {
		r = roster
	}
	if att != nil {
		a = att
	}
	if sheets != nil {
		s = sheets
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(r, a, s, log).Routes()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
