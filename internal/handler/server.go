// Package handler implements the HTTP handlers for the Rollcall API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, roster.go, attendance.go, sheet.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/rollcall/backend/internal/domain"
	"github.com/pkordes/rollcall/backend/spec"
)

// RosterServicer defines the account and roster operations the handlers use.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type RosterServicer interface {
	CreateAccount(ctx context.Context, username string) (domain.Account, error)
	AddEmails(ctx context.Context, accountID uuid.UUID, raw string) (int, error)
	List(ctx context.Context, accountID uuid.UUID) ([]domain.Student, error)
	Remove(ctx context.Context, accountID uuid.UUID, email string) error
	Rename(ctx context.Context, accountID uuid.UUID, oldEmail, newEmail string) (domain.Student, error)
}

// AttendanceServicer reconciles a reported attendance list against a roster.
type AttendanceServicer interface {
	Absentees(ctx context.Context, accountID uuid.UUID, rawReport string) ([]string, error)
}

// SheetServicer generates sign-in sheets and manages stored artifacts.
type SheetServicer interface {
	Generate(ctx context.Context, accountID uuid.UUID, days int) (domain.Artifact, error)
	List(ctx context.Context) ([]domain.Artifact, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) (domain.DeleteOutcome, error)
}

// Server holds the services behind every endpoint.
// Mount it in main.go via Server.Routes.
type Server struct {
	roster     RosterServicer
	attendance AttendanceServicer
	sheets     SheetServicer
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(roster RosterServicer, attendance AttendanceServicer, sheets SheetServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{roster: roster, attendance: attendance, sheets: sheets, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns the chi router for every endpoint. Cross-cutting middleware
// (request IDs, logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Post("/accounts", s.CreateAccount)
	r.Route("/accounts/{accountId}", func(r chi.Router) {
		r.Get("/students", s.ListStudents)
		r.Post("/students", s.AddStudents)
		r.Put("/students/{email}", s.RenameStudent)
		r.Delete("/students/{email}", s.RemoveStudent)
		r.Post("/attendance", s.CheckAttendance)
		r.Post("/sheets", s.GenerateSheet)
	})

	r.Get("/sheets", s.ListSheets)
	r.Get("/sheets/{name}", s.GetSheet)
	r.Delete("/sheets/{name}", s.DeleteSheet)

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
