package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

// CreateAccountRequest is the body of POST /accounts.
type CreateAccountRequest struct {
	Username string `json:"username"`
}

// AccountResponse is the JSON shape of an account.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// AddStudentsRequest is the body of POST /accounts/{accountId}/students.
// Emails is a whitespace-separated list; duplicates are ignored.
type AddStudentsRequest struct {
	Emails string `json:"emails"`
}

// AddStudentsResponse reports how many new identifiers joined the roster.
type AddStudentsResponse struct {
	Added int `json:"added"`
}

// RenameStudentRequest is the body of PUT /accounts/{accountId}/students/{email}.
type RenameStudentRequest struct {
	Email string `json:"email"`
}

// StudentResponse is one roster entry.
type StudentResponse struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// StudentListResponse wraps the roster in roster order.
type StudentListResponse struct {
	Data []StudentResponse `json:"data"`
}

// CreateAccount handles POST /accounts.
func (s *Server) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	acct, err := s.roster.CreateAccount(r.Context(), req.Username)
	if err != nil {
		if isConflict(err) {
			writeErrorBody(w, http.StatusConflict, codeConflict, "username already taken")
			return
		}
		s.writeError(w, r, err, "account not found")
		return
	}
	writeJSON(w, http.StatusCreated, AccountResponse{
		ID:        acct.ID,
		Username:  acct.Username,
		CreatedAt: acct.CreatedAt,
	})
}

// ListStudents handles GET /accounts/{accountId}/students.
func (s *Server) ListStudents(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		badRequest(w, "accountId must be a UUID")
		return
	}
	students, err := s.roster.List(r.Context(), accountID)
	if err != nil {
		s.writeError(w, r, err, "account not found")
		return
	}
	data := make([]StudentResponse, len(students))
	for i, st := range students {
		data[i] = StudentResponse{Email: st.Email, CreatedAt: st.CreatedAt}
	}
	writeJSON(w, http.StatusOK, StudentListResponse{Data: data})
}

// AddStudents handles POST /accounts/{accountId}/students.
func (s *Server) AddStudents(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		badRequest(w, "accountId must be a UUID")
		return
	}
	var req AddStudentsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	added, err := s.roster.AddEmails(r.Context(), accountID, req.Emails)
	if err != nil {
		s.writeError(w, r, err, "account not found")
		return
	}
	writeJSON(w, http.StatusCreated, AddStudentsResponse{Added: added})
}

// RemoveStudent handles DELETE /accounts/{accountId}/students/{email}.
func (s *Server) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		badRequest(w, "accountId must be a UUID")
		return
	}
	email, err := stringPathParam(r, "email")
	if err != nil || strings.TrimSpace(email) == "" {
		badRequest(w, "email must not be empty")
		return
	}
	if err := s.roster.Remove(r.Context(), accountID, email); err != nil {
		s.writeError(w, r, err, "student not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RenameStudent handles PUT /accounts/{accountId}/students/{email}.
// The student keeps its place in roster order.
func (s *Server) RenameStudent(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		badRequest(w, "accountId must be a UUID")
		return
	}
	email, err := stringPathParam(r, "email")
	if err != nil || strings.TrimSpace(email) == "" {
		badRequest(w, "email must not be empty")
		return
	}
	var req RenameStudentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st, err := s.roster.Rename(r.Context(), accountID, email, req.Email)
	if err != nil {
		if isConflict(err) {
			writeErrorBody(w, http.StatusConflict, codeConflict, "email already on the roster")
			return
		}
		s.writeError(w, r, err, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, StudentResponse{Email: st.Email, CreatedAt: st.CreatedAt})
}

func isConflict(err error) bool {
	return err != nil && errors.Is(err, domain.ErrConflict)
}
