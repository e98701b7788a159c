package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

// ArtifactResponse describes one stored sheet.
type ArtifactResponse struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Size      int64     `json:"size"`
}

// ArtifactListResponse wraps the stored sheets, oldest first.
type ArtifactListResponse struct {
	Data []ArtifactResponse `json:"data"`
}

func toArtifactResponse(a domain.Artifact) ArtifactResponse {
	return ArtifactResponse{Name: a.Name, CreatedAt: a.CreatedAt, Size: a.Size}
}

// GenerateSheet handles POST /accounts/{accountId}/sheets?days=N.
// On success the Location header points at the new artifact.
func (s *Server) GenerateSheet(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		badRequest(w, "accountId must be a UUID")
		return
	}
	days, err := daysParam(r)
	if err != nil {
		badRequest(w, fmt.Sprintf("days must be an integer between %d and %d", domain.MinDays, domain.MaxDays))
		return
	}
	art, err := s.sheets.Generate(r.Context(), accountID, days)
	if err != nil {
		s.writeError(w, r, err, "account not found")
		return
	}
	w.Header().Set("Location", "/sheets/"+art.Name)
	writeJSON(w, http.StatusCreated, toArtifactResponse(art))
}

// ListSheets handles GET /sheets.
func (s *Server) ListSheets(w http.ResponseWriter, r *http.Request) {
	arts, err := s.sheets.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	data := make([]ArtifactResponse, len(arts))
	for i, a := range arts {
		data[i] = toArtifactResponse(a)
	}
	writeJSON(w, http.StatusOK, ArtifactListResponse{Data: data})
}

// GetSheet handles GET /sheets/{name}. The PDF is served inline unless
// ?download=true asks for an attachment.
func (s *Server) GetSheet(w http.ResponseWriter, r *http.Request) {
	name, err := stringPathParam(r, "name")
	if err != nil {
		badRequest(w, "invalid artifact name")
		return
	}
	download, err := downloadParam(r)
	if err != nil {
		badRequest(w, "download must be a boolean")
		return
	}
	data, err := s.sheets.Read(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err, "artifact not found")
		return
	}
	disposition := "inline"
	if download {
		disposition = "attachment"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DeleteSheet handles DELETE /sheets/{name}. Deleting an artifact that is
// already gone answers 404 so the caller can tell the two outcomes apart.
func (s *Server) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	name, err := stringPathParam(r, "name")
	if err != nil {
		badRequest(w, "invalid artifact name")
		return
	}
	outcome, err := s.sheets.Delete(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err, "artifact not found")
		return
	}
	if outcome == domain.AlreadyAbsent {
		notFound(w, "artifact not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
