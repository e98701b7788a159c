package handler

import "net/http"

// CheckAttendanceRequest is the body of POST /accounts/{accountId}/attendance.
// Attending is free text: identifiers separated by any whitespace.
type CheckAttendanceRequest struct {
	Attending string `json:"attending"`
}

// CheckAttendanceResponse lists roster members missing from the report,
// in roster order.
type CheckAttendanceResponse struct {
	Absent []string `json:"absent"`
}

// CheckAttendance handles POST /accounts/{accountId}/attendance.
func (s *Server) CheckAttendance(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		badRequest(w, "accountId must be a UUID")
		return
	}
	var req CheckAttendanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	absent, err := s.attendance.Absentees(r.Context(), accountID, req.Attending)
	if err != nil {
		s.writeError(w, r, err, "account not found")
		return
	}
	if absent == nil {
		absent = []string{}
	}
	writeJSON(w, http.StatusOK, CheckAttendanceResponse{Absent: absent})
}
