package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// respondError writes err as a JSON error with the status of its kind.
// Internal failures are logged with their cause; clients only see the
// message.
func respondError(w http.ResponseWriter, logger *zap.Logger, op string, err error, fields ...zap.Field) {
	status := statusFor(domain.KindOf(err))
	if status == http.StatusInternalServerError {
		logger.Error(op, append(fields, zap.Error(err))...)
	} else {
		logger.Debug(op, append(fields, zap.Error(err))...)
	}
	writeError(w, status, domain.MessageOf(err))
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// urlID parses a numeric path parameter. Routes constrain ids to digits, so
// a failure here means the value overflowed.
func urlID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nick     string `json:"nick"`
	Gender   string `json:"gender"`
	Rank     string `json:"rank"`
	MainRole string `json:"mainrole"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Nick:     u.Nick,
		Gender:   u.Gender.Label(),
		Rank:     u.Rank.Label(),
		MainRole: u.MainRole.Label(),
	}
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NotFound answers requests that match no route
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers requests whose path matches with the wrong method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
