package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/league-build-planner/internal/api/middleware"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nick     string `json:"nick"`
	Gender   string `json:"gender"`
	Rank     string `json:"rank"`
	MainRole string `json:"mainrole"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ProfileResponse struct {
	UserResponse
	Success bool `json:"success"`
}

type LoginResponse struct {
	UserResponse
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMissingSignupFields.Msg)
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Nick:     req.Nick,
		Gender:   req.Gender,
		Rank:     req.Rank,
		MainRole: req.MainRole,
	})
	if err != nil {
		respondError(w, h.logger, "auth.Register", err, zap.String("username", req.Username))
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMissingCredentials.Msg)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, h.logger, "auth.Login", err, zap.String("username", req.Username))
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		UserResponse: toUserResponse(result.User),
		Success:      true,
		Token:        result.Token,
	})
}

// Me returns the profile of the user the bearer token belongs to
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.WhoAmI(r.Context(), userID)
	if err != nil {
		respondError(w, h.logger, "auth.Me", err, zap.Uint("userID", userID))
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		UserResponse: toUserResponse(user),
		Success:      true,
	})
}
