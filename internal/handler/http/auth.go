package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, "Handler.register", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	ctx := r.Context()
	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, "Handler.register", err)
		return
	}

	h.respondWithToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, "Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "Handler.respondWithToken", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user.Projection()}, status)
}

// validateToken never answers 401: a missing, malformed or rejected token is
// {valid:false}. Only a failed user lookup is an error.
func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		log.Debug().Err(err).Str("func", "Handler.validateToken").Msg("no usable bearer token")
		_, _ = utils.WriteJSON(w, models.TokenValidation{Valid: false}, http.StatusOK)
		return
	}

	validation, err := h.services.AuthService.ValidateToken(r.Context(), tokenString)
	if err != nil {
		writeError(w, r, "Handler.validateToken", err)
		return
	}

	_, _ = utils.WriteJSON(w, validation, http.StatusOK)
}

func (h *Handler) checkPassword(w http.ResponseWriter, r *http.Request) {
	var request models.PasswordCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, "Handler.checkPassword", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	isSame, err := h.services.AuthService.CheckPassword(ctx, userID, request.Password)
	if err != nil {
		writeError(w, r, "Handler.checkPassword", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PasswordCheckResponse{IsSame: isSame}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, "Handler.updateProfile", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	ctx := r.Context()
	update.UserID, _ = utils.GetUserIDFromContext(ctx)

	user, err := h.services.ProfileService.UpdateProfile(ctx, update)
	if err != nil {
		writeError(w, r, "Handler.updateProfile", err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
