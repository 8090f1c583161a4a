package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

const profilePictureField = "profilePicture"

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	user, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, r, "Handler.getProfile", err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) uploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseMultipart(w, r)
	if err != nil {
		writeError(w, r, "Handler.uploadProfilePicture", err)
		return
	}
	defer form.close()

	upload, err := form.file(profilePictureField)
	if err != nil {
		writeError(w, r, "Handler.uploadProfilePicture", err)
		return
	}
	if upload == nil {
		upload = &models.Upload{}
	}

	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	path, err := h.services.ProfileService.UploadProfilePicture(ctx, userID, *upload)
	if err != nil {
		writeError(w, r, "Handler.uploadProfilePicture", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProfilePictureResponse{ProfilePicture: path}, http.StatusOK)
}
