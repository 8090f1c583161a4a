package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:           http.StatusBadRequest,
	ErrInvalidForm:           http.StatusBadRequest,
	ErrInvalidPostID:         http.StatusBadRequest,
	validators.ErrValidation: http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrNoFileUpload:            http.StatusBadRequest,
	service.ErrNotAnImage:              http.StatusBadRequest,
	service.ErrUploadTooBig:            http.StatusRequestEntityTooLarge,

	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrPostNotFound:    http.StatusNotFound,
	store.ErrObjectNotFound:  http.StatusNotFound,
	store.ErrUsernameTaken:   http.StatusConflict,
	store.ErrEmailTaken:      http.StatusConflict,
	store.ErrNothingToUpdate: http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:   app.MsgInvalidJSON,
	ErrInvalidForm:   app.MsgInvalidForm,
	ErrInvalidPostID: app.MsgInvalidPostID,

	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrForbidden:               app.MsgForbidden,
	service.ErrNoFileUpload:            app.MsgNoFileUploaded,
	service.ErrNotAnImage:              app.MsgNotAnImage,
	service.ErrUploadTooBig:            app.MsgUploadTooBig,

	store.ErrUserNotFound:    app.MsgUserNotFound,
	store.ErrPostNotFound:    app.MsgPostNotFound,
	store.ErrUsernameTaken:   app.MsgUsernameTaken,
	store.ErrEmailTaken:      app.MsgEmailTaken,
	store.ErrNothingToUpdate: app.MsgNothingToUpdate,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the public message for err. Internal details of
// 5xx errors never leave the server.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if errors.Is(err, validators.ErrValidation) {
		return validationMessage(err)
	}
	return http.StatusText(status)
}

// validationMessage finds the innermost known validation error in the chain
// so the client can map it back with validators.FromMessage.
func validationMessage(err error) string {
	var found string
	walk(err, func(e error) {
		if validators.FromMessage(e.Error()) != nil {
			found = e.Error()
		}
	})
	if found == "" {
		return service.ErrInvalidDataProvided.Error()
	}
	return found
}

func walk(err error, visit func(error)) {
	if err == nil {
		return
	}
	visit(err)
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		walk(e.Unwrap(), visit)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			walk(inner, visit)
		}
	}
}

// writeError logs err and answers with its status and public message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	utils.WriteError(w, messageFromError(err, status), status)
}
