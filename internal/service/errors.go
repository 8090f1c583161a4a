package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
)

var (
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", validators.ErrValidation)
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrForbidden    = errors.New("only the author or an admin may edit this post")
	ErrNoFileUpload = errors.New("no file uploaded")
	ErrNotAnImage   = errors.New("uploaded file is not an image")
	ErrUploadTooBig = errors.New("uploaded file is too big")
	ErrUploadFailed = errors.New("upload failed")

	// ErrSamePassword is a client-side validation failure: the new password
	// equals the current one.
	ErrSamePassword = fmt.Errorf("%w: password can't be your current one", validators.ErrValidation)

	// ErrNotAuthorized is returned by client services called without a session.
	ErrNotAuthorized = errors.New("not authorized")

	ErrServerUnavailable = errors.New("server unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
