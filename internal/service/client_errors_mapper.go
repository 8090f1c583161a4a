// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
)

// mapAdapterError translates an adapter error into a service business error.
// The adapter error stays in the chain, so adapter.IsAuthRejected keeps working
// on the result.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	mapped := businessError(err)
	if mapped == nil {
		return err
	}

	return fmt.Errorf("%w: %w", mapped, err)
}

func businessError(err error) error {
	msg := extractBody(err)

	// 413 arrives as an unexpected status, so upload messages match on suffix.
	switch full := err.Error(); {
	case strings.HasSuffix(full, app.MsgNoFileUploaded):
		return ErrNoFileUpload
	case strings.HasSuffix(full, app.MsgNotAnImage):
		return ErrNotAnImage
	case strings.HasSuffix(full, app.MsgUploadTooBig):
		return ErrUploadTooBig
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrBadRequest):
		if validationErr := validators.FromMessage(msg); validationErr != nil {
			return validationErr
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		case app.MsgPostNotFound:
			return store.ErrPostNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUsernameTaken:
			return store.ErrUsernameTaken
		case app.MsgEmailTaken:
			return store.ErrEmailTaken
		}
	}

	return nil
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if _, body, found := strings.Cut(msg, ": "); found {
		return body
	}
	return msg
}
