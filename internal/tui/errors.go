// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
)

var errorTexts = []struct {
	err  error
	text string
}{
	{service.ErrServerUnavailable, "No network or the server is unavailable"},
	{adapter.ErrTransport, "No network or the server is unavailable"},
	{adapter.ErrInternalServerError, "The server failed to process the request"},
	{service.ErrInvalidCredentials, "Invalid username, email or password"},
	{service.ErrTokenIsExpiredOrInvalid, "Your session has expired, please log in again"},
	{service.ErrNotAuthorized, "Please log in first"},
	{service.ErrForbidden, "Only the author or an admin may edit this post"},
	{service.ErrSamePassword, "Password can't be your current one!"},
	{service.ErrNoFileUpload, "No file was uploaded"},
	{service.ErrNotAnImage, "The file is not an image"},
	{service.ErrUploadTooBig, "The file is too big"},
	{store.ErrUsernameTaken, "Username is already taken"},
	{store.ErrEmailTaken, "Email is already taken"},
	{store.ErrUserNotFound, "User not found"},
	{store.ErrPostNotFound, "Post not found"},
	{session.ErrPersistSession, "Could not save the session on this device"},
}

// humanizeError turns a client service error into a line for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, known := range errorTexts {
		if errors.Is(err, known.err) {
			return known.text
		}
	}
	if msg := validators.Message(err); msg != "" {
		return msg
	}

	return err.Error()
}

// describeWorkerError explains a failed background job.
func describeWorkerError(err error) string {
	if errors.Is(err, session.ErrValidationFailed) {
		return "Could not verify the saved session. Showing cached data.\n" + humanizeError(err)
	}
	return humanizeError(err)
}
