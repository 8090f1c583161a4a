// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the blog
// server handlers and by the client when it interprets server responses.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON error bodies. Keeping them in one place lets the
// client map a response back to a typed error without parsing free text.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidCredentials is returned by login for an unknown identity or a
	// wrong password alike.
	MsgInvalidCredentials = "invalid credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned by protected routes when the
	// bearer token is missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUsernameTaken and MsgEmailTaken are returned on uniqueness conflicts.
	MsgUsernameTaken = "username is already taken"
	MsgEmailTaken    = "email is already taken"

	MsgUserNotFound = "user not found"
	MsgPostNotFound = "post not found"

	// MsgInvalidPostID is returned when the {id} path parameter is not a
	// positive integer.
	MsgInvalidPostID = "invalid post id"

	// MsgForbidden is returned when a user edits a post they do not own.
	MsgForbidden = "only the author or an admin may edit this post"

	MsgNoFileUploaded = "no file uploaded"
	MsgNotAnImage     = "uploaded file is not an image"
	MsgUploadTooBig   = "uploaded file is too big"

	// MsgInvalidForm is returned when a multipart body cannot be parsed.
	MsgInvalidForm = "invalid multipart form"

	// MsgNothingToUpdate is returned when an update carries no field.
	MsgNothingToUpdate = "nothing to update"
)
