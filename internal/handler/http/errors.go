// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid json")

	// ErrInvalidForm is returned when a multipart body cannot be parsed.
	ErrInvalidForm = errors.New("invalid multipart form")

	// ErrInvalidPostID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidPostID = errors.New("invalid post id")
)
