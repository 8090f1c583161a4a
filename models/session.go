// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the client-side, non-authoritative view of the login state.
//
// User is nil whenever Authenticated is false.
type Session struct {
	Authenticated bool
	User          *UserProjection
}

// Username returns the cached username or an empty string.
func (s Session) Username() string {
	if s.User == nil {
		return ""
	}
	return s.User.Username
}
