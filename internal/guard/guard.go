// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides whether a client view may be shown for the current
// session or must redirect elsewhere.
package guard

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// Client view paths.
const (
	PathHome        = "/"
	PathAbout       = "/about"
	PathRegister    = "/register"
	PathLogin       = "/login"
	PathDashboard   = "/dashboard"
	PathEditProfile = "/edit-profile"

	postPrefix = "/post/"
	editSuffix = "/edit"
)

// Kind tells the caller what to do with a [Decision].
type Kind int

const (
	// Render shows the view at Decision.Path.
	Render Kind = iota
	// Redirect navigates to Decision.Path instead.
	Redirect
)

func (k Kind) String() string {
	if k == Redirect {
		return "redirect"
	}
	return "render"
}

// Decision is the outcome of [Decide].
type Decision struct {
	Kind Kind
	Path string
}

type pathClass int

const (
	classUnknown pathClass = iota
	classPublic
	classLogin
	classProtected
)

// Decide maps a requested path and a session snapshot to a decision.
// It keeps no state, so every navigation sees the latest snapshot.
//
//	public (/, /about, /register, /post/:id)      render
//	login (/login)                                dashboard when authenticated
//	protected (/dashboard, /edit-profile,
//	           /post/:id/edit)                    login when not authenticated
//	anything else                                 home
func Decide(path string, session models.Session) Decision {
	path = Normalize(path)

	switch classify(path) {
	case classPublic:
		return Decision{Kind: Render, Path: path}
	case classLogin:
		if session.Authenticated {
			return Decision{Kind: Redirect, Path: PathDashboard}
		}
		return Decision{Kind: Render, Path: path}
	case classProtected:
		if !session.Authenticated {
			return Decision{Kind: Redirect, Path: PathLogin}
		}
		return Decision{Kind: Render, Path: path}
	default:
		return Decision{Kind: Redirect, Path: PathHome}
	}
}

func classify(path string) pathClass {
	switch path {
	case PathHome, PathAbout, PathRegister:
		return classPublic
	case PathLogin:
		return classLogin
	case PathDashboard, PathEditProfile:
		return classProtected
	}

	if _, edit, ok := ParsePostPath(path); ok {
		if edit {
			return classProtected
		}
		return classPublic
	}

	return classUnknown
}

// Normalize drops the query and fragment and any trailing slash, and makes
// the path absolute.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = PathHome
		}
	}

	return path
}

// PostPath returns the view path of a post.
func PostPath(postID int64) string {
	return postPrefix + strconv.FormatInt(postID, 10)
}

// EditPostPath returns the edit view path of a post.
func EditPostPath(postID int64) string {
	return PostPath(postID) + editSuffix
}

// ParsePostPath extracts the post id from /post/:id or /post/:id/edit.
// Ids must be positive integers.
func ParsePostPath(path string) (postID int64, edit bool, ok bool) {
	rest, found := strings.CutPrefix(path, postPrefix)
	if !found {
		return 0, false, false
	}

	rest, edit = strings.CutSuffix(rest, editSuffix)

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, false
	}

	return id, edit, true
}
