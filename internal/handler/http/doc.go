// Package http implements the REST transport of the blog server.
//
// It wires chi routes for auth, profile, posts, uploads and the version
// endpoint. Authentication, request tracing, access logging and compression
// are handled here before requests reach the service layer. Every error body
// is {"error": "..."} with a message from package app.
package http
