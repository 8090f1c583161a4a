// Package session holds the client's authentication state.
//
// A [Holder] is created once by the client app and passed to everything that
// needs it. It is initialised from the persisted "token" and "user" keys,
// validated against the server at most once per process with
// [Holder.OnAppStart], and changed afterwards only by [Holder.Login],
// [Holder.Logout] and explicit server rejections ([Holder.Reject]).
// Consumers read it with [Holder.Snapshot] or follow it with [Holder.Subscribe].
//
// Only an explicit auth rejection ends a session. Transport and server
// failures are returned to the caller and leave the state untouched.
package session
