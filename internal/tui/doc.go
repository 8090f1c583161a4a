// Package tui implements the terminal front end of the blog client.
//
// RootModel routes between pages. Every navigation is decided by the route
// guard against the latest session snapshot, and session changes published
// by the holder can move the user away from a page that is no longer allowed.
// Results of background work are addressed to the page that started it.
package tui
