// Package board implements the comment board's behavior on top of the
// origin-scoped store: rendering the sorted list and accepting new posts
// under the cooldown.
//
// A Board holds no comment state. Every Render and Submit re-reads the
// store, so the store stays the single source of truth even when another
// process writes to the same profile.
package board
