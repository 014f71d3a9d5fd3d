// Package store persists the comment board in an origin-scoped key-value
// store, the local analogue of a browser profile's localStorage.
//
// Two keys are used: "phawse_comments" holds the JSON array of comments and
// "phawse_last_post" holds the last post time in unix milliseconds. Values
// are unversioned. Reads always go to the backing KV; nothing is cached.
package store
