// Package blog holds the business rules of the publishing service: the
// visibility predicate gating public display, the ownership guard gating
// mutation, and the feed queries composing the two with comment-count
// annotation and pagination.
//
// Every function takes the *gorm.DB to run against and, where visibility is
// involved, the caller's "now". Nothing in this package keeps state between
// calls; all state lives in the database.
package blog

import "github.com/pkg/errors"

// ErrNotFound is returned when a referenced post, category, user or comment
// does not exist, or fails a precondition that must read as non-existence
// (an unpublished category looked up by slug, a hidden post viewed by a
// stranger).
var ErrNotFound = errors.New("not found")
