// Package repository provides process-lifetime, in-memory storage for
// every entity type.  Each repository guards its maps with a RWMutex and
// stores entities by value, handing out copies so that no two callers
// ever alias the same stored object.  Mutation is always
// read-copy-modify-save through the repository.
//
// The sentinel errors defined here let the service layer distinguish
// failure scenarios without inspecting message text.
package repository

import "errors"

// ErrNotFound is returned when a looked-up identifier has no stored
// entity.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned by the user repository when a creation would
// violate email uniqueness.
var ErrEmailTaken = errors.New("email already registered")

// ErrSeatTaken is returned by the ticket repository when an insert would
// violate the (trip, seat) uniqueness constraint.  It is the backstop
// for the race-sensitive seat invariant; the ticket repository checks
// and inserts under a single lock.
var ErrSeatTaken = errors.New("seat already sold")
