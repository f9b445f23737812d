// Package service contains the engines of the ticketing workflow: the
// authorization guard, trip lifecycle, ticket sales, rating eligibility
// and the notification coordinator.  Engines are transport-free; any
// front end (HTTP, CLI, tests) drives them with an acting user and
// plain parameters.
//
// Every failure is one of three recoverable kinds, exposed as sentinel
// errors that callers match with errors.Is.  The kinds propagate
// unchanged to the boundary, which renders them and keeps serving.
package service

import (
	"errors"
	"fmt"

	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// ErrAccessDenied covers role mismatches, ownership mismatches,
// inactive actors and failed eligibility checks.
var ErrAccessDenied = errors.New("access denied")

// ErrNotFound covers references to entity ids absent from the store.
var ErrNotFound = errors.New("not found")

// ErrValidation covers well-formed requests that violate a domain
// invariant: bad numeric range, duplicate seat, per-person limit
// exceeded, malformed rating.
var ErrValidation = errors.New("validation failed")

func accessDenied(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAccessDenied, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// lookupErr converts a repository miss into the NotFound kind, naming
// the entity that was being resolved.
func lookupErr(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(what)
	}
	return err
}
