package service

import "github.com/iliyamo/transport-ticketing/internal/model"

// RequireRole is the authorization guard shared by every mutating
// operation.  It fails with ErrAccessDenied when the actor is missing,
// inactive, or holds none of the allowed roles.  The guard is pure: it
// runs before any entity is read so that authorization failures are
// observable independent of entity existence.
func RequireRole(actor *model.User, allowed ...string) error {
	if actor == nil {
		return accessDenied("missing actor")
	}
	if !actor.IsActive {
		return accessDenied("actor is inactive")
	}
	for _, role := range allowed {
		if actor.Role == role {
			return nil
		}
	}
	return accessDenied("role %s not permitted", actor.Role)
}
