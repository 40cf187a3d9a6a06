package kernel

// Role classifies the authenticated party making a request. The session
// layer is external to this service; it hands over an opaque (id, role)
// pair per request and the core only consumes it for authorization checks.
type Role string

const (
	RoleClient    Role = "client"
	RoleDriver    Role = "driver"
	RoleAdmin     Role = "admin"
	RoleAgent     Role = "agent"
	RoleAnonymous Role = "anonymous"
)

// ParseRole maps a wire value to a Role. Unknown or empty values degrade to
// RoleAnonymous rather than failing: an unidentified caller is simply an
// anonymous one.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleClient, RoleDriver, RoleAdmin, RoleAgent:
		return Role(s)
	default:
		return RoleAnonymous
	}
}

// Actor is the authenticated party attached to a request.
type Actor struct {
	id   string
	role Role
}

// NewActor builds an actor from the session-provided pair.
func NewActor(id string, role Role) Actor {
	return Actor{id: id, role: role}
}

// Anonymous returns the actor used for unauthenticated requests.
func Anonymous() Actor {
	return Actor{role: RoleAnonymous}
}

// ID returns the opaque actor identifier.
func (a Actor) ID() string {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsDriver reports whether the actor authenticated as a driver.
func (a Actor) IsDriver() bool {
	return a.role == RoleDriver
}

// IsClient reports whether the actor authenticated as a client.
func (a Actor) IsClient() bool {
	return a.role == RoleClient
}

// IsStaff reports whether the actor holds one of the staff roles.
// Admin and agent form the less restrictive authorization tier for
// shipment edits: no ownership requirement, no transition-legality check.
func (a Actor) IsStaff() bool {
	return a.role == RoleAdmin || a.role == RoleAgent
}

// Is compares the actor's identity against a stored identifier using the
// tolerant SameIdentity normalization.
func (a Actor) Is(id string) bool {
	return SameIdentity(a.id, id)
}
