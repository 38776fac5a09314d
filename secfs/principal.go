package secfs

// Principal is an opaque identifier for a user or group recognized by the
// local security subsystem. Values are produced by name resolution or
// extracted from a security descriptor, never assembled from raw bytes by
// callers. A Principal must not outlive the operation that produced it;
// nothing in this package caches principals across calls.
type Principal struct {
	// SID holds the raw security identifier bytes on Windows. The bytes
	// are always an owned copy, never a pointer into a descriptor buffer.
	SID []byte
	// Use is the Windows SID_NAME_USE value reported at resolution time.
	// It selects the trustee type when the principal is placed in an ACE.
	Use uint32
	// UID and GID identify the principal on POSIX systems.
	UID int
	GID int
	// IsGroup marks principals that resolved as a group rather than a user.
	IsGroup bool

	posix bool
}

// Empty reports whether p carries no identity at all.
func (p Principal) Empty() bool {
	return len(p.SID) == 0 && !p.posix
}

// Resolver maps human-readable account or group names to principals and
// back. Implementations are platform-specific.
type Resolver interface {
	// ResolveName looks up name on the local system (or domain, if the
	// name is qualified) and returns its principal.
	ResolveName(name string) (Principal, error)
	// ResolveID performs the reverse lookup, returning the account name
	// for p.
	ResolveID(p Principal) (string, error)
}
