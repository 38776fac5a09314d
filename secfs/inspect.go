package secfs

import "io/fs"

// ACE is one entry of a discretionary ACL as seen by the inspector
// (platform-agnostic minimal view).
type ACE struct {
	// Principal is the resolved trustee account name, or "<unknown>" when
	// the SID could not be resolved.
	Principal string
	// SID is the textual SID (S-1-5-...) of the trustee when available.
	SID string
	// Mask is the raw access mask.
	Mask uint32
	// Rights is a readable rendering of Mask (e.g. "GENERIC_READ").
	Rights string
	// Type is "allow" or "deny".
	Type string
	// Inherited is true for entries inherited from a parent container.
	Inherited bool
}

// Report is the structured result of inspecting a path's ownership and DACL.
type Report struct {
	Path     string
	Exists   bool
	Owner    string
	OwnerSID string
	// Mode holds the POSIX permission bits; zero on Windows where access
	// is described by ACEs instead.
	Mode     fs.FileMode
	ACEs     []ACE
	Problems []string
}

// Inspector reads back the ownership and DACL of a path for display and for
// verifying applied permissions. Implementations are platform-specific.
type Inspector interface {
	Inspect(path string) (Report, error)
}
