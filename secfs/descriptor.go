package secfs

import "io/fs"

// DACL owns a platform-allocated discretionary access control list produced
// by the permission translator. It must be released exactly once via Close,
// on every exit path of the operation that built it.
type DACL struct {
	acl  uintptr     // PACL allocated by the ACL builder on Windows
	mode fs.FileMode // group permission bits on POSIX systems
	free func()
}

// Close releases the underlying ACL buffer. Close is idempotent and safe on
// a nil DACL.
func (d *DACL) Close() error {
	if d == nil {
		return nil
	}
	if d.free != nil {
		d.free()
		d.free = nil
	}
	// Drop the handle as well so a closed DACL can never reach the
	// platform APIs as a dangling pointer.
	d.acl = 0
	return nil
}

// DescriptorAccessor retrieves and replaces the owner and DACL portions of a
// path's security descriptor. Implementations are platform-specific and
// release every descriptor buffer they allocate before returning.
type DescriptorAccessor interface {
	// Owner retrieves the owning principal of path.
	Owner(path string) (Principal, error)
	// SetOwner replaces the owner entry of path's descriptor. Callers
	// changing ownership of a foreign-owned path must hold the
	// take-ownership privilege scope; the accessor does not acquire it.
	SetOwner(path string, p Principal) error
	// SetDACL replaces path's discretionary ACL wholesale. A permission
	// denial is reported as AccessError{Kind: AccessPermissionDenied},
	// distinct from other backend failures.
	SetDACL(path string, d *DACL) error
}

// Translator maps an abstract permission set for a group principal into a
// concrete DACL, composed with a fixed administrative-override entry.
type Translator interface {
	// BuildDACL constructs a DACL of exactly two grant entries in fixed
	// order: the group entry carrying only the bits present in perms, then
	// a full-control entry for the built-in administrators group. The
	// returned DACL must be closed by the caller.
	BuildDACL(group Principal, perms PermissionSet) (*DACL, error)
}
