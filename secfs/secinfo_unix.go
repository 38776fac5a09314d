//go:build !windows
// +build !windows

package secfs

import (
	"os"
	"syscall"
)

// unixDescriptorAccessor approximates descriptor access on POSIX systems:
// the owning principal is the file's group (the entity whose permission bits
// the DACL maps onto), and ownership writes always update the gid so reads
// and writes operate on the same field. Root bypasses permission checks on
// POSIX, so no explicit administrative-override entry is needed here.
type unixDescriptorAccessor struct{}

// NewDescriptorAccessor returns the POSIX security descriptor accessor.
func NewDescriptorAccessor() DescriptorAccessor {
	return &unixDescriptorAccessor{}
}

func classifyOSErr(op, path string, err error) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return &AccessError{Kind: AccessPathNotFound, Op: op, Path: path, Err: err}
	case os.IsPermission(err):
		return &AccessError{Kind: AccessPermissionDenied, Op: op, Path: path, Err: err}
	default:
		return &AccessError{Kind: AccessBackend, Op: op, Path: path, Err: err}
	}
}

func (a *unixDescriptorAccessor) Owner(path string) (Principal, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Principal{}, classifyOSErr("get-owner", path, err)
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return Principal{}, &AccessError{Kind: AccessBackend, Op: "get-owner", Path: path,
			Err: errEmptyPrincipal}
	}
	return Principal{UID: int(st.Uid), GID: int(st.Gid), IsGroup: true, posix: true}, nil
}

func (a *unixDescriptorAccessor) SetOwner(path string, p Principal) error {
	if !p.posix {
		return &AccessError{Kind: AccessBackend, Op: "set-owner", Path: path, Err: errEmptyPrincipal}
	}
	// The gid is written in every case so that Owner reads back the
	// principal just set. A user principal additionally takes the uid,
	// moving the file into the user's primary group.
	uid := -1
	if !p.IsGroup {
		uid = p.UID
	}
	return classifyOSErr("set-owner", path, os.Chown(path, uid, p.GID))
}

func (a *unixDescriptorAccessor) SetDACL(path string, d *DACL) error {
	if d == nil {
		return &AccessError{Kind: AccessBackend, Op: "set-dacl", Path: path, Err: errEmptyDACL}
	}
	fi, err := os.Stat(path)
	if err != nil {
		return classifyOSErr("set-dacl", path, err)
	}
	// Replace only the group bits; owner and other bits, and the
	// setuid/setgid/sticky bits, are not part of the translated
	// permission set and must survive the rewrite.
	mode := fi.Mode()&^0o070 | d.mode
	return classifyOSErr("set-dacl", path, os.Chmod(path, mode))
}
