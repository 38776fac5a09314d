//go:build !windows
// +build !windows

package secfs

// noopGuard runs the body directly. POSIX has no per-operation token
// privileges; the kernel checks euid on the chown itself.
type noopGuard struct{}

// NewPrivilegeGuard returns the POSIX privilege scope guard.
func NewPrivilegeGuard() PrivilegeGuard {
	return noopGuard{}
}

func (noopGuard) WithPrivilege(name string, body func() error) error {
	return body()
}
