package secfs

import "sync"

// SeTakeOwnershipPrivilege is the token privilege required to assign
// ownership of an object owned by another principal.
const SeTakeOwnershipPrivilege = "SeTakeOwnershipPrivilege"

// PrivilegeGuard brackets an operation with an elevated token privilege.
// The privilege is released when the body returns, whether it succeeded or
// not; release is not skippable.
type PrivilegeGuard interface {
	WithPrivilege(name string, body func() error) error
}

// countedGuard enables a privilege on first acquisition and disables it only
// when the last holder releases. Privilege state is process-wide, so
// overlapping scopes from multiple goroutines must not disable it early.
type countedGuard struct {
	mu      sync.Mutex
	held    map[string]int
	enable  func(name string) error
	disable func(name string) error
}

func (g *countedGuard) WithPrivilege(name string, body func() error) error {
	if err := g.acquire(name); err != nil {
		return err
	}
	defer g.release(name)
	return body()
}

func (g *countedGuard) acquire(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[name] == 0 {
		if err := g.enable(name); err != nil {
			return err
		}
	}
	g.held[name]++
	return nil
}

func (g *countedGuard) release(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[name] == 0 {
		return
	}
	g.held[name]--
	if g.held[name] == 0 {
		// Best effort: a failed disable must not mask the body's result.
		_ = g.disable(name)
	}
}
