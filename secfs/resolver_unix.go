//go:build !windows
// +build !windows

package secfs

import (
	"errors"
	"os/user"
	"strconv"
)

// unixResolver resolves names via os/user. Users are tried first, then
// groups, mirroring how ownership targets are usually specified.
type unixResolver struct{}

// Swappable for tests.
var (
	lookupUser  = user.Lookup
	lookupGroup = user.LookupGroup
)

// NewResolver returns the POSIX principal resolver.
func NewResolver() Resolver {
	return &unixResolver{}
}

func (r *unixResolver) ResolveName(name string) (Principal, error) {
	if name == "" {
		return Principal{}, &ResolutionError{Kind: ResolutionNotFound, Name: name}
	}
	u, uerr := lookupUser(name)
	if uerr == nil {
		uid, perr := strconv.Atoi(u.Uid)
		if perr != nil {
			return Principal{}, &ResolutionError{Kind: ResolutionBackend, Name: name, Err: perr}
		}
		gid, _ := strconv.Atoi(u.Gid)
		return Principal{UID: uid, GID: gid, posix: true}, nil
	}
	var unknownUser user.UnknownUserError
	if !errors.As(uerr, &unknownUser) {
		// A failing account database must not be reported as an absent
		// account, so only an unknown user falls through to groups.
		return Principal{}, &ResolutionError{Kind: ResolutionBackend, Name: name, Err: uerr}
	}
	g, err := lookupGroup(name)
	if err != nil {
		var unknownGroup user.UnknownGroupError
		if errors.As(err, &unknownGroup) {
			return Principal{}, &ResolutionError{Kind: ResolutionNotFound, Name: name, Err: err}
		}
		return Principal{}, &ResolutionError{Kind: ResolutionBackend, Name: name, Err: err}
	}
	gid, perr := strconv.Atoi(g.Gid)
	if perr != nil {
		return Principal{}, &ResolutionError{Kind: ResolutionBackend, Name: name, Err: perr}
	}
	return Principal{GID: gid, IsGroup: true, posix: true}, nil
}

func (r *unixResolver) ResolveID(p Principal) (string, error) {
	if !p.posix {
		return "", &ResolutionError{Kind: ResolutionNotFound, Err: errEmptyPrincipal}
	}
	if p.IsGroup {
		g, err := user.LookupGroupId(strconv.Itoa(p.GID))
		if err != nil {
			return "", classifyLookupErr(err)
		}
		return g.Name, nil
	}
	u, err := user.LookupId(strconv.Itoa(p.UID))
	if err != nil {
		return "", classifyLookupErr(err)
	}
	return u.Username, nil
}

func classifyLookupErr(err error) error {
	var unknownUID user.UnknownUserIdError
	var unknownGID user.UnknownGroupIdError
	if errors.As(err, &unknownUID) || errors.As(err, &unknownGID) {
		return &ResolutionError{Kind: ResolutionNotFound, Err: err}
	}
	return &ResolutionError{Kind: ResolutionBackend, Err: err}
}
