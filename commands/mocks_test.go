package commands

import (
	"io"
	"log/slog"

	"github.com/fsown/fsown/secfs"
)

// testPrincipal builds a principal identified by a single SID byte so the
// fakes work identically on every platform.
func testPrincipal(id byte) secfs.Principal {
	return secfs.Principal{SID: []byte{id}}
}

type fakeResolver struct {
	byName map[string]secfs.Principal
	byID   map[byte]string
}

func (f *fakeResolver) ResolveName(name string) (secfs.Principal, error) {
	p, ok := f.byName[name]
	if !ok {
		return secfs.Principal{}, &secfs.ResolutionError{Kind: secfs.ResolutionNotFound, Name: name}
	}
	return p, nil
}

func (f *fakeResolver) ResolveID(p secfs.Principal) (string, error) {
	if len(p.SID) == 1 {
		if name, ok := f.byID[p.SID[0]]; ok {
			return name, nil
		}
	}
	return "", &secfs.ResolutionError{Kind: secfs.ResolutionNotFound}
}

type fakeAccessor struct {
	owners      map[string]secfs.Principal
	setOwnerErr error
	setDACLErr  error
	daclWrites  []string
}

func (f *fakeAccessor) Owner(path string) (secfs.Principal, error) {
	p, ok := f.owners[path]
	if !ok {
		return secfs.Principal{}, &secfs.AccessError{Kind: secfs.AccessPathNotFound, Op: "get-owner", Path: path}
	}
	return p, nil
}

func (f *fakeAccessor) SetOwner(path string, p secfs.Principal) error {
	if f.setOwnerErr != nil {
		return f.setOwnerErr
	}
	f.owners[path] = p
	return nil
}

func (f *fakeAccessor) SetDACL(path string, d *secfs.DACL) error {
	if f.setDACLErr != nil {
		return f.setDACLErr
	}
	f.daclWrites = append(f.daclWrites, path)
	return nil
}

type fakeGuard struct {
	entered int
	exited  int
}

func (g *fakeGuard) WithPrivilege(name string, body func() error) error {
	g.entered++
	defer func() { g.exited++ }()
	return body()
}

type fakeTranslator struct {
	groups []secfs.Principal
	perms  []secfs.PermissionSet
}

func (t *fakeTranslator) BuildDACL(group secfs.Principal, perms secfs.PermissionSet) (*secfs.DACL, error) {
	t.groups = append(t.groups, group)
	t.perms = append(t.perms, perms)
	return &secfs.DACL{}, nil
}

type fakeInspector struct {
	report secfs.Report
}

func (f *fakeInspector) Inspect(path string) (secfs.Report, error) {
	return f.report, nil
}

// newFakeManager wires a Manager to in-memory fakes and a silenced logger.
func newFakeManager() (*secfs.Manager, *fakeResolver, *fakeAccessor, *fakeGuard, *fakeTranslator) {
	resolver := &fakeResolver{
		byName: map[string]secfs.Principal{
			"Alice":    testPrincipal(1),
			"research": testPrincipal(2),
		},
		byID: map[byte]string{1: "Alice", 2: "research"},
	}
	accessor := &fakeAccessor{owners: map[string]secfs.Principal{
		"/data/report.xlsx": testPrincipal(1),
	}}
	guard := &fakeGuard{}
	translator := &fakeTranslator{}
	mgr := &secfs.Manager{
		Resolver:  resolver,
		Access:    accessor,
		Guard:     guard,
		Translate: translator,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return mgr, resolver, accessor, guard, translator
}
