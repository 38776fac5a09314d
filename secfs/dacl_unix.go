//go:build !windows
// +build !windows

package secfs

import "io/fs"

// unixTranslator renders the abstract permission set as POSIX group bits.
type unixTranslator struct{}

// NewTranslator returns the POSIX permission translator.
func NewTranslator() Translator {
	return &unixTranslator{}
}

func (t *unixTranslator) BuildDACL(group Principal, perms PermissionSet) (*DACL, error) {
	var mode fs.FileMode
	if perms.Has(PermRead) {
		mode |= 0o040
	}
	if perms.Has(PermWrite) {
		mode |= 0o020
	}
	if perms.Has(PermExecute) {
		mode |= 0o010
	}
	return &DACL{mode: mode}, nil
}
