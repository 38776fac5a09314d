//go:build windows
// +build windows

package secfs

import (
	"syscall"
	"unsafe"
)

// EXPLICIT_ACCESS and TRUSTEE definitions for calling SetEntriesInAclW.
type _TRUSTEE struct {
	MultipleTrustee         uintptr
	MultipleTrusteeOperator uint32
	TrusteeForm             uint32
	TrusteeType             uint32
	PtstrName               unsafe.Pointer
}

type _EXPLICIT_ACCESS struct {
	GrfAccessPermissions uint32
	GrfAccessMode        uint32
	GrfInheritance       uint32
	Trustee              _TRUSTEE
}

// from Winnt.h / AccCtrl.h
const (
	SET_ACCESS     = 2
	NO_INHERITANCE = 0
	TRUSTEE_IS_SID = 0

	TRUSTEE_TYPE_GROUP = 2

	GENERIC_READ    = 0x80000000
	GENERIC_WRITE   = 0x40000000
	GENERIC_EXECUTE = 0x20000000
	GENERIC_ALL     = 0x10000000

	SECURITY_BUILTIN_DOMAIN_RID = 0x20
	DOMAIN_ALIAS_RID_ADMINS     = 0x220
)

// securityNTAuthority is the SECURITY_NT_AUTHORITY identifier authority.
var securityNTAuthority = [6]byte{0, 0, 0, 0, 0, 5}

// winTranslator builds DACLs with SetEntriesInAclW.
type winTranslator struct{}

// NewTranslator returns the Windows permission translator.
func NewTranslator() Translator {
	return &winTranslator{}
}

// accessMask translates the abstract permission set into generic access
// rights. Absent bits contribute nothing; the empty set yields a zero mask.
func accessMask(perms PermissionSet) uint32 {
	var mask uint32
	if perms.Has(PermRead) {
		mask |= GENERIC_READ
	}
	if perms.Has(PermWrite) {
		mask |= GENERIC_WRITE
	}
	if perms.Has(PermExecute) {
		mask |= GENERIC_EXECUTE
	}
	return mask
}

// allocateAdminSID builds the SID of the built-in Administrators alias
// (S-1-5-32-544). The returned SID must be released with procFreeSid.
func allocateAdminSID() (uintptr, error) {
	var sid uintptr
	ret, _, err := procAllocAndInitSid.Call(
		uintptr(unsafe.Pointer(&securityNTAuthority[0])),
		2,
		SECURITY_BUILTIN_DOMAIN_RID,
		DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		uintptr(unsafe.Pointer(&sid)),
	)
	if ret == 0 || sid == 0 {
		return 0, err
	}
	return sid, nil
}

// BuildDACL constructs a two-entry DACL: the group entry carrying exactly
// the requested permissions, then full control for Administrators so that
// administrative recovery from a misconfigured permission set stays
// possible. Entry order is significant and fixed.
func (t *winTranslator) BuildDACL(group Principal, perms PermissionSet) (*DACL, error) {
	if len(group.SID) == 0 {
		return nil, &TranslationError{Kind: TranslationACLConstructionFailed, Err: errEmptyPrincipal}
	}

	adminSID, err := allocateAdminSID()
	if err != nil {
		var code uintptr
		if errno, ok := err.(syscall.Errno); ok {
			code = uintptr(errno)
		}
		return nil, &TranslationError{Kind: TranslationAdminGroupUnavailable, Code: code, Err: err}
	}
	// Copy the SID out of the API allocation so the entry list does not
	// reference freed memory.
	adminBytes := sidBytes(adminSID)
	procFreeSid.Call(adminSID)
	if len(adminBytes) == 0 {
		return nil, &TranslationError{Kind: TranslationAdminGroupUnavailable}
	}

	groupType := uint32(TRUSTEE_TYPE_GROUP)
	if group.Use != 0 {
		groupType = group.Use
	}

	ea := [2]_EXPLICIT_ACCESS{
		{
			GrfAccessPermissions: accessMask(perms),
			GrfAccessMode:        SET_ACCESS,
			GrfInheritance:       NO_INHERITANCE,
			Trustee: _TRUSTEE{
				TrusteeForm: TRUSTEE_IS_SID,
				TrusteeType: groupType,
				PtstrName:   unsafe.Pointer(&group.SID[0]),
			},
		},
		{
			GrfAccessPermissions: GENERIC_ALL,
			GrfAccessMode:        SET_ACCESS,
			GrfInheritance:       NO_INHERITANCE,
			Trustee: _TRUSTEE{
				TrusteeForm: TRUSTEE_IS_SID,
				TrusteeType: TRUSTEE_TYPE_GROUP,
				PtstrName:   unsafe.Pointer(&adminBytes[0]),
			},
		},
	}

	// nil old ACL: the result replaces any prior DACL instead of merging.
	var pNewAcl uintptr
	ret, _, callErr := procSetEntriesInAcl.Call(
		uintptr(len(ea)),
		uintptr(unsafe.Pointer(&ea[0])),
		0,
		uintptr(unsafe.Pointer(&pNewAcl)),
	)
	if ret != errSuccess || pNewAcl == 0 {
		return nil, &TranslationError{Kind: TranslationACLConstructionFailed, Code: ret, Err: callErr}
	}

	acl := pNewAcl
	return &DACL{
		acl:  acl,
		free: func() { procLocalFree.Call(acl) },
	}, nil
}
