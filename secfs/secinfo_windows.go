//go:build windows
// +build windows

package secfs

import (
	"syscall"
	"unsafe"
)

// winDescriptorAccessor reads and rewrites the owner and DACL portions of a
// path's security descriptor via GetNamedSecurityInfoW and
// SetNamedSecurityInfoW. Every descriptor buffer the API allocates is freed
// before the call returns; owner SIDs are copied out of the buffer first.
type winDescriptorAccessor struct{}

// NewDescriptorAccessor returns the Windows security descriptor accessor.
func NewDescriptorAccessor() DescriptorAccessor {
	return &winDescriptorAccessor{}
}

func (a *winDescriptorAccessor) Owner(path string) (Principal, error) {
	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return Principal{}, &AccessError{Kind: AccessBackend, Op: "get-owner", Path: path, Err: err}
	}

	var pOwner, pSD uintptr
	ret, _, _ := procGetNamedSecInfo.Call(
		uintptr(unsafe.Pointer(pPath)),
		uintptr(SE_FILE_OBJECT),
		uintptr(OWNER_SECURITY_INFORMATION),
		uintptr(unsafe.Pointer(&pOwner)),
		0,
		0,
		0,
		uintptr(unsafe.Pointer(&pSD)),
	)
	if ret != errSuccess {
		return Principal{}, accessError("get-owner", path, ret)
	}
	if pSD != 0 {
		defer procLocalFree.Call(pSD)
	}
	if pOwner == 0 {
		return Principal{}, &AccessError{Kind: AccessBackend, Op: "get-owner", Path: path, Code: ret}
	}

	sid := sidBytes(pOwner)
	if len(sid) == 0 {
		return Principal{}, &AccessError{Kind: AccessBackend, Op: "get-owner", Path: path}
	}
	return Principal{SID: sid, IsGroup: true}, nil
}

func (a *winDescriptorAccessor) SetOwner(path string, p Principal) error {
	if len(p.SID) == 0 {
		return &AccessError{Kind: AccessBackend, Op: "set-owner", Path: path,
			Err: errEmptyPrincipal}
	}
	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return &AccessError{Kind: AccessBackend, Op: "set-owner", Path: path, Err: err}
	}
	ret, _, _ := procSetNamedSecInfo.Call(
		uintptr(unsafe.Pointer(pPath)),
		uintptr(SE_FILE_OBJECT),
		uintptr(OWNER_SECURITY_INFORMATION),
		uintptr(unsafe.Pointer(&p.SID[0])),
		0,
		0,
		0,
	)
	return accessError("set-owner", path, ret)
}

func (a *winDescriptorAccessor) SetDACL(path string, d *DACL) error {
	if d == nil || d.acl == 0 {
		return &AccessError{Kind: AccessBackend, Op: "set-dacl", Path: path,
			Err: errEmptyDACL}
	}
	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return &AccessError{Kind: AccessBackend, Op: "set-dacl", Path: path, Err: err}
	}
	ret, _, _ := procSetNamedSecInfo.Call(
		uintptr(unsafe.Pointer(pPath)),
		uintptr(SE_FILE_OBJECT),
		uintptr(DACL_SECURITY_INFORMATION),
		0,
		0,
		d.acl,
		0,
	)
	return accessError("set-dacl", path, ret)
}
