//go:build windows
// +build windows

package secfs

import (
	"fmt"
	"syscall"
	"unsafe"
)

// winResolver resolves account and group names via LookupAccountNameW and
// LookupAccountSidW, using the two-pass size-then-fill pattern so names and
// SIDs of any length are handled without truncation.
type winResolver struct{}

// NewResolver returns the Windows principal resolver.
func NewResolver() Resolver {
	return &winResolver{}
}

// SID_NAME_USE values reported by LookupAccountNameW.
const (
	sidTypeUser    = 1
	sidTypeGroup   = 2
	sidTypeAlias   = 4
	sidTypeUnknown = 8
)

func (r *winResolver) ResolveName(name string) (Principal, error) {
	if name == "" {
		return Principal{}, &ResolutionError{Kind: ResolutionNotFound, Name: name}
	}
	pName, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return Principal{}, &ResolutionError{Kind: ResolutionBackend, Name: name, Err: err}
	}

	var sidSize, domSize, sidUse uint32
	// First call sizes the output buffers; on the success path it fails
	// with ERROR_INSUFFICIENT_BUFFER and fills the sizes.
	_, _, sizeErr := procLookupAccountName.Call(
		0,
		uintptr(unsafe.Pointer(pName)),
		0,
		uintptr(unsafe.Pointer(&sidSize)),
		0,
		uintptr(unsafe.Pointer(&domSize)),
		uintptr(unsafe.Pointer(&sidUse)),
	)
	if sidSize == 0 {
		// The sizing call failed outright; its errno distinguishes an
		// unmapped name from an account database failure.
		var code uintptr
		if errno, ok := sizeErr.(syscall.Errno); ok {
			code = uintptr(errno)
		}
		kind := ResolutionBackend
		if code == errNoneMapped {
			kind = ResolutionNotFound
		}
		return Principal{}, &ResolutionError{Kind: kind, Name: name, Code: code, Err: sizeErr}
	}
	sid := make([]byte, sidSize)
	dom := make([]uint16, domSize)
	var domPtr uintptr
	if domSize != 0 {
		domPtr = uintptr(unsafe.Pointer(&dom[0]))
	}
	ret, _, callErr := procLookupAccountName.Call(
		0,
		uintptr(unsafe.Pointer(pName)),
		uintptr(unsafe.Pointer(&sid[0])),
		uintptr(unsafe.Pointer(&sidSize)),
		domPtr,
		uintptr(unsafe.Pointer(&domSize)),
		uintptr(unsafe.Pointer(&sidUse)),
	)
	if ret == 0 {
		var code uintptr
		if errno, ok := callErr.(syscall.Errno); ok {
			code = uintptr(errno)
		}
		kind := ResolutionBackend
		if code == errNoneMapped {
			kind = ResolutionNotFound
		}
		return Principal{}, &ResolutionError{Kind: kind, Name: name, Code: code, Err: callErr}
	}
	if sidUse == sidTypeUnknown {
		// Resolution succeeded but the account's domain scope could not
		// be determined.
		return Principal{}, &ResolutionError{Kind: ResolutionAmbiguous, Name: name}
	}

	return Principal{
		SID:     sid,
		Use:     sidUse,
		IsGroup: sidUse == sidTypeGroup || sidUse == sidTypeAlias,
	}, nil
}

func (r *winResolver) ResolveID(p Principal) (string, error) {
	if len(p.SID) == 0 {
		return "", &ResolutionError{Kind: ResolutionNotFound, Err: fmt.Errorf("empty SID")}
	}
	return lookupAccountSID(uintptr(unsafe.Pointer(&p.SID[0])))
}
