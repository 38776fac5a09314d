//go:build windows
// +build windows

package secfs

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"
)

var (
	advapi32               = syscall.NewLazyDLL("advapi32.dll")
	procGetNamedSecInfo    = advapi32.NewProc("GetNamedSecurityInfoW")
	procSetNamedSecInfo    = advapi32.NewProc("SetNamedSecurityInfoW")
	procLookupAccountName  = advapi32.NewProc("LookupAccountNameW")
	procLookupAccountSid   = advapi32.NewProc("LookupAccountSidW")
	procConvertSidToString = advapi32.NewProc("ConvertSidToStringSidW")
	procGetLengthSid       = advapi32.NewProc("GetLengthSid")
	procGetAclInformation  = advapi32.NewProc("GetAclInformation")
	procGetAce             = advapi32.NewProc("GetAce")
	procSetEntriesInAcl    = advapi32.NewProc("SetEntriesInAclW")
	procAllocAndInitSid    = advapi32.NewProc("AllocateAndInitializeSid")
	procFreeSid            = advapi32.NewProc("FreeSid")
	kernel32               = syscall.NewLazyDLL("kernel32.dll")
	procLocalFree          = kernel32.NewProc("LocalFree")
)

const (
	SE_FILE_OBJECT             = 1
	OWNER_SECURITY_INFORMATION = 0x00000001
	DACL_SECURITY_INFORMATION  = 0x00000004
	AclSizeInformation         = 2
	INHERITED_ACE              = 0x10
	ACCESS_ALLOWED_ACE_TYPE    = 0
	ACCESS_DENIED_ACE_TYPE     = 1
)

// Win32 error codes this package classifies.
const (
	errSuccess            = 0
	errFileNotFound       = 2
	errPathNotFound       = 3
	errAccessDenied       = 5
	errInsufficientBuffer = 122
	errNoneMapped         = 1332
)

// sidBytes copies the SID at sid out of the buffer that owns it, so the
// result stays valid after the buffer is freed.
func sidBytes(sid uintptr) []byte {
	lenRet, _, _ := procGetLengthSid.Call(sid)
	if lenRet == 0 {
		return nil
	}
	out := make([]byte, int(lenRet))
	for i := range out {
		out[i] = *(*byte)(unsafe.Pointer(sid + uintptr(i)))
	}
	return out
}

// sidToString converts raw SID bytes into the standard textual form
// (e.g. S-1-5-32-544). The string buffer allocated by the API is freed here.
func sidToString(sid []byte) (string, error) {
	if len(sid) == 0 {
		return "", fmt.Errorf("empty SID")
	}
	var pStr uintptr
	ret, _, err := procConvertSidToString.Call(
		uintptr(unsafe.Pointer(&sid[0])),
		uintptr(unsafe.Pointer(&pStr)),
	)
	if ret == 0 {
		return "", fmt.Errorf("ConvertSidToStringSidW failed: %v", err)
	}
	if pStr == 0 {
		return "", fmt.Errorf("ConvertSidToStringSidW returned NULL")
	}
	defer procLocalFree.Call(pStr)
	return utf16PtrToString((*uint16)(unsafe.Pointer(pStr))), nil
}

func utf16PtrToString(p *uint16) string {
	if p == nil {
		return ""
	}
	var buf []uint16
	for ptr := uintptr(unsafe.Pointer(p)); ; ptr += 2 {
		c := *(*uint16)(unsafe.Pointer(ptr))
		if c == 0 {
			break
		}
		buf = append(buf, c)
	}
	return syscall.UTF16ToString(buf)
}

// maskToRights maps common Windows access mask bits to readable names.
func maskToRights(mask uint32) string {
	var parts []string
	if mask&0x80000000 != 0 {
		parts = append(parts, "GENERIC_READ")
	}
	if mask&0x40000000 != 0 {
		parts = append(parts, "GENERIC_WRITE")
	}
	if mask&0x20000000 != 0 {
		parts = append(parts, "GENERIC_EXECUTE")
	}
	if mask&0x10000000 != 0 {
		parts = append(parts, "GENERIC_ALL")
	}
	if mask&0x00000001 != 0 {
		parts = append(parts, "FILE_READ_DATA")
	}
	if mask&0x00000002 != 0 {
		parts = append(parts, "FILE_WRITE_DATA")
	}
	if mask&0x00000004 != 0 {
		parts = append(parts, "FILE_APPEND_DATA")
	}
	if mask&0x00000020 != 0 {
		parts = append(parts, "FILE_EXECUTE")
	}
	if mask&0x00010000 != 0 {
		parts = append(parts, "DELETE")
	}
	if mask&0x00020000 != 0 {
		parts = append(parts, "READ_CONTROL")
	}
	if mask&0x00040000 != 0 {
		parts = append(parts, "WRITE_DAC")
	}
	if mask&0x00080000 != 0 {
		parts = append(parts, "WRITE_OWNER")
	}
	if mask&0x00100000 != 0 {
		parts = append(parts, "SYNCHRONIZE")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("0x%x", mask)
	}
	return strings.Join(parts, ",")
}

// lookupAccountSID resolves the SID at sid to an account name using the
// two-pass size-then-fill pattern of LookupAccountSidW.
func lookupAccountSID(sid uintptr) (string, error) {
	var nameLen, domLen, sidUse uint32
	_, _, sizeErr := procLookupAccountSid.Call(
		0,
		sid,
		0,
		uintptr(unsafe.Pointer(&nameLen)),
		0,
		uintptr(unsafe.Pointer(&domLen)),
		uintptr(unsafe.Pointer(&sidUse)),
	)
	if nameLen == 0 {
		// The sizing call failed outright; its errno distinguishes an
		// unmapped SID from an account database failure.
		var code uintptr
		if errno, ok := sizeErr.(syscall.Errno); ok {
			code = uintptr(errno)
		}
		kind := ResolutionBackend
		if code == errNoneMapped {
			kind = ResolutionNotFound
		}
		return "", &ResolutionError{Kind: kind, Code: code, Err: sizeErr}
	}
	name := make([]uint16, nameLen)
	dom := make([]uint16, domLen)
	var domPtr uintptr
	if domLen != 0 {
		domPtr = uintptr(unsafe.Pointer(&dom[0]))
	}
	ret, _, err := procLookupAccountSid.Call(
		0,
		sid,
		uintptr(unsafe.Pointer(&name[0])),
		uintptr(unsafe.Pointer(&nameLen)),
		domPtr,
		uintptr(unsafe.Pointer(&domLen)),
		uintptr(unsafe.Pointer(&sidUse)),
	)
	if ret == 0 {
		var code uintptr
		if errno, ok := err.(syscall.Errno); ok {
			code = uintptr(errno)
		}
		kind := ResolutionBackend
		if code == errNoneMapped {
			kind = ResolutionNotFound
		}
		return "", &ResolutionError{Kind: kind, Code: code, Err: err}
	}
	return syscall.UTF16ToString(name), nil
}

// accessError classifies a GetNamedSecurityInfoW/SetNamedSecurityInfoW
// return code into the access error taxonomy.
func accessError(op, path string, code uintptr) error {
	switch code {
	case errSuccess:
		return nil
	case errFileNotFound, errPathNotFound:
		return &AccessError{Kind: AccessPathNotFound, Op: op, Path: path, Code: code}
	case errAccessDenied:
		return &AccessError{Kind: AccessPermissionDenied, Op: op, Path: path, Code: code}
	default:
		return &AccessError{Kind: AccessBackend, Op: op, Path: path, Code: code}
	}
}
