//go:build windows
// +build windows

package secfs

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/spf13/afero"
)

// WinInspector reads back ownership and DACL contents using Win32 APIs. It
// obtains the file owner and enumerates the ACEs of the DACL.
type WinInspector struct {
	Fs afero.Fs
}

// NewInspector returns the Windows ACL inspector.
func NewInspector(fs afero.Fs) Inspector {
	return &WinInspector{Fs: fs}
}

func (w *WinInspector) Inspect(path string) (Report, error) {
	r := Report{Path: path}
	if w.Fs == nil {
		w.Fs = afero.NewOsFs()
	}
	if _, err := w.Fs.Stat(path); err != nil {
		r.Problems = append(r.Problems, fmt.Sprintf("open %s: %v", path, err))
		return r, nil
	}
	r.Exists = true

	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return r, err
	}
	var pOwner, pDacl, pSD uintptr
	flags := OWNER_SECURITY_INFORMATION | DACL_SECURITY_INFORMATION
	ret, _, _ := procGetNamedSecInfo.Call(
		uintptr(unsafe.Pointer(pPath)),
		uintptr(SE_FILE_OBJECT),
		uintptr(flags),
		uintptr(unsafe.Pointer(&pOwner)),
		0,
		uintptr(unsafe.Pointer(&pDacl)),
		0,
		uintptr(unsafe.Pointer(&pSD)),
	)
	if ret != errSuccess {
		r.Problems = append(r.Problems, fmt.Sprintf("GetNamedSecurityInfoW failed: error=%d", ret))
		return r, nil
	}
	if pSD != 0 {
		defer procLocalFree.Call(pSD)
	}

	if pOwner != 0 {
		if sid := sidBytes(pOwner); len(sid) > 0 {
			if s, err := sidToString(sid); err == nil {
				r.OwnerSID = s
			}
		}
		if name, err := lookupAccountSID(pOwner); err == nil {
			r.Owner = name
		} else {
			r.Problems = append(r.Problems, fmt.Sprintf("owner lookup failed: %v", err))
		}
	} else {
		r.Problems = append(r.Problems, "owner SID not available")
	}

	if pDacl == 0 {
		return r, nil
	}
	var info struct {
		AceCount      uint32
		AclBytesInUse uint32
		AclBytesFree  uint32
	}
	ret2, _, _ := procGetAclInformation.Call(
		pDacl,
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Sizeof(info)),
		uintptr(AclSizeInformation),
	)
	if ret2 == 0 {
		r.Problems = append(r.Problems, "GetAclInformation failed")
		return r, nil
	}
	for i := uint32(0); i < info.AceCount; i++ {
		var pAce uintptr
		ok, _, _ := procGetAce.Call(pDacl, uintptr(i), uintptr(unsafe.Pointer(&pAce)))
		if ok == 0 || pAce == 0 {
			r.Problems = append(r.Problems, fmt.Sprintf("GetAce failed for index %d", i))
			continue
		}
		// ACE header layout: Type(1), Flags(1), Size(2), then the mask and
		// the trustee SID.
		aceType := *(*byte)(unsafe.Pointer(pAce))
		aceFlags := *(*byte)(unsafe.Pointer(pAce + 1))
		mask := *(*uint32)(unsafe.Pointer(pAce + 4))
		sidPtr := pAce + 8

		ace := ACE{
			Principal: "<unknown>",
			Mask:      mask,
			Rights:    maskToRights(mask),
			Inherited: aceFlags&INHERITED_ACE != 0,
		}
		switch aceType {
		case ACCESS_ALLOWED_ACE_TYPE:
			ace.Type = "allow"
		case ACCESS_DENIED_ACE_TYPE:
			ace.Type = "deny"
		default:
			ace.Type = fmt.Sprintf("type-%d", aceType)
		}
		if name, err := lookupAccountSID(sidPtr); err == nil {
			ace.Principal = name
		}
		if sid := sidBytes(sidPtr); len(sid) > 0 {
			if s, err := sidToString(sid); err == nil {
				ace.SID = s
			}
		}
		r.ACEs = append(r.ACEs, ace)
	}
	return r, nil
}
