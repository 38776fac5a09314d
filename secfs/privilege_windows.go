//go:build windows
// +build windows

package secfs

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// NewPrivilegeGuard returns the Windows privilege scope guard. Privileges
// are token-wide state, so enables are reference-counted per privilege name
// and the token is only adjusted back when the last scope exits.
func NewPrivilegeGuard() PrivilegeGuard {
	return &countedGuard{
		held:    make(map[string]int),
		enable:  func(name string) error { return adjustPrivilege(name, true) },
		disable: func(name string) error { return adjustPrivilege(name, false) },
	}
}

func adjustPrivilege(name string, enable bool) error {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(),
		windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token)
	if err != nil {
		return fmt.Errorf("OpenProcessToken: %w", err)
	}
	defer token.Close()

	pName, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	var luid windows.LUID
	if err := windows.LookupPrivilegeValue(nil, pName, &luid); err != nil {
		return fmt.Errorf("LookupPrivilegeValue %s: %w", name, err)
	}

	var attrs uint32
	if enable {
		attrs = windows.SE_PRIVILEGE_ENABLED
	}
	tp := windows.Tokenprivileges{
		PrivilegeCount: 1,
		Privileges:     [1]windows.LUIDAndAttributes{{Luid: luid, Attributes: attrs}},
	}
	if err := windows.AdjustTokenPrivileges(token, false, &tp, 0, nil, nil); err != nil {
		return fmt.Errorf("AdjustTokenPrivileges %s: %w", name, err)
	}
	// AdjustTokenPrivileges can report success without assigning anything.
	if err := windows.GetLastError(); err == windows.ERROR_NOT_ALL_ASSIGNED {
		return fmt.Errorf("privilege %s is not held by this token", name)
	}
	return nil
}
