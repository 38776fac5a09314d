//go:build !windows
// +build !windows

package secfs

import (
	"fmt"
	"os/user"
	"strconv"
	"syscall"

	"github.com/spf13/afero"
)

// UnixInspector reports ownership and mode bits on POSIX systems.
type UnixInspector struct {
	Fs afero.Fs
}

// NewInspector returns the POSIX inspector.
func NewInspector(fs afero.Fs) Inspector {
	return &UnixInspector{Fs: fs}
}

func (u *UnixInspector) Inspect(path string) (Report, error) {
	r := Report{Path: path}
	if u.Fs == nil {
		u.Fs = afero.NewOsFs()
	}
	fi, err := u.Fs.Stat(path)
	if err != nil {
		r.Problems = append(r.Problems, fmt.Sprintf("open %s: %v", path, err))
		return r, nil
	}
	r.Exists = true
	r.Mode = fi.Mode().Perm()

	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		// In-memory filesystems carry no ownership information.
		return r, nil
	}
	if uobj, err := user.LookupId(strconv.FormatUint(uint64(st.Uid), 10)); err == nil {
		r.Owner = uobj.Username
	} else {
		r.Problems = append(r.Problems, fmt.Sprintf("could not determine owner for %s (uid=%d)", path, st.Uid))
	}
	return r, nil
}
