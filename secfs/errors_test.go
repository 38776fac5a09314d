package secfs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPermissionDenied(t *testing.T) {
	denied := &AccessError{Kind: AccessPermissionDenied, Op: "set-dacl", Path: "/x"}
	require.True(t, IsPermissionDenied(denied))
	require.True(t, IsPermissionDenied(fmt.Errorf("applying manifest: %w", denied)))

	require.False(t, IsPermissionDenied(&AccessError{Kind: AccessBackend}))
	require.False(t, IsPermissionDenied(&ResolutionError{Kind: ResolutionNotFound}))
	require.False(t, IsPermissionDenied(nil))
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(&ResolutionError{Kind: ResolutionNotFound, Name: "ghost"}))
	require.True(t, IsNotFound(&AccessError{Kind: AccessPathNotFound, Path: "/missing"}))
	require.False(t, IsNotFound(&AccessError{Kind: AccessPermissionDenied}))
	require.False(t, IsNotFound(&ResolutionError{Kind: ResolutionAmbiguous}))
}

func TestErrorMessagesCarryBackendCode(t *testing.T) {
	err := &AccessError{Kind: AccessBackend, Op: "set-dacl", Path: `C:\x`, Code: 1336}
	require.Contains(t, err.Error(), "1336")
	require.Contains(t, err.Error(), "set-dacl")

	rerr := &ResolutionError{Kind: ResolutionBackend, Name: "dom\\user", Code: 1789}
	require.Contains(t, rerr.Error(), "1789")

	terr := &TranslationError{Kind: TranslationACLConstructionFailed, Code: 87}
	require.Contains(t, terr.Error(), "87")
}

func TestResolutionErrorKinds(t *testing.T) {
	require.Contains(t, (&ResolutionError{Kind: ResolutionNotFound, Name: "ghost"}).Error(), "not found")
	require.Contains(t, (&ResolutionError{Kind: ResolutionAmbiguous, Name: "svc"}).Error(), "ambiguous")
	require.Contains(t, (&TranslationError{Kind: TranslationAdminGroupUnavailable}).Error(), "administrators")
}
