// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"projroot/pkg/projectroot"
)

// RepoRoot returns the repository root as a projectroot.Root directory,
// two levels above the calling test package.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	root, err := projectroot.New(filepath.Join(dir, "..", ".."))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(root.Dir(), "go.mod"))
	return root.Dir()
}
