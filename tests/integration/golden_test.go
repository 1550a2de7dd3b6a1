package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projroot/internal/adapters"
	"projroot/internal/app"
	"projroot/internal/types"
	"projroot/tests/testutil"
)

const sampleLocation = "/home/user/cosnova/repo/covid19/io"

// TestGoldenOutputs renders resolutions for a fixed location and compares
// them against committed golden files. Missing golden files are written so
// they can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenOutputs(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	service := app.NewService()
	request := app.RootRequest{Location: sampleLocation}

	rootResult, err := service.RootDir(t.Context(), request)
	require.NoError(t, err)
	pathResult, err := service.FilePath(t.Context(), app.FilePathRequest{
		RootRequest:   request,
		RelativePaths: []string{"data/file.csv", "covid19/io"},
	})
	require.NoError(t, err)

	writer := adapters.NewResolutionWriterAdapter()
	outputs := map[string]func(*bytes.Buffer) error{
		"root.yaml": func(buf *bytes.Buffer) error {
			return writer.Write(buf, []types.Resolution{rootResult.Resolution}, types.OutputFormatYAML)
		},
		"path.json": func(buf *bytes.Buffer) error {
			return writer.Write(buf, pathResult.Resolutions, types.OutputFormatJSON)
		},
		"path.txt": func(buf *bytes.Buffer) error {
			return writer.Write(buf, pathResult.Resolutions, types.OutputFormatText)
		},
	}

	for name, render := range outputs {
		t.Run(name, func(t *testing.T) {
			var actual bytes.Buffer
			require.NoError(t, render(&actual))

			goldenPath := filepath.Join(goldenDir, name)
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual.Bytes(), 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), actual.String(),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}

// TestReportRoundTripsThroughService checks that a report written by the
// service lists every requested path in order.
func TestReportRoundTripsThroughService(t *testing.T) {
	service := app.NewService()
	result, err := service.FilePath(t.Context(), app.FilePathRequest{
		RootRequest:   app.RootRequest{Location: sampleLocation},
		RelativePaths: []string{"b", "a"},
	})
	require.NoError(t, err)

	report := filepath.Join(t.TempDir(), "report.yaml")
	var out bytes.Buffer
	require.NoError(t, service.Render(&out, app.RenderRequest{
		Resolutions: result.Resolutions,
		Format:      types.OutputFormatText,
		ReportPath:  report,
	}))
	assert.Equal(t, "/home/user/cosnova/b\n/home/user/cosnova/a\n", out.String())
	require.FileExists(t, report)
}
