package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocationAdapter_ReportsAdapterDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	location, err := NewSourceLocationAdapter().Location()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(location))
	assert.Equal(t, filepath.Base(wd), filepath.Base(location))
	assert.Equal(t, "internal", filepath.Base(filepath.Dir(location)))
}

func TestSourceLocationAdapter_IsStable(t *testing.T) {
	adapter := NewSourceLocationAdapter()
	first, err := adapter.Location()
	require.NoError(t, err)
	second, err := adapter.Location()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStaticLocationAdapter(t *testing.T) {
	location, err := NewStaticLocationAdapter("/home/user/cosnova/repo").Location()
	require.NoError(t, err)
	assert.Equal(t, "/home/user/cosnova/repo", location)
}

func TestStaticLocationAdapter_EmptyErrors(t *testing.T) {
	tests := []struct {
		path    string
		wantMsg string
	}{
		{path: "", wantMsg: "location is empty"},
		{path: "   ", wantMsg: "location is empty"},
		{path: "home/user/cosnova/x", wantMsg: "location must be absolute"},
		{path: "./cosnova", wantMsg: "location must be absolute"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			location, err := NewStaticLocationAdapter(tt.path).Location()
			require.Error(t, err)
			assert.Empty(t, location)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
