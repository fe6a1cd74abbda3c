package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResolvesAbsolutePath(t *testing.T) {
	o := Options{TraceName: "prog", TracePath: "relative/dir", ArchiveName: "archive"}
	require.NoError(t, o.Validate())
	assert.True(t, filepath.IsAbs(o.TracePath))
}

func TestValidateRejectsEmptyTraceName(t *testing.T) {
	o := Options{TracePath: "."}
	assert.Error(t, o.Validate())
}

func TestValidateAppendsHostname(t *testing.T) {
	o := Options{TraceName: "prog", TracePath: "/tmp/otterspan", AppendHostname: true, Hostname: "host-a"}
	require.NoError(t, o.Validate())
	assert.Equal(t, "/tmp/otterspan/host-a", o.TracePath)
}

func TestOverlayYAMLFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("trace_name: overlaid\narchive_name: custom\n"), 0o644))

	o := Options{TraceName: "original", TracePath: dir, ArchiveName: "archive"}
	require.NoError(t, o.overlayYAMLFile(cfgPath))
	assert.Equal(t, "overlaid", o.TraceName)
	assert.Equal(t, "custom", o.ArchiveName)
}

func TestArchivePath(t *testing.T) {
	o := Options{TraceName: "prog", TracePath: "/tmp/otterspan", ArchiveName: "archive"}
	assert.Equal(t, "/tmp/otterspan/archive.otlp", o.ArchivePath())
}
