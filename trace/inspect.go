package trace

import (
	"fmt"
	"os"

	"go.opentelemetry.io/collector/pdata/ptrace"
)

// Summary reports the shape of an archive file without needing a caller to
// know anything about its pdata encoding.
type Summary struct {
	ResourceCount int
	SpanCount     int
}

// Inspect reads and decodes the archive file at path, returning a summary
// of its contents. Used by cmd/otterctl's `inspect` subcommand.
func Inspect(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("trace: read archive %s: %w", path, err)
	}

	td, err := (&ptrace.ProtoUnmarshaler{}).UnmarshalTraces(data)
	if err != nil {
		return Summary{}, fmt.Errorf("trace: decode archive %s: %w", path, err)
	}

	return Summary{
		ResourceCount: td.ResourceSpans().Len(),
		SpanCount:     td.SpanCount(),
	}, nil
}
