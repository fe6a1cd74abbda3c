package archive

import (
	"fmt"
	"os"

	"go.opentelemetry.io/collector/pdata/ptrace"
)

// WriteFile marshals td with the OTLP protobuf wire format and writes it to
// path, overwriting any existing file. This is the archive's on-disk
// format: a single ptrace.Traces protobuf message, the direct analogue of
// an OTF2 archive's anchor file.
func WriteFile(td ptrace.Traces, path string) error {
	data, err := (&ptrace.ProtoMarshaler{}).MarshalTraces(td)
	if err != nil {
		return fmt.Errorf("archive: marshal traces: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("archive: write %s: %w", path, err)
	}
	return nil
}
