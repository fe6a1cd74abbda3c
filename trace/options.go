// Package trace is the public entry point for starting and stopping an
// Otter trace: it owns the configured Options, wires together the event
// engine, archive sink and string registry, and exposes the
// Location lifecycle the otter package's instrumentation surface is built
// on.
//
// Grounded on the teacher's config.go, which reads a Config struct's fields
// from the environment first and then decodes an optional YAML settings
// file over it via mapstructure, and on original_source's otter_opt_t /
// `otterTraceInitialise`'s environment-variable parsing.
package trace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Options configures a Runtime. Every field except Hostname has an
// environment-variable equivalent, read by LoadOptions; an optional YAML file named by
// OTTERSPAN_CONFIG can override any subset of them.
type Options struct {
	// TraceName is the logical name recorded in the archive. Defaults to
	// the running binary's name.
	TraceName string `mapstructure:"trace_name"`

	// TracePath is the directory the archive is written under. Defaults
	// to "./otterspan-trace".
	TracePath string `mapstructure:"trace_path"`

	// ArchiveName is the archive file's base name, without extension.
	// Defaults to "archive".
	ArchiveName string `mapstructure:"archive_name"`

	// AppendHostname appends the local hostname to TracePath, so
	// concurrent runs on different hosts sharing a network filesystem
	// don't collide.
	AppendHostname bool `mapstructure:"append_hostname"`

	// Hostname overrides the hostname used by AppendHostname. Left empty,
	// it is resolved from os.Hostname() by Validate.
	Hostname string `mapstructure:"hostname"`
}

const (
	envTraceName      = "OTTERSPAN_TRACE_NAME"
	envTracePath      = "OTTERSPAN_TRACE_PATH"
	envArchiveName    = "OTTERSPAN_ARCHIVE_NAME"
	envAppendHostname = "OTTERSPAN_APPEND_HOSTNAME"
	envConfigFile     = "OTTERSPAN_CONFIG"
)

// LoadOptions builds Options from the environment, applying defaults for
// anything unset, then overlays OTTERSPAN_CONFIG (a YAML file), if set,
// over the result.
func LoadOptions() (Options, error) {
	opts := Options{
		TraceName:      defaultTraceName(),
		TracePath:      "./otterspan-trace",
		ArchiveName:    "archive",
		AppendHostname: false,
	}

	if v := os.Getenv(envTraceName); v != "" {
		opts.TraceName = v
	}
	if v := os.Getenv(envTracePath); v != "" {
		opts.TracePath = v
	}
	if v := os.Getenv(envArchiveName); v != "" {
		opts.ArchiveName = v
	}
	if v := os.Getenv(envAppendHostname); v != "" {
		opts.AppendHostname = v == "1" || v == "true"
	}

	if configPath := os.Getenv(envConfigFile); configPath != "" {
		if err := opts.overlayYAMLFile(configPath); err != nil {
			return Options{}, err
		}
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func defaultTraceName() string {
	exe, err := os.Executable()
	if err != nil {
		return "otterspan"
	}
	return filepath.Base(exe)
}

// overlayYAMLFile decodes the YAML file at path and merges it over o,
// grounded on the teacher's parse_yml.go generic parseYmlFile pattern: YAML
// unmarshaled into a generic map, then mapstructure.Decode'd onto the typed
// struct so unknown keys are ignored rather than erroring.
func (o *Options) overlayYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("trace: read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("trace: parse config %s: %w", path, err)
	}

	if err := mapstructure.Decode(raw, o); err != nil {
		return fmt.Errorf("trace: decode config %s: %w", path, err)
	}
	return nil
}

// Validate normalises TracePath to an absolute path, resolves Hostname if
// AppendHostname is set but Hostname is empty, and appends the hostname to
// TracePath.
func (o *Options) Validate() error {
	if o.TraceName == "" {
		return fmt.Errorf("trace: trace name must not be empty")
	}

	abs, err := filepath.Abs(o.TracePath)
	if err != nil {
		return fmt.Errorf("trace: resolve trace path %s: %w", o.TracePath, err)
	}
	o.TracePath = abs

	if o.AppendHostname {
		if o.Hostname == "" {
			h, err := os.Hostname()
			if err != nil {
				return fmt.Errorf("trace: resolve hostname: %w", err)
			}
			o.Hostname = h
		}
		o.TracePath = filepath.Join(o.TracePath, o.Hostname)
	}

	if o.ArchiveName == "" {
		o.ArchiveName = "archive"
	}
	return nil
}

// ArchivePath returns the full path Finalise will write the archive to.
func (o *Options) ArchivePath() string {
	return filepath.Join(o.TracePath, o.ArchiveName+".otlp")
}
