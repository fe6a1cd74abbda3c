package trace

import (
	"runtime/debug"
	"strings"
)

// modulePath is this module's path. Matched against build-info dependency
// paths below to find the semantic version tag the consuming program
// actually resolved, since this module is consumed in source form rather
// than as a binary artifact and so cannot have -ldflags bake a version in
// at build time. Grounded on the teacher's version.go, which performs the
// same dependency-path scan for its own module; here it is resolved once by
// a package-level var initialiser (rather than in an init() function) and
// returned by Version, so Runtime can report it through the same logger
// every other component uses instead of leaving it as a standalone, unwired
// constant.
const modulePath = "github.com/otterspan/otterspan"

const unknownVersion = "v0.0.0-unset"

var version = resolveVersion()

func resolveVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}
	for _, dep := range bi.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}
	// A binary built directly from this module (such as cmd/otterctl) has
	// otterspan as its main module rather than as a dependency. The Go
	// toolchain reports "(devel)" for a main module with no release tag,
	// which is not a version tag.
	if strings.HasPrefix(bi.Main.Path, modulePath) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return unknownVersion
}

// Version reports the semantic version tag of the otterspan module linked
// into the running process, or "v0.0.0-unset" if none could be resolved —
// the common case in local unit tests, where no release tag is checked out.
func Version() string {
	return version
}
