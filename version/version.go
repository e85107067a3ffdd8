package version

import (
	"fmt"
	"runtime/debug"
)

const unavailable = "unavailable"

// FromBuildInfo describes the running binary for --version.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unavailable
	}

	return describe(info)
}

func describe(info *debug.BuildInfo) string {
	var revision, ts string

	modified := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			ts = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	// Installed with `go install module@version`.
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	if revision == "" {
		return unavailable
	}

	if modified {
		revision += "-dirty"
	}

	if ts == "" {
		return fmt.Sprintf("devel %s", revision)
	}

	return fmt.Sprintf("devel %s built at %s", revision, ts)
}
