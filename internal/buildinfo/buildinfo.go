package buildinfo

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Short returns a compact build identifier for the window title and logs.
//
// Without ldflags it falls back to the VCS revision recorded by the Go linker.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return shorten(Commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
