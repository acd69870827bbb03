// Package version reports the build version of the spinbutton binary.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/spinbutton/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/spinbutton/internal/version.Commit=abc1234"
var (
	Version = ""
	Commit  = ""
)

// Info is what the version command prints
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Dirty     bool
}

var (
	info     Info
	infoOnce sync.Once
)

// Get returns the version info, filling gaps from the module build info.
func Get() Info {
	infoOnce.Do(func() {
		info = Info{Version: Version, Commit: Commit}
		if bi, ok := debug.ReadBuildInfo(); ok {
			info = fromBuildInfo(info, bi)
		}
		if info.Version == "" {
			info.Version = "dev"
		}
		if info.Commit == "" {
			info.Commit = "unknown"
		}
	})
	return info
}

// fromBuildInfo fills empty fields of in from bi. Values set by ldflags win.
func fromBuildInfo(in Info, bi *debug.BuildInfo) Info {
	in.GoVersion = bi.GoVersion

	if in.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		in.Version = bi.Main.Version
	}

	var revision, vcsTime string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			in.Dirty = s.Value == "true"
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if in.Commit == "" && revision != "" {
		in.Commit = revision
		if len(in.Commit) > 7 {
			in.Commit = in.Commit[:7]
		}
		if in.Dirty {
			in.Commit += "-dirty"
		}
	}
	if in.Version == "" && len(vcsTime) >= 10 {
		in.Version = "dev-" + vcsTime[:10]
	}
	return in
}

// Full returns the version string including commit
func Full() string {
	i := Get()
	return fmt.Sprintf("%s (commit: %s)", i.Version, i.Commit)
}
