package version

import (
	"runtime/debug"
)

// String reports the module version stamped into the binary. Untagged builds
// fall back to the VCS revision when the toolchain recorded one.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	if rev := revision(info); rev != "" {
		return "(devel " + rev + ")"
	}
	return "(devel)"
}

func revision(info *debug.BuildInfo) string {
	for _, setting := range info.Settings {
		if setting.Key != "vcs.revision" {
			continue
		}
		rev := setting.Value
		if len(rev) > 12 {
			rev = rev[:12]
		}
		return rev
	}
	return ""
}
