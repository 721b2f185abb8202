package gpx

import "fmt"

// Version represents the GPX specification version of a document, taken
// from the version attribute of the root element. It is established once
// at the start of parsing and read-only thereafter.
type Version int

const (
	// VersionUnknown indicates the version attribute was absent or not a
	// recognized GPX version.
	VersionUnknown Version = iota
	// Version10 is GPX 1.0
	Version10
	// Version11 is GPX 1.1
	Version11
)

func (v Version) String() string {
	switch v {
	case Version10:
		return "1.0"
	case Version11:
		return "1.1"
	case VersionUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// ParseVersion maps the root element's version attribute value onto a
// Version. Unrecognized values yield VersionUnknown rather than an error;
// the version attribute does not gate parsing.
func ParseVersion(s string) Version {
	switch s {
	case "1.0":
		return Version10
	case "1.1":
		return Version11
	default:
		return VersionUnknown
	}
}
