package gpx

import (
	"strconv"
	"strings"
)

// Optional scalar conversions. Unparsable text degrades to absent (nil)
// rather than failing the parse; only required scalars, such as waypoint
// coordinates, fail hard. See the Bad*Attribute paths in waypoint.go and
// bounds.go for the strict counterparts.

func optInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

func optFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

func optUint32(s string) *uint32 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return nil
	}
	u := uint32(v)
	return &u
}

func optUint64(s string) *uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optUint16(s string) *uint16 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return nil
	}
	u := uint16(v)
	return &u
}
