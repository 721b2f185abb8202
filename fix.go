package gpx

// Fix is the GPS fix quality of a waypoint. The GPX schema names a small
// closed set of values, but receivers in the wild write vendor-specific
// ones; those are preserved verbatim rather than rejected. The zero value
// means the fix element was absent.
type Fix string

const (
	// FixNone indicates no fix.
	FixNone Fix = "none"
	// Fix2D is a two-dimensional position fix.
	Fix2D Fix = "2d"
	// Fix3D is a three-dimensional position fix.
	Fix3D Fix = "3d"
	// FixDGPS is a differential GPS fix.
	FixDGPS Fix = "dgps"
)

// Known reports whether f is one of the fix values named by the GPX schema.
func (f Fix) Known() bool {
	switch f {
	case FixNone, Fix2D, Fix3D, FixDGPS:
		return true
	}
	return false
}

// consumeFix consumes a fix element. Values outside the schema's closed
// set are kept verbatim; only an empty element is an error.
func consumeFix[V any](c *context[V]) (Fix, error) {
	raw, err := consumeString(c, "fix", false)
	if err != nil {
		return "", err
	}
	return Fix(raw), nil
}
