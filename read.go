package gpx

import "io"

// Read parses a GPX document from r. Waypoint extensions elements are
// skipped; use ReadWithExtensions to capture them.
//
// The whole document is consumed in one call. Any structural error aborts
// the parse; there is no partial-document recovery.
func Read(r io.Reader) (*Gpx[Empty], error) {
	return ReadWithExtensions[Empty](r, NoExtensions{})
}

// ReadWithExtensions parses a GPX document from r, invoking ext for each
// waypoint extensions element encountered. The extension value type V is
// carried statically on the returned document and its waypoints.
func ReadWithExtensions[V any](r io.Reader, ext Extensions[V]) (*Gpx[V], error) {
	return consumeGpx(newContext(r, VersionUnknown, ext))
}
