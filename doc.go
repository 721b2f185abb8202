/*
Package gpx reads GPX (GPS Exchange Format) documents from a stream.

The reader is a recursive-descent consumer over the token stream produced
by an encoding/xml Decoder: each GPX entity (metadata, track, route,
waypoint and so on) owns exactly the lifetime of its own element, peeking
one token ahead to dispatch recognized children to their own consumers.
Unknown child elements are a hard error; comments and processing
instructions are skipped. Errors carry the element names involved (see the
gpxerr package) so a failed parse yields a precise diagnostic.

Use Read for plain documents:

	doc, err := gpx.Read(file)

Callers needing custom per-waypoint metadata implement the Extensions
interface and use ReadWithExtensions; the resulting document type carries
the extension value type statically:

	doc, err := gpx.ReadWithExtensions[MyExt](file, myParser{})

See the cmd/gpx directory for a small CLI built on the reader.
*/
package gpx
