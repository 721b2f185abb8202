package gpx

import "time"

// Gpx is a parsed GPX document. The type parameter V is the per-waypoint
// extension value type; plain reads use Gpx[Empty].
//
// Optional string fields use the empty string for "absent"; optional
// numeric, time and composite fields are nil when absent. Collections
// preserve document order. No field is mutated after Read returns.
type Gpx[V any] struct {
	Version  Version
	Creator  string
	Metadata *Metadata

	Waypoints []Waypoint[V]
	Tracks    []Track[V]
	Routes    []Route[V]
}

// Metadata holds information about the GPX file itself.
type Metadata struct {
	Name        string
	Description string
	Author      *Person
	Copyright   *Copyright
	Links       []Link
	Time        *time.Time
	Keywords    string
	Bounds      *Bounds
}

// Copyright is the copyright and license block of a document's metadata.
type Copyright struct {
	Author  string
	Year    *int
	License string
}

// Person is a person or organization, used for the metadata author.
type Person struct {
	Name  string
	Email string
	Link  *Link
}

// Link is a link to external information about an entity.
type Link struct {
	Href string
	Text string
	Type string
}

// Bounds describes the lat/lon extent covered by a document.
type Bounds struct {
	MinLatitude  float64
	MinLongitude float64
	MaxLatitude  float64
	MaxLongitude float64
}

// Track is an ordered list of track segments describing a path that was
// taken. A track with no segments is valid.
type Track[V any] struct {
	Name        string
	Comment     string
	Description string
	Source      string
	Links       []Link
	Number      *uint32
	Type        string
	Segments    []TrackSegment[V]
}

// TrackSegment is a run of consecutive track points. A segment with no
// points is valid.
type TrackSegment[V any] struct {
	Points []Waypoint[V]
}

// Route is an ordered list of route points describing a path to be taken.
type Route[V any] struct {
	Name        string
	Comment     string
	Description string
	Source      string
	Links       []Link
	Number      *uint32
	Type        string
	Points      []Waypoint[V]
}

// Waypoint is a single point: a wpt, trkpt or rtept element. Latitude and
// Longitude come from required attributes; everything else is optional.
// Extensions carries the value produced by the active extension hook, and
// is the zero value when no extensions element was present or the hook is
// a no-op.
type Waypoint[V any] struct {
	Latitude  float64
	Longitude float64

	Elevation         *float64
	Time              *time.Time
	MagneticVariation *float64
	GeoidHeight       *float64

	Name        string
	Comment     string
	Description string
	Source      string
	Links       []Link
	Symbol      string
	Type        string

	Fix           Fix
	Satellites    *uint64
	HDOP          *float64
	VDOP          *float64
	PDOP          *float64
	AgeOfDGPSData *float64
	DGPSID        *uint16

	Extensions V
}
