package gpx

import (
	"strings"
	"time"
)

// timeLayouts are tried in order. GPX timestamps are xsd:dateTime, which
// RFC 3339 covers; receivers also emit fractional seconds without a zone
// or omit the zone entirely.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// consumeTime consumes a single time element and converts its content to a
// timestamp. A structurally valid element whose content does not parse as
// a timestamp yields absent, like every other optional scalar.
func consumeTime[V any](c *context[V], local string) (*time.Time, error) {
	raw, err := consumeString(c, local, true)
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if ts, perr := time.Parse(layout, raw); perr == nil {
			return &ts, nil
		}
	}
	return nil, nil
}
