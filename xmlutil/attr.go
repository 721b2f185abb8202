// Package xmlutil provides small helpers for working with encoding/xml
// attributes.
package xmlutil

import "encoding/xml"

// Attr returns the value of the first attribute whose local name matches,
// and whether it was found. Namespace prefixes are ignored; GPX attributes
// are unqualified.
func Attr(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the value of the first attribute whose local name
// matches, or the empty string.
func AttrValue(attrs []xml.Attr, local string) string {
	v, _ := Attr(attrs, local)
	return v
}
