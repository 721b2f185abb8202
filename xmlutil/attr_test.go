package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttr(t *testing.T) {
	attrs := []xml.Attr{
		{Name: xml.Name{Local: "lat"}, Value: "38.8977"},
		{Name: xml.Name{Local: "lon", Space: "http://example.org/ns"}, Value: "-77.0365"},
		{Name: xml.Name{Local: "lat"}, Value: "0"},
	}

	check := assert.New(t)

	v, ok := Attr(attrs, "lat")
	check.True(ok)
	check.Equal("38.8977", v, "first match wins")

	v, ok = Attr(attrs, "lon")
	check.True(ok)
	check.Equal("-77.0365", v, "namespace prefix is ignored")

	_, ok = Attr(attrs, "ele")
	check.False(ok)

	check.Equal("", AttrValue(attrs, "ele"))
	check.Equal("38.8977", AttrValue(attrs, "lat"))
}
