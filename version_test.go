package gpx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Version
		str  string
	}{
		{in: "1.0", want: Version10, str: "1.0"},
		{in: "1.1", want: Version11, str: "1.1"},
		{in: "", want: VersionUnknown, str: "unknown"},
		{in: "2.0", want: VersionUnknown, str: "unknown"},
	} {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			got := ParseVersion(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.str, got.String())
		})
	}
}
