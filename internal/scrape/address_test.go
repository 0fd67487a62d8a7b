package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCityStateZip(t *testing.T) {
	testCases := []struct {
		raw   string
		city  string
		state string
		zip   string
	}{
		{
			raw:   "Denver, CO 80202",
			city:  "Denver",
			state: "CO",
			zip:   "80202",
		},
		{
			// multi-word city passes through verbatim
			raw:   "Salt Lake City, UT 84101",
			city:  "Salt Lake City",
			state: "UT",
			zip:   "84101",
		},
		{
			// city containing a comma: greedy capture keeps everything
			// before the final ", ST ZIP"
			raw:   "Somewhere, Anytown, TX 75001",
			city:  "Somewhere, Anytown",
			state: "TX",
			zip:   "75001",
		},
		{raw: "N/A", city: NA, state: NA, zip: NA},
		{raw: "", city: NA, state: NA, zip: NA},
		{raw: "123 Main St", city: NA, state: NA, zip: NA},
		{raw: "Denver CO 80202", city: NA, state: NA, zip: NA},       // missing comma
		{raw: "Denver, co 80202", city: NA, state: NA, zip: NA},      // lowercase state
		{raw: "Denver, CO 80202-1234", city: NA, state: NA, zip: NA}, // zip+4
		{raw: "Denver, CO 8020", city: NA, state: NA, zip: NA},       // truncated zip
		{raw: "Denver, COL 80202", city: NA, state: NA, zip: NA},     // three-letter state
	}

	for _, tc := range testCases {
		city, state, zip := ParseCityStateZip(tc.raw)
		require.Equal(t, tc.city, city, "city of %q", tc.raw)
		require.Equal(t, tc.state, state, "state of %q", tc.raw)
		require.Equal(t, tc.zip, zip, "zip of %q", tc.raw)
	}
}
