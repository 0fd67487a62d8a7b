package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeFinder serves canned text per locator; unknown locators behave like
// a timed-out lookup.
type fakeFinder struct {
	texts map[string]string
}

func (f *fakeFinder) Text(_ context.Context, xpath string) (string, error) {
	txt, ok := f.texts[xpath]
	if !ok {
		return "", errors.New("no match")
	}
	return txt, nil
}

func TestBuildRecord(t *testing.T) {
	f := &fakeFinder{texts: map[string]string{
		locService:       "Service:\nDrain Cleaning",
		locWorkOrder:     "Work Order: WO-1042",
		locCustomerName:  "Name: Pat Smith",
		locCustomerPhone: "Phone: (303) 555-0147",
		locDescription:   "Kitchen sink backing up.",
		locApptDate:      "Mar 3, 2026",
		locApptTime:      "8:00 AM - 12:00 PM",
		locStreet:        "123 Main St",
		locCityStateZip:  "Denver, CO 80202",
	}}

	rec := BuildRecord(context.Background(), f)

	require.Equal(t, JobRecord{
		Service:         "Drain Cleaning",
		WorkOrder:       "WO-1042",
		CustomerName:    "Pat Smith",
		CustomerPhone:   "(303) 555-0147",
		StreetAddress:   "123 Main St",
		City:            "Denver",
		State:           "CO",
		ZipCode:         "80202",
		Country:         "US",
		AppointmentDate: "Mar 3, 2026",
		AppointmentTime: "8:00 AM - 12:00 PM",
		JobDescription:  "Kitchen sink backing up.",
	}, rec)
}

func TestBuildRecordEverythingMissing(t *testing.T) {
	rec := BuildRecord(context.Background(), &fakeFinder{texts: map[string]string{}})

	// A blank detail view degrades to an all-sentinel record instead of
	// being dropped; country stays constant.
	for i, v := range rec.Fields() {
		if Header()[i] == "Country" {
			require.Equal(t, "US", v)
			continue
		}
		require.Equal(t, NA, v, "field %s", Header()[i])
	}
}

func TestBuildRecordUnparseableAddress(t *testing.T) {
	f := &fakeFinder{texts: map[string]string{
		locStreet:       "456 Oak Ave",
		locCityStateZip: "Denver CO 80202", // no comma
	}}

	rec := BuildRecord(context.Background(), f)

	require.Equal(t, "456 Oak Ave", rec.StreetAddress)
	require.Equal(t, NA, rec.City)
	require.Equal(t, NA, rec.State)
	require.Equal(t, NA, rec.ZipCode)
}

func TestExtractTextTrimsAndDegrades(t *testing.T) {
	f := &fakeFinder{texts: map[string]string{
		"//a": "  padded  ",
		"//b": "   ",
	}}

	require.Equal(t, "padded", extractText(context.Background(), f, "//a"))
	require.Equal(t, NA, extractText(context.Background(), f, "//b"))
	require.Equal(t, NA, extractText(context.Background(), f, "//missing"))
}

func TestStripLabel(t *testing.T) {
	require.Equal(t, "Drain Cleaning", stripLabel("Service: Drain Cleaning", "Service:"))
	require.Equal(t, NA, stripLabel(NA, "Service:"))
	require.Equal(t, NA, stripLabel("Service:", "Service:"))
	require.Equal(t, "no label here", stripLabel("no label here", "Service:"))
}

func TestFieldsMatchesHeader(t *testing.T) {
	require.Len(t, JobRecord{}.Fields(), len(Header()))
}
