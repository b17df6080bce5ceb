package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"reddybook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ist(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestParseDateRange_EndDayInclusive(t *testing.T) {
	loc := ist(t)
	r, err := ParseDateRange("2025-01-01", "2025-01-31", loc)
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, loc)))
	assert.True(t, r.Contains(time.Date(2025, 1, 31, 23, 59, 0, 0, loc)))
	assert.False(t, r.Contains(time.Date(2025, 2, 1, 0, 0, 0, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 12, 31, 23, 59, 59, 0, loc)))
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, loc), r.End())
}

func TestParseDateRange_EmptyBoundsCoverEverything(t *testing.T) {
	r, err := ParseDateRange("", "", time.UTC)
	require.NoError(t, err)
	for _, ts := range []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2100, 1, 1, 23, 0, 0, 0, time.UTC),
	} {
		assert.True(t, r.Contains(ts), ts)
	}
	assert.False(t, r.Contains(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateRange_Malformed(t *testing.T) {
	_, err := ParseDateRange("01/02/2025", "", time.UTC)
	assert.Error(t, err)
	_, err = ParseDateRange("", "2025-13-01", time.UTC)
	assert.Error(t, err)
}

func sampleRows(loc *time.Location) []models.Submission {
	contacted := "contacted"
	pending := "pending"
	return []models.Submission{
		{Name: "Ravi, Jr.", MobileNumber: "9876543210", SelectedWebsite: "ReddyBook", Status: &contacted, SubmittedAt: time.Date(2025, 3, 10, 18, 5, 0, 0, loc)},
		{Name: "Asha", MobileNumber: "7000000001", SelectedWebsite: "Lotus365", Status: &pending, SubmittedAt: time.Date(2025, 2, 1, 9, 30, 0, 0, loc)},
		{Name: "Old", MobileNumber: "6000000002", SelectedWebsite: "Fairplay", SubmittedAt: time.Date(2024, 12, 1, 9, 0, 0, 0, loc)},
	}
}

func TestWriteCSV_OnlyInRangeRows(t *testing.T) {
	loc := ist(t)
	r, err := ParseDateRange("2025-01-01", "2025-12-31", loc)
	require.NoError(t, err)
	rows := Filter(sampleRows(loc), r)
	require.Len(t, rows, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, Format{CountryCode: "91", Location: loc}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"Ravi, Jr.", "+919876543210", "ReddyBook", "contacted", "2025-03-10 18:05"}, records[1])
	assert.Equal(t, []string{"Asha", "+917000000001", "Lotus365", "pending", "2025-02-01 09:30"}, records[2])
}

func TestWriteCSV_FormatsInConfiguredZone(t *testing.T) {
	loc := ist(t)
	rows := []models.Submission{{Name: "A", MobileNumber: "9000000000", SelectedWebsite: "X", SubmittedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, Format{CountryCode: "91", Location: loc}))
	assert.Contains(t, buf.String(), "2025-01-01 05:30")
}

func TestWriteXLSX(t *testing.T) {
	loc := ist(t)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRows(loc), Format{CountryCode: "91", Location: loc}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "+919876543210", rows[1][1])
	assert.Equal(t, "", rows[3][3])
}
