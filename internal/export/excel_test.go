package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pitchbook/internal/model"
)

func TestWriteDay(t *testing.T) {
	bookings := []model.Booking{
		{ID: "2024-06-10-1-9", Name: "A", Email: "a@x.com", Court: 1, Date: "2024-06-10", StartHour: 9},
		{ID: "2024-06-10-2-15", Name: "B", Email: "b@x.com", Court: 2, Date: "2024-06-10", StartHour: 15},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDay(&buf, "2024-06-10", bookings))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"2024-06-10"}, f.GetSheetList())

	header, err := f.GetCellValue("2024-06-10", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Time", header)

	name, err := f.GetCellValue("2024-06-10", "C2")
	require.NoError(t, err)
	assert.Equal(t, "A", name)

	slot, err := f.GetCellValue("2024-06-10", "A3")
	require.NoError(t, err)
	assert.Equal(t, "15:00 – 16:00", slot)
}

func TestWriteDayEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDay(&buf, "2024-06-10", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("2024-06-10")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
