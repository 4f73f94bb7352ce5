// Package export writes a day's bookings to an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pitchbook/internal/model"
)

var columns = []string{"Time", "Court", "Name", "Email"}

// WriteDay writes bookings (already filtered to one date and sorted by
// hour) as a single sheet named after the date.
func WriteDay(w io.Writer, date string, bookings []model.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := date
	if len(sheet) > 31 {
		sheet = sheet[:31] // Excel sheet name limit
	}
	f.SetSheetName("Sheet1", sheet)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		start, _ := excelize.CoordinatesToCellName(1, 1)
		end, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = f.SetCellStyle(sheet, start, end, style)
	}

	for row, b := range bookings {
		values := []interface{}{b.SlotLabel(), b.Court, b.Name, b.Email}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
