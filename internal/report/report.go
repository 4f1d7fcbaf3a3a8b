package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/pmhub/mentor-back/internal/models"
)

// SheetName is the single sheet of the roster workbook.
const SheetName = "Appointments"

var headers = []string{"ID", "Group", "Leader LINE ID", "Course", "Section", "Mentor", "Day", "Time"}

// AppointmentsWorkbook renders the joined appointment roster as a one-sheet
// xlsx workbook, header row first.
func AppointmentsWorkbook(items []models.AppointmentDetail) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	if err := setRow(f, 1, toCells(headers)); err != nil {
		return nil, err
	}

	for i, it := range items {
		cells := []interface{}{
			it.ID, it.GroupName, it.LeaderLineID, it.CourseCode, it.Section,
			it.PeerMentor.Name, it.PeerMentor.Day, it.PeerMentor.Time,
		}
		if err := setRow(f, i+2, cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
