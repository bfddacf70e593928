package roster

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/attendly/seminar-api/internal/domain"
)

// SpreadsheetMIME is the content type of the exported workbook.
const SpreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AttendanceWorkbook renders one row per member, sorted by PF number,
// with a Yes/No column for each seminar day. A cell is "Yes" iff an
// attendance row exists for that member and day.
func AttendanceWorkbook(numberOfDays int, members []domain.Member, attendances []domain.Attendance) (*excelize.File, error) {
	present := map[uint]map[int]bool{}
	for _, a := range attendances {
		if present[a.MemberID] == nil {
			present[a.MemberID] = map[int]bool{}
		}
		present[a.MemberID][a.Day] = true
	}

	sorted := make([]domain.Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PFNumber < sorted[j].PFNumber
	})

	header := []interface{}{"PF Number", "First Name", "Last Name", "Department", "Phone"}
	for day := 1; day <= numberOfDays; day++ {
		header = append(header, fmt.Sprintf("Day %d", day))
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	for i, m := range sorted {
		row := []interface{}{m.PFNumber, m.FirstName, m.LastName, m.Department, m.PhoneNumber}
		for day := 1; day <= numberOfDays; day++ {
			if present[m.ID][day] {
				row = append(row, "Yes")
			} else {
				row = append(row, "No")
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	return f, nil
}
