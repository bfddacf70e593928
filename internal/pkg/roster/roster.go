// Package roster reads tabular member files (CSV or XLSX) and renders
// the attendance matrix workbook.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/xuri/excelize/v2"

	"github.com/attendly/seminar-api/internal/pkg/validate"
)

var ErrUnsupportedFormat = errors.New("unsupported file format, use CSV or XLSX")

var requiredColumns = []string{"firstName", "lastName", "pfNumber"}

// MemberRow is one row of an imported roster, whitespace-trimmed.
// Optional columns missing from the file stay empty.
type MemberRow struct {
	FirstName   string
	LastName    string
	PFNumber    string
	Department  string
	PhoneNumber string
}

// Validate applies the same per-field rules as single-member creation,
// keyed by the wire field names so row errors read like request errors.
func (r MemberRow) Validate() error {
	return validation.Errors{
		"firstName":   validation.Validate(r.FirstName, validation.Required, validation.Length(1, 100)),
		"lastName":    validation.Validate(r.LastName, validation.Required, validation.Length(1, 100)),
		"pfNumber":    validation.Validate(r.PFNumber, validation.Required, validation.By(validate.PFNumber)),
		"department":  validation.Validate(r.Department, validation.Length(0, 100)),
		"phoneNumber": validation.Validate(r.PhoneNumber, validation.By(validate.PhoneNumber)),
	}.Filter()
}

// Parse reads a roster file. The header must carry firstName, lastName
// and pfNumber or the whole file is rejected before any row is read.
func Parse(r io.Reader, filename string) ([]MemberRow, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return parseCSV(r)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return parseXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func parseCSV(r io.Reader) ([]MemberRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv.ReadAll -> %w", err)
	}

	return rowsToMembers(records)
}

func parseXLSX(r io.Reader) ([]MemberRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader -> %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("f.GetRows -> %w", err)
	}

	return rowsToMembers(rows)
}

func rowsToMembers(rows [][]string) ([]MemberRow, error) {
	if len(rows) == 0 {
		return nil, errors.New("file is empty")
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	members := make([]MemberRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		members = append(members, MemberRow{
			FirstName:   cell(row, columns, "firstName"),
			LastName:    cell(row, columns, "lastName"),
			PFNumber:    cell(row, columns, "pfNumber"),
			Department:  cell(row, columns, "department"),
			PhoneNumber: cell(row, columns, "phoneNumber"),
		})
	}

	return members, nil
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}
