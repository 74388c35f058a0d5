package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"hrassist/database"
	"hrassist/models"
	"hrassist/store"

	"github.com/xuri/excelize/v2"
)

type ReportType string

const (
	ReportEmployees  ReportType = "employees"
	ReportLeaves     ReportType = "leaves"
	ReportAttendance ReportType = "attendance"
	ReportPromotions ReportType = "promotions"
)

var ErrUnknownReportType = errors.New("unknown report type")

// Result counts what a completed import wrote.
type Result struct {
	Inserted int
	Updated  int
}

// ReadRows reads a CSV or single-sheet XLSX upload into raw string rows,
// first row included.
func ReadRows(reader io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".csv" {
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("could not parse CSV file: %w", err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("file is empty")
		}
		return rows, nil
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}

// Import writes the parsed rows into the table for the given report type.
// Rows written before a failing row stay written.
func Import(reportType ReportType, rows [][]string) (*Result, error) {
	switch reportType {
	case ReportEmployees:
		return importEmployees(rows)
	case ReportLeaves:
		return importLeaves(rows)
	case ReportAttendance:
		return importAttendance(rows)
	case ReportPromotions:
		return importPromotions(rows)
	default:
		return nil, ErrUnknownReportType
	}
}

// importEmployees upserts keyed by email: an existing email overwrites every
// non-key field in place, a new email inserts.
func importEmployees(rows [][]string) (*Result, error) {
	cols := headerIndex(rows[0])
	result := &Result{}

	for i, row := range rows[1:] {
		salary, err := parseFloat(colValue(row, cols, "salary"))
		if err != nil {
			return result, fmt.Errorf("row %d: invalid salary: %w", i+2, err)
		}

		email := colValue(row, cols, "email")
		incoming := models.Employee{
			FirstName:  colValue(row, cols, "first_name"),
			LastName:   colValue(row, cols, "last_name"),
			Email:      email,
			Phone:      colValue(row, cols, "phone"),
			Department: colValue(row, cols, "department"),
			Position:   colValue(row, cols, "position"),
			DateOfHire: colValue(row, cols, "date_of_hire"),
			Salary:     salary,
			Address:    colValue(row, cols, "address"),
		}

		existing, err := store.EmployeeByEmail(email)
		switch {
		case err == nil:
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := store.UpdateEmployee(&incoming); err != nil {
				return result, fmt.Errorf("row %d: %w", i+2, err)
			}
			result.Updated++
		case errors.Is(err, store.ErrEmployeeNotFound):
			if err := store.AddEmployee(&incoming); err != nil {
				return result, fmt.Errorf("row %d: %w", i+2, err)
			}
			result.Inserted++
		default:
			return result, fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return result, nil
}

func importLeaves(rows [][]string) (*Result, error) {
	cols := headerIndex(rows[0])
	result := &Result{}

	for i, row := range rows[1:] {
		employeeID, err := parseID(employeeIDCell(row, cols))
		if err != nil {
			return result, fmt.Errorf("row %d: invalid employee id: %w", i+2, err)
		}

		status := colValue(row, cols, "status")
		if status == "" {
			status = models.LeavePending
		}

		leave := models.Leave{
			EmployeeID: employeeID,
			StartDate:  colValue(row, cols, "start_date"),
			EndDate:    colValue(row, cols, "end_date"),
			Reason:     colValue(row, cols, "reason"),
			Status:     status,
		}
		if err := database.GetDB().Create(&leave).Error; err != nil {
			return result, fmt.Errorf("row %d: %w", i+2, err)
		}
		result.Inserted++
	}

	return result, nil
}

func importAttendance(rows [][]string) (*Result, error) {
	cols := headerIndex(rows[0])
	result := &Result{}

	for i, row := range rows[1:] {
		employeeID, err := parseID(employeeIDCell(row, cols))
		if err != nil {
			return result, fmt.Errorf("row %d: invalid employee id: %w", i+2, err)
		}

		att := models.Attendance{
			EmployeeID: employeeID,
			Date:       colValue(row, cols, "date"),
			CheckIn:    colValue(row, cols, "check_in"),
		}
		if out := colValue(row, cols, "check_out"); out != "" {
			att.CheckOut = &out
		}
		if err := database.GetDB().Create(&att).Error; err != nil {
			return result, fmt.Errorf("row %d: %w", i+2, err)
		}
		result.Inserted++
	}

	return result, nil
}

func importPromotions(rows [][]string) (*Result, error) {
	cols := headerIndex(rows[0])
	result := &Result{}

	for i, row := range rows[1:] {
		employeeID, err := parseID(employeeIDCell(row, cols))
		if err != nil {
			return result, fmt.Errorf("row %d: invalid employee id: %w", i+2, err)
		}
		oldSalary, err := parseFloat(colValue(row, cols, "old_salary"))
		if err != nil {
			return result, fmt.Errorf("row %d: invalid old salary: %w", i+2, err)
		}
		newSalary, err := parseFloat(colValue(row, cols, "new_salary"))
		if err != nil {
			return result, fmt.Errorf("row %d: invalid new salary: %w", i+2, err)
		}

		promo := models.Promotion{
			EmployeeID:    employeeID,
			PromotionDate: colValue(row, cols, "promotion_date"),
			OldPosition:   colValue(row, cols, "old_position"),
			NewPosition:   colValue(row, cols, "new_position"),
			OldSalary:     oldSalary,
			NewSalary:     newSalary,
		}
		if err := database.GetDB().Create(&promo).Error; err != nil {
			return result, fmt.Errorf("row %d: %w", i+2, err)
		}
		result.Inserted++
	}

	return result, nil
}

// headerIndex maps normalized column names to their positions. Unrecognized
// columns simply never get looked up.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[normalizeHeader(name)] = idx
	}
	return cols
}

func normalizeHeader(header string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(header))), "_")
}

// employeeIDCell accepts either employee_id or the original schema's emp_id
// column name.
func employeeIDCell(row []string, cols map[string]int) string {
	if v := colValue(row, cols, "employee_id"); v != "" {
		return v
	}
	return colValue(row, cols, "emp_id")
}

// colValue returns the trimmed cell under a named column, or "" when the
// column is absent from the header or the row is short.
func colValue(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloat(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}

func parseID(value string) (uint, error) {
	if value == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
