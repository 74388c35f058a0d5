package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"hrassist/database"
	"hrassist/models"
	"hrassist/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, database.Init(filepath.Join(t.TempDir(), "test.db")))
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Email", "email"},
		{"  First Name ", "first_name"},
		{"DATE OF HIRE", "date_of_hire"},
		{"first_name", "first_name"},
		{"Check  Out", "check_out"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHeader(tt.in))
	}
}

func TestReadRowsCSV(t *testing.T) {
	csvData := "Email,First Name\nalice@example.com,Alice\n"
	rows, err := ReadRows(strings.NewReader(csvData), "report.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Email", "First Name"}, rows[0])
	assert.Equal(t, []string{"alice@example.com", "Alice"}, rows[1])
}

func TestReadRowsEmptyCSV(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""), "report.csv")
	assert.Error(t, err)
}

func TestReadRowsMalformedWorkbook(t *testing.T) {
	_, err := ReadRows(strings.NewReader("not a workbook"), "report.xlsx")
	assert.Error(t, err)
}

func TestImportEmployeesUpsert(t *testing.T) {
	setupDB(t)

	existing := &models.Employee{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Position:  "Engineer",
		Salary:    50000,
	}
	require.NoError(t, store.AddEmployee(existing))

	rows := [][]string{
		{"First Name", "Last Name", "Email", "Position", "Salary", "Department"},
		{"Alicia", "Smith", "alice@example.com", "Senior Engineer", "60000", "Engineering"},
		{"Bob", "Jones", "bob@example.com", "Analyst", "40000", "Finance"},
	}

	result, err := Import(ReportEmployees, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Updated)

	employees, err := store.ListEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 2)

	// Matching email overwrote non-key fields in place, same id, no duplicate.
	got := employees[0]
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Alicia", got.FirstName)
	assert.Equal(t, "Senior Engineer", got.Position)
	assert.Equal(t, 60000.0, got.Salary)
	assert.Equal(t, "Engineering", got.Department)

	assert.Equal(t, "bob@example.com", employees[1].Email)
}

func TestImportEmployeesMissingColumnsDefault(t *testing.T) {
	setupDB(t)

	rows := [][]string{
		{"Email"},
		{"carol@example.com"},
	}

	result, err := Import(ReportEmployees, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)

	emp, err := store.EmployeeByEmail("carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, "", emp.FirstName)
	assert.Equal(t, 0.0, emp.Salary)
}

func TestImportEmployeesBadSalaryAborts(t *testing.T) {
	setupDB(t)

	rows := [][]string{
		{"Email", "Salary"},
		{"first@example.com", "1000"},
		{"second@example.com", "not-a-number"},
		{"third@example.com", "3000"},
	}

	_, err := Import(ReportEmployees, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid salary")

	// The row before the failure stays written, the rest never lands.
	employees, lerr := store.ListEmployees()
	require.NoError(t, lerr)
	require.Len(t, employees, 1)
	assert.Equal(t, "first@example.com", employees[0].Email)
}

func TestImportLeavesDefaultsPending(t *testing.T) {
	setupDB(t)

	rows := [][]string{
		{"Employee ID", "Start Date", "End Date", "Reason", "Status"},
		{"1", "2024-06-01", "2024-06-05", "vacation", ""},
		{"2", "2024-07-01", "2024-07-02", "moving", "Approved"},
	}

	result, err := Import(ReportLeaves, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)

	leaves, err := store.ListLeaves()
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, models.LeavePending, leaves[0].Status)
	assert.Equal(t, models.LeaveApproved, leaves[1].Status)
	// Appended verbatim, no foreign key check against employees.
	assert.Equal(t, uint(1), leaves[0].EmployeeID)
}

func TestImportAttendance(t *testing.T) {
	setupDB(t)

	rows := [][]string{
		{"emp_id", "Date", "Check In", "Check Out"},
		{"1", "2024-03-04", "09:00:00", "17:00:00"},
		{"1", "2024-03-05", "09:05:00", ""},
	}

	result, err := Import(ReportAttendance, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)

	records, err := store.ListAttendance()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].CheckOut)
	assert.Equal(t, "17:00:00", *records[0].CheckOut)
	assert.True(t, records[1].IsOpen())
}

func TestImportPromotions(t *testing.T) {
	setupDB(t)

	rows := [][]string{
		{"Employee ID", "Promotion Date", "Old Position", "New Position", "Old Salary", "New Salary"},
		{"1", "2024-01-15", "Engineer", "Senior Engineer", "50000", "55000"},
	}

	result, err := Import(ReportPromotions, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)

	promotions, err := store.ListPromotions()
	require.NoError(t, err)
	require.Len(t, promotions, 1)
	assert.Equal(t, 50000.0, promotions[0].OldSalary)
	assert.Equal(t, 55000.0, promotions[0].NewSalary)
}

func TestImportUnknownReportType(t *testing.T) {
	setupDB(t)

	_, err := Import(ReportType("payroll"), [][]string{{"a"}})
	assert.ErrorIs(t, err, ErrUnknownReportType)
}
