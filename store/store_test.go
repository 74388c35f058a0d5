package store

import (
	"path/filepath"
	"testing"
	"time"

	"hrassist/database"
	"hrassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	err := database.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
}

func alice() *models.Employee {
	return &models.Employee{
		FirstName:  "Alice",
		LastName:   "Smith",
		Email:      "alice@example.com",
		Phone:      "555-0100",
		Department: "Engineering",
		Position:   "Engineer",
		DateOfHire: "2023-04-01",
		Salary:     50000,
		Address:    "1 Main St",
	}
}

func TestAddAndListEmployees(t *testing.T) {
	setupDB(t)

	emp := alice()
	require.NoError(t, AddEmployee(emp))

	employees, err := ListEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 1)

	got := employees[0]
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "Engineering", got.Department)
	assert.Equal(t, "Engineer", got.Position)
	assert.Equal(t, "2023-04-01", got.DateOfHire)
	assert.Equal(t, 50000.0, got.Salary)
	assert.Equal(t, "1 Main St", got.Address)
	assert.Equal(t, "Alice Smith", got.DisplayName())
}

func TestAddEmployeeDuplicateEmail(t *testing.T) {
	setupDB(t)

	require.NoError(t, AddEmployee(alice()))

	dup := alice()
	dup.FirstName = "Alicia"
	dup.Salary = 99999
	err := AddEmployee(dup)
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Existing row stays unmodified and no second row appears.
	employees, err := ListEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Alice", employees[0].FirstName)
	assert.Equal(t, 50000.0, employees[0].Salary)
}

func TestLeaveLifecycle(t *testing.T) {
	setupDB(t)

	emp := alice()
	require.NoError(t, AddEmployee(emp))

	other := alice()
	other.Email = "bob@example.com"
	other.FirstName = "Bob"
	require.NoError(t, AddEmployee(other))

	require.NoError(t, ApplyLeave(emp.ID, "2024-06-01", "2024-06-05", "vacation"))
	require.NoError(t, ApplyLeave(other.ID, "2024-07-01", "2024-07-02", "appointment"))

	leaves, err := ListLeaves()
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, models.LeavePending, leaves[0].Status)
	assert.Equal(t, "Alice Smith", leaves[0].Employee.DisplayName())

	pending := PendingLeaves(leaves)
	assert.Len(t, pending, 2)

	require.NoError(t, SetLeaveStatus(leaves[0].ID, models.LeaveApproved))

	leaves, err = ListLeaves()
	require.NoError(t, err)
	assert.Equal(t, models.LeaveApproved, leaves[0].Status)
	// The other leave is untouched.
	assert.Equal(t, models.LeavePending, leaves[1].Status)
	assert.Len(t, PendingLeaves(leaves), 1)
}

func TestSetLeaveStatusUnknownLeave(t *testing.T) {
	setupDB(t)
	assert.ErrorIs(t, SetLeaveStatus(42, models.LeaveApproved), ErrLeaveNotFound)
}

func TestLeavesByEmployee(t *testing.T) {
	setupDB(t)

	emp := alice()
	require.NoError(t, AddEmployee(emp))
	other := alice()
	other.Email = "bob@example.com"
	require.NoError(t, AddEmployee(other))

	require.NoError(t, ApplyLeave(emp.ID, "2024-06-01", "2024-06-05", "vacation"))
	require.NoError(t, ApplyLeave(other.ID, "2024-07-01", "2024-07-02", "appointment"))

	leaves, err := LeavesByEmployee(emp.ID)
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "vacation", leaves[0].Reason)
}

func TestPromote(t *testing.T) {
	setupDB(t)

	emp := alice()
	require.NoError(t, AddEmployee(emp))

	require.NoError(t, Promote(emp.ID, "2024-01-15", "Senior Engineer", 55000))

	got, err := EmployeeByID(emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", got.Position)
	assert.Equal(t, 55000.0, got.Salary)

	promotions, err := ListPromotions()
	require.NoError(t, err)
	require.Len(t, promotions, 1)
	promo := promotions[0]
	assert.Equal(t, emp.ID, promo.EmployeeID)
	assert.Equal(t, "2024-01-15", promo.PromotionDate)
	assert.Equal(t, "Engineer", promo.OldPosition)
	assert.Equal(t, "Senior Engineer", promo.NewPosition)
	assert.Equal(t, 50000.0, promo.OldSalary)
	assert.Equal(t, 55000.0, promo.NewSalary)
}

func TestPromoteUnknownEmployee(t *testing.T) {
	setupDB(t)

	err := Promote(7, "2024-01-15", "Manager", 60000)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	// Nothing written on failure.
	promotions, err := ListPromotions()
	require.NoError(t, err)
	assert.Empty(t, promotions)
}

func TestCheckInCheckOut(t *testing.T) {
	setupDB(t)

	emp := alice()
	require.NoError(t, AddEmployee(emp))

	morning := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	require.NoError(t, CheckIn(emp.ID, morning))

	// A second check-in on the same day is not deduplicated.
	require.NoError(t, CheckIn(emp.ID, morning.Add(time.Minute)))

	records, err := ListAttendance()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-04", records[0].Date)
	assert.Equal(t, "09:00:00", records[0].CheckIn)
	assert.True(t, records[0].IsOpen())

	// Check-out closes the most recent open row only.
	evening := time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)
	require.NoError(t, CheckOut(emp.ID, evening))

	records, err = ListAttendance()
	require.NoError(t, err)
	assert.True(t, records[0].IsOpen())
	require.NotNil(t, records[1].CheckOut)
	assert.Equal(t, "17:30:00", *records[1].CheckOut)
}

func TestCheckOutWithoutOpenRecord(t *testing.T) {
	setupDB(t)

	emp := alice()
	require.NoError(t, AddEmployee(emp))

	now := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, CheckOut(emp.ID, now), ErrNoOpenAttendance)

	// A row closed yesterday does not satisfy today's check-out.
	require.NoError(t, CheckIn(emp.ID, now.AddDate(0, 0, -1)))
	require.NoError(t, CheckOut(emp.ID, now.AddDate(0, 0, -1)))
	assert.ErrorIs(t, CheckOut(emp.ID, now), ErrNoOpenAttendance)
}
