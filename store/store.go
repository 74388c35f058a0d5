package store

import (
	"errors"
	"strings"
	"time"

	"hrassist/database"
	"hrassist/models"

	"gorm.io/gorm"
)

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04:05"
)

var (
	ErrEmailTaken       = errors.New("an employee with this email already exists")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrNoOpenAttendance = errors.New("no open attendance record for today")
)

// AddEmployee inserts a new employee. A duplicate email leaves the existing
// row untouched and returns ErrEmailTaken.
func AddEmployee(e *models.Employee) error {
	if err := database.GetDB().Create(e).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := database.GetDB().Order("id asc").Find(&employees).Error
	return employees, err
}

func EmployeeByID(id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := database.GetDB().First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func EmployeeByEmail(email string) (*models.Employee, error) {
	var emp models.Employee
	if err := database.GetDB().Where("email = ?", email).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// UpdateEmployee overwrites an existing row in place; used by the bulk
// import upsert path.
func UpdateEmployee(e *models.Employee) error {
	return database.GetDB().Save(e).Error
}

// Promote overwrites the employee's current position/salary and appends one
// promotion audit row, in a single transaction.
func Promote(employeeID uint, promotionDate, newPosition string, newSalary float64) error {
	return database.GetDB().Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.First(&emp, employeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		promo := models.Promotion{
			EmployeeID:    emp.ID,
			PromotionDate: promotionDate,
			OldPosition:   emp.Position,
			NewPosition:   newPosition,
			OldSalary:     emp.Salary,
			NewSalary:     newSalary,
		}

		if err := tx.Model(&emp).Updates(map[string]interface{}{
			"position": newPosition,
			"salary":   newSalary,
		}).Error; err != nil {
			return err
		}

		return tx.Create(&promo).Error
	})
}

func ListPromotions() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := database.GetDB().Preload("Employee").Order("id asc").Find(&promotions).Error
	return promotions, err
}

// ApplyLeave inserts a leave request with status Pending. No validation of
// the date range or the employee id.
func ApplyLeave(employeeID uint, start, end, reason string) error {
	leave := models.Leave{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
		Status:     models.LeavePending,
	}
	return database.GetDB().Create(&leave).Error
}

// ListLeaves returns all leave requests with the employee record joined in
// for display names.
func ListLeaves() ([]models.Leave, error) {
	var leaves []models.Leave
	err := database.GetDB().Preload("Employee").Order("id asc").Find(&leaves).Error
	return leaves, err
}

// PendingLeaves filters a ListLeaves result down to status Pending.
func PendingLeaves(leaves []models.Leave) []models.Leave {
	var pending []models.Leave
	for _, l := range leaves {
		if l.IsPending() {
			pending = append(pending, l)
		}
	}
	return pending
}

func LeavesByEmployee(employeeID uint) ([]models.Leave, error) {
	var leaves []models.Leave
	err := database.GetDB().Where("employee_id = ?", employeeID).Order("id asc").Find(&leaves).Error
	return leaves, err
}

// SetLeaveStatus overwrites the status unconditionally; the value itself is
// not restricted here, callers decide what they allow.
func SetLeaveStatus(leaveID uint, status string) error {
	result := database.GetDB().Model(&models.Leave{}).Where("id = ?", leaveID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeaveNotFound
	}
	return nil
}

// CheckIn always inserts a new attendance row stamped with the given
// moment's date and clock time, even when one already exists for the day.
func CheckIn(employeeID uint, now time.Time) error {
	att := models.Attendance{
		EmployeeID: employeeID,
		Date:       now.Format(DateFormat),
		CheckIn:    now.Format(ClockFormat),
	}
	return database.GetDB().Create(&att).Error
}

// CheckOut stamps the most recent open row for the employee on the given
// moment's date. Duplicate check-ins leave older open rows untouched.
func CheckOut(employeeID uint, now time.Time) error {
	var att models.Attendance
	err := database.GetDB().
		Where("employee_id = ? AND date = ? AND check_out IS NULL", employeeID, now.Format(DateFormat)).
		Order("id desc").
		First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoOpenAttendance
		}
		return err
	}

	clock := now.Format(ClockFormat)
	att.CheckOut = &clock
	return database.GetDB().Save(&att).Error
}

func ListAttendance() ([]models.Attendance, error) {
	var records []models.Attendance
	err := database.GetDB().Preload("Employee").Order("id asc").Find(&records).Error
	return records, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
