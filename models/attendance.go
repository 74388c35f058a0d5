package models

import (
	"time"
)

// Attendance stores date and clock times as text, one row per check-in.
// CheckOut stays nil until the matching check-out arrives.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	EmployeeID uint      `gorm:"index" json:"employee_id"`
	Employee   Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Date       string    `gorm:"size:10;index" json:"date"`
	CheckIn    string    `gorm:"size:8" json:"check_in"`
	CheckOut   *string   `gorm:"size:8" json:"check_out"`
}

func (a *Attendance) IsOpen() bool {
	return a.CheckOut == nil
}
