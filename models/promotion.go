package models

import (
	"time"
)

// Promotion is an immutable audit row appended when an employee's
// position/salary is changed.
type Promotion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	EmployeeID    uint      `gorm:"index" json:"employee_id"`
	Employee      Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	PromotionDate string    `gorm:"size:10" json:"promotion_date"`
	OldPosition   string    `gorm:"size:100" json:"old_position"`
	NewPosition   string    `gorm:"size:100" json:"new_position"`
	OldSalary     float64   `json:"old_salary"`
	NewSalary     float64   `json:"new_salary"`
}
