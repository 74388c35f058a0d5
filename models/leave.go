package models

import (
	"time"
)

const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

type Leave struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	EmployeeID uint      `gorm:"index" json:"employee_id"`
	Employee   Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	StartDate  string    `gorm:"size:10" json:"start_date"`
	EndDate    string    `gorm:"size:10" json:"end_date"`
	Reason     string    `gorm:"size:500" json:"reason"`
	Status     string    `gorm:"size:20;default:Pending" json:"status"`
}

func (l *Leave) IsPending() bool {
	return l.Status == LeavePending
}
