package models

import (
	"time"
)

type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	FirstName  string    `gorm:"size:100" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	Email      string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	Department string    `gorm:"size:100" json:"department"`
	Position   string    `gorm:"size:100" json:"position"`
	DateOfHire string    `gorm:"size:10" json:"date_of_hire"`
	Salary     float64   `json:"salary"`
	Address    string    `gorm:"size:500" json:"address"`
}

func (e *Employee) DisplayName() string {
	return e.FirstName + " " + e.LastName
}
