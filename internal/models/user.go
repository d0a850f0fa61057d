package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account holder. BirthDate is day-granular; age is derived.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string         `gorm:"size:100;not null" json:"username"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	BirthDate time.Time      `gorm:"type:date;not null" json:"birth_date"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Age returns full years elapsed since BirthDate as of now.
func (u *User) Age() int {
	return u.AgeAt(time.Now())
}

// AgeAt returns full years elapsed since BirthDate at the given instant.
func (u *User) AgeAt(now time.Time) int {
	age := now.Year() - u.BirthDate.Year()
	if now.Month() < u.BirthDate.Month() ||
		(now.Month() == u.BirthDate.Month() && now.Day() < u.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
