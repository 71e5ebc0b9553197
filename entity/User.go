package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Role     Role   `gorm:"not null;default:author" json:"role"`

	// Relations, preload only when needed
	Manuscripts []Manuscript `gorm:"foreignKey:AuthorID" json:"-"`
	Assigned    []Manuscript `gorm:"foreignKey:ExpertID" json:"-"`
}
