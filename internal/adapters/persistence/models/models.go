package models

import (
	"time"

	"gorm.io/gorm"
)

// Position represents the positions table. A position doubles as the
// access-control role: its name is the role name and Active gates login
// for every user holding it.
type Position struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

func (Position) TableName() string {
	return "positions"
}

// User represents the users table (employee records)
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"size:50;not null" json:"first_name"`
	LastName   string    `gorm:"size:50;not null" json:"last_name"`
	Email      string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Age        int       `gorm:"not null" json:"age"`
	Phone      string    `gorm:"size:10" json:"phone,omitempty"`
	PositionID uint      `gorm:"index;not null" json:"position_id"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Position   Position  `gorm:"foreignKey:PositionID" json:"position"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO. Never carries the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Phone     string    `json:"phone,omitempty"`
	Position  *Position `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Age:       u.Age,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
	if u.Position.ID != 0 {
		position := u.Position
		resp.Position = &position
	}
	return resp
}

// AutoMigrate creates or updates the schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Position{},
		&User{},
	)
}
