package models

import (
	"fmt"
	"time"
)

// Role is the closed set of portal roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleAuthor Role = "author"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleEditor, RoleAuthor:
		return Role(raw), nil
	}
	return "", fmt.Errorf("invalid role '%s'", raw)
}

// Valid reports whether the role is one of the three recognized values.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type User struct {
	UserID      int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email       string     `gorm:"column:email;uniqueIndex" json:"email"`
	Password    string     `gorm:"column:password" json:"-"`
	DisplayName string     `gorm:"column:display_name" json:"display_name"`
	Affiliation *string    `gorm:"column:affiliation" json:"affiliation,omitempty"`
	Role        Role       `gorm:"column:role;type:varchar(16)" json:"role"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}
