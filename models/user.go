package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser          = "User"
	RoleModerator     = "Moderator"
	RoleAdministrator = "Administrator"
)

type User struct {
	UserID       string    `json:"user_id" gorm:"type:uuid;primarykey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CustomField  string    `json:"custom_field" gorm:"type:varchar(100)"`
	PhoneNumber  string    `json:"phone_number"`
	Roles        []Role    `json:"roles,omitempty" gorm:"many2many:user_roles"`
	Created      time.Time `json:"created" gorm:"autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// HighestRole returns the role with the greatest security level, or a zero
// Role when the user has none.
func (u *User) HighestRole() Role {
	var top Role
	for _, r := range u.Roles {
		if r.SecurityLevel >= top.SecurityLevel {
			top = r
		}
	}
	return top
}

type Role struct {
	RoleID        string `json:"role_id" gorm:"type:uuid;primarykey"`
	Name          string `json:"name" gorm:"uniqueIndex;not null"`
	SecurityLevel int    `json:"security_level" gorm:"default:0"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.RoleID == "" {
		r.RoleID = uuid.NewString()
	}
	return nil
}
