package model

import (
	"errors"
	"strings"
	"time"
)

// Role 账号角色，仅允许 admin 与 user 两种取值。
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole 解析角色字符串，拒绝未知取值。
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username" gorm:"unique;not null;size:64"`
	Password  string    `json:"-" gorm:"not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"unique;size:32"`
	Role      Role      `json:"role" gorm:"not null;size:16;default:user;index"`
}

// IsAdmin 判断是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
