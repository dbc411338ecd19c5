package repository

import (
	"autoviz-server/internal/consts"
	"autoviz-server/internal/model"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByPhone(phone string) (*model.User, error)
	Create(user *model.User) error
	UpdatePasswordByID(userID uint, hashedPassword string) error
	FieldExists(field consts.UserField, value string) (bool, error)
	ListNotificationPhones() ([]string, error)
	CountAll() (int64, error)
}
