package repository

import (
	"autoviz-server/internal/consts"
	"autoviz-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByPhone(phone string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// UpdatePasswordByID 更新密码摘要，账号不存在时返回 gorm.ErrRecordNotFound。
func (r *UserRepository) UpdatePasswordByID(userID uint, hashedPassword string) error {
	result := r.db.Model(&model.User{}).Where("id = ?", userID).Update("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FieldExists 精确匹配（区分大小写）判断字段值是否已被占用。
func (r *UserRepository) FieldExists(field consts.UserField, value string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where(string(field)+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListNotificationPhones 返回可接收通知的账号手机号（普通用户且手机号非空）。
func (r *UserRepository) ListNotificationPhones() ([]string, error) {
	var phones []string
	err := r.db.Model(&model.User{}).
		Where("role = ? AND phone IS NOT NULL AND phone <> ''", model.RoleUser).
		Order("id asc").
		Pluck("phone", &phones).Error
	if err != nil {
		return nil, err
	}
	return phones, nil
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
