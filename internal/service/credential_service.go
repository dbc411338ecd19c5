package service

import (
	"errors"
	"strings"

	"autoviz-server/internal/common"
	"autoviz-server/internal/consts"
	"autoviz-server/internal/logger"
	"autoviz-server/internal/model"
	"autoviz-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "用户名或密码错误"

// 用户名不存在时用于对齐 bcrypt 比较耗时
var dummyPasswordDigest, _ = bcrypt.GenerateFromPassword([]byte("autoviz-dummy-password"), bcrypt.DefaultCost)

type RegisterInput struct {
	Username string
	Password string
	Phone    string
	Role     string
}

// Register 注册账号并返回新账号 ID。
func (s *CredentialService) Register(input RegisterInput) (uint, error) {
	username := strings.TrimSpace(input.Username)
	if ok, msg := utils.ValidateUsername(username); !ok {
		return 0, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateRegisterPassword(input.Password); !ok {
		return 0, common.NewValidationError(msg)
	}
	role, err := model.ParseRole(input.Role)
	if err != nil {
		return 0, common.NewValidationError("角色只能为 admin 或 user")
	}

	var phone *string
	if p := utils.NormalizePhone(input.Phone); p != "" {
		phone = &p
	}

	if err := s.checkDuplicates(username, phone); err != nil {
		return 0, err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, common.NewInternalError("注册失败，请稍后重试")
	}

	user := model.User{
		Username: username,
		Password: string(digest),
		Phone:    phone,
		Role:     role,
	}
	if err := s.userStore.Create(&user); err != nil {
		// 并发注册时唯一索引兜底
		if dupErr := s.checkDuplicates(username, phone); dupErr != nil {
			return 0, dupErr
		}
		logger.Errorf("创建用户失败: %v", err)
		return 0, common.NewInternalError("注册失败，请稍后重试")
	}
	return user.ID, nil
}

func (s *CredentialService) checkDuplicates(username string, phone *string) error {
	exists, err := s.userStore.FieldExists(consts.UserFieldUsername, username)
	if err != nil {
		return common.NewInternalError("注册失败，请稍后重试")
	}
	if exists {
		return common.NewConflictError("用户名已存在")
	}
	if phone == nil {
		return nil
	}
	exists, err = s.userStore.FieldExists(consts.UserFieldPhone, *phone)
	if err != nil {
		return common.NewInternalError("注册失败，请稍后重试")
	}
	if exists {
		return common.NewConflictError("手机号已被注册")
	}
	return nil
}

// Authenticate 校验用户名密码。用户不存在与密码错误返回同一错误。
func (s *CredentialService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userStore.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Errorf("查询用户失败: %v", err)
			return nil, common.NewInternalError("登录失败，请稍后重试")
		}
		_ = bcrypt.CompareHashAndPassword(dummyPasswordDigest, []byte(password))
		return nil, common.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.NewUnauthorizedError(invalidCredentialsMessage)
	}
	return user, nil
}

func (s *CredentialService) ChangePassword(userID uint, newPassword string) error {
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return common.NewValidationError(msg)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewInternalError("修改密码失败")
	}
	if err := s.userStore.UpdatePasswordByID(userID, string(digest)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户不存在")
		}
		logger.Errorf("更新密码失败 user=%d: %v", userID, err)
		return common.NewInternalError("修改密码失败")
	}
	return nil
}

// FindByPhone 用于找回用户名
func (s *CredentialService) FindByPhone(phone string) (*model.User, error) {
	phone = utils.NormalizePhone(phone)
	if phone == "" {
		return nil, common.NewValidationError("手机号不能为空")
	}
	user, err := s.userStore.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("未找到该手机号对应的账号")
		}
		return nil, common.NewInternalError("查询失败")
	}
	return user, nil
}
