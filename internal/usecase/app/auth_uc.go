package app

import (
	"autoviz-server/internal/common"
	"autoviz-server/internal/logger"
	"autoviz-server/internal/model"
	"autoviz-server/internal/service"
)

type LoginResult struct {
	Token    string
	UserID   uint
	Username string
	Role     model.Role
}

func (uc *AuthUseCase) Register(input service.RegisterInput) (uint, error) {
	id, err := uc.credentials.Register(input)
	if err != nil {
		return 0, err
	}
	logger.Infof("新用户注册: id=%d username=%s", id, input.Username)
	return id, nil
}

// Login 校验凭据并签发令牌
func (uc *AuthUseCase) Login(username, password string) (*LoginResult, error) {
	user, err := uc.credentials.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	token, err := uc.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		logger.Errorf("签发令牌失败 user=%d: %v", user.ID, err)
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}
	return &LoginResult{Token: token, UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// FindUsername 按手机号找回用户名，仅返回用户名
func (uc *AuthUseCase) FindUsername(phone string) (string, error) {
	user, err := uc.credentials.FindByPhone(phone)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
