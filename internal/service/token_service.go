package service

import (
	"time"

	"autoviz-server/internal/model"
	"autoviz-server/internal/utils"
)

var (
	ErrTokenInvalid = utils.ErrTokenInvalid
	ErrTokenExpired = utils.ErrTokenExpired
)

// Identity 令牌中携带的身份信息
type Identity struct {
	UserID   uint
	Username string
	Role     model.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// Issue 签发登录令牌
func (s *TokenService) Issue(userID uint, username string, role model.Role) (string, error) {
	return utils.GenerateLoginToken(s.secret, userID, username, string(role), s.ttl)
}

// Verify 校验令牌，失败时返回 ErrTokenInvalid 或 ErrTokenExpired。
func (s *TokenService) Verify(token string) (*Identity, error) {
	claims, err := utils.ParseLoginToken(s.secret, token)
	if err != nil {
		return nil, err
	}
	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return &Identity{UserID: claims.ID, Username: claims.Username, Role: role}, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
