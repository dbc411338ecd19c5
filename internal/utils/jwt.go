package utils

import (
	"autoviz-server/internal/consts"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid 令牌格式错误、签名不匹配或载荷非法
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired 签名有效但已过期
	ErrTokenExpired = errors.New("token expired")
)

// LoginClaims 登录令牌载荷
type LoginClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"type"` // "login"
	jwt.RegisteredClaims
}

func GenerateLoginToken(secret []byte, id uint, username, role string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := LoginClaims{
		ID:       id,
		Username: username,
		Role:     role,
		Type:     consts.TokenTypeLogin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    consts.TokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseLoginToken 校验并解析登录令牌。
// 过期返回 ErrTokenExpired，其余失败统一返回 ErrTokenInvalid。
func ParseLoginToken(secret []byte, tokenString string) (*LoginClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LoginClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(consts.TokenIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*LoginClaims)
	if !ok || !token.Valid || claims.Type != consts.TokenTypeLogin {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
