package utils

import (
	"strings"
	"unicode/utf8"

	"autoviz-server/internal/consts"
)

// 与 users.username 列宽一致
const maxUsernameLength = 64

// bcrypt 只处理前 72 字节
const maxPasswordBytes = 72

// ValidateUsername 注册时仅要求非空且不超过列宽，允许任意字符。
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "用户名不能为空"
	}
	if utf8.RuneCountInString(username) > maxUsernameLength || len(username) > maxUsernameLength*4 {
		return false, "用户名最长64位"
	}
	return true, ""
}

// ValidateRegisterPassword 注册时仅要求非空。
func ValidateRegisterPassword(password string) (bool, string) {
	if password == "" {
		return false, "密码不能为空"
	}
	if len(password) > maxPasswordBytes {
		return false, "密码过长"
	}
	return true, ""
}

// ValidatePassword 修改密码时的长度约束。
func ValidatePassword(password string) (bool, string) {
	if utf8.RuneCountInString(password) < consts.MinPasswordLength {
		return false, "密码最少8位"
	}
	if len(password) > maxPasswordBytes {
		return false, "密码过长"
	}
	return true, ""
}

// NormalizePhone 去除空白，保留 + 与连字符。
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}
