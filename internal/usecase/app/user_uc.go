package app

import (
	"autoviz-server/internal/common"
	"autoviz-server/internal/utils"
)

func (uc *UserUseCase) ChangePassword(userID uint, newPassword string) error {
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return common.NewValidationError(msg)
	}
	return uc.credentials.ChangePassword(userID, newPassword)
}
