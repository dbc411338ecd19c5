package httpx

import (
	"autoviz-server/internal/common"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := common.AsServiceError(err); ok {
		c.JSON(serviceErrorStatus(serviceErr.Code), gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
}

// 上传类型与大小错误按接口约定统一返回 400，重复用户名/手机号同样返回 400。
func serviceErrorStatus(code common.ErrorCode) int {
	switch code {
	case common.ErrorCodeValidation, common.ErrorCodeUnsupportedMedia, common.ErrorCodePayloadTooLarge:
		return http.StatusBadRequest
	case common.ErrorCodeConflict:
		return http.StatusBadRequest
	case common.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrorCodeForbidden:
		return http.StatusForbidden
	case common.ErrorCodeNotFound:
		return http.StatusNotFound
	case common.ErrorCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
