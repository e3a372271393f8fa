package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
)

// Err 统一出错出口：domain 错误按类别映射状态码，其余一律 500 且不外泄细节
func Err(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	status := http.StatusInternalServerError
	msg := de.Msg
	switch de.Kind {
	case domain.KindBadRequest:
		status = http.StatusBadRequest
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindInternal:
		_ = c.Error(err)
		msg = "internal server error"
	default:
		// 未知类别走 500 路径，细节同样不外泄
		_ = c.Error(err)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// BadRequest 绑定/校验失败的快捷出口
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msg})
}
