package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bindError 绑定失败转换为业务错误
// 校验规则不满足返回参数错误,消息形如"参数错误: title(required), published_date(date)"
// JSON格式错误返回绑定错误
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+"("+fe.Tag()+")")
		}
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeInvalidParams,
			Message: "参数错误: " + strings.Join(fields, ", "),
			Err:     err,
		}
	}
	return apperrors.WithCause(apperrors.ErrBindError, err)
}

// idBits 主键是有符号64位整数,32位平台上还受uint宽度限制
const idBits = min(strconv.IntSize, 63)

// parseID 解析路径中的图书ID,必须是正整数且不超过BIGINT上限
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, idBits)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}
