package response

import (
	"Tuiter/pkg/errs"
	"Tuiter/pkg/log"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BizError struct {
	Code int
	Msg  string
	Data any
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// FromError 把领域错误映射为 HTTP 状态码
func FromError(err error) *BizError {
	var be *BizError
	if errors.As(err, &be) {
		return be
	}

	// 关系已经写入，计数稍后修复
	if errors.Is(err, errs.ErrCounterSyncFailed) {
		return &BizError{Code: http.StatusAccepted, Msg: err.Error(), Data: map[string]any{"applied": true}}
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidOperation):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrDuplicateKey):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}
	return &BizError{Code: code, Msg: err.Error()}
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("handler panic",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				Abort(c, http.StatusInternalServerError, "internal error")
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			be := FromError(c.Errors.Last().Err)
			Fail(c, be.Code, be.Msg)
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
