package context

import (
	"Tuiter/pkg/response"
	"strconv"

	"github.com/gin-gonic/gin"
)

const CtxRequestID = "request_id"

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			_ = c.Error(err)
			be := response.FromError(err)
			c.JSON(be.Code, response.Response{
				Code: be.Code,
				Msg:  be.Msg,
				Data: be.Data,
			})
		}
	}
}

// ParamID 解析路径中的 int64 id
func ParamID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(400, "missing "+name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(400, "invalid "+name)
	}
	return id, nil
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
