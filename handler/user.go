package handler

import (
	"Tuiter/pkg/context"
	"Tuiter/pkg/response"
	"Tuiter/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService    service.IUserService
	AccountService service.IAccountService
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
}

func (u *User) RegisterRouter(r gin.IRouter) {
	r.POST("/users", context.Wrap(u.Create))
	r.GET("/users/:uid", context.Wrap(u.Find))
	r.DELETE("/users/:uid/relationships", context.Wrap(u.Deactivate))
}

func (u *User) Create(c *gin.Context) error {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := u.UserService.CreateUser(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Find(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	user, err := u.UserService.FindUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

// Deactivate 注销账号：清理全部关系
func (u *User) Deactivate(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	out, err := u.AccountService.DeactivateAccount(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, out)
	return nil
}
