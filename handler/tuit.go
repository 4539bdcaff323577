package handler

import (
	"Tuiter/pkg/context"
	"Tuiter/pkg/response"
	"Tuiter/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Tuit struct {
	TuitService    service.ITuitService
	AccountService service.IAccountService
	CounterService service.ICounterService
}

type createTuitRequest struct {
	Tuit string `json:"tuit" binding:"required"`
}

func (t *Tuit) RegisterRouter(r gin.IRouter) {
	r.POST("/users/:uid/tuits", context.Wrap(t.Create))
	r.GET("/users/:uid/tuits", context.Wrap(t.ByUser))
	r.GET("/tuits/:tid", context.Wrap(t.Find))
	r.DELETE("/tuits/:tid", context.Wrap(t.Delete))
	r.GET("/tuits/:tid/stats", context.Wrap(t.Stats))
	r.POST("/tuits/:tid/stats/sync", context.Wrap(t.SyncStats))
}

func (t *Tuit) Create(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	var req createTuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	tuit, err := t.TuitService.CreateTuit(c.Request.Context(), uid, req.Tuit)
	if err != nil {
		return err
	}
	response.Success(c, tuit)
	return nil
}

func (t *Tuit) ByUser(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	tuits, err := t.TuitService.FindTuitsByUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, tuits)
	return nil
}

func (t *Tuit) Find(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	tuit, err := t.TuitService.FindTuit(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, tuit)
	return nil
}

func (t *Tuit) Delete(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	out, err := t.AccountService.DeleteTuit(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, out)
	return nil
}

func (t *Tuit) Stats(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	stats, err := t.CounterService.Stats(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}

// SyncStats 手动触发计数重算
func (t *Tuit) SyncStats(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	stats, err := t.CounterService.Recompute(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}
