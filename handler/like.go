package handler

import (
	"Tuiter/pkg/context"
	"Tuiter/pkg/response"
	"Tuiter/service"

	"github.com/gin-gonic/gin"
)

type Like struct {
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	r.POST("/users/:uid/likes/:tid", context.Wrap(h.Like))
	r.DELETE("/users/:uid/likes/:tid", context.Wrap(h.Unlike))
	r.PUT("/users/:uid/likes/:tid/toggle", context.Wrap(h.ToggleLike))
	r.GET("/users/:uid/likes", context.Wrap(h.TuitsLikedByUser))
	r.GET("/tuits/:tid/likes", context.Wrap(h.UsersThatLikedTuit))
	r.GET("/tuits/:tid/likes/count", context.Wrap(h.CountLikes))

	r.POST("/users/:uid/dislikes/:tid", context.Wrap(h.Dislike))
	r.DELETE("/users/:uid/dislikes/:tid", context.Wrap(h.Undislike))
	r.PUT("/users/:uid/dislikes/:tid/toggle", context.Wrap(h.ToggleDislike))
	r.GET("/users/:uid/dislikes", context.Wrap(h.TuitsDislikedByUser))
	r.GET("/tuits/:tid/dislikes", context.Wrap(h.UsersThatDislikedTuit))
	r.GET("/tuits/:tid/dislikes/count", context.Wrap(h.CountDislikes))
}

func userTuit(c *gin.Context) (int64, int64, error) {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return 0, 0, err
	}
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return 0, 0, err
	}
	return uid, tid, nil
}

func (h *Like) Like(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	stats, err := h.LikeService.Like(c.Request.Context(), uid, tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"liked": true, "stats": stats})
	return nil
}

func (h *Like) Unlike(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	stats, err := h.LikeService.Unlike(c.Request.Context(), uid, tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"liked": false, "stats": stats})
	return nil
}

func (h *Like) ToggleLike(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	liked, stats, err := h.LikeService.ToggleLike(c.Request.Context(), uid, tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"liked": liked, "stats": stats})
	return nil
}

func (h *Like) TuitsLikedByUser(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	likes, err := h.LikeService.FindTuitsLikedByUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (h *Like) UsersThatLikedTuit(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	likes, err := h.LikeService.FindUsersThatLikedTuit(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (h *Like) CountLikes(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	n, err := h.LikeService.CountLikes(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"count": n})
	return nil
}

func (h *Like) Dislike(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	stats, err := h.LikeService.Dislike(c.Request.Context(), uid, tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"disliked": true, "stats": stats})
	return nil
}

func (h *Like) Undislike(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	stats, err := h.LikeService.Undislike(c.Request.Context(), uid, tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"disliked": false, "stats": stats})
	return nil
}

func (h *Like) ToggleDislike(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	disliked, stats, err := h.LikeService.ToggleDislike(c.Request.Context(), uid, tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"disliked": disliked, "stats": stats})
	return nil
}

func (h *Like) TuitsDislikedByUser(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	dislikes, err := h.LikeService.FindTuitsDislikedByUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, dislikes)
	return nil
}

func (h *Like) UsersThatDislikedTuit(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	dislikes, err := h.LikeService.FindUsersThatDislikedTuit(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, dislikes)
	return nil
}

func (h *Like) CountDislikes(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	n, err := h.LikeService.CountDislikes(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"count": n})
	return nil
}
