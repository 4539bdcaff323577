package handler

import (
	"Tuiter/pkg/context"
	"Tuiter/pkg/response"
	"Tuiter/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	r.POST("/users/:uid/followees/:auid", context.Wrap(f.Follow))
	r.DELETE("/users/:uid/followees/:auid", context.Wrap(f.Unfollow))
	r.GET("/users/:uid/followees/:auid", context.Wrap(f.IsFollowing))
	r.GET("/users/:uid/followers", context.Wrap(f.Followers))
	r.GET("/users/:uid/followees", context.Wrap(f.Followees))
	r.DELETE("/users/:uid/followers", context.Wrap(f.DeleteFollowers))
	r.DELETE("/users/:uid/followees", context.Wrap(f.DeleteFollowees))
}

func edge(c *gin.Context) (int64, int64, error) {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return 0, 0, err
	}
	auid, err := context.ParamID(c, "auid")
	if err != nil {
		return 0, 0, err
	}
	return uid, auid, nil
}

// Follow uid 关注 auid
func (f *Follow) Follow(c *gin.Context) error {
	uid, auid, err := edge(c)
	if err != nil {
		return err
	}
	if err := f.FollowService.Follow(c.Request.Context(), uid, auid); err != nil {
		return err
	}
	response.Success(c, gin.H{"following": true})
	return nil
}

func (f *Follow) Unfollow(c *gin.Context) error {
	uid, auid, err := edge(c)
	if err != nil {
		return err
	}
	if err := f.FollowService.Unfollow(c.Request.Context(), uid, auid); err != nil {
		return err
	}
	response.Success(c, gin.H{"following": false})
	return nil
}

func (f *Follow) IsFollowing(c *gin.Context) error {
	uid, auid, err := edge(c)
	if err != nil {
		return err
	}
	ok, err := f.FollowService.IsFollowing(c.Request.Context(), uid, auid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"following": ok})
	return nil
}

func (f *Follow) Followers(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	follows, err := f.FollowService.FindFollowers(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, follows)
	return nil
}

func (f *Follow) Followees(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	follows, err := f.FollowService.FindFollowees(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, follows)
	return nil
}

func (f *Follow) DeleteFollowers(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	n, err := f.FollowService.DeleteAllFollowers(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": n})
	return nil
}

func (f *Follow) DeleteFollowees(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	n, err := f.FollowService.DeleteAllFollowees(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": n})
	return nil
}
