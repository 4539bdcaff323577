package handler

import (
	"Tuiter/pkg/context"
	"Tuiter/pkg/response"
	"Tuiter/service"

	"github.com/gin-gonic/gin"
)

type Bookmark struct {
	BookmarkService service.IBookmarkService
}

func (h *Bookmark) RegisterRouter(r gin.IRouter) {
	r.POST("/users/:uid/bookmarks/:tid", context.Wrap(h.Bookmark))
	r.DELETE("/users/:uid/bookmarks/:tid", context.Wrap(h.Unbookmark))
	r.GET("/users/:uid/bookmarks", context.Wrap(h.BookmarksByUser))
	r.DELETE("/users/:uid/bookmarks", context.Wrap(h.DeleteAll))
	r.GET("/tuits/:tid/bookmarks", context.Wrap(h.UsersThatBookmarked))
}

func (h *Bookmark) Bookmark(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	if err := h.BookmarkService.Bookmark(c.Request.Context(), uid, tid); err != nil {
		return err
	}
	response.Success(c, gin.H{"bookmarked": true})
	return nil
}

func (h *Bookmark) Unbookmark(c *gin.Context) error {
	uid, tid, err := userTuit(c)
	if err != nil {
		return err
	}
	if err := h.BookmarkService.Unbookmark(c.Request.Context(), uid, tid); err != nil {
		return err
	}
	response.Success(c, gin.H{"bookmarked": false})
	return nil
}

func (h *Bookmark) BookmarksByUser(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	bookmarks, err := h.BookmarkService.FindBookmarksByUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, bookmarks)
	return nil
}

func (h *Bookmark) UsersThatBookmarked(c *gin.Context) error {
	tid, err := context.ParamID(c, "tid")
	if err != nil {
		return err
	}
	bookmarks, err := h.BookmarkService.FindUsersThatBookmarkedTuit(c.Request.Context(), tid)
	if err != nil {
		return err
	}
	response.Success(c, bookmarks)
	return nil
}

func (h *Bookmark) DeleteAll(c *gin.Context) error {
	uid, err := context.ParamID(c, "uid")
	if err != nil {
		return err
	}
	n, err := h.BookmarkService.DeleteAllForUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": n})
	return nil
}
