package server

import (
	"Tuiter/handler"
)

type Handlers struct {
	User     *handler.User
	Tuit     *handler.Tuit
	Like     *handler.Like
	Follow   *handler.Follow
	Bookmark *handler.Bookmark
}
