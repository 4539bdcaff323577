package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Refs), "*"),

	wire.Struct(new(CounterService), "*"),
	wire.Bind(new(ICounterService), new(*CounterService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(BookmarkService), "*"),
	wire.Bind(new(IBookmarkService), new(*BookmarkService)),

	wire.Struct(new(AccountService), "*"),
	wire.Bind(new(IAccountService), new(*AccountService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(TuitService), "*"),
	wire.Bind(new(ITuitService), new(*TuitService)),
)
