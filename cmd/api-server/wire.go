//go:build wireinject
// +build wireinject

package main

import (
	"Tuiter/config"
	"Tuiter/dao"
	"Tuiter/handler"
	"Tuiter/pkg/client"
	"Tuiter/pkg/database"
	"Tuiter/pkg/server"
	"Tuiter/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		config.ProvideAppConfig,
		config.ProvideRocketMQConfig,
		client.NewRedisClient,
		database.NewDB,
		ProvideRepairPublisher,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Tuit), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Bookmark), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil, nil
}

func InitCounter(cfg *config.Config) (*service.CounterService, func(), error) {
	wire.Build(
		config.ProvideAppConfig,
		config.ProvideRocketMQConfig,
		client.NewRedisClient,
		database.NewDB,
		ProvideRepairPublisher,

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}
