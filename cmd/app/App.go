package app

import (
	"context"
	"fmt"
	"sketchParty/configs"
	"sketchParty/internal/handlers"
	"sketchParty/internal/repositories"
	"sketchParty/internal/servers/database"
	"sketchParty/internal/servers/http"
	"sketchParty/internal/services"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	gameRepo := repositories.NewGameRepository(db)
	gameService := services.NewGameService(gameRepo)
	drawingRepo := repositories.NewDrawingRepository(db)
	drawingService := services.NewDrawingService(drawingRepo)

	restHandler := handlers.NewRestHandler(gameService, drawingService)
	socketGameHandler := handlers.NewSocketGameHandler(app.redis, app.ctx, gameService, drawingService)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketGameHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf(
			"%v:%v",
			app.configs.Viper.GetString("redis.host"),
			app.configs.Viper.GetInt("redis.port"),
		),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
