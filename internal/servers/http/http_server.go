package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sketchParty/configs"
	"sketchParty/internal/handlers"
	"sync"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx               context.Context
	configs           *configs.Config
	router            *gin.Engine
	restHandler       *handlers.RestHandler
	socketGameHandler *handlers.SocketGameHandler
}

func NewHttpServer(
	ctx context.Context,
	configs *configs.Config,
	restHandler *handlers.RestHandler,
	socketGameHandler *handlers.SocketGameHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:               ctx,
			configs:           configs,
			restHandler:       restHandler,
			socketGameHandler: socketGameHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	server := hs.startServer()

	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
	hs.router.Use(cors.Default())
	hs.router.Use(handlers.BodySizeLimitMiddleware())
}

func (hs *HttpServer) setupRestfulRoutes() {
	api := hs.router.Group("/api")
	{
		api.POST("/storeGameState", hs.restHandler.StoreGameState)
		api.POST("/updateDrawingStatus", hs.restHandler.UpdateDrawingStatus)
		api.GET("/incompleteUsers/:game_code/:part_name", hs.restHandler.GetIncompleteUsers)
		api.GET("/getDrawing/:game_code/:player_name/:part_name", hs.restHandler.GetDrawing)
		api.GET("/completedDrawings/:game_code", hs.restHandler.GetCompletedDrawings)
		api.PUT("/updateGameWithPlayer", hs.restHandler.UpdateGameWithPlayer)
		api.PUT("/updateGameStatus", hs.restHandler.UpdateGameStatus)
		api.POST("/validateJoinGame", hs.restHandler.ValidateJoinGame)
		api.GET("/getGameData/:game_code", hs.restHandler.GetGameData)
	}

	hs.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws", hs.socketGameHandler.HandleSocketGameRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(
		"%v:%v",
		hs.configs.Viper.GetString("server.host"),
		hs.configs.Viper.GetInt("server.port"),
	)
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %v", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	hs.socketGameHandler.CloseAllConnections()

	log.Println("Server exiting")
}
