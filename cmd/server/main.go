package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/calebwray/botchess-backend/internal/controller"
	"github.com/calebwray/botchess-backend/internal/middleware"
	"github.com/calebwray/botchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

type Config struct {
	Addr        string
	AllowOrigin string
	BotDelay    time.Duration
}

func loadConfig() Config {
	cfg := Config{
		Addr:        ":3000",
		AllowOrigin: "http://localhost:5173",
		BotDelay:    750 * time.Millisecond,
	}
	if v := os.Getenv("BOTCHESS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("BOTCHESS_ORIGIN"); v != "" {
		cfg.AllowOrigin = v
	}
	if v := os.Getenv("BOTCHESS_BOT_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid BOTCHESS_BOT_DELAY_MS: %v", err)
		}
		cfg.BotDelay = time.Duration(ms) * time.Millisecond
	}
	return cfg
}

func main() {
	cfg := loadConfig()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	scoreboard := service.NewScoreboard()
	gameManager := service.NewGameManager(scoreboard, cfg.BotDelay)
	gameService := service.NewGameService(gameManager, scoreboard)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{cfg.AllowOrigin},
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	api.Get("/score/:playerId", gameController.GetScore)

	log.Fatal(app.Listen(cfg.Addr))
}
