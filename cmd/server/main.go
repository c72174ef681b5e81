package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	forum "github.com/ocastellar/go-forum"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func main() {
	cfg, err := forum.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	db, err := openDB(ctx, cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}

	repo := forum.NewRepositoryManager(db)
	if err := repo.Validate(); err != nil {
		log.Fatal(err)
	}

	auther := forum.NewAuthenticator(repo.Users(), cfg)
	routes := forum.NewRouteAuthenticator(auther, cfg)

	controller := forum.NewAuthController(
		forum.WithAuthenticator(auther),
		forum.WithRouteAuthenticator(routes),
		forum.WithRegisterHandler(forum.NewRegisterUserHandler(repo)),
	)
	controller.Debug = cfg.Debug

	app := newApp(cfg)

	forum.RegisterAuthRoutes(app, controller)
	forum.RegisterThreadRoutes(app, forum.NewThreadController(repo), routes)
	forum.RegisterMessageRoutes(app, forum.NewMessageController(repo), routes)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal(err)
		}
	}()

	waitExitSignal()

	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func newApp(cfg *forum.EnvConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "go-forum",
	})

	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(cors.New())

	if cfg.StaticDir != "" {
		app.Static("/dist", cfg.StaticDir)
	}

	return app
}

func openDB(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err := forum.CreateSchema(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

func waitExitSignal() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
}
