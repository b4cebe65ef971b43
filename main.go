package main

import (
	"ats-backend/config"
	apiv1 "ats-backend/controllers/v1"
	"ats-backend/db"
	"ats-backend/fiberlog"
	"ats-backend/initializers"
	"ats-backend/middleware"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	bodyLimit := config.Conf.App.BodyLimitMB * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())

	if _, err := os.Stat(config.Conf.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerFile,
		}))
	} else {
		log.WithField("file", config.Conf.App.SwaggerFile).Warn("swagger file not found, swagger UI is disabled")
	}

	//api
	apiV1 := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, If-Match",
		AllowMethods:  "GET, POST, PATCH, DELETE, PUT",
		ExposeHeaders: "ETag, Content-Disposition",
	}))
	authRequired := middleware.AuthorizationRequired(config.Conf.Auth.JWTSecret, *config.Conf.Auth.Enabled, initializers.DefaultActor())
	apiv1.InitAuthApiRouters(apiV1, services.Auth, authRequired)

	//public
	public := fiber.New()
	apiV1.Mount("/public", public)
	apiv1.InitPublicMarketingApiRouters(public, services.Marketing)

	//space
	space := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	apiV1.Mount("/space", space)
	space.Use(authRequired)
	apiv1.InitCandidateApiRouters(space, services.Candidates, services.Query, services.History, services.Files)
	apiv1.InitInterviewApiRouters(space, services.Query)
	apiv1.InitPipelineApiRouters(space, services.Query)
	apiv1.InitAnalyticsApiRouters(space, services.Analytics)
	apiv1.InitExportApiRouters(space, services.Query, services.Csv, services.Xls)
	apiv1.InitMarketingApiRouters(space, services.Marketing)
	apiv1.InitDictApiRouters(space)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		services.Close()
		db.Close()
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
