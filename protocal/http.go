package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/anjishnu/ask-alexa-twitter/configs"
	httpAdapter "github.com/anjishnu/ask-alexa-twitter/internal/adapters/input/http"
	"github.com/anjishnu/ask-alexa-twitter/internal/adapters/output/file"
	"github.com/anjishnu/ask-alexa-twitter/internal/adapters/output/twitter"
	"github.com/anjishnu/ask-alexa-twitter/internal/application"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapter (session store); a missing or corrupt file is
	// recovered inside Load, never fatal
	sessionStore := file.NewFileSessionStore(configs.GetViper().Session.StorePath)
	if err := sessionStore.Load(); err != nil {
		return err
	}

	// Output adapter (Twitter client)
	twitterClient := twitter.NewTwitterClientAdapter(
		configs.GetViper().Twitter.ConsumerKey,
		configs.GetViper().Twitter.ConsumerSecret,
		configs.GetViper().Twitter.BaseURL,
	)

	// Application services (use cases); duplicate handler selectors are a
	// configuration bug and abort startup
	handlers := application.NewHandlers(twitterClient, configs.GetViper().Session.PageSize)
	router, err := handlers.BuildRouter()
	if err != nil {
		logrus.Fatalf("Failed to build intent router: %v", err)
	}
	dialogSrv := application.NewDialogService(router, sessionStore, configs.GetViper().Alexa.BaseURL)
	linkSrv := application.NewLinkService(twitterClient, sessionStore)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New()
	alexaHdl := httpAdapter.NewAlexaHandler(dialogSrv)
	authHdl := httpAdapter.NewAuthHandler(linkSrv)

	app.Get("/health", hdl.HealthCheck)

	// Voice skill endpoint
	app.Post("/alexa", alexaHdl.HandleRequest)

	// Account linking flow
	app.Get("/login/:user_id", authHdl.Login)
	app.Get("/get_auth/:user_id", authHdl.Callback)

	logrus.Println("Listening on port: ", configs.GetViper().App.Port)
	return app.Listen(":" + configs.GetViper().App.Port)
}
