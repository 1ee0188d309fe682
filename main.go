package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FlorianRuen/langs-usage-chart/config"
	"github.com/FlorianRuen/langs-usage-chart/controller"
	"github.com/FlorianRuen/langs-usage-chart/logger"
	"github.com/FlorianRuen/langs-usage-chart/middleware"
	"github.com/FlorianRuen/langs-usage-chart/service"
	"github.com/FlorianRuen/langs-usage-chart/tracing"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// newRootCommand without sub command the server is started
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "langs-usage-chart",
		Short:         "Render the languages usage of a github user as a svg chart",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the http server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServer(cmd.Context())
			},
		},
		newRenderCommand(),
	)

	return rootCmd
}

// bootstrap load the configuration and build the services shared by all commands
func bootstrap(logsOutput io.Writer) (*config.Config, service.LangsService, tracing.ShutdownFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("unable to load configuration")
		return nil, nil, nil, err
	}

	// configure logger
	logger.Setup(*cfg, logsOutput)

	shutdownTracing, err := tracing.Setup(*cfg)
	if err != nil {
		log.WithError(err).Error("unable to setup tracing")
		return nil, nil, nil, err
	}

	// setup github client
	// we do here and pass the client to Github service to easily improve tests with mock client
	httpClient := &http.Client{Timeout: time.Duration(cfg.Github.TimeoutSeconds) * time.Second}

	githubClient, err := service.NewGithubClient(*cfg, httpClient)
	if err != nil {
		log.WithError(err).Error("unable to setup github client")
		return nil, nil, nil, err
	}

	githubService := service.NewGithubService(*cfg, githubClient)
	langsService := service.NewLangsService(githubService)

	return cfg, langsService, shutdownTracing, nil
}

func newRouter(apiController controller.APIController) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET"},
			AllowHeaders:  []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With, X-Request-ID"},
			ExposeHeaders: []string{middleware.RequestIDHeader, controller.ErrorCodeHeader},
			MaxAge:        12 * time.Hour,
		}),
		middleware.RequestID(),
		middleware.AccessLog(),
	)

	api := router.Group("")
	{
		api.GET("/", apiController.Index)
		api.GET("/langs/:username/:chartType", apiController.GetLanguagesChart)
	}

	return router
}

func runServer(ctx context.Context) error {
	cfg, langsService, shutdownTracing, err := bootstrap(nil)
	if err != nil {
		return err
	}

	// setup handlers and server
	apiController := controller.NewAPIController(*cfg, langsService)

	server := &http.Server{
		Addr:              ":" + cfg.API.ListenPort,
		Handler:           newRouter(apiController),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// start with configuration
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("server listening on port " + cfg.API.ListenPort)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// wait for interrupt signal to gracefully shut down the server with a timeout of 15 seconds.
	// kill default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		log.WithError(err).Error("error while starting server")
		_ = shutdownTracing(context.Background())
		return err

	case <-ctx.Done():
		log.Info("SIGINT, SIGTERM received, will shut down server ...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// flush the remaining spans
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warning("unable to flush traces")
	}

	log.Info("Application stopped gracefully !")
	return nil
}
