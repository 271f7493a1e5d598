// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/campaignhq/campaign-service/internal/config"
	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/lock"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring/prometheus"
	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/redis"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/pkg/authentication"
	"github.com/campaignhq/campaign-service/pkg/campaigns"
	"github.com/campaignhq/campaign-service/pkg/connections"
	"github.com/campaignhq/campaign-service/pkg/metrics"
	"github.com/campaignhq/campaign-service/pkg/organizations"
	"github.com/campaignhq/campaign-service/pkg/publishing"
	"github.com/campaignhq/campaign-service/pkg/status"
	"github.com/campaignhq/campaign-service/pkg/web"
	"github.com/campaignhq/campaign-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("campaign-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	redisClient, err := redis.Connect(context.Background(), specs.RedisURL, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	locker := lock.NewLocker(redisClient, logger)

	verifier, err := authentication.NewJWTAuthenticator(
		context.Background(),
		specs.OIDCIssuer,
		specs.JWKSURL,
		specs.AllowedSubjects,
		specs.RequiredScope,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %v", err)
	}
	authMdw := authentication.NewMiddleware(verifier, s, tracer, monitor, logger)

	registry := platform.NewRegistry(buildPlatformClients(specs, s, tracer, logger)...)

	organizationService := organizations.NewService(s, tracer, monitor, logger)
	campaignService := campaigns.NewService(s, tracer, monitor, logger)
	connectionService := connections.NewService(s, registry, redisClient, tracer, monitor, logger)
	publishingService := publishing.NewService(s, tracer, monitor, logger)
	webhookService := webhooks.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		specs.Environment,
		specs.CORSAllowedOrigins,
		dbClient,
		authMdw,
		[]web.EndpointRegistererInterface{
			status.NewAPI(tracer, monitor, logger),
			metrics.NewAPI(logger),
			webhooks.NewAPI(webhookService, specs.RegistrationWebhookSecret, tracer, logger),
			connections.NewCallbackAPI(connectionService, tracer, monitor, logger),
		},
		[]web.EndpointRegistererInterface{
			organizations.NewAPI(organizationService, tracer, monitor, logger),
		},
		[]web.EndpointRegistererInterface{
			campaigns.NewAPI(campaignService, tracer, monitor, logger),
			connections.NewAPI(connectionService, tracer, monitor, logger),
			publishing.NewAPI(publishingService, tracer, monitor, logger),
		},
		tracer,
		monitor,
		logger,
	)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	refresher := connections.NewRefresher(s, registry, locker, specs.TokenRefreshInterval, specs.TokenRefreshWindow, tracer, logger)
	go refresher.Run(workerCtx)

	if specs.PublishWorkerEnabled {
		worker := publishing.NewWorker(s, registry, locker, specs.PublishWorkerInterval, tracer, logger)
		go worker.Run(workerCtx)
	}

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	stopWorkers()

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

// buildPlatformClients registers a client for every platform with
// configured credentials; each one is wrapped so its auth calls land in
// the analytics table.
func buildPlatformClients(specs *config.EnvSpec, recorder platform.AuthEventRecorderInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) []platform.ClientInterface {
	clients := []platform.ClientInterface{}

	add := func(c platform.ClientInterface) {
		clients = append(clients, platform.Instrument(c, recorder, logger))
	}

	if specs.MetaClientID != "" {
		add(platform.NewMetaClient(specs.MetaClientID, specs.MetaClientSecret, specs.OAuthRedirectBase, specs.PlatformRequestTimeout, tracer, logger))
	}
	if specs.GoogleClientID != "" {
		add(platform.NewGoogleBusinessClient(specs.GoogleClientID, specs.GoogleClientSecret, specs.OAuthRedirectBase, specs.PlatformRequestTimeout, tracer, logger))
	}
	if specs.TumblrConsumerKey != "" {
		add(platform.NewTumblrClient(specs.TumblrConsumerKey, specs.TumblrConsumerSecret, specs.OAuthRedirectBase, specs.PlatformRequestTimeout, tracer, logger))
	}
	if specs.TikTokClientKey != "" {
		add(platform.NewTikTokClient(specs.TikTokClientKey, specs.TikTokClientSecret, specs.OAuthRedirectBase, specs.PlatformRequestTimeout, tracer, logger))
	}
	if specs.LinkedInClientID != "" {
		add(platform.NewLinkedInClient(specs.LinkedInClientID, specs.LinkedInClientSecret, specs.OAuthRedirectBase, specs.PlatformRequestTimeout, tracer, logger))
	}

	return clients
}
