package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"churnboard.openbanklabs.org/internal/app"
	"churnboard.openbanklabs.org/internal/appconf"
	"churnboard.openbanklabs.org/internal/churn"
	"churnboard.openbanklabs.org/internal/logging"
	"churnboard.openbanklabs.org/internal/restapi"
	"churnboard.openbanklabs.org/internal/webui"
)

func main() {
	envCfg, err := appconf.LoadEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment configuration: %v\n", err)
		os.Exit(1)
	}

	// Environment variables supply the defaults, so flags win when both are
	// set.
	var (
		port        = flag.Int("port", envCfg.Port, "API server port")
		envFlag     = flag.String("env", envCfg.Env, "Environment (development|test|production)")
		apiKeysFlag = flag.String("api-keys", strings.Join(envCfg.ApiKeys, ","), "Comma Separated API Keys (test, etc)")
		rateLimit   = flag.Int("rate-limit", envCfg.RateLimit, "Requests per second allowed per API key (0 disables)")
		datasetPath = flag.String("dataset", envCfg.DatasetPath, "Path or URL of the churn dataset CSV")
		dbPath      = flag.String("db-path", envCfg.DBPath, "SQLite database path (\":memory:\" for in-memory)")
		verbose     = flag.Bool("verbose", envCfg.Verbose, "Enable verbose logging")
	)
	flag.Parse()

	var apiKeys []string
	for _, key := range strings.Split(*apiKeysFlag, ",") {
		if key = strings.TrimSpace(key); key != "" {
			apiKeys = append(apiKeys, key)
		}
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	env := appconf.EnvFlagToEnvironment(*envFlag)
	churnConfig := churn.Config{
		DatasetPath: *datasetPath,
		DBPath:      *dbPath,
		Env:         env,
		Verbose:     *verbose,
	}

	manager, err := churn.InitManager(churnConfig)
	if err != nil {
		logger.Error("failed to load churn dataset", "error", err, "dataset", *datasetPath)
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.LogStatistics(logger)

	application := &app.Application{
		Config: appconf.Config{
			Port:      *port,
			Env:       env,
			ApiKeys:   apiKeys,
			RateLimit: *rateLimit,
		},
		ChurnConfig:  churnConfig,
		Logger:       logger,
		ChurnManager: manager,
	}

	api := restapi.NewRestAPI(application)
	webUI := webui.NewWebUI(application)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.Handler())
	webUI.SetWebUIRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
