package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/srk/consent-service/internal/system/config"
	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/database/provider"
	"github.com/srk/consent-service/internal/system/log"
	"github.com/srk/consent-service/internal/system/managers"
	"github.com/srk/consent-service/internal/system/metrics"
	"github.com/srk/consent-service/internal/system/security"
	"golang.org/x/sync/errgroup"
)

func main() {
	serviceHome := getServiceHome()

	envFiles, err := config.LoadEnvFiles(serviceHome, constants.EnvFilePattern)
	if err != nil {
		log.GetLogger().Warn("Failed to load .env files", log.Error(err))
	}

	// Load the configuration file
	serviceConfig, err := config.LoadConfig(serviceHome, constants.DefaultConfigFile)
	if err != nil {
		log.GetLogger().Fatal("Failed to load configuration", log.Error(err))
	}

	// Initialize logger
	if err := log.Init(serviceConfig.Log.LogLevel); err != nil {
		log.GetLogger().Fatal("Failed to initialize logger", log.Error(err))
	}
	logger := log.GetLogger()
	logger.Debug("Loaded environment files", log.Any("files", envFiles))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the document store client shared by every request
	dbClient, err := provider.NewDocumentStoreProvider(serviceConfig.DocumentStore).Connect(ctx)
	if err != nil {
		logger.Fatal("Failed to connect to the document store", log.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := dbClient.Close(closeCtx); err != nil {
			logger.Error("Failed to close the document store client", log.Error(err))
		}
	}()

	if err := dbClient.InitContainer(ctx, serviceConfig.DocumentStore.Container); err != nil {
		logger.Error("Failed to initialize the document container", log.Error(err))
		return
	}

	serviceMetrics := metrics.New()
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, dbClient, serviceConfig.DocumentStore.Container, serviceMetrics)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		logger.Error("Failed to register the services", log.Error(err))
		return
	}

	serverAddr := net.JoinHostPort(serviceConfig.Addr.Host, strconv.Itoa(serviceConfig.Addr.Port))
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           security.EnableCORS(serviceConfig.Auth.CORSAllowedOrigins)(security.WithTraceID(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := run(ctx, server); err != nil {
		logger.Error("Consent service stopped with an error", log.Error(err))
		return
	}
	logger.Info("Consent service stopped")
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, server *http.Server) error {
	logger := log.GetLogger()
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info(fmt.Sprintf("Consent service starting in: %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("Shutting down consent service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func getServiceHome() string {

	// Parse project directory from command line arguments.
	projectHomeFlag := flag.String("home", "", "Path to consent service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		log.GetLogger().Info(fmt.Sprintf("Using %s from command line argument", *projectHomeFlag))
		return *projectHomeFlag
	}

	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		log.GetLogger().Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}
