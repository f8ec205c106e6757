package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homehub/internal/handlers"
	"homehub/internal/hub"
	"homehub/internal/logger"
	"homehub/internal/repository"
	"homehub/internal/repository/db"
	"homehub/internal/server"
	"homehub/internal/service"
	"homehub/internal/store"
	"homehub/internal/threat"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// @title           Home Hub API
// @version         1.0
// @description     Household dashboard backend: climate, projects, maintenance, bills, calendar, lighting scenes, and a neighborhood threat feed.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// load config.yml first so the logger picks up its level
	if err := loadConfig(); err != nil {
		// config is required; nothing sensible to do without it
		panic(err)
	}

	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.format"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database, scenesPath())
	st := store.New()
	loadOrSeedState(st, repos, log)

	listeners := hub.New(log)
	threatClient := newThreatClient(log)

	services := service.NewService(service.Deps{
		Repos:      repos,
		Store:      st,
		Hub:        listeners,
		Threat:     threatClient,
		Log:        log,
		SigningKey: signingKey(),
	})

	lat := viper.GetFloat64("threat.lat")
	lon := viper.GetFloat64("threat.lon")
	apiHandler := handlers.NewHandler(services, listeners, log, lat, lon)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// periodic threat refresh
	sched := startThreatCron(ctx, services, lat, lon, log)
	if sched != nil {
		defer sched.Stop()
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("homehub")
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "homehub.db")
		dbPath = "homehub.db"
	}
	return db.InitDB(dbPath)
}

func scenesPath() string {
	if p := viper.GetString("scenes.path"); p != "" {
		return p
	}
	return "scenes.json"
}

func signingKey() string {
	if k := os.Getenv("HOMEHUB_SIGNING_KEY"); k != "" {
		return k
	}
	return viper.GetString("auth.signing_key")
}

// loadOrSeedState hydrates the store from the last snapshot, falling back
// to sample data when no usable snapshot exists.
func loadOrSeedState(st *store.Store, repos *repository.Repository, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state, ok, err := repos.Snapshots.Load(ctx)
	if err != nil {
		log.Errorw("snapshot load failed; starting from sample data", "err", err)
	}
	if !ok {
		st.Replace(store.SampleState(time.Now()))
		log.Infow("store seeded with sample data")
		return
	}
	st.Replace(state)
	log.Infow("store restored from snapshot")
}

func newThreatClient(log *logger.Logger) *threat.Client {
	opts := []threat.Option{}
	if key := os.Getenv("CRIME_API_KEY"); key != "" {
		opts = append(opts, threat.WithCrimeAPIKey(key))
	} else {
		log.Infow("CRIME_API_KEY not set; crime feed disabled")
	}
	return threat.NewClient(opts...)
}

// startThreatCron schedules periodic threat refreshes. A missing or
// invalid schedule disables them; manual refresh stays available.
func startThreatCron(ctx context.Context, services *service.Service, lat, lon float64, log *logger.Logger) *cron.Cron {
	spec := viper.GetString("threat.refresh_cron")
	if spec == "" {
		return nil
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		summary := services.Threats.Refresh(ctx, lat, lon)
		log.Infow("threat_refresh", "level", summary.Level)
	})
	if err != nil {
		log.Errorw("invalid threat.refresh_cron; periodic refresh disabled", "spec", spec, "err", err)
		return nil
	}
	c.Start()
	return c
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
