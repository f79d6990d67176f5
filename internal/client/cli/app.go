package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/orwel/orwel-cli/internal/client/api"
	"github.com/orwel/orwel-cli/internal/client/config"
	"github.com/orwel/orwel-cli/internal/client/geo"
	"github.com/orwel/orwel-cli/internal/client/postgrest"
	"github.com/orwel/orwel-cli/internal/client/repositories/users"
	"github.com/orwel/orwel-cli/internal/client/services"
	"github.com/orwel/orwel-cli/internal/client/store"
	"github.com/orwel/orwel-cli/internal/logging"
)

// Mode is the connectivity state shown in the prompt.
type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

// App wires the services behind the REPL.
type App struct {
	config    *config.Config
	db        *sql.DB
	auth      *services.AuthService
	content   *services.ContentService
	news      *services.NewsService
	countries *services.CountryService
	geo       *geo.Client
	backend   *api.Client
	log       logging.Logger
	reader    *bufio.Reader
	Mode      Mode
}

// NewApp opens the local cache, seeds the demo account, and wires the
// remote clients and services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.CacheDBPath)
	if err != nil {
		return nil, fmt.Errorf("init cache store: %w", err)
	}

	repo := users.NewSQLiteRepository(db)
	if err := users.EnsureDemoUser(ctx, repo); err != nil {
		return nil, fmt.Errorf("seed demo account: %w", err)
	}

	backend := api.New(cfg.BackendBaseURL, cfg.ConnectTimeout, cfg.RequestTimeout, log)
	backend.SetNewsAPIKey(cfg.NewsAPIKey)
	direct := postgrest.New(cfg.DirectSourceURL, cfg.DirectSourceKey, cfg.ConnectTimeout, cfg.RequestTimeout, log)
	geoClient := geo.New(cfg.GeocodingAPIURL, cfg.GeocodingAPIKey, cfg.ConnectTimeout, cfg.RequestTimeout, log)

	session := &services.Session{}

	return &App{
		config:    cfg,
		db:        db,
		auth:      services.NewAuthService(backend, direct, repo, session, log),
		content:   services.NewContentService(direct, backend, session, repo, log),
		news:      services.NewNewsService(backend, log),
		countries: services.NewCountryService(backend, log),
		geo:       geoClient,
		backend:   backend,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		Mode:      ModeOnline,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.auth.Session().LoggedIn()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to", string(mode), "mode")
	}
}

// Run starts the connectivity watcher and the REPL, blocking until exit.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt suffix, e.g. "(demo@orwel.com offline)".
func (a *App) status() string {
	s := ""
	if user := a.auth.Session().User(); user != nil {
		s = user.Email + " "
	}
	if a.Mode != "" {
		s += string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// StartOnlineStatusWatcher probes backend reachability on a fixed interval
// and flips the prompt mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.backend.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
