package app

import (
	"context"
	"net/http"

	gameAPI "fruit_trio/internal/api/game"
	"fruit_trio/internal/config"
	"fruit_trio/internal/config/env"
	"fruit_trio/internal/middleware"
	"fruit_trio/internal/repository"
	"fruit_trio/internal/repository/session_repo"
	"fruit_trio/internal/repository/stats_repo"
	"fruit_trio/internal/service"
	"fruit_trio/internal/service/lobby"
	"fruit_trio/internal/service/symbol"
	"fruit_trio/pkg/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	log    *zap.Logger

	// Session bits
	sessionCfg  config.SessionConfig
	sessionRepo repository.SessionRepository

	// Game bits
	gameCfg   config.GameConfig
	generator *symbol.Generator
	statsRepo repository.StatsRepository
	lobbyServ service.LobbyService
	gameHand  *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		sp.log = logger.New(logger.Config{
			Level: sp.LogCfg().Level(),
			File:  sp.LogCfg().File(),
			Dev:   sp.LogCfg().Development(),
		})
	}
	return sp.log
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromEnv()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Generator() *symbol.Generator {
	if sp.generator == nil {
		sp.generator = symbol.NewGenerator(sp.GameCfg().Catalog(), symbol.StdRNG{})
	}
	return sp.generator
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) LobbyService() service.LobbyService {
	if sp.lobbyServ == nil {
		sp.lobbyServ = lobby.NewLobbyService(
			sp.GameCfg(),
			sp.SessionCfg().IdleTTL(),
			sp.Generator(),
			sp.SessionRepository(),
			sp.StatsRepository(),
			sp.Logger(),
		)
	}
	return sp.lobbyServ
}

func (sp *ServiceProvider) GameHandler() *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Lobby:  sp.LobbyService(),
			Assets: sp.GameCfg().Assets(),
			Log:    sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chiMiddleware.RequestID)
		r.Use(chiMiddleware.Recoverer)
		r.Use(middleware.Logger(sp.Logger()))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Handle("/metrics", promhttp.Handler())

		// Game endpoints
		gameHandler := sp.GameHandler()
		r.Route("/game", func(rr chi.Router) {
			rr.Use(middleware.Session(sp.SessionCfg().SecretKey(), sp.SessionCfg().TokenDuration(), sp.Logger()))

			rr.Get("/state", gameHandler.State)
			rr.Get("/ws", gameHandler.Connect)
			rr.Post("/spin", gameHandler.Spin)
			rr.Post("/bet/increase", gameHandler.IncreaseBet)
			rr.Post("/bet/decrease", gameHandler.DecreaseBet)
			rr.Post("/reset", gameHandler.Reset)
			rr.Post("/overlay/close", gameHandler.CloseOverlay)
		})

		sp.router = r
	}

	return sp.router
}
