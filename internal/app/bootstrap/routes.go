// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminfeature "github.com/lnctu/sihportal/internal/app/features/admin"
	directoryfeature "github.com/lnctu/sihportal/internal/app/features/directory"
	healthfeature "github.com/lnctu/sihportal/internal/app/features/health"
	registrationsfeature "github.com/lnctu/sihportal/internal/app/features/registrations"
	windowfeature "github.com/lnctu/sihportal/internal/app/features/window"
	individualstore "github.com/lnctu/sihportal/internal/app/store/individuals"
	settingsstore "github.com/lnctu/sihportal/internal/app/store/settings"
	teamstore "github.com/lnctu/sihportal/internal/app/store/teams"
	"github.com/lnctu/sihportal/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. The portal mounts:
//   - /health for load balancers and orchestrators
//   - /api/registration-window for the public window state
//   - /api/individuals and /api/teams submission endpoints, behind the
//     window gate
//   - /api/directory for the public participant directory
//   - /api/admin for the session-guarded admin panel
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.AdminPasswordHash, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	individuals := individualstore.New(deps.MongoDatabase)
	teams := teamstore.New(deps.MongoDatabase)
	settings := settingsstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	windowHandler := windowfeature.NewHandler(settings, appCfg.SettingsCacheTTL, logger)
	regHandler := registrationsfeature.NewHandler(individuals, teams, logger)
	dirHandler := directoryfeature.NewHandler(individuals, teams, logger)
	adminHandler := adminfeature.NewHandler(
		deps.MongoClient, sessionMgr, individuals, teams, settings,
		windowHandler.Invalidate, logger)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/registration-window", windowfeature.Routes(windowHandler))
		api.Mount("/directory", directoryfeature.Routes(dirHandler))
		api.Mount("/admin", adminfeature.Routes(adminHandler))

		// Submission endpoints sit at the /api root, behind the window gate.
		api.Mount("/", registrationsfeature.Routes(regHandler, windowHandler.RequireOpen))
	})

	return r, nil
}
