package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"codexiv-backend/internal/auth"
	"codexiv-backend/internal/blog"
	"codexiv-backend/internal/contact"
	"codexiv-backend/internal/dashboard"
	"codexiv-backend/internal/newsletter"
	"codexiv-backend/internal/projects"
	"codexiv-backend/internal/services"
	"codexiv-backend/internal/sessions"
	sharedauth "codexiv-backend/internal/shared/auth"
	"codexiv-backend/internal/shared/config"
	"codexiv-backend/internal/shared/server"
	"codexiv-backend/internal/shared/storage/db"
	"codexiv-backend/internal/shared/storage/object"
	localstore "codexiv-backend/internal/shared/storage/object/local"
	s3store "codexiv-backend/internal/shared/storage/object/s3"
	"codexiv-backend/internal/shared/telemetry"
	"codexiv-backend/internal/site"
	"codexiv-backend/internal/team"
	"codexiv-backend/internal/uploads"
	"codexiv-backend/internal/users"
)

// App is the fully wired application.
type App struct {
	Cfg    config.Config
	Router *gin.Engine
	DB     *sql.DB
}

// Close releases held resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Build wires repositories, services and handlers from configuration.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	database, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, localDir, err := buildStore(ctx, cfg)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}

	var (
		userRepo       users.Repo
		sessionRepo    sessions.Repo
		projectRepo    projects.Repo
		teamRepo       team.Repo
		blogRepo       blog.Repo
		serviceRepo    services.Repo
		contactRepo    contact.Repo
		newsletterRepo newsletter.Repo
	)
	if database != nil {
		userRepo = &users.PGRepo{DB: database}
		sessionRepo = &sessions.PGRepo{DB: database}
		projectRepo = &projects.PGRepo{DB: database}
		teamRepo = &team.PGRepo{DB: database}
		blogRepo = &blog.PGRepo{DB: database}
		serviceRepo = &services.PGRepo{DB: database}
		contactRepo = &contact.PGRepo{DB: database}
		newsletterRepo = &newsletter.PGRepo{DB: database}
	} else {
		userRepo = users.NewMemoryRepo()
		sessionRepo = sessions.NewMemoryRepo()
		projectRepo = projects.NewMemoryRepo()
		teamRepo = team.NewMemoryRepo()
		blogRepo = blog.NewMemoryRepo()
		serviceRepo = services.NewMemoryRepo()
		contactRepo = contact.NewMemoryRepo()
		newsletterRepo = newsletter.NewMemoryRepo()
	}

	tokens := sharedauth.NewTokens(cfg.JWTSecret, cfg.SessionTTL)
	userSvc := users.NewService(userRepo)
	sessionSvc := sessions.NewService(sessionRepo, tokens, cfg.SessionTTL)
	gate := auth.NewGate(sessionSvc, userSvc)

	projectSvc := projects.NewService(projectRepo)
	teamSvc := team.NewService(teamRepo)
	blogSvc := blog.NewService(blogRepo)
	serviceMgr := services.NewManager(serviceRepo)
	contactSvc := contact.NewService(contactRepo)
	newsletterSvc := newsletter.NewService(newsletterRepo)
	dashboardSvc := dashboard.NewService(projectSvc, teamSvc, blogSvc, serviceMgr, contactSvc)

	projectHandler := projects.NewHandler(projectSvc, store.ViewURL)
	teamHandler := team.NewHandler(teamSvc, store.ViewURL)
	blogHandler := blog.NewHandler(blogSvc, store.ViewURL)
	serviceHandler := services.NewHandler(serviceMgr)
	contactHandler := contact.NewHandler(contactSvc)
	newsletterHandler := newsletter.NewHandler(newsletterSvc)
	dashboardHandler := dashboard.NewHandler(dashboardSvc)
	uploadHandler := uploads.NewHandler(store, cfg.MaxUploadSize)
	siteHandler := site.NewHandler(cfg)
	authHandler := auth.NewHandler(gate, sessionSvc)

	var google *auth.GoogleService
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		google = auth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
			userSvc,
			sessionSvc,
		)
	} else {
		telemetry.Info("auth.google_disabled", map[string]any{"reason": "missing client credentials"})
	}

	adminRegs := []server.AdminRegistrar{
		projectHandler,
		teamHandler,
		blogHandler,
		serviceHandler,
		contactHandler,
		newsletterHandler,
		dashboardHandler,
	}
	if cfg.FileUploadsEnabled {
		adminRegs = append(adminRegs, uploadHandler)
	}

	router := server.NewRouter(server.RouterDeps{
		Cfg:         cfg,
		Gate:        gate,
		AuthHandler: authHandler,
		Google:      google,
		Public: []server.PublicRegistrar{
			projectHandler,
			teamHandler,
			blogHandler,
			serviceHandler,
			siteHandler,
		},
		PublicWrite: []server.PublicRegistrar{
			contactHandler,
			newsletterHandler,
		},
		Admin:         adminRegs,
		LocalFilesDir: localDir,
	})

	return &App{Cfg: cfg, Router: router, DB: database}, nil
}

// buildDB connects to Postgres. Outside production an empty DATABASE_URL
// falls back to in-memory repositories so the API runs without infra.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		telemetry.Info("db.memory_fallback", map[string]any{"env": cfg.Env})
		return nil, nil
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return database, nil
}

// buildStore selects the object store. The second return is the directory
// the router should serve under /files, empty for S3.
func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, string, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, "", fmt.Errorf("init s3 store: %w", err)
		}
		return store, "", nil
	}
	store := localstore.New(cfg.LocalStoreDir)
	return store, store.BaseDir(), nil
}
