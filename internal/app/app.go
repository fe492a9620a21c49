package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dtaoOfficial/Interview/internal/config"
	"github.com/dtaoOfficial/Interview/internal/database"
	"github.com/dtaoOfficial/Interview/internal/handler"
	"github.com/dtaoOfficial/Interview/internal/mailer"
	"github.com/dtaoOfficial/Interview/internal/middleware"
	"github.com/dtaoOfficial/Interview/internal/repository"
	"github.com/dtaoOfficial/Interview/internal/router"
	"github.com/dtaoOfficial/Interview/internal/secure"
	"github.com/dtaoOfficial/Interview/internal/service"
	"github.com/dtaoOfficial/Interview/internal/storage"
	"github.com/dtaoOfficial/Interview/internal/token"
)

// App wires the service together: config, database, stores, services,
// handlers and the HTTP server.
type App struct {
	cfg    *config.Config
	db     *database.DB
	server *http.Server
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	uploads, err := storage.New(cfg.UploadRoot)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	admins := repository.NewAdminRepository(db.Pool)
	roles := repository.NewRoleRepository(db.Pool)
	questions := repository.NewQuestionRepository(db.Pool)
	applications := repository.NewApplicationRepository(db.Pool)

	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTTTL)
	cipher := secure.NewCipher(cfg.CipherPassphrase)

	var mail mailer.Mailer = mailer.Disabled{}
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, cfg.MailSenderName)
	}

	authService := service.NewAuthService(admins, codec)
	roleService := service.NewRoleService(roles)
	questionService := service.NewQuestionService(questions)
	applicationService := service.NewApplicationService(applications, uploads, mail, cfg.HREmail)

	if err := authService.EnsureDefaultAdmin(ctx, cfg.DefaultAdminName, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed default admin: %w", err)
	}

	applicationHandler := handler.NewApplicationHandler(applicationService, cfg.MaxUploadSize)

	mux := router.New(router.Deps{
		Auth:         handler.NewAuthHandler(authService),
		Roles:        handler.NewRoleHandler(roleService, questionService),
		Questions:    handler.NewQuestionHandler(questionService, cipher),
		Applications: applicationHandler,
		Files:        handler.NewFileHandler(applicationService, uploads),

		AuthMiddleware: middleware.NewAuthMiddleware(codec, authService),
		RateLimit:      middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM),

		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      mux,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{cfg: cfg, db: db, server: server}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.db.Close()
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	a.db.Close()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("shutdown complete")
	return nil
}
