package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/candidatehub/server/internal/api/http/handler"
	"github.com/candidatehub/server/internal/api/http/middleware"
	"github.com/candidatehub/server/internal/logger"
)

const requestTimeout = 60 * time.Second

// Router wires the HTTP handlers and middleware into a chi mux.
type Router struct {
	authService   handler.AuthService
	sessionAuth   middleware.AuthService
	reportService handler.ReportService
	uploadService handler.UploadService
	maxFileSize   int64
	logger        *logger.Logger
}

// New creates a new Router instance.
//
// Parameters:
//   - authService: verifies credentials for login
//   - sessionAuth: resolves session tokens for the admin routes
//   - reportService: answers the admin reporting queries
//   - uploadService: stores uploaded resumes
//   - maxFileSize: upload size limit in bytes
//   - logger: the logger for request logging
func New(
	authService handler.AuthService,
	sessionAuth middleware.AuthService,
	reportService handler.ReportService,
	uploadService handler.UploadService,
	maxFileSize int64,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:   authService,
		sessionAuth:   sessionAuth,
		reportService: reportService,
		uploadService: uploadService,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

// Register builds the route tree. Upload and login are public; the reporting
// endpoints and logout require an authenticated admin session.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionAuth, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	uploadHandler := handler.NewUpload(r.uploadService, r.maxFileSize, r.logger)
	reportHandler := handler.NewReport(r.reportService, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(chimiddleware.Timeout(requestTimeout))

	mux.Route("/api", func(api chi.Router) {
		api.Post("/upload", uploadHandler.Store)
		api.Post("/login", authHandler.Login)

		api.Group(func(admin chi.Router) {
			admin.Use(authenticate.Handle)
			admin.Get("/profiles", reportHandler.Profiles)
			admin.Get("/export", reportHandler.Export)
			admin.Get("/skills-distribution", reportHandler.SkillsDistribution)
			admin.Post("/logout", authHandler.Logout)
		})
	})

	return mux
}
