package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-planner/config"
	"ai-task-planner/pkg/datemath"
	"ai-task-planner/pkg/encrypter"
	"ai-task-planner/pkg/gcalendar"
	"ai-task-planner/pkg/llmprovider"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db         *sql.DB
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
	dateMath   *datemath.Parser
	llm        *llmprovider.Manager
	calendar   gcalendar.Calendar
	now        func() time.Time

	// Domain settings
	cookie     config.CookieConfig
	rateLimit  config.RateLimitConfig
	planner    config.PlannerConfig
	analysis   config.AnalysisConfig
	calendarID string
}

// Config is the dependency bag passed to New(). LLM and Calendar are optional.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
	DateMath   *datemath.Parser
	LLM        *llmprovider.Manager
	Calendar   gcalendar.Calendar
	Now        func() time.Time

	Cookie     config.CookieConfig
	RateLimit  config.RateLimitConfig
	Planner    config.PlannerConfig
	Analysis   config.AnalysisConfig
	CalendarID string
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		jwtManager:  cfg.JWTManager,
		encrypter:   cfg.Encrypter,
		dateMath:    cfg.DateMath,
		llm:         cfg.LLM,
		calendar:    cfg.Calendar,
		now:         now,
		cookie:      cfg.Cookie,
		rateLimit:   cfg.RateLimit,
		planner:     cfg.Planner,
		analysis:    cfg.Analysis,
		calendarID:  cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.dateMath == nil {
		return errors.New("datemath parser is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
