package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/analysis"
	analysisHTTP "ai-task-planner/internal/analysis/delivery/http"
	analysisRepo "ai-task-planner/internal/analysis/repository/postgre"
	analysisUC "ai-task-planner/internal/analysis/usecase"
	authHTTP "ai-task-planner/internal/auth/delivery/http"
	authRepo "ai-task-planner/internal/auth/repository/postgre"
	authUC "ai-task-planner/internal/auth/usecase"
	conversationHTTP "ai-task-planner/internal/conversation/delivery/http"
	conversationRepo "ai-task-planner/internal/conversation/repository/postgre"
	conversationUC "ai-task-planner/internal/conversation/usecase"
	"ai-task-planner/internal/middleware"
	"ai-task-planner/internal/planner"
	plannerHTTP "ai-task-planner/internal/planner/delivery/http"
	plannerUC "ai-task-planner/internal/planner/usecase"
	"ai-task-planner/internal/task"
	taskHTTP "ai-task-planner/internal/task/delivery/http"
	taskRepo "ai-task-planner/internal/task/repository/postgre"
	taskUC "ai-task-planner/internal/task/usecase"
)

// Each domain follows the same wiring: repository, usecase, handler, routes.

func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.db, srv.l)
	uc := authUC.New(srv.l, repo, srv.jwtManager, srv.encrypter)
	h := authHTTP.New(srv.l, uc, srv.cookie)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(srv.l, repo, srv.dateMath, srv.now)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}

func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) {
	uc := plannerUC.New(srv.l, srv.llm, tasks, srv.dateMath, srv.calendar, planner.Config{
		Temperature:      srv.planner.Temperature,
		MaxTokens:        srv.planner.MaxTokens,
		DefaultListColor: srv.planner.DefaultListColor,
		CalendarID:       srv.calendarID,
	}, srv.now)
	h := plannerHTTP.New(srv.l, uc)
	plannerHTTP.RegisterRoutes(api, h, mw)

	if srv.llm == nil {
		srv.l.Warnf(ctx, "Planner domain registered without an LLM provider, chat is disabled")
		return
	}
	srv.l.Infof(ctx, "Planner domain registered")
}

func (srv *HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := conversationRepo.New(srv.db, srv.l)
	uc := conversationUC.New(repo, srv.l)
	h := conversationHTTP.New(srv.l, uc)
	conversationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
}

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := analysisRepo.New(srv.db, srv.l)
	uc := analysisUC.New(srv.l, repo, srv.dateMath, analysis.Config{
		MonthlyGoal:         srv.analysis.MonthlyGoal,
		LeaderboardSize:     srv.analysis.LeaderboardSize,
		LeaderboardCacheTTL: srv.analysis.LeaderboardCacheTTL,
	}, srv.now)
	h := analysisHTTP.New(srv.l, uc)
	analysisHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
}
