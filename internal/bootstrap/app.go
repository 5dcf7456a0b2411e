package bootstrap

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/assignments"
	"staffing-backend/internal/employees"
	"staffing-backend/internal/llm"
	"staffing-backend/internal/llm/gemini"
	"staffing-backend/internal/rankings"
	"staffing-backend/internal/render"
	"staffing-backend/internal/roster"
	"staffing-backend/internal/shared/config"
	"staffing-backend/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	Repo               roster.Repo
	LLM                llm.Client
	Renderer           *render.Renderer
	EmployeesService   *employees.Service
	RankingsService    *rankings.Service
	AssignmentsService *assignments.Service
	EmployeesHandler   *employees.Handler
	RankingsHandler    *rankings.Handler
	AssignmentsHandler *assignments.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.AnalysisModel, cfg.DistributionModel)
		if err != nil {
			return nil, err
		}
		llmClient = geminiClient
	}

	repo := roster.NewMemoryRepo()
	renderer := render.New()

	app := &App{
		Config:   cfg,
		Repo:     repo,
		LLM:      llmClient,
		Renderer: renderer,
	}

	app.EmployeesService = &employees.Service{Repo: repo, LLM: llmClient, Renderer: renderer}
	app.RankingsService = &rankings.Service{Repo: repo, LLM: llmClient}
	app.AssignmentsService = &assignments.Service{Repo: repo, LLM: llmClient}

	app.EmployeesHandler = employees.NewHandler(app.EmployeesService)
	app.RankingsHandler = rankings.NewHandler(app.RankingsService)
	app.AssignmentsHandler = assignments.NewHandler(app.AssignmentsService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		EmployeesHandler:   app.EmployeesHandler,
		RankingsHandler:    app.RankingsHandler,
		AssignmentsHandler: app.AssignmentsHandler,
	})

	return app, nil
}
