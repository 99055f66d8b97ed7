package cli

import (
	"fmt"

	fiberzap "github.com/gofiber/contrib/v3/zap"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/campanalytics/funnelboard/internal/config"
	"github.com/campanalytics/funnelboard/internal/dataset"
	"github.com/campanalytics/funnelboard/internal/funnel"
	"github.com/campanalytics/funnelboard/internal/handlers"
	"github.com/campanalytics/funnelboard/internal/logging"
)

var Version string

// Embedded assets passed from main
var (
	DashboardTemplate []byte
	IndexTemplate     []byte
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:   "funnelboard",
	Short: "Campaign funnel analytics without a data stack",
	Long: `Funnelboard - a self-contained campaign funnel analytics dashboard.

Funnelboard synthesizes a deterministic HCP marketing-funnel dataset in
memory and serves KPI, trend and breakdown views over it. No database,
no ETL, one binary.`,
	Version: Version,
	// Default to serve command if no subcommand provided
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return serveDashboard(serveCmd.Flags())
		}
		return cmd.Help()
	},
}

// Execute is called by main
func Execute(version string, dashboardTemplate, indexTemplate []byte) error {
	Version = version
	DashboardTemplate = dashboardTemplate
	IndexTemplate = indexTemplate

	RootCmd.Version = version

	return RootCmd.Execute()
}

// loadScenario resolves the generator scenario from config, falling back to
// the built-in defaults when no scenario file is configured.
func loadScenario(cfg *config.Config) (funnel.Scenario, error) {
	if cfg.ScenarioPath == "" {
		return funnel.DefaultScenario(), nil
	}
	return funnel.LoadScenario(cfg.ScenarioPath)
}

// serveDashboard runs the Funnelboard server. The flag set carries the
// serve flag overrides; it is passed in at run time by the invoking command.
func serveDashboard(fs *pflag.FlagSet) error {
	cfg, err := config.LoadWithOverrides(serveOverrides(fs))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	scenario, err := loadScenario(cfg)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	logging.L().Info("generating session dataset",
		zap.Int64("seed", cfg.Seed),
		zap.Int("rows", cfg.Rows))

	store, err := dataset.NewStore(cfg.Seed, cfg.Rows, scenario)
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	handlers.Data = store

	app := newApp(cfg)

	logging.L().Info("funnelboard starting",
		zap.String("port", cfg.Port),
		zap.String("dataset_id", store.Current().ID.String()))

	return app.Listen(":" + cfg.Port)
}

// newApp builds the Fiber application with middleware and routes.
func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New(createFiberConfig("Funnelboard - Campaign funnel analytics"))

	// Middleware
	app.Use(recover.New())
	app.Use(fiberzap.New(fiberzap.Config{Logger: logging.L()}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(cfg.TrustedOrigins),
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	// Add version header to all responses
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Funnelboard-Version", Version)
		return c.Next()
	})

	// Routes
	app.Get("/", handleIndex)
	app.Get("/health", handleHealth)
	app.Get("/up", handleUp) // Docker health check
	app.Get("/api/version", handleVersion)

	// Dashboard UI
	app.Get("/dashboard", handleDashboard)

	// Dashboard API endpoints
	app.Get("/api/filters", handlers.HandleFilterOptions)
	app.Get("/api/funnel", handlers.HandleFunnelStats)
	app.Get("/api/timeseries", handlers.HandleTimeSeries)
	app.Get("/api/breakdown/:dimension", handlers.HandleBreakdown)
	app.Get("/api/events", handlers.HandleEvents)
	app.Get("/api/export", handlers.HandleExport)

	// Dataset lifecycle
	app.Get("/api/dataset", handlers.HandleDatasetInfo)
	app.Post("/api/dataset/regenerate", handlers.HandleRegenerate)

	return app
}

// allowedOrigins expands scheme-less trusted origins into CORS origins.
// With no configured origins everything is allowed, matching a dashboard
// that only serves synthetic data.
func allowedOrigins(trusted []string) []string {
	if len(trusted) == 0 {
		return []string{"*"}
	}
	origins := make([]string, 0, len(trusted)*2)
	for _, host := range trusted {
		origins = append(origins, "http://"+host, "https://"+host)
	}
	return origins
}

// Handler functions

func handleIndex(c fiber.Ctx) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Send(IndexTemplate)
}

func handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "funnelboard",
	})
}

func handleUp(c fiber.Ctx) error {
	// Returns 200 OK if the server is running and the dataset is loaded.
	if handlers.Data == nil || handlers.Data.Current() == nil {
		return c.Status(503).SendString("dataset unavailable")
	}
	return c.SendStatus(200)
}

func handleVersion(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": Version,
	})
}

func handleDashboard(c fiber.Ctx) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(handlers.RenderDashboardHTML(string(DashboardTemplate), Version))
}

func init() {
	// Add subcommands
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(healthcheckCmd)

	setupSelfUpgrade()

	// Set version output
	RootCmd.Version = Version
}
