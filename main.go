package main

import (
	"context"
	"os"
	"time"

	"ClinicDesk/authorization"
	"ClinicDesk/config"
	"ClinicDesk/controllers"
	"ClinicDesk/jobs"
	"ClinicDesk/logger"
	"ClinicDesk/migrations"
	"ClinicDesk/routes"
	"ClinicDesk/server"
	"ClinicDesk/services"
	"ClinicDesk/views"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("clinicdesk failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "clinicdesk",
		Short:         "Clinic back office",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Debug().Msg("No .env file loaded")
			}
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			logger.Init(cfg.Env)
			return nil
		},
	}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server and the daily jobs",
		RunE:  func(cmd *cobra.Command, args []string) error { return serve(cfg) },
	}
	root.RunE = serveCmd.RunE

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the data migrations",
		RunE:  func(cmd *cobra.Command, args []string) error { return migrate(cfg) },
	}

	var username, password string
	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Replace the back-office login",
		RunE: func(cmd *cobra.Command, args []string) error {
			return createUser(cfg, username, password)
		},
	}
	createUserCmd.Flags().StringVar(&username, "username", "", "login name")
	createUserCmd.Flags().StringVar(&password, "password", "", "login password")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	root.AddCommand(serveCmd, migrateCmd, createUserCmd)
	return root
}

func newService(cfg *config.Config, deps *server.Deps) *services.Service {
	return services.New(deps.Store, deps.Broker, deps.Mailer, services.Options{
		UploadsDir:    cfg.UploadsDir,
		LogoPath:      cfg.LogoPath,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    time.Duration(cfg.SessionTTLHours) * time.Hour,
	})
}

/*
* Connect the store, broker and mailer
* Bring a mongo database up to date before serving it
* Start the expired drug sweep unless jobs are disabled
* Register the pages and serve
 */
func serve(cfg *config.Config) error {
	ctx := context.Background()
	deps, err := server.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close(ctx)
	svc := newService(cfg, deps)

	var scheduler *cron.Cron
	defer func() {
		if scheduler != nil {
			<-scheduler.Stop().Done()
		}
	}()

	if !cfg.IsProduction() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	defaultopts := server.GetDefaultOptions()
	options := server.Options{
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    cfg.Port,

		MigrationEnabled: deps.Database != nil,
		MigrationHandler: func() error { return migrations.Run(ctx, deps.Database) },

		JobsEnabled: cfg.JobsEnabled && !isTest,
		JobsHandler: func() error {
			if isTest {
				return nil
			}
			scheduler, err = jobs.StartDailyScheduler(svc)
			return err
		},

		WebServerPreHandler: func(r *gin.Engine) {
			renderer := views.Load(r, cfg.ViewsDir)
			h := controllers.New(svc, controllers.Options{
				Views:         renderer,
				Guard:         authorization.RequireSession(svc),
				Locals:        views.Locals(svc, cfg.LocalesDir),
				SecureCookies: cfg.IsProduction(),
			})
			r.Static("/uploads", cfg.UploadsDir)
			routes.Routes(r, h, cfg.CORSOrigins)
		},
	}
	return startServer(options)
}

func migrate(cfg *config.Config) error {
	ctx := context.Background()
	deps, err := server.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close(ctx)

	return startServer(server.Options{
		MigrationEnabled: true,
		MigrationHandler: func() error {
			if deps.Database == nil {
				log.Info().Msg("In-memory store, nothing to migrate")
				return nil
			}
			return migrations.Run(ctx, deps.Database)
		},
	})
}

func createUser(cfg *config.Config, username, password string) error {
	ctx := context.Background()
	deps, err := server.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close(ctx)

	if err := newService(cfg, deps).CreateUser(ctx, username, password); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("Login account replaced")
	return nil
}
