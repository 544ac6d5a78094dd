package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/services"
)

// RootCommand represents the base command. Running it with no subcommand
// starts the interactive menu.
type RootCommand struct {
	cmd *cobra.Command
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "An interactive command-line task manager",
		Long: `Task Manager (tm) is an interactive command-line application for managing tasks.

Running tm starts a menu loop with three choices: view tasks, add a task, quit.
Tasks live in an in-memory store; nothing is kept between runs unless a
database path is configured.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TM_DB_PATH                 Database path (default: :memory:)
    TM_DB_QUERY_TIMEOUT        Query timeout (default: 10s)
    TM_DB_WRITE_TIMEOUT        Write timeout (default: 5s)
    TM_TIME_DISPLAY_FORMAT     Time display format (default: 2006-01-02 15:04)
    TM_APP_TIMEOUT             Application timeout (default: 60s)
    TM_APP_VERBOSE             Enable verbose output (default: false)
    TM_LOG_LEVEL               Log level: debug, info, warn, error (default: info)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd)
		},
	}

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-path", "", "Database path (overrides TM_DB_PATH)")
	flags.String("time-format", "", "Time display format (overrides TM_TIME_DISPLAY_FORMAT)")
	flags.Duration("timeout", 0, "Application timeout (overrides TM_APP_TIMEOUT)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TM_APP_VERBOSE)")
}

// getConfigOverrides collects overrides from flags the user actually set
func (r *RootCommand) getConfigOverrides() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-path") {
		v, _ := flags.GetString("db-path")
		overrides.DBPath = &v
	}
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = &v
	}
	if flags.Changed("timeout") {
		v, _ := flags.GetDuration("timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// run wires configuration, logging, storage and the service together, then
// hands control to the interactive menu.
func (r *RootCommand) run(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadWithOverrides(r.getConfigOverrides())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Application.LogLevel, cfg.Application.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	service := services.NewTaskService(repo, logger)

	menu := NewMenu(service, cfg, os.Stdin, cmd.OutOrStdout())
	return menu.Run(cmd.Context())
}
