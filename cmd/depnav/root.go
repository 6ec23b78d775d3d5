package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"depnav/internal/config"
	"depnav/internal/logging"
	"depnav/internal/nav"
	"depnav/internal/project"
	"depnav/internal/storage"
	"depnav/internal/version"
)

var (
	// outputFlag is the CLI --output flag value
	outputFlag string
	// logLevelFlag overrides the configured log level
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "depnav",
	Short: "depnav - classpath dependency tree navigator",
	Long: `depnav answers lazy dependency-tree queries against registered projects:
what are the children of a classpath node, and what text is behind it.
Containers, jars, packages, class files and raw archive entries are all
resolved fresh per query against the current project state.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("depnav version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "human",
		"Output format: json or human")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default from config)")
}

// env bundles everything a command needs: config, logger, registry and
// the navigator over the descriptor-backed workspace model.
type env struct {
	home      string
	cfg       *config.Config
	logger    *logging.Logger
	db        *storage.DB
	navigator *nav.Navigator
}

func (e *env) close() {
	if e.db != nil {
		_ = e.db.Close()
	}
}

// newEnv wires the command environment and merges workspace.toml
// pre-registrations into the registry.
func newEnv() (*env, error) {
	home, err := config.Home()
	if err != nil {
		return nil, fmt.Errorf("cannot determine workspace home: %w", err)
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	level := logging.LogLevel(cfg.Logging.Level)
	if logLevelFlag != "" {
		level = logging.LogLevel(logLevelFlag)
	}
	logger := logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})

	db, err := storage.Open(home, logger)
	if err != nil {
		return nil, err
	}

	if err := syncWorkspaceFile(home, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	model := project.NewModel(db, logger)
	return &env{
		home:      home,
		cfg:       cfg,
		logger:    logger,
		db:        db,
		navigator: nav.New(model, logger),
	}, nil
}

// syncWorkspaceFile merges workspace.toml projects into the registry.
func syncWorkspaceFile(home string, db *storage.DB, logger *logging.Logger) error {
	wf, err := config.LoadWorkspaceFile(home)
	if err != nil {
		return err
	}
	for _, p := range wf.Projects {
		if _, err := db.RegisterProject(p.Root, p.Descriptor); err != nil {
			logger.Warn("Failed to pre-register workspace project", map[string]any{
				"root":  p.Root,
				"error": err.Error(),
			})
		}
	}
	return nil
}
