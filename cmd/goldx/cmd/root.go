package cmd

import (
	"github.com/spf13/cobra"

	"github.com/goldenacre/extensions/core/config"
	"github.com/goldenacre/extensions/core/log"
	"github.com/goldenacre/extensions/internal/assets"
	"github.com/goldenacre/extensions/utils/resx"
)

// app carries the flag values and the settings resolved before each command
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	settings config.Settings
	logger   *log.Logger
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{settings: config.DefaultSettings(), logger: log.Nop()}

	rootCmd := &cobra.Command{
		Use:   "goldx",
		Short: "goldenacre extensions from the command line",
		Long: `goldx exposes the goldenacre extension helpers as small commands.

Groups:
  text      - pascal, split-caps, whitespace, sniff, truthy, nth
  time      - nice-date, unix, weekend
  sequence  - batch, distinct
  resources - resource

Settings come from the embedded defaults, then --config, then GOLDX_*
environment variables (GOLDX_TEXT_CULTURE for text.culture).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (text or json)")

	rootCmd.AddCommand(
		newPascalCmd(a),
		newSplitCapsCmd(),
		newWhitespaceCmd(),
		newSniffCmd(),
		newTruthyCmd(a),
		newNthCmd(),
		newNiceDateCmd(),
		newUnixCmd(),
		newWeekendCmd(),
		newBatchCmd(a),
		newDistinctCmd(a),
		newResourceCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// load resolves settings and the logger. Flags win over environment
// variables, which win over files.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	settings, err := config.SettingsFrom(cfg)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		if settings.LogLevel, err = log.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}
	if a.logFormat != "" {
		if settings.LogFormat, err = log.ParseFormat(a.logFormat); err != nil {
			return err
		}
	}

	a.settings = settings
	a.logger = settings.Logger("goldx").WithOutput(cmd.ErrOrStderr())
	a.logger.Debug("settings loaded", log.Fields{
		"command":   cmd.Name(),
		"config":    a.cfgFile,
		"culture":   settings.Culture,
		"prefix":    settings.ResourcePrefix,
		"log_level": settings.LogLevel.String(),
	})
	return nil
}

// loadConfig reads the embedded defaults, overlays path when given and
// enables GOLDX_* overrides
func loadConfig(path string) (*config.Config, error) {
	provider, err := assets.Provider(config.DefaultSettings().ResourcePrefix)
	if err != nil {
		return nil, err
	}

	bundle, err := resx.NewBundle(provider, true)
	if err != nil {
		return nil, err
	}

	defaults, _, err := bundle.Text(assets.DefaultsFile)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadFromString(defaults, config.FormatTOML)
	if err != nil {
		return nil, err
	}

	if path != "" {
		user, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(user)
	}

	return cfg.WithEnvPrefix(config.DefaultEnvPrefix), nil
}
