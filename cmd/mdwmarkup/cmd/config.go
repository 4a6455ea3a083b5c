package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwconfig "github.com/msto63/mdwmarkup/foundation/core/config"
	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwlog "github.com/msto63/mdwmarkup/foundation/core/log"
	"github.com/msto63/mdwmarkup/foundation/markup"
)

// envPrefix is the prefix for environment overrides, e.g. MDWMARKUP_PARSER_MAX_DEPTH
const envPrefix = "MDWMARKUP"

// settings is the effective configuration of a command run
type settings struct {
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	MaxDepth        int           `yaml:"max_depth"`
	MaxInputLength  int           `yaml:"max_input_length"`
	RequireComplete bool          `yaml:"require_complete"`
	OutputFormat    string        `yaml:"output_format"`
	Color           bool          `yaml:"color"`
	WatchInterval   time.Duration `yaml:"watch_interval"`
	Source          string        `yaml:"source"`
}

func defaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"parser": map[string]interface{}{
			"max_depth":        256,
			"max_input_length": 1 << 20,
			"require_complete": false,
		},
		"output": map[string]interface{}{
			"format": "debug",
			"color":  true,
		},
		"watch": map[string]interface{}{
			"interval": "1s",
		},
	}
}

// loadConfig reads the --config file or falls back to defaults and environment
func loadConfig() (*mdwconfig.Config, error) {
	opts := mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: envPrefix,
		Defaults:  defaultConfig(),
	}
	if cfgFile == "" {
		return mdwconfig.Empty(opts), nil
	}
	return mdwconfig.LoadWithOptions(cfgFile, opts)
}

// loadSettings resolves the configuration and applies flags the user set
func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &settings{
		LogLevel:        cfg.GetString("log.level"),
		LogFormat:       cfg.GetString("log.format"),
		MaxDepth:        cfg.GetInt("parser.max_depth"),
		MaxInputLength:  cfg.GetInt("parser.max_input_length"),
		RequireComplete: cfg.GetBool("parser.require_complete"),
		OutputFormat:    cfg.GetString("output.format"),
		Color:           cfg.GetBool("output.color"),
		WatchInterval:   cfg.GetDuration("watch.interval"),
		Source:          cfg.FilePath(),
	}
	if s.Source == "" {
		s.Source = "defaults"
	}

	if verbose {
		s.LogLevel = "debug"
	}
	flags := cmd.Flags()
	if flags.Changed("log-format") {
		s.LogFormat = logFormat
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		s.OutputFormat, _ = flags.GetString("format")
	}
	if flags.Lookup("max-depth") != nil && flags.Changed("max-depth") {
		s.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Lookup("require-complete") != nil && flags.Changed("require-complete") {
		s.RequireComplete, _ = flags.GetBool("require-complete")
	}
	if flags.Lookup("no-color") != nil && flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		s.Color = !noColor
	}
	if flags.Lookup("interval") != nil && flags.Changed("interval") {
		s.WatchInterval, _ = flags.GetDuration("interval")
	}

	return s, nil
}

// newLogger builds the CLI logger. Log output goes to stderr so that
// command output on stdout stays machine readable.
func newLogger(cmd *cobra.Command, s *settings) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, mdwerror.Wrap(err, "ungueltiges Log-Level").WithCode(mdwerror.CodeInvalidConfig)
	}
	format, err := mdwlog.ParseFormat(s.LogFormat)
	if err != nil {
		return nil, mdwerror.Wrap(err, "ungueltiges Log-Format").WithCode(mdwerror.CodeInvalidConfig)
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "mdwmarkup",
	}), nil
}

// newEngine builds the markup engine from the effective settings
func newEngine(cmd *cobra.Command) (*markup.Engine, *settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cmd, s)
	if err != nil {
		return nil, nil, err
	}
	engine, err := markup.NewEngine(markup.Options{
		Logger:          logger,
		MaxDepth:        s.MaxDepth,
		MaxInputLength:  s.MaxInputLength,
		RequireComplete: s.RequireComplete,
	})
	if err != nil {
		return nil, nil, err
	}
	return engine, s, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Zeigt die wirksame Konfiguration an",
	Long: `Zeigt die Konfiguration an, die sich aus Standardwerten, der
Config-Datei (--config) und Umgebungsvariablen ergibt.

Umgebungsvariablen:
  MDWMARKUP_LOG_LEVEL, MDWMARKUP_LOG_FORMAT
  MDWMARKUP_PARSER_MAX_DEPTH, MDWMARKUP_PARSER_MAX_INPUT_LENGTH
  MDWMARKUP_PARSER_REQUIRE_COMPLETE
  MDWMARKUP_OUTPUT_FORMAT, MDWMARKUP_OUTPUT_COLOR
  MDWMARKUP_WATCH_INTERVAL`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
