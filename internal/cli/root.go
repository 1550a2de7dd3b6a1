package cli

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"projroot/internal/app"
	"projroot/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PROJROOT"

var newAppService = app.NewService

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

// resolutionOptions are shared by every command that resolves a root.
type resolutionOptions struct {
	Marker   string
	Location string
	Root     string
	Format   string
	Report   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	opts := &resolutionOptions{}
	cmd := &cobra.Command{
		Use:     "projroot",
		Short:   "Locate the project root by its marker directory and resolve paths below it",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&opts.Marker, "marker", "", "Directory name that marks the project root (default \"cosnova\")")
	flags.StringVar(&opts.Location, "location", "", "Absolute path to search for the marker instead of the installed location")
	flags.StringVar(&opts.Root, "root", "", "Absolute project root; skips marker detection")
	flags.StringVar(&opts.Format, "format", "text", "Output format: text, yaml or json")
	flags.StringVar(&opts.Report, "report", "", "Also write a YAML resolution report to this file")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("marker", flags.Lookup("marker"))
	_ = viper.BindPFlag("location", flags.Lookup("location"))
	_ = viper.BindPFlag("root", flags.Lookup("root"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("report", flags.Lookup("report"))

	cmd.AddCommand(newRootDirCommand(opts))
	cmd.AddCommand(newPathCommand(opts))
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("projroot")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/projroot")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	log.Debug().Str("config", viper.ConfigFileUsed()).Msg("config file loaded")
	return nil
}

// setupLogging writes to stderr so resolved paths on stdout stay pipeable.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound:
		if core.IsMarkerNotFound(err) {
			return 3
		}
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
