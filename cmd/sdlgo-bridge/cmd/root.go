//go:build !ios && !android && (amd64 || arm64)

package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/obinnaokechukwu/sdlgo"
	"github.com/obinnaokechukwu/sdlgo/internal/config"
	"github.com/obinnaokechukwu/sdlgo/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configFile string

	// set by PersistentPreRunE for the subcommands
	v   *viper.Viper
	cfg *config.Config
	lg  *log.Logger

	rootCmd = &cobra.Command{
		Use:   "sdlgo-bridge",
		Short: "Exercise the sdlgo callback bridge",
		Long: `sdlgo-bridge drives the callback registries that connect Go closures to
SDL3's function-pointer callbacks. "stress" checks the registries under
concurrent load without SDL; "roundtrip" loads SDL3 and round-trips every kind
of callback through it.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./sdlgo-bridge.toml or ~/.config/sdlgo/sdlgo-bridge.toml)")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("library", "", "path to the SDL3 shared library")

	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(roundTripCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	v = config.New(configFile)

	flags := cmd.Flags()
	for key, name := range map[string]string{
		"log.level":   "log-level",
		"sdl.library": "library",
	} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	for key, name := range stressFlags {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	var err error
	if cfg, err = config.Load(v); err != nil {
		return err
	}

	lg = logger.New(cmd.ErrOrStderr(), cfg.Log.Level)
	sdlgo.SetLogger(logger.Zap(lg))
	if cfg.SDL.Library != "" {
		sdlgo.SetLibraryPath(cfg.SDL.Library)
	}
	if used := v.ConfigFileUsed(); used != "" {
		lg.Debug("loaded config", "file", used)
	}
	return nil
}
