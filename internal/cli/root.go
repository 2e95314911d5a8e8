// Package cli implements the command line entry point. Without a subcommand it
// launches the desktop window; subcommands run the processing step headless and
// manage the saved interface language.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/asset-standardizer/internal/config"
	"github.com/ytget/asset-standardizer/internal/model"
	"github.com/ytget/asset-standardizer/internal/platform"
	"github.com/ytget/asset-standardizer/internal/process"
)

// Application identity
const (
	AppID   = "com.ytget.asset-standardizer"
	AppName = "asset-standardizer"
)

// options holds flags shared by every command
type options struct {
	version   string
	langFile  string
	lang      string
	interval  time.Duration
	openLinux bool
}

// Replaced in tests so no window is opened
var (
	runGUI         = launchGUI
	detectLanguage = platform.DetectSystemLanguage
)

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	opts := &options{version: version}

	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         "Fixed asset file standardization tool",
		Long:          "Pick a file, run the standardization step, and open the folder that contains it.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			platform.SetLinuxFolderOpening(opts.openLinux)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyLanguageOverride(); err != nil {
				return err
			}
			return runGUI(opts)
		},
	}

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&opts.langFile, "lang-file", config.DefaultLanguageFile, "file that stores the last chosen language")
	rootCmd.PersistentFlags().DurationVar(&opts.interval, "interval", process.DefaultStepInterval, "pause between progress steps")
	rootCmd.PersistentFlags().BoolVar(&opts.openLinux, "open-linux", false, "open the containing folder on Linux with xdg-open or a file manager")
	rootCmd.Flags().StringVar(&opts.lang, "lang", "", "save and use this language (zh, mn, en)")

	rootCmd.AddCommand(newProcessCmd(opts), newLanguageCmd(opts))
	return rootCmd
}

// Execute runs the command line application
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// settings returns settings without a GUI app behind them
func (o *options) settings() *config.Settings {
	return config.NewSettings(nil, config.NewFileLanguageStore(o.langFile), detectLanguage)
}

// applyLanguageOverride persists --lang before the window reads it
func (o *options) applyLanguageOverride() error {
	if o.lang == "" {
		return nil
	}
	lang, ok := model.ParseLanguage(o.lang)
	if !ok {
		return fmt.Errorf("unsupported language: %q", o.lang)
	}
	return o.settings().SaveLanguage(lang)
}
