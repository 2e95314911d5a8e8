package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/asset-standardizer/internal/model"
)

func newLanguageCmd(opts *options) *cobra.Command {
	codes := make([]string, 0, len(model.Languages))
	for _, lang := range model.Languages {
		codes = append(codes, lang.String())
	}

	languageCmd := &cobra.Command{
		Use:   "language",
		Short: "Show the interface language and where it is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := opts.settings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "language: %s\n", settings.LoadLanguage())
			fmt.Fprintf(out, "detected: %s\n", settings.DetectLanguage())
			fmt.Fprintf(out, "file: %s\n", settings.LanguageFilePath())
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:       "set CODE",
		Short:     "Save the interface language",
		Args:      cobra.ExactArgs(1),
		ValidArgs: codes,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, ok := model.ParseLanguage(args[0])
			if !ok {
				return fmt.Errorf("unsupported language: %q (expected one of %v)", args[0], codes)
			}
			if err := opts.settings().SaveLanguage(lang); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "language set to %s\n", lang)
			return nil
		},
	}

	languageCmd.AddCommand(setCmd)
	return languageCmd
}
