package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/diffy/internal/app"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the Diffy project of the current site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(c.newProjectCreateCmd())
	return cmd
}

func (c *CLI) newProjectCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Store Diffy credentials as CircleCI environment variables",
		Long: "Asks for a Diffy API key and project, caches both for the current user " +
			"and sets DIFFY_API_KEY and DIFFY_PROJECT_ID on the site's CircleCI project.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			verbose, _ := cmd.Flags().GetBool("verbose")
			promptMode, _ := cmd.Flags().GetString("prompt")

			switch promptMode {
			case "auto", "interactive", "line":
			default:
				return zerr.With(domain.ErrInvalidPromptMode, "mode", promptMode)
			}

			return c.app.CreateProject(cmd.Context(), app.CreateOptions{
				CacheDir:   cacheDir,
				Verbose:    verbose,
				PromptMode: promptMode,
			})
		},
	}
	cmd.Flags().String("cache-dir", "", "Host CLI cache directory (overrides cache_dir from the config file)")
	cmd.Flags().BoolP("verbose", "v", false, "Log every API call")
	cmd.Flags().StringP("prompt", "p", "auto", "Prompt mode: auto, interactive, or line")
	return cmd
}
