package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stepform/cmd/stepform/handlers"
)

// Run returns the command that starts an interactive wizard session.
//
// Flags:
//
//	--prompt:     Use line-mode prompts instead of the full-screen UI
//	--accessible: Screen-reader friendly prompts (implies --prompt)
//	--prefill:    YAML file with initial field values
func Run() *cobra.Command {
	var (
		usePrompt   bool
		accessible  bool
		prefillPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill in and submit a profile interactively",
		Long: `Fill in and submit a profile interactively.

The wizard has three steps:

  1. Personal Information  (first name, last name, email)
  2. Professional Details  (occupation, company, city, website,
                            LinkedIn profile, bio)
  3. Review & Submit

A step can only be left once its required fields are valid. After a
submission you can start a new form or quit.

The full-screen UI is used when stdout is a terminal. Use --prompt for
line-mode prompts, or --accessible for plain prompts suited to screen
readers. Both are used automatically when stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, logFile := globalFlags(cmd)
			return handlers.Run(cmd.Context(), handlers.RunOptions{
				ConfigPath:  configPath,
				LogFile:     logFile,
				PrefillPath: prefillPath,
				Prompt:      usePrompt,
				Accessible:  accessible,
			})
		},
	}

	cmd.Flags().BoolVar(&usePrompt, "prompt", false, "Use line-mode prompts instead of the full-screen UI")
	cmd.Flags().BoolVar(&accessible, "accessible", false, "Use screen-reader friendly prompts")
	cmd.Flags().StringVar(&prefillPath, "prefill", "", "YAML file with initial field values")

	return cmd
}
