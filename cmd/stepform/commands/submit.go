package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stepform/cmd/stepform/handlers"
)

// Submit returns the command that submits a profile from a file.
//
// Flags:
//
//	--file, -f: YAML answers file (required)
//	--dry-run:  Validate and print the review without submitting
func Submit() *cobra.Command {
	var (
		answersPath string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a profile from an answers file",
		Long: `Submit a profile from a YAML answers file without prompting.

The answers go through the same steps as an interactive session: each
step must be complete before the next, and the record is delivered to
the configured sinks only from the review step.

Example answers file:

  firstName: Ada
  lastName: Lovelace
  email: ada@example.com
  occupation: Engineer
  city: London
  bio: Wrote the first program.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, logFile := globalFlags(cmd)
			return handlers.Submit(cmd.Context(), handlers.SubmitOptions{
				ConfigPath:  configPath,
				AnswersPath: answersPath,
				LogFile:     logFile,
				DryRun:      dryRun,
			})
		},
	}

	cmd.Flags().StringVarP(&answersPath, "file", "f", "", "YAML answers file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and print the review without submitting")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
