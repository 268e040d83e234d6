// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the stepform CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stepform",
		Short:         "Collect a professional profile with a three-step wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default ./stepform.yaml)")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(Run())
	cmd.AddCommand(Submit())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// globalFlags reads the persistent flags shared by every command.
func globalFlags(cmd *cobra.Command) (configPath, logFile string) {
	configPath, _ = cmd.Flags().GetString("config")
	logFile, _ = cmd.Flags().GetString("log-file")
	return configPath, logFile
}
