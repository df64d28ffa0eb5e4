package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LiboWorks/dev-cheat/internal/logging"
	"github.com/LiboWorks/dev-cheat/pkg/devcheat"
)

var verbose bool

// rootCmd routes `dev <command> [args...]`. Everything after the command
// word is passed through to the dispatcher untouched.
var rootCmd = &cobra.Command{
	Use:   "dev <command> [args...]",
	Short: "Config-driven development assistant",
	Long: `dev routes a single command against the project's declarative
configuration: quick commands run shell actions directly, AI commands and
workflows are turned into prompts for a remote language model, and anything
else is sent for free-form interpretation.

The configuration is the first existing file among .dev-cheat.yaml,
.dev-cheat.yml, dev-commands.yaml, dev-commands.yml in the current
directory.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.ParseLevel(os.Getenv("DEVCHEAT_LOG"))
		if verbose || os.Getenv("DEVCHEAT_DEBUG") != "" {
			level = logging.DebugLevel
		}
		logging.Init(logging.Config{Level: level})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printHelp(cmd)
			return nil
		}
		return devcheat.Run(cmd.Context(), args[0], args[1:], nil)
	},
}

func init() {
	rootCmd.Version = devcheat.Version
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug diagnostics on stderr")
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelp(cmd)
	})
}

// printHelp renders the configuration-driven overview. When no configuration
// can be loaded this still succeeds: the user gets a remediation hint, not a
// failure.
func printHelp(cmd *cobra.Command) {
	text, err := devcheat.HelpText(nil)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "❌ Error: %v\n\nCreate a .dev-cheat.yaml file to get started!\n", err)
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
}
