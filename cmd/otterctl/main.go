// Command otterctl is a small inspection CLI for otterspan trace archives.
// It is a consumer of the public trace package only, the same way an
// instrumented program would be.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otterspan/otterspan/trace"
)

var rootCmd = &cobra.Command{
	Use:   "otterctl",
	Short: "Inspect otterspan trace archives",
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive>",
	Short: "Print summary statistics for a trace archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := trace.Inspect(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("resources: %d\n", summary.ResourceCount)
		fmt.Printf("spans:     %d\n", summary.SpanCount)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the otterspan module version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(trace.Version())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "otterctl: %v\n", err)
		os.Exit(1)
	}
}
