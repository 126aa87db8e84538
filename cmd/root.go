// Package cmd wires the netui CLI: flag parsing, lifecycle, and the glue
// that turns engine events into terminal output. The interactive table
// renderer this engine is designed to drive is out of scope here; this
// command prints a scrolling summary instead.
package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yousfiSaad/netui/cmderr"
	"github.com/yousfiSaad/netui/printer"
	"github.com/yousfiSaad/netui/stats"
	"github.com/yousfiSaad/netui/util"
	"github.com/yousfiSaad/netui/version"
)

var (
	interfaceFlag string
	debugFlag     bool
	windowFlag    int
)

var rootCmd = &cobra.Command{
	Use:           "netui",
	Short:         "Interactive LAN scanner and passive traffic observer.",
	Long:          "netui discovers reachable hosts on the interface's attached subnets and reports live per-host and per-connection throughput.",
	Version:       version.DisplayString(),
	SilenceErrors: true, // we print our own errors below
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if interfaceFlag == "" {
			return errors.New("--interface is required")
		}
		return run(interfaceFlag, windowFlag)
	},
}

// Execute runs the root command and translates its error, if any, into a
// process exit code.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if _, isNetuiErr := err.(cmderr.NetuiErr); !isNetuiErr {
			cmd.Println(cmd.UsageString())
		}

		exitCode := 1
		var exitErr util.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode
		}
		printer.Errorf("%s\n", err)
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.Flags().StringVar(&interfaceFlag, "interface", "", "Substring matching the network interface to scan (required).")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Outputs detailed information for debugging.")
	viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))

	rootCmd.Flags().IntVar(&windowFlag, "window", stats.DefaultWindowSize, "Sliding window length, in ticks, for throughput averaging.")

	rootCmd.MarkFlagRequired("interface")
}
