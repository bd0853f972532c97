package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time:
// go build -ldflags "-X deliverytracker/cmd.Version=v1.0.0"
var Version = "dev"

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfg Config

	run := func(cmd *cobra.Command, _ []string) error {
		root, err := NewCompositionRoot(cfg, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("init composition root: %w", err)
		}
		return RunDemo(root, cmd.OutOrStdout(), time.Now())
	}

	rootCmd := &cobra.Command{
		Use:           "deliverytracker",
		Short:         "Delivery tracking demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loaded, err := LoadConfig(v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			return nil
		},
		RunE: run,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the delivery tracking scenario",
		RunE:  run,
	}

	versionCmd := &cobra.Command{
		Use:               "version",
		Short:             "Print the version of deliverytracker",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug/info/warn/error)")
	flags.String("timezone", "UTC", "Time zone delivery slots are computed in")
	flags.String("delivery-slot", "0 10 * * *", "Cron expression of delivery slots")
	flags.Bool("metrics", false, "Record Prometheus metrics and print a summary")

	for key, flag := range map[string]string{
		"log_level":       "log-level",
		"timezone":        "timezone",
		"delivery_slot":   "delivery-slot",
		"metrics_enabled": "metrics",
	} {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}

	rootCmd.AddCommand(demoCmd, versionCmd)

	return rootCmd
}
