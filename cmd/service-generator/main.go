// Command service-generator runs the service file registration daemon.
//
//	service-generator server [config.yml]   start the HTTP server
//	service-generator check [config.yml]    validate configuration and exit
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/service-generator/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          config.ServiceName,
		Short:        "Registers service files and issues increasing ids",
		SilenceUsage: true,
	}

	root.AddCommand(newServerCommand(), newCheckCommand())

	return root
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [config-file]",
		Short: "Load and validate the configuration, then exit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath(args))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK: %s %s (env=%s, port=%s)\n",
				cfg.Daemon.Name, cfg.Daemon.Version, cfg.Primary.Env, cfg.Server.Port)
			return nil
		},
	}
}

// configPath returns the optional config file argument.
func configPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
