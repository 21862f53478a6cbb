package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fenghaitao/agent-os/internal/config"
	"github.com/fenghaitao/agent-os/internal/logging"
	"github.com/fenghaitao/agent-os/internal/messages"
)

type rootOptions struct {
	verbose    int
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(opts.verbose, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolP("version", "", false, messages.RootVersionFlag)
	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", messages.RootVerboseFlag)
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", messages.RootConfigFlag)

	cmd.AddCommand(
		newInstallCmd(opts),
		newInfoCmd(),
		newStatusCmd(),
	)
	return cmd
}

// loadConfig reads the --config file, or the default config file when it exists.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath())
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigLoadFailedFmt, err)
	}
	return cfg, nil
}
