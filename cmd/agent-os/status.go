package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/report"
	"github.com/fenghaitao/agent-os/internal/status"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectDir(args)
			if err != nil {
				return err
			}
			entries, err := status.Check(root)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), report.RenderStatusTable(root, entries))
			return err
		},
	}
}

// resolveProjectDir returns the absolute project directory from the optional positional arg.
func resolveProjectDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf(messages.InstallResolveRootFmt, dir, err)
	}
	return abs, nil
}
