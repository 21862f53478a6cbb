package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/report"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InfoUse,
		Short: messages.InfoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := make([]platform.Info, 0, len(platform.All()))
			for _, id := range platform.All() {
				info, _ := platform.Lookup(id)
				infos = append(infos, info)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), report.RenderPlatformTable(infos))
			return err
		},
	}
}
