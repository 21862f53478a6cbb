package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/fenghaitao/agent-os/internal/config"
	"github.com/fenghaitao/agent-os/internal/install"
	"github.com/fenghaitao/agent-os/internal/logging"
	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/report"
	"github.com/fenghaitao/agent-os/internal/source"
	"github.com/fenghaitao/agent-os/internal/wizard"
)

var installRun = install.Run

var runWizard = func(root string, profile *install.Profile, mode source.Mode) error {
	return wizard.Run(root, wizard.NewHuhUI(), profile, mode)
}

type installOptions struct {
	all                   bool
	platforms             map[platform.ID]*bool
	overwriteInstructions bool
	overwriteStandards    bool
	overwriteConfig       bool
	branch                string
	source                string
	interactive           bool
	showDiffs             bool
}

func newInstallCmd(root *rootOptions) *cobra.Command {
	opts := &installOptions{platforms: map[platform.ID]*bool{}}
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, root, opts, args)
		},
	}

	flags := cmd.Flags()
	for _, id := range platform.All() {
		info, _ := platform.Lookup(id)
		opts.platforms[id] = flags.Bool(id.String(), false, fmt.Sprintf(messages.InstallFlagPlatformFmt, info.Name, info.Directories))
	}
	flags.BoolVar(&opts.all, "all", false, messages.InstallFlagAll)
	flags.BoolVar(&opts.overwriteInstructions, "overwrite-instructions", false, messages.InstallFlagOverwriteInstructions)
	flags.BoolVar(&opts.overwriteStandards, "overwrite-standards", false, messages.InstallFlagOverwriteStandards)
	flags.BoolVar(&opts.overwriteConfig, "overwrite-config", false, messages.InstallFlagOverwriteConfig)
	flags.StringVar(&opts.branch, "branch", "", messages.InstallFlagBranch)
	flags.StringVar(&opts.source, "source", "", messages.InstallFlagSource)
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, messages.InstallFlagInteractive)
	flags.BoolVar(&opts.showDiffs, "show-diffs", false, messages.InstallFlagShowDiffs)
	return cmd
}

func runInstall(cmd *cobra.Command, rootOpts *rootOptions, opts *installOptions, args []string) error {
	log := logging.Component("cli")
	projectDir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}
	cfg, err := rootOpts.loadConfig()
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg, opts)
	if err != nil {
		return err
	}
	reporter := report.NewTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if opts.branch != "" && provider.Mode() == source.ModeLocal {
		reporter.Warning(fmt.Sprintf(messages.InstallSourceAndBranchFmt, opts.branch))
	}

	profile := buildProfile(cmd, cfg, opts)
	if provider.Mode() == source.ModeRemote && profile.Enabled(platform.ADK) {
		reporter.Warning(messages.InstallADKRemote)
		profile.SetPlatform(platform.ADK, false)
	}
	if opts.interactive {
		if err := runWizard(projectDir, profile, provider.Mode()); err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				reporter.Println(report.RenderSummary(report.Summary{
					Root:      projectDir,
					Source:    provider.Location(),
					Mode:      provider.Mode().String(),
					Platforms: profile.EnabledPlatforms(),
					Cancelled: true,
				}))
				return &SilentExitError{Code: 1}
			}
			return err
		}
	}

	log.Info().
		Str("root", projectDir).
		Str("source", provider.Location()).
		Interface("platforms", profile.EnabledPlatforms()).
		Msg("Starting install")
	reporter.Println(fmt.Sprintf(messages.InstallStartFmt, projectDir))

	result, runErr := installRun(cmd.Context(), projectDir, install.Options{
		Profile:  profile,
		Source:   provider,
		Reporter: reporter,
		System:   install.RealSystem{},
	})

	if diffs := report.RenderDiffs(result.Diffs(), opts.showDiffs); diffs != "" {
		reporter.Println(diffs)
	}
	reporter.Println(report.RenderSummary(report.Summary{
		Root:      projectDir,
		Source:    provider.Location(),
		Mode:      provider.Mode().String(),
		Platforms: profile.EnabledPlatforms(),
		Result:    result,
		Err:       runErr,
		Cancelled: errors.Is(runErr, context.Canceled),
	}))
	if runErr != nil {
		log.Debug().Err(runErr).Msg("Install failed")
		return &SilentExitError{Code: 1}
	}
	return nil
}

// buildProfile layers built-in defaults, the config file and CLI flags.
// Platform flags replace the configured platform list rather than extending it.
func buildProfile(cmd *cobra.Command, cfg *config.Config, opts *installOptions) *install.Profile {
	profile := install.NewProfile()
	flags := cmd.Flags()

	platformFlagSet := opts.all
	for id := range opts.platforms {
		if flags.Changed(id.String()) {
			platformFlagSet = true
		}
	}
	if !platformFlagSet {
		for _, id := range cfg.Install.PlatformIDs() {
			profile.SetPlatform(id, true)
		}
	}
	if opts.all {
		profile.EnableAll()
	}
	for _, id := range platform.All() {
		if flags.Changed(id.String()) {
			profile.SetPlatform(id, *opts.platforms[id])
		}
	}

	profile.SetOverwriteFlags(
		&cfg.Install.OverwriteInstructions,
		&cfg.Install.OverwriteStandards,
		&cfg.Install.OverwriteConfig,
	)
	profile.SetOverwriteFlags(
		changedBool(cmd, "overwrite-instructions", opts.overwriteInstructions),
		changedBool(cmd, "overwrite-standards", opts.overwriteStandards),
		changedBool(cmd, "overwrite-config", opts.overwriteConfig),
	)
	return profile
}

func changedBool(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// newProvider selects local mode when --source or source.local_root is set,
// otherwise downloads from the configured remote.
func newProvider(cfg *config.Config, opts *installOptions) (source.Provider, error) {
	localRoot := opts.source
	if localRoot == "" {
		expanded, err := cfg.Source.ExpandedLocalRoot()
		if err != nil {
			return nil, err
		}
		localRoot = expanded
	}
	if localRoot != "" {
		info, err := os.Stat(localRoot)
		if err != nil {
			return nil, fmt.Errorf(messages.InstallSourceStatFmt, localRoot, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf(messages.InstallSourceNotDirFmt, localRoot)
		}
		return source.NewLocal(localRoot)
	}
	client := &http.Client{Timeout: cfg.Source.Timeout()}
	return source.NewRemote(cfg.Source.BaseURL(opts.branch), client)
}
