package main

import (
	"fmt"
	"os"

	"github.com/hyprkit/hyprkit/internal/cli"
	"github.com/hyprkit/hyprkit/pkg/help"
	"github.com/hyprkit/hyprkit/pkg/provision"
	"github.com/hyprkit/hyprkit/pkg/report"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// runOptions reads the persistent flags shared by every command.
func runOptions(cmd *cobra.Command) (provision.Options, string) {
	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	repoRoot, _ := cmd.Root().PersistentFlags().GetString("repo")
	return provision.Options{DryRun: dryRun}, repoRoot
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, repoRoot := runOptions(cmd)
			opts.SkipExternal, _ = cmd.Flags().GetBool("no-external")

			rt, err := cli.NewRuntime(repoRoot)
			if err != nil {
				return fmt.Errorf(MsgErrRuntime, err)
			}

			log.Info().
				Str("repo", rt.Paths.RepoRoot()).
				Bool("dry_run", opts.DryRun).
				Msg("Installing")

			result, err := rt.Provisioner.Install(opts)
			if err != nil {
				return fmt.Errorf(MsgErrInstall, err)
			}

			if opts.DryRun {
				fmt.Println(MsgDryRunNotice)
			}
			fmt.Println(report.New().RenderInstall(result))
			return nil
		},
	}

	cmd.Flags().Bool("no-external", false, MsgFlagNoExternal)
	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
		Example: MsgUninstallExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, repoRoot := runOptions(cmd)

			rt, err := cli.NewRuntime(repoRoot)
			if err != nil {
				return fmt.Errorf(MsgErrRuntime, err)
			}

			log.Info().
				Str("repo", rt.Paths.RepoRoot()).
				Bool("dry_run", opts.DryRun).
				Msg("Uninstalling")

			result, err := rt.Provisioner.Uninstall(opts)
			if err != nil {
				return fmt.Errorf(MsgErrUninstall, err)
			}

			if opts.DryRun {
				fmt.Println(MsgDryRunNotice)
			}
			fmt.Println(report.New().RenderUninstall(result))
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repoRoot := runOptions(cmd)

			rt, err := cli.NewRuntime(repoRoot)
			if err != nil {
				return fmt.Errorf(MsgErrRuntime, err)
			}

			status, err := rt.Provisioner.Status()
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			fmt.Println(report.New().RenderStatus(status))
			return nil
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "topics [topic]",
		Short:     MsgTopicsShort,
		Long:      MsgTopicsLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics, err := help.Topics()
				if err != nil {
					return err
				}
				fmt.Println("Available topics:")
				for _, topic := range topics {
					fmt.Printf("  %s\n", topic.Name)
				}
				fmt.Println("\nUse 'hyprkit topics <name>' to read one.")
				return nil
			}

			topic, err := help.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Print(topicRenderer().Render(topic.Content))
			return nil
		},
	}
}

func topicNames() []string {
	topics, err := help.Topics()
	if err != nil {
		return nil
	}
	names := make([]string, len(topics))
	for i, topic := range topics {
		names[i] = topic.Name
	}
	return names
}

func topicRenderer() help.Renderer {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return help.GlamourRenderer{}
	}
	return help.PlainRenderer{}
}
