package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	clientapi "github.com/iudanet/versioneditor/internal/client/api"
	"github.com/iudanet/versioneditor/internal/client/iocli"
	"github.com/iudanet/versioneditor/internal/client/render"
	"github.com/iudanet/versioneditor/internal/client/storage/boltdb"
	"github.com/iudanet/versioneditor/internal/config"
)

// BuildInfo информация о сборке из ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Factory собирает Cli по конфигурации и возвращает функцию освобождения ресурсов
type Factory func(cfg *config.Client) (*Cli, func() error, error)

// DefaultFactory открывает локальный черновик и создает HTTP клиент
func DefaultFactory(cfg *config.Client) (*Cli, func() error, error) {
	local, err := boltdb.New(context.Background(), cfg.DraftPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local database: %w", err)
	}

	color := !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))

	c := New(
		iocli.NewStdio(),
		clientapi.NewClient(cfg.ServerURL, cfg.Timeout),
		local,
		render.New(color),
	)
	return c, local.Close, nil
}

type app struct {
	factory Factory
	info    BuildInfo
}

// run загружает конфигурацию, собирает Cli и выполняет fn
func (a *app) run(fn func(ctx context.Context, c *Cli, cfg *config.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadClient(cmd.Flags())
		if err != nil {
			return err
		}

		c, closeFn, err := a.factory(cfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = closeFn()
		}()

		return fn(cmd.Context(), c, cfg, args)
	}
}

// NewRootCmd создает дерево команд клиента
func NewRootCmd(info BuildInfo, factory Factory) *cobra.Command {
	a := &app{factory: factory, info: info}

	root := &cobra.Command{
		Use:   "versioneditor",
		Short: "Client for the word-diff version history server",
		Long: `versioneditor saves text snapshots to the version server and shows
which words were added or removed between consecutive versions.

A local draft lets you restore an old version, edit it, and save it again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.ClientFlags(root.PersistentFlags())

	root.AddCommand(
		a.newSaveCmd(),
		a.newListCmd(),
		a.newViewCmd(),
		a.newCopyCmd(),
		a.newRestoreCmd(),
		a.newDeleteCmd(),
		a.newDraftCmd(),
		a.newStatusCmd(),
		a.newVersionCmd(),
	)

	return root
}

func (a *app) newSaveCmd() *cobra.Command {
	var (
		file      string
		fromDraft bool
	)

	cmd := &cobra.Command{
		Use:   "save [text...]",
		Short: "Save text as a new version",
		Example: `  versioneditor save "the quick brown fox"
  versioneditor save --file notes.txt
  cat notes.txt | versioneditor save
  versioneditor save --draft`,
		RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, args []string) error {
			return c.runSave(ctx, textSource{args: args, file: file}, fromDraft)
		}),
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `read text from file ("-" for stdin)`)
	cmd.Flags().BoolVar(&fromDraft, "draft", false, "save the local draft")
	cmd.MarkFlagsMutuallyExclusive("file", "draft")

	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List versions, newest first",
		Args:    cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, _ []string) error {
			return c.runList(ctx, output)
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", render.FormatTable, "output format: table, json, yaml")

	return cmd
}

func (a *app) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show a version with added and removed words highlighted",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, args []string) error {
			return c.runView(ctx, args[0])
		}),
	}
}

func (a *app) newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Print the raw text of a version",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, args []string) error {
			return c.runCopy(ctx, args[0])
		}),
	}
}

func (a *app) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Copy the text of a version into the local draft",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, args []string) error {
			return c.runRestore(ctx, args[0])
		}),
	}
}

func (a *app) newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a version",
		Args:    cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, args []string) error {
			return c.runDelete(ctx, args[0], yes)
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without confirmation")

	return cmd
}

func (a *app) newDraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage the local draft",
	}

	var file string
	set := &cobra.Command{
		Use:   "set [text...]",
		Short: "Replace the draft text",
		RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, args []string) error {
			return c.runDraftSet(ctx, textSource{args: args, file: file})
		}),
	}
	set.Flags().StringVarP(&file, "file", "f", "", `read text from file ("-" for stdin)`)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the draft text",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, _ []string) error {
				return c.runDraftShow(ctx)
			}),
		},
		set,
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the draft",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ *config.Client, _ []string) error {
				return c.runDraftClear(ctx)
			}),
		},
	)

	return cmd
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server availability, last save and draft state",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *Cli, cfg *config.Client, _ []string) error {
			return c.runStatus(ctx, cfg.ServerURL)
		}),
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Versioneditor Client\n")
			fmt.Fprintf(out, "Version:    %s\n", a.info.Version)
			fmt.Fprintf(out, "Build Date: %s\n", a.info.BuildDate)
			fmt.Fprintf(out, "Git Commit: %s\n", a.info.GitCommit)
		},
	}
}
