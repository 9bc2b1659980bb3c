package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"memo-manager/config"
	_ "memo-manager/docs" // Swagger docs
	"memo-manager/internal/app"
	"memo-manager/internal/httpserver"
	"memo-manager/internal/memo"
	memoCLI "memo-manager/internal/memo/delivery/cli"
	memoUC "memo-manager/internal/memo/usecase"
	"memo-manager/pkg/log"
)

type runtime struct {
	cfg    *config.Config
	logger log.Logger
	deps   *app.Deps
}

func main() {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:           "memo",
		Short:         "Memo client with a local fallback when the remote API is down",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.open()
		},
	}

	rootCmd.AddCommand(listCmd(rt))
	rootCmd.AddCommand(addCmd(rt))
	rootCmd.AddCommand(editCmd(rt))
	rootCmd.AddCommand(rmCmd(rt))
	rootCmd.AddCommand(serveCmd(rt))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if cerr := rt.close(); cerr != nil {
		fmt.Fprintln(os.Stderr, "Error closing fallback storage:", cerr)
	}
	if err != nil && !memoCLI.IsDeclined(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func (rt *runtime) open() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.logger = app.NewLogger(cfg.Logger)

	deps, err := app.Build(cfg, rt.logger)
	if err != nil {
		return err
	}
	rt.deps = deps
	return nil
}

func (rt *runtime) close() error {
	if rt.deps == nil {
		return nil
	}
	return rt.deps.Close()
}

func (rt *runtime) handler(cmd *cobra.Command, assumeYes bool) (*memoCLI.Handler, error) {
	return memoCLI.New(rt.logger, func(v memo.View) memo.UseCase {
		return memoUC.New(rt.deps.Remote, rt.deps.Fallback, v, rt.logger)
	}, memoCLI.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		AssumeYes: assumeYes,
	})
}

// operationContext drops cancellation so an issued remote call is never cut short.
func operationContext(cmd *cobra.Command) context.Context {
	return context.WithoutCancel(cmd.Context())
}

func listCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List memos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := rt.handler(cmd, false)
			if err != nil {
				return err
			}
			return h.List(operationContext(cmd))
		},
	}
}

func addCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <content...>",
		Short: "Add a new memo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := rt.handler(cmd, false)
			if err != nil {
				return err
			}
			return h.Add(operationContext(cmd), args[0], strings.Join(args[1:], " "))
		},
	}
}

func editCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title> <content...>",
		Short: "Replace a memo's title and content",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := rt.handler(cmd, false)
			if err != nil {
				return err
			}
			return h.Edit(operationContext(cmd), args[0], args[1], strings.Join(args[2:], " "))
		},
	}
}

func rmCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := rt.handler(cmd, yes)
			if err != nil {
				return err
			}
			return h.Remove(operationContext(cmd), args[0])
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

func serveCmd(rt *runtime) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the memo page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				rt.cfg.HTTPServer.Port = port
			}

			srv, err := httpserver.New(rt.logger, httpserver.Config{
				Logger:         rt.logger,
				Port:           rt.cfg.HTTPServer.Port,
				Mode:           rt.cfg.HTTPServer.Mode,
				Environment:    rt.cfg.Environment.Name,
				AllowedOrigins: rt.cfg.CORS.AllowedOrigins,
				Gatherer:       rt.deps.Registry,
				Remote:         rt.deps.Remote,
				Fallback:       rt.deps.Fallback,
				SessionSize:    rt.cfg.Session.CacheSize,
			})
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}
