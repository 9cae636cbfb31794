package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"conduit-cli/internal/config"
	"conduit-cli/internal/logging"
)

var verbose bool

func newLogger() (logging.Logger, func()) {
	if !verbose {
		return logging.NewDiscardLogger(), func() {}
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logging.NewZapLogger(zl), func() { _ = zl.Sync() }
}

// withApp builds the App for one invocation and tears it down afterwards.
func withApp(fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, flush := newLogger()
		defer flush()

		app, err := NewApp(config.LoadConfig(), log)
		if err != nil {
			return err
		}
		defer app.Close()

		return fn(cmd.Context(), app, args)
	}
}

// newCommand applies shared settings: config flags (-a, -d, -t, -c) are
// parsed by the config package from the raw argument list, so cobra must
// tolerate them as unknown.
func newCommand(use, short string, args cobra.PositionalArgs, fn func(ctx context.Context, a *App, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Args:               args,
		RunE:               withApp(fn),
		SilenceUsage:       true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "conduit",
		Short: "conduit - a terminal client for the Conduit blogging platform",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log operations as they run")

	root.AddCommand(
		newCommand("register", "Create an account and sign in", cobra.NoArgs,
			func(ctx context.Context, a *App, _ []string) error { return a.Register(ctx) }),
		newCommand("login", "Sign in", cobra.NoArgs,
			func(ctx context.Context, a *App, _ []string) error { return a.Login(ctx) }),
		newCommand("logout", "Sign out", cobra.NoArgs,
			func(ctx context.Context, a *App, _ []string) error { return a.Logout(ctx) }),
		newCommand("whoami", "Show the signed-in user", cobra.NoArgs,
			func(ctx context.Context, a *App, _ []string) error { return a.WhoAmI(ctx) }),
		newCommand("articles [page]", "List a page of the article feed", cobra.MaximumNArgs(1),
			func(ctx context.Context, a *App, args []string) error {
				page := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n < 1 {
						return fmt.Errorf("page must be a positive number, got %q", args[0])
					}
					page = n
				}
				return a.List(ctx, page)
			}),
		newCommand("read <slug>", "Read one article", cobra.ExactArgs(1),
			func(ctx context.Context, a *App, args []string) error { return a.Read(ctx, args[0]) }),
		newCommand("publish", "Write and publish a new article", cobra.NoArgs,
			func(ctx context.Context, a *App, _ []string) error { return a.Publish(ctx) }),
		newCommand("edit <slug>", "Edit one of your articles", cobra.ExactArgs(1),
			func(ctx context.Context, a *App, args []string) error { return a.Edit(ctx, args[0]) }),
		newCommand("delete <slug>", "Delete one of your articles", cobra.ExactArgs(1),
			func(ctx context.Context, a *App, args []string) error { return a.Delete(ctx, args[0]) }),
		newCommand("fav <slug>", "Toggle your favorite mark on an article", cobra.ExactArgs(1),
			func(ctx context.Context, a *App, args []string) error { return a.Favorite(ctx, args[0]) }),
	)
	return root
}

// Execute runs the CLI.
func Execute() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
