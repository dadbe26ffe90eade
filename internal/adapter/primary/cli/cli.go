package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"folio/internal/adapter/primary/web"
	"folio/internal/adapter/secondary/repository"
	"folio/internal/config"
	"folio/internal/logging"
)

var (
	cfgPath   string
	verbosity int
)

// NewRootCmd creates the root CLI command.
// This is the primary adapter that translates CLI inputs to use case calls.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Personal portfolio website server",
		Long:          "Serves the portfolio site and exposes its carousel, gallery and contact engines on the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultCfg := repository.DefaultPath()
	cmd.PersistentFlags().StringVar(&cfgPath, "config", defaultCfg, "site configuration file")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv, ... up to 4)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetVerbosity(verbosity)
	}

	cmd.AddCommand(
		newServeCmd(),
		newProbeCmd(),
		newValidateCmd(),
		newContactCmd(),
		newCarouselCmd(),
		newConfigCmd(),
		newShellCmd(),
	)

	return cmd
}

func newServeCmd() *cobra.Command {
	var addr, assets string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the website",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				site.Addr = addr
			}
			if cmd.Flags().Changed("assets") {
				site.AssetsDir = assets
			}
			a, err := newApp(site)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := web.NewServer(web.Deps{
				Gallery:   a.gallery,
				Contact:   a.contact,
				Carousels: a.carousels,
				AssetsDir: site.AssetsDir,
			}, site.Addr)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			a.contact.Start(gctx)
			g.Go(func() error {
				fmt.Fprintf(cmd.OutOrStdout(), "folio running at http://%s\n", site.Addr)
				logging.Infof("serving http://%s (assets %s)", site.Addr, site.AssetsDir)
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			err = g.Wait()
			logging.Sync()
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "HTTP listen address")
	cmd.Flags().StringVar(&assets, "assets", config.DefaultAssetsDir, "directory served under /assets/")
	return cmd
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check which gallery images exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite()
			if err != nil {
				return err
			}
			a, err := newApp(site)
			if err != nil {
				return err
			}
			out := a.gallery.Load(cmd.Context())
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "status: %s\n", out.Kind)
			if out.Message != "" {
				fmt.Fprintln(w, out.Message)
			}
			for _, img := range out.Images {
				fmt.Fprintf(w, "  [%s] %s (%s)\n", img.ID, img.Source, img.Caption)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the site configuration",
	}
	cmd.AddCommand(newConfigGetCmd(), newConfigInitCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite()
			if err != nil {
				return err
			}
			data, err := repository.Marshal(site)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewFileRepository(cfgPath)
			if err != nil {
				return err
			}
			if _, err := os.Stat(repo.Path()); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", repo.Path())
			}
			if err := repo.Save(config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", repo.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newShellCmd() *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run subcommands from an interactive shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveShell(prompt)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "folio> ", "shell prompt")
	return cmd
}

func runInteractiveShell(prompt string) error {
	historyFile := filepath.Join(os.TempDir(), "folio-shell.history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	sessionVerbosity := verbosity
	fmt.Println("Interactive shell. Type 'help' for usage, 'exit' to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println()
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if !dispatchShellLine(line, &sessionVerbosity, os.Stdout) {
			return nil
		}
	}
}

// dispatchShellLine runs one shell input line. It returns false when the
// shell should exit.
func dispatchShellLine(line string, sessionVerbosity *int, out io.Writer) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	switch line {
	case "exit", "quit":
		fmt.Fprintln(out, "Bye!")
		return false
	case "help":
		printShellHelp(out)
		return true
	}
	tokens, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(out, "Parse error: %v\n", err)
		return true
	}
	if len(tokens) == 0 {
		return true
	}
	switch tokens[0] {
	case "log":
		if err := handleShellLog(tokens[1:], sessionVerbosity, out); err != nil {
			fmt.Fprintf(out, "log: %v\n", err)
		}
		return true
	case "shell":
		fmt.Fprintln(out, "Already in the shell. Enter another command or 'exit' to quit.")
		return true
	}

	verbosity = *sessionVerbosity
	if err := executeArgs(tokens, out); err != nil {
		fmt.Fprintf(out, "command error: %v\n", err)
	}
	*sessionVerbosity = verbosity
	return true
}

func executeArgs(args []string, out io.Writer) error {
	if len(args) == 0 {
		return nil
	}
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

func handleShellLog(args []string, sessionVerbosity *int, out io.Writer) error {
	fs := pflag.NewFlagSet("log", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var vcount int
	var level string
	var show bool
	fs.CountVarP(&vcount, "verbose", "v", "Increase verbosity (-v... up to 4)")
	fs.StringVar(&level, "level", "", "log level (error|warn|info|debug|trace)")
	fs.BoolVarP(&show, "show", "s", false, "print the current level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case show && vcount == 0 && level == "":
		fmt.Fprintf(out, "log level: %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
		return nil
	case level != "":
		_, count, err := logging.ParseLevel(level)
		if err != nil {
			return err
		}
		*sessionVerbosity = count
	case vcount > 0:
		*sessionVerbosity = vcount
	default:
		fmt.Fprintf(out, "log level: %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
		return nil
	}

	verbosity = *sessionVerbosity
	logging.SetVerbosity(*sessionVerbosity)
	fmt.Fprintf(out, "log level set to %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
	return nil
}

func printShellHelp(out io.Writer) {
	fmt.Fprintln(out, `Examples:
  serve --addr 0.0.0.0:8080             # start the website
  probe                                 # list gallery images that exist
  validate --full-name "Ann" --email a@b.co --message "hello there!"
  contact                               # fill in the contact form interactively
  carousel --slides 3 --interval 1s --ticks 5
  config get                            # print the configuration
  config init                           # write the default configuration
  log -vv                               # more verbose logging
  log --show                            # print the current log level
  exit / quit                           # leave the shell`)
}
