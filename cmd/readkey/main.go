package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/souhoc/readkey"
	"github.com/souhoc/readkey/term"
	"github.com/souhoc/readkey/util"
)

var (
	configPath string
	fdFlag     int
	quitFlag   string
	fullFlag   bool
	countFlag  int

	logFile *os.File
)

func main() {
	err := rootCmd().Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// openLog sends slog output to a log file named after the command being run.
func openLog(cmd *cobra.Command, _ []string) error {
	f, err := util.GetLogfile(cmd.CommandPath())
	if err != nil {
		return fmt.Errorf("failed to get logfile: %w", err)
	}
	logFile = f
	slog.SetDefault(slog.New(util.NewLogger(logFile, slog.LevelInfo)))
	return nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "readkey",
		Short:             "Print the byte of every key pressed, unbuffered and unechoed",
		SilenceUsage:      true,
		PersistentPreRunE: openLog,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !term.IsTerminal(cfg.Fd) {
				return fmt.Errorf("fd %d: %w", cfg.Fd, term.ErrNotTerminal)
			}

			h := &Handler{ctl: term.New(nil), cfg: cfg, out: cmd.OutOrStdout()}
			var stop func()
			defer func() {
				if stop != nil {
					stop()
				}
			}()

			return h.Run(func(restore func() error) {
				stop = handleSignals(restore)
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (yaml or toml). Defaults to readkey.yaml, readkey.toml, then the user config dir.")
	cmd.Flags().IntVar(&fdFlag, "fd", 0, "Descriptor to read keys from")
	cmd.Flags().StringVarP(&quitFlag, "quit", "q", "q", "Key that ends the program")
	cmd.Flags().BoolVar(&fullFlag, "full", false, "Use full raw mode (signal keys and output processing off)")
	cmd.Flags().IntVarP(&countFlag, "count", "n", 0, "Stop after this many keys (0 for no limit)")

	cmd.AddCommand(rawCmd(), cookedCmd(), statusCmd())
	return cmd
}

func rawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "raw",
		Short: "Turn off echo and canonical input on standard output's terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := term.EnterRawMode(); err != nil {
				return err
			}
			slog.Info("raw mode on", slog.Int("fd", int(os.Stdout.Fd())))
			return nil
		},
	}
}

func cookedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "cooked",
		Aliases: []string{"sane"},
		Short:   "Turn echo and canonical input back on for standard output's terminal",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := term.LeaveRawMode(); err != nil {
				return err
			}
			slog.Info("raw mode off", slog.Int("fd", int(os.Stdout.Fd())))
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print whether standard output's terminal is raw or cooked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := term.New(nil).IsRaw(int(os.Stdout.Fd()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), modeName(raw))
			return nil
		},
	}
}

// loadConfig reads the config file and lets explicitly set flags override it.
func loadConfig(cmd *cobra.Command) (readkey.Config, error) {
	cfg, err := readkey.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fd") {
		cfg.Fd = fdFlag
	}
	if flags.Changed("quit") {
		cfg.QuitKey = quitFlag
	}
	if flags.Changed("full") {
		cfg.FullRaw = fullFlag
	}
	if flags.Changed("count") {
		cfg.Count = countFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	level, _ := cfg.Level()
	if logger, ok := slog.Default().Handler().(*util.LoggerHandler); ok {
		logger.SetLevel(level)
	}
	slog.Debug("config", slog.String("path", cfg.Path()), slog.Any("config", cfg))

	return cfg, nil
}

// handleSignals restores the terminal before exiting on SIGINT or SIGTERM.
// Ctrl+C still raises SIGINT unless full raw mode is on.
func handleSignals(restore func() error) func() {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case s := <-sigChan:
			slog.Info("terminated by signal", slog.String("signal", s.String()))
			if err := restore(); err != nil {
				slog.Error("restore", slog.Any("error", err))
			}
			fmt.Fprintln(os.Stderr)
			os.Exit(130)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
