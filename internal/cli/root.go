// Package cli implements the menagerie command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/menagerie/internal/config"
	"github.com/mesh-intelligence/menagerie/internal/locale"
	"github.com/mesh-intelligence/menagerie/internal/paths"
	"github.com/mesh-intelligence/menagerie/internal/selftest"
	"github.com/mesh-intelligence/menagerie/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	locale    string
	jsonMode  bool
	verbose   bool
}

// env is the state shared by the commands of one root command: the parsed
// global flags and what PersistentPreRunE derives from them.
type env struct {
	flags      rootFlags
	configDir  string
	cfg        types.Config
	phrasebook types.Phrasebook
	logger     *zap.Logger

	// examples supplies the self-test examples for a phrasebook.
	examples func(types.Phrasebook) []selftest.Example
}

// systemError marks failures of the environment (file system, config
// parsing) as opposed to bad input.
type systemError struct{ err error }

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

func sysErr(err error) error { return systemError{err: err} }

// NewRootCmd creates the top-level "menagerie" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd(nil)
	return root
}

// newRootCmd builds the command tree and returns it with the env its
// commands share. A non-nil logger is used as-is instead of one built from
// the loaded configuration.
func newRootCmd(logger *zap.Logger) (*cobra.Command, *env) {
	e := &env{logger: logger, examples: selftest.Examples}

	root := &cobra.Command{
		Use:   "menagerie",
		Short: "Books, trees, and social media profiles behind abstract interfaces",
		Long: "Menagerie models three unrelated entity families, each as an interface\n" +
			"with one concrete variant. Run without a subcommand to execute the\n" +
			"documented examples.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runSelfTest(cmd.OutOrStdout())
		},
	}

	// Global persistent flags.
	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/menagerie)")
	root.PersistentFlags().StringVar(&e.flags.locale, config.KeyLocale, "", "output language as a BCP 47 tag ("+strings.Join(locale.Supported(), ", ")+")")
	root.PersistentFlags().BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&e.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newSelfTestCmd(e))
	root.AddCommand(newBookCmd(e))
	root.AddCommand(newTreeCmd(e))
	root.AddCommand(newProfileCmd(e))

	return root, e
}

// setup resolves the configuration directory, loads the configuration,
// picks the phrasebook, and builds the logger.
func (e *env) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	e.configDir = dir

	cfg, err := config.Load(dir, cmd.Flags())
	if err != nil {
		if isUserError(err) {
			return err
		}
		return sysErr(fmt.Errorf("load config: %w", err))
	}
	e.cfg = cfg

	pb, err := locale.Resolve(cfg.Locale)
	if err != nil {
		return err
	}
	e.phrasebook = pb

	if e.logger == nil {
		level := cfg.LogLevel
		if e.flags.verbose {
			level = "debug"
		}
		logger, err := newLogger(level)
		if err != nil {
			return sysErr(fmt.Errorf("initialize logger: %w", err))
		}
		e.logger = logger
	}

	e.logger.Debug("configuration loaded",
		zap.String("config_dir", dir),
		zap.String("locale", cfg.Locale),
		zap.String("phrasebook", pb.Name))
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root, e := newRootCmd(nil)
	os.Exit(run(root, e, os.Args[1:], os.Stderr))
}

// run executes root with args and returns the process exit code. Errors
// are printed to stderr. The logger is flushed whether or not the command
// failed.
func run(root *cobra.Command, e *env, args []string, stderr io.Writer) int {
	defer e.syncLogger()

	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "menagerie:", err)
	return exitCode(err)
}

func (e *env) syncLogger() {
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

// exitCode maps an error to its exit code: system errors exit 2, every
// other failure (bad flags, invalid arguments, failed examples) exits 1.
func exitCode(err error) int {
	var se systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// isUserError reports whether err stems from user-supplied values.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrInvalidArgument) ||
		errors.Is(err, types.ErrLocaleEmpty) ||
		errors.Is(err, types.ErrLocaleUnknown) ||
		errors.Is(err, types.ErrLogLevelUnknown)
}
