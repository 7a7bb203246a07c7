package retitle

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/retitle/internal/version"
	"github.com/arthur-debert/retitle/pkg/cobrax/topics"
	"github.com/arthur-debert/retitle/pkg/commands"
	"github.com/arthur-debert/retitle/pkg/config"
	"github.com/arthur-debert/retitle/pkg/dirlock"
	"github.com/arthur-debert/retitle/pkg/editor"
	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/filesystem"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/arthur-debert/retitle/pkg/output"
	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	dryRun     bool
	dir        string
	configFile string
	noColor    bool
}

// modeOptions holds the mutually exclusive mode flags of the root command
type modeOptions struct {
	stdout bool
	export string
	stdin  bool
	resume string
}

// mode returns the selected mode and the file it names, if any
func (m modeOptions) mode() (commands.Mode, string) {
	switch {
	case m.stdout:
		return commands.ModeStdout, ""
	case m.export != "":
		return commands.ModeExport, m.export
	case m.stdin:
		return commands.ModeStdin, ""
	case m.resume != "":
		return commands.ModeResume, m.resume
	default:
		return commands.ModeEdit, ""
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		global globalOptions
		modes  modeOptions
	)

	rootCmd := &cobra.Command{
		Use:     "retitle",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.noColor {
				logging.SetupLoggerNoColor(global.verbosity)
			} else {
				logging.SetupLogger(global.verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnexpectedArgs, strings.Join(args, " "))
			}
			return runRename(cmd, global, modes)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&global.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&global.dir, "dir", "C", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&global.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&global.noColor, "no-color", false, MsgFlagNoColor)

	// Mode flags
	rootCmd.Flags().BoolVarP(&modes.stdout, "stdout", "o", false, MsgFlagStdout)
	rootCmd.Flags().StringVarP(&modes.export, "export", "e", "", MsgFlagExport)
	rootCmd.Flags().BoolVarP(&modes.stdin, "stdin", "i", false, MsgFlagStdin)
	rootCmd.Flags().StringVarP(&modes.resume, "resume", "r", "", MsgFlagResume)
	rootCmd.MarkFlagsMutuallyExclusive("stdout", "export", "stdin", "resume")
	_ = rootCmd.MarkFlagFilename("export")
	_ = rootCmd.MarkFlagFilename("resume")
	_ = rootCmd.MarkPersistentFlagDirname("dir")
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(&global))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help system backed by the embedded topics directory
	if _, err := topics.InitializeWithOptions(rootCmd, topicSource(), topics.Options{
		Renderer: topicRenderer{noColor: &global.noColor},
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig layers flag overrides on top of file and environment settings
func loadConfig(cmd *cobra.Command, global globalOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("dir") {
		overrides["dir"] = global.dir
	}
	if global.noColor {
		overrides["output.color"] = string(output.ColorNever)
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: global.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// runRename runs the selected mode against the configured directory
func runRename(cmd *cobra.Command, global globalOptions, modes modeOptions) error {
	logger := logging.GetLogger("cmd.retitle")

	cfg, err := loadConfig(cmd, global)
	if err != nil {
		return err
	}

	mode, path := modes.mode()
	logger.Info().
		Str("mode", string(mode)).
		Str("dir", cfg.Dir).
		Bool("dryRun", global.dryRun).
		Msg("Starting retitle")

	workFS := filesystem.NewOSAt(cfg.Dir)
	reporter := output.NewReporter(cmd.OutOrStdout(), cfg.ColorMode())

	opts := commands.DispatchOptions{
		// Export and resume paths are relative to the process, not --dir
		FileSystem: filesystem.NewOS(),
		Export: commands.ExportOptions{
			FS:      workFS,
			Listing: cfg.ListingOptions(),
		},
		Apply: commands.ApplyOptions{
			FS:       workFS,
			Reporter: reporter,
			DryRun:   global.dryRun,
		},
		Path:   path,
		Stdout: cmd.OutOrStdout(),
		Stdin:  cmd.InOrStdin(),
	}
	if mode == commands.ModeEdit {
		opts.Editor = editor.New(cfg.Editor.Command, cfg.Editor.Suffix)
	}

	if renames(mode) && !global.dryRun {
		lock, err := dirlock.Acquire(cfg.Dir)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn().Err(err).Msg("Failed to release directory lock")
			}
		}()
	}

	result, err := commands.Dispatch(cmd.Context(), mode, opts)
	if err != nil {
		return err
	}

	if mode == commands.ModeExport {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgExported, path)
	}

	if result != nil && result.Outcome == types.OutcomeRolledBack {
		logger.Warn().
			Err(result.Failure.Err).
			Int("rolledBack", len(result.RolledBack)).
			Msg("Renames were rolled back")
	}

	return nil
}

// renames reports whether mode may change the working directory
func renames(mode commands.Mode) bool {
	return mode == commands.ModeEdit || mode == commands.ModeStdin || mode == commands.ModeResume
}

// ExitCode maps an error returned by the root command to a process exit
// status: 2 when a rollback was abandoned midway, 1 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsErrorCode(err, errors.ErrRollback):
		return 2
	default:
		return 1
	}
}
