// Package cmd provides the root command and CLI setup for mutafinder.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"mutafinder.dev/pkg/mutafinder/internal/adapter"
	"mutafinder.dev/pkg/mutafinder/internal/controller"
	"mutafinder.dev/pkg/mutafinder/internal/domain"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

var fsAdapter adapter.SequenceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// Root-level flags; the values are read back through viper so config and env
// can supply them too.
var (
	outputDirFlag string
	baseFlag      string
	rootFlag      string
	formatFlag    string
	authorFlag    string
	logFileFlag   string
	verboseFlag   bool
)

func init() {
	configureRootFlags(rootCmd)

	// config.go's init has already loaded defaults, the config file and env.
	mode, err := controller.ParseMode(viper.GetString(uiModeKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mutafinder: %v, using %s\n", err, controller.ModeAuto)
		mode = controller.ModeAuto
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, mode, controller.IsTTY(os.Stdin, os.Stdout))
	fsAdapter = adapter.NewLocalSequenceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const pathsHelp = `Relative paths are resolved against the working directory (--base cwd),
the project root holding mutafinder.yaml or go.mod (--base project), or
rejected (--base absolute). Use "-" to read a sequence from standard input.
Gzip compressed FASTA files are read transparently.`

const rootLongDescription = `mutafinder compares two DNA sequences read from FASTA files position by
position and reports every point mutation (substitution) between them.

Without a subcommand it starts an interactive menu to load both sequences,
compare them, show the mutations and export a text report or a table.

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutafinder",
		Short: "Point mutation finder for FASTA sequences",
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, export, err := sessionConfig()
			if err != nil {
				return err
			}

			return workflow.Interactive(cmd.Context(), domain.InteractiveArgs{
				Paths:  paths,
				Export: export,
			})
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputDirFlag, outputFlagName, "o", defaultOutputDir, "directory the report and table exports are written to")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputConfigKey)

	flags.StringVar(&baseFlag, baseFlagName, defaultPathsBase, "how relative paths are resolved: cwd, project or absolute")
	bindFlagToConfig(flags.Lookup(baseFlagName), pathsBaseKey)

	flags.StringVar(&rootFlag, rootFlagName, "", "project root for --base project (detected when empty)")
	bindFlagToConfig(flags.Lookup(rootFlagName), pathsRootKey)

	flags.StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "table format: csv, tsv or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), exportFormatKey)

	flags.StringVar(&authorFlag, authorFlagName, defaultAuthor, "author named in the text report")
	bindFlagToConfig(flags.Lookup(authorFlagName), reportAuthorKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// sessionConfig reads the path and export settings shared by all commands.
func sessionConfig() (domain.PathArgs, domain.ExportOptions, error) {
	base, err := m.ParsePathBase(viper.GetString(pathsBaseKey))
	if err != nil {
		return domain.PathArgs{}, domain.ExportOptions{}, err
	}

	format, err := m.ParseTableFormat(viper.GetString(exportFormatKey))
	if err != nil {
		return domain.PathArgs{}, domain.ExportOptions{}, err
	}

	paths := domain.PathArgs{
		Base: base,
		Root: m.Path(viper.GetString(pathsRootKey)),
	}

	export := domain.ExportOptions{
		Output:     m.Path(viper.GetString(outputConfigKey)),
		ReportName: viper.GetString(exportReportKey),
		TableName:  viper.GetString(exportTableKey),
		Format:     format,
		Author:     viper.GetString(reportAuthorKey),
	}

	return paths, export, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
