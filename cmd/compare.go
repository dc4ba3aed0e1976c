package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"mutafinder.dev/pkg/mutafinder/internal/domain"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

var compareReportFlag bool
var compareTableFlag bool
var compareDiffFlag bool
var compareWidthFlag int

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare REFERENCE CANDIDATE",
		Short: "Compare two FASTA files once and print the mutations",
		Long: `Load REFERENCE as sequence 1 and CANDIDATE as sequence 2, print a summary
and the mutation table, and optionally write the text report and the table.

` + pathsHelp,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, export, err := sessionConfig()
			if err != nil {
				return err
			}

			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				Reference:   m.Path(args[0]),
				Candidate:   m.Path(args[1]),
				Paths:       paths,
				Export:      export,
				WriteReport: compareReportFlag,
				WriteTable:  compareTableFlag,
				ShowDiff:    compareDiffFlag,
				DiffWidth:   viper.GetInt(diffWidthKey),
			})
		},
	}

	configureCompareFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func configureCompareFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&compareReportFlag, reportFlagName, "r", false, "write the text report to the output directory")
	cmd.Flags().BoolVarP(&compareTableFlag, tableFlagName, "t", false, "write the mutation table to the output directory")
	cmd.Flags().BoolVarP(&compareDiffFlag, diffFlagName, "d", false, "print a line diff of the wrapped sequences")
	cmd.Flags().IntVarP(&compareWidthFlag, widthFlagName, "w", defaultDiffWidth, "residues per line in the diff")
	bindFlagToConfig(cmd.Flags().Lookup(widthFlagName), diffWidthKey)
}
