package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"mutafinder.dev/pkg/mutafinder/internal/domain"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show TABLE",
		Short: "Print a previously exported mutation table",
		Long: `Read a table written by the export (csv, tsv or yaml) and print it as the
mutation table. The format is taken from the file extension unless --format
is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, _, err := sessionConfig()
			if err != nil {
				return err
			}

			var format m.TableFormat
			if cmd.Flags().Changed(formatFlagName) {
				if format, err = m.ParseTableFormat(viper.GetString(exportFormatKey)); err != nil {
					return err
				}
			}

			return workflow.Show(cmd.Context(), domain.ShowArgs{
				Table:  m.Path(args[0]),
				Paths:  paths,
				Format: format,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
