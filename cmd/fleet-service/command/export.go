package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleet-service/internal/report"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the fleet to an Excel workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st, err := a.loadStore()
	if err != nil {
		return err
	}
	if err := report.ExportExcel(st, exportOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported fleet to %s\n", exportOut)
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "fleet.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
