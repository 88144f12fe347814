package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleet-service/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a fresh sample fleet to the data file",
	Long: `Write a fresh sample fleet to the data file, replacing any
existing contents.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st := seed.Generate()
	if err := a.saveStore(st); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s with %d vehicles, %d drivers, %d routes, %d bookings, %d maintenance records\n",
		a.path, len(st.Vehicles), len(st.Drivers), len(st.Routes), len(st.Bookings), len(st.MaintenanceRecords))
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
