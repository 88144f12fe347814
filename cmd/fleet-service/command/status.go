package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show fleet availability at a glance",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st, err := a.loadStore()
	if err != nil {
		return err
	}

	maintenance := service.NewMaintenanceService(st, a.logger)
	availability := service.NewAvailabilityService(st, maintenance)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Available Vehicles:")
	for _, v := range availability.VehiclesByStatus(model.VehicleStatusAvailable) {
		fmt.Fprintf(out, "  #%d %s %s %s\n", v.ID, v.LicensePlate, v.Make, v.Model)
	}

	fmt.Fprintln(out, "\nVehicles Needing Maintenance:")
	for _, v := range availability.VehiclesNeedingMaintenance() {
		fmt.Fprintf(out, "  #%d %s %s %s\n", v.ID, v.LicensePlate, v.Make, v.Model)
	}

	fmt.Fprintln(out, "\nActive Drivers:")
	for _, d := range availability.ActiveDrivers() {
		fmt.Fprintf(out, "  #%d %s\n", d.ID, d.FullName())
	}

	expired := availability.DriversWithExpiredLicenses()
	if len(expired) > 0 {
		fmt.Fprintln(out, "\nDrivers with Expired Licenses:")
		for _, d := range expired {
			fmt.Fprintf(out, "  #%d %s (expired %04d-%02d-%02d)\n",
				d.ID, d.FullName(),
				d.LicenseExpiryDate.Year, d.LicenseExpiryDate.Month, d.LicenseExpiryDate.Day)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
