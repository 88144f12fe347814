package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fleet-service/internal/model"
	"fleet-service/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render text reports",
}

var reportVehicleCmd = &cobra.Command{
	Use:   "vehicle <vehicle-id>",
	Short: "Vehicle details, maintenance history and bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		st, err := a.loadStore()
		if err != nil {
			return err
		}
		id, err := parseIDArg(args[0], "vehicle")
		if err != nil {
			return err
		}
		return report.Vehicle(cmd.OutOrStdout(), st, id, model.Today())
	},
}

var reportDriverCmd = &cobra.Command{
	Use:   "driver <driver-id>",
	Short: "Driver details and booking history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		st, err := a.loadStore()
		if err != nil {
			return err
		}
		id, err := parseIDArg(args[0], "driver")
		if err != nil {
			return err
		}
		return report.Driver(cmd.OutOrStdout(), st, id, model.Today())
	},
}

var reportBookingsCmd = &cobra.Command{
	Use:   "bookings <year> <month>",
	Short: "Booking summary for one month",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		st, err := a.loadStore()
		if err != nil {
			return err
		}
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		month, err := strconv.Atoi(args[1])
		if err != nil || month < 1 || month > 12 {
			return fmt.Errorf("invalid month %q", args[1])
		}
		return report.MonthlyBookings(cmd.OutOrStdout(), st, year, month)
	},
}

var reportSystemCmd = &cobra.Command{
	Use:   "system",
	Short: "Whole-system summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		st, err := a.loadStore()
		if err != nil {
			return err
		}
		return report.System(cmd.OutOrStdout(), st, model.Today())
	},
}

func init() {
	reportCmd.AddCommand(reportVehicleCmd, reportDriverCmd, reportBookingsCmd, reportSystemCmd)
	rootCmd.AddCommand(reportCmd)
}
