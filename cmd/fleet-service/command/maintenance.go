package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleet-service/internal/service"
)

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Manage vehicle maintenance records",
}

var maintAddFlags struct {
	vehicleID   int
	date        string
	description string
	cost        float64
	odometer    int
	mechanic    string
	warranty    bool
}

var maintAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record maintenance work on a vehicle",
	Args:  cobra.NoArgs,
	RunE:  runMaintAdd,
}

func runMaintAdd(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st, err := a.loadStore()
	if err != nil {
		return err
	}

	date, err := parseDateFlag(maintAddFlags.date, "date")
	if err != nil {
		return err
	}

	maintenance := service.NewMaintenanceService(st, a.logger)
	record, err := maintenance.AddRecord(service.AddMaintenanceRecordInput{
		VehicleID:       maintAddFlags.vehicleID,
		MaintenanceDate: date,
		Description:     maintAddFlags.description,
		Cost:            maintAddFlags.cost,
		OdometerReading: maintAddFlags.odometer,
		MechanicName:    maintAddFlags.mechanic,
		IsWarrantyWork:  maintAddFlags.warranty,
	})
	if err != nil {
		return err
	}

	if err := a.saveStore(st); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Maintenance record %d added for vehicle %d\n", record.ID, record.VehicleID)
	return nil
}

var maintCompleteFlags struct {
	cost     float64
	mechanic string
	warranty bool
}

var maintCompleteCmd = &cobra.Command{
	Use:   "complete <record-id>",
	Short: "Complete a maintenance record",
	Long: `Complete a maintenance record: fill in the final cost and
mechanic, stamp the vehicle's last maintenance date with today, and
return the vehicle to service when it was parked for maintenance.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaintComplete,
}

func runMaintComplete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st, err := a.loadStore()
	if err != nil {
		return err
	}
	id, err := parseIDArg(args[0], "maintenance record")
	if err != nil {
		return err
	}

	maintenance := service.NewMaintenanceService(st, a.logger)
	if err := maintenance.Complete(id, maintCompleteFlags.cost, maintCompleteFlags.mechanic, maintCompleteFlags.warranty); err != nil {
		return err
	}

	if err := a.saveStore(st); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Maintenance record %d completed\n", id)
	return nil
}

func init() {
	maintAddCmd.Flags().IntVar(&maintAddFlags.vehicleID, "vehicle", 0, "vehicle id")
	maintAddCmd.Flags().StringVar(&maintAddFlags.date, "date", "", "maintenance date (YYYY-MM-DD)")
	maintAddCmd.Flags().StringVar(&maintAddFlags.description, "description", "", "work description")
	maintAddCmd.Flags().Float64Var(&maintAddFlags.cost, "cost", 0, "cost")
	maintAddCmd.Flags().IntVar(&maintAddFlags.odometer, "odometer", 0, "odometer reading")
	maintAddCmd.Flags().StringVar(&maintAddFlags.mechanic, "mechanic", "", "mechanic name")
	maintAddCmd.Flags().BoolVar(&maintAddFlags.warranty, "warranty", false, "warranty work")

	maintCompleteCmd.Flags().Float64Var(&maintCompleteFlags.cost, "cost", 0, "final cost")
	maintCompleteCmd.Flags().StringVar(&maintCompleteFlags.mechanic, "mechanic", "", "mechanic name")
	maintCompleteCmd.Flags().BoolVar(&maintCompleteFlags.warranty, "warranty", false, "warranty work")

	maintenanceCmd.AddCommand(maintAddCmd, maintCompleteCmd)
	rootCmd.AddCommand(maintenanceCmd)
}
