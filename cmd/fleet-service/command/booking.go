package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleet-service/internal/service"
)

var scheduleFlags struct {
	vehicleID       int
	driverID        int
	routeID         int
	date            string
	pickup          string
	ret             string
	customerName    string
	customerPhone   string
	customerEmail   string
	passengers      int
	amount          float64
	specialRequests string
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a booking",
	Long: `Schedule a booking for an available vehicle and an eligible
driver. The vehicle is marked in use for as long as the booking is
outstanding.`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st, err := a.loadStore()
	if err != nil {
		return err
	}

	date, err := parseDateFlag(scheduleFlags.date, "date")
	if err != nil {
		return err
	}
	pickup, err := parseTimeFlag(scheduleFlags.pickup, "pickup")
	if err != nil {
		return err
	}
	ret, err := parseTimeFlag(scheduleFlags.ret, "return")
	if err != nil {
		return err
	}

	bookings := service.NewBookingService(st, a.logger)
	booking, err := bookings.Schedule(service.ScheduleBookingInput{
		VehicleID:       scheduleFlags.vehicleID,
		DriverID:        scheduleFlags.driverID,
		RouteID:         scheduleFlags.routeID,
		BookingDate:     date,
		PickupTime:      pickup,
		ReturnTime:      ret,
		CustomerName:    scheduleFlags.customerName,
		CustomerPhone:   scheduleFlags.customerPhone,
		CustomerEmail:   scheduleFlags.customerEmail,
		Passengers:      scheduleFlags.passengers,
		TotalAmount:     scheduleFlags.amount,
		SpecialRequests: scheduleFlags.specialRequests,
	})
	if err != nil {
		return err
	}

	if err := a.saveStore(st); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Booking %d scheduled\n", booking.ID)
	return nil
}

var cancelReason string

var cancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking and free its vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

func runCancel(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st, err := a.loadStore()
	if err != nil {
		return err
	}
	id, err := parseIDArg(args[0], "booking")
	if err != nil {
		return err
	}

	bookings := service.NewBookingService(st, a.logger)
	if err := bookings.Cancel(id, cancelReason); err != nil {
		return err
	}

	if err := a.saveStore(st); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Booking %d cancelled\n", id)
	return nil
}

var completeFuel float64

var completeCmd = &cobra.Command{
	Use:   "complete <booking-id>",
	Short: "Complete an in-progress booking",
	Long: `Complete an in-progress booking, free its vehicle, and
advance the vehicle odometer from the reported fuel consumption when
the booking follows a route.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	st, err := a.loadStore()
	if err != nil {
		return err
	}
	id, err := parseIDArg(args[0], "booking")
	if err != nil {
		return err
	}

	bookings := service.NewBookingService(st, a.logger)
	if err := bookings.Complete(id, completeFuel); err != nil {
		return err
	}

	if err := a.saveStore(st); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Booking %d completed\n", id)
	return nil
}

func init() {
	scheduleCmd.Flags().IntVar(&scheduleFlags.vehicleID, "vehicle", 0, "vehicle id")
	scheduleCmd.Flags().IntVar(&scheduleFlags.driverID, "driver", 0, "driver id")
	scheduleCmd.Flags().IntVar(&scheduleFlags.routeID, "route", 0, "route id (0 for no route)")
	scheduleCmd.Flags().StringVar(&scheduleFlags.date, "date", "", "booking date (YYYY-MM-DD)")
	scheduleCmd.Flags().StringVar(&scheduleFlags.pickup, "pickup", "", "pickup time (HH:MM)")
	scheduleCmd.Flags().StringVar(&scheduleFlags.ret, "return", "", "return time (HH:MM)")
	scheduleCmd.Flags().StringVar(&scheduleFlags.customerName, "customer", "", "customer name")
	scheduleCmd.Flags().StringVar(&scheduleFlags.customerPhone, "phone", "", "customer phone")
	scheduleCmd.Flags().StringVar(&scheduleFlags.customerEmail, "email", "", "customer email")
	scheduleCmd.Flags().IntVar(&scheduleFlags.passengers, "passengers", 1, "passenger count")
	scheduleCmd.Flags().Float64Var(&scheduleFlags.amount, "amount", 0, "total amount")
	scheduleCmd.Flags().StringVar(&scheduleFlags.specialRequests, "requests", "", "special requests")

	cancelCmd.Flags().StringVar(&cancelReason, "reason", "", "cancellation reason")
	completeCmd.Flags().Float64Var(&completeFuel, "fuel", 0, "actual fuel consumed in liters")

	rootCmd.AddCommand(scheduleCmd, cancelCmd, completeCmd)
}
