// Package report renders the operator-facing reports over a store:
// per-vehicle, per-driver, monthly bookings and a whole-system
// summary, plus an Excel export of all collections.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fleet-service/internal/model"
	"fleet-service/internal/store"
)

var bookingStatusOrder = []model.BookingStatus{
	model.BookingStatusScheduled,
	model.BookingStatusInProgress,
	model.BookingStatusCompleted,
	model.BookingStatusCancelled,
	model.BookingStatusNoShow,
}

var vehicleStatusOrder = []model.VehicleStatus{
	model.VehicleStatusAvailable,
	model.VehicleStatusInUse,
	model.VehicleStatusMaintenance,
	model.VehicleStatusOutOfService,
}

var vehicleTypeOrder = []model.VehicleType{
	model.VehicleTypeSedan,
	model.VehicleTypeSUV,
	model.VehicleTypeVan,
	model.VehicleTypeBus,
	model.VehicleTypeTruck,
	model.VehicleTypeMotorcycle,
}

func formatDate(d model.Date) string {
	if d.IsZero() {
		return "Never"
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatTimeOfDay(t model.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Vehicle writes the vehicle report: details, maintenance history with
// total cost, bookings with status distribution and revenue.
func Vehicle(w io.Writer, st *store.Store, vehicleID int, today model.Date) error {
	vehicle := st.FindVehicle(vehicleID)
	if vehicle == nil {
		return fmt.Errorf("vehicle %d not found", vehicleID)
	}

	fmt.Fprintln(w, "Vehicle Report")
	fmt.Fprintln(w, "===============")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", vehicle.ID)
	fmt.Fprintf(tw, "License Plate:\t%s\n", vehicle.LicensePlate)
	fmt.Fprintf(tw, "Make/Model:\t%s %s (%d)\n", vehicle.Make, vehicle.Model, vehicle.Year)
	fmt.Fprintf(tw, "Type:\t%s\n", vehicle.Type.Label())
	fmt.Fprintf(tw, "Capacity:\t%d passengers\n", vehicle.Capacity)
	fmt.Fprintf(tw, "Fuel Efficiency:\t%.1f km/L\n", vehicle.FuelEfficiency)
	fmt.Fprintf(tw, "Odometer:\t%.1f km\n", vehicle.Odometer)
	fmt.Fprintf(tw, "Color:\t%s\n", vehicle.Color)
	fmt.Fprintf(tw, "Status:\t%s\n", vehicle.Status.Label())
	fmt.Fprintf(tw, "Daily Rate:\t$%.2f\n", vehicle.DailyRate)
	fmt.Fprintf(tw, "Weekly Rate:\t$%.2f\n", vehicle.WeeklyRate)
	fmt.Fprintf(tw, "Last Maintenance:\t%s\n", formatDate(vehicle.LastMaintenanceDate))
	tw.Flush()

	if vehicle.NeedsMaintenance(today) {
		fmt.Fprintln(w, "WARNING: vehicle needs maintenance")
	}

	records := st.MaintenanceRecordsByVehicle(vehicleID)
	if len(records) > 0 {
		fmt.Fprintf(w, "\nMaintenance Records (%d):\n", len(records))
		totalCost := 0.0
		for _, r := range records {
			fmt.Fprintf(w, "  #%d %s %s $%.2f\n", r.ID, formatDate(r.MaintenanceDate), r.Description, r.Cost)
			totalCost += r.Cost
		}
		fmt.Fprintf(w, "Total Maintenance Cost: $%.2f\n", totalCost)
	} else {
		fmt.Fprintln(w, "\nNo maintenance records found.")
	}

	bookings := st.BookingsByVehicle(vehicleID)
	if len(bookings) > 0 {
		fmt.Fprintf(w, "\nBookings (%d):\n", len(bookings))
		totalRevenue := 0.0
		statusCounts := make(map[model.BookingStatus]int)
		for _, b := range bookings {
			fmt.Fprintf(w, "  #%d %s %s %s\n", b.ID, b.CustomerName, formatDate(b.BookingDate), b.Status.Label())
			statusCounts[b.Status]++
			totalRevenue += b.TotalAmount
		}
		writeBookingStatusDistribution(w, statusCounts)
		fmt.Fprintf(w, "Total Revenue: $%.2f\n", totalRevenue)
	} else {
		fmt.Fprintln(w, "\nNo bookings found.")
	}
	return nil
}

// Driver writes the driver report: details plus booking history.
func Driver(w io.Writer, st *store.Store, driverID int, today model.Date) error {
	driver := st.FindDriver(driverID)
	if driver == nil {
		return fmt.Errorf("driver %d not found", driverID)
	}

	fmt.Fprintln(w, "Driver Report")
	fmt.Fprintln(w, "=============")

	licenseState := "Valid"
	if driver.IsLicenseExpired(today) {
		licenseState = "EXPIRED"
	}
	activeState := "Active"
	if !driver.IsActive {
		activeState = "Inactive"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", driver.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", driver.FullName())
	fmt.Fprintf(tw, "License Number:\t%s\n", driver.LicenseNumber)
	fmt.Fprintf(tw, "License Expiry:\t%s (%s)\n", formatDate(driver.LicenseExpiryDate), licenseState)
	fmt.Fprintf(tw, "Address:\t%s\n", driver.Address)
	fmt.Fprintf(tw, "Phone:\t%s\n", driver.Phone)
	fmt.Fprintf(tw, "Email:\t%s\n", driver.Email)
	fmt.Fprintf(tw, "Hire Date:\t%s\n", formatDate(driver.HireDate))
	fmt.Fprintf(tw, "Status:\t%s\n", activeState)
	fmt.Fprintf(tw, "Years of Service:\t%d\n", driver.YearsOfService(today))
	tw.Flush()

	bookings := st.BookingsByDriver(driverID)
	if len(bookings) > 0 {
		fmt.Fprintf(w, "\nBookings (%d):\n", len(bookings))
		statusCounts := make(map[model.BookingStatus]int)
		for _, b := range bookings {
			fmt.Fprintf(w, "  #%d %s %s %s\n", b.ID, b.CustomerName, formatDate(b.BookingDate), b.Status.Label())
			statusCounts[b.Status]++
		}
		writeBookingStatusDistribution(w, statusCounts)
	} else {
		fmt.Fprintln(w, "\nNo bookings found.")
	}
	return nil
}

// MonthlyBookings writes the booking summary for one month: totals,
// status distribution and per-vehicle usage.
func MonthlyBookings(w io.Writer, st *store.Store, year, month int) error {
	fmt.Fprintf(w, "Booking Report for %04d-%02d\n", year, month)
	fmt.Fprintln(w, "============================")

	var monthly []*model.Booking
	for i := range st.Bookings {
		b := &st.Bookings[i]
		if b.BookingDate.Year == year && b.BookingDate.Month == month {
			monthly = append(monthly, b)
		}
	}
	if len(monthly) == 0 {
		fmt.Fprintln(w, "No bookings found for this month.")
		return nil
	}

	statusCounts := make(map[model.BookingStatus]int)
	totalRevenue := 0.0
	vehicleCounts := make(map[int]int)
	vehicleRevenue := make(map[int]float64)
	for _, b := range monthly {
		statusCounts[b.Status]++
		totalRevenue += b.TotalAmount
		vehicleCounts[b.VehicleID]++
		vehicleRevenue[b.VehicleID] += b.TotalAmount
	}

	fmt.Fprintf(w, "Total Bookings: %d\n", len(monthly))
	fmt.Fprintf(w, "Total Revenue: $%.2f\n", totalRevenue)
	writeBookingStatusDistribution(w, statusCounts)

	fmt.Fprintln(w, "\nVehicle Usage:")
	for i := range st.Vehicles {
		v := &st.Vehicles[i]
		count, ok := vehicleCounts[v.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s (%s %s): %d bookings, $%.2f revenue\n",
			v.LicensePlate, v.Make, v.Model, count, vehicleRevenue[v.ID])
	}
	return nil
}

// System writes the whole-system summary.
func System(w io.Writer, st *store.Store, today model.Date) error {
	fmt.Fprintln(w, "System Report")
	fmt.Fprintln(w, "=============")

	fmt.Fprintf(w, "Vehicles: %d\n", len(st.Vehicles))
	typeCounts := make(map[model.VehicleType]int)
	statusCounts := make(map[model.VehicleStatus]int)
	totalFuelEfficiency := 0.0
	for i := range st.Vehicles {
		v := &st.Vehicles[i]
		typeCounts[v.Type]++
		statusCounts[v.Status]++
		totalFuelEfficiency += v.FuelEfficiency
	}
	fmt.Fprintln(w, "Vehicle Type Distribution:")
	for _, t := range vehicleTypeOrder {
		if typeCounts[t] > 0 {
			fmt.Fprintf(w, "  %s: %d\n", t.Label(), typeCounts[t])
		}
	}
	fmt.Fprintln(w, "Vehicle Status Distribution:")
	for _, s := range vehicleStatusOrder {
		if statusCounts[s] > 0 {
			fmt.Fprintf(w, "  %s: %d\n", s.Label(), statusCounts[s])
		}
	}
	if len(st.Vehicles) > 0 {
		fmt.Fprintf(w, "Average Fuel Efficiency: %.1f km/L\n", totalFuelEfficiency/float64(len(st.Vehicles)))
	}

	active, expired := 0, 0
	for i := range st.Drivers {
		if st.Drivers[i].IsActive {
			active++
		}
		if st.Drivers[i].IsLicenseExpired(today) {
			expired++
		}
	}
	fmt.Fprintf(w, "\nDrivers: %d\n", len(st.Drivers))
	fmt.Fprintf(w, "Active Drivers: %d\n", active)
	fmt.Fprintf(w, "Inactive Drivers: %d\n", len(st.Drivers)-active)
	fmt.Fprintf(w, "Drivers with Expired Licenses: %d\n", expired)

	fmt.Fprintf(w, "\nRoutes: %d\n", len(st.Routes))

	bookingCounts := make(map[model.BookingStatus]int)
	totalRevenue := 0.0
	for i := range st.Bookings {
		bookingCounts[st.Bookings[i].Status]++
		totalRevenue += st.Bookings[i].TotalAmount
	}
	fmt.Fprintf(w, "\nBookings: %d\n", len(st.Bookings))
	writeBookingStatusDistribution(w, bookingCounts)
	fmt.Fprintf(w, "Total Revenue: $%.2f\n", totalRevenue)

	totalMaintenanceCost := 0.0
	for i := range st.MaintenanceRecords {
		totalMaintenanceCost += st.MaintenanceRecords[i].Cost
	}
	fmt.Fprintf(w, "\nMaintenance Records: %d\n", len(st.MaintenanceRecords))
	fmt.Fprintf(w, "Total Maintenance Cost: $%.2f\n", totalMaintenanceCost)
	return nil
}

func writeBookingStatusDistribution(w io.Writer, counts map[model.BookingStatus]int) {
	fmt.Fprintln(w, "Booking Status Distribution:")
	for _, s := range bookingStatusOrder {
		if counts[s] > 0 {
			fmt.Fprintf(w, "  %s: %d\n", s.Label(), counts[s])
		}
	}
}
