package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"fleet-service/internal/store"
)

// ExportExcel writes the whole store to an .xlsx workbook, one sheet
// per collection.
func ExportExcel(st *store.Store, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeVehicleSheet(f, st); err != nil {
		return err
	}
	if err := writeDriverSheet(f, st); err != nil {
		return err
	}
	if err := writeRouteSheet(f, st); err != nil {
		return err
	}
	if err := writeBookingSheet(f, st); err != nil {
		return err
	}
	if err := writeMaintenanceSheet(f, st); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastCol+"1", style); err != nil {
		return err
	}
	return f.SetColWidth(name, "A", lastCol, 18)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func idList(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func writeVehicleSheet(f *excelize.File, st *store.Store) error {
	const sheet = "Vehicles"
	headers := []string{
		"ID", "License Plate", "Make", "Model", "Year", "Type", "Capacity",
		"Fuel Efficiency", "Odometer", "Color", "Status", "Daily Rate",
		"Weekly Rate", "Last Maintenance", "Booking IDs", "Maintenance Record IDs",
	}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i := range st.Vehicles {
		v := &st.Vehicles[i]
		err := setRow(f, sheet, i+2, []interface{}{
			v.ID, v.LicensePlate, v.Make, v.Model, v.Year, v.Type.Label(),
			v.Capacity, v.FuelEfficiency, v.Odometer, v.Color, v.Status.Label(),
			v.DailyRate, v.WeeklyRate, formatDate(v.LastMaintenanceDate),
			idList(v.BookingIDs), idList(v.MaintenanceRecordIDs),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeDriverSheet(f *excelize.File, st *store.Store) error {
	const sheet = "Drivers"
	headers := []string{
		"ID", "First Name", "Last Name", "License Number", "License Expiry",
		"Address", "Phone", "Email", "Hire Date", "Active", "Booking IDs",
	}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i := range st.Drivers {
		d := &st.Drivers[i]
		err := setRow(f, sheet, i+2, []interface{}{
			d.ID, d.FirstName, d.LastName, d.LicenseNumber,
			formatDate(d.LicenseExpiryDate), d.Address, d.Phone, d.Email,
			formatDate(d.HireDate), d.IsActive, idList(d.BookingIDs),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeRouteSheet(f *excelize.File, st *store.Store) error {
	const sheet = "Routes"
	headers := []string{
		"ID", "Name", "Description", "Origin", "Destination", "Distance",
		"Estimated Time", "Base Fare", "Booking IDs",
	}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i := range st.Routes {
		r := &st.Routes[i]
		err := setRow(f, sheet, i+2, []interface{}{
			r.ID, r.Name, r.Description, r.Origin, r.Destination, r.Distance,
			r.EstimatedTime, r.BaseFare, idList(r.BookingIDs),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeBookingSheet(f *excelize.File, st *store.Store) error {
	const sheet = "Bookings"
	headers := []string{
		"ID", "Vehicle ID", "Driver ID", "Route ID", "Booking Date",
		"Pickup Time", "Return Time", "Customer Name", "Customer Phone",
		"Customer Email", "Passengers", "Total Amount", "Status",
		"Special Requests", "Created",
	}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i := range st.Bookings {
		b := &st.Bookings[i]
		routeID := ""
		if b.RouteID != 0 {
			routeID = strconv.Itoa(b.RouteID)
		}
		err := setRow(f, sheet, i+2, []interface{}{
			b.ID, b.VehicleID, b.DriverID, routeID, formatDate(b.BookingDate),
			formatTimeOfDay(b.PickupTime), formatTimeOfDay(b.ReturnTime),
			b.CustomerName, b.CustomerPhone, b.CustomerEmail, b.Passengers,
			b.TotalAmount, b.Status.Label(), b.SpecialRequests,
			formatDate(b.CreationDate),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeMaintenanceSheet(f *excelize.File, st *store.Store) error {
	const sheet = "Maintenance"
	headers := []string{
		"ID", "Vehicle ID", "Date", "Description", "Cost", "Odometer Reading",
		"Mechanic", "Warranty Work",
	}
	if err := newSheet(f, sheet, headers); err != nil {
		return err
	}
	for i := range st.MaintenanceRecords {
		r := &st.MaintenanceRecords[i]
		err := setRow(f, sheet, i+2, []interface{}{
			r.ID, r.VehicleID, formatDate(r.MaintenanceDate), r.Description,
			r.Cost, r.OdometerReading, r.MechanicName, r.IsWarrantyWork,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
