package fleetfile

import (
	"fmt"
	"strconv"
	"strings"

	"fleet-service/internal/model"
)

// encodeIDList renders a back-reference set as its two wire fields:
// the count, then the count immediately followed by the comma-joined
// ids. An empty set is "0|0".
func encodeIDList(ids []int) (string, string) {
	count := strconv.Itoa(len(ids))
	var b strings.Builder
	b.WriteString(count)
	for _, id := range ids {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(id))
	}
	return count, b.String()
}

func encodeDate(d model.Date) []string {
	return []string{
		strconv.Itoa(d.Year),
		strconv.Itoa(d.Month),
		strconv.Itoa(d.Day),
	}
}

func encodeTimeOfDay(t model.TimeOfDay) []string {
	return []string{
		strconv.Itoa(t.Hour),
		strconv.Itoa(t.Minute),
	}
}

func encodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func encodeVehicle(v *model.Vehicle) string {
	fields := []string{
		strconv.Itoa(v.ID),
		v.LicensePlate,
		v.Make,
		v.Model,
		strconv.Itoa(v.Year),
		strconv.Itoa(vehicleTypeCodes[v.Type]),
		strconv.Itoa(v.Capacity),
		fmt.Sprintf("%.2f", v.FuelEfficiency),
		fmt.Sprintf("%.1f", v.Odometer),
		v.Color,
		strconv.Itoa(vehicleStatusCodes[v.Status]),
		fmt.Sprintf("%.2f", v.DailyRate),
		fmt.Sprintf("%.2f", v.WeeklyRate),
	}
	fields = append(fields, encodeDate(v.LastMaintenanceDate)...)
	bookingCount, bookingList := encodeIDList(v.BookingIDs)
	fields = append(fields, bookingCount, bookingList)
	recordCount, recordList := encodeIDList(v.MaintenanceRecordIDs)
	fields = append(fields, recordCount, recordList)
	return strings.Join(fields, "|")
}

func encodeDriver(d *model.Driver) string {
	fields := []string{
		strconv.Itoa(d.ID),
		d.FirstName,
		d.LastName,
		d.LicenseNumber,
	}
	fields = append(fields, encodeDate(d.LicenseExpiryDate)...)
	fields = append(fields, d.Address, d.Phone, d.Email)
	fields = append(fields, encodeDate(d.HireDate)...)
	fields = append(fields, encodeBool(d.IsActive))
	bookingCount, bookingList := encodeIDList(d.BookingIDs)
	fields = append(fields, bookingCount, bookingList)
	return strings.Join(fields, "|")
}

func encodeRoute(r *model.Route) string {
	fields := []string{
		strconv.Itoa(r.ID),
		r.Name,
		r.Description,
		r.Origin,
		r.Destination,
		fmt.Sprintf("%.1f", r.Distance),
		fmt.Sprintf("%.1f", r.EstimatedTime),
		fmt.Sprintf("%.2f", r.BaseFare),
	}
	bookingCount, bookingList := encodeIDList(r.BookingIDs)
	fields = append(fields, bookingCount, bookingList)
	return strings.Join(fields, "|")
}

func encodeBooking(b *model.Booking) string {
	fields := []string{
		strconv.Itoa(b.ID),
		strconv.Itoa(b.VehicleID),
		strconv.Itoa(b.DriverID),
		strconv.Itoa(b.RouteID),
	}
	fields = append(fields, encodeDate(b.BookingDate)...)
	fields = append(fields, encodeTimeOfDay(b.PickupTime)...)
	fields = append(fields, encodeTimeOfDay(b.ReturnTime)...)
	fields = append(fields,
		b.CustomerName,
		b.CustomerPhone,
		b.CustomerEmail,
		strconv.Itoa(b.Passengers),
		fmt.Sprintf("%.2f", b.TotalAmount),
		strconv.Itoa(bookingStatusCodes[b.Status]),
		b.SpecialRequests,
	)
	fields = append(fields, encodeDate(b.CreationDate)...)
	return strings.Join(fields, "|")
}

func encodeMaintenanceRecord(r *model.MaintenanceRecord) string {
	fields := []string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.VehicleID),
	}
	fields = append(fields, encodeDate(r.MaintenanceDate)...)
	fields = append(fields,
		r.Description,
		fmt.Sprintf("%.2f", r.Cost),
		strconv.Itoa(r.OdometerReading),
		r.MechanicName,
		encodeBool(r.IsWarrantyWork),
	)
	return strings.Join(fields, "|")
}
