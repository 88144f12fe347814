package fleetfile

import (
	"fmt"
	"strconv"
	"strings"

	"fleet-service/internal/model"
)

// Expected field counts per entity line. A line with any other count
// is malformed and skipped by the lenient loader.
const (
	vehicleFieldCount           = 20
	driverFieldCount            = 16
	routeFieldCount             = 10
	bookingFieldCount           = 21
	maintenanceRecordFieldCount = 10
	nextIDsFieldCount           = 5
)

func parseInt(field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("bad integer %q", field)
	}
	return n, nil
}

func parseFloat(field string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", field)
	}
	return f, nil
}

func parseBool(field string) bool {
	return field == "1"
}

func parseDate(yearField, monthField, dayField string) (model.Date, error) {
	year, err := parseInt(yearField)
	if err != nil {
		return model.Date{}, err
	}
	month, err := parseInt(monthField)
	if err != nil {
		return model.Date{}, err
	}
	day, err := parseInt(dayField)
	if err != nil {
		return model.Date{}, err
	}
	return model.Date{Year: year, Month: month, Day: day}, nil
}

func parseTimeOfDay(hourField, minuteField string) (model.TimeOfDay, error) {
	hour, err := parseInt(hourField)
	if err != nil {
		return model.TimeOfDay{}, err
	}
	minute, err := parseInt(minuteField)
	if err != nil {
		return model.TimeOfDay{}, err
	}
	return model.TimeOfDay{Hour: hour, Minute: minute}, nil
}

// parseIDList decodes the doubled-count back-reference fields: the
// list field repeats the count as its first comma token, then carries
// the ids.
func parseIDList(countField, listField string) ([]int, error) {
	count, err := parseInt(countField)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	tokens := strings.Split(listField, ",")
	if len(tokens) != count+1 {
		return nil, fmt.Errorf("id list %q does not hold %d ids", listField, count)
	}
	ids := make([]int, 0, count)
	for _, token := range tokens[1:] {
		id, err := parseInt(token)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseVehicle(fields []string) (model.Vehicle, error) {
	var v model.Vehicle
	if len(fields) != vehicleFieldCount {
		return v, fmt.Errorf("vehicle line has %d fields, want %d", len(fields), vehicleFieldCount)
	}
	var err error
	if v.ID, err = parseInt(fields[0]); err != nil {
		return v, err
	}
	v.LicensePlate = fields[1]
	v.Make = fields[2]
	v.Model = fields[3]
	if v.Year, err = parseInt(fields[4]); err != nil {
		return v, err
	}
	typeCode, err := parseInt(fields[5])
	if err != nil {
		return v, err
	}
	vehicleType, ok := vehicleTypeFromCode[typeCode]
	if !ok {
		return v, fmt.Errorf("unknown vehicle type code %d", typeCode)
	}
	v.Type = vehicleType
	if v.Capacity, err = parseInt(fields[6]); err != nil {
		return v, err
	}
	if v.FuelEfficiency, err = parseFloat(fields[7]); err != nil {
		return v, err
	}
	if v.Odometer, err = parseFloat(fields[8]); err != nil {
		return v, err
	}
	v.Color = fields[9]
	statusCode, err := parseInt(fields[10])
	if err != nil {
		return v, err
	}
	status, ok := vehicleStatusFromCode[statusCode]
	if !ok {
		return v, fmt.Errorf("unknown vehicle status code %d", statusCode)
	}
	v.Status = status
	if v.DailyRate, err = parseFloat(fields[11]); err != nil {
		return v, err
	}
	if v.WeeklyRate, err = parseFloat(fields[12]); err != nil {
		return v, err
	}
	if v.LastMaintenanceDate, err = parseDate(fields[13], fields[14], fields[15]); err != nil {
		return v, err
	}
	if v.BookingIDs, err = parseIDList(fields[16], fields[17]); err != nil {
		return v, err
	}
	if v.MaintenanceRecordIDs, err = parseIDList(fields[18], fields[19]); err != nil {
		return v, err
	}
	return v, nil
}

func parseDriver(fields []string) (model.Driver, error) {
	var d model.Driver
	if len(fields) != driverFieldCount {
		return d, fmt.Errorf("driver line has %d fields, want %d", len(fields), driverFieldCount)
	}
	var err error
	if d.ID, err = parseInt(fields[0]); err != nil {
		return d, err
	}
	d.FirstName = fields[1]
	d.LastName = fields[2]
	d.LicenseNumber = fields[3]
	if d.LicenseExpiryDate, err = parseDate(fields[4], fields[5], fields[6]); err != nil {
		return d, err
	}
	d.Address = fields[7]
	d.Phone = fields[8]
	d.Email = fields[9]
	if d.HireDate, err = parseDate(fields[10], fields[11], fields[12]); err != nil {
		return d, err
	}
	d.IsActive = parseBool(fields[13])
	if d.BookingIDs, err = parseIDList(fields[14], fields[15]); err != nil {
		return d, err
	}
	return d, nil
}

func parseRoute(fields []string) (model.Route, error) {
	var r model.Route
	if len(fields) != routeFieldCount {
		return r, fmt.Errorf("route line has %d fields, want %d", len(fields), routeFieldCount)
	}
	var err error
	if r.ID, err = parseInt(fields[0]); err != nil {
		return r, err
	}
	r.Name = fields[1]
	r.Description = fields[2]
	r.Origin = fields[3]
	r.Destination = fields[4]
	if r.Distance, err = parseFloat(fields[5]); err != nil {
		return r, err
	}
	if r.EstimatedTime, err = parseFloat(fields[6]); err != nil {
		return r, err
	}
	if r.BaseFare, err = parseFloat(fields[7]); err != nil {
		return r, err
	}
	if r.BookingIDs, err = parseIDList(fields[8], fields[9]); err != nil {
		return r, err
	}
	return r, nil
}

func parseBooking(fields []string) (model.Booking, error) {
	var b model.Booking
	if len(fields) != bookingFieldCount {
		return b, fmt.Errorf("booking line has %d fields, want %d", len(fields), bookingFieldCount)
	}
	var err error
	if b.ID, err = parseInt(fields[0]); err != nil {
		return b, err
	}
	if b.VehicleID, err = parseInt(fields[1]); err != nil {
		return b, err
	}
	if b.DriverID, err = parseInt(fields[2]); err != nil {
		return b, err
	}
	if b.RouteID, err = parseInt(fields[3]); err != nil {
		return b, err
	}
	if b.BookingDate, err = parseDate(fields[4], fields[5], fields[6]); err != nil {
		return b, err
	}
	if b.PickupTime, err = parseTimeOfDay(fields[7], fields[8]); err != nil {
		return b, err
	}
	if b.ReturnTime, err = parseTimeOfDay(fields[9], fields[10]); err != nil {
		return b, err
	}
	b.CustomerName = fields[11]
	b.CustomerPhone = fields[12]
	b.CustomerEmail = fields[13]
	if b.Passengers, err = parseInt(fields[14]); err != nil {
		return b, err
	}
	if b.TotalAmount, err = parseFloat(fields[15]); err != nil {
		return b, err
	}
	statusCode, err := parseInt(fields[16])
	if err != nil {
		return b, err
	}
	status, ok := bookingStatusFromCode[statusCode]
	if !ok {
		return b, fmt.Errorf("unknown booking status code %d", statusCode)
	}
	b.Status = status
	b.SpecialRequests = fields[17]
	if b.CreationDate, err = parseDate(fields[18], fields[19], fields[20]); err != nil {
		return b, err
	}
	return b, nil
}

func parseMaintenanceRecord(fields []string) (model.MaintenanceRecord, error) {
	var r model.MaintenanceRecord
	if len(fields) != maintenanceRecordFieldCount {
		return r, fmt.Errorf("maintenance record line has %d fields, want %d", len(fields), maintenanceRecordFieldCount)
	}
	var err error
	if r.ID, err = parseInt(fields[0]); err != nil {
		return r, err
	}
	if r.VehicleID, err = parseInt(fields[1]); err != nil {
		return r, err
	}
	if r.MaintenanceDate, err = parseDate(fields[2], fields[3], fields[4]); err != nil {
		return r, err
	}
	r.Description = fields[5]
	if r.Cost, err = parseFloat(fields[6]); err != nil {
		return r, err
	}
	if r.OdometerReading, err = parseInt(fields[7]); err != nil {
		return r, err
	}
	r.MechanicName = fields[8]
	r.IsWarrantyWork = parseBool(fields[9])
	return r, nil
}
