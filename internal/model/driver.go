package model

type Driver struct {
	ID                int
	FirstName         string
	LastName          string
	LicenseNumber     string
	LicenseExpiryDate Date
	Address           string
	Phone             string
	Email             string
	HireDate          Date
	IsActive          bool
	BookingIDs        []int
}

func (d *Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}

// IsLicenseExpired reports whether the license expired strictly before
// today. A license expiring today is still valid.
func (d *Driver) IsLicenseExpired(today Date) bool {
	return d.LicenseExpiryDate.Before(today)
}

func (d *Driver) YearsOfService(today Date) int {
	years := today.Year - d.HireDate.Year
	if today.Month < d.HireDate.Month ||
		(today.Month == d.HireDate.Month && today.Day < d.HireDate.Day) {
		years--
	}
	return years
}

func (d *Driver) AddBooking(bookingID int) {
	d.BookingIDs = appendID(d.BookingIDs, bookingID)
}

func (d *Driver) RemoveBooking(bookingID int) {
	d.BookingIDs = removeID(d.BookingIDs, bookingID)
}
