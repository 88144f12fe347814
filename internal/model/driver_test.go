package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverLicenseExpiry(t *testing.T) {
	today := Date{Year: 2023, Month: 11, Day: 1}

	expired := Driver{LicenseExpiryDate: Date{Year: 2022, Month: 6, Day: 15}}
	assert.True(t, expired.IsLicenseExpired(today))

	// A license expiring today is still valid.
	onTheDay := Driver{LicenseExpiryDate: today}
	assert.False(t, onTheDay.IsLicenseExpired(today))

	valid := Driver{LicenseExpiryDate: Date{Year: 2025, Month: 12, Day: 31}}
	assert.False(t, valid.IsLicenseExpired(today))
}

func TestDriverYearsOfService(t *testing.T) {
	d := Driver{HireDate: Date{Year: 2020, Month: 6, Day: 15}}

	assert.Equal(t, 3, d.YearsOfService(Date{Year: 2023, Month: 11, Day: 1}))
	// The anniversary has not passed yet this year.
	assert.Equal(t, 2, d.YearsOfService(Date{Year: 2023, Month: 6, Day: 14}))
	assert.Equal(t, 3, d.YearsOfService(Date{Year: 2023, Month: 6, Day: 15}))
}

func TestDriverFullName(t *testing.T) {
	d := Driver{FirstName: "John", LastName: "Smith"}
	assert.Equal(t, "John Smith", d.FullName())
}
