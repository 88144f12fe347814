package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleNeedsMaintenance(t *testing.T) {
	today := Date{Year: 2023, Month: 11, Day: 1}

	tests := []struct {
		name string
		last Date
		want bool
	}{
		{"never serviced", Date{}, true},
		{"serviced recently", Date{Year: 2023, Month: 10, Day: 15}, false},
		{"exactly at the interval", Date{Year: 2023, Month: 8, Day: 1}, false},
		{"past the interval", Date{Year: 2023, Month: 7, Day: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vehicle{LastMaintenanceDate: tt.last}
			assert.Equal(t, tt.want, v.NeedsMaintenance(today))
		})
	}
}

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123", "ABC123"},
		{"  AB-C 123  ", "ABC123"},
		{"ab c-12-3", "ABC123"},
		{"XYZ789", "XYZ789"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePlate(tt.in))
	}
}

func TestVehicleRefMutators(t *testing.T) {
	v := Vehicle{ID: 1}

	v.AddBooking(10)
	v.AddBooking(11)
	v.AddBooking(10) // duplicate is ignored
	assert.Equal(t, []int{10, 11}, v.BookingIDs)

	v.RemoveBooking(10)
	assert.Equal(t, []int{11}, v.BookingIDs)
	v.RemoveBooking(99) // absent id is a no-op
	assert.Equal(t, []int{11}, v.BookingIDs)

	v.AddMaintenanceRecord(5)
	assert.Equal(t, []int{5}, v.MaintenanceRecordIDs)
	v.RemoveMaintenanceRecord(5)
	assert.Empty(t, v.MaintenanceRecordIDs)
}
