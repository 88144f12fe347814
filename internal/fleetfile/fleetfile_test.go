package fleetfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
	"fleet-service/internal/seed"
	"fleet-service/internal/store"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	codec := New(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "fleet_data.txt")

	original := seed.Generate()
	require.NoError(t, codec.Save(original, path))

	loaded, err := codec.Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.NextIDs, loaded.NextIDs)
	assert.Equal(t, original.Vehicles, loaded.Vehicles)
	assert.Equal(t, original.Drivers, loaded.Drivers)
	assert.Equal(t, original.Routes, loaded.Routes)
	assert.Equal(t, original.Bookings, loaded.Bookings)
	assert.Equal(t, original.MaintenanceRecords, loaded.MaintenanceRecords)
}

func TestLoadMissingFile(t *testing.T) {
	codec := New(zerolog.Nop())

	_, err := codec.Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSaveWireFormat(t *testing.T) {
	codec := New(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "fleet_data.txt")

	st := store.New()
	vehicle := model.Vehicle{
		LicensePlate:         "ABC123",
		Make:                 "Toyota",
		Model:                "Camry",
		Year:                 2020,
		Type:                 model.VehicleTypeSedan,
		Capacity:             5,
		FuelEfficiency:       15.5,
		Odometer:             25000.0,
		Color:                "Blue",
		Status:               model.VehicleStatusAvailable,
		DailyRate:            50.0,
		WeeklyRate:           300.0,
		LastMaintenanceDate:  model.Date{Year: 2023, Month: 5, Day: 15},
		BookingIDs:           []int{1, 2},
		MaintenanceRecordIDs: nil,
	}
	_, ok := st.AddVehicle(vehicle)
	require.True(t, ok)

	require.NoError(t, codec.Save(st, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")

	assert.Equal(t, "NEXT_IDS", lines[0])
	assert.Equal(t, "2|1|1|1|1", lines[1])
	assert.Equal(t, "VEHICLES", lines[2])
	// Back-references repeat the count inside the list field.
	assert.Equal(t,
		"1|ABC123|Toyota|Camry|2020|1|5|15.50|25000.0|Blue|1|50.00|300.00|2023|5|15|2|2,1,2|0|0",
		lines[3])
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	codec := New(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "fleet_data.txt")

	content := strings.Join([]string{
		"NEXT_IDS",
		"3|1|1|1|1",
		"VEHICLES",
		"1|ABC123|Toyota|Camry|2020|1|5|15.50|25000.0|Blue|1|50.00|300.00|2023|5|15|0|0|0|0",
		"not|a|vehicle",
		"2|XYZ789|Ford|Explorer|2019|2|7|12.00|35000.0|Red|1|60.00|350.00|0|0|0|0|0|0|0",
		"DRIVERS",
		"ROUTES",
		"BOOKINGS",
		"MAINTENANCE_RECORDS",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	st, err := codec.Load(path)
	require.NoError(t, err)

	require.Len(t, st.Vehicles, 2)
	assert.Equal(t, "ABC123", st.Vehicles[0].LicensePlate)
	assert.Equal(t, "XYZ789", st.Vehicles[1].LicensePlate)
	assert.Equal(t, 3, st.NextIDs.Vehicle)
}

func TestLoadRejectsUnknownEnumCode(t *testing.T) {
	codec := New(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "fleet_data.txt")

	content := strings.Join([]string{
		"VEHICLES",
		"1|ABC123|Toyota|Camry|2020|9|5|15.50|25000.0|Blue|1|50.00|300.00|0|0|0|0|0|0|0",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	st, err := codec.Load(path)
	require.NoError(t, err)
	assert.Empty(t, st.Vehicles)
}

func TestLoadIgnoresLineOutsideSection(t *testing.T) {
	codec := New(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "fleet_data.txt")

	content := "1|2|3\nVEHICLES\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	st, err := codec.Load(path)
	require.NoError(t, err)
	assert.Empty(t, st.Vehicles)
}

func TestIDListCodec(t *testing.T) {
	count, list := encodeIDList([]int{4, 7, 9})
	assert.Equal(t, "3", count)
	assert.Equal(t, "3,4,7,9", list)

	ids, err := parseIDList(count, list)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 7, 9}, ids)

	count, list = encodeIDList(nil)
	assert.Equal(t, "0", count)
	assert.Equal(t, "0", list)

	ids, err = parseIDList(count, list)
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseIDList("2", "2,5")
	assert.Error(t, err)
}
