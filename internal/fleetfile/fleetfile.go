// Package fleetfile reads and writes the fleet data file: a
// line-oriented, pipe-delimited text format with six sections
// (NEXT_IDS, VEHICLES, DRIVERS, ROUTES, BOOKINGS,
// MAINTENANCE_RECORDS). The format, including the doubled-count
// back-reference encoding, is kept byte-compatible with existing data
// files.
package fleetfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"fleet-service/internal/store"
)

// DefaultPath is where the owning process keeps its data file.
const DefaultPath = "fleet_data.txt"

// ErrPersistence marks I/O failures on the data file. A missing file
// on load is NOT one of these: it is reported as fs.ErrNotExist so
// callers can fall back to seeding an empty store.
var ErrPersistence = errors.New("persistence error")

const (
	sectionNextIDs            = "NEXT_IDS"
	sectionVehicles           = "VEHICLES"
	sectionDrivers            = "DRIVERS"
	sectionRoutes             = "ROUTES"
	sectionBookings           = "BOOKINGS"
	sectionMaintenanceRecords = "MAINTENANCE_RECORDS"
)

type Codec struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Codec {
	return &Codec{logger: logger}
}

// Save writes the whole store to path in one synchronous pass. A
// failure mid-write leaves a truncated file behind; there is no
// partial-failure recovery.
func (c *Codec) Save(st *store.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: open %s for write: %v", ErrPersistence, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, sectionNextIDs)
	fmt.Fprintf(w, "%d|%d|%d|%d|%d\n",
		st.NextIDs.Vehicle,
		st.NextIDs.Driver,
		st.NextIDs.Route,
		st.NextIDs.Booking,
		st.NextIDs.MaintenanceRecord,
	)

	fmt.Fprintln(w, sectionVehicles)
	for i := range st.Vehicles {
		fmt.Fprintln(w, encodeVehicle(&st.Vehicles[i]))
	}

	fmt.Fprintln(w, sectionDrivers)
	for i := range st.Drivers {
		fmt.Fprintln(w, encodeDriver(&st.Drivers[i]))
	}

	fmt.Fprintln(w, sectionRoutes)
	for i := range st.Routes {
		fmt.Fprintln(w, encodeRoute(&st.Routes[i]))
	}

	fmt.Fprintln(w, sectionBookings)
	for i := range st.Bookings {
		fmt.Fprintln(w, encodeBooking(&st.Bookings[i]))
	}

	fmt.Fprintln(w, sectionMaintenanceRecords)
	for i := range st.MaintenanceRecords {
		fmt.Fprintln(w, encodeMaintenanceRecord(&st.MaintenanceRecords[i]))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, path, err)
	}

	c.logger.Info().
		Str("path", path).
		Int("vehicles", len(st.Vehicles)).
		Int("drivers", len(st.Drivers)).
		Int("routes", len(st.Routes)).
		Int("bookings", len(st.Bookings)).
		Int("maintenance_records", len(st.MaintenanceRecords)).
		Msg("fleet data saved")
	return nil
}

// Load parses the data file into a fresh store. Malformed lines are
// logged and skipped rather than failing the load, so a partially
// hand-edited file still loads. A missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func (c *Codec) Load(path string) (*store.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrPersistence, path, err)
	}
	defer f.Close()

	st := store.New()
	section := ""

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch line {
		case sectionNextIDs, sectionVehicles, sectionDrivers,
			sectionRoutes, sectionBookings, sectionMaintenanceRecords:
			section = line
			continue
		}
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if err := c.loadLine(st, section, fields); err != nil {
			c.logger.Warn().
				Str("path", path).
				Int("line", lineNo).
				Str("section", section).
				Err(err).
				Msg("skipping malformed line")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, path, err)
	}

	c.logger.Info().
		Str("path", path).
		Int("vehicles", len(st.Vehicles)).
		Int("drivers", len(st.Drivers)).
		Int("routes", len(st.Routes)).
		Int("bookings", len(st.Bookings)).
		Int("maintenance_records", len(st.MaintenanceRecords)).
		Msg("fleet data loaded")
	return st, nil
}

func (c *Codec) loadLine(st *store.Store, section string, fields []string) error {
	switch section {
	case sectionNextIDs:
		if len(fields) != nextIDsFieldCount {
			return fmt.Errorf("next-ids line has %d fields, want %d", len(fields), nextIDsFieldCount)
		}
		values := make([]int, nextIDsFieldCount)
		for i, field := range fields {
			n, err := parseInt(field)
			if err != nil {
				return err
			}
			values[i] = n
		}
		st.NextIDs = store.Counters{
			Vehicle:           values[0],
			Driver:            values[1],
			Route:             values[2],
			Booking:           values[3],
			MaintenanceRecord: values[4],
		}
	case sectionVehicles:
		v, err := parseVehicle(fields)
		if err != nil {
			return err
		}
		st.Vehicles = append(st.Vehicles, v)
	case sectionDrivers:
		d, err := parseDriver(fields)
		if err != nil {
			return err
		}
		st.Drivers = append(st.Drivers, d)
	case sectionRoutes:
		r, err := parseRoute(fields)
		if err != nil {
			return err
		}
		st.Routes = append(st.Routes, r)
	case sectionBookings:
		b, err := parseBooking(fields)
		if err != nil {
			return err
		}
		st.Bookings = append(st.Bookings, b)
	case sectionMaintenanceRecords:
		r, err := parseMaintenanceRecord(fields)
		if err != nil {
			return err
		}
		st.MaintenanceRecords = append(st.MaintenanceRecords, r)
	default:
		return fmt.Errorf("line outside any section")
	}
	return nil
}
