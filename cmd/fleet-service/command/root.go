// Package command provides the root and sub-commands of the fleet
// service CLI. Commands are organized using the cobra library.
// Mutating commands follow the same shape: load the data file (or
// seed a fresh store when the file does not exist yet), apply the
// operation through the service layer, and save the file back.
//
//	./fleet-service seed
//	./fleet-service schedule --vehicle 1 --driver 1 ...
//	./fleet-service cancel <booking-id> [--reason ...]
//	./fleet-service complete <booking-id> [--fuel ...]
//	./fleet-service maintenance add|complete ...
//	./fleet-service report vehicle|driver|bookings|system ...
//	./fleet-service status
//	./fleet-service export --out fleet.xlsx
package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fleet-service/internal/config"
	"fleet-service/internal/fleetfile"
	"fleet-service/internal/logger"
	"fleet-service/internal/model"
	"fleet-service/internal/seed"
	"fleet-service/internal/store"
)

var dataPath string

var rootCmd = &cobra.Command{
	Use:   "fleet-service",
	Short: "Fleet booking and maintenance management",
	Long: `Fleet booking and maintenance management over a plain text
data file. The tool keeps vehicles, drivers, routes, bookings and
maintenance records in a single file, schedules and cancels bookings
with vehicle and driver eligibility checks, tracks the maintenance
interval per vehicle, and renders text and Excel reports.`,
	SilenceUsage: true,
}

// Execute runs the rootCmd which parses CLI arguments and flags and
// runs the most specific sub-command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&dataPath, "data", "f", "", "data file path (overrides FLEET_DATA_FILE)",
	)
}

// app bundles the pieces every sub-command needs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	codec  *fleetfile.Codec
	path   string
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	path := cfg.DataFile
	if dataPath != "" {
		path = dataPath
	}

	return &app{
		cfg:    cfg,
		logger: log,
		codec:  fleetfile.New(log),
		path:   path,
	}, nil
}

// loadStore reads the data file, seeding a fresh sample fleet when the
// file does not exist yet.
func (a *app) loadStore() (*store.Store, error) {
	st, err := a.codec.Load(a.path)
	if err == nil {
		return st, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Info().Str("path", a.path).Msg("no data file, seeding sample fleet")
		return seed.Generate(), nil
	}
	return nil, err
}

func (a *app) saveStore(st *store.Store) error {
	return a.codec.Save(st, a.path)
}

func parseIDArg(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func parseDateFlag(value, flag string) (model.Date, error) {
	if value == "" {
		return model.Date{}, nil
	}
	var d model.Date
	if _, err := fmt.Sscanf(value, "%d-%d-%d", &d.Year, &d.Month, &d.Day); err != nil {
		return model.Date{}, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", flag, value)
	}
	return d, nil
}

func parseTimeFlag(value, flag string) (model.TimeOfDay, error) {
	if value == "" {
		return model.TimeOfDay{}, nil
	}
	var t model.TimeOfDay
	if _, err := fmt.Sscanf(value, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return model.TimeOfDay{}, fmt.Errorf("invalid --%s %q, want HH:MM", flag, value)
	}
	return t, nil
}
