package config

import (
	"github.com/GoSettings-Admin/GoSettings-Admin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Seed      Seed
	Webserver Webserver
}

// Seed controls the initial population of the settings table.
type Seed struct {
	Enabled bool   // insert one example setting per field type when the table is empty
	Group   string // group the seeded settings are placed in
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
