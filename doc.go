// Package main provides the entry point for the dynamic settings admin service.
// It initializes and runs a web server using the Fiber framework that lets
// administrators define typed configuration entries at runtime, ordered into
// groups, through a REST API. The application uses gorm for data persistence
// and exposes a registry accessor for the rest of the application to read
// configuration values.
package main
