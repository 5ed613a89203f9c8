// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the catalog, calculator, handlers, routers,
// the terminal prompt and the HTTP server, keeping the main package focused on
// CLI parsing and orchestration.
package application
