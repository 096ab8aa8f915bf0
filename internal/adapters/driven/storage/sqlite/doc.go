// Package sqlite provides a SQLite-backed implementation of the
// ReportStore driven port. Reports are stored as JSON rows alongside
// a few indexed columns for listing, in a database under the textpipe
// data directory.
//
// The store uses modernc.org/sqlite (pure Go, no CGO) with WAL mode.
// Schema changes are applied through embedded migrations.
package sqlite
