// Package database handles destination database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// configure the connection the record emitter writes compiled catalog
// batches into.
//
// # Connect
//
// The Connect function establishes a connection based on the configured
// driver. MySQL is the production destination; the sqlite driver targets a
// local database file, which is convenient for inspecting a compile result
// without a running server.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
