// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens the catalog store with one of three drivers: mysql (the
// production default), postgres, or sqlite (local runs and tests).
//
// # Connect
//
// Connect builds the DSN for the configured driver, applies pool settings and pings
// the database within TimeoutSeconds. sqlite connections are limited to one open
// connection so that ":memory:" databases behave as a single database, and foreign
// keys are switched on so configuration rows cascade with their offer.
//
// # Schema Inspection
//
// GetTableColumns returns the column list of a table in a dialect-neutral shape. The
// integrity feature compares it with the columns the catalog models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "offer")
package database
