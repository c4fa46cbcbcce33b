package db

import (
	"database/sql"

	// sqlite driver.
	_ "github.com/mattn/go-sqlite3"
)

var createReceiptsTableStatement = `
CREATE TABLE IF NOT EXISTS receipts
(
 id INTEGER PRIMARY KEY,
 store_name TEXT NOT NULL,
 purchase_date INTEGER NOT NULL,
 total_amount REAL NOT NULL,
 tax_amount REAL NOT NULL DEFAULT 0,
 source_type TEXT NOT NULL,
 source_file TEXT,
 raw_text TEXT,
 created_at INTEGER NOT NULL
) STRICT;
`

var createItemsTableStatement = `
CREATE TABLE IF NOT EXISTS items
(
 id INTEGER PRIMARY KEY,
 receipt_id INTEGER NOT NULL REFERENCES receipts(id) ON DELETE CASCADE,
 name TEXT NOT NULL,
 quantity REAL NOT NULL DEFAULT 1,
 unit_price REAL NOT NULL,
 total_price REAL NOT NULL,
 category TEXT NOT NULL
) STRICT;
`

func GetDB(dbsource string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbsource)
	if err != nil {
		return nil, err
	}

	// Item rows must go away with their receipt.
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	return db, nil
}

func CreateReceiptsTable(db *sql.DB) error {
	statement, err := db.Prepare(createReceiptsTableStatement)
	if err != nil {
		return err
	}

	_, err = statement.Exec()

	return err
}

func CreateItemsTable(db *sql.DB) error {
	statement, err := db.Prepare(createItemsTableStatement)
	if err != nil {
		return err
	}

	_, err = statement.Exec()

	return err
}

func CreateTables(db *sql.DB) error {
	if err := CreateReceiptsTable(db); err != nil {
		return err
	}

	return CreateItemsTable(db)
}

func DropTables(db *sql.DB) error {
	if _, err := db.Exec("DROP TABLE IF EXISTS items;"); err != nil {
		return err
	}

	_, err := db.Exec("DROP TABLE IF EXISTS receipts;")

	return err
}
