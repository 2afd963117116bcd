/*
Copyright (c) 2014 VMware, Inc. All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package archive

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // database/sql driver "sqlite"
)

const driverName = "sqlite"

const schemaBatches = `
CREATE TABLE IF NOT EXISTS sel_batches (
    id TEXT PRIMARY KEY,
    host TEXT NOT NULL,
    saved_at TEXT NOT NULL,
    added INTEGER NOT NULL DEFAULT 0
);
`

// raw is unique per host, so the same record read twice is stored once
const schemaRecords = `
CREATE TABLE IF NOT EXISTS sel_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id TEXT NOT NULL REFERENCES sel_batches(id),
    host TEXT NOT NULL,
    record_id INTEGER NOT NULL,
    record_type INTEGER NOT NULL,
    occurred_at TEXT,
    description TEXT NOT NULL,
    raw BLOB NOT NULL,
    UNIQUE (host, raw)
);
`

// Open opens or creates the archive database at path
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite at %q", path)
	}

	// a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "set %s", pragma)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin schema transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{schemaBatches, schemaRecords} {
		if _, err := tx.Exec(stmt); err != nil {
			return errors.Wrapf(err, "apply schema statement %d", i+1)
		}
	}

	return errors.Wrap(tx.Commit(), "commit schema transaction")
}
