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

// Package archive keeps SEL records read from BMCs in a SQLite database,
// so that a log can be cleared without losing its history.
package archive

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	ipmi "github.com/vmware/goipmi-sel"
	"github.com/vmware/goipmi-sel/sel"
	"go.uber.org/zap"
)

const timeLayout = "2006-01-02 15:04:05"

// Batch is the result of one Save
type Batch struct {
	ID      string
	Host    string
	SavedAt time.Time
	Added   int // records not already in the archive
	Skipped int
}

// Entry is an archived record
type Entry struct {
	BatchID     string
	Host        string
	RecordID    uint16
	RecordType  uint8
	OccurredAt  time.Time // zero for pre-init and OEM records
	Description string
	Raw         []byte
}

// Record decodes the archived record bytes
func (e *Entry) Record() (sel.Record, error) {
	return sel.UnmarshalRecord(e.Raw)
}

// Store of archived records
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
	now func() time.Time
}

// NewStore creates a Store on db, as returned by Open
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:  db,
		log: zap.S(),
		now: time.Now,
	}
}

// Save adds records read from host in a single transaction. Records
// already archived for the host are skipped. resolver may be nil.
func (s *Store) Save(ctx context.Context, host string, resolver *sel.Resolver, records ...sel.Record) (*Batch, error) {
	return s.Archive(ctx, host, resolver, func(fn sel.RecordFunc) error {
		for _, rec := range records {
			if err := fn(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// Archive is Save for a log read as a stream: walk is called once, and
// each record it passes to its callback is added as it arrives. The batch
// is committed only when walk returns nil.
func (s *Store) Archive(ctx context.Context, host string, resolver *sel.Resolver, walk func(sel.RecordFunc) error) (*Batch, error) {
	if resolver == nil {
		resolver = sel.NewResolver(ipmi.OemUnknown, nil)
	}

	b := &Batch{
		ID:      uuid.NewString(),
		Host:    host,
		SavedAt: s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sel_batches (id, host, saved_at)
		VALUES (?, ?, ?)
	`, b.ID, host, b.SavedAt.Format(timeLayout))
	if err != nil {
		return nil, errors.Wrap(err, "insert batch")
	}

	err = walk(func(rec sel.Record) error {
		added, err := insertRecord(ctx, tx, b, resolver, rec)
		if err != nil {
			return err
		}
		if added {
			b.Added++
		} else {
			b.Skipped++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE sel_batches SET added = ? WHERE id = ?`, b.Added, b.ID)
	if err != nil {
		return nil, errors.Wrap(err, "update batch")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}

	s.log.Debugw("archived records", "host", host, "batch", b.ID, "added", b.Added, "skipped", b.Skipped)

	return b, nil
}

// insertRecord adds rec to batch b, reporting false when the host's
// archive already held it
func insertRecord(ctx context.Context, tx *sql.Tx, b *Batch, resolver *sel.Resolver, rec sel.Record) (bool, error) {
	raw, err := rec.MarshalBinary()
	if err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO sel_records (batch_id, host, record_id, record_type, occurred_at, description, raw)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.Host, rec.ID(), rec.Type(), occurredAt(rec), resolver.Resolve(rec).String(), raw)
	if err != nil {
		return false, errors.Wrapf(err, "insert record %04x", rec.ID())
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// occurredAt returns the record time as stored, nil when it has none
func occurredAt(rec sel.Record) interface{} {
	var t time.Time
	var ok bool

	switch rec := rec.(type) {
	case *sel.StandardRecord:
		t, ok = rec.Time()
	case *sel.OEMTimestampedRecord:
		t, ok = rec.Time()
	}
	if !ok {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

// List returns the records archived for host, oldest first
func (s *Store) List(ctx context.Context, host string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT batch_id, host, record_id, record_type, occurred_at, description, raw
		FROM sel_records
		WHERE host = ?
		ORDER BY id ASC
	`, host)
	if err != nil {
		return nil, errors.Wrap(err, "query records")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var occurred sql.NullString
		if err := rows.Scan(&e.BatchID, &e.Host, &e.RecordID, &e.RecordType, &occurred, &e.Description, &e.Raw); err != nil {
			return nil, errors.Wrap(err, "scan record")
		}
		if occurred.Valid && occurred.String != "" {
			t, err := time.Parse(timeLayout, occurred.String)
			if err != nil {
				s.log.Warnw("invalid archived timestamp", "host", host, "id", e.RecordID, "err", err)
			}
			e.OccurredAt = t
		}
		entries = append(entries, e)
	}

	return entries, errors.Wrap(rows.Err(), "read records")
}

// Records calls fn with each record archived for host, oldest first
func (s *Store) Records(ctx context.Context, host string, fn sel.RecordFunc) error {
	entries, err := s.List(ctx, host)
	if err != nil {
		return err
	}

	for i := range entries {
		rec, err := entries[i].Record()
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}
