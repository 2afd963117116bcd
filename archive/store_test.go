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
	"context"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ipmi "github.com/vmware/goipmi-sel"
	"github.com/vmware/goipmi-sel/sel"
	"go.uber.org/zap/zaptest"
)

// 2018-03-02 14:13:20 UTC
const testTimestamp = 1520000000

func testRecords() []sel.Record {
	return []sel.Record{
		&sel.StandardRecord{
			RecordID:     1,
			RecordType:   sel.RecordTypeSystem,
			Timestamp:    testTimestamp,
			GeneratorID:  0x20,
			EvMRev:       0x04,
			SensorType:   0x07,
			SensorNumber: 0x01,
			EventType:    sel.EventTypeSensorSpecific,
			EventData:    [3]uint8{0x01, 0xff, 0xff},
		},
		&sel.OEMRecord{RecordID: 2, RecordType: 0xef},
	}
}

func newTestStore(t *testing.T) *Store {
	db, err := Open(filepath.Join(t.TempDir(), "sel.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	s := NewStore(db)
	s.log = zaptest.NewLogger(t).Sugar()
	return s
}

func TestSaveAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.Save(ctx, "bmc1", nil, testRecords()...)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Added)
	assert.Equal(t, 0, b.Skipped)
	assert.NotEmpty(t, b.ID)

	// the same records read again are not duplicated
	again, err := s.Save(ctx, "bmc1", nil, testRecords()...)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Added)
	assert.Equal(t, 2, again.Skipped)
	assert.NotEqual(t, b.ID, again.ID)

	// but are archived separately for another host
	other, err := s.Save(ctx, "bmc2", nil, testRecords()[:1]...)
	require.NoError(t, err)
	assert.Equal(t, 1, other.Added)

	entries, err := s.List(ctx, "bmc1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Entry{
		BatchID:     b.ID,
		Host:        "bmc1",
		RecordID:    1,
		RecordType:  sel.RecordTypeSystem,
		OccurredAt:  time.Date(2018, 3, 2, 14, 13, 20, 0, time.UTC),
		Description: "Processor #0x01 | Thermal Trip",
		Raw:         entries[0].Raw,
	}, entries[0])
	assert.True(t, entries[1].OccurredAt.IsZero())
	assert.Equal(t, "OEM record ef", entries[1].Description)

	var got []sel.Record
	err = s.Records(ctx, "bmc1", func(rec sel.Record) error {
		got = append(got, rec)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, testRecords(), got)

	entries, err = s.List(ctx, "unknown")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveResolver(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := &sel.StandardRecord{
		RecordID:     7,
		RecordType:   sel.RecordTypeSystem,
		Timestamp:    testTimestamp,
		SensorType:   0xc1,
		SensorNumber: 0x05,
		EventType:    sel.EventTypeSensorSpecific,
		EventData:    [3]uint8{0x03, 0xff, 0xff},
	}

	_, err := s.Save(ctx, "kontron", sel.NewResolver(ipmi.OemKontron, nil), rec)
	require.NoError(t, err)

	entries, err := s.List(ctx, "kontron")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Board Reset #0x05 | Watchdog Reset", entries[0].Description)
}

func TestArchiveWalk(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	calls := 0
	b, err := s.Archive(ctx, "bmc1", nil, func(fn sel.RecordFunc) error {
		calls++
		for _, rec := range testRecords() {
			if err := fn(rec); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, b.Added)

	entries, err := s.List(ctx, "bmc1")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// a failed walk archives nothing
	down := errors.New("down")
	_, err = s.Archive(ctx, "bmc2", nil, func(fn sel.RecordFunc) error {
		if err := fn(testRecords()[0]); err != nil {
			return err
		}
		return down
	})
	assert.Equal(t, down, err)

	entries, err = s.List(ctx, "bmc2")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewStore(db)
	s.log = zaptest.NewLogger(t).Sugar()
	s.now = func() time.Time {
		return time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sel_batches")).
		WithArgs(sqlmock.AnyArg(), "bmc1", "2020-01-02 03:04:05").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO sel_records")).
		WithArgs(sqlmock.AnyArg(), "bmc1", 1, sel.RecordTypeSystem, "2018-03-02 14:13:20", "Processor #0x01 | Thermal Trip", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO sel_records")).
		WithArgs(sqlmock.AnyArg(), "bmc1", 2, 0xef, nil, "OEM record ef", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sel_batches SET added")).
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b, err := s.Save(context.Background(), "bmc1", nil, testRecords()...)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Added)
	assert.Equal(t, 1, b.Skipped)
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), b.SavedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewStore(db)
	s.log = zaptest.NewLogger(t).Sugar()

	down := errors.New("down")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sel_batches").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT OR IGNORE INTO sel_records").
		WillReturnError(down)
	mock.ExpectRollback()

	_, err = s.Save(context.Background(), "bmc1", nil, testRecords()...)
	assert.Equal(t, down, errors.Cause(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewStore(db)
	s.log = zaptest.NewLogger(t).Sugar()

	raw, err := testRecords()[0].MarshalBinary()
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"batch_id", "host", "record_id", "record_type", "occurred_at", "description", "raw"}).
		AddRow("b1", "bmc1", 1, 2, "2018-03-02 14:13:20", "Processor #0x01 | Thermal Trip", raw).
		AddRow("b1", "bmc1", 2, 0xef, nil, "OEM record ef", make([]byte, 16))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT batch_id, host, record_id")).
		WithArgs("bmc1").
		WillReturnRows(rows)

	entries, err := s.List(context.Background(), "bmc1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, time.Date(2018, 3, 2, 14, 13, 20, 0, time.UTC), entries[0].OccurredAt)
	assert.Equal(t, uint16(2), entries[1].RecordID)
	assert.True(t, entries[1].OccurredAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}
