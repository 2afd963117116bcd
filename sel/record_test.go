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

package sel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ipmi "github.com/vmware/goipmi-sel"
)

// 2018-03-02 14:13:20 UTC
const testTimestamp = 1520000000

func systemEvent(sensorType, sensorNumber, eventType uint8, data ...uint8) *StandardRecord {
	rec := &StandardRecord{
		RecordType:   RecordTypeSystem,
		Timestamp:    testTimestamp,
		GeneratorID:  0x0020,
		EvMRev:       0x04,
		SensorType:   sensorType,
		SensorNumber: sensorNumber,
		EventType:    eventType,
		EventData:    [3]uint8{0x00, 0xff, 0xff},
	}
	copy(rec.EventData[:], data)
	return rec
}

func rawRecord(t *testing.T, rec Record) [RecordSize]byte {
	var raw [RecordSize]byte
	buf, err := rec.MarshalBinary()
	require.NoError(t, err)
	copy(raw[:], buf)
	return raw
}

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		should string
		rec    Record
	}{
		{
			"standard assertion",
			systemEvent(0x07, 0x01, EventTypeSensorSpecific, 0x01),
		},
		{
			"standard deassertion with all fields",
			&StandardRecord{
				RecordID:     0xbeef,
				RecordType:   0x02,
				Timestamp:    0x01020304,
				GeneratorID:  0x0141,
				EvMRev:       0x04,
				SensorType:   0x01,
				SensorNumber: 0x30,
				EventType:    0x7f,
				Deassertion:  true,
				EventData:    [3]uint8{0x59, 0x37, 0x32},
			},
		},
		{
			"OEM timestamped",
			&OEMTimestampedRecord{
				RecordID:       0x0005,
				RecordType:     0xc1,
				Timestamp:      testTimestamp,
				ManufacturerID: ipmi.OemKontron,
				Data:           [6]uint8{1, 2, 3, 4, 5, 6},
			},
		},
		{
			"OEM non-timestamped",
			&OEMRecord{
				RecordID:   0x0001,
				RecordType: 0xef,
				Data:       [13]uint8{0x12, 0x34, 0x56, 0x78, 0xab, 0xcd, 0x00, 0x01, 0x07, 0x01, 0x04, 0xff, 0xff},
			},
		},
		{
			"kernel panic",
			&OEMRecord{
				RecordID:   0x0002,
				RecordType: RecordTypeKernelPanic,
				Data:       [13]uint8{0, 0, 'O', 'o', 'p', 's', 0},
			},
		},
	}

	for _, test := range tests {
		buf, err := test.rec.MarshalBinary()
		assert.NoError(t, err, test.should)
		assert.Len(t, buf, RecordSize, test.should)

		rec, err := UnmarshalRecord(buf)
		assert.NoError(t, err, test.should)
		assert.Equal(t, test.rec, rec, test.should)

		again, err := rec.MarshalBinary()
		assert.NoError(t, err, test.should)
		assert.Equal(t, buf, again, test.should)
	}
}

func TestRecordTypeVariants(t *testing.T) {
	for typ := 0; typ <= 0xff; typ++ {
		buf := make([]byte, RecordSize)
		buf[0] = 0x01
		buf[2] = uint8(typ)
		for i := 3; i < RecordSize; i++ {
			buf[i] = uint8(i * typ)
		}

		rec, err := UnmarshalRecord(buf)
		require.NoError(t, err)
		assert.Equal(t, uint8(typ), rec.Type())
		assert.Equal(t, uint16(1), rec.ID())

		switch {
		case typ < 0xc0:
			assert.IsType(t, &StandardRecord{}, rec)
		case typ < 0xe0:
			assert.IsType(t, &OEMTimestampedRecord{}, rec)
		default:
			assert.IsType(t, &OEMRecord{}, rec)
		}

		again, err := rec.MarshalBinary()
		assert.NoError(t, err)
		assert.Equal(t, buf, again, "type %02x", typ)
	}
}

func TestDecodeEntryOEMRecord(t *testing.T) {
	wire := []byte{
		0x02, 0x00, 0x01, 0x00, 0xef, 0x12, 0x34, 0x56, 0x78,
		0xab, 0xcd, 0x00, 0x01, 0x07, 0x01, 0x04, 0xff, 0xff,
	}

	next, rec, err := DecodeEntry(wire)
	assert.NoError(t, err)
	assert.Equal(t, uint16(2), next)
	assert.Equal(t, uint16(1), rec.ID())

	oem, ok := rec.(*OEMRecord)
	assert.True(t, ok)
	assert.Equal(t, uint8(0xef), oem.RecordType)

	r := NewResolver(ipmi.OemKontron, &panicSensors{t})
	assert.Equal(t, "OEM record ef", r.Resolve(rec).String())

	again, err := EncodeEntry(next, rec)
	assert.NoError(t, err)
	assert.Equal(t, wire, again)
}

func TestDecodeEntryTruncated(t *testing.T) {
	next, rec, err := DecodeEntry([]byte{0x05, 0x00, 0x04, 0x00, 0x02, 0x00})
	assert.Equal(t, uint16(5), next)
	assert.Nil(t, rec)
	assert.Equal(t, &TruncatedRecordError{Length: 4}, err)

	_, _, err = DecodeEntry([]byte{0x05})
	assert.IsType(t, &TruncatedRecordError{}, err)

	_, err = UnmarshalRecord(make([]byte, 15))
	assert.Equal(t, &TruncatedRecordError{Length: 15}, err)
}

func TestRecordFields(t *testing.T) {
	rec := systemEvent(0x01, 0x30, EventTypeThreshold, 0x59, 0x37, 0x32)
	rec.GeneratorID = 0x0241

	assert.Equal(t, uint8(0x09), rec.Offset())
	assert.True(t, rec.Data2Specified())
	assert.True(t, rec.Data3Specified())
	assert.Equal(t, uint8(0x41), rec.Owner())
	assert.Equal(t, uint8(0x02), rec.LUN())

	ts, ok := rec.Time()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2018, 3, 2, 14, 13, 20, 0, time.UTC), ts.UTC())

	rec.Timestamp = 0x1fffffff
	_, ok = rec.Time()
	assert.False(t, ok)

	panicRec := &OEMRecord{RecordType: RecordTypeKernelPanic}
	copy(panicRec.Data[2:], "abcdefghijk")
	text, ok := panicRec.KernelPanic()
	assert.True(t, ok)
	assert.Equal(t, "abcdefghijk", text)

	_, ok = (&OEMRecord{RecordType: 0xe0}).KernelPanic()
	assert.False(t, ok)
}
