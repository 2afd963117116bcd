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
	"bytes"
	"encoding"
	"encoding/binary"
	"time"

	ipmi "github.com/vmware/goipmi-sel"
)

// RecordSize of every SEL entry
const RecordSize = 16

// Record type ranges per section 32
const (
	RecordTypeSystem          = 0x02
	RecordTypeOEMTimestamped  = 0xc0
	RecordTypeOEM             = 0xe0
	RecordTypeKernelPanic     = 0xf0
	preInitTimestamp          = 0x20000000
	kernelPanicOffset         = 2
	kernelPanicLength         = 11
	eventDirectionDeassertion = 0x80
)

// Record is one decoded SEL entry, one of *StandardRecord,
// *OEMTimestampedRecord or *OEMRecord.
type Record interface {
	encoding.BinaryMarshaler
	ID() uint16
	Type() uint8
	record()
}

// StandardRecord is a system event record, type < 0xc0
type StandardRecord struct {
	RecordID     uint16
	RecordType   uint8
	Timestamp    uint32
	GeneratorID  uint16
	EvMRev       uint8
	SensorType   uint8
	SensorNumber uint8
	EventType    uint8
	Deassertion  bool
	EventData    [3]uint8
}

// OEMTimestampedRecord is an OEM record with a timestamp, type 0xc0..0xdf
type OEMTimestampedRecord struct {
	RecordID       uint16
	RecordType     uint8
	Timestamp      uint32
	ManufacturerID ipmi.OemID
	Data           [6]uint8
}

// OEMRecord is an OEM record without a timestamp, type 0xe0..0xff
type OEMRecord struct {
	RecordID   uint16
	RecordType uint8
	Data       [13]uint8
}

// ID of the record
func (r *StandardRecord) ID() uint16 { return r.RecordID }

// ID of the record
func (r *OEMTimestampedRecord) ID() uint16 { return r.RecordID }

// ID of the record
func (r *OEMRecord) ID() uint16 { return r.RecordID }

// Type of the record
func (r *StandardRecord) Type() uint8 { return r.RecordType }

// Type of the record
func (r *OEMTimestampedRecord) Type() uint8 { return r.RecordType }

// Type of the record
func (r *OEMRecord) Type() uint8 { return r.RecordType }

func (*StandardRecord) record()       {}
func (*OEMTimestampedRecord) record() {}
func (*OEMRecord) record()            {}

// Offset returns the event offset from event data 1
func (r *StandardRecord) Offset() uint8 {
	return r.EventData[0] & 0x0f
}

// Data2Specified reports whether event data 2 carries an extension code or reading
func (r *StandardRecord) Data2Specified() bool {
	return r.EventData[0]&0xc0 != 0
}

// Data3Specified reports whether event data 3 carries an extension code or threshold
func (r *StandardRecord) Data3Specified() bool {
	return r.EventData[0]&0x30 != 0
}

// Owner returns the slave address or software id of the event generator
func (r *StandardRecord) Owner() uint8 {
	return uint8(r.GeneratorID)
}

// LUN returns the sensor owner LUN of the event generator
func (r *StandardRecord) LUN() uint8 {
	return uint8(r.GeneratorID>>8) & 0x03
}

// Time of the event, ok is false for pre-init timestamps
func (r *StandardRecord) Time() (time.Time, bool) {
	return timestamp(r.Timestamp)
}

// Time of the event, ok is false for pre-init timestamps
func (r *OEMTimestampedRecord) Time() (time.Time, bool) {
	return timestamp(r.Timestamp)
}

// KernelPanic returns the panic text of a 0xf0 record
func (r *OEMRecord) KernelPanic() (string, bool) {
	if r.RecordType != RecordTypeKernelPanic {
		return "", false
	}
	text := r.Data[kernelPanicOffset : kernelPanicOffset+kernelPanicLength]
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return string(text), true
}

func timestamp(ts uint32) (time.Time, bool) {
	if ts < preInitTimestamp {
		return time.Time{}, false
	}
	return time.Unix(int64(ts), 0), true
}

// MarshalBinary encodes the record as the 16 bytes returned by Get SEL Entry
func (r *StandardRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint16(buf[0:], r.RecordID)
	buf[2] = r.RecordType
	binary.LittleEndian.PutUint32(buf[3:], r.Timestamp)
	binary.LittleEndian.PutUint16(buf[7:], r.GeneratorID)
	buf[9] = r.EvMRev
	buf[10] = r.SensorType
	buf[11] = r.SensorNumber
	buf[12] = r.EventType & 0x7f
	if r.Deassertion {
		buf[12] |= eventDirectionDeassertion
	}
	copy(buf[13:], r.EventData[:])
	return buf, nil
}

// UnmarshalBinary decodes the 16 bytes returned by Get SEL Entry
func (r *StandardRecord) UnmarshalBinary(buf []byte) error {
	if len(buf) < RecordSize {
		return &TruncatedRecordError{Length: len(buf)}
	}
	r.RecordID = binary.LittleEndian.Uint16(buf[0:])
	r.RecordType = buf[2]
	r.Timestamp = binary.LittleEndian.Uint32(buf[3:])
	r.GeneratorID = binary.LittleEndian.Uint16(buf[7:])
	r.EvMRev = buf[9]
	r.SensorType = buf[10]
	r.SensorNumber = buf[11]
	r.EventType = buf[12] & 0x7f
	r.Deassertion = buf[12]&eventDirectionDeassertion != 0
	copy(r.EventData[:], buf[13:16])
	return nil
}

// MarshalBinary encodes the record as the 16 bytes returned by Get SEL Entry
func (r *OEMTimestampedRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint16(buf[0:], r.RecordID)
	buf[2] = r.RecordType
	binary.LittleEndian.PutUint32(buf[3:], r.Timestamp)
	r.ManufacturerID.PutBytes(buf[7:])
	copy(buf[10:], r.Data[:])
	return buf, nil
}

// UnmarshalBinary decodes the 16 bytes returned by Get SEL Entry
func (r *OEMTimestampedRecord) UnmarshalBinary(buf []byte) error {
	if len(buf) < RecordSize {
		return &TruncatedRecordError{Length: len(buf)}
	}
	r.RecordID = binary.LittleEndian.Uint16(buf[0:])
	r.RecordType = buf[2]
	r.Timestamp = binary.LittleEndian.Uint32(buf[3:])
	r.ManufacturerID = ipmi.OemIDFromBytes(buf[7:])
	copy(r.Data[:], buf[10:16])
	return nil
}

// MarshalBinary encodes the record as the 16 bytes returned by Get SEL Entry
func (r *OEMRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint16(buf[0:], r.RecordID)
	buf[2] = r.RecordType
	copy(buf[3:], r.Data[:])
	return buf, nil
}

// UnmarshalBinary decodes the 16 bytes returned by Get SEL Entry
func (r *OEMRecord) UnmarshalBinary(buf []byte) error {
	if len(buf) < RecordSize {
		return &TruncatedRecordError{Length: len(buf)}
	}
	r.RecordID = binary.LittleEndian.Uint16(buf[0:])
	r.RecordType = buf[2]
	copy(r.Data[:], buf[3:16])
	return nil
}

// UnmarshalRecord decodes a 16 byte record into the variant its type selects
func UnmarshalRecord(buf []byte) (Record, error) {
	if len(buf) < RecordSize {
		return nil, &TruncatedRecordError{Length: len(buf)}
	}

	var r interface {
		Record
		encoding.BinaryUnmarshaler
	}
	switch t := buf[2]; {
	case t < RecordTypeOEMTimestamped:
		r = &StandardRecord{}
	case t < RecordTypeOEM:
		r = &OEMTimestampedRecord{}
	default:
		r = &OEMRecord{}
	}

	if err := r.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return r, nil
}

// DecodeEntry decodes a Get SEL Entry response payload: the next record id
// followed by the record. When the record is truncated, next is still
// returned if present, so a walk can skip the record and continue.
func DecodeEntry(data []byte) (next uint16, r Record, err error) {
	res := ipmi.GetSELEntryResponse{Data: data}
	next, ok := res.NextRecordID()
	if !ok {
		return 0, nil, &TruncatedRecordError{Length: 0}
	}
	r, err = UnmarshalRecord(res.Record())
	return next, r, err
}

// EncodeEntry is the inverse of DecodeEntry
func EncodeEntry(next uint16, r Record) ([]byte, error) {
	buf, err := r.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data := make([]byte, 2, 2+len(buf))
	binary.LittleEndian.PutUint16(data, next)
	return append(data, buf...), nil
}
