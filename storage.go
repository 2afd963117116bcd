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

package ipmi

import "encoding/binary"

// SEL Operation Support bits of the Get SEL Info response
const (
	SELOverflow           = 0x80
	SELDeleteSupported    = 0x08
	SELPartialAdd         = 0x04
	SELReserveSupported   = 0x02
	SELAllocInfoSupported = 0x01
)

// Record ids with special meaning to Get SEL Entry and Get SDR
const (
	RecordFirst = uint16(0x0000)
	RecordLast  = uint16(0xffff)
)

// Erasure progress values of the Clear SEL command
const (
	ClearSELGetStatus = uint8(0x00)
	ClearSELInitiate  = uint8(0xaa)
	ClearSELCompleted = uint8(0x01)
)

// SELInfoRequest per section 31.2
type SELInfoRequest struct{}

// SELInfoResponse per section 31.2
type SELInfoResponse struct {
	CompletionCode
	Version       uint8
	Entries       uint16
	FreeSpace     uint16
	LastAddTime   uint32
	LastEraseTime uint32
	Operations    uint8
}

// SELAllocationInfoRequest per section 31.3
type SELAllocationInfoRequest struct{}

// SELAllocationInfoResponse per section 31.3
type SELAllocationInfoResponse struct {
	CompletionCode
	PossibleUnits uint16
	UnitSize      uint16
	FreeUnits     uint16
	LargestFree   uint16
	MaxRecordSize uint8
}

// ReserveSELRequest per section 31.4
type ReserveSELRequest struct{}

// ReserveSELResponse per section 31.4
type ReserveSELResponse struct {
	CompletionCode
	ReservationID uint16
}

// GetSELEntryRequest per section 31.5
type GetSELEntryRequest struct {
	ReservationID uint16
	RecordID      uint16
	Offset        uint8
	Length        uint8
}

// GetSELEntryResponse per section 31.5.
// Data holds the next record id followed by the record bytes, so that
// callers can tell a short record apart from a missing one.
type GetSELEntryResponse struct {
	CompletionCode
	Data []byte
}

// MarshalBinary implementation to handle variable length Data
func (r *GetSELEntryResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1+len(r.Data))
	buf[0] = byte(r.CompletionCode)
	copy(buf[1:], r.Data)
	return buf, nil
}

// UnmarshalBinary implementation to handle variable length Data
func (r *GetSELEntryResponse) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return ErrShortPacket
	}
	r.CompletionCode = CompletionCode(buf[0])
	r.Data = append([]byte(nil), buf[1:]...)
	return nil
}

// NextRecordID returns the next record id, if the response carried one
func (r *GetSELEntryResponse) NextRecordID() (uint16, bool) {
	if len(r.Data) < 2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(r.Data), true
}

// Record returns the record bytes following the next record id
func (r *GetSELEntryResponse) Record() []byte {
	if len(r.Data) < 2 {
		return nil
	}
	return r.Data[2:]
}

// DeleteSELEntryRequest per section 31.8
type DeleteSELEntryRequest struct {
	ReservationID uint16
	RecordID      uint16
}

// DeleteSELEntryResponse per section 31.8
type DeleteSELEntryResponse struct {
	CompletionCode
	RecordID uint16
}

// ClearSELRequest per section 31.9
type ClearSELRequest struct {
	ReservationID uint16
	CLR           [3]uint8
	Operation     uint8
}

// NewClearSELRequest fills in the 'CLR' signature for the given operation
func NewClearSELRequest(reservation uint16, op uint8) *ClearSELRequest {
	return &ClearSELRequest{
		ReservationID: reservation,
		CLR:           [3]uint8{'C', 'L', 'R'},
		Operation:     op,
	}
}

// ClearSELResponse per section 31.9
type ClearSELResponse struct {
	CompletionCode
	Progress uint8
}

// Completed reports whether erasure has finished
func (r *ClearSELResponse) Completed() bool {
	return r.Progress&0x0f == ClearSELCompleted
}

// GetSELTimeRequest per section 31.10
type GetSELTimeRequest struct{}

// GetSELTimeResponse per section 31.10
type GetSELTimeResponse struct {
	CompletionCode
	Time uint32
}

// SetSELTimeRequest per section 31.11
type SetSELTimeRequest struct {
	Time uint32
}

// SetSELTimeResponse per section 31.11
type SetSELTimeResponse struct {
	CompletionCode
}

// ReserveSDRRepositoryRequest per section 33.11
type ReserveSDRRepositoryRequest struct{}

// ReserveSDRRepositoryResponse per section 33.11
type ReserveSDRRepositoryResponse struct {
	CompletionCode
	ReservationID uint16
}

// GetSDRRequest per section 33.12
type GetSDRRequest struct {
	ReservationID uint16
	RecordID      uint16
	Offset        uint8
	Length        uint8
}

// GetSDRResponse per section 33.12
type GetSDRResponse struct {
	CompletionCode
	NextRecordID uint16
	Data         []byte
}

// MarshalBinary implementation to handle variable length Data
func (r *GetSDRResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3+len(r.Data))
	buf[0] = byte(r.CompletionCode)
	binary.LittleEndian.PutUint16(buf[1:], r.NextRecordID)
	copy(buf[3:], r.Data)
	return buf, nil
}

// UnmarshalBinary implementation to handle variable length Data
func (r *GetSDRResponse) UnmarshalBinary(buf []byte) error {
	if len(buf) < 3 {
		return ErrShortPacket
	}
	r.CompletionCode = CompletionCode(buf[0])
	r.NextRecordID = binary.LittleEndian.Uint16(buf[1:])
	r.Data = append([]byte(nil), buf[3:]...)
	return nil
}
