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

import (
	"encoding/binary"
	"time"
)

const (
	simSELCapacity  = 512
	simSELEntrySize = 16
)

type simSELEntry struct {
	id   uint16
	data [simSELEntrySize]byte
}

// simSEL is the in-memory event log behind the simulated storage commands
type simSEL struct {
	entries     []simSELEntry
	step        uint16
	lastID      uint16
	reservation uint16
	lastAdd     uint32
	lastErase   uint32
	clock       uint32
	erasing     bool

	faults   map[uint16]CompletionCode
	short    map[uint16]int
	zeroNext map[uint16]int
}

func newSimSEL() *simSEL {
	return &simSEL{
		step:     1,
		clock:    uint32(time.Now().Unix()),
		faults:   map[uint16]CompletionCode{},
		short:    map[uint16]int{},
		zeroNext: map[uint16]int{},
	}
}

type simSDR struct {
	records     [][]byte
	reservation uint16
}

func newSimSDR() *simSDR {
	return &simSDR{}
}

// AddSELEntry appends a 16 byte record to the simulated SEL, overwriting its
// record id with the next id in sequence. The assigned id is returned.
func (s *Simulator) AddSELEntry(record [16]byte) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.sel
	sel.lastID += sel.step
	if sel.lastID == RecordFirst || sel.lastID == RecordLast {
		sel.lastID = sel.step
	}
	binary.LittleEndian.PutUint16(record[0:], sel.lastID)
	sel.entries = append(sel.entries, simSELEntry{id: sel.lastID, data: record})
	sel.lastAdd = sel.clock
	// any write to the log cancels outstanding reservations
	sel.reservation++

	return sel.lastID
}

// SetSELIDStep sets the increment between record ids assigned by AddSELEntry
func (s *Simulator) SetSELIDStep(step uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if step == 0 {
		step = 1
	}
	s.sel.step = step
}

// SetSELEntryError makes Get SEL Entry for id fail with the given completion code
func (s *Simulator) SetSELEntryError(id uint16, cc CompletionCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.faults[id] = cc
}

// SetSELEntryShort makes Get SEL Entry for id return only n record bytes
func (s *Simulator) SetSELEntryShort(id uint16, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.short[id] = n
}

// SetSELZeroNext makes Get SEL Entry for id report a next record id of 0,
// the given number of times, before reporting the real next id.
func (s *Simulator) SetSELZeroNext(id uint16, times int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.zeroNext[id] = times
}

// CancelSELReservation invalidates the current SEL reservation, as a
// concurrent client would by reserving or writing the log.
func (s *Simulator) CancelSELReservation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.reservation++
}

// SELEntries returns the ids of the records currently in the simulated SEL
func (s *Simulator) SELEntries() []uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint16, 0, len(s.sel.entries))
	for _, e := range s.sel.entries {
		ids = append(ids, e.id)
	}
	return ids
}

// AddSDR appends a sensor data record, overwriting its record id.
// The assigned id is returned.
func (s *Simulator) AddSDR(record []byte) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uint16(len(s.sdr.records) + 1)
	buf := append([]byte(nil), record...)
	if len(buf) >= 2 {
		binary.LittleEndian.PutUint16(buf, id)
	}
	s.sdr.records = append(s.sdr.records, buf)
	return id
}

func (sel *simSEL) find(id uint16) int {
	switch id {
	case RecordFirst:
		if len(sel.entries) > 0 {
			return 0
		}
	case RecordLast:
		return len(sel.entries) - 1
	default:
		for i := range sel.entries {
			if sel.entries[i].id == id {
				return i
			}
		}
	}
	return -1
}

func (sel *simSEL) validReservation(id uint16) bool {
	return id == 0 || id == sel.reservation
}

func (s *Simulator) selInfo(*Message) Response {
	sel := s.sel
	return &SELInfoResponse{
		CompletionCode: CommandCompleted,
		Version:        0x51,
		Entries:        uint16(len(sel.entries)),
		FreeSpace:      uint16((simSELCapacity - len(sel.entries)) * simSELEntrySize),
		LastAddTime:    sel.lastAdd,
		LastEraseTime:  sel.lastErase,
		Operations:     SELDeleteSupported | SELReserveSupported | SELAllocInfoSupported,
	}
}

func (s *Simulator) selAllocationInfo(*Message) Response {
	free := uint16(simSELCapacity - len(s.sel.entries))
	return &SELAllocationInfoResponse{
		CompletionCode: CommandCompleted,
		PossibleUnits:  simSELCapacity,
		UnitSize:       simSELEntrySize,
		FreeUnits:      free,
		LargestFree:    free,
		MaxRecordSize:  1,
	}
}

func (s *Simulator) reserveSEL(*Message) Response {
	s.sel.reservation++
	if s.sel.reservation == 0 {
		s.sel.reservation++
	}
	return &ReserveSELResponse{
		CompletionCode: CommandCompleted,
		ReservationID:  s.sel.reservation,
	}
}

func (s *Simulator) getSELEntry(m *Message) Response {
	req := &GetSELEntryRequest{}
	if err := messageDataFromBytes(m.Data, req); err != nil {
		return ErrShortData
	}

	sel := s.sel
	if !sel.validReservation(req.ReservationID) {
		return ErrInvalidResv
	}
	if req.Offset >= simSELEntrySize {
		return ErrParamRange
	}
	if cc, ok := sel.faults[req.RecordID]; ok {
		return cc
	}

	i := sel.find(req.RecordID)
	if i < 0 {
		return ErrNoObj
	}
	entry := sel.entries[i]

	next := RecordLast
	if i+1 < len(sel.entries) {
		next = sel.entries[i+1].id
	}
	if n := sel.zeroNext[entry.id]; n > 0 {
		sel.zeroNext[entry.id] = n - 1
		next = RecordFirst
	}

	count := int(req.Length)
	if int(req.Offset)+count > simSELEntrySize {
		count = simSELEntrySize - int(req.Offset)
	}
	if n, ok := sel.short[entry.id]; ok && n < count {
		count = n
	}

	data := make([]byte, 2+count)
	binary.LittleEndian.PutUint16(data, next)
	copy(data[2:], entry.data[req.Offset:int(req.Offset)+count])

	return &GetSELEntryResponse{
		CompletionCode: CommandCompleted,
		Data:           data,
	}
}

func (s *Simulator) deleteSELEntry(m *Message) Response {
	req := &DeleteSELEntryRequest{}
	if err := messageDataFromBytes(m.Data, req); err != nil {
		return ErrShortData
	}

	sel := s.sel
	if !sel.validReservation(req.ReservationID) {
		return ErrInvalidResv
	}
	if sel.erasing {
		return ErrSELEraseInProgress
	}

	i := sel.find(req.RecordID)
	if i < 0 {
		return ErrNoObj
	}
	id := sel.entries[i].id
	sel.entries = append(sel.entries[:i], sel.entries[i+1:]...)
	sel.reservation++

	return &DeleteSELEntryResponse{
		CompletionCode: CommandCompleted,
		RecordID:       id,
	}
}

func (s *Simulator) clearSEL(m *Message) Response {
	req := &ClearSELRequest{}
	if err := messageDataFromBytes(m.Data, req); err != nil {
		return ErrShortData
	}

	sel := s.sel
	if !sel.validReservation(req.ReservationID) {
		return ErrInvalidResv
	}
	if req.CLR != [3]uint8{'C', 'L', 'R'} {
		return ErrInvalidData
	}

	switch req.Operation {
	case ClearSELInitiate:
		sel.entries = nil
		sel.lastErase = sel.clock
		// report erasure in progress until the first status poll
		sel.erasing = true
		return &ClearSELResponse{CompletionCode: CommandCompleted}
	case ClearSELGetStatus:
		progress := ClearSELCompleted
		if sel.erasing {
			progress = 0
			sel.erasing = false
		}
		return &ClearSELResponse{
			CompletionCode: CommandCompleted,
			Progress:       progress,
		}
	default:
		return ErrInvalidData
	}
}

func (s *Simulator) getSELTime(*Message) Response {
	return &GetSELTimeResponse{
		CompletionCode: CommandCompleted,
		Time:           s.sel.clock,
	}
}

func (s *Simulator) setSELTime(m *Message) Response {
	req := &SetSELTimeRequest{}
	if err := messageDataFromBytes(m.Data, req); err != nil {
		return ErrShortData
	}
	s.sel.clock = req.Time
	return &SetSELTimeResponse{CompletionCode: CommandCompleted}
}

func (s *Simulator) reserveSDR(*Message) Response {
	s.sdr.reservation++
	if s.sdr.reservation == 0 {
		s.sdr.reservation++
	}
	return &ReserveSDRRepositoryResponse{
		CompletionCode: CommandCompleted,
		ReservationID:  s.sdr.reservation,
	}
}

func (s *Simulator) getSDR(m *Message) Response {
	req := &GetSDRRequest{}
	if err := messageDataFromBytes(m.Data, req); err != nil {
		return ErrShortData
	}

	sdr := s.sdr
	if req.ReservationID != 0 && req.ReservationID != sdr.reservation {
		return ErrInvalidResv
	}
	if len(sdr.records) == 0 {
		return ErrNoObj
	}

	i := -1
	switch req.RecordID {
	case RecordFirst:
		i = 0
	case RecordLast:
		i = len(sdr.records) - 1
	default:
		if int(req.RecordID) <= len(sdr.records) {
			i = int(req.RecordID) - 1
		}
	}
	if i < 0 {
		return ErrNoObj
	}

	record := sdr.records[i]
	next := RecordLast
	if i+1 < len(sdr.records) {
		next = uint16(i + 2)
	}

	start := int(req.Offset)
	if start > len(record) {
		return ErrParamRange
	}
	end := len(record)
	if req.Length != 0xff && start+int(req.Length) < end {
		end = start + int(req.Length)
	}

	return &GetSDRResponse{
		CompletionCode: CommandCompleted,
		NextRecordID:   next,
		Data:           record[start:end],
	}
}
