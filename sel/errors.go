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
	"fmt"

	"github.com/pkg/errors"
	ipmi "github.com/vmware/goipmi-sel"
)

// ErrStaleReservation is returned when the BMC canceled our reservation,
// meaning another client modified or reserved the log during the walk.
// The command should be retried as a whole.
var ErrStaleReservation = errors.New("sel: reservation canceled by another client, retry the command")

// TransportError is returned when a request got no usable response
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sel: %s: %s", e.Op, e.Err)
}

// Cause returns the underlying transport error
func (e *TransportError) Cause() error {
	return e.Err
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RecordError is returned when the BMC rejected the request for a record
type RecordError struct {
	ID   uint16
	Code ipmi.CompletionCode
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("sel: record %04x: %s", e.ID, e.Code)
}

// TruncatedRecordError is returned when fewer than 16 record bytes were received
type TruncatedRecordError struct {
	Length int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("sel: truncated record, %d of %d bytes", e.Length, RecordSize)
}

// RawFormatError is returned when a raw SEL file ends with a partial record
type RawFormatError struct {
	Offset int64
	Length int
}

func (e *RawFormatError) Error() string {
	return fmt.Sprintf("sel: partial record of %d bytes at offset %d", e.Length, e.Offset)
}

// SaveFormatError is returned for a line of a save file that does not
// hold a record
type SaveFormatError struct {
	Line int
	Err  error
}

func (e *SaveFormatError) Error() string {
	return fmt.Sprintf("sel: save file line %d: %s", e.Line, e.Err)
}

// Cause returns the parse error
func (e *SaveFormatError) Cause() error {
	return e.Err
}

// commandError classifies the error from a storage command. Completion
// codes are returned as is, except for a canceled reservation; anything
// else is a transport failure.
func commandError(op string, err error) error {
	cc, ok := errors.Cause(err).(ipmi.CompletionCode)
	if !ok {
		return &TransportError{Op: op, Err: err}
	}
	if cc == ipmi.ErrInvalidResv {
		return ErrStaleReservation
	}
	return cc
}
