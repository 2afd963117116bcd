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
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// WriteRaw writes the 16 byte wire form of each record. Raw files have no
// header or framing, only records back to back.
func WriteRaw(w io.Writer, records ...Record) error {
	for _, rec := range records {
		buf, err := rec.MarshalBinary()
		if err != nil {
			return err
		}
		if _, err := w.Write(buf); err != nil {
			return errors.Wrapf(err, "write record %04x", rec.ID())
		}
	}
	return nil
}

// ReadRaw calls fn for each record read from r. A trailing partial record
// is a *RawFormatError carrying its offset.
func ReadRaw(r io.Reader, fn RecordFunc) error {
	buf := make([]byte, RecordSize)
	var offset int64

	for {
		n, err := io.ReadFull(r, buf)
		switch err {
		case nil:
		case io.EOF:
			return nil
		case io.ErrUnexpectedEOF:
			return &RawFormatError{Offset: offset, Length: n}
		default:
			return errors.Wrapf(err, "read record at offset %d", offset)
		}

		rec, err := UnmarshalRecord(buf)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
		offset += RecordSize
	}
}

// ReadRawFile reads a raw SEL file, rejecting a file with a trailing
// partial record before any record is passed to fn.
func ReadRawFile(name string, fn RecordFunc) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if rem := info.Size() % RecordSize; rem != 0 {
		return &RawFormatError{Offset: info.Size() - rem, Length: int(rem)}
	}

	return ReadRaw(f, fn)
}

// ReadSaved calls fn for each record of a file written by Printer.Save.
// Text following a '#' is a comment, blank lines are skipped.
func ReadSaved(r io.Reader, fn RecordFunc) error {
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.Join(strings.Fields(text), "")
		if text == "" {
			continue
		}

		buf, err := hex.DecodeString(text)
		if err != nil {
			return &SaveFormatError{Line: line, Err: err}
		}
		if len(buf) != RecordSize {
			return &SaveFormatError{Line: line, Err: errors.Errorf("%d bytes, expected %d", len(buf), RecordSize)}
		}

		rec, err := UnmarshalRecord(buf)
		if err != nil {
			return &SaveFormatError{Line: line, Err: err}
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "read save file")
}
