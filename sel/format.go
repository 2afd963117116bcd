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
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	ipmi "github.com/vmware/goipmi-sel"
)

const (
	dateLayout = "01/02/2006"
	timeLayout = "15:04:05"
)

// Printer renders records to Writer, one line per record, or as verbose
// blocks.
type Printer struct {
	Writer   io.Writer
	Resolver *Resolver
	CSV      bool
	Extended bool // include threshold readings
	Location *time.Location
}

func (p *Printer) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

func (p *Printer) resolver() *Resolver {
	if p.Resolver == nil {
		return NewResolver(ipmi.OemUnknown, nil)
	}
	return p.Resolver
}

// Print writes the one line form of rec
func (p *Printer) Print(rec Record) error {
	d := p.resolver().Resolve(rec)
	fields := CompactFields(rec, d, p.location(), p.Extended)
	_, err := fmt.Fprintln(p.Writer, FormatCompact(fields, p.CSV))
	return err
}

// Save writes rec in the form read back by ReadSaved: the 16 record
// bytes in hex, followed by the one line form as a comment.
func (p *Printer) Save(rec Record) error {
	buf, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	d := p.resolver().Resolve(rec)
	comment := FormatCompact(CompactFields(rec, d, p.location(), p.Extended), false)
	_, err = fmt.Fprintf(p.Writer, "% x # %s\n", buf, strings.Map(printable, strings.TrimSpace(comment)))
	return err
}

// printable keeps descriptions, such as kernel panic text, on one line
func printable(r rune) rune {
	if r < ' ' || r == 0x7f {
		return ' '
	}
	return r
}

// PrintVerbose writes the multi-line form of rec
func (p *Printer) PrintVerbose(rec Record) error {
	r := p.resolver()
	d := r.Resolve(rec)
	_, err := fmt.Fprintln(p.Writer, FormatVerbose(rec, d, r, p.location()))
	return err
}

// PrintInfo writes the Get SEL Info and Allocation Info responses.
// alloc may be nil when the BMC does not support allocation info.
func (p *Printer) PrintInfo(info *ipmi.SELInfoResponse, alloc *ipmi.SELAllocationInfoResponse) error {
	_, err := io.WriteString(p.Writer, FormatInfo(info, alloc, p.location()))
	return err
}

// FormatCompact joins fields with " | ", or commas for CSV
func FormatCompact(fields []string, csv bool) string {
	if csv {
		return strings.Join(fields, ",")
	}
	return strings.Join(fields, " | ")
}

// CompactFields returns the columns of the one line form:
// id, date, time, sensor, event, direction and, when extended, the reading.
func CompactFields(rec Record, d Description, loc *time.Location, extended bool) []string {
	id := fmt.Sprintf("%4x", rec.ID())

	switch rec := rec.(type) {
	case *StandardRecord:
		date, clock := formatTimestamp(rec.Timestamp, loc)
		fields := []string{
			id,
			date,
			clock,
			strings.TrimSpace(d.SensorType + " " + d.Sensor),
			d.Event,
			direction(rec),
		}
		if extended && d.Reading != "" {
			fields = append(fields, d.Reading)
		}
		return fields
	case *OEMTimestampedRecord:
		date, clock := formatTimestamp(rec.Timestamp, loc)
		return []string{
			id,
			date,
			clock,
			d.Event,
			fmt.Sprintf("%06x", uint32(rec.ManufacturerID)),
			hex.EncodeToString(rec.Data[:]),
		}
	case *OEMRecord:
		if _, ok := rec.KernelPanic(); ok {
			return []string{id, d.Event}
		}
		return []string{
			id,
			d.Event,
			hex.EncodeToString(rec.Data[:]),
		}
	}

	return []string{id, d.String()}
}

// FormatVerbose returns the multi-line form of rec
func FormatVerbose(rec Record, d Description, r *Resolver, loc *time.Location) string {
	var buf bytes.Buffer

	line := func(name, format string, args ...interface{}) {
		fmt.Fprintf(&buf, " %-22s: %s\n", name, fmt.Sprintf(format, args...))
	}

	fmt.Fprintf(&buf, "SEL Record ID          : %04x\n", rec.ID())

	switch rec := rec.(type) {
	case *StandardRecord:
		date, clock := formatTimestamp(rec.Timestamp, loc)
		line("Record Type", "%02x", rec.RecordType)
		line("Timestamp", "%s %s", date, clock)
		line("Generator ID", "%04x", rec.GeneratorID)
		line("EvM Revision", "%02x", rec.EvMRev)
		line("Sensor Type", "%s", r.SensorTypeName(rec.SensorType))
		line("Sensor Number", "%02x", rec.SensorNumber)
		line("Event Type", "%s", eventTypeName(rec.EventType))
		if rec.Deassertion {
			line("Event Direction", "Deassertion Event")
		} else {
			line("Event Direction", "Assertion Event")
		}
		line("Event Data", "%s", hex.EncodeToString(rec.EventData[:]))
		line("Description", "%s", d.Event)
		if d.Reading != "" {
			line("Reading", "%s", d.Reading)
		}
	case *OEMTimestampedRecord:
		date, clock := formatTimestamp(rec.Timestamp, loc)
		line("Record Type", "%02x (OEM timestamped)", rec.RecordType)
		line("Timestamp", "%s %s", date, clock)
		line("Manufacturer ID", "%06x (%s)", uint32(rec.ManufacturerID), rec.ManufacturerID)
		line("OEM Defined", "%s", hex.EncodeToString(rec.Data[:]))
		line("Description", "%s", d.Event)
	case *OEMRecord:
		line("Record Type", "%02x (OEM non-timestamped)", rec.RecordType)
		line("OEM Defined", "%s", hex.EncodeToString(rec.Data[:]))
		line("Description", "%s", d.Event)
	}

	return buf.String()
}

// FormatInfo returns the sel info report
func FormatInfo(info *ipmi.SELInfoResponse, alloc *ipmi.SELAllocationInfoResponse, loc *time.Location) string {
	var buf bytes.Buffer

	line := func(name, format string, args ...interface{}) {
		fmt.Fprintf(&buf, "%-17s: %s\n", name, fmt.Sprintf(format, args...))
	}

	buf.WriteString("SEL Information\n")
	line("Version", "%d.%d", info.Version&0x0f, info.Version>>4)
	line("Entries", "%d", info.Entries)
	line("Free Space", "%d bytes", info.FreeSpace)
	used := int(info.Entries) * RecordSize
	if total := used + int(info.FreeSpace); total > 0 {
		line("Percent Used", "%d%%", used*100/total)
	}
	line("Last Add Time", "%s", infoTime(info.LastAddTime, loc))
	line("Last Del Time", "%s", infoTime(info.LastEraseTime, loc))
	line("Overflow", "%t", info.Operations&ipmi.SELOverflow != 0)

	var ops []string
	for _, op := range []struct {
		bit  uint8
		name string
	}{
		{ipmi.SELDeleteSupported, "'Delete'"},
		{ipmi.SELPartialAdd, "'Partial Add'"},
		{ipmi.SELReserveSupported, "'Reserve'"},
		{ipmi.SELAllocInfoSupported, "'Get Alloc Info'"},
	} {
		if info.Operations&op.bit != 0 {
			ops = append(ops, op.name)
		}
	}
	line("Supported Cmds", "%s", strings.Join(ops, " "))

	if alloc != nil {
		line("# of Alloc Units", "%d", alloc.PossibleUnits)
		line("Alloc Unit Size", "%d", alloc.UnitSize)
		line("# Free Units", "%d", alloc.FreeUnits)
		line("Largest Free Blk", "%d", alloc.LargestFree)
		line("Max Record Size", "%d", alloc.MaxRecordSize)
	}

	return buf.String()
}

func infoTime(ts uint32, loc *time.Location) string {
	if ts == 0 || ts == 0xffffffff {
		return "Not Available"
	}
	date, clock := formatTimestamp(ts, loc)
	return date + " " + clock
}

// formatTimestamp renders pre-init timestamps as "Pre-Init" and the raw
// count, never as a calendar date.
func formatTimestamp(ts uint32, loc *time.Location) (string, string) {
	t, ok := timestamp(ts)
	if !ok {
		return "Pre-Init", fmt.Sprintf("%010d", ts)
	}
	t = t.In(loc)
	return t.Format(dateLayout), t.Format(timeLayout)
}

func direction(rec *StandardRecord) string {
	if rec.Deassertion {
		return "Deasserted"
	}
	return "Asserted"
}

func eventTypeName(et uint8) string {
	switch {
	case et == EventTypeThreshold:
		return "Threshold"
	case et >= 0x02 && et <= 0x0c:
		return "Generic Discrete"
	case et == EventTypeSensorSpecific:
		return "Sensor-specific Discrete"
	case et >= 0x70 && et <= 0x7f:
		return "OEM"
	}
	return "Reserved"
}
