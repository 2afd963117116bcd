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
	"strconv"
	"strings"

	ipmi "github.com/vmware/goipmi-sel"
)

// SensorSource provides sensor names and reading conversion, typically
// from the SDR repository.
type SensorSource interface {
	SensorName(owner, lun, number uint8) (string, bool)
	Reading(owner, lun, number, raw uint8) (value float64, units string, ok bool)
}

// Description is the human readable form of a record
type Description struct {
	SensorType string
	Sensor     string
	Event      string
	Reading    string
}

func (d Description) String() string {
	var parts []string
	if head := strings.TrimSpace(d.SensorType + " " + d.Sensor); head != "" {
		parts = append(parts, head)
	}
	parts = append(parts, d.Event)
	if d.Reading != "" {
		parts = append(parts, d.Reading)
	}
	return strings.Join(parts, " | ")
}

// Resolver turns records into descriptions. It is constructed once per
// BMC, with the OEM table chosen by the BMC's manufacturer id.
type Resolver struct {
	oem     Table
	sensors SensorSource
}

// NewResolver for a BMC with the given IANA manufacturer id.
// sensors may be nil, in which case sensors are shown by number and
// readings as raw values.
func NewResolver(iana ipmi.OemID, sensors SensorSource) *Resolver {
	return &Resolver{
		oem:     OEMTable(iana),
		sensors: sensors,
	}
}

// Resolve never fails; codes without a table row resolve to placeholders
// that still carry the numeric codes.
func (r *Resolver) Resolve(rec Record) Description {
	switch rec := rec.(type) {
	case *StandardRecord:
		return r.standard(rec)
	case *OEMRecord:
		if text, ok := rec.KernelPanic(); ok {
			return Description{Event: "Linux kernel panic: " + text}
		}
	}
	return Description{Event: fmt.Sprintf("OEM record %02x", rec.Type())}
}

// SensorTypeName of a record, using the OEM table selected for this BMC
func (r *Resolver) SensorTypeName(code uint8) string {
	return SensorTypeName(code, r.oem)
}

// SensorName of the record's sensor, "#0x.." when unknown
func (r *Resolver) SensorName(rec *StandardRecord) string {
	if r.sensors != nil {
		if name, ok := r.sensors.SensorName(rec.Owner(), rec.LUN(), rec.SensorNumber); ok {
			return name
		}
	}
	return fmt.Sprintf("#0x%02x", rec.SensorNumber)
}

func (r *Resolver) standard(rec *StandardRecord) Description {
	d := Description{
		SensorType: r.SensorTypeName(rec.SensorType),
		Sensor:     r.SensorName(rec),
		Event:      r.event(rec),
	}
	if rec.EventType == EventTypeThreshold {
		d.Reading = r.thresholdReading(rec)
	}
	return d
}

func (r *Resolver) event(rec *StandardRecord) string {
	offset := rec.Offset()
	data := rec.EventData[1]
	specified := rec.Data2Specified()

	var table Table
	code := rec.EventType

	switch et := rec.EventType; {
	case et == EventTypeThreshold, et >= 0x02 && et <= 0x0c:
		table = GenericEventTypes
	case et == EventTypeSensorSpecific:
		code = rec.SensorType
		table = SensorSpecificEventTypes
		if code >= 0xc0 {
			table = r.oem
		}
	case et >= 0x70 && et <= 0x7f:
		if e, ok := r.oem.Lookup(et, offset, data, specified); ok {
			return e.Desc
		}
		code = rec.SensorType
		table = r.oem
	default:
		return fmt.Sprintf("Reserved event type 0x%02x, offset 0x%02x", et, offset)
	}

	if e, ok := table.Lookup(code, offset, data, specified); ok {
		return e.Desc
	}
	return fmt.Sprintf("Unknown event type 0x%02x, offset 0x%02x", rec.EventType, offset)
}

// thresholdComparator follows the generic threshold table, where odd
// offsets are going-high and even offsets going-low.
func thresholdComparator(offset uint8) string {
	if offset&1 == 1 {
		return ">"
	}
	return "<"
}

// thresholdReading renders the trigger reading and threshold carried in
// event data 2 and 3, when both are present.
func (r *Resolver) thresholdReading(rec *StandardRecord) string {
	if rec.EventData[0]&0xc0 != 0x40 || rec.EventData[0]&0x30 != 0x10 {
		return ""
	}

	reading, threshold := rec.EventData[1], rec.EventData[2]
	cmp := thresholdComparator(rec.Offset())

	if r.sensors != nil {
		rv, units, ok := r.sensors.Reading(rec.Owner(), rec.LUN(), rec.SensorNumber, reading)
		if ok {
			ts := fmt.Sprintf("0x%02x", threshold)
			if tv, _, ok := r.sensors.Reading(rec.Owner(), rec.LUN(), rec.SensorNumber, threshold); ok {
				ts = formatValue(tv)
			}
			s := fmt.Sprintf("Reading %s %s Threshold %s", formatValue(rv), cmp, ts)
			if units != "" {
				s += " " + units
			}
			return s
		}
	}

	return fmt.Sprintf("Reading 0x%02x %s Threshold 0x%02x", reading, cmp, threshold)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}
