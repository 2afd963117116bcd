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

	ipmi "github.com/vmware/goipmi-sel"
)

// AllOffsetsSpecified in EventType.Data matches any event data 2 value
const AllOffsetsSpecified = 0xff

// EventType is one row of an event description table
type EventType struct {
	Code   uint8 // event type for generic rows, sensor type otherwise
	Offset uint8
	Data   uint8 // event data 2 discriminator, or AllOffsetsSpecified
	Type   string
	Desc   string
}

// Table rows are scanned in order and the first match wins, so rows with a
// specific Data value must precede the AllOffsetsSpecified row for the same
// Code and Offset.
type Table []EventType

// Lookup returns the first row matching code and offset. Rows with a
// specific Data value only match when event data 2 is specified and equal.
func (t Table) Lookup(code, offset, data uint8, specified bool) (*EventType, bool) {
	for i := range t {
		e := &t[i]
		if e.Code != code || e.Offset != offset {
			continue
		}
		if e.Data == AllOffsetsSpecified || (specified && e.Data == data) {
			return e, true
		}
	}
	return nil, false
}

// TypeOnly returns the first row for code, regardless of offset
func (t Table) TypeOnly(code uint8) (*EventType, bool) {
	for i := range t {
		if t[i].Code == code {
			return &t[i], true
		}
	}
	return nil, false
}

// OEMTable selects the vendor table for the given IANA manufacturer id,
// nil when the vendor has none.
func OEMTable(iana ipmi.OemID) Table {
	switch iana {
	case ipmi.OemKontron:
		t := make(Table, 0, len(kontronEventTypes)+len(hotSwapEventTypes))
		t = append(t, kontronEventTypes...)
		return append(t, hotSwapEventTypes...)
	case ipmi.OemPICMG, ipmi.OemPPS, ipmi.OemVITA:
		return hotSwapEventTypes
	}
	return nil
}

// SensorTypeName returns the name of a sensor type code. OEM codes are
// named from the oem table when it has a row for them.
func SensorTypeName(code uint8, oem Table) string {
	if int(code) < len(sensorTypeNames) {
		return sensorTypeNames[code]
	}
	if code >= 0xc0 {
		if e, ok := oem.TypeOnly(code); ok {
			return e.Type
		}
		return fmt.Sprintf("OEM reserved #%02x", code)
	}
	return fmt.Sprintf("Unknown #%02x", code)
}

// per section 42.2, table 42-3
var sensorTypeNames = []string{
	"reserved",
	"Temperature",
	"Voltage",
	"Current",
	"Fan",
	"Physical Security",
	"Platform Security",
	"Processor",
	"Power Supply",
	"Power Unit",
	"Cooling Device",
	"Other",
	"Memory",
	"Drive Slot / Bay",
	"POST Memory Resize",
	"System Firmwares",
	"Event Logging Disabled",
	"Watchdog1",
	"System Event",
	"Critical Interrupt",
	"Button",
	"Module / Board",
	"Microcontroller",
	"Add-in Card",
	"Chassis",
	"Chip Set",
	"Other FRU",
	"Cable / Interconnect",
	"Terminator",
	"System Boot Initiated",
	"Boot Error",
	"OS Boot",
	"OS Critical Stop",
	"Slot / Connector",
	"System ACPI Power State",
	"Watchdog2",
	"Platform Alert",
	"Entity Presence",
	"Monitor ASIC",
	"LAN",
	"Management Subsys Health",
	"Battery",
	"Session Audit",
	"Version Change",
	"FRU State",
}
