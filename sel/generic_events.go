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

// Event/Reading type codes per section 42.1
const (
	EventTypeThreshold      = 0x01
	EventTypeSensorSpecific = 0x6f
)

// GenericEventTypes per section 42.2, table 42-2.
// Threshold offsets are ordered so that odd offsets are "going high".
var GenericEventTypes = Table{
	// Threshold Based States
	{0x01, 0x00, 0xff, "Threshold", "Lower Non-critical going low"},
	{0x01, 0x01, 0xff, "Threshold", "Lower Non-critical going high"},
	{0x01, 0x02, 0xff, "Threshold", "Lower Critical going low"},
	{0x01, 0x03, 0xff, "Threshold", "Lower Critical going high"},
	{0x01, 0x04, 0xff, "Threshold", "Lower Non-recoverable going low"},
	{0x01, 0x05, 0xff, "Threshold", "Lower Non-recoverable going high"},
	{0x01, 0x06, 0xff, "Threshold", "Upper Non-critical going low"},
	{0x01, 0x07, 0xff, "Threshold", "Upper Non-critical going high"},
	{0x01, 0x08, 0xff, "Threshold", "Upper Critical going low"},
	{0x01, 0x09, 0xff, "Threshold", "Upper Critical going high"},
	{0x01, 0x0a, 0xff, "Threshold", "Upper Non-recoverable going low"},
	{0x01, 0x0b, 0xff, "Threshold", "Upper Non-recoverable going high"},
	// DMI-based "usage state" States
	{0x02, 0x00, 0xff, "Usage State", "Transition to Idle"},
	{0x02, 0x01, 0xff, "Usage State", "Transition to Active"},
	{0x02, 0x02, 0xff, "Usage State", "Transition to Busy"},
	// Digital-Discrete Event States
	{0x03, 0x00, 0xff, "Digital State", "State Deasserted"},
	{0x03, 0x01, 0xff, "Digital State", "State Asserted"},
	{0x04, 0x00, 0xff, "Digital State", "Predictive Failure Deasserted"},
	{0x04, 0x01, 0xff, "Digital State", "Predictive Failure Asserted"},
	{0x05, 0x00, 0xff, "Digital State", "Limit Not Exceeded"},
	{0x05, 0x01, 0xff, "Digital State", "Limit Exceeded"},
	{0x06, 0x00, 0xff, "Digital State", "Performance Met"},
	{0x06, 0x01, 0xff, "Digital State", "Performance Lags"},
	// Severity Event States
	{0x07, 0x00, 0xff, "Severity State", "Transition to OK"},
	{0x07, 0x01, 0xff, "Severity State", "Transition to Non-critical from OK"},
	{0x07, 0x02, 0xff, "Severity State", "Transition to Critical from less severe"},
	{0x07, 0x03, 0xff, "Severity State", "Transition to Non-recoverable from less severe"},
	{0x07, 0x04, 0xff, "Severity State", "Transition to Non-critical from more severe"},
	{0x07, 0x05, 0xff, "Severity State", "Transition to Critical from Non-recoverable"},
	{0x07, 0x06, 0xff, "Severity State", "Transition to Non-recoverable"},
	{0x07, 0x07, 0xff, "Severity State", "Monitor"},
	{0x07, 0x08, 0xff, "Severity State", "Informational"},
	// Availability Status States
	{0x08, 0x00, 0xff, "Availability State", "Device Absent"},
	{0x08, 0x01, 0xff, "Availability State", "Device Present"},
	{0x09, 0x00, 0xff, "Availability State", "Device Disabled"},
	{0x09, 0x01, 0xff, "Availability State", "Device Enabled"},
	{0x0a, 0x00, 0xff, "Availability State", "Transition to Running"},
	{0x0a, 0x01, 0xff, "Availability State", "Transition to In Test"},
	{0x0a, 0x02, 0xff, "Availability State", "Transition to Power Off"},
	{0x0a, 0x03, 0xff, "Availability State", "Transition to On Line"},
	{0x0a, 0x04, 0xff, "Availability State", "Transition to Off Line"},
	{0x0a, 0x05, 0xff, "Availability State", "Transition to Off Duty"},
	{0x0a, 0x06, 0xff, "Availability State", "Transition to Degraded"},
	{0x0a, 0x07, 0xff, "Availability State", "Transition to Power Save"},
	{0x0a, 0x08, 0xff, "Availability State", "Install Error"},
	// Redundancy States
	{0x0b, 0x00, 0xff, "Redundancy State", "Fully Redundant"},
	{0x0b, 0x01, 0xff, "Redundancy State", "Redundancy Lost"},
	{0x0b, 0x02, 0xff, "Redundancy State", "Redundancy Degraded"},
	{0x0b, 0x03, 0xff, "Redundancy State", "Non-Redundant: Sufficient from Redundant"},
	{0x0b, 0x04, 0xff, "Redundancy State", "Non-Redundant: Sufficient from Insufficient"},
	{0x0b, 0x05, 0xff, "Redundancy State", "Non-Redundant: Insufficient Resources"},
	{0x0b, 0x06, 0xff, "Redundancy State", "Redundancy Degraded from Fully Redundant"},
	{0x0b, 0x07, 0xff, "Redundancy State", "Redundancy Degraded from Non-Redundant"},
	// ACPI Device Power States
	{0x0c, 0x00, 0xff, "ACPI Device Power State", "D0 Power State"},
	{0x0c, 0x01, 0xff, "ACPI Device Power State", "D1 Power State"},
	{0x0c, 0x02, 0xff, "ACPI Device Power State", "D2 Power State"},
	{0x0c, 0x03, 0xff, "ACPI Device Power State", "D3 Power State"},
}
