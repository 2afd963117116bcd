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

// SensorSpecificEventTypes per section 42.2, table 42-3, keyed by sensor type
var SensorSpecificEventTypes = Table{
	// Physical Security
	{0x05, 0x00, 0xff, "Physical Security", "General Chassis intrusion"},
	{0x05, 0x01, 0xff, "Physical Security", "Drive Bay intrusion"},
	{0x05, 0x02, 0xff, "Physical Security", "I/O Card area intrusion"},
	{0x05, 0x03, 0xff, "Physical Security", "Processor area intrusion"},
	{0x05, 0x04, 0xff, "Physical Security", "System unplugged from LAN"},
	{0x05, 0x05, 0xff, "Physical Security", "Unauthorized dock"},
	{0x05, 0x06, 0xff, "Physical Security", "FAN area intrusion"},
	// Platform Security
	{0x06, 0x00, 0xff, "Platform Security", "Front Panel Lockout violation attempted"},
	{0x06, 0x01, 0xff, "Platform Security", "Pre-boot password violation - user password"},
	{0x06, 0x02, 0xff, "Platform Security", "Pre-boot password violation - setup password"},
	{0x06, 0x03, 0xff, "Platform Security", "Pre-boot password violation - network boot password"},
	{0x06, 0x04, 0xff, "Platform Security", "Other pre-boot password violation"},
	{0x06, 0x05, 0xff, "Platform Security", "Out-of-band access password violation"},
	// Processor
	{0x07, 0x00, 0xff, "Processor", "IERR"},
	{0x07, 0x01, 0xff, "Processor", "Thermal Trip"},
	{0x07, 0x02, 0xff, "Processor", "FRB1/BIST failure"},
	{0x07, 0x03, 0xff, "Processor", "FRB2/Hang in POST failure"},
	{0x07, 0x04, 0xff, "Processor", "FRB3/Processor startup/init failure"},
	{0x07, 0x05, 0xff, "Processor", "Configuration Error"},
	{0x07, 0x06, 0xff, "Processor", "SM BIOS Uncorrectable CPU-complex Error"},
	{0x07, 0x07, 0xff, "Processor", "Presence detected"},
	{0x07, 0x08, 0xff, "Processor", "Disabled"},
	{0x07, 0x09, 0xff, "Processor", "Terminator presence detected"},
	{0x07, 0x0a, 0xff, "Processor", "Throttled"},
	{0x07, 0x0b, 0xff, "Processor", "Uncorrectable machine check exception"},
	{0x07, 0x0c, 0xff, "Processor", "Correctable machine check error"},
	// Power Supply
	{0x08, 0x00, 0xff, "Power Supply", "Presence detected"},
	{0x08, 0x01, 0xff, "Power Supply", "Failure detected"},
	{0x08, 0x02, 0xff, "Power Supply", "Predictive failure"},
	{0x08, 0x03, 0xff, "Power Supply", "Power Supply AC lost"},
	{0x08, 0x04, 0xff, "Power Supply", "AC lost or out-of-range"},
	{0x08, 0x05, 0xff, "Power Supply", "AC out-of-range, but present"},
	{0x08, 0x06, 0x00, "Power Supply", "Config Error: Vendor Mismatch"},
	{0x08, 0x06, 0x01, "Power Supply", "Config Error: Revision Mismatch"},
	{0x08, 0x06, 0x02, "Power Supply", "Config Error: Processor Missing"},
	{0x08, 0x06, 0x03, "Power Supply", "Config Error: Power Supply Rating Mismatch"},
	{0x08, 0x06, 0x04, "Power Supply", "Config Error: Voltage Rating Mismatch"},
	{0x08, 0x06, 0xff, "Power Supply", "Config Error"},
	{0x08, 0x07, 0xff, "Power Supply", "Power Supply Inactive"},
	// Power Unit
	{0x09, 0x00, 0xff, "Power Unit", "Power off/down"},
	{0x09, 0x01, 0xff, "Power Unit", "Power cycle"},
	{0x09, 0x02, 0xff, "Power Unit", "240VA power down"},
	{0x09, 0x03, 0xff, "Power Unit", "Interlock power down"},
	{0x09, 0x04, 0xff, "Power Unit", "AC lost"},
	{0x09, 0x05, 0xff, "Power Unit", "Soft-power control failure"},
	{0x09, 0x06, 0xff, "Power Unit", "Failure detected"},
	{0x09, 0x07, 0xff, "Power Unit", "Predictive failure"},
	// Memory
	{0x0c, 0x00, 0xff, "Memory", "Correctable ECC"},
	{0x0c, 0x01, 0xff, "Memory", "Uncorrectable ECC"},
	{0x0c, 0x02, 0xff, "Memory", "Parity"},
	{0x0c, 0x03, 0xff, "Memory", "Memory Scrub Failed"},
	{0x0c, 0x04, 0xff, "Memory", "Memory Device Disabled"},
	{0x0c, 0x05, 0xff, "Memory", "Correctable ECC logging limit reached"},
	{0x0c, 0x06, 0xff, "Memory", "Presence Detected"},
	{0x0c, 0x07, 0xff, "Memory", "Configuration Error"},
	{0x0c, 0x08, 0xff, "Memory", "Spare"},
	{0x0c, 0x09, 0xff, "Memory", "Throttled"},
	{0x0c, 0x0a, 0xff, "Memory", "Critical Overtemperature"},
	// Drive Slot
	{0x0d, 0x00, 0xff, "Drive Slot", "Drive Present"},
	{0x0d, 0x01, 0xff, "Drive Slot", "Drive Fault"},
	{0x0d, 0x02, 0xff, "Drive Slot", "Predictive Failure"},
	{0x0d, 0x03, 0xff, "Drive Slot", "Hot Spare"},
	{0x0d, 0x04, 0xff, "Drive Slot", "Parity Check In Progress"},
	{0x0d, 0x05, 0xff, "Drive Slot", "In Critical Array"},
	{0x0d, 0x06, 0xff, "Drive Slot", "In Failed Array"},
	{0x0d, 0x07, 0xff, "Drive Slot", "Rebuild In Progress"},
	{0x0d, 0x08, 0xff, "Drive Slot", "Rebuild Aborted"},
	// System Firmware Error
	{0x0f, 0x00, 0x00, "System Firmware Error", "Unspecified"},
	{0x0f, 0x00, 0x01, "System Firmware Error", "No system memory installed"},
	{0x0f, 0x00, 0x02, "System Firmware Error", "No usable system memory"},
	{0x0f, 0x00, 0x03, "System Firmware Error", "Unrecoverable IDE device failure"},
	{0x0f, 0x00, 0x04, "System Firmware Error", "Unrecoverable system-board failure"},
	{0x0f, 0x00, 0x05, "System Firmware Error", "Unrecoverable diskette failure"},
	{0x0f, 0x00, 0x06, "System Firmware Error", "Unrecoverable hard-disk controller failure"},
	{0x0f, 0x00, 0x07, "System Firmware Error", "Unrecoverable PS/2 or USB keyboard failure"},
	{0x0f, 0x00, 0x08, "System Firmware Error", "Removable boot media not found"},
	{0x0f, 0x00, 0x09, "System Firmware Error", "Unrecoverable video controller failure"},
	{0x0f, 0x00, 0x0a, "System Firmware Error", "No video device selected"},
	{0x0f, 0x00, 0x0b, "System Firmware Error", "BIOS corruption detected"},
	{0x0f, 0x00, 0x0c, "System Firmware Error", "CPU voltage mismatch"},
	{0x0f, 0x00, 0x0d, "System Firmware Error", "CPU speed mismatch failure"},
	{0x0f, 0x00, 0xff, "System Firmware Error", "Unknown Error"},
	// System Firmware Hang
	{0x0f, 0x01, 0x00, "System Firmware Hang", "Unspecified"},
	{0x0f, 0x01, 0x01, "System Firmware Hang", "Memory initialization"},
	{0x0f, 0x01, 0x02, "System Firmware Hang", "Hard-disk initialization"},
	{0x0f, 0x01, 0x03, "System Firmware Hang", "Secondary CPU Initialization"},
	{0x0f, 0x01, 0x04, "System Firmware Hang", "User authentication"},
	{0x0f, 0x01, 0x05, "System Firmware Hang", "User-initiated system setup"},
	{0x0f, 0x01, 0x06, "System Firmware Hang", "USB resource configuration"},
	{0x0f, 0x01, 0x07, "System Firmware Hang", "PCI resource configuration"},
	{0x0f, 0x01, 0x08, "System Firmware Hang", "Option ROM initialization"},
	{0x0f, 0x01, 0x09, "System Firmware Hang", "Video initialization"},
	{0x0f, 0x01, 0x0a, "System Firmware Hang", "Cache initialization"},
	{0x0f, 0x01, 0x0b, "System Firmware Hang", "SMBus initialization"},
	{0x0f, 0x01, 0x0c, "System Firmware Hang", "Keyboard controller initialization"},
	{0x0f, 0x01, 0x0d, "System Firmware Hang", "Management controller initialization"},
	{0x0f, 0x01, 0x0e, "System Firmware Hang", "Docking station attachment"},
	{0x0f, 0x01, 0x0f, "System Firmware Hang", "Enabling docking station"},
	{0x0f, 0x01, 0x10, "System Firmware Hang", "Docking station ejection"},
	{0x0f, 0x01, 0x11, "System Firmware Hang", "Disabling docking station"},
	{0x0f, 0x01, 0x12, "System Firmware Hang", "Calling operating system wake-up vector"},
	{0x0f, 0x01, 0x13, "System Firmware Hang", "System boot initiated"},
	{0x0f, 0x01, 0x14, "System Firmware Hang", "Motherboard initialization"},
	{0x0f, 0x01, 0x16, "System Firmware Hang", "Floppy initialization"},
	{0x0f, 0x01, 0x17, "System Firmware Hang", "Keyboard test"},
	{0x0f, 0x01, 0x18, "System Firmware Hang", "Pointing device test"},
	{0x0f, 0x01, 0x19, "System Firmware Hang", "Primary CPU initialization"},
	{0x0f, 0x01, 0xff, "System Firmware Hang", "Unknown Hang"},
	// System Firmware Progress
	{0x0f, 0x02, 0x00, "System Firmware Progress", "Unspecified"},
	{0x0f, 0x02, 0x01, "System Firmware Progress", "Memory initialization"},
	{0x0f, 0x02, 0x02, "System Firmware Progress", "Hard-disk initialization"},
	{0x0f, 0x02, 0x03, "System Firmware Progress", "Secondary CPU Initialization"},
	{0x0f, 0x02, 0x04, "System Firmware Progress", "User authentication"},
	{0x0f, 0x02, 0x05, "System Firmware Progress", "User-initiated system setup"},
	{0x0f, 0x02, 0x06, "System Firmware Progress", "USB resource configuration"},
	{0x0f, 0x02, 0x07, "System Firmware Progress", "PCI resource configuration"},
	{0x0f, 0x02, 0x08, "System Firmware Progress", "Option ROM initialization"},
	{0x0f, 0x02, 0x09, "System Firmware Progress", "Video initialization"},
	{0x0f, 0x02, 0x0a, "System Firmware Progress", "Cache initialization"},
	{0x0f, 0x02, 0x0b, "System Firmware Progress", "SMBus initialization"},
	{0x0f, 0x02, 0x0c, "System Firmware Progress", "Keyboard controller initialization"},
	{0x0f, 0x02, 0x0d, "System Firmware Progress", "Management controller initialization"},
	{0x0f, 0x02, 0x0e, "System Firmware Progress", "Docking station attachment"},
	{0x0f, 0x02, 0x0f, "System Firmware Progress", "Enabling docking station"},
	{0x0f, 0x02, 0x10, "System Firmware Progress", "Docking station ejection"},
	{0x0f, 0x02, 0x11, "System Firmware Progress", "Disabling docking station"},
	{0x0f, 0x02, 0x12, "System Firmware Progress", "Calling operating system wake-up vector"},
	{0x0f, 0x02, 0x13, "System Firmware Progress", "System boot initiated"},
	{0x0f, 0x02, 0x14, "System Firmware Progress", "Motherboard initialization"},
	{0x0f, 0x02, 0x16, "System Firmware Progress", "Floppy initialization"},
	{0x0f, 0x02, 0x17, "System Firmware Progress", "Keyboard test"},
	{0x0f, 0x02, 0x18, "System Firmware Progress", "Pointing device test"},
	{0x0f, 0x02, 0x19, "System Firmware Progress", "Primary CPU initialization"},
	{0x0f, 0x02, 0xff, "System Firmware Progress", "Unknown Progress"},
	// Event Logging Disabled
	{0x10, 0x00, 0xff, "Event Logging Disabled", "Correctable memory error logging disabled"},
	{0x10, 0x01, 0xff, "Event Logging Disabled", "Event logging disabled"},
	{0x10, 0x02, 0xff, "Event Logging Disabled", "Log area reset/cleared"},
	{0x10, 0x03, 0xff, "Event Logging Disabled", "All event logging disabled"},
	{0x10, 0x04, 0xff, "Event Logging Disabled", "Log full"},
	{0x10, 0x05, 0xff, "Event Logging Disabled", "Log almost full"},
	// Watchdog 1
	{0x11, 0x00, 0xff, "Watchdog 1", "BIOS Reset"},
	{0x11, 0x01, 0xff, "Watchdog 1", "OS Reset"},
	{0x11, 0x02, 0xff, "Watchdog 1", "OS Shut Down"},
	{0x11, 0x03, 0xff, "Watchdog 1", "OS Power Down"},
	{0x11, 0x04, 0xff, "Watchdog 1", "OS Power Cycle"},
	{0x11, 0x05, 0xff, "Watchdog 1", "OS NMI/Diag Interrupt"},
	{0x11, 0x06, 0xff, "Watchdog 1", "OS Expired"},
	{0x11, 0x07, 0xff, "Watchdog 1", "OS pre-timeout Interrupt"},
	// System Event
	{0x12, 0x00, 0xff, "System Event", "System Reconfigured"},
	{0x12, 0x01, 0xff, "System Event", "OEM System boot event"},
	{0x12, 0x02, 0xff, "System Event", "Undetermined system hardware failure"},
	{0x12, 0x03, 0xff, "System Event", "Entry added to auxiliary log"},
	{0x12, 0x04, 0xff, "System Event", "PEF Action"},
	{0x12, 0x05, 0xff, "System Event", "Timestamp Clock Sync"},
	// Critical Interrupt
	{0x13, 0x00, 0xff, "Critical Interrupt", "NMI/Diag Interrupt"},
	{0x13, 0x01, 0xff, "Critical Interrupt", "Bus Timeout"},
	{0x13, 0x02, 0xff, "Critical Interrupt", "I/O Channel check NMI"},
	{0x13, 0x03, 0xff, "Critical Interrupt", "Software NMI"},
	{0x13, 0x04, 0xff, "Critical Interrupt", "PCI PERR"},
	{0x13, 0x05, 0xff, "Critical Interrupt", "PCI SERR"},
	{0x13, 0x06, 0xff, "Critical Interrupt", "EISA failsafe timeout"},
	{0x13, 0x07, 0xff, "Critical Interrupt", "Bus Correctable error"},
	{0x13, 0x08, 0xff, "Critical Interrupt", "Bus Uncorrectable error"},
	{0x13, 0x09, 0xff, "Critical Interrupt", "Fatal NMI"},
	{0x13, 0x0a, 0xff, "Critical Interrupt", "Bus Fatal Error"},
	{0x13, 0x0b, 0xff, "Critical Interrupt", "Bus Degraded"},
	// Button
	{0x14, 0x00, 0xff, "Button", "Power Button pressed"},
	{0x14, 0x01, 0xff, "Button", "Sleep Button pressed"},
	{0x14, 0x02, 0xff, "Button", "Reset Button pressed"},
	{0x14, 0x03, 0xff, "Button", "FRU Latch"},
	{0x14, 0x04, 0xff, "Button", "FRU Service"},
	// Chip Set
	{0x19, 0x00, 0xff, "Chip Set", "Soft Power Control Failure"},
	{0x19, 0x01, 0xff, "Chip Set", "Thermal Trip"},
	// Cable/Interconnect
	{0x1b, 0x00, 0xff, "Cable/Interconnect", "Connected"},
	{0x1b, 0x01, 0xff, "Cable/Interconnect", "Config Error"},
	// System Boot Initiated
	{0x1d, 0x00, 0xff, "System Boot Initiated", "Initiated by power up"},
	{0x1d, 0x01, 0xff, "System Boot Initiated", "Initiated by hard reset"},
	{0x1d, 0x02, 0xff, "System Boot Initiated", "Initiated by warm reset"},
	{0x1d, 0x03, 0xff, "System Boot Initiated", "User requested PXE boot"},
	{0x1d, 0x04, 0xff, "System Boot Initiated", "Automatic boot to diagnostic"},
	{0x1d, 0x05, 0xff, "System Boot Initiated", "OS initiated hard reset"},
	{0x1d, 0x06, 0xff, "System Boot Initiated", "OS initiated warm reset"},
	{0x1d, 0x07, 0xff, "System Boot Initiated", "System Restart"},
	// Boot Error
	{0x1e, 0x00, 0xff, "Boot Error", "No bootable media"},
	{0x1e, 0x01, 0xff, "Boot Error", "Non-bootable disk in drive"},
	{0x1e, 0x02, 0xff, "Boot Error", "PXE server not found"},
	{0x1e, 0x03, 0xff, "Boot Error", "Invalid boot sector"},
	{0x1e, 0x04, 0xff, "Boot Error", "Timeout waiting for selection"},
	// OS Boot
	{0x1f, 0x00, 0xff, "OS Boot", "A: boot completed"},
	{0x1f, 0x01, 0xff, "OS Boot", "C: boot completed"},
	{0x1f, 0x02, 0xff, "OS Boot", "PXE boot completed"},
	{0x1f, 0x03, 0xff, "OS Boot", "Diagnostic boot completed"},
	{0x1f, 0x04, 0xff, "OS Boot", "CD-ROM boot completed"},
	{0x1f, 0x05, 0xff, "OS Boot", "ROM boot completed"},
	{0x1f, 0x06, 0xff, "OS Boot", "boot completed - device not specified"},
	{0x1f, 0x07, 0xff, "OS Boot", "Installation started"},
	{0x1f, 0x08, 0xff, "OS Boot", "Installation completed"},
	{0x1f, 0x09, 0xff, "OS Boot", "Installation aborted"},
	{0x1f, 0x0a, 0xff, "OS Boot", "Installation failed"},
	// OS Stop/Shutdown
	{0x20, 0x00, 0xff, "OS Stop/Shutdown", "Error during system startup"},
	{0x20, 0x01, 0xff, "OS Stop/Shutdown", "Run-time critical stop"},
	{0x20, 0x02, 0xff, "OS Stop/Shutdown", "OS graceful stop"},
	{0x20, 0x03, 0xff, "OS Stop/Shutdown", "OS graceful shutdown"},
	{0x20, 0x04, 0xff, "OS Stop/Shutdown", "PEF initiated soft shutdown"},
	{0x20, 0x05, 0xff, "OS Stop/Shutdown", "Agent not responding"},
	// Slot/Connector
	{0x21, 0x00, 0xff, "Slot/Connector", "Fault Status"},
	{0x21, 0x01, 0xff, "Slot/Connector", "Identify Status"},
	{0x21, 0x02, 0xff, "Slot/Connector", "Slot/Connector Device installed"},
	{0x21, 0x03, 0xff, "Slot/Connector", "Slot/Connector ready for device installation"},
	{0x21, 0x04, 0xff, "Slot/Connector", "Slot/Connector ready for device removal"},
	{0x21, 0x05, 0xff, "Slot/Connector", "Slot Power is off"},
	{0x21, 0x06, 0xff, "Slot/Connector", "Slot/Connector device removal request"},
	{0x21, 0x07, 0xff, "Slot/Connector", "Interlock asserted"},
	{0x21, 0x08, 0xff, "Slot/Connector", "Slot is disabled"},
	{0x21, 0x09, 0xff, "Slot/Connector", "Spare Device"},
	// System ACPI Power State
	{0x22, 0x00, 0xff, "System ACPI Power State", "S0/G0: working"},
	{0x22, 0x01, 0xff, "System ACPI Power State", "S1: sleeping with system hw & processor context maintained"},
	{0x22, 0x02, 0xff, "System ACPI Power State", "S2: sleeping, processor context lost"},
	{0x22, 0x03, 0xff, "System ACPI Power State", "S3: sleeping, processor & hw context lost, memory retained"},
	{0x22, 0x04, 0xff, "System ACPI Power State", "S4: non-volatile sleep/suspend-to-disk"},
	{0x22, 0x05, 0xff, "System ACPI Power State", "S5/G2: soft-off"},
	{0x22, 0x06, 0xff, "System ACPI Power State", "S4/S5: soft-off"},
	{0x22, 0x07, 0xff, "System ACPI Power State", "G3: mechanical off"},
	{0x22, 0x08, 0xff, "System ACPI Power State", "Sleeping in S1/S2/S3 state"},
	{0x22, 0x09, 0xff, "System ACPI Power State", "G1: sleeping"},
	{0x22, 0x0a, 0xff, "System ACPI Power State", "S5: entered by override"},
	{0x22, 0x0b, 0xff, "System ACPI Power State", "Legacy ON state"},
	{0x22, 0x0c, 0xff, "System ACPI Power State", "Legacy OFF state"},
	{0x22, 0x0e, 0xff, "System ACPI Power State", "Unknown"},
	// Watchdog 2
	{0x23, 0x00, 0xff, "Watchdog 2", "Timer expired"},
	{0x23, 0x01, 0xff, "Watchdog 2", "Hard reset"},
	{0x23, 0x02, 0xff, "Watchdog 2", "Power down"},
	{0x23, 0x03, 0xff, "Watchdog 2", "Power cycle"},
	{0x23, 0x08, 0xff, "Watchdog 2", "Timer interrupt"},
	// Platform Alert
	{0x24, 0x00, 0xff, "Platform Alert", "Platform generated page"},
	{0x24, 0x01, 0xff, "Platform Alert", "Platform generated LAN alert"},
	{0x24, 0x02, 0xff, "Platform Alert", "Platform Event Trap generated"},
	{0x24, 0x03, 0xff, "Platform Alert", "Platform generated SNMP trap, OEM format"},
	// Entity Presence
	{0x25, 0x00, 0xff, "Entity Presence", "Present"},
	{0x25, 0x01, 0xff, "Entity Presence", "Absent"},
	{0x25, 0x02, 0xff, "Entity Presence", "Disabled"},
	// LAN
	{0x27, 0x00, 0xff, "LAN", "Heartbeat Lost"},
	{0x27, 0x01, 0xff, "LAN", "Heartbeat"},
	// Management Subsystem Health
	{0x28, 0x00, 0xff, "Management Subsystem Health", "Sensor access degraded or unavailable"},
	{0x28, 0x01, 0xff, "Management Subsystem Health", "Controller access degraded or unavailable"},
	{0x28, 0x02, 0xff, "Management Subsystem Health", "Management controller off-line"},
	{0x28, 0x03, 0xff, "Management Subsystem Health", "Management controller unavailable"},
	{0x28, 0x04, 0xff, "Management Subsystem Health", "Sensor failure"},
	{0x28, 0x05, 0xff, "Management Subsystem Health", "FRU failure"},
	// Battery
	{0x29, 0x00, 0xff, "Battery", "Low"},
	{0x29, 0x01, 0xff, "Battery", "Failed"},
	{0x29, 0x02, 0xff, "Battery", "Presence Detected"},
	// Session Audit
	{0x2a, 0x00, 0xff, "Session Audit", "Session Activated"},
	{0x2a, 0x01, 0xff, "Session Audit", "Session Deactivated"},
	{0x2a, 0x02, 0xff, "Session Audit", "Invalid Username or Password"},
	{0x2a, 0x03, 0xff, "Session Audit", "Invalid password disable"},
	// Version Change
	{0x2b, 0x00, 0xff, "Version Change", "Hardware change detected"},
	{0x2b, 0x01, 0xff, "Version Change", "Firmware or software change detected"},
	{0x2b, 0x02, 0xff, "Version Change", "Hardware incompatibility detected"},
	{0x2b, 0x03, 0xff, "Version Change", "Firmware or software incompatibility detected"},
	{0x2b, 0x04, 0xff, "Version Change", "Invalid or unsupported hardware version"},
	{0x2b, 0x05, 0xff, "Version Change", "Invalid or unsupported firmware or software version"},
	{0x2b, 0x06, 0xff, "Version Change", "Hardware change success"},
	{0x2b, 0x07, 0xff, "Version Change", "Firmware or software change success"},
	// FRU State
	{0x2c, 0x00, 0xff, "FRU State", "Not Installed"},
	{0x2c, 0x01, 0xff, "FRU State", "Inactive"},
	{0x2c, 0x02, 0xff, "FRU State", "Activation Requested"},
	{0x2c, 0x03, 0xff, "FRU State", "Activation in Progress"},
	{0x2c, 0x04, 0xff, "FRU State", "Active"},
	{0x2c, 0x05, 0xff, "FRU State", "Deactivation Requested"},
	{0x2c, 0x06, 0xff, "FRU State", "Deactivation in Progress"},
	{0x2c, 0x07, 0xff, "FRU State", "Communication lost"},
}
