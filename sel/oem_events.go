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

// Kontron OEM sensor types
var kontronEventTypes = Table{
	// Board Reset
	{0xc1, 0x00, 0xff, "Board Reset", "Power Up"},
	{0xc1, 0x01, 0xff, "Board Reset", "Hard Reset"},
	{0xc1, 0x02, 0xff, "Board Reset", "Soft Reset"},
	{0xc1, 0x03, 0xff, "Board Reset", "Watchdog Reset"},
	{0xc1, 0x04, 0xff, "Board Reset", "Push Button"},
	// IPMB-L Link State
	{0xc3, 0x00, 0xff, "IPMB-L Link State", "IPMB L Disabled"},
	{0xc3, 0x01, 0xff, "IPMB-L Link State", "IPMB L Enabled"},
	// Firmware Upgrade
	{0xc5, 0x00, 0xff, "Firmware Upgrade", "Upgrade Started"},
	{0xc5, 0x01, 0xff, "Firmware Upgrade", "Upgrade Completed"},
	{0xc5, 0x02, 0xff, "Firmware Upgrade", "Upgrade Failed"},
	{0xc5, 0x03, 0xff, "Firmware Upgrade", "Rollback Started"},
	// POST Value
	{0xc6, 0x00, 0x0e, "POST Value", "POST Error: Memory not present"},
	{0xc6, 0x00, 0x22, "POST Value", "POST Error: CMOS checksum"},
	{0xc6, 0x00, 0xff, "POST Value", "POST Code"},
	// Board Reset (cPCI)
	{0xcf, 0x00, 0xff, "Board Reset", "Push Button"},
	{0xcf, 0x01, 0xff, "Board Reset", "Bridge Reset"},
	{0xcf, 0x02, 0xff, "Board Reset", "Backplane"},
	{0xcf, 0x03, 0xff, "Board Reset", "Hotswap Fault"},
	{0xcf, 0x04, 0xff, "Board Reset", "Hotswap Healthy"},
	{0xcf, 0x05, 0xff, "Board Reset", "Unknown"},
	{0xcf, 0x06, 0xff, "Board Reset", "ITP"},
	{0xcf, 0x07, 0xff, "Board Reset", "Hardware Watchdog"},
	{0xcf, 0x08, 0xff, "Board Reset", "Software Reset"},
}

// PICMG and VITA hot swap sensor types, shared by AdvancedTCA, MicroTCA and
// VPX controllers
var hotSwapEventTypes = Table{
	// FRU Hot Swap
	{0xf0, 0x00, 0xff, "FRU Hot Swap", "Transition to M0"},
	{0xf0, 0x01, 0xff, "FRU Hot Swap", "Transition to M1"},
	{0xf0, 0x02, 0xff, "FRU Hot Swap", "Transition to M2"},
	{0xf0, 0x03, 0xff, "FRU Hot Swap", "Transition to M3"},
	{0xf0, 0x04, 0xff, "FRU Hot Swap", "Transition to M4"},
	{0xf0, 0x05, 0xff, "FRU Hot Swap", "Transition to M5"},
	{0xf0, 0x06, 0xff, "FRU Hot Swap", "Transition to M6"},
	{0xf0, 0x07, 0xff, "FRU Hot Swap", "Transition to M7"},
	// IPMB-0 Link State
	{0xf1, 0x00, 0xff, "IPMB-0 Status", "IPMB-A disabled, IPMB-B disabled"},
	{0xf1, 0x01, 0xff, "IPMB-0 Status", "IPMB-A enabled, IPMB-B disabled"},
	{0xf1, 0x02, 0xff, "IPMB-0 Status", "IPMB-A disabled, IPMB-B enabled"},
	{0xf1, 0x03, 0xff, "IPMB-0 Status", "IPMB-A enabled, IPMB-B enabled"},
	// Module Hot Swap
	{0xf2, 0x00, 0xff, "Module Hot Swap", "Module Handle Closed"},
	{0xf2, 0x01, 0xff, "Module Hot Swap", "Module Handle Opened"},
	{0xf2, 0x02, 0xff, "Module Hot Swap", "Quiesced"},
	{0xf2, 0x03, 0xff, "Module Hot Swap", "Backend Power Failure"},
	{0xf2, 0x04, 0xff, "Module Hot Swap", "Backend Power Shut Down"},
	// Power Channel Notification
	{0xf3, 0x00, 0xff, "Power Channel Notification", "Redundant PM"},
	{0xf3, 0x01, 0xff, "Power Channel Notification", "Payload Power is good"},
	{0xf3, 0x02, 0xff, "Power Channel Notification", "Management Power is good"},
	{0xf3, 0x03, 0xff, "Power Channel Notification", "Power Module Present"},
	// Telco Alarm Input
	{0xf4, 0x00, 0xff, "Telco Alarm Input", "Minor Reset"},
	{0xf4, 0x01, 0xff, "Telco Alarm Input", "Major Reset"},
	{0xf4, 0x02, 0xff, "Telco Alarm Input", "Critical Reset"},
	{0xf4, 0x03, 0xff, "Telco Alarm Input", "Minor Alarm"},
	{0xf4, 0x04, 0xff, "Telco Alarm Input", "Major Alarm"},
	{0xf4, 0x05, 0xff, "Telco Alarm Input", "Critical Alarm"},
}
