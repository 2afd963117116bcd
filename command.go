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

// Command fields on an IPMI message
type Command uint8

// Command Number Assignments (table G-1)
const (
	CommandGetDeviceID              = Command(0x01)
	CommandGetAuthCapabilities      = Command(0x38)
	CommandGetSessionChallenge      = Command(0x39)
	CommandActivateSession          = Command(0x3a)
	CommandSetSessionPrivilegeLevel = Command(0x3b)
	CommandCloseSession             = Command(0x3c)
	CommandReserveSDRRepository     = Command(0x22)
	CommandGetSDR                   = Command(0x23)
	CommandGetSELInfo               = Command(0x40)
	CommandGetSELAllocationInfo     = Command(0x41)
	CommandReserveSEL               = Command(0x42)
	CommandGetSELEntry              = Command(0x43)
	CommandDeleteSELEntry           = Command(0x46)
	CommandClearSEL                 = Command(0x47)
	CommandGetSELTime               = Command(0x48)
	CommandSetSELTime               = Command(0x49)
)

// Privilege levels per section 22.13
const (
	PrivLevelNone = iota
	PrivLevelCallback
	PrivLevelUser
	PrivLevelOperator
	PrivLevelAdmin
	PrivLevelOEM
)

// AuthType bit numbers per section 22.13
const (
	AuthTypeNone = iota
	AuthTypeMD2
	AuthTypeMD5
	authTypeReserved
	AuthTypePassword
	AuthTypeOEM
)

// Request structure
type Request struct {
	NetworkFunction
	Command
	Data interface{}
}

// Response to an IPMI request must include at least a CompletionCode
type Response interface {
	Code() uint8
}

// DeviceIDRequest per section 20.1
type DeviceIDRequest struct{}

// DeviceIDResponse per section 20.1
type DeviceIDResponse struct {
	CompletionCode
	DeviceID                uint8
	DeviceRevision          uint8
	FirmwareRevision1       uint8
	FirmwareRevision2       uint8
	IPMIVersion             uint8
	AdditionalDeviceSupport uint8
	ManufacturerID          OemID
	ProductID               uint16
}

// MarshalBinary implementation to handle the 3 byte ManufacturerID
func (r *DeviceIDResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 12)
	buf[0] = byte(r.CompletionCode)
	buf[1] = r.DeviceID
	buf[2] = r.DeviceRevision
	buf[3] = r.FirmwareRevision1
	buf[4] = r.FirmwareRevision2
	buf[5] = r.IPMIVersion
	buf[6] = r.AdditionalDeviceSupport
	r.ManufacturerID.PutBytes(buf[7:])
	binary.LittleEndian.PutUint16(buf[10:], r.ProductID)
	return buf, nil
}

// UnmarshalBinary implementation to handle the 3 byte ManufacturerID
func (r *DeviceIDResponse) UnmarshalBinary(buf []byte) error {
	if len(buf) < 12 {
		return ErrShortPacket
	}
	r.CompletionCode = CompletionCode(buf[0])
	r.DeviceID = buf[1]
	r.DeviceRevision = buf[2]
	r.FirmwareRevision1 = buf[3]
	r.FirmwareRevision2 = buf[4]
	r.IPMIVersion = buf[5]
	r.AdditionalDeviceSupport = buf[6]
	r.ManufacturerID = OemIDFromBytes(buf[7:])
	r.ProductID = binary.LittleEndian.Uint16(buf[10:])
	return nil
}

// AuthCapabilitiesRequest per section 22.13
type AuthCapabilitiesRequest struct {
	ChannelNumber uint8
	PrivLevel     uint8
}

// AuthCapabilitiesResponse per section 22.13
type AuthCapabilitiesResponse struct {
	CompletionCode
	ChannelNumber   uint8
	AuthTypeSupport uint8
	Status          uint8
	Reserved        uint8
	OEMID           [3]uint8
	OEMAux          uint8
}

// SessionChallengeRequest per section 22.16
type SessionChallengeRequest struct {
	AuthType uint8
	Username [16]uint8
}

// SessionChallengeResponse per section 22.16
type SessionChallengeResponse struct {
	CompletionCode
	TemporarySessionID uint32
	Challenge          [16]byte
}

// ActivateSessionRequest per section 22.17
type ActivateSessionRequest struct {
	AuthType  uint8
	PrivLevel uint8
	AuthCode  [16]uint8
	InSeq     [4]uint8
}

// ActivateSessionResponse per section 22.17
type ActivateSessionResponse struct {
	CompletionCode
	AuthType   uint8
	SessionID  uint32
	InboundSeq uint32
	MaxPriv    uint8
}

// SessionPrivilegeLevelRequest per section 22.18
type SessionPrivilegeLevelRequest struct {
	PrivLevel uint8
}

// SessionPrivilegeLevelResponse per section 22.18
type SessionPrivilegeLevelResponse struct {
	CompletionCode
	NewPrivilegeLevel uint8
}

// CloseSessionRequest per section 22.19
type CloseSessionRequest struct {
	SessionID uint32
}

// CloseSessionResponse per section 22.19
type CloseSessionResponse struct {
	CompletionCode
}
