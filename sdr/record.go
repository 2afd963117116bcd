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

package sdr

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Record types per section 43
const (
	RecordTypeFullSensor    = uint8(0x01)
	RecordTypeCompactSensor = uint8(0x02)
	RecordTypeEventOnly     = uint8(0x03)
)

// HeaderSize of every sensor data record
const HeaderSize = 5

// Analog data formats, units 1 bits 7:6
const (
	FormatUnsigned       = uint8(0)
	FormatOnesComplement = uint8(1)
	FormatTwosComplement = uint8(2)
	FormatNone           = uint8(3)
)

// Linearization functions per section 43.1, table 43-1
const (
	LinearizationLinear = uint8(iota)
	LinearizationLn
	LinearizationLog10
	LinearizationLog2
	LinearizationE
	LinearizationExp10
	LinearizationExp2
	LinearizationInverse
	LinearizationSqr
	LinearizationCube
	LinearizationSqrt
	LinearizationCubeRoot
)

// minimum lengths, up to and including the id string type/length byte
const (
	fullSensorMinLength    = 48
	compactSensorMinLength = 32
)

// ErrUnsupportedType is returned by ParseRecord for records that do not
// describe a sensor with readings, such as FRU or controller locators.
var ErrUnsupportedType = errors.New("sdr: unsupported record type")

// Header common to all sensor data records
type Header struct {
	RecordID uint16
	Version  uint8
	Type     uint8
	Length   uint8
}

// ParseHeader decodes the 5 byte record header
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errors.Errorf("sdr: short header, %d bytes", len(data))
	}
	return Header{
		RecordID: binary.LittleEndian.Uint16(data),
		Version:  data[2],
		Type:     data[3],
		Length:   data[4],
	}, nil
}

// SensorRecord holds the fields of a full or compact sensor record needed
// to name a sensor and convert its readings.
type SensorRecord struct {
	Header
	Owner          uint8
	LUN            uint8
	Number         uint8
	EntityID       uint8
	EntityInstance uint8
	SensorType     uint8
	EventType      uint8
	Units1         uint8
	BaseUnit       uint8
	ModifierUnit   uint8
	Linearization  uint8
	M              int
	B              int
	Tolerance      uint8
	Accuracy       int
	AccuracyExp    uint8
	RExp           int // result exponent, K2
	BExp           int // B exponent, K1
	Name           string
}

// ParseRecord decodes a full or compact sensor record, header included
func ParseRecord(data []byte) (*SensorRecord, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	s := &SensorRecord{Header: h}

	switch h.Type {
	case RecordTypeFullSensor:
		if len(data) < fullSensorMinLength {
			return nil, errors.Errorf("sdr: record %04x: short full sensor record, %d bytes", h.RecordID, len(data))
		}
		s.parseKey(data)
		s.Linearization = data[23] & 0x7f
		s.M = signExtend(int(data[24])|int(data[25]&0xc0)<<2, 10)
		s.Tolerance = data[25] & 0x3f
		s.B = signExtend(int(data[26])|int(data[27]&0xc0)<<2, 10)
		s.Accuracy = int(data[27]&0x3f) | int(data[28]&0xf0)<<2
		s.AccuracyExp = (data[28] & 0x0c) >> 2
		s.RExp = signExtend(int(data[29]>>4), 4)
		s.BExp = signExtend(int(data[29]&0x0f), 4)
		s.Name = idString(data[47:])
	case RecordTypeCompactSensor:
		if len(data) < compactSensorMinLength {
			return nil, errors.Errorf("sdr: record %04x: short compact sensor record, %d bytes", h.RecordID, len(data))
		}
		s.parseKey(data)
		s.Name = idString(data[31:])
	default:
		return nil, ErrUnsupportedType
	}

	return s, nil
}

// parseKey decodes the key and body bytes shared by full and compact records
func (s *SensorRecord) parseKey(data []byte) {
	s.Owner = data[5]
	s.LUN = data[6] & 0x03
	s.Number = data[7]
	s.EntityID = data[8]
	s.EntityInstance = data[9]
	s.SensorType = data[12]
	s.EventType = data[13]
	s.Units1 = data[20]
	s.BaseUnit = data[21]
	s.ModifierUnit = data[22]
}

// idString decodes the type/length byte and the id string that follows
func idString(data []byte) string {
	n := int(data[0] & 0x1f)
	if n > len(data)-1 {
		n = len(data) - 1
	}
	return strings.TrimRight(string(data[1:1+n]), "\x00 ")
}

func signExtend(value, bits int) int {
	if value&(1<<uint(bits-1)) != 0 {
		value -= 1 << uint(bits)
	}
	return value
}

// AnalogFormat of the sensor readings
func (s *SensorRecord) AnalogFormat() uint8 {
	return s.Units1 >> 6
}

// Analog reports whether raw readings can be converted to values
func (s *SensorRecord) Analog() bool {
	return s.Type == RecordTypeFullSensor && s.AnalogFormat() != FormatNone
}

// Convert a raw reading to its value using the record's conversion factors:
// y = L[(M*x + B*10^K1) * 10^K2]
func (s *SensorRecord) Convert(raw uint8) (float64, error) {
	if !s.Analog() {
		return 0, errors.Errorf("sdr: sensor %02x has no analog readings", s.Number)
	}

	x := int(raw)
	switch s.AnalogFormat() {
	case FormatOnesComplement:
		if raw&0x80 != 0 {
			x = -int(^raw & 0x7f)
		}
	case FormatTwosComplement:
		x = int(int8(raw))
	}

	y := (float64(s.M)*float64(x) + float64(s.B)*math.Pow10(s.BExp)) * math.Pow10(s.RExp)

	switch s.Linearization {
	case LinearizationLinear:
		return y, nil
	case LinearizationLn:
		return math.Log(y), nil
	case LinearizationLog10:
		return math.Log10(y), nil
	case LinearizationLog2:
		return math.Log2(y), nil
	case LinearizationE:
		return math.Exp(y), nil
	case LinearizationExp10:
		return math.Pow(10, y), nil
	case LinearizationExp2:
		return math.Pow(2, y), nil
	case LinearizationInverse:
		return 1 / y, nil
	case LinearizationSqr:
		return y * y, nil
	case LinearizationCube:
		return y * y * y, nil
	case LinearizationSqrt:
		return math.Sqrt(y), nil
	case LinearizationCubeRoot:
		return math.Cbrt(y), nil
	}
	return 0, errors.Errorf("sdr: sensor %02x: unknown linearization %d", s.Number, s.Linearization)
}

// Units returns the unit string of the sensor, such as "degrees C",
// "% Watts" or "Volts/second".
func (s *SensorRecord) Units() string {
	base := unitName(s.BaseUnit)

	switch (s.Units1 >> 1) & 0x03 {
	case 1:
		base = fmt.Sprintf("%s/%s", base, unitName(s.ModifierUnit))
	case 2:
		base = fmt.Sprintf("%s*%s", base, unitName(s.ModifierUnit))
	}

	if s.Units1&0x01 != 0 {
		return "% " + base
	}
	return base
}

func unitName(code uint8) string {
	if int(code) < len(unitNames) {
		return unitNames[code]
	}
	return fmt.Sprintf("unit %d", code)
}

// per section 43.17, table 43-15
var unitNames = []string{
	"unspecified",
	"degrees C", "degrees F", "degrees K",
	"Volts", "Amps", "Watts", "Joules",
	"Coulombs", "VA", "Nits",
	"lumen", "lux", "Candela",
	"kPa", "PSI", "Newton",
	"CFM", "RPM", "Hz",
	"microsecond", "millisecond", "second", "minute", "hour",
	"day", "week", "mil", "inches", "feet", "cu in", "cu feet",
	"mm", "cm", "m", "cu cm", "cu m", "liters", "fluid ounce",
	"radians", "steradians", "revolutions", "cycles",
	"gravities", "ounce", "pound", "ft-lb", "oz-in", "gauss",
	"gilberts", "henry", "millihenry", "farad", "microfarad",
	"ohms", "siemens", "mole", "becquerel", "PPM", "reserved",
	"Decibels", "DbA", "DbC", "gray", "sievert",
	"color temp deg K", "bit", "kilobit", "megabit", "gigabit",
	"byte", "kilobyte", "megabyte", "gigabyte", "word", "dword",
	"qword", "line", "hit", "miss", "retry", "reset",
	"overflow", "underrun", "collision", "packets", "messages",
	"characters", "error", "correctable error", "uncorrectable error",
}
