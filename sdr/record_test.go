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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullSensor builds a full sensor record with the given conversion factors
func fullSensor(number uint8, name string, units1, unit uint8, m, b int, rexp, bexp int) []byte {
	data := make([]byte, fullSensorMinLength+len(name))
	data[2] = 0x51
	data[3] = RecordTypeFullSensor
	data[4] = uint8(len(data) - HeaderSize)
	data[5] = 0x20
	data[7] = number
	data[8] = 0x03
	data[9] = 0x01
	data[12] = 0x01
	data[13] = 0x01
	data[20] = units1
	data[21] = unit
	data[24] = uint8(m)
	data[25] = uint8(m>>2) & 0xc0
	data[26] = uint8(b)
	data[27] = uint8(b>>2) & 0xc0
	data[29] = uint8(rexp&0x0f)<<4 | uint8(bexp&0x0f)
	data[47] = 0xc0 | uint8(len(name))
	copy(data[48:], name)
	return data
}

func compactSensor(number uint8, name string) []byte {
	data := make([]byte, compactSensorMinLength+len(name))
	data[2] = 0x51
	data[3] = RecordTypeCompactSensor
	data[4] = uint8(len(data) - HeaderSize)
	data[5] = 0x20
	data[6] = 0x01
	data[7] = number
	data[12] = 0x05
	data[13] = 0x6f
	data[31] = 0xc0 | uint8(len(name))
	copy(data[32:], name)
	return data
}

func TestParseFullSensor(t *testing.T) {
	data := fullSensor(0x30, "CPU Temp", 0x00, 1, 1, 0, 0, 0)
	data[6] = 0xfd

	s, err := ParseRecord(data)
	require.NoError(t, err)
	assert.Equal(t, RecordTypeFullSensor, s.Type)
	assert.Equal(t, uint8(0x20), s.Owner)
	assert.Equal(t, uint8(0x01), s.LUN)
	assert.Equal(t, uint8(0x30), s.Number)
	assert.Equal(t, uint8(0x01), s.SensorType)
	assert.Equal(t, "CPU Temp", s.Name)
	assert.Equal(t, "degrees C", s.Units())
	assert.True(t, s.Analog())
}

func TestParseCompactSensor(t *testing.T) {
	s, err := ParseRecord(compactSensor(0x51, "Intrusion"))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x51), s.Number)
	assert.Equal(t, uint8(0x01), s.LUN)
	assert.Equal(t, uint8(0x05), s.SensorType)
	assert.Equal(t, "Intrusion", s.Name)
	assert.False(t, s.Analog())

	_, err = s.Convert(0x10)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseRecord([]byte{0x01, 0x00, 0x51})
	assert.Error(t, err)

	_, err = ParseRecord([]byte{0x01, 0x00, 0x51, 0x12, 0x10})
	assert.Equal(t, ErrUnsupportedType, err)

	_, err = ParseRecord(fullSensor(0x30, "CPU Temp", 0, 1, 1, 0, 0, 0)[:40])
	assert.Error(t, err)

	_, err = ParseRecord(compactSensor(0x30, "Fan")[:20])
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		should string
		record []byte
		raw    uint8
		value  float64
	}{
		{"apply M", fullSensor(1, "t", 0x00, 1, 2, 0, 0, 0), 45, 90},
		{"apply B and its exponent", fullSensor(1, "t", 0x00, 1, 1, 5, 0, 1), 10, 60},
		{"apply the result exponent", fullSensor(1, "v", 0x00, 4, 1, 0, -2, 0), 120, 1.2},
		{"sign extend M", fullSensor(1, "t", 0x00, 1, -1, 0, 0, 0), 10, -10},
		{"sign extend B", fullSensor(1, "t", 0x00, 1, 1, -10, 0, 0), 10, 0},
		{"read two's complement", fullSensor(1, "t", 0x80, 1, 1, 0, 0, 0), 0xfe, -2},
		{"read one's complement", fullSensor(1, "t", 0x40, 1, 1, 0, 0, 0), 0xfe, -1},
		{"read one's complement zero", fullSensor(1, "t", 0x40, 1, 1, 0, 0, 0), 0xff, 0},
	}

	for _, test := range tests {
		s, err := ParseRecord(test.record)
		require.NoError(t, err, test.should)
		v, err := s.Convert(test.raw)
		assert.NoError(t, err, test.should)
		assert.InDelta(t, test.value, v, 1e-9, test.should)
	}
}

func TestConvertLinearization(t *testing.T) {
	s, err := ParseRecord(fullSensor(1, "x", 0x00, 0, 1, 0, 0, 0))
	require.NoError(t, err)

	tests := map[uint8]float64{
		LinearizationLinear:   8,
		LinearizationLn:       math.Log(8),
		LinearizationLog10:    math.Log10(8),
		LinearizationLog2:     3,
		LinearizationE:        math.Exp(8),
		LinearizationExp10:    1e8,
		LinearizationExp2:     256,
		LinearizationInverse:  0.125,
		LinearizationSqr:      64,
		LinearizationCube:     512,
		LinearizationSqrt:     math.Sqrt(8),
		LinearizationCubeRoot: 2,
	}

	for l, expect := range tests {
		s.Linearization = l
		v, err := s.Convert(8)
		assert.NoError(t, err)
		assert.InDelta(t, expect, v, 1e-9, "linearization %d", l)
	}

	s.Linearization = 0x70
	_, err = s.Convert(8)
	assert.Error(t, err)

	s.Units1 = 0xc0
	_, err = s.Convert(8)
	assert.Error(t, err)
}

func TestUnits(t *testing.T) {
	tests := []struct {
		units1   uint8
		base     uint8
		modifier uint8
		units    string
	}{
		{0x00, 4, 0, "Volts"},
		{0x01, 6, 0, "% Watts"},
		{0x02, 4, 22, "Volts/second"},
		{0x04, 5, 22, "Amps*second"},
		{0x00, 0xf0, 0, "unit 240"},
	}

	for _, test := range tests {
		s := &SensorRecord{Units1: test.units1, BaseUnit: test.base, ModifierUnit: test.modifier}
		assert.Equal(t, test.units, s.Units())
	}
}
