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


package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ipmi "github.com/vmware/goipmi-sel"
	"github.com/vmware/goipmi-sel/sdr"
	"github.com/vmware/goipmi-sel/sel"
)

const (
	thermalTripLine = "   1 | 03/02/2018 | 14:13:20 | Processor #0x01 | Thermal Trip | Asserted"
	cpuTempLine     = "   2 | 03/02/2018 | 14:13:20 | Temperature #0x30 | Upper Critical going high | Asserted"
)

func testEntries(t *testing.T) [][sel.RecordSize]byte {
	records := []*sel.StandardRecord{
		{
			RecordType:   sel.RecordTypeSystem,
			Timestamp:    1520000000,
			GeneratorID:  0x20,
			EvMRev:       0x04,
			SensorType:   0x07,
			SensorNumber: 0x01,
			EventType:    sel.EventTypeSensorSpecific,
			EventData:    [3]uint8{0x01, 0xff, 0xff},
		},
		{
			RecordType:   sel.RecordTypeSystem,
			Timestamp:    1520000000,
			GeneratorID:  0x20,
			EvMRev:       0x04,
			SensorType:   0x01,
			SensorNumber: 0x30,
			EventType:    sel.EventTypeThreshold,
			EventData:    [3]uint8{0x59, 0xb5, 0xb4},
		},
	}

	var entries [][sel.RecordSize]byte
	for _, rec := range records {
		buf, err := rec.MarshalBinary()
		require.NoError(t, err)
		var entry [sel.RecordSize]byte
		copy(entry[:], buf)
		entries = append(entries, entry)
	}
	return entries
}

// cpuTempSDR is a full sensor record for a linear temperature sensor
func cpuTempSDR() []byte {
	name := "CPU Temp"
	data := make([]byte, 48+len(name))
	data[2] = 0x51
	data[3] = sdr.RecordTypeFullSensor
	data[4] = uint8(len(data) - sdr.HeaderSize)
	data[5] = 0x20
	data[7] = 0x30
	data[12] = 0x01
	data[13] = 0x01
	data[21] = 1 // degrees C
	data[24] = 1 // M
	data[47] = 0xc0 | uint8(len(name))
	copy(data[48:], name)
	return data
}

// startBMC runs a simulator holding the test entries, returning it with
// the flags to reach it.
func startBMC(t *testing.T) (*ipmi.Simulator, []string) {
	t.Setenv("HOME", t.TempDir())

	s := ipmi.NewSimulator(net.UDPAddr{Port: 0})
	for _, entry := range testEntries(t) {
		s.AddSELEntry(entry)
	}
	s.AddSDR(cpuTempSDR())
	require.NoError(t, s.Run())
	t.Cleanup(s.Stop)

	addr := s.LocalAddr()
	return s, []string{"--host", addr.IP.String(), "--port", strconv.Itoa(addr.Port), "--utc"}
}

func run(t *testing.T, flags []string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(append(args, flags...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestSELInfo(t *testing.T) {
	_, flags := startBMC(t)

	out, err := run(t, flags, "sel", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "SEL Information\n")
	assert.Contains(t, out, "Entries          : 2\n")
	assert.Contains(t, out, "# of Alloc Units : 512\n")
}

func TestSELList(t *testing.T) {
	_, flags := startBMC(t)

	out, err := run(t, flags, "sel", "list")
	require.NoError(t, err)
	assert.Equal(t, []string{thermalTripLine, cpuTempLine}, lines(out))

	out, err = run(t, flags, "sel", "list", "last", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{cpuTempLine}, lines(out))

	out, err = run(t, flags, "sel", "list", "first", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{thermalTripLine}, lines(out))

	out, err = run(t, append(flags, "--csv"), "sel", "list", "first", "1")
	require.NoError(t, err)
	assert.Equal(t, "   1,03/02/2018,14:13:20,Processor #0x01,Thermal Trip,Asserted\n", out)

	_, err = run(t, flags, "sel", "list", "first")
	assert.Error(t, err)
	_, err = run(t, flags, "sel", "list", "middle", "1")
	assert.Error(t, err)
	_, err = run(t, flags, "sel", "list", "last", "0")
	assert.Error(t, err)
}

func TestSELEList(t *testing.T) {
	_, flags := startBMC(t)

	out, err := run(t, flags, "sel", "elist")
	require.NoError(t, err)
	assert.Equal(t, []string{
		thermalTripLine,
		"   2 | 03/02/2018 | 14:13:20 | Temperature CPU Temp | Upper Critical going high | Asserted | Reading 181 > Threshold 180 degrees C",
	}, lines(out))
}

func TestSELGet(t *testing.T) {
	_, flags := startBMC(t)

	out, err := run(t, flags, "sel", "get", "0x2", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "SEL Record ID          : 0002\n")
	assert.Contains(t, out, " Description           : Upper Critical going high\n")
	assert.NotContains(t, out, "0009")

	_, err = run(t, flags, "sel", "get", "nope")
	assert.Error(t, err)
}

func TestSELDelete(t *testing.T) {
	s, flags := startBMC(t)

	out, err := run(t, flags, "sel", "delete", "1", "7")
	require.NoError(t, err)
	assert.Equal(t, "Deleted entry 1\n", out)
	assert.Equal(t, []uint16{2}, s.SELEntries())
}

func TestSELClear(t *testing.T) {
	s, flags := startBMC(t)

	out, err := run(t, flags, "sel", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Clearing SEL.")
	assert.Empty(t, s.SELEntries())

	out, err = run(t, flags, "sel", "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSELRaw(t *testing.T) {
	_, flags := startBMC(t)
	dir := t.TempDir()
	raw := filepath.Join(dir, "sel.bin")
	metrics := filepath.Join(dir, "sel.prom")

	_, err := run(t, append(flags, "--metrics-file", metrics), "sel", "writeraw", raw)
	require.NoError(t, err)

	info, err := os.Stat(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(2*sel.RecordSize), info.Size())

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "ipmi_sel_records_total 2")

	out, err := run(t, []string{"--utc"}, "sel", "readraw", raw)
	require.NoError(t, err)
	assert.Equal(t, []string{thermalTripLine, cpuTempLine}, lines(out))

	// a trailing partial record is rejected
	f, err := os.OpenFile(raw, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.Write([]byte{0x01})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out, err = run(t, []string{"--utc"}, "sel", "readraw", raw)
	assert.Empty(t, out)
	ferr, ok := err.(*sel.RawFormatError)
	require.True(t, ok)
	assert.Equal(t, int64(32), ferr.Offset)
}

func TestSELSave(t *testing.T) {
	_, flags := startBMC(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "sel.txt")
	raw := filepath.Join(dir, "sel.bin")

	_, err := run(t, flags, "sel", "save", file)
	require.NoError(t, err)
	_, err = run(t, flags, "sel", "writeraw", raw)
	require.NoError(t, err)

	text, err := os.ReadFile(file)
	require.NoError(t, err)
	saved := lines(string(text))
	require.Len(t, saved, 2)
	assert.Equal(t, "01 00 02 00 5c 99 5a 20 00 04 07 01 6f 01 ff ff # "+strings.TrimSpace(thermalTripLine), saved[0])
	assert.True(t, strings.HasSuffix(saved[1], "# "+strings.TrimSpace(cpuTempLine)), saved[1])

	// the save file holds the same records as the raw form
	var expect, got []sel.Record
	collect := func(records *[]sel.Record) sel.RecordFunc {
		return func(rec sel.Record) error {
			*records = append(*records, rec)
			return nil
		}
	}
	require.NoError(t, sel.ReadRawFile(raw, collect(&expect)))
	require.NoError(t, sel.ReadSaved(bytes.NewReader(text), collect(&got)))
	require.Len(t, got, 2)
	assert.Equal(t, expect, got)

	out, err := run(t, []string{"--utc", "--saved"}, "sel", "readraw", file)
	require.NoError(t, err)
	assert.Equal(t, []string{thermalTripLine, cpuTempLine}, lines(out))
}

func TestSELTime(t *testing.T) {
	_, flags := startBMC(t)

	out, err := run(t, flags, "sel", "time", "set", "03/02/2018", "14:13:20")
	require.NoError(t, err)
	assert.Equal(t, "03/02/2018 14:13:20\n", out)

	out, err = run(t, flags, "sel", "time", "get")
	require.NoError(t, err)
	assert.Equal(t, "03/02/2018 14:13:20\n", out)

	_, err = run(t, flags, "sel", "time", "set", "yesterday")
	assert.Error(t, err)
}

func TestSELArchive(t *testing.T) {
	_, flags := startBMC(t)
	db := filepath.Join(t.TempDir(), "sel.db")

	out, err := run(t, flags, "sel", "archive", db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Archived 2 records (0 already present) in batch "), out)

	out, err = run(t, flags, "sel", "archive", db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Archived 0 records (2 already present) in batch "), out)

	out, err = run(t, flags, "sel", "archive", db, "--show")
	require.NoError(t, err)
	assert.Equal(t, []string{thermalTripLine, cpuTempLine}, lines(out))
}

func TestEnvironment(t *testing.T) {
	_, flags := startBMC(t)
	t.Setenv("IPMISEL_HOST", flags[1])
	t.Setenv("IPMISEL_PORT", flags[3])
	t.Setenv("IPMISEL_UTC", "true")

	out, err := run(t, nil, "sel", "list", "first", "1")
	require.NoError(t, err)
	assert.Equal(t, thermalTripLine+"\n", out)
}

func TestConfigFile(t *testing.T) {
	_, flags := startBMC(t)
	config := filepath.Join(t.TempDir(), "ipmisel.yaml")
	yaml := "host: " + flags[1] + "\nport: " + flags[3] + "\nutc: true\ncsv: true\n"
	require.NoError(t, os.WriteFile(config, []byte(yaml), 0600))

	out, err := run(t, []string{"--config", config}, "sel", "list", "last", "1")
	require.NoError(t, err)
	assert.Equal(t, "   2,03/02/2018,14:13:20,Temperature #0x30,Upper Critical going high,Asserted\n", out)

	_, err = run(t, []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, "sel", "info")
	assert.Error(t, err)
}

func TestNoHost(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := run(t, nil, "sel", "list")
	assert.Error(t, err)
}
