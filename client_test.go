// Copyright (c) 2014 VMware, Inc. All Rights Reserved.

package ipmi

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient(t *testing.T) {
	s := NewSimulator(net.UDPAddr{Port: 0})
	err := s.Run()
	assert.NoError(t, err)

	client, err := NewClient(s.NewConnection())
	assert.NoError(t, err)

	err = client.Open()
	assert.NoError(t, err)

	id, err := client.DeviceID()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x51), id.IPMIVersion)

	oem, err := client.Manufacturer()
	assert.NoError(t, err)
	assert.Equal(t, OemUnknown, oem)

	s.SetManufacturer(OemKontron)
	oem, err = client.Manufacturer()
	assert.NoError(t, err)
	assert.Equal(t, OemKontron, oem)

	s.SetHandler(NetworkFunctionApp, CommandGetDeviceID, func(*Message) Response {
		return ErrNodeBusy
	})
	oem, err = client.Manufacturer()
	assert.Equal(t, ErrNodeBusy, err)
	assert.Equal(t, OemUnknown, oem)

	err = client.Close()
	assert.NoError(t, err)
	s.Stop()
}
