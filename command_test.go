// Copyright (c) 2014 VMware, Inc. All Rights Reserved.

package ipmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceIDResponse(t *testing.T) {
	res := &DeviceIDResponse{
		CompletionCode: CommandCompleted,
		DeviceID:       0x20,
		IPMIVersion:    0x51,
		ManufacturerID: OemKontron,
		ProductID:      0x1234,
	}

	buf := messageDataToBytes(res)
	assert.Len(t, buf, 12)
	assert.Equal(t, []byte{0x98, 0x3a, 0x00}, buf[7:10])

	got := &DeviceIDResponse{}
	assert.NoError(t, messageDataFromBytes(buf, got))
	assert.Equal(t, res, got)

	assert.Equal(t, ErrShortPacket, messageDataFromBytes(buf[:11], got))
}

func TestOemIDBytes(t *testing.T) {
	b := make([]byte, 3)
	OemVITA.PutBytes(b)
	assert.Equal(t, []byte{0xac, 0x81, 0x00}, b)
	assert.Equal(t, OemVITA, OemIDFromBytes(b))
}
