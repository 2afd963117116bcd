// Copyright (c) 2014 VMware, Inc. All Rights Reserved.

package ipmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageFromBytes(t *testing.T) {
	buf := make([]byte, rmcpHeaderSize+ipmiHeaderSize)
	_, err := messageFromBytes(buf)
	assert.Error(t, err)
	assert.Equal(t, ErrShortPacket, err)

	buf = make([]byte, ipmiBufSize)
	_, err = messageFromBytes(buf)
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidPacket, err)
}

func TestMessageResponse(t *testing.T) {
	m := &Message{
		rmcpHeader:  newRMCPHeader(rmcpClassIPMI),
		ipmiSession: &ipmiSession{},
		ipmiHeader: &ipmiHeader{
			RsAddr:     0x81,
			NetFnRsLUN: uint8(NetworkFunctionStorage+1) << 2,
			RqAddr:     0x20,
			Command:    CommandReserveSEL,
		},
	}

	buf := m.toBytes(messageDataToBytes(&ReserveSELResponse{ReservationID: 0x0102}))
	got, err := messageFromBytes(buf)
	assert.NoError(t, err)
	assert.Equal(t, NetworkFunctionStorage+1, got.NetFn())

	res := &ReserveSELResponse{}
	assert.NoError(t, got.Response(res))
	assert.Equal(t, uint16(0x0102), res.ReservationID)

	// a failed command carries only its completion code
	buf = m.toBytes(messageDataToBytes(ErrInvalidResv))
	got, err = messageFromBytes(buf)
	assert.NoError(t, err)
	assert.Equal(t, ErrInvalidResv, got.Response(res))

	buf[len(buf)-1]++
	_, err = messageFromBytes(buf)
	assert.Equal(t, ErrInvalidPacket, err)
}
