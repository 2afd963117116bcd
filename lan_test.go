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

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLAN(t *testing.T) {
	s := NewSimulator(net.UDPAddr{Port: 0})
	err := s.Run()
	assert.NoError(t, err)

	c := &Connection{
		Hostname:  "127.0.0.1",
		Port:      s.LocalAddr().Port,
		Username:  "vmware",
		Password:  "cow",
		Interface: "lan",
	}

	tr, err := newTransport(c)
	assert.NoError(t, err)

	err = tr.open()
	assert.NoError(t, err)

	req := &Request{
		NetworkFunctionApp,
		CommandGetDeviceID,
		&DeviceIDRequest{},
	}
	res := &DeviceIDResponse{}

	err = tr.send(req, res)
	assert.NoError(t, err)

	assert.Equal(t, uint8(0x51), res.IPMIVersion)

	req.Command = 0xff
	err = tr.send(req, res)
	assert.Equal(t, ErrInvalidCommand, err)

	err = tr.close()
	assert.NoError(t, err)
	s.Stop()
}

// lossyProxy relays datagrams between a client and the simulator,
// dropping client packets while drop is positive.
type lossyProxy struct {
	mu     sync.Mutex
	conn   *net.UDPConn
	client *net.UDPAddr
	drop   int
}

func newLossyProxy(t *testing.T, target *net.UDPAddr) *lossyProxy {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	upstream, err := net.DialUDP("udp4", nil, target)
	require.NoError(t, err)

	p := &lossyProxy{conn: conn}

	go func() {
		buf := make([]byte, ipmiBufSize)
		for {
			n, addr, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			p.mu.Lock()
			p.client = addr
			drop := p.drop > 0
			if drop {
				p.drop--
			}
			p.mu.Unlock()
			if !drop {
				_, _ = upstream.Write(buf[:n])
			}
		}
	}()

	go func() {
		buf := make([]byte, ipmiBufSize)
		for {
			n, err := upstream.Read(buf)
			if err != nil {
				return
			}
			p.mu.Lock()
			addr := p.client
			p.mu.Unlock()
			_, _ = conn.WriteToUDP(buf[:n], addr)
		}
	}()

	t.Cleanup(func() {
		_ = conn.Close()
		_ = upstream.Close()
	})
	return p
}

func (p *lossyProxy) dropNext(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drop = n
}

func TestLANRetransmit(t *testing.T) {
	s := NewSimulator(net.UDPAddr{Port: 0})
	require.NoError(t, s.Run())
	defer s.Stop()

	p := newLossyProxy(t, s.LocalAddr())

	c := &Connection{
		Hostname:  "127.0.0.1",
		Port:      p.conn.LocalAddr().(*net.UDPAddr).Port,
		Username:  "vmware",
		Password:  "cow",
		Interface: "lan",
		Timeout:   time.Millisecond * 50,
		Retries:   2,
	}

	tr, err := newTransport(c)
	require.NoError(t, err)
	require.NoError(t, tr.open())
	defer func() {
		_ = tr.close()
	}()

	req := &Request{
		NetworkFunctionApp,
		CommandGetDeviceID,
		&DeviceIDRequest{},
	}
	res := &DeviceIDResponse{}

	p.dropNext(2)
	err = tr.send(req, res)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x51), res.IPMIVersion)

	p.dropNext(3)
	err = tr.send(req, res)
	assert.True(t, isTimeout(err))
}

func TestLANNoResponse(t *testing.T) {
	// a socket that never answers
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer conn.Close()

	c := &Connection{
		Hostname:  "127.0.0.1",
		Port:      conn.LocalAddr().(*net.UDPAddr).Port,
		Interface: "lan",
		Timeout:   time.Millisecond * 20,
	}

	tr, err := newTransport(c)
	require.NoError(t, err)
	err = tr.open()
	assert.True(t, isTimeout(err))
	assert.NoError(t, tr.close())
}
