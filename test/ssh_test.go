// Copyright (c) 2014 VMware, Inc. All Rights Reserved.

package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ipmi "github.com/vmware/goipmi-sel"
	"github.com/vmware/goipmi-sel/sel"
	"golang.org/x/crypto/ssh"
)

func TestDialSSH(t *testing.T) {
	var lastCmd string
	var status int

	c := &ipmi.Connection{
		Username: "multi",
		Password: "none",
		Hostname: "127.0.0.1",
	}

	wg := StartSSHExecServer(c, func(ch ssh.Channel, cmd string) int {
		lastCmd = cmd
		return status
	})

	client, err := c.DialSSH()
	require.NoError(t, err)

	tests := []struct {
		cmd    string
		status int
	}{
		{"cal", 1},
		{"date", 0},
	}

	for _, test := range tests {
		status = test.status

		session, err := client.NewSession()
		assert.NoError(t, err)

		err = session.Run(test.cmd)
		if test.status == 0 {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
		assert.Equal(t, test.cmd, lastCmd)
		session.Close()
	}

	client.Close()
	wg.Wait()
}

func TestOutputSSH(t *testing.T) {
	tests := []struct {
		cmd    string
		status int
		stdout string
		stderr string
	}{
		{"date", 0, "Fri Mar  2 14:13:20 UTC 2018\n", ""},
		{"cal", 1, "", "cal: not found\n"},
	}

	for _, test := range tests {
		c := &ipmi.Connection{
			Username: "gossh",
			Password: "none",
			Hostname: "127.0.0.1",
		}

		var cmds []string
		wg := StartSSHExecServer(c, func(ch ssh.Channel, cmd string) int {
			cmds = append(cmds, cmd)
			fmt.Fprint(ch, test.stdout)
			fmt.Fprint(ch.Stderr(), test.stderr)
			return test.status
		})

		out, err := c.OutputSSH(test.cmd)
		if test.status == 0 {
			assert.NoError(t, err)
			assert.Equal(t, test.stdout, out)
		} else {
			if assert.IsType(t, &ipmi.ExecError{}, err) {
				assert.Equal(t, test.stderr, err.(*ipmi.ExecError).Stderr)
			}
		}
		wg.Wait()
		assert.Equal(t, []string{test.cmd}, cmds)
	}
}

func TestSSHToolTransport(t *testing.T) {
	c := &ipmi.Connection{
		Username:  "root",
		Password:  "calvin",
		Hostname:  "127.0.0.1",
		Interface: ipmi.InterfaceSSH,
	}

	client, err := ipmi.NewClient(c)
	require.NoError(t, err)
	require.NoError(t, client.Open())
	defer client.Close()

	var lastCmd string
	wg := StartSSHExecServer(c, func(ch ssh.Channel, cmd string) int {
		lastCmd = cmd
		// version 1.5, 2 entries, 8160 bytes free, delete, reserve and alloc info supported
		fmt.Fprintln(ch, " 51 02 00 e0 1f 00 00 00 00 00 00 00 00 0b")
		return 0
	})

	ctx := context.Background()
	info, err := sel.NewClient(client).Info(ctx)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, "ipmitool -I open raw 0x0a 0x40", lastCmd)
	assert.Equal(t, uint8(0x51), info.Version)
	assert.Equal(t, uint16(2), info.Entries)
	assert.Equal(t, uint16(8160), info.FreeSpace)
	assert.Equal(t, uint8(ipmi.SELDeleteSupported|ipmi.SELReserveSupported|ipmi.SELAllocInfoSupported), info.Operations)

	// completion codes are parsed from the ipmitool error
	wg = StartSSHExecServer(c, func(ch ssh.Channel, cmd string) int {
		fmt.Fprintln(ch.Stderr(), "Unable to send RAW command (channel=0x0 netfn=0xa lun=0x0 cmd=0x42 rsp=0xcb): Requested sensor, data, or record not found")
		return 1
	})

	err = sel.NewClient(client).Get(ctx, []uint16{1}, func(sel.Record) error {
		t.Error("unexpected record")
		return nil
	})
	assert.Error(t, err)
	wg.Wait()
}
