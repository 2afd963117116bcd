// Copyright (c) 2014 VMware, Inc. All Rights Reserved.

package ipmi

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnectionDefaults(t *testing.T) {
	c := Connection{Hostname: "127.0.0.1"}
	assert.Equal(t, 623, c.port())
	assert.Equal(t, time.Second*5, c.timeout())
	assert.Equal(t, "22", c.sshPort())

	c = Connection{Hostname: "127.0.0.1", Port: 1623, SSHPort: 2222, Timeout: time.Millisecond}
	assert.Equal(t, 1623, c.port())
	assert.Equal(t, time.Millisecond, c.timeout())
	assert.Equal(t, "2222", c.sshPort())
}

func TestExecError(t *testing.T) {
	err := &ExecError{
		Cmd:    "ipmitool raw 0x0a 0x43",
		Stderr: "Unable to send RAW command (channel=0x0 netfn=0xa lun=0x0 cmd=0x43 rsp=0xcb): Requested sensor, data, or record not present",
		Err:    errors.New("exit status 1"),
	}
	assert.Contains(t, err.Error(), "run ipmitool raw 0x0a 0x43")
	assert.Contains(t, err.Error(), "(exit status 1)")

	cc, ok := toolCompletionCodeFrom(err)
	assert.True(t, ok)
	assert.Equal(t, ErrNoObj, cc)
}
