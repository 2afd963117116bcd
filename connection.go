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
	"bytes"
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
)

// Interface names understood by NewClient. Any other value is passed
// through to ipmitool's -I option.
const (
	InterfaceLAN     = "lan"
	InterfaceLANPlus = "lanplus"
	InterfaceOpen    = "open"
	InterfaceSSH     = "ssh"
)

// Connection properties for a Client
type Connection struct {
	Path      string
	Hostname  string
	Port      int
	Username  string
	Password  string
	Interface string
	SSHPort   int
	SSHOpts   []string
	Timeout   time.Duration
	Retries   int
}

func (c *Connection) port() int {
	if c.Port == 0 {
		return 623
	}
	return c.Port
}

func (c *Connection) timeout() time.Duration {
	if c.Timeout == 0 {
		return time.Second * 5
	}
	return c.Timeout
}

func (c *Connection) sshPort() string {
	if c.SSHPort == 0 {
		return "22"
	}
	return strconv.Itoa(c.SSHPort)
}

// DialSSH calls ssh.Dial with the given Connection
func (c *Connection) DialSSH() (*ssh.Client, error) {
	config := &ssh.ClientConfig{
		User: c.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(c.Password),
		},
		// same policy as the exec path: BMC host keys are rarely stable
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         c.timeout(),
	}

	address := net.JoinHostPort(c.Hostname, c.sshPort())
	return ssh.Dial("tcp", address, config)
}

// OutputSSH runs the given command line over ssh, returning its stdout
func (c *Connection) OutputSSH(cmd string) (string, error) {
	var stdout, stderr bytes.Buffer

	if len(c.SSHOpts) > 0 {
		// go ssh and some BMCs have no cipher in common..
		// assuming for now that SSHOpts includes '-i'
		opts := []string{
			"-p", c.sshPort(),
			"-o", "UserKnownHostsFile=/dev/null",
			"-o", "StrictHostKeyChecking=no",
			"-o", "BatchMode=yes",
			c.Hostname,
			cmd,
		}
		ssh := exec.Command("ssh", append(c.SSHOpts, opts...)...)
		ssh.Stdout = &stdout
		ssh.Stderr = &stderr
		if err := ssh.Run(); err != nil {
			return "", &ExecError{Cmd: cmd, Stderr: stderr.String(), Err: err}
		}
		return stdout.String(), nil
	}

	// with no SSHOpts, assume we can do password auth with pure go ssh client
	client, err := c.DialSSH()
	if err != nil {
		return "", err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", err
	}
	defer session.Close()

	session.Stdout = &stdout
	session.Stderr = &stderr
	if err := session.Run(cmd); err != nil {
		return "", &ExecError{Cmd: cmd, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}

// ExecError is returned when ipmitool exits non-zero, locally or over ssh
type ExecError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("run %s: %s (%s)", e.Cmd, e.Stderr, e.Err)
}
