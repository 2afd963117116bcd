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
	"encoding/hex"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ipmitool raw reports failures as "... rsp=0xcb): Requested sensor, ..."
var toolCompletionCode = regexp.MustCompile(`rsp=0x([0-9a-fA-F]{1,2})`)

type tool struct {
	*Connection
	// run ipmitool on Hostname over ssh, talking to the local BMC
	remote bool
}

func newToolTransport(c *Connection) transport {
	return &tool{Connection: c}
}

func newSSHToolTransport(c *Connection) transport {
	return &tool{Connection: c, remote: true}
}

func (t *tool) open() error {
	return nil
}

func (t *tool) close() error {
	return nil
}

func (t *tool) send(req *Request, res Response) error {
	// ipmitool ... raw .. .. ..
	args := append([]string{"raw"}, requestToStrings(req)...)

	output, err := t.run(args...)
	if err != nil {
		if cc, ok := toolCompletionCodeFrom(err); ok {
			return cc
		}
		return err
	}

	return responseFromString(output, res)
}

func (t *tool) options() []string {
	intf := t.Interface
	if t.remote || intf == InterfaceOpen {
		return []string{"-I", InterfaceOpen}
	}
	if intf == "" {
		intf = InterfaceLANPlus
	}

	options := []string{
		"-H", t.Hostname,
		"-U", t.Username,
		"-P", t.Password,
		"-I", intf,
	}

	if t.Port != 0 {
		options = append(options, "-p", strconv.Itoa(t.Port))
	}

	return options
}

func (t *tool) path() string {
	if t.Path == "" {
		return "ipmitool"
	}
	return t.Path
}

func (t *tool) cmd(args ...string) *exec.Cmd {
	opts := append(t.options(), args...)
	return exec.Command(t.path(), opts...)
}

func (t *tool) run(args ...string) (string, error) {
	if t.remote {
		line := append([]string{t.path()}, t.options()...)
		return t.OutputSSH(strings.Join(append(line, args...), " "))
	}

	cmd := t.cmd(args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", &ExecError{
			Cmd:    cmd.Path + " " + strings.Join(cmd.Args[1:], " "),
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return stdout.String(), nil
}

func toolCompletionCodeFrom(err error) (CompletionCode, bool) {
	e, ok := err.(*ExecError)
	if !ok {
		return 0, false
	}
	m := toolCompletionCode.FindStringSubmatch(e.Stderr)
	if m == nil {
		return 0, false
	}
	code, perr := strconv.ParseUint(m[1], 16, 8)
	if perr != nil {
		return 0, false
	}
	return CompletionCode(code), true
}

func requestToBytes(r *Request) []byte {
	data := messageDataToBytes(r.Data)
	msg := make([]byte, 2+len(data))
	msg[0] = uint8(r.NetworkFunction)
	msg[1] = uint8(r.Command)
	copy(msg[2:], data)
	return msg
}

func requestToStrings(r *Request) []string {
	msg := requestToBytes(r)
	return rawEncode(msg)
}

func responseFromBytes(msg []byte, r Response) error {
	buf := make([]byte, 1+len(msg))
	buf[0] = uint8(CommandCompleted)
	copy(buf[1:], msg)
	return messageDataFromBytes(buf, r)
}

func responseFromString(s string, r Response) error {
	msg, err := rawDecode(s)
	if err != nil {
		return err
	}
	return responseFromBytes(msg, r)
}

func rawDecode(data string) ([]byte, error) {
	var buf bytes.Buffer

	// ipmitool wraps long responses across lines
	for _, s := range strings.Fields(data) {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrapf(err, "ipmitool output %q", s)
		}
		buf.Write(b)
	}

	return buf.Bytes(), nil
}

func rawEncode(data []byte) []string {
	n := len(data)
	buf := make([]string, 0, n)

	// ipmitool needs every byte to be a separate argument
	for i := 0; i < n; i++ {
		buf = append(buf, "0x"+hex.EncodeToString(data[i:i+1]))
	}

	return buf
}
