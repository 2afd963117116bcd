// Copyright (c) 2014 VMware, Inc. All Rights Reserved.

package test

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"net"
	"sync"

	ipmi "github.com/vmware/goipmi-sel"
	"golang.org/x/crypto/ssh"
)

// StartSSHExecServer runs an ssh server that accepts a single connection and handles only "exec" requests.
// The handler callback is given the ssh.Channel for io and command string.  The handler return
// value is propagated to the client via "exit-status".
func StartSSHExecServer(ic *ipmi.Connection, handler func(ssh.Channel, string) int) *sync.WaitGroup {
	config := &ssh.ServerConfig{
		PasswordCallback: func(c ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
			if c.User() == ic.Username && string(pass) == ic.Password {
				return nil, nil
			}
			return nil, errors.New("auth fail")
		},
	}
	if ic.Password == "" {
		config.NoClientAuth = true
	}
	config.AddHostKey(hostKey())

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	ic.SSHPort = l.Addr().(*net.TCPAddr).Port

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer l.Close()
		c, err := l.Accept()
		if err != nil {
			panic(err)
		}
		defer c.Close()

		conn, chans, reqs, err := ssh.NewServerConn(c, config)
		if err != nil {
			panic(err)
		}
		defer conn.Close()
		go ssh.DiscardRequests(reqs)

		for newChan := range chans {
			ch, requests, err := newChan.Accept()
			if err != nil {
				panic(err)
			}

			for req := range requests {
				if req.Type == "env" {
					_ = req.Reply(true, nil)
					continue
				} else if req.Type != "exec" {
					panic(req.Type)
				}
				_ = req.Reply(true, nil)
				rc := handler(ch, string(req.Payload[4:]))
				status := struct {
					Status uint32
				}{uint32(rc)}
				_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
				_ = ch.Close() // 1 exec per session (see ssh.Session.Start)
			}
		}
	}()
	return &wg
}

var (
	hostKeyOnce   sync.Once
	hostKeySigner ssh.Signer
)

// hostKey is generated once per test binary
func hostKey() ssh.Signer {
	hostKeyOnce.Do(func() {
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			panic(err)
		}
		hostKeySigner, err = ssh.NewSignerFromKey(key)
		if err != nil {
			panic(err)
		}
	})
	return hostKeySigner
}
