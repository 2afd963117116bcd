// Copyright (c) 2014 VMware, Inc. All Rights Reserved.

package ipmi

type transport interface {
	open() error
	close() error
	send(*Request, Response) error
}

func newTransport(c *Connection) (transport, error) {
	switch c.Interface {
	case InterfaceLAN:
		return newLanTransport(c), nil
	case InterfaceSSH:
		return newSSHToolTransport(c), nil
	default:
		// lanplus, open, serial-terminal, ... are left to ipmitool
		return newToolTransport(c), nil
	}
}
