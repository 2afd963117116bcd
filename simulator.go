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
	"hash/adler32"
	"net"
	"sync"

	"go.uber.org/zap"
)

// Handler for a simulated command
type Handler func(*Message) Response

// Simulator for IPMI
type Simulator struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	addr     net.UDPAddr
	conn     *net.UDPConn
	handlers map[NetworkFunction]map[Command]Handler
	ids      map[uint32]string
	deviceID DeviceIDResponse
	sel      *simSEL
	sdr      *simSDR
}

// NewSimulator constructs a Simulator with the given addr
func NewSimulator(addr net.UDPAddr) *Simulator {
	s := &Simulator{
		addr: addr,
		ids:  map[uint32]string{},
		deviceID: DeviceIDResponse{
			DeviceID:       0x20,
			IPMIVersion:    0x51,
			ManufacturerID: OemUnknown,
		},
		sel:      newSimSEL(),
		sdr:      newSimSDR(),
		handlers: map[NetworkFunction]map[Command]Handler{},
	}

	// Built-in handlers for session management
	s.handlers[NetworkFunctionApp] = map[Command]Handler{
		CommandGetDeviceID:              s.getDeviceID,
		CommandGetAuthCapabilities:      s.authenticationCapabilities,
		CommandGetSessionChallenge:      s.sessionChallenge,
		CommandActivateSession:          s.sessionActivate,
		CommandSetSessionPrivilegeLevel: s.sessionPrivilege,
		CommandCloseSession:             s.sessionClose,
	}

	s.handlers[NetworkFunctionStorage] = map[Command]Handler{
		CommandGetSELInfo:           s.selInfo,
		CommandGetSELAllocationInfo: s.selAllocationInfo,
		CommandReserveSEL:           s.reserveSEL,
		CommandGetSELEntry:          s.getSELEntry,
		CommandDeleteSELEntry:       s.deleteSELEntry,
		CommandClearSEL:             s.clearSEL,
		CommandGetSELTime:           s.getSELTime,
		CommandSetSELTime:           s.setSELTime,
		CommandReserveSDRRepository: s.reserveSDR,
		CommandGetSDR:               s.getSDR,
	}

	return s
}

// SetHandler sets the command handler for the given netfn and command
func (s *Simulator) SetHandler(netfn NetworkFunction, command Command, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handlers[netfn]; !ok {
		s.handlers[netfn] = map[Command]Handler{}
	}
	s.handlers[netfn][command] = handler
}

// SetManufacturer sets the IANA id reported by Get Device ID
func (s *Simulator) SetManufacturer(id OemID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deviceID.ManufacturerID = id
}

// NewConnection to this Simulator instance
func (s *Simulator) NewConnection() *Connection {
	addr := s.LocalAddr()
	return &Connection{
		Hostname:  addr.IP.String(),
		Port:      addr.Port,
		Interface: InterfaceLAN,
	}
}

// LocalAddr returns the address the server is bound to.
func (s *Simulator) LocalAddr() *net.UDPAddr {
	if s.conn != nil {
		return s.conn.LocalAddr().(*net.UDPAddr)
	}
	return nil
}

// Run the Simulator.
func (s *Simulator) Run() error {
	var err error
	s.conn, err = net.ListenUDP("udp4", &s.addr)
	if err != nil {
		return err
	}

	s.wg.Add(1)

	go func() {
		_ = s.serve()
		s.wg.Done()
	}()

	return nil
}

// Stop the Simulator.
func (s *Simulator) Stop() {
	_ = s.conn.Close()
	s.wg.Wait()
}

func (s *Simulator) getDeviceID(*Message) Response {
	res := s.deviceID
	res.CompletionCode = CommandCompleted
	return &res
}

func (s *Simulator) authenticationCapabilities(*Message) Response {
	return &AuthCapabilitiesResponse{
		CompletionCode:  CommandCompleted,
		ChannelNumber:   0x01,
		AuthTypeSupport: 1<<AuthTypeNone | 1<<AuthTypeMD5 | 1<<AuthTypePassword,
	}
}

func (s *Simulator) sessionChallenge(m *Message) Response {
	// Convert username to a uint32 and use as the SessionID.
	// The SessionID will be propagated such that all requests
	// for this session include the ID, which can be used to
	// dispatch requests.
	if len(m.Data) < 1 {
		return ErrShortData
	}
	username := bytes.TrimRight(m.Data[1:], "\000")
	hash := adler32.New()
	_, _ = hash.Write(username)
	id := hash.Sum32()
	s.ids[id] = string(username)

	return &SessionChallengeResponse{
		CompletionCode:     CommandCompleted,
		TemporarySessionID: id,
	}
}

func (s *Simulator) sessionActivate(m *Message) Response {
	req := &ActivateSessionRequest{}
	if err := messageDataFromBytes(m.Data, req); err != nil {
		return ErrShortData
	}

	return &ActivateSessionResponse{
		CompletionCode: CommandCompleted,
		AuthType:       req.AuthType,
		SessionID:      m.SessionID,
		InboundSeq:     m.Sequence,
		MaxPriv:        PrivLevelAdmin,
	}
}

func (s *Simulator) sessionPrivilege(m *Message) Response {
	if len(m.Data) < 1 {
		return ErrShortData
	}
	return &SessionPrivilegeLevelResponse{
		CompletionCode:    CommandCompleted,
		NewPrivilegeLevel: m.Data[0],
	}
}

func (s *Simulator) sessionClose(*Message) Response {
	return CommandCompleted
}

func (s *Simulator) ipmiCommand(m *Message) []byte {
	response := Response(ErrInvalidCommand)

	s.mu.Lock()
	if commands, ok := s.handlers[m.NetFn()]; ok {
		if handler, ok := commands[m.Command]; ok {
			m.RequestID = s.ids[m.SessionID]
			response = handler(m)
		}
	}
	s.mu.Unlock()

	// response netfn is the request netfn + 1, addresses are swapped
	reply := &Message{
		rmcpHeader:  m.rmcpHeader,
		ipmiSession: m.ipmiSession,
		AuthCode:    m.AuthCode,
		ipmiHeader: &ipmiHeader{
			RsAddr:     m.RqAddr,
			NetFnRsLUN: uint8(m.NetFn()+1)<<2 | m.NetFnRsLUN&3,
			RqAddr:     m.RsAddr,
			RqSeq:      m.RqSeq,
			Command:    m.Command,
		},
	}

	return reply.toBytes(messageDataToBytes(response))
}

func (s *Simulator) asfCommand(m *asfMessage) []byte {
	if m.MessageType != asfMessageTypePing {
		zap.S().Warnw("ASF message type not supported", "type", m.MessageType)
		return nil
	}

	pong := &asfMessage{
		rmcpHeader: m.rmcpHeader,
		asfHeader: &asfHeader{
			IANAEnterpriseNumber: m.IANAEnterpriseNumber,
			MessageType:          asfMessageTypePong,
			MessageTag:           m.MessageTag,
		},
	}

	return pong.toBytes(&asfPong{
		IANAEnterpriseNumber: m.IANAEnterpriseNumber,
		SupportedEntities:    asfEntitiesIPMI | 0x01, // IPMI, ASF 1.0
	})
}

func (s *Simulator) serve() error {
	buf := make([]byte, ipmiBufSize)

	for {
		var response []byte

		n, addr, err := s.conn.ReadFrom(buf)
		if err != nil {
			return err // conn closed
		}

		header, err := rmcpHeaderFromBytes(buf[:n])
		if err != nil {
			zap.S().Warnw("dropping packet", "err", err)
			continue
		}

		switch header.Class {
		case rmcpClassASF:
			m, err := asfMessageFromBytes(buf[:n])
			if err != nil {
				zap.S().Warnw("dropping ASF packet", "err", err)
				continue
			}
			response = s.asfCommand(m)
		case rmcpClassIPMI:
			m, err := messageFromBytes(buf[:n])
			if err != nil {
				zap.S().Warnw("dropping IPMI packet", "err", err)
				continue
			}
			response = s.ipmiCommand(m)
		default:
			zap.S().Warnw("unsupported RMCP class", "class", header.Class)
			continue
		}

		if response == nil {
			continue
		}

		_, err = s.conn.WriteTo(response, addr)
		if err != nil {
			return err // conn closed
		}
	}
}
