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


package main

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	ipmi "github.com/vmware/goipmi-sel"
	"github.com/vmware/goipmi-sel/sel"
)

func newSimulateCommand(a *app) *cobra.Command {
	var (
		listen       string
		manufacturer uint32
	)

	cmd := &cobra.Command{
		Use:   "simulate [raw file]",
		Short: "Serve a SEL over RMCP from the built-in BMC simulator",
		Long: `Serve a SEL over RMCP from the built-in BMC simulator, loaded from a file
written by 'sel writeraw'. Records are renumbered in file order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := net.ResolveUDPAddr("udp4", listen)
			if err != nil {
				return errors.Wrapf(err, "listen address %q", listen)
			}

			s := ipmi.NewSimulator(*addr)
			s.SetManufacturer(ipmi.OemID(manufacturer))

			if len(args) == 1 {
				err := sel.ReadRawFile(args[0], func(rec sel.Record) error {
					buf, err := rec.MarshalBinary()
					if err != nil {
						return err
					}
					var entry [sel.RecordSize]byte
					copy(entry[:], buf)
					s.AddSELEntry(entry)
					return nil
				})
				if err != nil {
					return err
				}
			}

			if err := s.Run(); err != nil {
				return err
			}
			defer s.Stop()

			a.log.Infow("simulator running", "addr", s.LocalAddr().String(), "records", len(s.SELEntries()))
			fmt.Fprintf(a.out, "listening on %s\n", s.LocalAddr())

			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:623", "UDP address to serve on")
	cmd.Flags().Uint32Var(&manufacturer, "manufacturer", 0, "IANA enterprise number reported by Get Device ID")
	return cmd
}
