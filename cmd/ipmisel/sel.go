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
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	ipmi "github.com/vmware/goipmi-sel"
	"github.com/vmware/goipmi-sel/archive"
	"github.com/vmware/goipmi-sel/sdr"
	"github.com/vmware/goipmi-sel/sel"
)

const setTimeLayout = "01/02/2006 15:04:05"

func newSELCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sel",
		Short: "System Event Log commands",
	}

	cmd.AddCommand(
		newInfoCommand(a),
		newListCommand(a, "list", false),
		newListCommand(a, "elist", true),
		newGetCommand(a),
		newDeleteCommand(a),
		newClearCommand(a),
		newSaveCommand(a),
		newWriteRawCommand(a),
		newReadRawCommand(a),
		newTimeCommand(a),
		newArchiveCommand(a),
	)

	return cmd
}

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print SEL information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withClient(func(_ *ipmi.Client, c *sel.Client) error {
				info, err := c.Info(ctx)
				if err != nil {
					return err
				}

				var alloc *ipmi.SELAllocationInfoResponse
				if info.Operations&ipmi.SELAllocInfoSupported != 0 {
					alloc, err = c.AllocationInfo(ctx)
					if err != nil {
						a.log.Warnw("unable to get allocation info", "err", err)
					}
				}

				return a.printer(a.out, nil).PrintInfo(info, alloc)
			})
		},
	}
}

// parseWindow reads the optional "first N" or "last N" arguments
func parseWindow(args []string) (string, int, error) {
	if len(args) == 0 {
		return "", 0, nil
	}
	if len(args) != 2 || (args[0] != "first" && args[0] != "last") {
		return "", 0, errors.Errorf("expected 'first <n>' or 'last <n>', got %q", strings.Join(args, " "))
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		return "", 0, errors.Errorf("invalid record count %q", args[1])
	}
	return args[0], n, nil
}

func newListCommand(a *app, name string, extended bool) *cobra.Command {
	short := "List SEL records"
	if extended {
		short = "List SEL records with sensor names and readings from the SDR repository"
	}

	return &cobra.Command{
		Use:   name + " [first|last <n>]",
		Short: short,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, n, err := parseWindow(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return a.withClient(func(client *ipmi.Client, c *sel.Client) error {
				var sensors sel.SensorSource
				if extended {
					repo, err := sdr.Fetch(ctx, client, sdr.WithLogger(a.log))
					if err != nil {
						a.log.Warnw("unable to read SDR repository, sensor names unavailable", "err", err)
					} else {
						sensors = repo
					}
				}

				p := a.printer(a.out, a.resolver(client, sensors))
				p.Extended = extended

				switch window {
				case "first":
					return c.First(ctx, n, p.Print)
				case "last":
					return c.Last(ctx, n, p.Print)
				}
				return c.Walk(ctx, p.Print)
			})
		},
	}
}

func parseIDs(args []string) ([]uint16, error) {
	ids := make([]uint16, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 0, 16)
		if err != nil {
			return nil, errors.Errorf("invalid record id %q", arg)
		}
		ids = append(ids, uint16(id))
	}
	return ids, nil
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Print SEL records in verbose form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return a.withClient(func(client *ipmi.Client, c *sel.Client) error {
				p := a.printer(a.out, a.resolver(client, nil))
				return c.Get(ctx, ids, p.PrintVerbose)
			})
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete SEL records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return a.withClient(func(_ *ipmi.Client, c *sel.Client) error {
				deleted, err := c.Delete(ctx, ids...)
				for _, id := range deleted {
					fmt.Fprintf(a.out, "Deleted entry %d\n", id)
				}
				return err
			})
		},
	}
}

func newClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Erase the SEL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withClient(func(_ *ipmi.Client, c *sel.Client) error {
				fmt.Fprintln(a.out, "Clearing SEL.  Please allow a few seconds to erase.")
				return c.Clear(ctx)
			})
		},
	}
}

// create opens name for writing, calling fn with it
func create(name string, fn func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func newSaveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Save the SEL records to a text file, one hex record per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withClient(func(client *ipmi.Client, c *sel.Client) error {
				r := a.resolver(client, nil)
				return create(args[0], func(f *os.File) error {
					return c.Walk(ctx, a.printer(f, r).Save)
				})
			})
		},
	}
}

func newWriteRawCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "writeraw <file>",
		Short: "Save the SEL records in raw binary form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withClient(func(_ *ipmi.Client, c *sel.Client) error {
				n := 0
				err := create(args[0], func(f *os.File) error {
					return c.Walk(ctx, func(rec sel.Record) error {
						n++
						return sel.WriteRaw(f, rec)
					})
				})
				if err != nil {
					return err
				}
				a.log.Infow("wrote raw SEL", "file", args[0], "records", n)
				return nil
			})
		},
	}
}

func newReadRawCommand(a *app) *cobra.Command {
	var saved bool

	cmd := &cobra.Command{
		Use:   "readraw <file>",
		Short: "Print the records of a raw SEL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(a.out, nil)
			if !saved {
				return sel.ReadRawFile(args[0], p.Print)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return sel.ReadSaved(f, p.Print)
		},
	}

	cmd.Flags().BoolVar(&saved, "saved", false, "read a file written by sel save")
	return cmd
}

func newTimeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Get or set the SEL clock",
	}

	get := &cobra.Command{
		Use:  "get",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withClient(func(_ *ipmi.Client, c *sel.Client) error {
				t, err := c.Time(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, t.In(a.location()).Format(setTimeLayout))
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:  "set <MM/DD/YYYY HH:MM:SS>",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.ParseInLocation(setTimeLayout, strings.Join(args, " "), a.location())
			if err != nil {
				return errors.Wrap(err, "invalid time, expected MM/DD/YYYY HH:MM:SS")
			}

			ctx := cmd.Context()
			return a.withClient(func(_ *ipmi.Client, c *sel.Client) error {
				if err := c.SetTime(ctx, t); err != nil {
					return err
				}
				fmt.Fprintln(a.out, t.In(a.location()).Format(setTimeLayout))
				return nil
			})
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}

func newArchiveCommand(a *app) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "archive <db>",
		Short: "Copy the SEL into a SQLite archive",
		Long: `Copy the SEL into a SQLite archive. Records already archived for the host
are skipped, so the log can be archived before every clear.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			store := archive.NewStore(db)
			host := a.connection().Hostname
			ctx := cmd.Context()

			if show {
				return store.Records(ctx, host, a.printer(a.out, nil).Print)
			}

			return a.withClient(func(client *ipmi.Client, c *sel.Client) error {
				walk := func(fn sel.RecordFunc) error {
					return c.Walk(ctx, fn)
				}
				b, err := store.Archive(ctx, host, a.resolver(client, nil), walk)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Archived %d records (%d already present) in batch %s\n", b.Added, b.Skipped, b.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the records archived for --host instead")
	return cmd
}
