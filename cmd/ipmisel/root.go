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
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	ipmi "github.com/vmware/goipmi-sel"
	"github.com/vmware/goipmi-sel/sel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all commands of one invocation
type app struct {
	v        *viper.Viper
	out      io.Writer
	log      *zap.SugaredLogger
	registry *prometheus.Registry
	metrics  *sel.Metrics
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{
		v:        viper.New(),
		out:      out,
		log:      zap.S(),
		registry: prometheus.NewRegistry(),
	}
	a.metrics = sel.NewMetrics(a.registry)

	cmd := &cobra.Command{
		Use:           "ipmisel",
		Short:         "Read and manage the System Event Log of a BMC",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd.Flags()); err != nil {
				return err
			}
			a.setupLogger()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.writeMetrics()
		},
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.ipmisel.yaml)")
	flags.StringP("host", "H", "", "BMC hostname or address")
	flags.IntP("port", "p", 0, "BMC RMCP port (default 623)")
	flags.StringP("username", "U", "", "BMC username")
	flags.StringP("password", "P", "", "BMC password")
	flags.StringP("interface", "I", ipmi.InterfaceLAN, "transport: lan, ssh or an ipmitool interface")
	flags.String("path", "", "ipmitool path for tool transports")
	flags.Int("ssh-port", 0, "ssh port for the ssh transport (default 22)")
	flags.Duration("timeout", 0, "LAN request timeout (default 5s)")
	flags.Int("retries", 0, "LAN retransmits after a timeout")
	flags.Bool("csv", false, "comma separated output")
	flags.Bool("utc", false, "print times in UTC")
	flags.String("metrics-file", "", "write prometheus metrics to this textfile after the command")
	flags.Bool("debug", false, "debug logging")

	cmd.AddCommand(newSELCommand(a))
	cmd.AddCommand(newSimulateCommand(a))

	return cmd
}

func (a *app) loadConfig(flags *pflag.FlagSet) error {
	if err := a.v.BindPFlags(flags); err != nil {
		return err
	}

	a.v.SetEnvPrefix("ipmisel")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	file := a.v.GetString("config")
	if file == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		file = filepath.Join(home, ".ipmisel.yaml")
		if _, err := os.Stat(file); err != nil {
			return nil
		}
	}

	a.v.SetConfigFile(file)
	return errors.Wrap(a.v.ReadInConfig(), "read config")
}

func (a *app) setupLogger() {
	level := zapcore.InfoLevel
	if a.v.GetBool("debug") {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	a.log = logger.Sugar()
}

func (a *app) writeMetrics() error {
	file := a.v.GetString("metrics-file")
	if file == "" {
		return nil
	}
	return errors.Wrap(prometheus.WriteToTextfile(file, a.registry), "write metrics")
}

func (a *app) connection() *ipmi.Connection {
	return &ipmi.Connection{
		Hostname:  a.v.GetString("host"),
		Port:      a.v.GetInt("port"),
		Username:  a.v.GetString("username"),
		Password:  a.v.GetString("password"),
		Interface: a.v.GetString("interface"),
		Path:      a.v.GetString("path"),
		SSHPort:   a.v.GetInt("ssh-port"),
		Timeout:   a.v.GetDuration("timeout"),
		Retries:   a.v.GetInt("retries"),
	}
}

func (a *app) location() *time.Location {
	if a.v.GetBool("utc") {
		return time.UTC
	}
	return time.Local
}

// withClient opens a session to the BMC for the duration of fn
func (a *app) withClient(fn func(*ipmi.Client, *sel.Client) error) error {
	c := a.connection()
	if c.Hostname == "" && c.Interface != ipmi.InterfaceOpen {
		return errors.New("no BMC host given, use --host or IPMISEL_HOST")
	}

	client, err := ipmi.NewClient(c)
	if err != nil {
		return err
	}
	if err := client.Open(); err != nil {
		return errors.Wrapf(err, "open session to %s", c.Hostname)
	}
	defer func() {
		if err := client.Close(); err != nil {
			a.log.Warnw("error closing session", "host", c.Hostname, "err", err)
		}
	}()

	return fn(client, sel.NewClient(client, sel.WithLogger(a.log), sel.WithMetrics(a.metrics)))
}

// resolver for the BMC's manufacturer, falling back to the generic tables
func (a *app) resolver(client *ipmi.Client, sensors sel.SensorSource) *sel.Resolver {
	oem, err := client.Manufacturer()
	if err != nil {
		a.log.Warnw("unable to get manufacturer, using generic event tables", "err", err)
	}
	return sel.NewResolver(oem, sensors)
}

func (a *app) printer(w io.Writer, r *sel.Resolver) *sel.Printer {
	return &sel.Printer{
		Writer:   w,
		Resolver: r,
		CSV:      a.v.GetBool("csv"),
		Location: a.location(),
	}
}
