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

package sdr

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	ipmi "github.com/vmware/goipmi-sel"
	"go.uber.org/zap"
)

// records are read in chunks, many BMCs reject longer partial reads
const chunkSize = 16

// Sender is the transport used to read the repository, satisfied by *ipmi.Client
type Sender interface {
	Send(*ipmi.Request, ipmi.Response) error
}

type sensorKey struct {
	owner, lun, number uint8
}

// Repository holds the sensor records read from the BMC's SDR repository,
// indexed by owner, LUN and sensor number.
type Repository struct {
	sensors []*SensorRecord
	index   map[sensorKey]*SensorRecord
}

// Option configures Fetch
type Option func(*fetcher)

// WithLogger sets the logger, zap.S() by default
func WithLogger(log *zap.SugaredLogger) Option {
	return func(f *fetcher) {
		f.log = log
	}
}

// WithRetries sets how many times the walk is restarted when another
// client modifies the repository.
func WithRetries(n uint64) Option {
	return func(f *fetcher) {
		f.retries = n
	}
}

type fetcher struct {
	sender  Sender
	log     *zap.SugaredLogger
	retries uint64
}

// NewRepository indexes the given sensor records
func NewRepository(sensors ...*SensorRecord) *Repository {
	r := &Repository{index: map[sensorKey]*SensorRecord{}}
	for _, s := range sensors {
		r.add(s)
	}
	return r
}

func (r *Repository) add(s *SensorRecord) {
	r.sensors = append(r.sensors, s)
	r.index[sensorKey{s.Owner, s.LUN, s.Number}] = s
}

// Fetch reads every sensor record in the repository. The walk restarts
// with a new reservation when it is canceled by another client.
func Fetch(ctx context.Context, s Sender, opts ...Option) (*Repository, error) {
	f := &fetcher{
		sender:  s,
		log:     zap.S(),
		retries: 3,
	}
	for _, opt := range opts {
		opt(f)
	}

	var repo *Repository
	walk := func() error {
		r, err := f.walk(ctx)
		if errors.Cause(err) == ipmi.ErrInvalidResv {
			f.log.Infow("SDR reservation canceled, restarting walk")
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		repo = r
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.retries), ctx)
	if err := backoff.Retry(walk, policy); err != nil {
		return nil, err
	}
	return repo, nil
}

func (f *fetcher) send(ctx context.Context, cmd ipmi.Command, data interface{}, res ipmi.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := &ipmi.Request{
		NetworkFunction: ipmi.NetworkFunctionStorage,
		Command:         cmd,
		Data:            data,
	}
	return f.sender.Send(req, res)
}

func (f *fetcher) get(ctx context.Context, resv, id uint16, offset, length uint8) (*ipmi.GetSDRResponse, error) {
	req := &ipmi.GetSDRRequest{
		ReservationID: resv,
		RecordID:      id,
		Offset:        offset,
		Length:        length,
	}
	res := &ipmi.GetSDRResponse{}
	if err := f.send(ctx, ipmi.CommandGetSDR, req, res); err != nil {
		return nil, errors.Wrapf(err, "get SDR %04x", id)
	}
	return res, nil
}

func (f *fetcher) walk(ctx context.Context) (*Repository, error) {
	res := &ipmi.ReserveSDRRepositoryResponse{}
	if err := f.send(ctx, ipmi.CommandReserveSDRRepository, &ipmi.ReserveSDRRepositoryRequest{}, res); err != nil {
		return nil, errors.Wrap(err, "reserve SDR repository")
	}
	resv := res.ReservationID

	repo := NewRepository()

	for id := ipmi.RecordFirst; id != ipmi.RecordLast; {
		hres, err := f.get(ctx, resv, id, 0, HeaderSize)
		if id == ipmi.RecordFirst && errors.Cause(err) == ipmi.ErrNoObj {
			// empty repository
			return repo, nil
		}
		if err != nil {
			return nil, err
		}
		h, err := ParseHeader(hres.Data)
		if err != nil {
			return nil, err
		}

		if h.Type == RecordTypeFullSensor || h.Type == RecordTypeCompactSensor {
			data, err := f.body(ctx, resv, id, h)
			if err != nil {
				return nil, err
			}
			s, err := ParseRecord(data)
			if err != nil {
				f.log.Warnw("skipping sensor record", "id", h.RecordID, "err", err)
			} else {
				repo.add(s)
			}
		} else {
			f.log.Debugw("skipping record", "id", h.RecordID, "type", h.Type)
		}

		if hres.NextRecordID == id {
			f.log.Warnw("next SDR id loops, ending walk", "id", id)
			break
		}
		id = hres.NextRecordID
	}

	return repo, nil
}

// body reads the record in chunks, returning it with its header
func (f *fetcher) body(ctx context.Context, resv, id uint16, h Header) ([]byte, error) {
	total := HeaderSize + int(h.Length)
	data := make([]byte, HeaderSize, total)
	data[0], data[1] = byte(h.RecordID), byte(h.RecordID>>8)
	data[2], data[3], data[4] = h.Version, h.Type, h.Length

	for offset := HeaderSize; offset < total; {
		n := total - offset
		if n > chunkSize {
			n = chunkSize
		}
		res, err := f.get(ctx, resv, id, uint8(offset), uint8(n))
		if err != nil {
			return nil, err
		}
		if len(res.Data) == 0 {
			return nil, errors.Errorf("sdr: record %04x: empty read at offset %d", id, offset)
		}
		data = append(data, res.Data...)
		offset += len(res.Data)
	}

	return data, nil
}

// Sensors returns the sensor records in the order they were read
func (r *Repository) Sensors() []*SensorRecord {
	return r.sensors
}

// Lookup the record of a sensor
func (r *Repository) Lookup(owner, lun, number uint8) (*SensorRecord, bool) {
	s, ok := r.index[sensorKey{owner, lun & 0x03, number}]
	return s, ok
}

// SensorName returns the id string of a sensor
func (r *Repository) SensorName(owner, lun, number uint8) (string, bool) {
	s, ok := r.Lookup(owner, lun, number)
	if !ok || s.Name == "" {
		return "", false
	}
	return s.Name, true
}

// Reading converts a raw reading of a sensor, returning the value and units
func (r *Repository) Reading(owner, lun, number, raw uint8) (float64, string, bool) {
	s, ok := r.Lookup(owner, lun, number)
	if !ok {
		return 0, "", false
	}
	v, err := s.Convert(raw)
	if err != nil {
		return 0, "", false
	}
	return v, s.Units(), true
}
