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

package sel

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	ipmi "github.com/vmware/goipmi-sel"
	"go.uber.org/zap"
)

// Sender is the transport used by Client, satisfied by *ipmi.Client
type Sender interface {
	Send(*ipmi.Request, ipmi.Response) error
}

// RecordFunc is called once per record, oldest first. Returning an error
// stops the walk and the error is returned to the caller.
type RecordFunc func(Record) error

var errEraseInProgress = errors.New("sel: erase in progress")

// Client drives the SEL storage commands. It issues one request at a
// time and holds no state between calls other than its options.
type Client struct {
	sender       Sender
	log          *zap.SugaredLogger
	metrics      *Metrics
	clearPoll    time.Duration
	clearRetries uint64
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the logger, zap.S() by default
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithMetrics sets the counters updated by the Client
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithClearPoll sets how often and how many times Clear polls the erasure status
func WithClearPoll(interval time.Duration, retries uint64) Option {
	return func(c *Client) {
		c.clearPoll = interval
		c.clearRetries = retries
	}
}

// NewClient creates a Client sending through s
func NewClient(s Sender, opts ...Option) *Client {
	c := &Client{
		sender:       s,
		log:          zap.S(),
		clearPoll:    time.Millisecond * 500,
		clearRetries: 20,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) send(ctx context.Context, op string, cmd ipmi.Command, data interface{}, res ipmi.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.metrics.request(op)

	req := &ipmi.Request{
		NetworkFunction: ipmi.NetworkFunctionStorage,
		Command:         cmd,
		Data:            data,
	}
	if err := c.sender.Send(req, res); err != nil {
		return commandError(op, err)
	}
	return nil
}

// Info returns the Get SEL Info response
func (c *Client) Info(ctx context.Context) (*ipmi.SELInfoResponse, error) {
	res := &ipmi.SELInfoResponse{}
	err := c.send(ctx, "info", ipmi.CommandGetSELInfo, &ipmi.SELInfoRequest{}, res)
	return res, err
}

// AllocationInfo returns the Get SEL Allocation Info response
func (c *Client) AllocationInfo(ctx context.Context) (*ipmi.SELAllocationInfoResponse, error) {
	res := &ipmi.SELAllocationInfoResponse{}
	err := c.send(ctx, "allocation_info", ipmi.CommandGetSELAllocationInfo, &ipmi.SELAllocationInfoRequest{}, res)
	return res, err
}

// Reserve the SEL, returning the reservation id
func (c *Client) Reserve(ctx context.Context) (uint16, error) {
	res := &ipmi.ReserveSELResponse{}
	if err := c.send(ctx, "reserve", ipmi.CommandReserveSEL, &ipmi.ReserveSELRequest{}, res); err != nil {
		return 0, errors.Wrap(err, "reserve SEL")
	}
	return res.ReservationID, nil
}

// Time returns the SEL clock
func (c *Client) Time(ctx context.Context) (time.Time, error) {
	res := &ipmi.GetSELTimeResponse{}
	if err := c.send(ctx, "get_time", ipmi.CommandGetSELTime, &ipmi.GetSELTimeRequest{}, res); err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(res.Time), 0), nil
}

// SetTime sets the SEL clock
func (c *Client) SetTime(ctx context.Context, t time.Time) error {
	req := &ipmi.SetSELTimeRequest{Time: uint32(t.Unix())}
	return c.send(ctx, "set_time", ipmi.CommandSetSELTime, req, &ipmi.SetSELTimeResponse{})
}

// getEntry fetches the whole record id. A completion code is returned as
// a *RecordError.
func (c *Client) getEntry(ctx context.Context, resv, id uint16) (*ipmi.GetSELEntryResponse, error) {
	req := &ipmi.GetSELEntryRequest{
		ReservationID: resv,
		RecordID:      id,
		Offset:        0x00,
		Length:        0xff,
	}
	res := &ipmi.GetSELEntryResponse{}

	err := c.send(ctx, "get_entry", ipmi.CommandGetSELEntry, req, res)
	if cc, ok := err.(ipmi.CompletionCode); ok {
		return nil, &RecordError{ID: id, Code: cc}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// retryZeroNext refetches a record whose next id came back as 0 mid-walk.
// Some BMC firmware reports 0 transiently; this is not part of the
// protocol, a second 0 ends the walk.
func (c *Client) retryZeroNext(ctx context.Context, resv, id uint16) (*ipmi.GetSELEntryResponse, error) {
	c.log.Debugw("next record id 0, retrying", "id", id)
	c.metrics.retry()
	return c.getEntry(ctx, resv, id)
}

// walkFrom follows the next record id chain starting at id, skipping the
// first skip records and stopping after limit records when limit > 0.
// It returns the number of records passed to fn.
func (c *Client) walkFrom(ctx context.Context, resv, id uint16, limit, skip int, fn RecordFunc) (int, error) {
	emitted, fetched := 0, 0

	for {
		if limit > 0 && emitted >= limit {
			return emitted, nil
		}

		res, err := c.getEntry(ctx, resv, id)
		if err != nil {
			return emitted, err
		}

		next, rec, derr := DecodeEntry(res.Data)
		if _, ok := res.NextRecordID(); ok && next == ipmi.RecordFirst && fetched > 0 {
			res, err = c.retryZeroNext(ctx, resv, id)
			if err != nil {
				return emitted, err
			}
			next, rec, derr = DecodeEntry(res.Data)
		}
		fetched++

		if derr != nil {
			if _, ok := res.NextRecordID(); !ok {
				return emitted, errors.Wrapf(derr, "record %04x", id)
			}
			c.log.Warnw("skipping record", "id", id, "err", derr)
			c.metrics.skipped(skipTruncated)
		} else if skip > 0 {
			skip--
		} else {
			c.metrics.record()
			if err := fn(rec); err != nil {
				return emitted, err
			}
			emitted++
		}

		switch next {
		case ipmi.RecordLast, ipmi.RecordFirst:
			return emitted, nil
		case id:
			c.log.Warnw("next record id loops, ending walk", "id", id)
			return emitted, nil
		}
		id = next
	}
}

// Walk calls fn for every record in the log, oldest first
func (c *Client) Walk(ctx context.Context, fn RecordFunc) error {
	return c.First(ctx, 0, fn)
}

// First calls fn for the n oldest records, or every record when n is 0
func (c *Client) First(ctx context.Context, n int, fn RecordFunc) error {
	if n < 0 {
		return errors.Errorf("sel: invalid record count %d", n)
	}

	info, err := c.Info(ctx)
	if err != nil {
		return err
	}
	if info.Entries == 0 {
		return nil
	}

	resv, err := c.Reserve(ctx)
	if err != nil {
		return err
	}

	_, err = c.walkFrom(ctx, resv, ipmi.RecordFirst, n, 0, fn)
	return err
}

// Get calls fn for each of the given records. Records the BMC cannot
// return are logged and skipped.
func (c *Client) Get(ctx context.Context, ids []uint16, fn RecordFunc) error {
	resv, err := c.Reserve(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		res, err := c.getEntry(ctx, resv, id)
		if re, ok := err.(*RecordError); ok {
			c.log.Warnw("unable to get record", "id", id, "err", re.Code)
			c.metrics.skipped(skipCompletionCode)
			continue
		}
		if err != nil {
			return err
		}

		_, rec, err := DecodeEntry(res.Data)
		if err != nil {
			c.log.Warnw("skipping record", "id", id, "err", err)
			c.metrics.skipped(skipTruncated)
			continue
		}

		c.metrics.record()
		if err := fn(rec); err != nil {
			return err
		}
	}

	return nil
}

// Delete the given records, returning the ids the BMC deleted. Records
// the BMC refuses to delete are logged and skipped.
func (c *Client) Delete(ctx context.Context, ids ...uint16) ([]uint16, error) {
	var deleted []uint16

	for _, id := range ids {
		// deleting an entry cancels the reservation
		resv, err := c.Reserve(ctx)
		if err != nil {
			return deleted, err
		}

		req := &ipmi.DeleteSELEntryRequest{ReservationID: resv, RecordID: id}
		res := &ipmi.DeleteSELEntryResponse{}
		err = c.send(ctx, "delete", ipmi.CommandDeleteSELEntry, req, res)
		if cc, ok := err.(ipmi.CompletionCode); ok {
			c.log.Warnw("unable to delete record", "id", id, "err", cc)
			continue
		}
		if err != nil {
			return deleted, err
		}

		deleted = append(deleted, res.RecordID)
	}

	return deleted, nil
}

// Clear erases the log and waits for the erasure to complete
func (c *Client) Clear(ctx context.Context) error {
	resv, err := c.Reserve(ctx)
	if err != nil {
		return err
	}

	clearSEL := func(op uint8) (*ipmi.ClearSELResponse, error) {
		res := &ipmi.ClearSELResponse{}
		err := c.send(ctx, "clear", ipmi.CommandClearSEL, ipmi.NewClearSELRequest(resv, op), res)
		return res, err
	}

	res, err := clearSEL(ipmi.ClearSELInitiate)
	if err != nil {
		return errors.Wrap(err, "clear SEL")
	}
	if res.Completed() {
		return nil
	}

	poll := func() error {
		res, err := clearSEL(ipmi.ClearSELGetStatus)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !res.Completed() {
			return errEraseInProgress
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.clearPoll), c.clearRetries), ctx)
	return backoff.Retry(poll, policy)
}

// entryIDs returns the record id and next record id of a Get SEL Entry
// response without decoding the record.
func entryIDs(res *ipmi.GetSELEntryResponse) (id, next uint16, err error) {
	next, ok := res.NextRecordID()
	rec := res.Record()
	if !ok || len(rec) < 2 {
		return 0, 0, &TruncatedRecordError{Length: len(rec)}
	}
	return binary.LittleEndian.Uint16(rec), next, nil
}
