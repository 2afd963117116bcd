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

	"github.com/pkg/errors"
	ipmi "github.com/vmware/goipmi-sel"
)

// Last calls fn for the n newest records, oldest first
func (c *Client) Last(ctx context.Context, n int, fn RecordFunc) error {
	if n <= 0 {
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

	total := int(info.Entries)
	if n >= total {
		_, err = c.walkFrom(ctx, resv, ipmi.RecordFirst, 0, 0, fn)
		return err
	}

	start, err := c.lastWindowStart(ctx, resv, n)
	if err != nil {
		return err
	}

	emitted, err := c.walkFrom(ctx, resv, start, n, 0, fn)
	if re, ok := err.(*RecordError); ok && emitted == 0 && re.ID == start && re.Code == ipmi.ErrNoObj {
		// the ids are not evenly spaced, count from the oldest instead
		c.log.Infow("window start not present, walking from the first record", "start", start)
		_, err = c.walkFrom(ctx, resv, ipmi.RecordFirst, n, total-n, fn)
	}
	return err
}

// lastWindowStart estimates the id of the n-th newest record. The protocol
// has no reverse cursor, so the id step is learned from the first two
// records and assumed uniform across the log. Logs with uneven spacing,
// such as after deletes or a wrap, get an approximate window.
func (c *Client) lastWindowStart(ctx context.Context, resv uint16, n int) (uint16, error) {
	res, err := c.getEntry(ctx, resv, ipmi.RecordFirst)
	if err != nil {
		return 0, err
	}
	first, next, err := entryIDs(res)
	if err != nil {
		return 0, err
	}
	if next == ipmi.RecordLast {
		return first, nil
	}

	step := int(next) - int(first)
	if step <= 0 {
		step = 1
	}

	res, err = c.getEntry(ctx, resv, ipmi.RecordLast)
	if err != nil {
		return 0, err
	}
	last, _, err := entryIDs(res)
	if err != nil {
		return 0, err
	}

	start := int(last) - (n-1)*step
	if start < int(first) {
		start = int(first)
	}

	c.log.Debugw("last window", "first", first, "last", last, "step", step, "start", start)

	return uint16(start), nil
}
