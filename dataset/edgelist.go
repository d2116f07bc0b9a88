// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: whitespace-separated edge-list loader.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadEdgeList reads "from to [weight]" records. Endpoint labels are
// numbered in order of first appearance and kept as Usernames.
func LoadEdgeList(r io.Reader) (*Dataset, error) {
	ids := make(map[string]int)
	d := &Dataset{}
	node := func(label string) int {
		if id, ok := ids[label]; ok {
			return id
		}
		id := len(d.Usernames)
		ids[label] = id
		d.Usernames = append(d.Usernames, label)
		d.InList = append(d.InList, nil)
		d.InWeight = append(d.InWeight, nil)
		d.OutList = append(d.OutList, nil)
		d.OutWeight = append(d.OutWeight, nil)

		return id
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: want 2 or 3 fields, got %d", ErrBadRecord, line, len(fields))
		}
		w := 1.0
		if len(fields) == 3 {
			var err error
			if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: weight: %w", ErrBadRecord, line, err)
			}
		}

		u, v := node(fields[0]), node(fields[1])
		d.OutList[u] = append(d.OutList[u], v)
		d.OutWeight[u] = append(d.OutWeight[u], w)
		d.InList[v] = append(d.InList[v], u)
		d.InWeight[v] = append(d.InWeight[v], w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(d.Usernames) == 0 {
		return nil, ErrEmptyDataset
	}

	return d, nil
}
