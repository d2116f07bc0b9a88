// SPDX-License-Identifier: MIT
//
// File: dataset.go
// Role: Dataset type, JSON loader and outWeight verification.

package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/contagion/core"
)

// Sentinel errors.
var (
	// ErrEmptyDataset indicates input with no graph record.
	ErrEmptyDataset = errors.New("dataset: empty dataset")

	// ErrBadRecord indicates a record that cannot be decoded or does not
	// agree with the rest of the data.
	ErrBadRecord = errors.New("dataset: bad record")
)

// Dataset is a graph in loader form: index-aligned adjacency lists plus
// optional node labels.
type Dataset struct {
	InList    [][]int     `json:"inList"`
	InWeight  [][]float64 `json:"inWeight"`
	OutList   [][]int     `json:"outList"`
	OutWeight [][]float64 `json:"outWeight"`
	Usernames []string    `json:"usernameList"`
}

// Load decodes the JSON adjacency format from r.
func Load(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	var records []Dataset
	if err := json.Unmarshal(raw, &records); err != nil {
		// Not an array: try a single object.
		var one Dataset
		if err2 := json.Unmarshal(raw, &one); err2 != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}
		records = []Dataset{one}
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &records[0]
	if len(ds.InList) == 0 && len(ds.OutList) == 0 && len(ds.InWeight) == 0 {
		return nil, ErrEmptyDataset
	}
	if ds.Usernames != nil && len(ds.Usernames) != len(ds.InList) {
		return nil, fmt.Errorf("%w: %d usernames for %d nodes", ErrBadRecord, len(ds.Usernames), len(ds.InList))
	}

	return ds, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Nodes returns the number of nodes.
func (d *Dataset) Nodes() int {
	return len(d.InList)
}

// Graph builds the core.Graph. Weights come from InWeight; OutWeight is
// only consulted by Verify.
func (d *Dataset) Graph(opts ...core.Option) (*core.Graph, error) {
	return core.FromAdjacency(d.InList, d.InWeight, d.OutList, opts...)
}

// Label returns the username of v, or v in decimal when there is none.
func (d *Dataset) Label(v int) string {
	if v >= 0 && v < len(d.Usernames) && d.Usernames[v] != "" {
		return d.Usernames[v]
	}

	return strconv.Itoa(v)
}

// Lookup resolves a username, or a decimal node id, to a node id.
// Usernames win over ids when both match.
func (d *Dataset) Lookup(name string) (int, bool) {
	for v, u := range d.Usernames {
		if u == name {
			return v, true
		}
	}
	if v, err := strconv.Atoi(name); err == nil && v >= 0 && v < d.Nodes() {
		return v, true
	}

	return -1, false
}

// Verify checks OutWeight against the predecessor side: OutWeight must be
// aligned with OutList and every (u→v, w) must appear in InList[v] with the
// same weight. A nil OutWeight is accepted.
func (d *Dataset) Verify() error {
	if d.OutWeight == nil {
		return nil
	}
	if len(d.OutWeight) != len(d.OutList) {
		return fmt.Errorf("%w: outWeight has %d rows for %d nodes", ErrBadRecord, len(d.OutWeight), len(d.OutList))
	}

	for u, targets := range d.OutList {
		if len(d.OutWeight[u]) != len(targets) {
			return fmt.Errorf("%w: node %d has %d successors but %d weights", ErrBadRecord, u, len(targets), len(d.OutWeight[u]))
		}
		for k, v := range targets {
			if v < 0 || v >= len(d.InList) {
				return fmt.Errorf("%w: successor %d of node %d: %w", ErrBadRecord, k, u, core.ErrNodeOutOfRange)
			}
			w, ok := d.inWeight(u, v)
			if !ok {
				return fmt.Errorf("%w: edge %d→%d missing from inList", ErrBadRecord, u, v)
			}
			if w != d.OutWeight[u][k] {
				return fmt.Errorf("%w: edge %d→%d weight %g (out) != %g (in)", ErrBadRecord, u, v, d.OutWeight[u][k], w)
			}
		}
	}

	return nil
}

// inWeight returns the last weight recorded for u in InList[v].
func (d *Dataset) inWeight(u, v int) (float64, bool) {
	w, ok := 0.0, false
	for k, p := range d.InList[v] {
		if p == u && k < len(d.InWeight[v]) {
			w, ok = d.InWeight[v][k], true
		}
	}

	return w, ok
}
