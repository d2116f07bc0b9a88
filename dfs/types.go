// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: visitation colours, sentinel errors and options shared by the
// DAG routines.

package dfs

import (
	"context"
	"errors"
)

// Visitation state of a node during depth-first search.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that the graph is not a DAG.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures TopologicalSort and LongestPath.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
