// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Scope owns a group of goroutines sharing one cancellation. Cancel stops
// all of them; Wait returns once every one has exited.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewScope derives a scope from parent. Cancelling parent cancels the scope.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	group, groupCtx := errgroup.WithContext(ctx)

	return &Scope{ctx: groupCtx, cancel: cancel, group: group}
}

// Go runs fn in the scope. The first non-nil error cancels the scope.
func (s *Scope) Go(fn func(ctx context.Context) error) {
	s.group.Go(func() error {
		return fn(s.ctx)
	})
}

// Cancel signals every goroutine of the scope to exit.
func (s *Scope) Cancel() {
	s.cancel()
}

// Wait blocks until every goroutine of the scope has exited and returns the
// first error any of them reported.
func (s *Scope) Wait() error {
	err := s.group.Wait()
	s.cancel()
	return err
}
