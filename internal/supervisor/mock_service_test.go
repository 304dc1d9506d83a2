// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// stubService counts starts and optionally fails its first failN runs.
type stubService struct {
	name    string
	failN   int32
	starts  atomic.Int32
	started chan struct{}
}

func newStubService(name string) *stubService {
	return &stubService{name: name, started: make(chan struct{}, 16)}
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	select {
	case s.started <- struct{}{}:
	default:
	}
	if n <= s.failN {
		return errors.New("stub failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string { return s.name }
