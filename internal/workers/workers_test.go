// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcWorker struct {
	name string
	run  func(ctx context.Context) error
}

func (f *funcWorker) Name() string                  { return f.name }
func (f *funcWorker) Run(ctx context.Context) error { return f.run(ctx) }

func collect(t *testing.T, results <-chan Result) []Result {
	t.Helper()
	var out []Result
	timeout := time.After(2 * time.Second)
	for {
		select {
		case r, ok := <-results:
			if !ok {
				return out
			}
			out = append(out, r)
		case <-timeout:
			t.Fatal("results channel was not closed")
		}
	}
}

func TestWorkers_Start_RunsAllAndCloses(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("boom")

	ws := NewWorkers(logger.Nop(),
		&funcWorker{name: "a", run: func(context.Context) error { calls.Add(1); return nil }},
		&funcWorker{name: "b", run: func(context.Context) error { calls.Add(1); return boom }},
	)

	results := collect(t, ws.Start(context.Background()))
	require.Len(t, results, 2)
	sort.Slice(results, func(i, j int) bool { return results[i].Worker < results[j].Worker })

	assert.Equal(t, Result{Worker: "a"}, results[0])
	assert.Equal(t, "b", results[1].Worker)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWorkers_Start_DoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	ws := NewWorkers(logger.Nop(), &funcWorker{name: "slow", run: func(context.Context) error {
		<-release
		return nil
	}})

	results := ws.Start(context.Background())
	select {
	case <-results:
		t.Fatal("result delivered before the worker finished")
	default:
	}

	close(release)
	assert.Len(t, collect(t, results), 1)
}

func TestWorkers_Start_Empty(t *testing.T) {
	assert.Empty(t, collect(t, NewWorkers(logger.Nop()).Start(context.Background())))
}

func TestWorkers_Start_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(logger.Nop(), &funcWorker{name: "ctx", run: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	results := ws.Start(ctx)
	cancel()

	got := collect(t, results)
	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0].Err, context.Canceled)
}

type fakeSession struct {
	calls int
	err   error
}

func (f *fakeSession) OnAppStart(context.Context) error {
	f.calls++
	return f.err
}

func TestSessionValidationWorker(t *testing.T) {
	s := &fakeSession{err: errors.New("server down")}
	w := NewSessionValidationWorker(s)

	assert.Equal(t, SessionValidationName, w.Name())
	assert.EqualError(t, w.Run(context.Background()), "server down")
	assert.Equal(t, 1, s.calls)
}
