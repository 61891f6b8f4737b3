// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"sync"
	"testing"
)

func TestLazyGet(t *testing.T) {
	var (
		l     Lazy[int]
		calls int
	)

	compute := func() int {
		calls++
		return 42
	}

	if got := l.Get(compute); got != 42 {
		t.Fatalf("Get() = %d, want 42", got)
	}
	if got := l.Get(compute); got != 42 {
		t.Fatalf("second Get() = %d, want 42", got)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
}

func TestLazyGetErr(t *testing.T) {
	var (
		l       Lazy[string]
		wantErr = errors.New("compute failed")
		calls   int
	)

	compute := func() (string, error) {
		calls++
		return "", wantErr
	}

	_, err := l.GetErr(compute)
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetErr() error = %v, want %v", err, wantErr)
	}
	// The error is remembered, not recomputed.
	_, err = l.GetErr(compute)
	if !errors.Is(err, wantErr) {
		t.Fatalf("second GetErr() error = %v, want %v", err, wantErr)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
}

func TestLazyConcurrent(t *testing.T) {
	var (
		l  Lazy[int]
		wg sync.WaitGroup
	)

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := l.Get(func() int { return 1 }); got != 1 {
				t.Errorf("Get() = %d, want 1", got)
			}
		}()
	}
	wg.Wait()
}
