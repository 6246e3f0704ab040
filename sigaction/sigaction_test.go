/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package sigaction

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hups := make(chan os.Signal, 1)
	sig := NewSignal(OptionSignalCancel(cancel))
	sig.Add(syscall.SIGHUP, NotifierFunc(func(sg os.Signal) {
		hups <- sg
	}))
	sig.Add(syscall.SIGINT, NotifierFunc(func(os.Signal) {
		t.Error("reserved signal must not be notified")
	}))

	done := make(chan struct{})
	go func() {
		sig.Wait(ctx)
		close(done)
	}()

	pid := os.Getpid()
	assert.NoError(t, syscall.Kill(pid, syscall.SIGHUP))
	select {
	case sg := <-hups:
		assert.Equal(t, syscall.SIGHUP, sg)
	case <-time.After(5 * time.Second):
		t.Fatal("SIGHUP not delivered")
	}

	assert.NoError(t, syscall.Kill(pid, syscall.SIGTERM))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("wait not returned")
	}
	assert.Error(t, ctx.Err())
}

func TestSignalContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sig := NewSignal()
	cancel()
	sig.Wait(ctx)
}
