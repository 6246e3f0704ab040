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
	"os/signal"
	"sync"
	"syscall"

	"github.com/jumboframes/wordtrie/log"
)

var (
	ReservedFiniSignals = []os.Signal{
		os.Interrupt,
		syscall.SIGTERM,
	}
)

// Notifier is told about a non terminating signal, e.g. SIGHUP asking a
// session to reload its corpus.
type Notifier interface {
	Notify(os.Signal)
}

type NotifierFunc func(os.Signal)

func (fn NotifierFunc) Notify(sg os.Signal) {
	fn(sg)
}

type SignalOption func(*Signal)

func OptionSignalCancel(cancel context.CancelFunc) SignalOption {
	return func(sig *Signal) {
		sig.cancels = append(sig.cancels, cancel)
	}
}

type Signal struct {
	mu            sync.RWMutex
	sgCh          chan os.Signal
	cancels       []context.CancelFunc
	notifications map[os.Signal][]Notifier
}

func NewSignal(options ...SignalOption) *Signal {
	sig := &Signal{
		sgCh:          make(chan os.Signal, 1),
		cancels:       []context.CancelFunc{},
		notifications: make(map[os.Signal][]Notifier),
	}
	for _, option := range options {
		option(sig)
	}
	signal.Notify(sig.sgCh, ReservedFiniSignals...)
	return sig
}

// Add registers notifiers for sg, reserved signals are ignored.
func (sig *Signal) Add(sg os.Signal, nts ...Notifier) {
	for _, reserved := range ReservedFiniSignals {
		if sg == reserved {
			return
		}
	}

	sig.mu.Lock()
	sig.notifications[sg] = append(sig.notifications[sg], nts...)
	sig.mu.Unlock()
	signal.Notify(sig.sgCh, sg)
}

// Wait dispatches signals until a reserved one arrives or ctx is done. The
// first reserved signal cancels every registered context, a second one is
// left to the runtime.
func (sig *Signal) Wait(ctx context.Context) {
	defer signal.Stop(sig.sgCh)
	for {
		select {
		case sg := <-sig.sgCh:
			log.Debugf("got signal: %s", sg)
			if sig.reserved(sg) {
				signal.Reset(ReservedFiniSignals...)
				for _, cancel := range sig.cancels {
					cancel()
				}
				return
			}
			sig.mu.RLock()
			nts := sig.notifications[sg]
			sig.mu.RUnlock()
			for _, nt := range nts {
				nt.Notify(sg)
			}

		case <-ctx.Done():
			log.Trace("signal wait done")
			return
		}
	}
}

func (sig *Signal) reserved(sg os.Signal) bool {
	for _, reserved := range ReservedFiniSignals {
		if sg == reserved {
			return true
		}
	}
	return false
}
