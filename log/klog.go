/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package log

import (
	"flag"
	"strconv"

	"k8s.io/klog/v2"
)

// KLog forwards leveled messages to klog, each Level mapped onto a klog verbosity.
type KLog struct {
	verbosities []int
}

// default verbosities see: https://github.com/kubernetes/community/blob/master/contributors/devel/sig-instrumentation/logging.md
func NewKLog() *KLog {
	return &KLog{
		verbosities: []int{
			0,
			5, // LevelTrace
			4, // LevelDebug
			0, // LevelInfo, printed without -v
			0, // LevelWarn
			0, // LevelError, goes through klog.Error
		},
	}
}

// InitKLog registers klog's flags on a private flag set and applies the
// verbosity and stderr settings, so callers never touch the global flag set.
func InitKLog(verbosity int) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if err := fs.Set("v", strconv.Itoa(verbosity)); err != nil {
		return err
	}
	return fs.Set("logtostderr", "true")
}

// Flush writes out buffered klog entries.
func Flush() {
	klog.Flush()
}

func (log *KLog) SetVerbosity(level Level, verbosity int) {
	if level <= LevelNull || int(level) >= len(log.verbosities) {
		return
	}
	log.verbosities[level] = verbosity
}

func (log *KLog) v(level Level) klog.Verbose {
	return klog.V(klog.Level(log.verbosities[level]))
}

func (log *KLog) Trace(v ...interface{}) {
	log.v(LevelTrace).Info(v...)
}

func (log *KLog) Tracef(format string, v ...interface{}) {
	log.v(LevelTrace).Infof(format, v...)
}

func (log *KLog) Debug(v ...interface{}) {
	log.v(LevelDebug).Info(v...)
}

func (log *KLog) Debugf(format string, v ...interface{}) {
	log.v(LevelDebug).Infof(format, v...)
}

func (log *KLog) Info(v ...interface{}) {
	log.v(LevelInfo).Info(v...)
}

func (log *KLog) Infof(format string, v ...interface{}) {
	log.v(LevelInfo).Infof(format, v...)
}

func (log *KLog) Warn(v ...interface{}) {
	klog.Warning(v...)
}

func (log *KLog) Warnf(format string, v ...interface{}) {
	klog.Warningf(format, v...)
}

func (log *KLog) Error(v ...interface{}) {
	klog.Error(v...)
}

func (log *KLog) Errorf(format string, v ...interface{}) {
	klog.Errorf(format, v...)
}
