/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package log

import "sync/atomic"

type Level int

const (
	LevelNull Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (level Level) String() string {
	switch level {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "null"
}

// ParseLevel maps a level name back to its Level, unknown names map to LevelInfo.
func ParseLevel(name string) Level {
	for level := LevelTrace; level <= LevelError; level++ {
		if level.String() == name {
			return level
		}
	}
	return LevelInfo
}

type Logger interface {
	Trace(v ...interface{})
	Tracef(format string, v ...interface{})
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

var (
	defaultLog   Logger = NewKLog()
	defaultLevel int32  = int32(LevelTrace)
)

// SetLog replaces the package level logger, nil restores klog.
func SetLog(log Logger) {
	if log == nil {
		log = NewKLog()
	}
	defaultLog = log
}

// SetLevel drops every message below level before it reaches the logger.
func SetLevel(level Level) {
	atomic.StoreInt32(&defaultLevel, int32(level))
}

func enabled(level Level) bool {
	return Level(atomic.LoadInt32(&defaultLevel)) <= level
}

func Trace(v ...interface{}) {
	if enabled(LevelTrace) {
		defaultLog.Trace(v...)
	}
}

func Tracef(format string, v ...interface{}) {
	if enabled(LevelTrace) {
		defaultLog.Tracef(format, v...)
	}
}

func Debug(v ...interface{}) {
	if enabled(LevelDebug) {
		defaultLog.Debug(v...)
	}
}

func Debugf(format string, v ...interface{}) {
	if enabled(LevelDebug) {
		defaultLog.Debugf(format, v...)
	}
}

func Info(v ...interface{}) {
	if enabled(LevelInfo) {
		defaultLog.Info(v...)
	}
}

func Infof(format string, v ...interface{}) {
	if enabled(LevelInfo) {
		defaultLog.Infof(format, v...)
	}
}

func Warn(v ...interface{}) {
	if enabled(LevelWarn) {
		defaultLog.Warn(v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if enabled(LevelWarn) {
		defaultLog.Warnf(format, v...)
	}
}

func Error(v ...interface{}) {
	defaultLog.Error(v...)
}

func Errorf(format string, v ...interface{}) {
	defaultLog.Errorf(format, v...)
}
