package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	lines []string
}

func (r *recorder) add(level string, s string) { r.lines = append(r.lines, level+" "+s) }

func (r *recorder) Trace(v ...interface{})                 { r.add("trace", fmt.Sprint(v...)) }
func (r *recorder) Tracef(format string, v ...interface{}) { r.add("trace", fmt.Sprintf(format, v...)) }
func (r *recorder) Debug(v ...interface{})                 { r.add("debug", fmt.Sprint(v...)) }
func (r *recorder) Debugf(format string, v ...interface{}) { r.add("debug", fmt.Sprintf(format, v...)) }
func (r *recorder) Info(v ...interface{})                  { r.add("info", fmt.Sprint(v...)) }
func (r *recorder) Infof(format string, v ...interface{})  { r.add("info", fmt.Sprintf(format, v...)) }
func (r *recorder) Warn(v ...interface{})                  { r.add("warn", fmt.Sprint(v...)) }
func (r *recorder) Warnf(format string, v ...interface{})  { r.add("warn", fmt.Sprintf(format, v...)) }
func (r *recorder) Error(v ...interface{})                 { r.add("error", fmt.Sprint(v...)) }
func (r *recorder) Errorf(format string, v ...interface{}) { r.add("error", fmt.Sprintf(format, v...)) }

func TestSetLevel(t *testing.T) {
	rec := &recorder{}
	SetLog(rec)
	defer SetLog(nil)
	defer SetLevel(LevelTrace)

	SetLevel(LevelInfo)
	Tracef("dropped %d", 1)
	Debug("dropped")
	Infof("kept %d", 2)
	Warn("kept")
	Error("always")

	assert.Equal(t, []string{"info kept 2", "warn kept", "error always"}, rec.lines)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.name))
			if tt.name != "bogus" {
				assert.Equal(t, tt.name, tt.want.String())
			}
		})
	}
}

func TestKLogSetVerbosity(t *testing.T) {
	kl := NewKLog()
	kl.SetVerbosity(LevelDebug, 2)
	kl.SetVerbosity(Level(42), 9)
	assert.Equal(t, 2, kl.verbosities[LevelDebug])
	assert.Len(t, kl.verbosities, 6)
}
