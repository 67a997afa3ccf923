package commonlog

import (
	"io"
	"testing"

	"github.com/pipe01/errat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"
)

// recordingBackend replaces the process-wide commonlog backend so the
// records reaching it can be asserted on.
type recordingBackend struct {
	levels   []commonlog.Level
	messages []string
}

var _ commonlog.Backend = (*recordingBackend)(nil)

func (b *recordingBackend) Configure(verbosity int, path *string) {}

func (b *recordingBackend) GetWriter() io.Writer {
	return io.Discard
}

func (b *recordingBackend) NewMessage(name []string, level commonlog.Level, depth int) commonlog.Message {
	return commonlog.NewUnstructuredMessage(func(message string) {
		b.levels = append(b.levels, level)
		b.messages = append(b.messages, message)
	})
}

func (b *recordingBackend) AllowLevel(name []string, level commonlog.Level) bool {
	return true
}

func (b *recordingBackend) SetMaxLevel(name []string, level commonlog.Level) {}

func (b *recordingBackend) GetMaxLevel(name []string) commonlog.Level {
	return commonlog.Debug
}

func TestLogLevelMapping(t *testing.T) {
	rec := &recordingBackend{}
	commonlog.SetBackend(rec)
	defer commonlog.SetBackend(nil)

	b := New("errat.test")

	cases := []struct {
		level errat.Level
		want  commonlog.Level
	}{
		{errat.DebugLevel, commonlog.Debug},
		{errat.InfoLevel, commonlog.Info},
		{errat.WarnLevel, commonlog.Warning},
		{errat.ErrorLevel, commonlog.Error},
		{errat.Level(99), commonlog.Error},
	}

	for _, c := range cases {
		b.Log(c.level, "ping")
	}

	require.Len(t, rec.levels, len(cases))
	for i, c := range cases {
		assert.Equal(t, c.want, rec.levels[i])
		assert.Equal(t, "ping", rec.messages[i])
	}
}

func TestLogWithoutConfiguredBackend(t *testing.T) {
	commonlog.SetBackend(nil)

	b := New("errat.test")

	// commonlog drops records until the host configures it; all levels
	// must still be accepted.
	levels := []errat.Level{
		errat.DebugLevel,
		errat.InfoLevel,
		errat.WarnLevel,
		errat.ErrorLevel,
		errat.Level(99),
	}

	for _, level := range levels {
		require.NotPanics(t, func() { b.Log(level, "ping") })
	}
}
