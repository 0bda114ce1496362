package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	confstore "github.com/telnet2/go-confstore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{" info ", InfoLevel},
		{"WARN", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"FATAL", FatalLevel},
		{"bogus", InfoLevel},
		{"", InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "input %q", tt.in)
	}
}

func TestFromStoreExtractsSettings(t *testing.T) {
	st := confstore.New()
	st.Set("/logging/level", confstore.FromString("DEBUG"))
	st.Set("/logging/file", confstore.FromString("app.log"))
	st.Set("/logging/format", confstore.FromString("console"))

	cfg := FromStore(st)
	assert.Equal(t, DebugLevel, cfg.Level)
	assert.Equal(t, "app.log", cfg.FilePath)
	assert.True(t, cfg.Pretty)
}

func TestFromStoreDefaults(t *testing.T) {
	cfg := FromStore(confstore.New())
	assert.Equal(t, InfoLevel, cfg.Level)
	assert.Equal(t, "", cfg.FilePath)
	assert.False(t, cfg.Pretty)

	assert.Equal(t, InfoLevel, FromStore(nil).Level)
}

func TestFromStoreMistypedSettingsFallBack(t *testing.T) {
	st := confstore.New()
	st.Set("/logging/level", confstore.FromInt64(3))
	st.Set("/logging/file", confstore.FromJSON("true"))

	cfg := FromStore(st)
	assert.Equal(t, InfoLevel, cfg.Level)
	assert.Equal(t, "", cfg.FilePath)
}

func TestInitWritesToConfiguredOutput(t *testing.T) {
	defer func() { _ = Init(DefaultConfig()) }()

	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: DebugLevel, Output: &buf}))

	Debug().Str("key", "value").Msg("hello")
	assert.Contains(t, buf.String(), `"hello"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestInitLevelFiltering(t *testing.T) {
	defer func() { _ = Init(DefaultConfig()) }()

	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: WarnLevel, Output: &buf}))

	Info().Msg("dropped")
	Warn().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestInitFileSink(t *testing.T) {
	defer func() { _ = Init(DefaultConfig()) }()

	logPath := filepath.Join(t.TempDir(), "app.log")
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: InfoLevel, Output: &buf, FilePath: logPath}))

	Info().Msg("to both sinks")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both sinks")
	assert.Contains(t, buf.String(), "to both sinks")
}

func TestInitFileSinkOpenFailure(t *testing.T) {
	defer func() { _ = Init(DefaultConfig()) }()

	var buf bytes.Buffer
	err := Init(Config{Level: InfoLevel, Output: &buf, FilePath: t.TempDir()})
	assert.Error(t, err, "a directory is not a valid log file")

	// The console sink still works.
	Info().Msg("still logging")
	assert.Contains(t, buf.String(), "still logging")
}
