package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "milliseconds", input: "250ms", expected: 250 * time.Millisecond},
		{name: "seconds", input: "30s", expected: 30 * time.Second},
		{name: "complex duration", input: "1h30m45s", expected: time.Hour + 30*time.Minute + 45*time.Second},
		{name: "zero duration", input: "0s"},
		{name: "no unit", input: "100", wantErr: true},
		{name: "invalid unit", input: "100x", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDuration_Decoders(t *testing.T) {
	type pollConfig struct {
		Interval Duration `json:"interval" yaml:"interval" toml:"interval"`
	}

	t.Run("json", func(t *testing.T) {
		var cfg pollConfig
		require.NoError(t, json.Unmarshal([]byte(`{"interval":"2s"}`), &cfg))
		assert.Equal(t, 2*time.Second, cfg.Interval.Duration)
	})

	t.Run("yaml", func(t *testing.T) {
		var cfg pollConfig
		require.NoError(t, yaml.Unmarshal([]byte("interval: 1m30s\n"), &cfg))
		assert.Equal(t, 90*time.Second, cfg.Interval.Duration)
	})

	t.Run("toml", func(t *testing.T) {
		var cfg pollConfig
		_, err := toml.Decode(`interval = "500ms"`, &cfg)
		require.NoError(t, err)
		assert.Equal(t, 500*time.Millisecond, cfg.Interval.Duration)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		var cfg pollConfig
		require.Error(t, yaml.Unmarshal([]byte("interval: soon\n"), &cfg))
	})
}

func TestDuration_JSONRoundtrip(t *testing.T) {
	original := struct {
		Timeout Duration `json:"timeout"`
	}{Timeout: NewDuration(5 * time.Minute)}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	require.JSONEq(t, `{"timeout":"5m0s"}`, string(data))

	var decoded struct {
		Timeout Duration `json:"timeout"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Timeout.Duration, decoded.Timeout.Duration)
}

func TestDuration_JSONSchema(t *testing.T) {
	schema := Duration{}.JSONSchema()

	require.NotNil(t, schema)
	assert.Equal(t, "string", schema.Type)
	assert.Equal(t, "Duration", schema.Title)
	assert.Contains(t, schema.Examples, "1m")
}
