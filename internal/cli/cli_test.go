package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{
				Input: "test.ch8",
				Rate:  options.DefaultRate,
				Scale: options.DefaultScale,
			},
		},
		{
			name: "custom rate and scale",
			args: []string{"prog", "-rate", "500", "-scale", "8", "test.ch8"},
			want: options.Program{Input: "test.ch8", Rate: 500, Scale: 8},
		},
		{
			name: "headless run",
			args: []string{"prog", "-steps", "100", "-dump", "test.ch8"},
			want: options.Program{
				Input: "test.ch8",
				Rate:  options.DefaultRate,
				Scale: options.DefaultScale,
				Steps: 100,
				Dump:  true,
			},
		},
		{
			name: "trace and quiet",
			args: []string{"prog", "-trace", "-q", "test.ch8"},
			want: options.Program{
				Input: "test.ch8",
				Rate:  options.DefaultRate,
				Scale: options.DefaultScale,
				Trace: true,
				Quiet: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsMissingROM(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog"}

	_, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs([]string{"test.ch8"}))
	assert.Error(t, validateArgs([]string{"test.ch8", "-trace"}))
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{"valid", options.Program{Rate: 700, Scale: 16}, false},
		{"zero rate", options.Program{Rate: 0, Scale: 16}, true},
		{"negative scale", options.Program{Rate: 700, Scale: -1}, true},
		{"negative steps", options.Program{Rate: 700, Scale: 16, Steps: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptions(tt.opts)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
