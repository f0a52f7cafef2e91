package main

import (
	"bytes"
	"testing"

	"github.com/caarlos0/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/scheerer/hsl-colors/colorconv"
)

func TestConfigDefaults(t *testing.T) {
	var c ConverterConfig
	require.NoError(t, env.ParseWithFuncs(&c, envParsers))
	assert.True(t, c.PrependPound)
	assert.Equal(t, zapcore.InfoLevel, c.LogLevel)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PREPEND_POUND", "false")
	t.Setenv("LOG_LEVEL", "debug")

	var c ConverterConfig
	require.NoError(t, env.ParseWithFuncs(&c, envParsers))
	assert.False(t, c.PrependPound)
	assert.Equal(t, zapcore.DebugLevel, c.LogLevel)
}

func TestConfigInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	var c ConverterConfig
	assert.Error(t, env.ParseWithFuncs(&c, envParsers))
}

func TestConvert(t *testing.T) {
	withPound := ConverterConfig{PrependPound: true}
	withoutPound := ConverterConfig{PrependPound: false}

	tests := []struct {
		name   string
		input  string
		config ConverterConfig
		want   string
	}{
		{"short hex", "#f00", withPound, "hsl(0.00, 100.00%, 50.00%)"},
		{"long hex", "336699", withPound, "hsl(210.00, 50.00%, 40.00%)"},
		{"padded hex", "  #FFF ", withPound, "hsl(0.00, 0.00%, 100.00%)"},
		{"hsl function", "hsl(210, 50%, 40%)", withPound, "#336699"},
		{"upper case hsl", "HSL(0,100,50)", withPound, "#ff0000"},
		{"bare list", "120,100,50", withoutPound, "00ff00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input, tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	c := ConverterConfig{PrependPound: true}

	_, err := Convert("not-a-color", c)
	assert.ErrorIs(t, err, colorconv.ErrInvalidFormat)

	_, err = Convert("hsl(1, 2)", c)
	assert.ErrorIs(t, err, errInvalidHSL)

	_, err = Convert("hsl(1, 2, 3", c)
	assert.ErrorIs(t, err, errInvalidHSL)

	_, err = Convert("1,x,3", c)
	assert.ErrorIs(t, err, errInvalidHSL)

	_, err = Convert("0,0,200", c)
	assert.ErrorIs(t, err, colorconv.ErrInvalidChannelValue)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"#f00", "hsl(120, 100%, 50%)"}, ConverterConfig{PrependPound: true}, &out)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hsl(0.00, 100.00%, 50.00%)\n#00ff00\n", out.String())
}

func TestRunReportsFailures(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"#zzz", "#000"}, ConverterConfig{PrependPound: false}, &out)
	assert.Equal(t, 1, code)
	assert.Equal(t, "hsl(0.00, 0.00%, 0.00%)\n", out.String())
}

func TestRunWithoutArgs(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run(nil, ConverterConfig{}, &out))
	assert.Empty(t, out.String())
}
