package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caarlos0/env"
	"github.com/scheerer/hsl-colors/colorconv"
	"github.com/scheerer/hsl-colors/internal/logging"
	"github.com/scheerer/hsl-colors/internal/util"
)

var (
	logger = logging.New("main")
	config = ConverterConfig{}
)

var errInvalidHSL = errors.New("invalid hsl color")

type ConverterConfig struct {
	PrependPound bool          `env:"PREPEND_POUND" envDefault:"true"`
	LogLevel     zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
}

var envParsers = env.CustomParsers{
	reflect.TypeOf(zapcore.InfoLevel): func(v string) (interface{}, error) {
		level, err := zapcore.ParseLevel(v)
		return level, err
	},
}

func main() {
	err := env.ParseWithFuncs(&config, envParsers)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}
	logging.GetLeveler().SetLevel("main", config.LogLevel)

	code := run(os.Args[1:], config, os.Stdout)
	_ = logger.Sync()
	os.Exit(code)
}

// run converts every argument and writes one result per line to out. It
// returns the process exit code.
func run(args []string, config ConverterConfig, out io.Writer) int {
	logger.With(zap.Any("config", config)).Debug("Starting color conversion")

	if len(args) == 0 {
		logger.Info("Pass hex colors (#336699, f80) to get HSL, or HSL colors (hsl(210, 50%, 40%), 210,50,40) to get hex.")
		logger.Info("Set PREPEND_POUND=false to drop the '#' from hex output.")
		return 2
	}

	failed := 0
	for _, arg := range args {
		result, err := Convert(arg, config)
		if err != nil {
			logger.With(zap.String("input", arg), zap.Error(err)).Error("Failed to convert color")
			failed++
			continue
		}

		logger.With(zap.String("input", arg), zap.String("result", result)).Debug("Converted color")
		fmt.Fprintln(out, result)
	}

	if failed > 0 {
		logger.With(zap.Int("failed", failed), zap.Int("total", len(args))).Warn("Some colors could not be converted")
		return 1
	}
	return 0
}

// Convert turns a hex color into its HSL rendering, or an HSL color into hex.
// An argument is treated as HSL when it starts with "hsl(" or contains a comma.
func Convert(arg string, config ConverterConfig) (string, error) {
	s := strings.TrimSpace(arg)
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "hsl(") || strings.Contains(s, ",") {
		hsl, err := parseHSL(lower)
		if err != nil {
			return "", err
		}
		return colorconv.HslToHex(hsl.H, hsl.S, hsl.L, colorconv.WithPound(config.PrependPound))
	}

	hsl, err := colorconv.HexToHsl(s)
	if err != nil {
		return "", err
	}
	return hsl.String(), nil
}

func parseHSL(s string) (colorconv.HSL, error) {
	if strings.HasPrefix(s, "hsl(") {
		if !strings.HasSuffix(s, ")") {
			return colorconv.HSL{}, fmt.Errorf("%w: %q is missing ')'", errInvalidHSL, s)
		}
		s = strings.TrimSuffix(strings.TrimPrefix(s, "hsl("), ")")
	}

	values, err := util.ParseFloats(s)
	if err != nil {
		return colorconv.HSL{}, fmt.Errorf("%w: %v", errInvalidHSL, err)
	}
	if len(values) != 3 {
		return colorconv.HSL{}, fmt.Errorf("%w: want 3 values, got %d", errInvalidHSL, len(values))
	}

	return colorconv.HSL{H: values[0], S: values[1], L: values[2]}, nil
}
