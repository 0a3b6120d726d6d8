package logger

import (
	"fmt"

	"github.com/GlebRadaev/coderr/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger installs the process-wide zap logger. LOG_FORMAT selects a
// colored console encoder for local runs or JSON for log shippers.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	c, err := buildConfig(conf.LogFmt)
	if err != nil {
		return err
	}
	c.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named("coderr"))
	return nil
}

func buildConfig(format string) (zap.Config, error) {
	switch format {
	case "", "console":
		c := zap.NewDevelopmentConfig()
		c.Development = false
		c.DisableStacktrace = true
		c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		c.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
		return c, nil
	case "json":
		c := zap.NewProductionConfig()
		c.Sampling = nil
		c.EncoderConfig.TimeKey = "ts"
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return c, nil
	default:
		return zap.Config{}, fmt.Errorf("unsupported log format: %s", format)
	}
}
