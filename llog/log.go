package llog

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging surface used by the collections.
// *zap.SugaredLogger and *logrus.Logger both satisfy it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var (
	log      = zap.NewNop().Sugar()
	logLevel = zap.NewAtomicLevel()
)

const (
	logTimeFormat = "2006-01-02 15:04:05.000"
)

type config struct {
	// debug, info, warn, error, dpanic, panic, fatal
	level string
	// console, json
	encoding string
	// 为空则不写文件
	filename string
	// 文件轮转参数
	maxSizeMB  int
	maxBackups int
	maxAgeDays int

	enableCaller bool
	serviceName  string
	timeEncoder  zapcore.TimeEncoder
}

func (c *config) init() {
	if c.level == "" {
		c.level = "info"
	}
	if c.encoding == "" {
		c.encoding = "json"
	}
	if c.maxSizeMB == 0 {
		c.maxSizeMB = 10
	}
	if c.maxBackups == 0 {
		c.maxBackups = 7
	}
	if c.maxAgeDays == 0 {
		c.maxAgeDays = 30
	}
	if c.timeEncoder == nil {
		c.timeEncoder = layoutTimeEncoder(logTimeFormat)
	}
}

func layoutTimeEncoder(layout string) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}

		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}

		enc.AppendString(t.Format(layout))
	}
}

func SetLevel(level string) error {
	return logLevel.UnmarshalText([]byte(level))
}

type LoggerOption func(cfg *config)

func WithLevel(level string) LoggerOption {
	return func(cfg *config) {
		cfg.level = level
	}
}

func WithEncoding(encoding string) LoggerOption {
	return func(cfg *config) {
		cfg.encoding = encoding
	}
}

func WithFilename(filename string) LoggerOption {
	return func(cfg *config) {
		cfg.filename = filename
	}
}

func WithRotation(maxSizeMB, maxBackups, maxAgeDays int) LoggerOption {
	return func(cfg *config) {
		cfg.maxSizeMB = maxSizeMB
		cfg.maxBackups = maxBackups
		cfg.maxAgeDays = maxAgeDays
	}
}

func WithEnableCaller(enableCaller bool) LoggerOption {
	return func(cfg *config) {
		cfg.enableCaller = enableCaller
	}
}

func WithServiceName(serviceName string) LoggerOption {
	return func(cfg *config) {
		cfg.serviceName = serviceName
	}
}

func WithTimeEncoder(enc zapcore.TimeEncoder) LoggerOption {
	return func(cfg *config) {
		cfg.timeEncoder = enc
	}
}

// InitLogger builds the package logger and returns it with a flush func.
// An invalid level is returned as an error and leaves the previous logger in place.
func InitLogger(opts ...LoggerOption) (*zap.SugaredLogger, func(), error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.init()

	if err := logLevel.UnmarshalText([]byte(cfg.level)); err != nil {
		return nil, nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = cfg.timeEncoder
	encoderConfig.StacktraceKey = ""

	var cores []zapcore.Core
	if cfg.filename != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.filename,
				MaxSize:    cfg.maxSizeMB,
				MaxBackups: cfg.maxBackups,
				MaxAge:     cfg.maxAgeDays,
				Compress:   true,
			}),
			logLevel,
		))
	}

	var encoder zapcore.Encoder
	if cfg.encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}
	cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), logLevel))

	zapLogger := zap.New(zapcore.NewTee(cores...))
	if cfg.enableCaller {
		zapLogger = zapLogger.WithOptions(zap.AddCaller())
	}
	if cfg.serviceName != "" {
		zapLogger = zapLogger.With(zap.String("service", cfg.serviceName))
	}

	log = zapLogger.Sugar()

	return log, func() {
		_ = log.Sync()
	}, nil
}

func GetLogger() *zap.SugaredLogger {
	return log
}

// Nop discards everything.
func Nop() Logger {
	return zap.NewNop().Sugar()
}
