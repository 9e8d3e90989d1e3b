package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogDirectoryMode is the mode of a log directory when it's created
const LogDirectoryMode = 0775

// DefaultLogger initializing default logger
// NOTE: errors go to stderr and the rest goes to stdout; debug entries are
// dropped unless debugMode is set. When logDir is not empty, then the
// entries are also written as JSON into `errors.log` and `standard.log`
func DefaultLogger(debugMode bool, logDir string) (*zap.Logger, error) {
	logDir = strings.TrimSpace(logDir)

	minLevel := zapcore.InfoLevel
	if debugMode {
		minLevel = zapcore.DebugLevel
	}

	//---------------------------------------------------------------------------
	// log enablers
	//---------------------------------------------------------------------------
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel && lvl < zapcore.ErrorLevel
	})

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), highPriority),
		zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), lowPriority),
	}

	if logDir == "" {
		return zap.New(zapcore.NewTee(cores...)), nil
	}

	// creating log directory if it doesn't exist
	if err := CreateDirectoryIfNotExists(logDir, LogDirectoryMode); err != nil {
		return nil, err
	}

	//---------------------------------------------------------------------------
	// log files
	//---------------------------------------------------------------------------
	errFileLog, err := openLogFile(filepath.Join(logDir, "errors.log"))
	if err != nil {
		return nil, err
	}

	stdFileLog, err := openLogFile(filepath.Join(logDir, "standard.log"))
	if err != nil {
		return nil, err
	}

	jsonEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	cores = append(
		cores,
		zapcore.NewCore(jsonEncoder, errFileLog, highPriority),
		zapcore.NewCore(jsonEncoder, stdFileLog, lowPriority),
	)

	return zap.New(zapcore.NewTee(cores...)), nil
}

func openLogFile(path string) (zapcore.WriteSyncer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0664)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}

	return zapcore.Lock(zapcore.AddSync(f)), nil
}
