// Package logger configures the process-wide logrus logger used by logdict.
package logger

import (
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Level:      logrus.InfoLevel,
		TimeFormat: "2006-01-02 15:04:05.000",
		LogPath:    ".",
	}
}

// Configure replaces the level, formatters and file hooks of the default
// logger.
func Configure(config *Configuration) error {
	logger.SetLevel(config.Level)
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: config.TimeFormat,
		FullTimestamp:   true,
	})
	logger.ReplaceHooks(make(logrus.LevelHooks))

	if config.EnableFileLog {
		writerMap := lfshook.WriterMap{}
		for _, level := range []logrus.Level{
			logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel,
		} {
			w, err := setupWriter(config.LogPath, level.String())
			if err != nil {
				return err
			}
			writerMap[level] = w
		}
		// no color codes in files
		fileFormatter := &logrus.TextFormatter{
			TimestampFormat: config.TimeFormat,
			FullTimestamp:   true,
			DisableColors:   true,
		}
		logger.AddHook(lfshook.NewHook(writerMap, fileFormatter))
	}

	logger.SetOutput(os.Stderr)
	return nil
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		path.Join(logPath, level)+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
}

func Default() *logrus.Logger {
	return logger
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
