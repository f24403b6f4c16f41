package logger

import (
	log "github.com/sirupsen/logrus"

	"job-posting-service/internal/config"
)

func Setup(level config.LogLevel) {

	customFormatter := &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	}
	log.SetFormatter(customFormatter)

	switch level {
	case config.LevelDebug:
		log.SetLevel(log.DebugLevel)
	case config.LevelInfo:
		log.SetLevel(log.InfoLevel)
	case config.LevelWarning:
		log.SetLevel(log.WarnLevel)
	case config.LevelError:
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
