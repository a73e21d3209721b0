package db

import (
	"strings"

	"go.uber.org/zap"
)

// printfLogger routes goose and gorm printf-style output into zap.
type printfLogger struct {
	sugar *zap.SugaredLogger
	warn  bool
}

func migrationLogger() printfLogger {
	return printfLogger{sugar: zap.L().Named("migrations").Sugar()}
}

func queryLogger() printfLogger {
	return printfLogger{sugar: zap.L().Named("gorm").Sugar(), warn: true}
}

func (logger printfLogger) Printf(format string, args ...any) {
	format = strings.TrimSpace(format)
	if logger.warn {
		logger.sugar.Warnf(format, args...)
		return
	}
	logger.sugar.Infof(format, args...)
}

func (logger printfLogger) Fatalf(format string, args ...any) {
	logger.sugar.Fatalf(strings.TrimSpace(format), args...)
}
