package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Configure sets up the process-wide logrus logger.
//
// level accepts any logrus level name (default info). format is "json" or
// "text" (default text).
func Configure(level, format string) {
	log.SetOutput(os.Stdout)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
