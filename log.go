package cloudview

import (
	"log"
	"os"
)

// logger receives advisory and warning messages from every view, plus
// per-frame stats from scenes in debug mode.
var logger = log.New(os.Stderr, "[cloudview] ", 0)

// SetLogger replaces the package logger. Passing nil restores the default,
// which writes to stderr.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(os.Stderr, "[cloudview] ", 0)
	}
	logger = l
}
