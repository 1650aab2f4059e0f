// Package log exposes leveled printers used across the service:
//
//	log.Info.Printf("create_client ok id=%d", id)
//	log.Error.Printf("get_client repo_err id=%d err=%v", id, err)
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Printer struct {
	l     *logrus.Logger
	level logrus.Level
}

func (p Printer) Printf(format string, args ...any) { p.l.Logf(p.level, format, args...) }

func (p Printer) Println(args ...any) { p.l.Logln(p.level, args...) }

func (p Printer) Fatalf(format string, args ...any) {
	p.l.Logf(p.level, format, args...)
	p.l.Exit(1)
}

var (
	base = newBase()

	Debug = Printer{l: base, level: logrus.DebugLevel}
	Info  = Printer{l: base, level: logrus.InfoLevel}
	Warn  = Printer{l: base, level: logrus.WarnLevel}
	Error = Printer{l: base, level: logrus.ErrorLevel}
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Configure sets the level (debug|info|warn|error) and format (text|json).
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	base.SetLevel(lvl)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("log format: unknown %q", format)
	}
	return nil
}

func SetOutput(w io.Writer) { base.SetOutput(w) }
