// Package log is a thin wrapper around the standard log package.
//
// Messages are filtered by a level tag in square brackets, e.g.
// log.Printf("[warn] unable to parse %s", name). Messages without a tag
// are always written.
package log

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sync"
	"time"
)

type Level string

const (
	LDebug = Level("debug")
	LStep  = Level("step")
	LInfo  = Level("info")
	LWarn  = Level("warn")
	LError = Level("error")
	LFatal = Level("fatal")
)

var levels = []Level{LDebug, LStep, LInfo, LWarn, LError, LFatal}

var DefaultLogger *log.Logger
var defaultFilter *logFilter

func init() {
	defaultFilter = &logFilter{
		start:    time.Now(),
		writer:   os.Stderr,
		minLevel: LStep,
	}
	defaultFilter.init()
	DefaultLogger = log.New(defaultFilter, "", 0)
}

type logFilter struct {
	mu        sync.Mutex
	start     time.Time
	writer    io.Writer
	badLevels map[Level]struct{}
	minLevel  Level
}

func (f *logFilter) init() {
	badLevels := make(map[Level]struct{})
	for _, level := range levels {
		if level == f.minLevel {
			break
		}
		badLevels[level] = struct{}{}
	}
	f.badLevels = badLevels
}

// level returns the first [tag] of the line.
func level(line []byte) Level {
	x := bytes.IndexByte(line, '[')
	if x < 0 {
		return ""
	}
	y := bytes.IndexByte(line[x:], ']')
	if y < 0 {
		return ""
	}
	return Level(line[x+1 : x+y])
}

func knownLevel(lvl Level) bool {
	for _, l := range levels {
		if l == lvl {
			return true
		}
	}
	return false
}

func (f *logFilter) Write(p []byte) (n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// component loggers prefix the line with [component], the level is the
	// second tag in this case
	lvl := level(p)
	if !knownLevel(lvl) {
		if i := bytes.IndexByte(p, ']'); i >= 0 {
			lvl = level(p[i+1:])
		}
	}
	if _, ok := f.badLevels[lvl]; ok {
		return len(p), nil
	}

	b := bytes.Buffer{}
	d := time.Since(f.start)
	fmt.Fprintf(&b, "[%s] %d:%02d:%02d ",
		time.Now().Format(time.RFC3339),
		int(d.Hours()),
		int(math.Mod(d.Minutes(), 60)),
		int(math.Mod(d.Seconds(), 60)),
	)
	b.Write(p)

	if _, err := f.writer.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

func SetMinLevel(lvl Level) {
	defaultFilter.mu.Lock()
	defaultFilter.minLevel = lvl
	defaultFilter.init()
	defaultFilter.mu.Unlock()
}

// SetOutput sets the destination of the default logger.
func SetOutput(w io.Writer) {
	defaultFilter.mu.Lock()
	defaultFilter.writer = w
	defaultFilter.mu.Unlock()
}

func Println(v ...interface{}) {
	DefaultLogger.Println(v...)
}

func Printf(format string, v ...interface{}) {
	DefaultLogger.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	DefaultLogger.Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	DefaultLogger.Fatalf(format, v...)
}

func Step(name string) func() {
	start := time.Now()
	Println("[step] Starting:", name)
	return func() {
		Printf("[step] Finished: %s in %s", name, time.Since(start))
	}
}

// Logger prefixes all messages with the name of a component.
type Logger struct {
	prefix string
}

func New(component string) *Logger {
	return &Logger{prefix: "[" + component + "] "}
}

func (l *Logger) Println(v ...interface{}) {
	DefaultLogger.Output(2, l.prefix+fmt.Sprintln(v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	DefaultLogger.Output(2, l.prefix+fmt.Sprintf(format, v...))
}
