// Package logger provides namespaced debug logging gated by the DEBUG
// environment variable, in the style of the node "debug" package. A logger is
// silent unless DEBUG matches its namespace, so instrumentation can stay in
// place permanently without polluting normal output.
//
// DEBUG accepts a comma-separated list of patterns; "*" matches any suffix:
//
//	DEBUG=cli:release releasekit ...
//	DEBUG=cli:* releasekit ...
//	DEBUG=* releasekit ...
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Logger writes namespaced debug lines to stderr when enabled.
type Logger struct {
	namespace string
	enabled   bool
}

var (
	mu      sync.Mutex
	loggers = map[string]*Logger{}
)

// New returns the logger for the given namespace, creating it on first use.
// Enablement is decided once, from the DEBUG environment variable at the time
// of the first call for that namespace.
func New(namespace string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[namespace]; ok {
		return l
	}
	l := &Logger{
		namespace: namespace,
		enabled:   matches(os.Getenv("DEBUG"), namespace),
	}
	loggers[namespace] = l
	return l
}

// Enabled reports whether the logger will emit output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Print logs its arguments on one line, prefixed with the namespace.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", l.namespace, fmt.Sprint(args...))
}

// Printf logs a formatted line prefixed with the namespace.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", l.namespace, fmt.Sprintf(format, args...))
}

// matches reports whether any comma-separated pattern in spec covers the
// namespace. A trailing "*" in a pattern matches any suffix.
func matches(spec, namespace string) bool {
	if spec == "" {
		return false
	}
	for _, pattern := range strings.Split(spec, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if suffix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(namespace, suffix) {
				return true
			}
			continue
		}
		if pattern == namespace {
			return true
		}
	}
	return false
}
