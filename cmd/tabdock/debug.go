package main

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/ellery/tabdock/internal/util"
)

const (
	logFileName = "log.txt"
	maxLogSize  = 4 * 1024 * 1024
)

// logFile is an append-only log that moves itself to <path>.1 once it
// grows past maxSize. Only one backup is kept.
type logFile struct {
	mu      sync.Mutex
	path    string
	maxSize int64
	f       *os.File
	written int64
}

func openLogFile(path string, maxSize int64) (*logFile, error) {
	l := &logFile{path: path, maxSize: maxSize}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *logFile) open() error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, util.FileMode)
	if err != nil {
		return err
	}
	l.f = f
	l.written = 0
	if info, err := f.Stat(); err == nil {
		l.written = info.Size()
	}
	return nil
}

func (l *logFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return 0, os.ErrClosed
	}
	if l.written > 0 && l.written+int64(len(p)) > l.maxSize {
		l.f.Close()
		os.Rename(l.path, l.path+".1")
		if err := l.open(); err != nil {
			l.f = nil
			return 0, err
		}
	}

	n, err := l.f.Write(p)
	l.written += int64(n)
	return n, err
}

func (l *logFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// initLog sends the standard logger to log.txt in debug mode and discards
// it otherwise. The returned closer is never nil.
func initLog() io.Closer {
	if !util.DebugEnabled() {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}

	lf, err := openLogFile(logFileName, maxLogSize)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	log.SetOutput(lf)
	log.Println("TABDOCK started with logging enabled")
	return lf
}
