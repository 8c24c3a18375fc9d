package utils

import (
	"io"
	"log"
	"os"
	"sync"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
	FATAL = "FATAL"
)

var (
	instance *Logger
	once     sync.Once

	// osExit is swapped in tests.
	osExit = os.Exit
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	fatalLogger *log.Logger
}

// newLogger builds the level loggers on top of out. Debug lines go to
// debugOut, which may be io.Discard.
func newLogger(out, debugOut io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(out, "[INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "[WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(out, "[ERROR] ", log.Ldate|log.Ltime),
		debugLogger: log.New(debugOut, "[DEBUG] ", log.Ldate|log.Ltime),
		fatalLogger: log.New(out, "[FATAL] ", log.Ldate|log.Ltime),
	}
}

// NewLogger creates a new logger instance (singleton). Lines go to stderr
// and, when logFilePath is set, to that file as well.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		var out io.Writer = os.Stderr
		var fileOut io.Writer = io.Discard

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				log.Fatalf("Failed to open log file: %v", err)
			}
			fileOut = file
			out = io.MultiWriter(file, os.Stderr)
		}

		// Debug lines always reach the file, the console only in debug mode
		debugOut := fileOut
		if debugMode {
			debugOut = out
		}
		instance = newLogger(out, debugOut)
	})
	return instance
}

// GetLogger retrieves the singleton logger instance, falling back to a
// stderr logger when NewLogger was never called.
func GetLogger() *Logger {
	if instance == nil {
		return NewLogger("", false)
	}
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}

// Fatal logs the message and terminates the process with status 1.
func (l *Logger) Fatal(message string) {
	l.fatalLogger.Println(message)
	osExit(1)
}
