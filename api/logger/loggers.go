package logger

import (
	"io"
	"log"
	"os"

	"github.com/courtside/attendbot/api/env"
)

var errorLogger *log.Logger
var outLogger *log.Logger
var debugLogger *log.Logger
var logFile *os.File

func init() {
	path := env.GetOr("log.file", "attendbot.log")

	var err error
	logFile, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Error loading log file: %s", err.Error())
	}

	output := io.Writer(os.Stdout)
	errorOut := io.Writer(os.Stderr)
	if logFile != nil {
		output = io.MultiWriter(os.Stdout, logFile)
		errorOut = io.MultiWriter(os.Stderr, logFile)
	}

	outLogger = log.New(output, "[INFO] ", log.Flags())
	errorLogger = log.New(errorOut, "[ERROR] ", log.Flags())
	debugLogger = log.New(output, "[DEBUG] ", log.Flags())
}

func Close() error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

func Out() *log.Logger {
	return outLogger
}

func Err() *log.Logger {
	return errorLogger
}

func Debug() *log.Logger {
	return debugLogger
}
