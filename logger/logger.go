package logger

import (
	"io"
	"log"
	"os"
)

const (
	prefix = "SALIS "
	flags  = log.Ldate | log.Ltime | log.Lshortfile
)

// New returns a logger appending to the file at path, or writing to stdout
// when path is empty. The returned closer releases the file.
func New(path string) (*log.Logger, io.Closer, error) {
	if len(path) == 0 {
		return log.New(os.Stdout, prefix, flags), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, nil, err
	}
	l := log.New(f, prefix, flags)
	l.Printf("Initializing %s", path)
	return l, f, nil
}

// Discard returns a logger dropping everything, for tests
func Discard() *log.Logger {
	return log.New(io.Discard, prefix, flags)
}
