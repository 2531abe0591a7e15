// Package logging configures the process-wide apex/log handler.
//
// The terminal belongs to the UI while it runs, so log output goes to a file
// or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs a handler writing to path at the given level. An empty path
// discards everything. Files ending in .json get one JSON object per entry.
// The returned closer flushes and closes the log file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	if path == "" {
		log.SetHandler(discard.New())
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	log.SetHandler(handlerFor(path, f))
	log.SetLevel(lvl)
	return f, nil
}

func handlerFor(path string, w io.Writer) log.Handler {
	if strings.HasSuffix(path, ".json") {
		return json.New(w)
	}
	return text.New(w)
}
