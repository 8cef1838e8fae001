package main

import (
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Defaults match the zero-argument invocation: serve docs/ on port 8000.
const (
	DefaultPort = 8000
	DefaultRoot = "docs"
)

// errRootNotFound marks the one startup failure with bespoke console
// output: the served directory is missing (or not a directory at all).
var errRootNotFound = errors.New("root directory not found")

// Config is assembled once in main and passed by value; nothing in it
// changes after startup.
type Config struct {
	Host string
	Port int
	Root string
	CORS bool
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// Addr returns the listen address. An empty Host binds all interfaces.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ResolveRoot verifies the served directory exists and is readable,
// returning its absolute path. No listener may be bound before this
// passes.
func (c Config) ResolveRoot() (string, error) {
	abs, err := filepath.Abs(c.Root)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %q", c.Root)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errRootNotFound
		}
		return "", errors.Wrapf(err, "probe %q", c.Root)
	}
	if !info.IsDir() {
		return "", errRootNotFound
	}
	f, err := os.Open(abs)
	if err != nil {
		return "", errors.Wrapf(err, "open %q", c.Root)
	}
	f.Close()
	return abs, nil
}
