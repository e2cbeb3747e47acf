// internal/skillet/skillet.go
package skillet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/annabarone/skilletlib/internal/device"
)

// Dialer opens a live device session from connection info. The default is
// device.Connect; tests and embedders swap it out.
type Dialer func(ctx context.Context, info device.ConnectInfo) (device.Session, error)

// Skillet binds parsed metadata to a device session for one execution.
// The session is either injected up front (shared with an outer application
// that already authenticated) or created during context initialization.
type Skillet struct {
	md      *Metadata
	path    string
	session device.Session
	dial    Dialer
	logger  *slog.Logger
}

// Option configures a Skillet.
type Option func(*Skillet)

// WithSession injects an already-established device session. The session is
// borrowed: the skillet queries it but never closes or reconfigures it.
func WithSession(sess device.Session) Option {
	return func(s *Skillet) {
		s.session = sess
	}
}

// WithDialer overrides how online mode opens a session.
func WithDialer(dial Dialer) Option {
	return func(s *Skillet) {
		s.dial = dial
	}
}

// WithLogger sets a structured logger. Without it, logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Skillet) {
		s.logger = logger
	}
}

// New builds a Skillet from parsed metadata. path is the directory that
// file-backed snippets resolve against.
func New(md *Metadata, path string, opts ...Option) *Skillet {
	s := &Skillet{
		md:   md,
		path: path,
		dial: func(ctx context.Context, info device.ConnectInfo) (device.Session, error) {
			return device.Connect(ctx, info)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	s.logger = s.logger.With("skillet", md.Name)
	return s
}

// Load reads and validates a skillet metadata file, returning a Skillet
// rooted at the file's directory.
func Load(path string, opts ...Option) (*Skillet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skillet %s: %w", path, err)
	}
	md, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := md.Validate(); err != nil {
		return nil, fmt.Errorf("invalid skillet %s: %w", path, err)
	}
	return New(md, filepath.Dir(path), opts...), nil
}

// Metadata returns the parsed skillet metadata.
func (s *Skillet) Metadata() *Metadata {
	return s.md
}

// Session returns the device session bound to this skillet. Nil until a
// session is injected or InitializeContext runs.
func (s *Skillet) Session() device.Session {
	return s.session
}
