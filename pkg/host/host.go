// Package host runs introspection sessions against a loaded bundle.
//
// A session holds at most one live plugin. The plugin is created, activated
// when it allows it, queried, and discarded; it is never started or
// processed.
package host

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
)

// Session is an introspection host bound to one bundle.
type Session struct {
	id     string
	bundle *clap.Bundle
	logger hclog.Logger
	plugin *clap.Plugin
}

// New starts a session on bundle. The bundle must outlive the session.
func New(bundle *clap.Bundle, logger hclog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		bundle: bundle,
		logger: debug.OrNull(logger).Named("host").With("session", id),
	}
}

// ID returns the session id carried by the session's log lines.
func (s *Session) ID() string {
	return s.id
}

// Logger returns the session logger.
func (s *Session) Logger() hclog.Logger {
	return s.logger
}

// Instantiate creates the plugin at index and tries to activate it. A
// previous plugin of the session is discarded first. Activation failure is
// logged and otherwise ignored.
func (s *Session) Instantiate(index int) (*clap.Plugin, error) {
	s.discard()

	f, err := s.bundle.Factory()
	if err != nil && !errors.Is(err, clap.ErrNoFactory) {
		return nil, fmt.Errorf("%w: %v", ErrInstantiationFailed, err)
	}
	count := 0
	if f != nil {
		count = int(f.Count())
	}
	if index < 0 || index >= count {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, count)
	}
	desc, ok := f.Descriptor(uint32(index))
	if !ok {
		return nil, fmt.Errorf("%w: no descriptor at index %d", ErrInstantiationFailed, index)
	}

	p, err := f.CreatePlugin(shared(), desc.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInstantiationFailed, err)
	}
	s.plugin = p
	s.logger.Debug("plugin created", "plugin", desc.ID, "index", index)

	if err := p.Activate(SampleRate, MinFrames, MaxFrames); err != nil {
		s.logger.Warn("activation failed, probing inactive plugin", "plugin", desc.ID, "error", err)
	}
	return p, nil
}

// Close discards the live plugin, if any. Close is idempotent.
func (s *Session) Close() {
	s.discard()
}

func (s *Session) discard() {
	if s.plugin == nil {
		return
	}
	s.plugin.Destroy()
	s.logger.Debug("plugin discarded", "plugin", s.plugin.ID())
	s.plugin = nil
}
