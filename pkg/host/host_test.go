package host

import (
	"bytes"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/clap/claptest"
)

func openFake(t *testing.T, cfg claptest.Config) *clap.Bundle {
	t.Helper()
	b, err := clap.OpenEntry(claptest.Install(cfg), "/fake/Fake.clap")
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestIdentity(t *testing.T) {
	id := Identity()
	assert.Equal(t, "clap-info", id.Name)
	_, err := semver.StrictNewVersion(id.Version)
	assert.NoError(t, err)
	assert.Same(t, shared(), shared())
	assert.Equal(t, id, shared().Info())
}

func TestInstantiate(t *testing.T) {
	b := openFake(t, claptest.Config{Plugins: 2})
	s := New(b, nil)
	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)

	p, err := s.Instantiate(1)
	require.NoError(t, err)
	assert.Equal(t, claptest.PluginID(1), p.ID())
	assert.True(t, p.Activated())

	s.Close()
	s.Close()

	c := claptest.Counts()
	assert.Equal(t, uint32(1), c.Creates)
	assert.Equal(t, uint32(1), c.Activations)
	assert.Equal(t, uint32(1), c.Deactivations)
	assert.Zero(t, c.Live)
	assert.Zero(t, c.ProcessCalls)
}

func TestInstantiateInvalidIndex(t *testing.T) {
	b := openFake(t, claptest.Config{Plugins: 2})
	s := New(b, nil)
	defer s.Close()

	for _, index := range []int{2, 3, 100, -1} {
		_, err := s.Instantiate(index)
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", index)
	}
	assert.Zero(t, claptest.Counts().Creates)
}

func TestNoFactoryHasNoPlugins(t *testing.T) {
	b := openFake(t, claptest.Config{Plugins: 1, NoFactory: true})
	s := New(b, nil)
	defer s.Close()

	_, err := s.Instantiate(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestInstantiationFailed(t *testing.T) {
	tests := []struct {
		name string
		cfg  claptest.Config
	}{
		{"CreateFails", claptest.Config{Plugins: 1, FailCreate: true}},
		{"InitFails", claptest.Config{Plugins: 1, FailInit: true}},
		{"NullDescriptor", claptest.Config{Plugins: 1, NullDescriptor: 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := openFake(t, test.cfg)
			s := New(b, nil)
			defer s.Close()

			p, err := s.Instantiate(0)
			assert.ErrorIs(t, err, ErrInstantiationFailed)
			assert.Nil(t, p)
			assert.Zero(t, claptest.Counts().Live)
		})
	}
}

func TestActivationFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Warn})

	b := openFake(t, claptest.Config{Plugins: 1, FailActivate: true})
	s := New(b, logger)
	defer s.Close()

	p, err := s.Instantiate(0)
	require.NoError(t, err)
	assert.False(t, p.Activated())
	assert.Contains(t, buf.String(), "activation failed")
	assert.Contains(t, buf.String(), s.ID())
}

func TestOnePluginAtATime(t *testing.T) {
	b := openFake(t, claptest.Config{Plugins: 2})
	s := New(b, nil)

	_, err := s.Instantiate(0)
	require.NoError(t, err)
	_, err = s.Instantiate(1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), claptest.Counts().Live)

	s.Close()
	assert.Zero(t, claptest.Counts().Live)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "plugin index out of range", ErrInvalidIndex.Error())
	assert.Equal(t, "unknown error", Error(7).Error())
}
