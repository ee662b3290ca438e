package clap_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

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

func TestOpenErrors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := clap.Open(filepath.Join(t.TempDir(), "nope.clap"))
		assert.ErrorIs(t, err, clap.ErrNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := clap.Open(t.TempDir())
		assert.ErrorIs(t, err, clap.ErrLoadFailure)
	})

	t.Run("NotALibrary", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.clap")
		require.NoError(t, os.WriteFile(path, []byte("not a shared object"), 0o644))
		_, err := clap.Open(path)
		assert.ErrorIs(t, err, clap.ErrLoadFailure)
	})

	t.Run("NilEntry", func(t *testing.T) {
		_, err := clap.OpenEntry(nil, "x.clap")
		assert.ErrorIs(t, err, clap.ErrNoEntry)
	})

	t.Run("Incompatible", func(t *testing.T) {
		_, err := clap.OpenEntry(claptest.Install(claptest.Config{Incompatible: true}), "x.clap")
		assert.ErrorIs(t, err, clap.ErrIncompatibleVersion)
		assert.Zero(t, claptest.Counts().EntryInits)
	})

	t.Run("EntryInitFails", func(t *testing.T) {
		_, err := clap.OpenEntry(claptest.Install(claptest.Config{FailEntryInit: true}), "x.clap")
		assert.ErrorIs(t, err, clap.ErrEntryInit)
	})
}

func TestBundleLifecycle(t *testing.T) {
	b, err := clap.OpenEntry(claptest.Install(claptest.Config{Plugins: 1}), "/fake/Fake.clap")
	require.NoError(t, err)

	assert.Equal(t, "/fake/Fake.clap", b.Path())
	assert.Equal(t, "/fake/Fake.clap", claptest.InitPath())
	assert.Equal(t, "1.2.0", b.Version().String())

	host := clap.NewHost(clap.HostInfo{Name: "test"})
	defer host.Free()

	f, err := b.Factory()
	require.NoError(t, err)
	p, err := f.CreatePlugin(host, claptest.PluginID(0))
	require.NoError(t, err)
	require.NoError(t, p.Activate(48000, 32, 4096))

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	c := claptest.Counts()
	assert.Equal(t, uint32(1), c.EntryInits)
	assert.Equal(t, uint32(1), c.EntryDeinits)
	assert.Equal(t, uint32(1), c.Deactivations)
	assert.Equal(t, uint32(1), c.Destroys)
	assert.Zero(t, c.Live)
	assert.Zero(t, c.ProcessCalls)

	_, err = b.Factory()
	assert.ErrorIs(t, err, clap.ErrClosed)
}

func TestNoFactory(t *testing.T) {
	b := openFake(t, claptest.Config{NoFactory: true})
	_, err := b.Factory()
	assert.ErrorIs(t, err, clap.ErrNoFactory)
}

func TestVersion(t *testing.T) {
	tests := []struct {
		version    clap.Version
		compatible bool
	}{
		{clap.Version{Major: 0, Minor: 9}, false},
		{clap.Version{Major: 1}, true},
		{clap.Version{Major: 1, Minor: 2, Revision: 2}, true},
		{clap.Version{Major: 2}, true},
	}
	for _, test := range tests {
		t.Run(test.version.String(), func(t *testing.T) {
			assert.Equal(t, test.compatible, test.version.Compatible())
		})
	}
}

func TestErrorMessages(t *testing.T) {
	var err error = clap.ErrNoEntry
	assert.Equal(t, "module does not export clap_entry", err.Error())
	assert.True(t, errors.Is(err, clap.ErrNoEntry))
	assert.Equal(t, "unknown error", clap.Error(42).Error())
}
