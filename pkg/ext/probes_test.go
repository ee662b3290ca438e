package ext

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/clapinfo/pkg/clap"
)

type fakeParams struct {
	infos []clap.ParamInfo
	fail  map[uint32]bool
}

func (f fakeParams) Count() uint32 { return uint32(len(f.infos)) }

func (f fakeParams) Info(i uint32) (clap.ParamInfo, bool) {
	if f.fail[i] || int(i) >= len(f.infos) {
		return clap.ParamInfo{}, false
	}
	return f.infos[i], true
}

type fakeAudioPorts struct {
	in, out []clap.AudioPortInfo
}

func (f fakeAudioPorts) Count(isInput bool) uint32 {
	if isInput {
		return uint32(len(f.in))
	}
	return uint32(len(f.out)) + 1
}

func (f fakeAudioPorts) Get(i uint32, isInput bool) (clap.AudioPortInfo, bool) {
	ports := f.out
	if isInput {
		ports = f.in
	}
	if int(i) >= len(ports) {
		return clap.AudioPortInfo{}, false
	}
	return ports[i], true
}

type fakeValue uint32

func (f fakeValue) Get() uint32 { return uint32(f) }

type fakeGUI struct {
	supported map[string]bool
	preferred string
}

func (f fakeGUI) IsAPISupported(api string, floating bool) bool {
	if floating {
		api += ".floating"
	}
	return f.supported[api]
}

func (f fakeGUI) PreferredAPI() (string, bool, bool) {
	return f.preferred, false, f.preferred != ""
}

type fakeState struct {
	n  uint64
	ok bool
}

func (f fakeState) SaveSize() (uint64, bool) { return f.n, f.ok }

type fakeNoteNames []clap.NoteName

func (f fakeNoteNames) Count() uint32 { return uint32(len(f)) }

func (f fakeNoteNames) Get(i uint32) (clap.NoteName, bool) {
	if int(i) >= len(f) {
		return clap.NoteName{}, false
	}
	return f[i], true
}

func TestAbsentExtensions(t *testing.T) {
	tests := []struct {
		name    string
		payload interface{ Implemented() bool }
	}{
		{"Params", Params(nil, nil)},
		{"AudioPorts", AudioPorts(nil, nil)},
		{"AudioPortsConfig", AudioPortsConfig(nil, nil)},
		{"NotePorts", NotePorts(nil, nil)},
		{"Latency", Latency(nil, true)},
		{"Tail", Tail(nil)},
		{"GUI", GUI(nil)},
		{"State", State(nil)},
		{"NoteName", NoteName(nil, nil)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.False(t, test.payload.Implemented())
			_, err := json.Marshal(test.payload)
			assert.NoError(t, err)
		})
	}
}

func TestParamsSkipsFailedEntries(t *testing.T) {
	src := fakeParams{
		infos: []clap.ParamInfo{
			{ID: 1, Name: "Cutoff", Flags: clap.ParamIsAutomatable, Min: 20, Max: 20000, Default: 1000},
			{ID: 2, Name: "Broken"},
			{ID: 3, Name: "Odd", Min: math.Inf(-1), Max: math.NaN()},
		},
		fail: map[uint32]bool{1: true},
	}
	out := Params(src, nil)

	assert.True(t, out.IsImplemented)
	assert.Equal(t, uint32(3), out.ParamCount)
	require.Len(t, out.Params, 2)

	cutoff := out.Params[0]
	assert.Equal(t, []string{"automatable"}, cutoff.Flags)
	assert.Equal(t, ParamValues{Current: 1000, Default: 1000, Min: 20, Max: 20000}, cutoff.Values)

	odd := out.Params[1]
	assert.Equal(t, uint32(3), odd.ID)
	assert.Zero(t, odd.Values.Min)
	assert.Zero(t, odd.Values.Max)
	_, err := json.Marshal(out)
	assert.NoError(t, err)
}

func TestAudioPortsProbe(t *testing.T) {
	src := fakeAudioPorts{
		in: []clap.AudioPortInfo{
			{ID: 0, Name: "In", PortType: "stereo", ChannelCount: 2, Flags: clap.AudioPortIsMain, InPlacePair: 0},
		},
		out: []clap.AudioPortInfo{
			{ID: 1, Name: "Out", PortType: "surround", ChannelCount: 6, InPlacePair: clap.InvalidID},
		},
	}
	out := AudioPorts(src, nil)

	assert.Equal(t, uint32(1), out.InputPortCount)
	assert.Equal(t, uint32(2), out.OutputPortCount)
	require.Len(t, out.InputPorts, 1)
	require.Len(t, out.OutputPorts, 1)

	in := out.InputPorts[0]
	assert.Equal(t, []string{"is-main"}, in.Flags.Fields)
	require.NotNil(t, in.InPlacePair)
	assert.Equal(t, uint32(0), *in.InPlacePair)

	o := out.OutputPorts[0]
	assert.Equal(t, "unknown", o.PortType)
	assert.Nil(t, o.InPlacePair)
	assert.Nil(t, o.Flags.Fields)

	data, err := json.Marshal(o.Flags)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":0}`, string(data))
}

func TestLatencyRequiresActivation(t *testing.T) {
	assert.Equal(t, LatencyPayload{IsImplemented: true, Latency: 0}, Latency(fakeValue(128), false))
	assert.Equal(t, LatencyPayload{IsImplemented: true, Latency: 128}, Latency(fakeValue(128), true))
}

func TestTail(t *testing.T) {
	assert.Equal(t, TailPayload{IsImplemented: true, Tail: 4800}, Tail(fakeValue(4800)))
	assert.True(t, Tail(fakeValue(math.MaxInt32)).Infinite)
	assert.True(t, Tail(fakeValue(math.MaxUint32)).Infinite)
}

func TestGUIProbe(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		out := GUI(fakeGUI{
			supported: map[string]bool{"x11": true, "wayland.floating": true, "cocoa": true},
			preferred: "x11",
		})
		assert.Equal(t, []string{"cocoa", "x11", "wayland.floating"}, out.APISupported)
		assert.Equal(t, &PreferredAPI{API: "x11"}, out.PreferredAPI)
	})

	t.Run("NothingFound", func(t *testing.T) {
		out := GUI(fakeGUI{})
		assert.True(t, out.IsImplemented)
		data, err := json.Marshal(out)
		require.NoError(t, err)
		assert.JSONEq(t, `{"implemented":true}`, string(data))
	})
}

func TestStateProbe(t *testing.T) {
	out := State(fakeState{n: 1024, ok: true})
	require.NotNil(t, out.BytesWritten)
	assert.Equal(t, uint64(1024), *out.BytesWritten)

	failed := State(fakeState{n: 12})
	assert.True(t, failed.IsImplemented)
	assert.Nil(t, failed.BytesWritten)
}

func TestNoteNameWildcards(t *testing.T) {
	out := NoteName(fakeNoteNames{
		{Name: "Kick", Port: -1, Key: 36, Channel: -1},
		{Name: "Odd", Port: -7, Key: 40, Channel: 3},
	}, nil)

	assert.Equal(t, uint32(2), out.Count)
	assert.Equal(t, []NoteNameEntry{
		{Name: "Kick", Port: -1, Key: 36, Channel: -1},
		{Name: "Odd", Port: -1, Key: 40, Channel: 3},
	}, out.NoteNames)

	data, err := json.Marshal(out.NoteNames[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Kick","port":-1,"key":36,"channel":-1}`, string(data))
}

// endless reports the largest possible count and describes every index.
type endless struct{ calls *uint32 }

func (e endless) Count() uint32 { return math.MaxUint32 }

func (e endless) Info(i uint32) (clap.ParamInfo, bool) {
	*e.calls++
	return clap.ParamInfo{ID: i}, true
}

func (e endless) Get(i uint32) (clap.NoteName, bool) {
	*e.calls++
	return clap.NoteName{Name: "n"}, true
}

func TestHugeCountsAreClamped(t *testing.T) {
	t.Run("Params", func(t *testing.T) {
		var calls uint32
		got := Params(endless{&calls}, nil)
		assert.Equal(t, uint32(math.MaxUint32), got.ParamCount)
		assert.Len(t, got.Params, clap.MaxEntries)
		assert.Equal(t, uint32(clap.MaxEntries), calls)
	})
	t.Run("NoteNames", func(t *testing.T) {
		var calls uint32
		got := NoteName(endless{&calls}, nil)
		assert.Equal(t, uint32(math.MaxUint32), got.Count)
		assert.Len(t, got.NoteNames, clap.MaxEntries)
		assert.Equal(t, uint32(clap.MaxEntries), calls)
	})
}
