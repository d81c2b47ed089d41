//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedscopeBalancesEvents(t *testing.T) {
	evs := []event{
		{at: 0, frame: 0, open: true},
		{at: 1000, frame: 1, open: true},
		{at: 2000, frame: 2},
		{at: 3000, frame: 1},
		{at: 4000, frame: 0, open: true},
	}
	out, end := speedscopeEvents(evs)
	assert.Equal(t, int64(4), end)
	assert.Equal(t, []ssEvent{
		{Type: "O", At: 0, Frame: 0},
		{Type: "O", At: 1, Frame: 1},
		{Type: "C", At: 3, Frame: 1},
		{Type: "O", At: 4, Frame: 0},
		{Type: "C", At: 4, Frame: 0},
		{Type: "C", At: 4, Frame: 0},
	}, out)
}

func TestDumpWritesFile(t *testing.T) {
	Init(64)
	end := Start("outer")
	Start("inner")()
	end()

	path := filepath.Join(t.TempDir(), "capture.json")
	require.NoError(t, Dump(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Profiles, 1)
	assert.Len(t, doc.Profiles[0].Events, 4)
	assert.Contains(t, doc.Shared.Frames, ssFrame{Name: "inner"})
}
