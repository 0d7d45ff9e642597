package trace

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winroles/internal/interp"
)

func testInterpretation() interp.EventInterpretation {
	return interp.EventInterpretation{
		Primary: interp.WindowInterpretation{
			NewID:    10,
			NewTitle: "Browser",
		},
		MainWindowsChanged: true,
		WindowsStable:      true,
		OriginalEvent:      true,
		EventKind:          interp.EventWindowsChanged,
	}
}

func TestWriterAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	w, err := NewWriter(Config{FilePath: path})
	require.NoError(t, err)
	w.now = func() time.Time { return time.Unix(100, 0).UTC() }

	w.Write(testInterpretation())
	w.Write(testInterpretation())
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, records, 2)
	assert.Equal(t, uint32(10), records[0].Primary.NewID)
	assert.Equal(t, "Browser", records[0].Primary.NewTitle)
	assert.True(t, records[0].Stable)
	assert.True(t, records[0].MainChanged)
	assert.Equal(t, "windows-changed", records[0].Event)
}

func TestWriterRotatesAtSizeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	w, err := NewWriter(Config{FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	require.NoError(t, err)

	w.Write(testInterpretation())
	// Force the size check over the limit so the next write rotates.
	w.mu.Lock()
	w.currentSize = 1 << 20
	w.mu.Unlock()
	w.Write(testInterpretation())
	require.NoError(t, w.Close())

	rotated, err := os.Stat(path + ".1")
	require.NoError(t, err)
	assert.Greater(t, rotated.Size(), int64(0))

	current, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, current.Size(), int64(0))
}

func TestWriterNilSafe(t *testing.T) {
	var w *Writer
	w.Write(testInterpretation())
	assert.NoError(t, w.Close())
}

func TestWriterCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "trace.log")
	w, err := NewWriter(Config{FilePath: path})
	require.NoError(t, err)
	w.Write(testInterpretation())
	require.NoError(t, w.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
