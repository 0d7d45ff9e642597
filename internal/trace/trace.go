// Package trace records emitted interpretations to a JSON-lines file
// with size-based rotation, for replaying and debugging role decisions.
package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/1broseidon/winroles/internal/interp"
)

// Record is one traced interpretation frame.
type Record struct {
	Time             time.Time  `json:"time"`
	Event            string     `json:"event"`
	Stable           bool       `json:"stable"`
	Original         bool       `json:"original"`
	MainChanged      bool       `json:"main_changed"`
	PiPChanged       bool       `json:"pip_changed"`
	Primary          RoleRecord `json:"primary"`
	Secondary        RoleRecord `json:"secondary"`
	Overlay          RoleRecord `json:"overlay"`
	PictureInPicture RoleRecord `json:"pip"`
	Announcement     string     `json:"announcement,omitempty"`
}

// RoleRecord is the old/new pair for one role.
type RoleRecord struct {
	OldID    uint32 `json:"old_id"`
	OldTitle string `json:"old_title,omitempty"`
	NewID    uint32 `json:"new_id"`
	NewTitle string `json:"new_title,omitempty"`
	Alert    bool   `json:"alert,omitempty"`
}

// Config holds trace writer settings.
type Config struct {
	FilePath  string
	MaxSizeMB int
	MaxFiles  int
}

// Writer appends interpretation records to a rotating trace file.
type Writer struct {
	mu          sync.Mutex
	file        *os.File
	config      Config
	currentSize int64
	now         func() time.Time
}

// NewWriter opens (or creates) the trace file and returns a writer.
func NewWriter(cfg Config) (*Writer, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = 3
	}

	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file %s: %w", cfg.FilePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat trace file: %w", err)
	}

	return &Writer{
		file:        f,
		config:      cfg,
		currentSize: stat.Size(),
		now:         time.Now,
	}, nil
}

// Write appends one interpretation as a JSON line. Failures are
// reported to stderr rather than interrupting the interpretation
// stream.
func (w *Writer) Write(e interp.EventInterpretation) {
	if w == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return
	}

	maxBytes := int64(w.config.MaxSizeMB) * 1024 * 1024
	if w.currentSize >= maxBytes {
		if err := w.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "trace rotation failed: %v\n", err)
		}
		if w.file == nil {
			return
		}
	}

	line, err := json.Marshal(toRecord(e, w.now()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode trace record: %v\n", err)
		return
	}
	line = append(line, '\n')

	n, err := w.file.Write(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write trace record: %v\n", err)
		return
	}
	w.currentSize += int64(n)
}

// Close flushes and closes the trace file.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.file.Close()
	w.file = nil
	return err
}

// rotate shifts trace.log -> trace.log.1 -> trace.log.2 and so on,
// dropping the oldest file, then reopens a fresh trace.log.
func (w *Writer) rotate() error {
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}

	basePath := w.config.FilePath
	for i := w.config.MaxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		if i == w.config.MaxFiles {
			os.Remove(oldPath)
		} else {
			os.Rename(oldPath, fmt.Sprintf("%s.%d", basePath, i+1))
		}
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate trace file: %w", err)
	}

	f, err := os.OpenFile(basePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new trace file: %w", err)
	}

	w.file = f
	w.currentSize = 0
	return nil
}

func toRecord(e interp.EventInterpretation, now time.Time) Record {
	return Record{
		Time:             now,
		Event:            e.EventKind.String(),
		Stable:           e.WindowsStable,
		Original:         e.OriginalEvent,
		MainChanged:      e.MainWindowsChanged,
		PiPChanged:       e.PictureInPicChanged,
		Primary:          toRoleRecord(e.Primary),
		Secondary:        toRoleRecord(e.Secondary),
		Overlay:          toRoleRecord(e.Overlay),
		PictureInPicture: toRoleRecord(e.PictureInPicture),
		Announcement:     e.Announcement,
	}
}

func toRoleRecord(w interp.WindowInterpretation) RoleRecord {
	return RoleRecord{
		OldID:    uint32(w.OldID),
		OldTitle: w.OldTitle,
		NewID:    uint32(w.NewID),
		NewTitle: w.NewTitle,
		Alert:    w.AlertDialog,
	}
}
