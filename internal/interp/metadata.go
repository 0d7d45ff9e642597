package interp

import "github.com/1broseidon/winroles/internal/platform"

// metadataEntry is the accumulated knowledge about one window id.
type metadataEntry struct {
	title       string
	className   string
	packageName string
	system      bool
}

// MetadataCache remembers per-window title/class/package across
// notifications. A single notification often carries only a subset of
// this information, so lookups need state accumulated from earlier
// events.
//
// Not safe for concurrent use; the interpreter serializes access.
type MetadataCache struct {
	entries            map[platform.WindowID]metadataEntry
	alertDialogClass   string
	splitScreenCapable bool
}

// NewMetadataCache creates an empty cache. alertDialogClass is the
// exact class name that marks a window as an alert dialog.
func NewMetadataCache(alertDialogClass string, splitScreenCapable bool) *MetadataCache {
	return &MetadataCache{
		entries:            make(map[platform.WindowID]metadataEntry),
		alertDialogClass:   alertDialogClass,
		splitScreenCapable: splitScreenCapable,
	}
}

// UpdateFromSnapshot upserts metadata for every window in the snapshot
// and evicts entries for ids no longer visible. Eviction keeps the
// cache bounded and stops a stale title resurfacing when the platform
// reuses an id for a new window.
func (c *MetadataCache) UpdateFromSnapshot(windows []platform.Window) {
	seen := make(map[platform.WindowID]struct{}, len(windows))
	for _, w := range windows {
		if w.ID == platform.WindowNone {
			continue
		}
		seen[w.ID] = struct{}{}

		entry := c.entries[w.ID]
		if w.Title != "" {
			entry.title = w.Title
		}
		if w.ClassName != "" {
			entry.className = w.ClassName
		}
		if w.PackageName != "" {
			entry.packageName = w.PackageName
		}
		entry.system = w.Kind == platform.KindSystem
		c.entries[w.ID] = entry
	}

	for id := range c.entries {
		if _, ok := seen[id]; !ok {
			delete(c.entries, id)
		}
	}
}

// UpdateFromWindowEvent upserts the entry for a single window from a
// window-state-changed notification. On devices without split-screen
// only one window is ever relevant, so the whole cache is cleared first
// to stop the previous app's metadata leaking into the next lookup.
func (c *MetadataCache) UpdateFromWindowEvent(id platform.WindowID, title, className, packageName string, system bool) {
	if !c.splitScreenCapable {
		clear(c.entries)
	}
	if id == platform.WindowNone {
		return
	}

	entry := c.entries[id]
	if title != "" {
		entry.title = title
	}
	if className != "" {
		entry.className = className
	}
	if packageName != "" {
		entry.packageName = packageName
	}
	entry.system = system
	c.entries[id] = entry
}

// TitleFor returns the cached title for a window, or "" when unknown.
// System windows always yield "": their platform-reported titles are
// frequently untranslated internal strings and must not be announced.
func (c *MetadataCache) TitleFor(id platform.WindowID) string {
	entry, ok := c.entries[id]
	if !ok || entry.system {
		return ""
	}
	return entry.title
}

// IsAlertDialog reports whether the cached class name for a window
// exactly matches the configured alert-dialog class.
func (c *MetadataCache) IsAlertDialog(id platform.WindowID) bool {
	entry, ok := c.entries[id]
	return ok && entry.className != "" && entry.className == c.alertDialogClass
}
