package config

import "strconv"

// Environment overrides, highest precedence. Each variable maps to one
// Config field; unset or unparsable values leave the field alone.
const (
	envKillRing    = "NUCLEUS_KILL_RING_CAPACITY"
	envMarkRing    = "NUCLEUS_MARK_RING_CAPACITY"
	envUndoMax     = "NUCLEUS_UNDO_MAX_ENTRIES"
	envTabWidth    = "NUCLEUS_TAB_WIDTH"
	envSessionFile = "NUCLEUS_SESSION_FILE"
)

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) {
	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setInt(envKillRing, &cfg.KillRingCapacity)
	setInt(envMarkRing, &cfg.MarkRingCapacity)
	setInt(envUndoMax, &cfg.UndoMaxEntries)
	setInt(envTabWidth, &cfg.TabWidth)
	if v, ok := lookup(envSessionFile); ok {
		cfg.SessionFile = v
	}
}
