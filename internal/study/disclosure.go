package study

// Disclosure tracks, per quiz identity key, whether the answer panel is
// shown. Keys that were never toggled are hidden. The zero value is ready
// to use.
type Disclosure struct {
	shown map[string]bool
}

// Toggle flips the state of key between hidden and shown. Other keys are
// not affected.
func (d *Disclosure) Toggle(key string) {
	if d.shown == nil {
		d.shown = make(map[string]bool)
	}
	if d.shown[key] {
		delete(d.shown, key)
		return
	}
	d.shown[key] = true
}

// Shown reports whether key is currently shown.
func (d *Disclosure) Shown(key string) bool {
	return d.shown[key]
}

// Reset hides every key and forgets all of them.
func (d *Disclosure) Reset() {
	d.shown = nil
}

// Len returns the number of keys currently shown.
func (d *Disclosure) Len() int {
	return len(d.shown)
}
