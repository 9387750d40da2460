// Package minibuffer implements the editor's single-line prompt/read
// state machine: a prompt string, editable content, a
// char-indexed cursor, and a bounded-by-nothing history of prior
// entries consulted by history_prev/history_next.
package minibuffer

// State is the minibuffer's activation state.
type State int

const (
	// Inactive means no prompt is showing; keys route to the resolver.
	Inactive State = iota
	// Prompt means a prompt is showing and awaiting the first keystroke.
	Prompt
	// Reading means the user is actively editing the prompt's content.
	Reading
)

// Minibuffer holds the prompt/content/callback state for one pending
// read. Positions are char (rune) indices into Content, never bytes.
type Minibuffer struct {
	state State

	Prompt   string
	Content  []rune
	CursorAt int

	// Callback names the follow-up action the editor performs when
	// Submit returns, one of a closed set (find-file, write-file,
	// switch-to-buffer, kill-buffer, execute-extended-command,
	// goto-line).
	Callback string

	history      []string
	historyIndex int
	hasHistory   bool
}

// New returns an inactive Minibuffer.
func New() *Minibuffer {
	return &Minibuffer{state: Inactive}
}

// State returns the current activation state.
func (m *Minibuffer) State() State { return m.state }

// IsActive reports whether the minibuffer is showing a prompt.
func (m *Minibuffer) IsActive() bool { return m.state != Inactive }

// StartPrompt activates the minibuffer with an empty read, recording
// which follow-up callback submit should report.
func (m *Minibuffer) StartPrompt(prompt, callback string) {
	m.state = Prompt
	m.Prompt = prompt
	m.Content = nil
	m.CursorAt = 0
	m.Callback = callback
	m.hasHistory = false
}

// InsertChar inserts c at the cursor and advances it. Transitions
// Prompt to Reading on the first keystroke.
func (m *Minibuffer) InsertChar(c rune) {
	if m.CursorAt < 0 || m.CursorAt > len(m.Content) {
		return
	}
	m.Content = append(m.Content, 0)
	copy(m.Content[m.CursorAt+1:], m.Content[m.CursorAt:])
	m.Content[m.CursorAt] = c
	m.CursorAt++
	m.state = Reading
}

// DeleteBackward deletes the char before the cursor, if any.
func (m *Minibuffer) DeleteBackward() {
	if m.CursorAt <= 0 {
		return
	}
	m.Content = append(m.Content[:m.CursorAt-1], m.Content[m.CursorAt:]...)
	m.CursorAt--
}

// DeleteForward deletes the char at the cursor, if any.
func (m *Minibuffer) DeleteForward() {
	if m.CursorAt >= len(m.Content) {
		return
	}
	m.Content = append(m.Content[:m.CursorAt], m.Content[m.CursorAt+1:]...)
}

// MoveForward advances the cursor one char, clamped to content end.
func (m *Minibuffer) MoveForward() {
	if m.CursorAt < len(m.Content) {
		m.CursorAt++
	}
}

// MoveBackward retreats the cursor one char, clamped to 0.
func (m *Minibuffer) MoveBackward() {
	if m.CursorAt > 0 {
		m.CursorAt--
	}
}

// MoveToStart moves the cursor to the beginning of the content.
func (m *Minibuffer) MoveToStart() { m.CursorAt = 0 }

// MoveToEnd moves the cursor to the end of the content.
func (m *Minibuffer) MoveToEnd() { m.CursorAt = len(m.Content) }

// HistoryPrev replaces the content with the previous history entry, if
// any remain older than the current position.
func (m *Minibuffer) HistoryPrev() {
	if len(m.history) == 0 {
		return
	}
	var next int
	if !m.hasHistory {
		next = len(m.history) - 1
	} else if m.historyIndex == 0 {
		return
	} else {
		next = m.historyIndex - 1
	}
	m.hasHistory = true
	m.historyIndex = next
	m.Content = []rune(m.history[next])
	m.CursorAt = len(m.Content)
}

// HistoryNext replaces the content with the next history entry,
// clearing back to an empty edit once past the newest entry.
func (m *Minibuffer) HistoryNext() {
	if !m.hasHistory {
		return
	}
	if m.historyIndex >= len(m.history)-1 {
		m.hasHistory = false
		m.Content = nil
		m.CursorAt = 0
		return
	}
	m.historyIndex++
	m.Content = []rune(m.history[m.historyIndex])
	m.CursorAt = len(m.Content)
}

// Submit finalizes the read, returning the entered content and the
// callback to dispatch. ok is false if the minibuffer was inactive.
// Nonempty content is appended to history before the minibuffer clears.
func (m *Minibuffer) Submit() (content, callback string, ok bool) {
	if m.state == Inactive {
		return "", "", false
	}
	content = string(m.Content)
	callback = m.Callback
	if content != "" {
		m.history = append(m.history, content)
	}
	m.Clear()
	return content, callback, true
}

// History returns the recorded submissions, oldest first.
func (m *Minibuffer) History() []string {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// SeedHistory preloads history (e.g. restored from a saved session)
// behind any entries already recorded.
func (m *Minibuffer) SeedHistory(entries []string) {
	m.history = append(append([]string(nil), entries...), m.history...)
}

// Clear returns the minibuffer to Inactive, discarding any in-progress
// edit (used by the cancel path, e.g. keyboard-quit).
func (m *Minibuffer) Clear() {
	m.state = Inactive
	m.Prompt = ""
	m.Content = nil
	m.CursorAt = 0
	m.Callback = ""
	m.hasHistory = false
}

// Display returns the prompt concatenated with the current content,
// for the frontend status line.
func (m *Minibuffer) Display() string {
	return m.Prompt + string(m.Content)
}
