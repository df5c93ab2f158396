package components

import tea "github.com/charmbracelet/bubbletea"

// SpeakMsg asks the root model to pronounce something. Target is one of
// letter, guide, syllable or word.
type SpeakMsg struct {
	Target string
	Ref    string
}

// StatusMsg replaces the status bar text.
type StatusMsg struct{ Text string }

// ProgressChangedMsg tells views that cached progress is stale.
type ProgressChangedMsg struct{}

func Speak(target, ref string) tea.Cmd {
	return func() tea.Msg { return SpeakMsg{Target: target, Ref: ref} }
}

func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ProgressChanged() tea.Msg { return ProgressChangedMsg{} }
