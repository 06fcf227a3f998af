package tui

// Generator renders the report text. showFull includes the raw nvidia-smi
// output inside the fence.
type Generator func(showFull bool) string

// KeyBinding represents one entry of the key hint line
type KeyBinding struct {
	Keys  []string // Key names as reported by tea.KeyMsg.String()
	Label string   // Hint shown in the footer
}

// DefaultKeyBindings returns the viewer key bindings in display order
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"s"}, Label: "s: toggle nvidia-smi output"},
		{Keys: []string{"r"}, Label: "r: refresh"},
		{Keys: []string{"q", "esc", "ctrl+c"}, Label: "q: quit"},
	}
}
