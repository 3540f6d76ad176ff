package dispatchers

// Mode is what the program does once argument parsing has finished.
type Mode int

const (
	// ModeGUI starts the graphical application. It is the default.
	ModeGUI Mode = iota
	// ModeOperation means a handler already performed the whole operation.
	// Dispatch stops consuming tokens as soon as this mode is set.
	ModeOperation
	// ModeRender starts a headless render of a scene.
	ModeRender
	// ModeSnapshot writes a snapshot image of a scene from its render dump.
	ModeSnapshot
)

func (m Mode) String() string {
	switch m {
	case ModeGUI:
		return "gui"
	case ModeOperation:
		return "operation"
	case ModeRender:
		return "headless-render"
	case ModeSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// RequiresTextures reports whether resource packs must be loaded for the mode.
func (m Mode) RequiresTextures() bool {
	return m == ModeGUI || m == ModeRender
}

// Terminal reports whether the mode ends token consumption.
func (m Mode) Terminal() bool {
	return m == ModeOperation
}
