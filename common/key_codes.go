package common

// Virtual key codes for the interactive viewer.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyP     = 80  // P key (ASCII), save a PNG snapshot
	KeyR     = 82  // R key (ASCII), reset to the default view
	KeyEsc   = 256 // Escape key (GLFW), close the viewer
	KeyLeft  = 263 // Arrow left (GLFW)
	KeyRight = 262 // Arrow right (GLFW)
	KeyUp    = 265 // Arrow up (GLFW)
	KeyDown  = 264 // Arrow down (GLFW)
)
