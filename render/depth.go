package render

// Relative depths used by views and decorators. Higher depth composites in front
const (
	DepthBackground = -1
	DepthContent    = 0
	DepthOverlay    = 1
)
