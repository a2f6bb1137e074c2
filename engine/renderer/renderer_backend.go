package renderer

import (
	"fmt"
	"strings"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing. This is the default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped

	// PresentModeMailbox replaces the queued frame with the newest one on every present.
	// No tearing, but support is adapter-dependent.
	PresentModeMailbox
)

// String returns the lower-case name used for the present mode in configuration.
func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "fifo"
	case PresentModeUncapped:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	default:
		return fmt.Sprintf("PresentMode(%d)", int(m))
	}
}

// ParsePresentMode maps a configuration name onto a PresentMode. Matching is case-insensitive
// and "vsync" is accepted as an alias of "fifo".
//
// Parameters:
//   - name: the present mode name
//
// Returns:
//   - PresentMode: the matching present mode
//   - error: error if the name is unknown
func ParsePresentMode(name string) (PresentMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo", "vsync":
		return PresentModeVSync, nil
	case "immediate":
		return PresentModeUncapped, nil
	case "mailbox":
		return PresentModeMailbox, nil
	default:
		return PresentModeVSync, fmt.Errorf("unknown present mode %q", name)
	}
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
