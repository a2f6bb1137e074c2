package window

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// EventKind identifies the type of a window Event.
type EventKind int

const (
	// EventKey is a key press, repeat or release.
	EventKey EventKind = iota
	// EventResize is a framebuffer size change, in pixels.
	EventResize
	// EventClose is a close request from the window system.
	EventClose
)

// Event is a single window system event queued between polls.
type Event struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind EventKind
	// KeyCode is the key for EventKey, using the common.Key* values.
	KeyCode uint32
	// Pressed is true for a press or repeat and false for a release.
	Pressed bool
	// Width and Height are the new framebuffer size for EventResize.
	Width, Height int
}

// Window defines the platform window used by the frame loop.
// Events are not delivered through callbacks; they are queued by the platform layer
// and handed out in order by PollEvents.
type Window interface {
	// PollEvents pumps the platform event queue without blocking and returns every event
	// received since the previous call, in arrival order.
	//
	// Returns:
	//   - []Event: the pending events, possibly empty
	PollEvents() []Event

	// SurfaceDescriptor returns the wgpu surface descriptor for this window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is open and has not been asked to close.
	//
	// Returns:
	//   - bool: true while running
	IsRunning() bool

	// Close destroys the window and releases the platform library.
	//
	// Returns:
	//   - error: error if the window is not initialized
	Close() error

	// Size returns the window size in window coordinates, the space the cursor is reported in.
	//
	// Returns:
	//   - width, height: the window size
	Size() (width, height int)

	// FramebufferSize returns the drawable size in pixels.
	//
	// Returns:
	//   - width, height: the framebuffer size
	FramebufferSize() (width, height int)

	// CursorPosition returns the cursor position in window coordinates.
	//
	// Returns:
	//   - x, y: the cursor position
	CursorPosition() (x, y float64)

	// SetCursorPosition warps the cursor to a position in window coordinates.
	//
	// Parameters:
	//   - x, y: the new cursor position
	SetCursorPosition(x, y float64)
}

// engineWindow holds the platform independent window state.
type engineWindow struct {
	// title is the text shown in the title bar.
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the requested size at creation and the framebuffer size afterwards.
	width  int
	height int

	resizable    bool
	cursorLocked bool

	// events are queued by the platform callbacks and drained by PollEvents.
	events []Event

	// internalWindow is the platform window, nil until newPlatformWindow succeeds.
	internalWindow any
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a platform window.
// Must be called from the main goroutine; the calling OS thread is locked for the
// lifetime of the process.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:        "Cube",
		minWidth:     -1,
		minHeight:    -1,
		maxWidth:     -1,
		maxHeight:    -1,
		width:        800,
		height:       600,
		resizable:    true,
		cursorLocked: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) PollEvents() []Event {
	platformPollEvents(w)
	if len(w.events) == 0 {
		return nil
	}
	events := w.events
	w.events = nil
	return events
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Size() (width, height int) {
	return platformWindowSize(w)
}

func (w *engineWindow) FramebufferSize() (width, height int) {
	return w.width, w.height
}

func (w *engineWindow) CursorPosition() (x, y float64) {
	return platformCursorPosition(w)
}

func (w *engineWindow) SetCursorPosition(x, y float64) {
	platformSetCursorPosition(w, x, y)
}

// pushEvent queues an event for the next PollEvents call.
// A resize directly following a queued resize replaces it.
func (w *engineWindow) pushEvent(e Event) {
	if e.Kind == EventResize {
		w.width = e.Width
		w.height = e.Height
		if n := len(w.events); n > 0 && w.events[n-1].Kind == EventResize {
			w.events[n-1] = e
			return
		}
	}
	w.events = append(w.events, e)
}
