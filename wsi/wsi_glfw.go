// Copyright 2026 The Diorama Authors. All rights reserved.

package wsi

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfw requires that Init, Terminate, window creation and
// event dispatch all happen on the main thread. Callers are
// expected to lock it (runtime.LockOSThread from main's
// init or first line).

var initialized bool

// Init initializes window system integration. It fails when
// the system has no usable window system.
// Calling Init again after success has no effect.
func Init() error {
	if initialized {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("wsi: %w", err)
	}
	initialized = true
	return nil
}

// Terminate closes every window and releases the window
// system resources. No wsi call may follow, except Init.
func Terminate() {
	if !initialized {
		return
	}
	for _, win := range Windows() {
		win.Close()
	}
	glfw.Terminate()
	initialized = false
}

// Dispatch dispatches queued events, invoking the installed
// handlers for each.
func Dispatch() {
	if !initialized {
		return
	}
	glfw.PollEvents()
}

// SwapInterval sets the number of vertical retraces the
// current context waits for per Present call. 0 disables
// vertical synchronization; 1 is the common synchronized
// setting. A context must be current on the calling thread.
func SwapInterval(interval int) {
	if !initialized {
		return
	}
	glfw.SwapInterval(interval)
}

// window implements Window over a glfw window with an
// OpenGL 4.1 core context.
type window struct {
	win    *glfw.Window
	width  int
	height int
	title  string
}

func newWindow(width, height int, title string) (Window, error) {
	if width < 1 || height < 1 {
		return nil, errors.New("wsi: invalid window size")
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("wsi: %w", err)
	}
	win := &window{
		win:    w,
		width:  width,
		height: height,
		title:  title,
	}
	win.installCallbacks()
	return win, nil
}

func (w *window) installCallbacks() {
	w.win.SetCloseCallback(func(*glfw.Window) {
		if windowHandler != nil {
			windowHandler.WindowClose(w)
		}
	})
	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if windowHandler != nil {
			windowHandler.WindowResize(w, width, height)
		}
	})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if keyboardHandler == nil {
			return
		}
		if focused {
			keyboardHandler.KeyboardIn(w)
		} else {
			keyboardHandler.KeyboardOut(w)
		}
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if keyboardHandler == nil || action == glfw.Repeat {
			return
		}
		keyboardHandler.KeyboardKey(keyFrom(key), action == glfw.Press, modifierFrom(mods))
	})
	w.win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if pointerHandler == nil {
			return
		}
		if entered {
			x, y := w.win.GetCursorPos()
			pointerHandler.PointerIn(w, int(x), int(y))
		} else {
			pointerHandler.PointerOut(w)
		}
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if pointerHandler != nil {
			pointerHandler.PointerMotion(int(x), int(y))
		}
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if pointerHandler == nil {
			return
		}
		x, y := w.win.GetCursorPos()
		pointerHandler.PointerButton(buttonFrom(btn), action == glfw.Press, int(x), int(y))
	})
}

func (w *window) Map() error {
	w.win.Show()
	return nil
}

func (w *window) Unmap() error {
	w.win.Hide()
	return nil
}

func (w *window) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return errors.New("wsi: invalid window size")
	}
	w.win.SetSize(width, height)
	w.width = width
	w.height = height
	return nil
}

func (w *window) SetTitle(title string) error {
	w.win.SetTitle(title)
	w.title = title
	return nil
}

func (w *window) MakeCurrent() { w.win.MakeContextCurrent() }

func (w *window) Present() { w.win.SwapBuffers() }

func (w *window) DrawableSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

func (w *window) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	closeWindow(w)
}

func (w *window) Width() int    { return w.width }
func (w *window) Height() int   { return w.height }
func (w *window) Title() string { return w.title }

func modifierFrom(mods glfw.ModifierKey) Modifier {
	var m Modifier
	if mods&glfw.ModShift != 0 {
		m |= ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= ModAlt
	}
	if mods&glfw.ModCapsLock != 0 {
		m |= ModCapsLock
	}
	return m
}

func buttonFrom(btn glfw.MouseButton) Button {
	switch btn {
	case glfw.MouseButtonLeft:
		return BtnLeft
	case glfw.MouseButtonRight:
		return BtnRight
	case glfw.MouseButtonMiddle:
		return BtnMiddle
	case glfw.MouseButton4:
		return BtnSide
	case glfw.MouseButton5:
		return BtnForward
	case glfw.MouseButton6:
		return BtnBackward
	}
	return BtnUnknown
}
