package device

import "overture/render"

// Device is a full-screen terminal surface the engine buffer can be
// presented on.
type Device interface {
	SetContent(x, y int, ch render.Char)
	Show()
	// WaitKey blocks until a key is pressed or the device is stopped.
	WaitKey()
	Stop()
}
