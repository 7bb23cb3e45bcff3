package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func()) bool
)

// RegisterDispatch sets the function used to post callbacks onto the UI
// thread. Hosts call it once during startup; nil unregisters.
func RegisterDispatch(fn func(callback func()) bool) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// RegisterLoop makes l the UI thread for Dispatch.
func RegisterLoop(l *Loop) {
	if l == nil {
		RegisterDispatch(nil)
		return
	}
	RegisterDispatch(l.Post)
}

// Dispatch posts a callback to run on the UI thread. It returns false if no
// dispatch function is registered, the callback is nil, or the UI thread
// refused the callback.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	return fn(callback)
}
