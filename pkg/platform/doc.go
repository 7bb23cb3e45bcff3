// Package platform holds the host-side glue for the tooltip core: the UI
// thread dispatch registry, a serial [Loop] that can act as that thread, and
// the Gio pointer adapter [GioPointer].
package platform
