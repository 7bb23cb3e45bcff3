// Package graphics provides the geometry shared by hit testing and pointer
// translation: points as [Offset] and axis-aligned rectangles as [Rect].
package graphics
