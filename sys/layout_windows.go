//go:build windows

package sys

// Layout is the callback packing of the running platform.
var Layout = LayoutPack8
