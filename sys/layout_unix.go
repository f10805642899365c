//go:build darwin || linux

package sys

// Layout is the callback packing of the running platform.
var Layout = LayoutPack4
