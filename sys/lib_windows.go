//go:build windows

package sys

import (
	"fmt"
	"runtime"
	"syscall"
)

func libraryName() string {
	if runtime.GOARCH == "amd64" {
		return "steam_api64.dll"
	}
	return "steam_api.dll"
}

func openLibrary() (uintptr, error) {
	name := libraryName()
	handle, err := syscall.LoadLibrary(name)
	if err != nil {
		return 0, fmt.Errorf("sys: LoadLibrary %s: %w", name, err)
	}
	return uintptr(handle), nil
}
