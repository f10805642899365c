//go:build darwin || linux

package sys

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// libraryName is the shared object the Steam client ships next to the game.
func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libsteam_api.dylib"
	}
	return "libsteam_api.so"
}

func openLibrary() (uintptr, error) {
	name := libraryName()
	handle, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("sys: dlopen %s: %w", name, err)
	}
	return handle, nil
}
