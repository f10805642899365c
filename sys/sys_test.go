package sys

import (
	"runtime"
	"testing"
)

func TestGoString(t *testing.T) {
	buf := []byte("spacewar\x00garbage")
	if got := GoString(&buf[0]); got != "spacewar" {
		t.Errorf("expected %q, got %q", "spacewar", got)
	}
}

func TestGoStringNil(t *testing.T) {
	if got := GoString(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestGoStringEmpty(t *testing.T) {
	buf := []byte{0}
	if got := GoString(&buf[0]); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestLibraryName(t *testing.T) {
	if libraryName() == "" {
		t.Fatal("library name must not be empty")
	}
}

func TestLayoutMatchesPlatformPacking(t *testing.T) {
	want := LayoutPack4
	if runtime.GOOS == "windows" {
		want = LayoutPack8
	}
	if Layout != want {
		t.Fatalf("Layout = %+v, want %+v", Layout, want)
	}
}

func TestPack8MovesSteamIDPastPadding(t *testing.T) {
	if got := LayoutPack8.UserStatsReceivedUserOffset; got != 16 {
		t.Fatalf("pack(8) CSteamID offset = %d, want 16", got)
	}
	if got := LayoutPack4.UserStatsReceivedUserOffset; got != 12 {
		t.Fatalf("pack(4) CSteamID offset = %d, want 12", got)
	}
}
