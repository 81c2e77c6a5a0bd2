package ffi

import (
	"errors"
	"testing"
	"unsafe"
)

func TestCString(t *testing.T) {
	b, err := CString("hello")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 6 || b[5] != 0 {
		t.Errorf("CString = %v, want null-terminated", b)
	}
	if string(b[:5]) != "hello" {
		t.Errorf("payload = %q", b[:5])
	}
}

func TestCStringEmpty(t *testing.T) {
	b, err := CString("")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 1 || b[0] != 0 {
		t.Errorf("CString(\"\") = %v, want single NUL", b)
	}
}

func TestCStringRejectsEmbeddedNul(t *testing.T) {
	if _, err := CString("ab\x00cd"); !errors.Is(err, ErrEmbeddedNul) {
		t.Fatalf("err = %v, want ErrEmbeddedNul", err)
	}
}

func TestGoString(t *testing.T) {
	buf := []byte("blurwindow\x00trailing")
	got := GoString(uintptr(unsafe.Pointer(&buf[0])))
	if got != "blurwindow" {
		t.Errorf("GoString = %q, want %q", got, "blurwindow")
	}
}

func TestGoStringNull(t *testing.T) {
	if got := GoString(0); got != "" {
		t.Errorf("GoString(0) = %q, want empty", got)
	}
}

func TestGoStringEmpty(t *testing.T) {
	buf := []byte{0}
	if got := GoString(uintptr(unsafe.Pointer(&buf[0]))); got != "" {
		t.Errorf("GoString = %q, want empty", got)
	}
}

func TestCStringGoStringRoundTrip(t *testing.T) {
	const s = `{"version":1,"pipeline":[{"type":"gaussian"}]}`
	b, err := CString(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := GoString(uintptr(unsafe.Pointer(&b[0]))); got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}

func TestLibraryPathEnvOverride(t *testing.T) {
	t.Setenv("BLURWINDOW_LIB_PATH", "/opt/blur/libblurwindow.so")
	if got := getLibraryPath(); got != "/opt/blur/libblurwindow.so" {
		t.Errorf("getLibraryPath = %q, want env override", got)
	}
}
