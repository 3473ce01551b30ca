//go:build js && wasm

package webgl

import (
	"syscall/js"
	"testing"
)

func TestObjectTable(t *testing.T) {
	d := NewFromContext(js.Global().Get("Object").New(), 2)

	if id := d.put(js.Null()); id != 0 {
		t.Errorf("put(null) = %d, want 0", id)
	}
	a := js.Global().Get("Object").New()
	b := js.Global().Get("Object").New()
	ida, idb := d.put(a), d.put(b)
	if ida == 0 || idb == 0 || ida == idb {
		t.Fatalf("put() ids = %d, %d, want distinct non-zero", ida, idb)
	}
	if !d.get(ida).Equal(a) {
		t.Error("get() did not return the stored object")
	}
	if !d.get(0).IsNull() {
		t.Error("get(0) should be null")
	}

	d.drop(ida)
	if !d.get(ida).IsNull() {
		t.Error("get() after drop should be null")
	}
	if !d.get(idb).Equal(b) {
		t.Error("drop() removed the wrong object")
	}
}

func TestBytesView(t *testing.T) {
	d := NewFromContext(js.Global().Get("Object").New(), 2)

	big := d.bytes(make([]byte, 64))
	if big.Length() != 64 {
		t.Fatalf("bytes() length = %d, want 64", big.Length())
	}
	small := d.bytes([]byte{1, 2, 3})
	if small.Length() != 3 {
		t.Errorf("bytes() length = %d, want 3", small.Length())
	}
	if small.Index(2).Int() != 3 {
		t.Errorf("bytes()[2] = %d, want 3", small.Index(2).Int())
	}
	if !d.bytes(nil).IsNull() {
		t.Error("bytes(nil) should be null")
	}
}

func TestParamVal(t *testing.T) {
	tests := []struct {
		in   js.Value
		want int
	}{
		{js.ValueOf(true), 1},
		{js.ValueOf(false), 0},
		{js.ValueOf(35713), 35713},
		{js.Null(), 0},
	}
	for _, tt := range tests {
		if got := paramVal(tt.in); got != tt.want {
			t.Errorf("paramVal(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
