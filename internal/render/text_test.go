package render

import (
	"strings"
	"testing"
)

func TestTextSinkDrawBitmap(t *testing.T) {
	var out strings.Builder
	sink := &TextSink{Out: &out}

	sink.DrawBitmap(0, 0, 1, 2, []byte{0xC0, 0x01})

	want := "-- 8x2 at (0,0) --\n" +
		"####............\n" +
		"..............##\n"
	if out.String() != want {
		t.Fatalf("unexpected render:\n%q\nwant:\n%q", out.String(), want)
	}
}
