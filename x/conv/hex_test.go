package conv

import "testing"

func TestU8Hex(t *testing.T) {
	var buf [4]byte
	for n, want := range map[uint8]string{0x00: "0x00", 0x50: "0x50", 0x7f: "0x7f", 0xa5: "0xa5"} {
		if got := string(U8Hex(buf[:], n)); got != want {
			t.Fatalf("U8Hex(%d) = %q, want %q", n, got, want)
		}
	}
	if got := U8Hex(buf[:3], 1); len(got) != 0 {
		t.Fatalf("short buffer: %q", got)
	}
}

func TestAppendHex(t *testing.T) {
	got := string(AppendHex([]byte("eeprom: "), []byte{0x00, 0xff, 0x1c}))
	if got != "eeprom: 00 ff 1c" {
		t.Fatalf("got %q", got)
	}
	if got := AppendHex(nil, nil); len(got) != 0 {
		t.Fatalf("empty input: %q", got)
	}
}
