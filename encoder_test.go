package forme

import "testing"

func TestHexString(t *testing.T) {
	got := hexString(RGB(0xFF, 0x00, 0x80))
	want := "#ff0080"
	if got != want {
		t.Errorf("hexString = %q, want %q", got, want)
	}
}

func TestClipboardSequence(t *testing.T) {
	seq := clipboardSequence("hi")
	if seq[:5] != "\x1b]52" {
		t.Errorf("clipboardSequence should start with OSC 52, got %q", seq)
	}
	if seq[len(seq)-1] != '\x07' {
		t.Error("clipboardSequence should be BEL-terminated")
	}
}

func TestDowngradeNoOpWithTrueColorOrWithout256(t *testing.T) {
	caps := Capabilities{TrueColor: true, Color256: true}
	c := RGB(10, 20, 30)
	if got := caps.Downgrade(c); !got.Equal(c) {
		t.Errorf("true-color caps should not downgrade: got %+v", got)
	}

	noCaps := Capabilities{}
	if got := noCaps.Downgrade(c); !got.Equal(c) {
		t.Errorf("no 256 support should leave color untouched: got %+v", got)
	}
}

func TestDowngradeTo256(t *testing.T) {
	caps := Capabilities{Color256: true}
	c := RGB(255, 0, 0)
	got := caps.Downgrade(c)
	if got.Mode != Color256 {
		t.Errorf("expected Color256 mode, got %+v", got)
	}
}
