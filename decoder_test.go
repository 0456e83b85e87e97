package forme

import "testing"

func feed(d *Decoder, s string) {
	d.ring.Write([]byte(s))
}

func TestDecodePlainChar(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "a")
	ev, ok := d.Decode()
	if !ok || ev.Kind != EventChar || ev.Ch != 'a' {
		t.Fatalf("got %+v, ok=%v", ev, ok)
	}
}

func TestDecodeEnterTabBackspace(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\r\t\x7f")
	for _, want := range []Key{KeyEnter, KeyTab, KeyBackspace} {
		ev, ok := d.Decode()
		if !ok || ev.Kind != EventKey || ev.Key != want {
			t.Fatalf("want %v got %+v ok=%v", want, ev, ok)
		}
	}
}

func TestDecodeCtrlLetter(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x01")
	ev, ok := d.Decode()
	if !ok || ev.Kind != EventChar || ev.Ch != 'a' || !ev.Ctrl {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}

func TestDecodeArrowNoModifier(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1b[A")
	ev, ok := d.Decode()
	if !ok || ev.Kind != EventKey || ev.Key != KeyUp || ev.Ctrl || ev.Shift || ev.Alt {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}

func TestDecodeArrowWithModifier(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1b[1;5A")
	ev, ok := d.Decode()
	if !ok || ev.Kind != EventKey || ev.Key != KeyUp || !ev.Ctrl || ev.Shift || ev.Alt {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}

func TestDecodeMouseClickAndRelease(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1b[<0;5;3M\x1b[<0;5;3m")

	ev, ok := d.Decode()
	if !ok || ev.Kind != EventMouse || ev.MouseButton != MouseLeft || ev.MouseX != 4 || ev.MouseY != 2 {
		t.Fatalf("press: got %+v ok=%v", ev, ok)
	}
	ev, ok = d.Decode()
	if !ok || ev.Kind != EventMouse || ev.MouseButton != MouseRelease || ev.MouseX != 4 || ev.MouseY != 2 {
		t.Fatalf("release: got %+v ok=%v", ev, ok)
	}
}

func TestDecodeFocusAndPasteMarkers(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1b[I\x1b[O\x1b[200~\x1b[201~")
	kinds := []EventKind{EventFocusIn, EventFocusOut, EventPasteStart, EventPasteEnd}
	for _, want := range kinds {
		ev, ok := d.Decode()
		if !ok || ev.Kind != want {
			t.Fatalf("want %v got %+v ok=%v", want, ev, ok)
		}
	}
}

func TestDecodeIncompleteSequenceWaitsForMoreBytes(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1b[1;5")
	if _, ok := d.Decode(); ok {
		t.Fatal("expected incomplete CSI to return ok=false")
	}
	feed(d, "A")
	ev, ok := d.Decode()
	if !ok || ev.Key != KeyUp || !ev.Ctrl {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}

func TestResolvePendingEscapeOnlyWhenAlone(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1b")
	if _, ok := d.Decode(); ok {
		t.Fatal("lone ESC with no follow-up byte should not decode yet")
	}
	ev, ok := d.ResolvePendingEscape()
	if !ok || ev.Kind != EventKey || ev.Key != KeyEsc {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}

func TestDecodeUTF8Multibyte(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\xe2\x82\xac") // euro sign
	ev, ok := d.Decode()
	if !ok || ev.Kind != EventChar || ev.Ch != '€' {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}

func TestDecodeFnKeyViaTilde(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1b[5~\x1b[3~")
	ev, ok := d.Decode()
	if !ok || ev.Key != KeyPageUp {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
	ev, ok = d.Decode()
	if !ok || ev.Key != KeyDelete {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}

func TestDecodeSS3(t *testing.T) {
	d := NewDecoder(NewInputRing(64))
	feed(d, "\x1bOP")
	ev, ok := d.Decode()
	if !ok || ev.Key != KeyF1 {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
}
