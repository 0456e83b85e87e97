package forme

import "testing"

func TestLED(t *testing.T) {
	if LED(true) != "●" {
		t.Error("LED(true) should be ●")
	}
	if LED(false) != "○" {
		t.Error("LED(false) should be ○")
	}
}

func TestLEDs(t *testing.T) {
	got := LEDs(true, true, false, false)
	want := "●●○○"
	if got != want {
		t.Errorf("LEDs(true, true, false, false) = %q, want %q", got, want)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		filled, total int
		want          string
	}{
		{3, 5, "▮▮▮▯▯"},
		{0, 5, "▯▯▯▯▯"},
		{5, 5, "▮▮▮▮▮"},
		{10, 10, "▮▮▮▮▮▮▮▮▮▮"},
	}

	for _, tt := range tests {
		got := Bar(tt.filled, tt.total)
		if got != tt.want {
			t.Errorf("Bar(%d, %d) = %q, want %q", tt.filled, tt.total, got, tt.want)
		}
	}
}

func TestMeter(t *testing.T) {
	got := Meter(0, 100, 12)
	runes := []rune(got)
	if runes[0] != '├' || runes[len(runes)-1] != '┤' {
		t.Errorf("Meter should have ├ and ┤ ends, got %q", got)
	}

	got = Meter(50, 100, 12)
	runes = []rune(got)
	if runes[0] != '├' || runes[len(runes)-1] != '┤' {
		t.Errorf("Meter should have ├ and ┤ ends, got %q", got)
	}

	hasMarker := false
	for _, r := range got {
		if r == '●' {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		t.Errorf("Meter should contain ● marker, got %q", got)
	}
}

func TestDrawPanel(t *testing.T) {
	buf := NewBuffer(30, 10)
	style := DefaultStyle()

	region := buf.DrawPanel(0, 0, 20, 5, "TEST", style)

	if region.Width() != 18 || region.Height() != 3 {
		t.Errorf("Region size wrong: got %dx%d, want 18x3", region.Width(), region.Height())
	}
	if buf.Get(0, 0).Rune != '┌' {
		t.Errorf("Top-left should be ┌, got %c", buf.Get(0, 0).Rune)
	}
	if buf.Get(19, 0).Rune != '┐' {
		t.Errorf("Top-right should be ┐, got %c", buf.Get(19, 0).Rune)
	}
}

func TestDrawPanelEx(t *testing.T) {
	buf := NewBuffer(20, 8)
	style := DefaultStyle()

	region := buf.DrawPanelEx(0, 0, 20, 8, "LIST", BorderDouble, style)
	if region.Width() != 18 || region.Height() != 6 {
		t.Errorf("Region size wrong: got %dx%d, want 18x6", region.Width(), region.Height())
	}
	if buf.Get(0, 0).Rune != BorderDouble.TopLeft {
		t.Errorf("Top-left should be %c, got %c", BorderDouble.TopLeft, buf.Get(0, 0).Rune)
	}
}
