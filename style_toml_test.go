package mui

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseStyleOverlaysDefaults(t *testing.T) {
	s, err := ParseStyle([]byte(`
padding = 8
title_height = 30

[colors]
window_bg = "#102030ff"
`))
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	def := DefaultStyle()
	if s.Padding != 8 || s.TitleHeight != 30 {
		t.Errorf("padding=%d title_height=%d", s.Padding, s.TitleHeight)
	}
	if s.Spacing != def.Spacing {
		t.Errorf("unset spacing changed to %d", s.Spacing)
	}
	if want := (Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}); s.Colors[ColorWindowBG] != want {
		t.Errorf("window_bg = %v, want %v", s.Colors[ColorWindowBG], want)
	}
	if s.Colors[ColorText] != def.Colors[ColorText] {
		t.Error("unset color changed")
	}
}

func TestParseStyleErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"syntax":        "padding = ",
		"unknown color": "[colors]\nsparkle = \"#ffffff\"",
		"bad hex":       "[colors]\ntext = \"#zz0000\"",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseStyle([]byte(doc)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestStyleRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	s := DefaultStyle()
	s.Indent = 17
	s.Colors[ColorButton] = Color{R: 1, G: 2, B: 3, A: 4}
	if err := SaveStyle(path, s); err != nil {
		t.Fatalf("SaveStyle: %v", err)
	}
	got, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if got != s {
		t.Fatalf("loaded style differs:\n got %+v\nwant %+v", got, s)
	}
}

func TestLoadStyleMissingFile(t *testing.T) {
	s, err := LoadStyle(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s != DefaultStyle() {
		t.Fatal("missing file did not yield the default style")
	}
}

func TestMarshalTOMLNamesColors(t *testing.T) {
	data, err := DefaultStyle().MarshalTOML()
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"scroll_thumb", "title_text", "padding"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("encoded style lacks %q", key)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ff8000", Color{R: 255, G: 128, B: 0, A: 255}, true},
		{"#ff800080", Color{R: 255, G: 128, B: 0, A: 128}, true},
		{"ff8000", Color{R: 255, G: 128, B: 0, A: 255}, true},
		{"#fff", Color{}, false},
		{"#gg0000", Color{}, false},
	} {
		got, err := ParseHexColor(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseHexColor(%q) err = %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorIDNames(t *testing.T) {
	for i := range ColorMax {
		id := ColorID(i)
		back, ok := ParseColorID(id.String())
		if !ok || back != id {
			t.Errorf("color %d: name %q parsed to %d, %v", i, id.String(), back, ok)
		}
	}
}
