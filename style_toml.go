package mui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// styleFile is the on-disk form of Style. Every field is optional; missing
// ones keep the value of the style being overlaid.
type styleFile struct {
	Font          *int              `toml:"font,omitempty"`
	Width         *int              `toml:"width,omitempty"`
	Height        *int              `toml:"height,omitempty"`
	Padding       *int              `toml:"padding,omitempty"`
	Spacing       *int              `toml:"spacing,omitempty"`
	Indent        *int              `toml:"indent,omitempty"`
	TitleHeight   *int              `toml:"title_height,omitempty"`
	ScrollbarSize *int              `toml:"scrollbar_size,omitempty"`
	ThumbSize     *int              `toml:"thumb_size,omitempty"`
	Colors        map[string]string `toml:"colors,omitempty"`
}

// ParseStyle reads a TOML style description on top of DefaultStyle.
//
//	padding = 6
//	[colors]
//	window_bg = "#323232ff"
func ParseStyle(data []byte) (Style, error) {
	return OverlayStyle(DefaultStyle(), data)
}

// OverlayStyle applies a TOML style description on top of base.
func OverlayStyle(base Style, data []byte) (Style, error) {
	var f styleFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("failed to parse style: %w", err)
	}
	s := base
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	if f.Font != nil {
		s.Font = Font(*f.Font)
	}
	setInt(&s.Size.X, f.Width)
	setInt(&s.Size.Y, f.Height)
	setInt(&s.Padding, f.Padding)
	setInt(&s.Spacing, f.Spacing)
	setInt(&s.Indent, f.Indent)
	setInt(&s.TitleHeight, f.TitleHeight)
	setInt(&s.ScrollbarSize, f.ScrollbarSize)
	setInt(&s.ThumbSize, f.ThumbSize)
	for name, hex := range f.Colors {
		id, ok := ParseColorID(name)
		if !ok {
			return base, fmt.Errorf("failed to parse style: unknown color %q", name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return base, fmt.Errorf("failed to parse style color %s: %w", name, err)
		}
		s.Colors[id] = c
	}
	return s, nil
}

// LoadStyle reads a style file. A missing file yields DefaultStyle.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultStyle(), nil
		}
		return DefaultStyle(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := ParseStyle(data)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// MarshalTOML encodes every field of the style.
func (s Style) MarshalTOML() ([]byte, error) {
	font := int(s.Font)
	f := styleFile{
		Font:          &font,
		Width:         &s.Size.X,
		Height:        &s.Size.Y,
		Padding:       &s.Padding,
		Spacing:       &s.Spacing,
		Indent:        &s.Indent,
		TitleHeight:   &s.TitleHeight,
		ScrollbarSize: &s.ScrollbarSize,
		ThumbSize:     &s.ThumbSize,
		Colors:        make(map[string]string, ColorMax),
	}
	for i, c := range s.Colors {
		f.Colors[ColorID(i).String()] = c.Hex()
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode style: %w", err)
	}
	return data, nil
}

// SaveStyle writes the style to path.
func SaveStyle(path string, s Style) error {
	data, err := s.MarshalTOML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
