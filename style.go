package mui

// ColorID names a slot of the style color table.
type ColorID int

const (
	ColorText ColorID = iota
	ColorBorder
	ColorWindowBG
	ColorTitleBG
	ColorTitleText
	ColorPanelBG
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorMax
)

var colorNames = [ColorMax]string{
	ColorText:        "text",
	ColorBorder:      "border",
	ColorWindowBG:    "window_bg",
	ColorTitleBG:     "title_bg",
	ColorTitleText:   "title_text",
	ColorPanelBG:     "panel_bg",
	ColorButton:      "button",
	ColorButtonHover: "button_hover",
	ColorButtonFocus: "button_focus",
	ColorBase:        "base",
	ColorBaseHover:   "base_hover",
	ColorBaseFocus:   "base_focus",
	ColorScrollBase:  "scroll_base",
	ColorScrollThumb: "scroll_thumb",
}

func (c ColorID) String() string {
	if c < 0 || c >= ColorMax {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColorID looks up a color slot by its String name.
func ParseColorID(name string) (ColorID, bool) {
	for i, n := range colorNames {
		if n == name {
			return ColorID(i), true
		}
	}
	return 0, false
}

// hovered maps a control color to its hover variant.
func (c ColorID) hovered() ColorID {
	switch c {
	case ColorBase:
		return ColorBaseHover
	case ColorButton:
		return ColorButtonHover
	}
	return c
}

// focused maps a control color to its focus variant.
func (c ColorID) focused() ColorID {
	switch c {
	case ColorBase, ColorBaseHover:
		return ColorBaseFocus
	case ColorButton, ColorButtonHover:
		return ColorButtonFocus
	}
	return c
}

// Style defines the visual appearance of widgets. It is read throughout a
// frame and should only be replaced between frames.
type Style struct {
	Font          Font
	Size          Vec2 // Default widget size, before padding
	Padding       int
	Spacing       int
	Indent        int
	TitleHeight   int
	ScrollbarSize int
	ThumbSize     int
	Colors        [ColorMax]Color
}

// DefaultStyle returns the built-in dark theme.
func DefaultStyle() Style {
	return Style{
		Size:          Vec2{X: 68, Y: 10},
		Padding:       5,
		Spacing:       4,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		Colors: [ColorMax]Color{
			ColorText:        {230, 230, 230, 255},
			ColorBorder:      {25, 25, 25, 255},
			ColorWindowBG:    {50, 50, 50, 255},
			ColorTitleBG:     {25, 25, 25, 255},
			ColorTitleText:   {240, 240, 240, 255},
			ColorPanelBG:     {0, 0, 0, 0},
			ColorButton:      {75, 75, 75, 255},
			ColorButtonHover: {95, 95, 95, 255},
			ColorButtonFocus: {115, 115, 115, 255},
			ColorBase:        {30, 30, 30, 255},
			ColorBaseHover:   {35, 35, 35, 255},
			ColorBaseFocus:   {40, 40, 40, 255},
			ColorScrollBase:  {43, 43, 43, 255},
			ColorScrollThumb: {30, 30, 30, 255},
		},
	}
}

// Style returns the active style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the active style. Call it between frames.
func (ctx *Context) SetStyle(s Style) {
	ctx.style = s
}

// StyleRef gives widgets such as a style editor direct access to the
// active style.
func (ctx *Context) StyleRef() *Style {
	return &ctx.style
}
