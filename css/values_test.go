package css

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseVal(t *testing.T) {
	tests := []struct {
		in   string
		want Val
	}{
		{"auto", Auto},
		{" AUTO ", Auto},
		{"10px", Px(10)},
		{"10", Px(10)},
		{"-2.5px", Px(-2.5)},
		{".5", Px(0.5)},
		{"50%", Percent(50)},
		{"100vw", Vw(100)},
		{"100vh", Vh(100)},
		{"20vmin", VMin(20)},
		{"30vmax", VMax(30)},
		{"1e2px", Px(100)},
		{"5.", Px(5)},
		{"5.px", Px(5)},
		{"10 px", Px(10)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVal(tt.in)
			if err != nil {
				t.Fatalf("ParseVal(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVal(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVal_Errors(t *testing.T) {
	tests := []struct {
		in   string
		kind ErrorKind
		unit string
	}{
		{"", ErrEmpty, ""},
		{"   ", ErrEmpty, ""},
		{"10em", ErrUnsupportedUnit, "em"},
		{"2rem", ErrUnsupportedUnit, "rem"},
		{"abc", ErrInvalidNumber, ""},
		{"px", ErrInvalidNumber, ""},
		{"xpx", ErrInvalidNumber, ""},
		{"10px5", ErrInvalidNumber, ""},
		{"10 em", ErrUnsupportedUnit, "em"},
		{"1.5Q", ErrUnsupportedUnit, "Q"},
		{"10pct%", ErrInvalidNumber, ""},
		{"1..", ErrInvalidNumber, ""},
		{".", ErrInvalidNumber, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseVal(tt.in)
			var ve *ValueError
			if !errors.As(err, &ve) {
				t.Fatalf("ParseVal(%q) error = %v, want *ValueError", tt.in, err)
			}
			if ve.Kind != tt.kind {
				t.Errorf("ParseVal(%q) kind = %v, want %v", tt.in, ve.Kind, tt.kind)
			}
			if ve.Unit != tt.unit {
				t.Errorf("ParseVal(%q) unit = %q, want %q", tt.in, ve.Unit, tt.unit)
			}
		})
	}
}

func TestParseRect(t *testing.T) {
	a, b, c, d := Px(1), Px(2), Px(3), Px(4)
	tests := []struct {
		in   string
		want Rect
	}{
		{"1px", RectAll(a)},
		{"1px 2px", Rect{Left: b, Right: b, Top: a, Bottom: a}},
		{"1px 2px 3px", Rect{Left: b, Right: b, Top: a, Bottom: c}},
		{"1px 2px 3px 4px", Rect{Left: d, Right: b, Top: a, Bottom: c}},
	}
	for _, tt := range tests {
		got, err := ParseRect(tt.in)
		if err != nil {
			t.Fatalf("ParseRect(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRect(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	_, err := ParseRect("1px 2px 3px 4px 5px")
	var ve *ValueError
	if !errors.As(err, &ve) || ve.Kind != ErrWrongArity || ve.Found != 5 {
		t.Errorf("ParseRect with 5 values error = %v, want wrong arity", err)
	}
}

func TestParseCorners(t *testing.T) {
	a, b, c, d := Px(1), Px(2), Px(3), Px(4)
	tests := []struct {
		in   string
		want Corners
	}{
		{"1px", CornersAll(a)},
		{"1px 2px", Corners{TopLeft: a, TopRight: b, BottomRight: a, BottomLeft: b}},
		{"1px 2px 3px", Corners{TopLeft: a, TopRight: b, BottomRight: c, BottomLeft: b}},
		{"1px 2px 3px 4px", Corners{TopLeft: a, TopRight: b, BottomRight: c, BottomLeft: d}},
		{"1px / 9px", CornersAll(a)},
	}
	for _, tt := range tests {
		got, err := ParseCorners(tt.in)
		if err != nil {
			t.Fatalf("ParseCorners(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCorners(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseGap(t *testing.T) {
	row, col, err := ParseGap("4px")
	if err != nil || row != Px(4) || col != Px(4) {
		t.Errorf("ParseGap(4px) = %v %v %v", row, col, err)
	}
	row, col, err = ParseGap("4px 10%")
	if err != nil || row != Px(4) || col != Percent(10) {
		t.Errorf("ParseGap(4px 10%%) = %v %v %v", row, col, err)
	}
	if _, _, err = ParseGap("1px 2px 3px"); err == nil {
		t.Error("ParseGap with 3 values should fail")
	}
}

func TestParseBorderWidth(t *testing.T) {
	tests := []struct {
		in      string
		width   Val
		extras  bool
		wantErr bool
	}{
		{"2px", Px(2), false, false},
		{"2px solid red", Px(2), true, false},
		{"solid 3px", Px(3), true, false},
		{"solid red", Val{}, false, true},
		{"2em solid", Val{}, false, true},
	}
	for _, tt := range tests {
		width, extras, err := parseBorderWidth(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseBorderWidth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil {
			continue
		}
		if width != tt.width || extras != tt.extras {
			t.Errorf("parseBorderWidth(%q) = %v, %v; want %v, %v", tt.in, width, extras, tt.width, tt.extras)
		}
	}

	_, _, err := parseBorderWidth("2em solid")
	var ve *ValueError
	if !errors.As(err, &ve) || ve.Kind != ErrUnsupportedUnit {
		t.Errorf("parseBorderWidth(2em solid) error = %v, want unsupported unit", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"transparent", Transparent},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#f008", color.NRGBA{0xff, 0x00, 0x00, 0x88}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}},
		{"Red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"grey", color.NRGBA{0x80, 0x80, 0x80, 0xff}},
		{"gray", color.NRGBA{0x80, 0x80, 0x80, 0xff}},
		{"aqua", color.NRGBA{0x00, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"#ff", "#ggg", "#1234567", "orange", "rgb(1,2,3)"} {
		_, err := ParseColor(in)
		var ve *ValueError
		if !errors.As(err, &ve) || ve.Kind != ErrInvalidColor {
			t.Errorf("ParseColor(%q) error = %v, want invalid color", in, err)
		}
	}
}

func TestKeywords(t *testing.T) {
	displays := map[string]Display{
		"flex": DisplayFlex, "inline-flex": DisplayFlex, "GRID": DisplayGrid,
		"inline-grid": DisplayGrid, "block": DisplayBlock, "none": DisplayNone,
	}
	for in, want := range displays {
		if got, err := ParseDisplay(in); err != nil || got != want {
			t.Errorf("ParseDisplay(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDisplay("inline"); err == nil {
		t.Error("ParseDisplay(inline) should fail")
	}

	for _, in := range []string{"default", "normal", "auto"} {
		if got, err := ParseAlignItems(in); err != nil || got != AlignItemsDefault {
			t.Errorf("ParseAlignItems(%q) = %v, %v", in, got, err)
		}
		if got, err := ParseJustifyContent(in); err != nil || got != JustifyContentDefault {
			t.Errorf("ParseJustifyContent(%q) = %v, %v", in, got, err)
		}
	}
	if got, err := ParseAlignItems("Baseline"); err != nil || got != AlignItemsBaseline {
		t.Errorf("ParseAlignItems(Baseline) = %v, %v", got, err)
	}
	if _, err := ParseJustifyContent("baseline"); err == nil {
		t.Error("ParseJustifyContent(baseline) should fail")
	}
	if got, err := ParseJustifyContent("space-evenly"); err != nil || got != JustifyContentSpaceEvenly {
		t.Errorf("ParseJustifyContent(space-evenly) = %v, %v", got, err)
	}
	if _, err := ParseAlignItems("space-between"); err == nil {
		t.Error("ParseAlignItems(space-between) should fail")
	}
}
