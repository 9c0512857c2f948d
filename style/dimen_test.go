package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/tinystyle/cssom"
	"github.com/npillmayer/tinystyle/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestDimenBasic(t *testing.T) {
	ten := style.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := style.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(style.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := style.JustDimen(dimen.PT * 10)
	var du dimen.DU
	m := style.DimenPattern[int](ten)
	zehn := m.OneOf(style.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	e := style.DimenPattern[dimen.DU](ten)
	distance := e.OneOf(style.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 20*dimen.PT, distance)
	}
}

func TestDimenFromValue(t *testing.T) {
	for _, tc := range []struct {
		v    cssom.Value
		kind style.DimenT
	}{
		{cssom.Keyword("auto"), style.Auto()},
		{cssom.Keyword("inherit"), style.Inherit()},
		{cssom.Keyword("initial"), style.Initial()},
		{cssom.Keyword("bold"), style.Unset()},
		{cssom.RGB(1, 2, 3), style.Unset()},
		{nil, style.Unset()},
	} {
		d := style.Dimen(tc.v)
		if m := d.Match(); m.IsKind(tc.kind) == nil {
			t.Errorf("expected %v to convert to %#v, is %#v", tc.v, tc.kind, d)
		}
	}
	var du dimen.DU
	d := style.Dimen(cssom.Px(20))
	switch m := d.Match(); m {
	case m.Just(&du):
		assert.Equal(t, 15*dimen.PT, du)
	default:
		t.Errorf("expected 20px to be a fixed dimension, is %#v", d)
	}
}

func TestDimenOf(t *testing.T) {
	pmap := style.NewPropertyMap()
	pmap.Set("padding", cssom.Px(4))
	pmap.Set("margin-left", cssom.Keyword("auto"))
	assert.Equal(t, style.JustDimen(style.PxToDU(4)), pmap.DimenOf("padding-top", "padding"))
	assert.Equal(t, style.Auto(), pmap.DimenOf("margin-left", "margin"))
	assert.True(t, pmap.DimenOf("width", "").IsUnset())
}

func TestColors(t *testing.T) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pmap := style.NewPropertyMap()
	pmap.Set("color", cssom.RGB(0xcc, 0, 0))
	pmap.Set("border-color", cssom.Keyword("blue"))
	pmap.Set("outline-color", cssom.Px(2))
	assert.Equal(t, color.RGBA{R: 0xcc, A: 0xff}, pmap.ColorOf("background-color", "color", white))
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, pmap.ColorOf("border-color", "color", white))
	assert.Equal(t, white, pmap.ColorOf("outline-color", "", white))
	_, ok := style.RGBA(cssom.Keyword("not-a-color"))
	assert.False(t, ok)
}

func TestParseDisplay(t *testing.T) {
	for _, tc := range []struct {
		s    string
		disp style.Display
		ok   bool
	}{
		{"inline", style.DisplayInline, true},
		{"block", style.DisplayBlock, true},
		{"none", style.DisplayNone, true},
		{"grid", style.DisplayInline, false},
	} {
		disp, err := style.ParseDisplay(tc.s)
		if disp != tc.disp || (err == nil) != tc.ok {
			t.Errorf("expected ParseDisplay(%q) = %s/%v, is %s/%v", tc.s, tc.disp, tc.ok, disp, err)
		}
	}
	assert.True(t, style.DisplayBlock.IsBlockLevel())
	assert.False(t, style.DisplayNone.IsBlockLevel())
}

func TestPropertyMap(t *testing.T) {
	var null *style.PropertyMap
	null.Set("color", cssom.Keyword("red"))
	assert.Equal(t, 0, null.Size())
	assert.True(t, null.Equal(style.NewPropertyMap()))
	pmap := style.NewPropertyMap()
	pmap.Set("margin", cssom.Px(1))
	pmap.Set("color", cssom.Keyword("red"))
	pmap.Set("margin", cssom.Px(2))
	assert.Equal(t, "{ color: red; margin: 2px }", pmap.String())
	assert.Equal(t, []style.KeyValue{
		{Key: "color", Value: cssom.Keyword("red")},
		{Key: "margin", Value: cssom.Px(2)},
	}, pmap.Properties())
	assert.False(t, pmap.Equal(null))
}
