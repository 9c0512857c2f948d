package style_test

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinystyle/css"
	"github.com/npillmayer/tinystyle/cssom"
	"github.com/npillmayer/tinystyle/dom"
	"github.com/npillmayer/tinystyle/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *cssom.StyleSheet {
	t.Helper()
	sheet, err := css.Parse(src)
	require.NoError(t, err, src)
	return sheet
}

func elem(tag, id, class string) dom.Element {
	return dom.NewElement(tag, map[string]string{"id": id, "class": class})
}

func TestMatches(t *testing.T) {
	e := elem("div", "main", "note wide")
	for _, tc := range []struct {
		sel   cssom.SimpleSelector
		match bool
	}{
		{cssom.SimpleSelector{}, true},
		{cssom.SimpleSelector{TagName: "*"}, true},
		{cssom.SimpleSelector{TagName: "div"}, true},
		{cssom.SimpleSelector{TagName: "p"}, false},
		{cssom.SimpleSelector{ID: "main"}, true},
		{cssom.SimpleSelector{ID: "other"}, false},
		{cssom.SimpleSelector{Classes: []string{"note", "wide"}}, true},
		{cssom.SimpleSelector{Classes: []string{"note", "narrow"}}, false},
		{cssom.SimpleSelector{TagName: "div", ID: "main", Classes: []string{"wide"}}, true},
	} {
		if m := style.Matches(tc.sel, e); m != tc.match {
			t.Errorf("expected %s to match %v, is %v", tc.sel, tc.match, m)
		}
	}
}

func TestClassBeatsTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinystyle.style")
	defer teardown()
	//
	sheet := mustParse(t, "p { color: red; } .x { color: blue; }")
	pmap := style.Resolve(elem("p", "", "x"), sheet)
	assert.Equal(t, cssom.Keyword("blue"), pmap.Lookup("color", "", nil))
	// source order must not matter
	sheet = mustParse(t, ".x { color: blue; } p { color: red; }")
	pmap = style.Resolve(elem("p", "", "x"), sheet)
	assert.Equal(t, cssom.Keyword("blue"), pmap.Lookup("color", "", nil))
}

func TestIDBeatsClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinystyle.style")
	defer teardown()
	//
	for _, src := range []string{
		".x { color: blue; } #y { color: green; }",
		"#y { color: green; } .x { color: blue; }",
	} {
		pmap := style.Resolve(elem("p", "y", "x"), mustParse(t, src))
		assert.Equal(t, cssom.Keyword("green"), pmap.Lookup("color", "", nil), src)
	}
}

func TestLaterSourceOrderWinsForEqualSpecificity(t *testing.T) {
	sheet := mustParse(t, "p { color: red; margin: 1px; } p { color: blue; }")
	pmap := style.Resolve(elem("p", "", ""), sheet)
	assert.Equal(t, cssom.Keyword("blue"), pmap.Lookup("color", "", nil))
	assert.Equal(t, cssom.Px(1), pmap.Lookup("margin", "", nil))
	assert.Equal(t, 2, pmap.Size())
}

func TestRulePriorityIsMaxOfMatchingSelectors(t *testing.T) {
	// rule 1 matches via #y (1,0,0) although its first selector is only a tag
	sheet := mustParse(t, "p, #y { color: green; } p.x { color: blue; }")
	pmap := style.Resolve(elem("p", "y", "x"), sheet)
	assert.Equal(t, cssom.Keyword("green"), pmap.Lookup("color", "", nil))
	// a non-matching, highly specific selector must not raise priority
	sheet = mustParse(t, "p, #zzz { color: green; } p.x { color: blue; }")
	pmap = style.Resolve(elem("p", "y", "x"), sheet)
	assert.Equal(t, cssom.Keyword("blue"), pmap.Lookup("color", "", nil))
}

func TestMatchingRulesOrder(t *testing.T) {
	sheet := mustParse(t, "#y {} p {} .x {} * {} p.x {} div {}")
	matched := style.MatchingRules(elem("p", "y", "x"), sheet)
	var order []int
	for _, m := range matched {
		order = append(order, m.Order)
	}
	assert.Equal(t, []int{3, 1, 2, 4, 0}, order)
}

func TestNoInheritanceOrUnrelatedRules(t *testing.T) {
	sheet := mustParse(t, "div { color: red; } span.y { width: 2px; }")
	pmap := style.Resolve(elem("span", "", "x"), sheet)
	assert.Equal(t, 0, pmap.Size())
	assert.True(t, pmap.Value("color").IsNothing())
}

func TestResolveIsIdempotent(t *testing.T) {
	sheet := mustParse(t, "h1, h2, h3 { margin: auto; color: #cc0000; } div.note { margin-bottom: 20px; padding: 10px; } #answer { display: none; }")
	e := elem("div", "answer", "note")
	first := style.Resolve(e, sheet)
	second := style.Resolve(e, sheet)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 3, first.Size())
}

func TestConcurrentResolution(t *testing.T) {
	sheet := mustParse(t, "p { color: red; } .x { color: blue; } #y { color: green; }")
	elems := []dom.Element{elem("p", "", ""), elem("p", "", "x"), elem("p", "y", "x")}
	expected := []cssom.Value{cssom.Keyword("red"), cssom.Keyword("blue"), cssom.Keyword("green")}
	var wg sync.WaitGroup
	results := make([]*style.PropertyMap, 30)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = style.Resolve(elems[i%3], sheet)
		}(i)
	}
	wg.Wait()
	for i, pmap := range results {
		v, _ := pmap.Get("color")
		assert.Equal(t, expected[i%3], v)
	}
}

func TestResolveAllSpansSheets(t *testing.T) {
	ua := mustParse(t, "p { display: block; color: black; }")
	author := mustParse(t, "p { color: navy; }")
	pmap := style.ResolveAll(elem("p", "", ""), ua, author)
	assert.Equal(t, cssom.Keyword("navy"), pmap.Lookup("color", "", nil))
	assert.Equal(t, style.DisplayBlock, style.DisplayOf(pmap))
}

func TestLookup(t *testing.T) {
	def := cssom.RGB(255, 255, 255)
	pmap := style.Resolve(elem("p", "", ""), mustParse(t, "p { color: #cc0000; }"))
	assert.Equal(t, cssom.RGB(204, 0, 0), pmap.Lookup("background-color", "color", def))
	empty := style.Resolve(elem("p", "", ""), mustParse(t, "div { color: #cc0000; }"))
	assert.Equal(t, def, empty.Lookup("background-color", "color", def))
	var null *style.PropertyMap
	assert.Equal(t, def, null.Lookup("background-color", "color", def))
}

func TestDisplayOf(t *testing.T) {
	sheet := mustParse(t, "#answer { display: none; } div { display: block; } span { display: 3px; } em { display: flex; }")
	assert.Equal(t, style.DisplayNone, style.DisplayOf(style.Resolve(elem("p", "answer", ""), sheet)))
	assert.Equal(t, style.DisplayBlock, style.DisplayOf(style.Resolve(elem("div", "", ""), sheet)))
	assert.Equal(t, style.DisplayInline, style.DisplayOf(style.Resolve(elem("span", "", ""), sheet)))
	assert.Equal(t, style.DisplayInline, style.DisplayOf(style.Resolve(elem("em", "", ""), sheet)))
	assert.Equal(t, style.DisplayInline, style.DisplayOf(style.Resolve(elem("b", "", ""), sheet)))
	assert.Equal(t, "none", style.DisplayNone.String())
}
