package decl_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuusoft-org/yahtml/internal/decl"
)

func TestParse_Head(t *testing.T) {
	t.Run("Bare Tag", func(t *testing.T) {
		el := decl.Parse("div")
		require.Equal(t, "div", el.Tag)
		require.Empty(t, el.ID)
		require.Empty(t, el.Classes)
		require.Empty(t, el.Attrs)
	})

	t.Run("Trailing Colon Stripped", func(t *testing.T) {
		el := decl.Parse("br:")
		require.Equal(t, "br", el.Tag)
	})

	t.Run("Id Shorthand", func(t *testing.T) {
		el := decl.Parse("div#main")
		require.Equal(t, "div", el.Tag)
		require.Equal(t, "main", el.ID)
	})

	t.Run("Last Id Shorthand Wins", func(t *testing.T) {
		el := decl.Parse("div#a#b")
		require.Equal(t, "b", el.ID)
	})

	t.Run("Classes Keep Order And Duplicates", func(t *testing.T) {
		el := decl.Parse("div.x.y.x")
		require.Equal(t, []string{"x", "y", "x"}, el.Classes)
	})

	t.Run("Id And Classes Mixed", func(t *testing.T) {
		el := decl.Parse("span.a#id.b")
		require.Equal(t, "span", el.Tag)
		require.Equal(t, "id", el.ID)
		require.Equal(t, []string{"a", "b"}, el.Classes)
	})

	t.Run("Tag With Digits And Hyphen", func(t *testing.T) {
		el := decl.Parse("h1")
		require.Equal(t, "h1", el.Tag)

		el = decl.Parse("my-widget.big")
		require.Equal(t, "my-widget", el.Tag)
		require.Equal(t, []string{"big"}, el.Classes)
	})

	t.Run("Missing Tag", func(t *testing.T) {
		require.Empty(t, decl.Parse("").Tag)
		require.Empty(t, decl.Parse("#only-id").Tag)
		require.Empty(t, decl.Parse(".only-class").Tag)
	})

	t.Run("Equals Before Shorthand Is Malformed", func(t *testing.T) {
		// The "head" is really an attribute, so there is no tag at all.
		require.Empty(t, decl.Parse(`href=x.html target=_blank`).Tag)
	})

	t.Run("Equals After Shorthand Is Fine", func(t *testing.T) {
		el := decl.Parse("div.a")
		require.Equal(t, "div", el.Tag)
	})
}

func TestParse_Attributes(t *testing.T) {
	t.Run("Boolean", func(t *testing.T) {
		el := decl.Parse("input disabled")
		require.Equal(t, "input", el.Tag)
		require.Equal(t, []decl.Attr{{Name: "disabled", Bool: true}}, el.Attrs)
	})

	t.Run("Double Quoted", func(t *testing.T) {
		el := decl.Parse(`div title="hello world"`)
		require.Equal(t, []decl.Attr{{Name: "title", Value: "hello world"}}, el.Attrs)
	})

	t.Run("Single Quoted", func(t *testing.T) {
		el := decl.Parse(`div title='a "b" c'`)
		require.Equal(t, []decl.Attr{{Name: "title", Value: `a "b" c`}}, el.Attrs)
	})

	t.Run("Unquoted", func(t *testing.T) {
		el := decl.Parse("a href=index.html target=_blank")
		require.Equal(t, []decl.Attr{
			{Name: "href", Value: "index.html"},
			{Name: "target", Value: "_blank"},
		}, el.Attrs)
	})

	t.Run("Unquoted Keeps Inner Colon", func(t *testing.T) {
		el := decl.Parse("a href=http://example.com/a:b x")
		require.Equal(t, []decl.Attr{
			{Name: "href", Value: "http://example.com/a:b"},
			{Name: "x", Bool: true},
		}, el.Attrs)
	})

	t.Run("Unquoted Drops Only Final Colon", func(t *testing.T) {
		el := decl.Parse("a href=http://example.com:")
		require.Equal(t, []decl.Attr{{Name: "href", Value: "http://example.com"}}, el.Attrs)
	})

	t.Run("Unterminated Quote Runs To End", func(t *testing.T) {
		el := decl.Parse(`div title="never closed`)
		require.Equal(t, []decl.Attr{{Name: "title", Value: "never closed"}}, el.Attrs)
	})

	t.Run("Empty Value", func(t *testing.T) {
		el := decl.Parse(`div data-x=""`)
		require.Equal(t, []decl.Attr{{Name: "data-x", Value: ""}}, el.Attrs)
	})

	t.Run("Malformed Tail Stops Early", func(t *testing.T) {
		el := decl.Parse("div good=1 $bad=2 unseen")
		require.Equal(t, "div", el.Tag)
		require.Equal(t, []decl.Attr{{Name: "good", Value: "1"}}, el.Attrs)
	})

	t.Run("Mixed Boolean And Valued", func(t *testing.T) {
		el := decl.Parse(`input.form#email type=email required placeholder="Your email"`)
		require.Equal(t, "input", el.Tag)
		require.Equal(t, "email", el.ID)
		require.Equal(t, []string{"form"}, el.Classes)
		require.Equal(t, []decl.Attr{
			{Name: "type", Value: "email"},
			{Name: "required", Bool: true},
			{Name: "placeholder", Value: "Your email"},
		}, el.Attrs)
	})

	t.Run("Id And Class As Attributes Stay In Parse Order", func(t *testing.T) {
		el := decl.Parse(`div#a id=b class="x y"`)
		require.Equal(t, "a", el.ID)
		require.Equal(t, []decl.Attr{
			{Name: "id", Value: "b"},
			{Name: "class", Value: "x y"},
		}, el.Attrs)
	})
}

func TestIsDoctype(t *testing.T) {
	require.True(t, decl.IsDoctype("!DOCTYPE"))
	require.True(t, decl.IsDoctype("!DOCTYPE html"))
	require.True(t, decl.IsDoctype(`"!DOCTYPE html"`))
	require.True(t, decl.IsDoctype("'!DOCTYPE html'"))
	require.False(t, decl.IsDoctype("doctype"))
	require.False(t, decl.IsDoctype("div"))
}

func TestNormalize(t *testing.T) {
	t.Run("Trailing Colon Is Childless", func(t *testing.T) {
		sp, ok := decl.Normalize("br:")
		require.True(t, ok)
		require.Equal(t, "br:", sp.Decl)
		require.False(t, sp.HasContent)
	})

	t.Run("Double Quoted Content", func(t *testing.T) {
		sp, ok := decl.Normalize(`h1: "Hello World"`)
		require.True(t, ok)
		require.Equal(t, "h1", sp.Decl)
		require.True(t, sp.HasContent)
		require.Equal(t, "Hello World", sp.Content)
	})

	t.Run("Single Quoted Content", func(t *testing.T) {
		sp, ok := decl.Normalize(`h1: 'Hello'`)
		require.True(t, ok)
		require.Equal(t, "h1", sp.Decl)
		require.Equal(t, "Hello", sp.Content)
	})

	t.Run("Earlier Quote Form Wins", func(t *testing.T) {
		sp, ok := decl.Normalize(`p: 'single: "double"'`)
		require.True(t, ok)
		require.Equal(t, "p", sp.Decl)
		require.Equal(t, `single: "double"`, sp.Content)
	})

	t.Run("Escaped Quotes Unescaped", func(t *testing.T) {
		sp, ok := decl.Normalize(`p: "He said \"hi\""`)
		require.True(t, ok)
		require.Equal(t, `He said "hi"`, sp.Content)

		sp, ok = decl.Normalize(`p: 'it\'s'`)
		require.True(t, ok)
		require.Equal(t, "it's", sp.Content)
	})

	t.Run("Empty Quotes Mean Empty Content", func(t *testing.T) {
		sp, ok := decl.Normalize(`p: ""`)
		require.True(t, ok)
		require.True(t, sp.HasContent)
		require.Empty(t, sp.Content)

		sp, ok = decl.Normalize(`p: ''`)
		require.True(t, ok)
		require.True(t, sp.HasContent)
		require.Empty(t, sp.Content)
	})

	t.Run("Unquoted Content", func(t *testing.T) {
		sp, ok := decl.Normalize("h1: Hello World")
		require.True(t, ok)
		require.Equal(t, "h1", sp.Decl)
		require.Equal(t, "Hello World", sp.Content)
	})

	t.Run("Url Clause Does Not Split", func(t *testing.T) {
		// The clause before ": " contains "//", so the unquoted split is
		// suppressed and the string is plain text.
		_, ok := decl.Normalize("a href=http://example.com: click")
		require.False(t, ok)
	})

	t.Run("Url Clause With Quoted Content Splits", func(t *testing.T) {
		sp, ok := decl.Normalize(`a href=http://example.com: "click"`)
		require.True(t, ok)
		require.Equal(t, "a href=http://example.com", sp.Decl)
		require.Equal(t, "click", sp.Content)
	})

	t.Run("Split Resumes After Url Clause", func(t *testing.T) {
		sp, ok := decl.Normalize("a href=//cdn data-x=1: text")
		require.True(t, ok)
		require.Equal(t, "a href=//cdn data-x=1", sp.Decl)
		require.Equal(t, "text", sp.Content)
	})

	t.Run("Plain Text", func(t *testing.T) {
		_, ok := decl.Normalize("just some words")
		require.False(t, ok)

		_, ok = decl.Normalize("no-separator")
		require.False(t, ok)
	})
}
