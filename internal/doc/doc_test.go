package doc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryIndex_LabelForReturnsFirstMatch(t *testing.T) {
	ci := &CategoryIndex{}
	ci.Add("Buttons", "base.html")
	ci.Add("Forms", "base.html")

	label, ok := ci.LabelFor("base.html")
	require.True(t, ok)
	require.Equal(t, "Buttons", label)

	_, ok = ci.LabelFor("missing.html")
	require.False(t, ok)
}

func TestCategoryIndex_AddIgnoresDuplicatePairs(t *testing.T) {
	ci := &CategoryIndex{}
	ci.Add("Buttons", "base.html")
	ci.Add("Buttons", "base.html")
	ci.Add("Buttons", "other.html")

	require.Len(t, ci.Entries, 2)

	file, ok := ci.FileFor("Buttons")
	require.True(t, ok)
	require.Equal(t, "base.html", file)
}

func TestPageMap_SortedFileNames(t *testing.T) {
	pm := PageMap{
		"zeta.html":  {Kind: MarkdownPage},
		"alpha.html": {Kind: MarkdownPage},
		"mid.html":   {Kind: TemplatePage},
	}
	require.Equal(t, []string{"alpha.html", "mid.html", "zeta.html"}, pm.SortedFileNames())
}
