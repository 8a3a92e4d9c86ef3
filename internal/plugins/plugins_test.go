package plugins

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"swatch/internal/doc"
)

type fakePlugin struct {
	name  string
	err   error
	calls int
	seen  map[string]any
}

func (f *fakePlugin) Name() string { return f.name }

func (f *fakePlugin) AfterParse(pages doc.PageMap, categories *doc.CategoryIndex, config map[string]any) error {
	f.calls++
	f.seen = config
	return f.err
}

func TestRun_InvokesNamedPluginsInOrder(t *testing.T) {
	p := &fakePlugin{name: "toc"}
	Register(p)
	t.Cleanup(func() { delete(registry, "toc") })

	cfg := map[string]any{"project_title": "Kit"}
	err := Run([]string{"toc"}, doc.PageMap{}, &doc.CategoryIndex{}, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, p.calls)
	require.Equal(t, "Kit", p.seen["project_title"])
}

func TestRun_UnregisteredPluginIsError(t *testing.T) {
	err := Run([]string{"ghost"}, doc.PageMap{}, &doc.CategoryIndex{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ghost")
}

func TestRun_UnregisteredPluginErrorListsKnownPlugins(t *testing.T) {
	Register(&fakePlugin{name: "anchors"})
	Register(&fakePlugin{name: "toc"})
	t.Cleanup(func() {
		delete(registry, "anchors")
		delete(registry, "toc")
	})

	err := Run([]string{"ghost"}, doc.PageMap{}, &doc.CategoryIndex{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "registered plugins: anchors, toc")
}

func TestRun_PluginErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	Register(&fakePlugin{name: "broken", err: boom})
	t.Cleanup(func() { delete(registry, "broken") })

	err := Run([]string{"broken"}, doc.PageMap{}, &doc.CategoryIndex{}, nil)
	require.ErrorIs(t, err, boom)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Register(&fakePlugin{name: "once"})
	t.Cleanup(func() { delete(registry, "once") })

	require.Panics(t, func() { Register(&fakePlugin{name: "once"}) })
}
