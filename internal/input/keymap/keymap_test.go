package keymap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/shortcut"
)

const tomlKeymap = `
name = "editor"

[[bindings]]
keys = "Ctrl+S"
action = "file.save"
description = "Save"
category = "File"

[[bindings]]
keys = "shift+ctrl+z"
action = "edit.redo"

[[bindings]]
keys = "ctrl+q"
action = "app.quit"
default = true
`

const yamlKeymap = `
name: editor
bindings:
  - keys: Ctrl+S
    action: file.save
    description: Save
    category: File
  - keys: shift+ctrl+z
    action: edit.redo
  - keys: ctrl+q
    action: app.quit
    default: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "keys.toml", tomlKeymap},
		{"yaml", "keys.yaml", yamlKeymap},
		{"yml", "keys.yml", yamlKeymap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			km, err := LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, "editor", km.Name)
			assert.Equal(t, path, km.Source)
			require.Len(t, km.Bindings, 3)
			assert.Equal(t, Binding{
				Keys:        "Ctrl+S",
				Action:      "file.save",
				Description: "Save",
				Category:    "File",
			}, km.Bindings[0])
			assert.True(t, km.Bindings[2].Default)
			assert.NoError(t, km.Validate())
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("keys.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "bad.toml", "name = [")
	_, err = LoadFile(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}

func TestLoadReader_NameFallback(t *testing.T) {
	km, err := LoadReader(strings.NewReader("bindings: []\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "<reader>", km.Name)
	assert.Empty(t, km.Bindings)
}

func TestEncodeRoundTrip(t *testing.T) {
	km := NewKeymap("mine").
		AddBinding(NewBinding("ctrl+s", "file.save").WithDescription("Save")).
		AddBinding(NewBinding("f1", "help.show").AsDefault())

	for _, ext := range []string{".toml", ".yaml"} {
		path := filepath.Join(t.TempDir(), "keys"+ext)
		require.NoError(t, km.SaveFile(path))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, km.Name, got.Name)
		assert.Equal(t, km.Bindings, got.Bindings, ext)
	}
}

func TestValidate(t *testing.T) {
	km := NewKeymap("bad").
		Add("ctrl+s", "file.save").
		Add("ctrl+alt", "nothing").
		Add("a+b", "two.keys").
		Add("", "empty").
		Add("f2", "")

	err := km.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "binding 1 (ctrl+alt)")
	assert.Contains(t, msg, "binding 2 (a+b)")
	assert.Contains(t, msg, "binding 3: empty keys")
	assert.Contains(t, msg, "binding 4 (f2): empty action")
	assert.NotContains(t, msg, "binding 0")
	assert.ErrorIs(t, err, key.ErrNoKey)
	assert.ErrorIs(t, err, key.ErrMultipleKeys)
}

func TestConflicts(t *testing.T) {
	km := NewKeymap("c").
		Add("ctrl+s", "file.save").
		Add("Ctrl+S", "file.saveAll").
		AddBinding(NewBinding("ctrl+s", "fallback").AsDefault()).
		Add("alt+x", "one").
		Add("x+alt", "two").
		Add("f1", "help").
		Add("bogus+", "skipped")

	assert.Equal(t, []Conflict{
		{Shortcut: "alt+x", Actions: []string{"one", "two"}},
		{Shortcut: "ctrl+s", Actions: []string{"file.save", "file.saveAll"}},
	}, km.Conflicts())
}

func TestCloneAndMerge(t *testing.T) {
	km := NewKeymap("a").AddBinding(NewBinding("ctrl+a", "x").WithArgs(map[string]any{"n": 1}))
	clone := km.Clone()
	clone.Bindings[0].Args["n"] = 2
	clone.Bindings[0].Action = "y"

	assert.Equal(t, 1, km.Bindings[0].Args["n"])
	assert.Equal(t, "x", km.Bindings[0].Action)

	merged := km.Merge(NewKeymap("b").Add("ctrl+b", "z"))
	assert.Equal(t, "a", merged.Name)
	require.Len(t, merged.Bindings, 2)
	assert.Equal(t, "z", merged.Bindings[1].Action)
	assert.Len(t, km.Merge(nil).Bindings, 1)
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory([]Binding{
		NewBinding("a", "1").WithCategory("File"),
		NewBinding("b", "2"),
		NewBinding("c", "3").WithCategory("File"),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "File", groups[0].Name)
	assert.Len(t, groups[0].Bindings, 2)
	assert.Equal(t, "Other", groups[1].Name)
}

func TestApply(t *testing.T) {
	m, err := shortcut.NewRegistry().Create("test")
	require.NoError(t, err)

	km, err := LoadReader(strings.NewReader(tomlKeymap), FormatTOML)
	require.NoError(t, err)

	var ran []string
	regs, err := km.Apply(m, func(b Binding, sc string, _ key.Modifier) bool {
		ran = append(ran, b.Action+"@"+sc)
		return true
	})
	require.NoError(t, err)
	assert.Len(t, regs, 3)

	assert.True(t, m.Event(key.NewRuneEvent('s', key.ModCtrl)))
	assert.True(t, m.Event(key.NewRuneEvent('z', key.ModCtrl|key.ModShift)))
	assert.False(t, m.Event(key.NewRuneEvent('x', key.ModCtrl)))
	assert.Equal(t, []string{"file.save@ctrl+s", "edit.redo@ctrl+shift+z"}, ran)
}

func TestApply_OverridesDefaults(t *testing.T) {
	m, err := shortcut.NewRegistry().Create("test")
	require.NoError(t, err)

	var ran []string
	run := func(b Binding, _ string, _ key.Modifier) bool {
		ran = append(ran, b.Action)
		return true
	}

	_, err = DefaultKeymap().Apply(m, run)
	require.NoError(t, err)
	_, err = NewKeymap("user").Add("ctrl+q", "user.quit").Apply(m, run)
	require.NoError(t, err)

	m.Event(key.NewRuneEvent('q', key.ModCtrl))
	assert.Equal(t, []string{"user.quit"}, ran)
}

func TestApply_PartialFailure(t *testing.T) {
	m, err := shortcut.NewRegistry().Create("test")
	require.NoError(t, err)

	km := NewKeymap("p").Add("ctrl+a", "ok").Add("ctrl+", "broken")
	regs, err := km.Apply(m, func(Binding, string, key.Modifier) bool { return true })

	assert.Len(t, regs, 1)
	assert.ErrorIs(t, err, shortcut.ErrInvalidShortcut)
	assert.Contains(t, err.Error(), "binding 1 (broken)")

	_, err = km.Apply(m, nil)
	assert.ErrorIs(t, err, shortcut.ErrNilHandler)
}

func TestBindAndUnbind(t *testing.T) {
	m, err := shortcut.NewRegistry().Create("test")
	require.NoError(t, err)
	run := func(Binding, string, key.Modifier) bool { return true }

	other, err := m.Create("other")
	require.NoError(t, err)
	_, err = other.OnFunc("ctrl+s", func(string, key.Modifier, any) bool { return true })
	require.NoError(t, err)

	bound, err := Bind(m, NewKeymap("b").Add("ctrl+s", "save").Add("f5", "run"), run)
	require.NoError(t, err)
	assert.Len(t, bound.Registrations(), 2)

	assert.Equal(t, 2, bound.Unbind())
	assert.Equal(t, 0, bound.Unbind())
	assert.False(t, m.Exists(key.StringSpec("f5")))
	assert.True(t, m.Exists(key.StringSpec("ctrl+s")), "other context keeps its registration")
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	require.NoError(t, km.Validate())
	assert.Empty(t, km.Conflicts())
	for _, b := range km.Bindings {
		assert.True(t, b.Default, b.Action)
	}
}

func TestWatcher(t *testing.T) {
	path := writeFile(t, "keys.toml", tomlKeymap)

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.toml"), []byte("x"), 0o644))
	select {
	case <-w.Changes():
		t.Fatal("change reported for unrelated file")
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte(tomlKeymap+"\n"), 0o644))
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "keys.toml"), 0)
	assert.Error(t, err)
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewKeymap("x").Encode(&buf, Format("json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
