package messages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval/pkg/messages"
)

func TestDefault(t *testing.T) {
	t.Run("known code returns documented message", func(t *testing.T) {
		assert.Equal(t, "This field is required.", messages.Default("requiredField"))
	})

	t.Run("unknown code returns empty string", func(t *testing.T) {
		assert.Empty(t, messages.Default("noSuchCode"))
	})

	t.Run("every listed code has a non-empty default", func(t *testing.T) {
		for _, code := range messages.Codes() {
			assert.NotEmpty(t, messages.Default(code), "code %s", code)
		}
	})
}

func TestExpand(t *testing.T) {
	t.Run("substitutes placeholders", func(t *testing.T) {
		msg := messages.Expand("at least {min} characters", map[string]string{"min": "4"})
		assert.Equal(t, "at least 4 characters", msg)
	})

	t.Run("leaves messages without placeholders untouched", func(t *testing.T) {
		msg := messages.Expand("too short", map[string]string{"min": "4"})
		assert.Equal(t, "too short", msg)
	})
}

func TestCatalog_Lookup(t *testing.T) {
	t.Run("empty catalog falls back to defaults", func(t *testing.T) {
		c := messages.NewCatalog()
		assert.Equal(t, messages.Default("wrongMonth"), c.Lookup("en", "wrongMonth"))
	})

	t.Run("loaded translation wins", func(t *testing.T) {
		c := messages.NewCatalog()
		doc := `
de:
  requiredField: "Dieses Feld ist erforderlich."
`
		require.NoError(t, c.LoadYAML(strings.NewReader(doc)))

		assert.Equal(t, "Dieses Feld ist erforderlich.", c.Lookup("de", "requiredField"))
	})

	t.Run("matches regional variants against base language", func(t *testing.T) {
		c := messages.NewCatalog()
		doc := `
de:
  requiredField: "Dieses Feld ist erforderlich."
`
		require.NoError(t, c.LoadYAML(strings.NewReader(doc)))

		assert.Equal(t, "Dieses Feld ist erforderlich.", c.Lookup("de-AT", "requiredField"))
	})

	t.Run("missing code in language falls back to default language", func(t *testing.T) {
		c := messages.NewCatalog()
		doc := `
en:
  requiredField: "Required!"
de:
  wrongMonth: "Monat zwischen 1 und 12."
`
		require.NoError(t, c.LoadYAML(strings.NewReader(doc)))

		assert.Equal(t, "Required!", c.Lookup("de", "requiredField"))
	})

	t.Run("empty language uses default language", func(t *testing.T) {
		c := messages.NewCatalog(messages.WithDefaultLanguage("fr"))
		doc := `
fr:
  requiredField: "Ce champ est obligatoire."
`
		require.NoError(t, c.LoadYAML(strings.NewReader(doc)))

		assert.Equal(t, "Ce champ est obligatoire.", c.Lookup("", "requiredField"))
	})

	t.Run("unknown code in any language returns empty", func(t *testing.T) {
		c := messages.NewCatalog()
		assert.Empty(t, c.Lookup("en", "noSuchCode"))
	})
}

func TestCatalog_LoadYAML(t *testing.T) {
	t.Run("rejects malformed yaml", func(t *testing.T) {
		c := messages.NewCatalog()
		err := c.LoadYAML(strings.NewReader("en: [not a map"))
		assert.Error(t, err)
	})

	t.Run("rejects invalid language code", func(t *testing.T) {
		c := messages.NewCatalog()
		err := c.LoadYAML(strings.NewReader("\"!!\":\n  requiredField: x\n"))
		assert.Error(t, err)
	})

	t.Run("later loads override earlier entries", func(t *testing.T) {
		c := messages.NewCatalog()
		require.NoError(t, c.LoadYAML(strings.NewReader("en:\n  noMatch: first\n")))
		require.NoError(t, c.LoadYAML(strings.NewReader("en:\n  noMatch: second\n")))

		assert.Equal(t, "second", c.Lookup("en", "noMatch"))
	})

	t.Run("lists loaded languages", func(t *testing.T) {
		c := messages.NewCatalog()
		require.NoError(t, c.LoadYAML(strings.NewReader("en:\n  noMatch: x\nde:\n  noMatch: y\n")))

		assert.Equal(t, []string{"de", "en"}, c.Languages())
	})
}

func TestCatalog_Add(t *testing.T) {
	t.Run("adds a single translation", func(t *testing.T) {
		c := messages.NewCatalog()
		c.Add("en", "noMatch", "Nope.")

		assert.Equal(t, "Nope.", c.Lookup("en", "noMatch"))
	})

	t.Run("empty message removes the override", func(t *testing.T) {
		c := messages.NewCatalog()
		c.Add("en", "noMatch", "Nope.")
		c.Add("en", "noMatch", "")

		assert.Equal(t, messages.Default("noMatch"), c.Lookup("en", "noMatch"))
	})
}
