package i18n_test

import (
	"bytes"
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simpleval/pkg/i18n"
	"github.com/dmitrymomot/simpleval/pkg/logger"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog(context.Background(), nil)
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("invalid default language", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog(context.Background(), &i18n.MapAdapter{},
			i18n.WithDefaultLanguage("not a tag"))
		require.ErrorIs(t, err, i18n.ErrInvalidLanguageTag)
	})

	t.Run("invalid language in source", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]string{"???": {"a": "b"}},
		})
		require.ErrorIs(t, err, i18n.ErrInvalidLanguageTag)
	})

	t.Run("canonicalises languages and logs load", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cat, err := i18n.NewCatalog(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]string{
				"EN":    {"email.required": "required"},
				"pt-br": {"email.required": "obrigatório"},
			},
		}, i18n.WithLogger(logger.New(logger.WithOutput(buf))))
		require.NoError(t, err)

		assert.Equal(t, []string{"en", "pt-BR"}, cat.Languages())
		assert.Equal(t, "en", cat.DefaultLanguage())
		assert.Contains(t, buf.String(), "message catalog loaded")
	})

	t.Run("empty catalog is allowed", func(t *testing.T) {
		t.Parallel()
		cat, err := i18n.NewCatalog(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, cat.Languages())

		msgs, ok := cat.Messages("en")
		assert.False(t, ok)
		assert.Empty(t, msgs)
	})
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()
	cat, err := i18n.NewCatalog(context.Background(), &i18n.MapAdapter{
		Data: map[string]map[string]string{
			"en":    {"name.required": "Name is required."},
			"pt":    {"name.required": "Nome é obrigatório."},
			"pt-BR": {"name.min": "Nome curto."},
		},
	})
	require.NoError(t, err)

	t.Run("exact language", func(t *testing.T) {
		t.Parallel()
		msg, ok := cat.Message("pt-br", "name.min")
		require.True(t, ok)
		assert.Equal(t, "Nome curto.", msg)
	})

	t.Run("falls back to base language", func(t *testing.T) {
		t.Parallel()
		msgs, ok := cat.Messages("pt-PT")
		require.True(t, ok)
		assert.Equal(t, "Nome é obrigatório.", msgs["name.required"])
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		msg, ok := cat.Message("de", "name.required")
		require.True(t, ok)
		assert.Equal(t, "Name is required.", msg)

		msg, ok = cat.Message("", "name.required")
		require.True(t, ok)
		assert.Equal(t, "Name is required.", msg)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, ok := cat.Message("en", "name.max")
		assert.False(t, ok)
	})

	t.Run("messages are copies", func(t *testing.T) {
		t.Parallel()
		msgs, ok := cat.Messages("en")
		require.True(t, ok)
		msgs["name.required"] = "changed"

		msg, _ := cat.Message("en", "name.required")
		assert.Equal(t, "Name is required.", msg)
	})
}

func TestCatalog_Add(t *testing.T) {
	t.Parallel()
	cat, err := i18n.NewCatalog(context.Background(), &i18n.MapAdapter{})
	require.NoError(t, err)

	require.NoError(t, cat.Add("en", map[string]string{"a.required": "A!"}))
	require.NoError(t, cat.Add("EN", map[string]string{"a.min": "short"}))
	require.ErrorIs(t, cat.Add("???", nil), i18n.ErrInvalidLanguageTag)

	msgs, ok := cat.Messages("en")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"a.required": "A!", "a.min": "short"}, msgs)
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	t.Run("yaml file", func(t *testing.T) {
		t.Parallel()
		cat, err := i18n.NewCatalog(context.Background(), i18n.NewFileAdapter("testdata/messages.yml"))
		require.NoError(t, err)
		assert.Equal(t, []string{"en-US", "pt"}, cat.Languages())

		msg, ok := cat.Message("en-US", "role.inArr")
		require.True(t, ok)
		assert.Equal(t, "Unknown role.", msg)

		msg, ok = cat.Message("en-US", "role.retries")
		require.True(t, ok)
		assert.Equal(t, "3", msg)
	})

	t.Run("explicit parser", func(t *testing.T) {
		t.Parallel()
		docs, err := i18n.NewFileAdapterWithParser(i18n.NewJSONParser(), "testdata/catalogs/de.json").
			Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "E-Mail ist ungültig.", docs["de"]["email.email"])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter("testdata/catalogs/README.txt").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter("testdata/missing.yaml").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFileAdapter("testdata/messages.yml").Load(ctx)
		require.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("directory on disk", func(t *testing.T) {
		t.Parallel()
		cat, err := i18n.NewCatalog(context.Background(), i18n.NewFSAdapter(os.DirFS("testdata"), "catalogs"))
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en"}, cat.Languages())

		msg, ok := cat.Message("de", "username.required")
		require.True(t, ok)
		assert.Equal(t, "Benutzername ist erforderlich.", msg)
	})

	t.Run("later files override earlier keys", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"a.yaml": {Data: []byte("en:\n  x: first\n  y: kept\n")},
			"b.json": {Data: []byte(`{"en": {"x": "second"}}`)},
		}
		docs, err := i18n.NewFSAdapter(fsys, "").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"x": "second", "y": "kept"}, docs["en"])
	})

	t.Run("no catalog files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"notes.txt": {Data: []byte("hi")}}
		_, err := i18n.NewFSAdapter(fsys, ".").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoCatalogFiles)
	})

	t.Run("broken file reports its name", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.json": {Data: []byte("{")}}
		_, err := i18n.NewFSAdapter(fsys, ".").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
		assert.Contains(t, err.Error(), "bad.json")
	})
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()
	got, err := i18n.NormalizeLanguage("en-us")
	require.NoError(t, err)
	assert.Equal(t, "en-US", got)

	_, err = i18n.NormalizeLanguage("")
	require.ErrorIs(t, err, i18n.ErrInvalidLanguageTag)
}
