package provision

import (
	"go/parser"
	"go/token"
	"testing"

	"bucket-provisioner/core/urlhelper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHelper(t *testing.T) {
	data := HelperData{
		Package:    "utils",
		Func:       "ImageURL",
		Bucket:     "images",
		PathPrefix: "public/",
		BaseURL:    "https://x.supabase.co",
	}

	t.Run("Go", func(t *testing.T) {
		src, err := RenderHelper(urlhelper.LanguageGo, data)
		require.NoError(t, err)

		_, err = parser.ParseFile(token.NewFileSet(), "image_url.go", src, 0)
		require.NoError(t, err)
		assert.Contains(t, string(src), "package utils")
		assert.Contains(t, string(src), `"/storage/v1/object/public/"`)
	})

	t.Run("TypeScript", func(t *testing.T) {
		ts := data
		ts.Func = "getImageUrl"
		src, err := RenderHelper(urlhelper.LanguageTypeScript, ts)
		require.NoError(t, err)
		assert.Contains(t, string(src), `export const BUCKET = "images";`)
		assert.Contains(t, string(src), "export const getImageUrl = (name: string): string =>")
	})

	t.Run("QuotesAreEscaped", func(t *testing.T) {
		odd := data
		odd.Bucket = `we"ird`
		src, err := RenderHelper(urlhelper.LanguageGo, odd)
		require.NoError(t, err)
		assert.Contains(t, string(src), `"we\"ird"`)
	})

	t.Run("InvalidFuncName", func(t *testing.T) {
		bad := data
		bad.Func = "image-url"
		_, err := RenderHelper(urlhelper.LanguageGo, bad)
		assert.Error(t, err)
	})

	t.Run("UnknownLanguage", func(t *testing.T) {
		_, err := RenderHelper("rust", data)
		assert.ErrorContains(t, err, "unsupported helper language")
	})
}
