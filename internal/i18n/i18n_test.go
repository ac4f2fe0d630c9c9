package i18n

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"finitefield.org/staking-web/locales"
)

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load(locales.FS, "en", []string{"en", "ja"})
	require.NoError(t, err)

	require.Equal(t, "ja", b.Resolve("en;q=0.8, ja;q=0.9"))
	require.Equal(t, "en", b.Resolve("de-DE, fr;q=0.5"))
	require.Equal(t, "ja", b.Resolve("ja-JP"))
}

func TestResolveFallsBackWhenNothingMatches(t *testing.T) {
	b, err := Load(locales.FS, "en", []string{"en", "ar", "ja"})
	require.NoError(t, err)

	require.Equal(t, "ar", b.Resolve("fr-CH, fr;q=0.9, ar;q=0.8"))
	require.Equal(t, "en", b.Resolve(""))
	require.Equal(t, "en", b.Resolve("ja;q=0"))
	require.Equal(t, "en", b.Resolve("de"))
	require.Equal(t, "en", b.Resolve("!!not a header"))
	require.Equal(t, "", (*Bundle)(nil).Resolve("en"))
}

func TestTFallsBackToDefaultThenKey(t *testing.T) {
	fsys := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello","only.en":"English"}`)},
		"ar.json": {Data: []byte(`{"greeting":"مرحبا"}`)},
	}
	b, err := Load(fsys, "en", []string{"en", "ar", "es"})
	require.NoError(t, err)

	require.Equal(t, "مرحبا", b.T("ar", "greeting"))
	require.Equal(t, "English", b.T("ar", "only.en"))
	require.Equal(t, "Hello", b.T("es", "greeting"))
	require.Equal(t, "missing.key", b.T("ar", "missing.key"))
	require.Equal(t, []string{"ar", "en", "es"}, b.Supported())
}

func TestLoadRequiresFallbackDictionary(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "en", []string{"en"})
	require.Error(t, err)
}

func TestDirection(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"ar":    DirRTL,
		"fa":    DirRTL,
		"he":    DirRTL,
		"ur":    DirRTL,
		"ar-EG": DirRTL,
		"en":    DirLTR,
		"es":    DirLTR,
		"ja":    DirLTR,
		"":      DirLTR,
	}
	for code, want := range cases {
		require.Equal(t, want, Direction(code), code)
		require.Equal(t, want == DirRTL, IsLangRightToLeft(code), code)
	}
}

func TestContextTranslation(t *testing.T) {
	b, err := Load(locales.FS, "en", []string{"en", "ar"})
	require.NoError(t, err)

	ctx := WithLocalizer(context.Background(), b, "ar")
	require.Equal(t, "ar", LangFromContext(ctx))
	require.Equal(t, "هل كانت هذه الصفحة مفيدة؟", T(ctx, "feedback.prompt.page"))
	require.Equal(t, "Contributors", T(ctx, "contributors.title"))
	require.Equal(t, "fallback", TOr(ctx, "nope", "fallback"))
	require.Equal(t, "nope", T(context.Background(), "nope"))
}
