package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArabic(t *testing.T) {
	loc, err := New("ar")
	require.NoError(t, err)

	assert.Equal(t, "تسجيل الدخول", loc.T("login.title"))
	assert.Equal(t, "ar", loc.Lang())
	assert.True(t, loc.RTL())
	assert.Equal(t, "rtl", loc.Dir().String())
}

func TestEnglish(t *testing.T) {
	loc, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Login", loc.T("login.title"))
	assert.Equal(t, "en", loc.Lang())
	assert.False(t, loc.RTL())
	assert.Equal(t, "ltr", loc.Dir().String())
}

func TestFrench(t *testing.T) {
	loc, err := New("fr")
	require.NoError(t, err)

	assert.Equal(t, "Connexion", loc.T("login.title"))
	assert.False(t, loc.RTL())
}

func TestUnsupportedLanguageFallsBackToArabicStrings(t *testing.T) {
	loc, err := New("de")
	require.NoError(t, err)

	assert.Equal(t, "تسجيل الدخول", loc.T("login.title"))
}

func TestUnparsableLanguageFallsBackToArabic(t *testing.T) {
	loc, err := New("??")
	require.NoError(t, err)

	assert.Equal(t, "ar", loc.Lang())
	assert.True(t, loc.RTL())
}

func TestUnknownMessageIDResolvesToItself(t *testing.T) {
	loc, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "no.such.key", loc.T("no.such.key"))
}
