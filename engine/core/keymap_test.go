package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMapCoversAlphanumerics(t *testing.T) {
	assert.Len(t, keyMap, 36)
	assert.Equal(t, Key0, TranslateKey(RawKey0))
	assert.Equal(t, Key9, TranslateKey(RawKey9))
	assert.Equal(t, KeyA, TranslateKey(RawKeyA))
	assert.Equal(t, KeyM, TranslateKey(RawKeyA+12))
	assert.Equal(t, KeyZ, TranslateKey(RawKeyZ))
}

func TestKeyMapPassThrough(t *testing.T) {
	assert.Equal(t, Key(RawKeySpace), TranslateKey(RawKeySpace))
	assert.Equal(t, Key(RawKeyLeftShift), TranslateKey(RawKeyLeftShift))
	assert.Equal(t, Key(-1), TranslateKey(RawKeyUnknown))
}
