package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExactMatch(t *testing.T) {
	enc, kind, found := resolve(&itemTable, "usagepage")
	assert.True(t, found)
	assert.Equal(t, ErrNone, kind)
	assert.Equal(t, uint32(0x04), enc.Value)
}

func TestResolveNotFound(t *testing.T) {
	_, kind, found := resolve(&itemTable, "nonsense")
	assert.False(t, found)
	assert.Equal(t, ErrNone, kind)
}

func TestResolveNilTable(t *testing.T) {
	_, kind, found := resolve(nil, "anything")
	assert.False(t, found)
	assert.Equal(t, ErrNone, kind)
}

func TestResolveIndexedPair(t *testing.T) {
	enc, kind, found := resolve(&buttonTable, "Button1")
	assert.True(t, found)
	assert.Equal(t, ErrNone, kind)
	assert.Equal(t, uint32(1), enc.Value)

	enc, kind, found = resolve(&buttonTable, "Button65535")
	assert.True(t, found)
	assert.Equal(t, ErrNone, kind)
	assert.Equal(t, uint32(65535), enc.Value)
}

func TestResolveIndexedPairPlainEntryStillMatches(t *testing.T) {
	enc, kind, found := resolve(&buttonTable, "NoButtonPressed")
	assert.True(t, found)
	assert.Equal(t, ErrNone, kind)
	assert.Equal(t, uint32(0), enc.Value)
}

func TestResolveIndexedPairOutOfRange(t *testing.T) {
	_, kind, found := resolve(&buttonTable, "Button65536")
	assert.False(t, found)
	assert.Equal(t, ErrArgumentIndexOutOfRange, kind)
}

func TestResolveIndexedPairBadPrefix(t *testing.T) {
	_, kind, found := resolve(&buttonTable, "Butto1")
	assert.False(t, found)
	assert.Equal(t, ErrInvalidArgumentName, kind)
}

func TestResolveIndexedPairBadCharacter(t *testing.T) {
	_, kind, found := resolve(&buttonTable, "Button1x")
	assert.False(t, found)
	assert.Equal(t, ErrUnexpectedArgumentNameCharacter, kind)
}

func TestResolveIndexedPairLeadingZero(t *testing.T) {
	_, kind, found := resolve(&buttonTable, "Button01")
	assert.False(t, found)
	assert.Equal(t, ErrInvalidArgumentName, kind)
}

func TestResolveIndexedPairOverflow(t *testing.T) {
	_, kind, found := resolve(&buttonTable, "Button4294967296")
	assert.False(t, found)
	assert.Equal(t, ErrArgumentIndexOutOfRange, kind)
}

func TestResolveCaseInsensitive(t *testing.T) {
	enc, _, found := resolve(&usagePageTable, "genericdesktop")
	assert.True(t, found)
	assert.Equal(t, uint32(0x01), enc.Value)
}
