package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodedSize(t *testing.T) {
	cases := []struct {
		v    uint32
		want int
	}{
		{0, 1},
		{1, 1},
		{0xFF, 1},
		{0x100, 2},
		{0xFFFF, 2},
		{0x10000, 4},
		{0xFFFFFFFF, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, encodedSize(c.v), "v=%#x", c.v)
	}
}

func TestEncodedSizeSigned(t *testing.T) {
	cases := []struct {
		v    int32
		want int
	}{
		{0, 1},
		{1, 1},
		{-1, 1},
		{0x7F, 1},
		{-0x80, 1},
		{0x80, 2},
		{-0x81, 2},
		{0x7FFF, 2},
		{-0x8000, 2},
		{0x8000, 4},
		{-0x8001, 4},
		{0x7FFFFFFF, 4},
		{-0x7FFFFFFF - 1, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, encodedSizeSigned(c.v), "v=%d", c.v)
	}
}

func TestEncodedSizeCode(t *testing.T) {
	assert.Equal(t, uint32(0), encodedSizeCode(0))
	assert.Equal(t, uint32(1), encodedSizeCode(1))
	assert.Equal(t, uint32(2), encodedSizeCode(2))
	assert.Equal(t, uint32(3), encodedSizeCode(4))
}

func TestEncodeUnsigned(t *testing.T) {
	sink := NewBufferSink(8)
	assert.True(t, encodeUnsigned(sink, 0x0201))
	assert.Equal(t, []byte{0x01, 0x02}, sink.Bytes())
}

func TestEncodeSigned(t *testing.T) {
	cases := []struct {
		v    int32
		want []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0xFF}},
		{127, []byte{0x7F}},
		{-128, []byte{0x80}},
		{-129, []byte{0x7F, 0xFF}},
		{32767, []byte{0xFF, 0x7F}},
	}
	for _, c := range cases {
		sink := NewBufferSink(8)
		assert.True(t, encodeSigned(sink, c.v))
		assert.Equal(t, c.want, sink.Bytes(), "v=%d", c.v)
	}
}

func TestEncodeValueRefusesWhenFull(t *testing.T) {
	sink := NewBufferSink(1)
	assert.False(t, encodeValue(sink, 0x0201, 2))
}
