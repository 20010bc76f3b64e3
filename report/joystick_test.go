package report_test

import (
	"os"
	"testing"

	"github.com/quillhid/hidforge/report"
	"github.com/stretchr/testify/require"
)

// joystickGolden is the exact compiled output of testdata/joystick.hid
// with arg1 bound to 1, transcribed from the HID 1.11 appendix D.1
// style example's expected byte array.
var joystickGolden = []byte{
	0xFF, 0xFE, 0x33, 0x03, 0xBD, 0xE1, 0x01, 0x42, 0x12, 0x01, 0x05, 0x01, 0x09, 0x04, 0xA1, 0x01,
	0x05, 0x01, 0x09, 0x01, 0xA1, 0x00, 0x15, 0x81, 0x25, 0x7F, 0x75, 0x08, 0x95, 0x02, 0xA4, 0x09,
	0x30, 0x09, 0x31, 0x81, 0x02, 0x09, 0x39, 0x15, 0x00, 0x25, 0x03, 0x35, 0x00, 0x46, 0x0E, 0x01,
	0x65, 0x14, 0x95, 0x01, 0x75, 0x04, 0x81, 0x42, 0x15, 0x00, 0x25, 0x01, 0x95, 0x02, 0x75, 0x01,
	0x05, 0x09, 0x19, 0x01, 0x29, 0x02, 0x65, 0x00, 0x81, 0x02, 0xC0, 0x19, 0x03, 0x19, 0x04, 0x81,
	0x02, 0xB4, 0x05, 0x02, 0x09, 0xBB, 0x95, 0x01, 0x75, 0x01, 0x81, 0x02, 0xC0, 0xFF,
}

func TestCompileJoystickGolden(t *testing.T) {
	src, err := os.ReadFile("testdata/joystick.hid")
	require.NoError(t, err)

	params := report.NewParams()
	params.Set("arg1", 1)

	data, diag := report.CompileBytes(src, params)
	require.False(t, diag.IsError(), diag.Error())
	require.Equal(t, joystickGolden, data)
}
