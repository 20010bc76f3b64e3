package usb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceDescriptorBytes(t *testing.T) {
	d := Descriptor{Device: DeviceDescriptor{
		BcdUSB:             0x0200,
		BMaxPacketSize0:    0x40,
		IDVendor:           0x2E8A,
		IDProduct:          0x0011,
		BNumConfigurations: 1,
	}}
	b := d.Bytes()
	assert.Equal(t, DeviceDescLen, len(b))
	assert.Equal(t, byte(DeviceDescLen), b[0])
	assert.Equal(t, byte(DeviceDescType), b[1])
	assert.Equal(t, byte(0x00), b[2]) // bcdUSB low byte
	assert.Equal(t, byte(0x02), b[3]) // bcdUSB high byte
}

func TestBuildHIDDescriptorHeader(t *testing.T) {
	h := BuildHIDDescriptorHeader(42)
	assert.Equal(t, HIDDescLen, len(h))
	assert.Equal(t, byte(HIDDescLen), h[0])
	assert.Equal(t, byte(HIDDescType), h[1])
	assert.Equal(t, byte(ReportDescType), h[6])
	assert.Equal(t, byte(42), h[7])
	assert.Equal(t, byte(0), h[8])
}

func TestConfigDescriptorLengthPatched(t *testing.T) {
	report := []byte{0x05, 0x01, 0x09, 0x02}
	d := Descriptor{
		Interfaces: []InterfaceConfig{{
			Descriptor: InterfaceDescriptor{
				BNumEndpoints:   1,
				BInterfaceClass: 0x03,
			},
			HIDDescriptor: BuildHIDDescriptorHeader(len(report)),
			HIDReport:     report,
			Endpoints: []EndpointDescriptor{{
				BEndpointAddress: 0x81,
				BMAttributes:     0x03,
				WMaxPacketSize:   8,
				BInterval:        10,
			}},
		}},
	}
	cfg := d.ConfigDescriptor()

	wantLen := ConfigDescLen + InterfaceDescLen + HIDDescLen + EndpointDescLen
	assert.Equal(t, wantLen, len(cfg))
	assert.Equal(t, byte(ConfigDescLen), cfg[0])
	assert.Equal(t, byte(ConfigDescType), cfg[1])
	gotTotal := int(cfg[2]) | int(cfg[3])<<8
	assert.Equal(t, wantLen, gotTotal)
	assert.Equal(t, byte(1), cfg[4]) // bNumInterfaces
}

func TestBundleOrderAndContents(t *testing.T) {
	report := []byte{0x05, 0x01, 0x09, 0x02, 0xA1, 0x01, 0xC0}
	d := Descriptor{
		Device: DeviceDescriptor{BcdUSB: 0x0200, BNumConfigurations: 1},
		Interfaces: []InterfaceConfig{{
			Descriptor:    InterfaceDescriptor{BNumEndpoints: 1, BInterfaceClass: 0x03},
			HIDDescriptor: BuildHIDDescriptorHeader(len(report)),
			HIDReport:     report,
			Endpoints:     []EndpointDescriptor{{BEndpointAddress: 0x81, WMaxPacketSize: 8}},
		}},
		Strings: map[uint8]string{
			0: "\x04\x09",
			1: "hidforge",
		},
	}
	bundle := d.Bundle()

	deviceBytes := d.Bytes()
	configBytes := d.ConfigDescriptor()
	reportBytes := d.ReportBytes()

	assert.Equal(t, reportBytes, report)

	pos := 0
	assert.Equal(t, deviceBytes, bundle[pos:pos+len(deviceBytes)])
	pos += len(deviceBytes)
	assert.Equal(t, configBytes, bundle[pos:pos+len(configBytes)])
	pos += len(configBytes)
	assert.Equal(t, reportBytes, bundle[pos:pos+len(reportBytes)])
	pos += len(reportBytes)

	// string descriptor table follows, LangID (index 0) first
	langDesc := EncodeStringDescriptor("\x04\x09")
	assert.Equal(t, langDesc, bundle[pos:pos+len(langDesc)])
	pos += len(langDesc)

	nameDesc := EncodeStringDescriptor("hidforge")
	assert.Equal(t, nameDesc, bundle[pos:pos+len(nameDesc)])
	pos += len(nameDesc)

	assert.Equal(t, len(bundle), pos)
}

func TestEncodeStringDescriptor(t *testing.T) {
	b := EncodeStringDescriptor("hi")
	assert.Equal(t, []byte{6, 0x03, 'h', 0, 'i', 0}, b)
}
