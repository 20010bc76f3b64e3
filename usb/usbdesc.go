// Package usb assembles the static USB enumeration descriptors (device,
// configuration, interface, endpoint and HID class descriptors) that
// wrap a report package-compiled HID report descriptor byte stream
// into a complete descriptor bundle a USB gadget stack can enumerate.
//
// Everything here is static data assembly: no live device, no URB
// handling, no transport. A hidforge build pipeline compiles report
// descriptor source with the report package and then hands the
// resulting bytes to InterfaceConfig.HIDReport below.
package usb

import (
	"bytes"
	"encoding/binary"
)

// USB descriptor type constants
const (
	DeviceDescType    = 0x01
	ConfigDescType    = 0x02
	InterfaceDescType = 0x04
	EndpointDescType  = 0x05
	HIDDescType       = 0x21
	ReportDescType    = 0x22
)

// Descriptor lengths in bytes (fixed values from USB spec)
const (
	DeviceDescLen    = 18
	ConfigDescLen    = 9
	InterfaceDescLen = 9
	EndpointDescLen  = 7
	HIDDescLen       = 9
)

// Configuration descriptor defaults used when assembling a bundle; a
// device needing bus-powered >100mA or self-powered operation can
// still hand-build a ConfigHeader directly instead of calling Bundle.
const (
	ConfigValueDefault   = 1
	ConfigAttrBusPowered = 0x80
	ConfigMaxPower100mA  = 50 // in units of 2mA
)

// Descriptor holds all static descriptor/config data for a device.
type Descriptor struct {
	Device     DeviceDescriptor
	Interfaces []InterfaceConfig
	Strings    map[uint8]string
}

// InterfaceConfig holds all descriptors for a single interface for bus management.
type InterfaceConfig struct {
	Descriptor    InterfaceDescriptor
	Endpoints     []EndpointDescriptor
	HIDDescriptor []byte // optional HID class descriptor (0x21)
	HIDReport     []byte // optional HID report descriptor (0x22), normally report.CompileBytes output
	VendorData    []byte // optional vendor-specific bytes
}

// BuildHIDDescriptorHeader returns the 9-byte HID class descriptor
// (type 0x21) that precedes a report descriptor of the given length,
// matching the literal byte layout device packages in the teacher
// corpus hand-wrote per device (bcdHID 1.11, no country code, one
// subordinate report descriptor).
func BuildHIDDescriptorHeader(reportLen int) []byte {
	h := HIDDescriptor{
		BcdHID:            0x0111,
		BCountryCode:      0,
		BNumDescriptors:   1,
		ClassDescType:     ReportDescType,
		WDescriptorLength: uint16(reportLen),
	}
	var b bytes.Buffer
	h.Write(&b)
	return b.Bytes()
}

// EncodeStringDescriptor converts a UTF-8 string to a USB string descriptor byte array.
// The resulting descriptor has the format:
//
//	Byte 0: bLength (total descriptor length)
//	Byte 1: bDescriptorType (0x03 for string)
//	Bytes 2+: UTF-16LE encoded string
func EncodeStringDescriptor(s string) []byte {
	runes := []rune(s)
	buf := make([]byte, 2+len(runes)*2)
	buf[0] = uint8(len(buf)) // bLength
	buf[1] = 0x03            // bDescriptorType (STRING)
	for i, r := range runes {
		buf[2+i*2] = uint8(r)
		buf[2+i*2+1] = uint8(r >> 8)
	}
	return buf
}

// DeviceDescriptor represents the standard USB device descriptor.
// BLength is computed dynamically; BDescriptorType is implied DeviceDescType.
type DeviceDescriptor struct {
	BcdUSB             uint16 // LE
	BDeviceClass       uint8
	BDeviceSubClass    uint8
	BDeviceProtocol    uint8
	BMaxPacketSize0    uint8
	IDVendor           uint16 // LE; may get overridden
	IDProduct          uint16 // LE; may get overridden
	BcdDevice          uint16 // LE
	IManufacturer      uint8
	IProduct           uint8
	ISerialNumber      uint8
	BNumConfigurations uint8
	Speed              uint32 // USB speed: 1=low, 2=full, 3=high, 4=super
}

// Bytes returns the binary representation of the DeviceDescriptor with BLength auto-filled.
func (d Descriptor) Bytes() []byte {
	var b bytes.Buffer
	b.WriteByte(DeviceDescLen)
	b.WriteByte(DeviceDescType)
	_ = binary.Write(&b, binary.LittleEndian, d.Device.BcdUSB)
	b.WriteByte(d.Device.BDeviceClass)
	b.WriteByte(d.Device.BDeviceSubClass)
	b.WriteByte(d.Device.BDeviceProtocol)
	b.WriteByte(d.Device.BMaxPacketSize0)
	_ = binary.Write(&b, binary.LittleEndian, d.Device.IDVendor)
	_ = binary.Write(&b, binary.LittleEndian, d.Device.IDProduct)
	_ = binary.Write(&b, binary.LittleEndian, d.Device.BcdDevice)
	b.WriteByte(d.Device.IManufacturer)
	b.WriteByte(d.Device.IProduct)
	b.WriteByte(d.Device.ISerialNumber)
	b.WriteByte(d.Device.BNumConfigurations)
	return b.Bytes()
}

// ConfigDescriptor assembles the configuration descriptor for d: the
// 9-byte configuration header (with WTotalLength patched to the
// assembled length) followed by each interface's descriptor, its HID
// class descriptor if present, its endpoint descriptors, and any
// trailing vendor-specific bytes. Report descriptor bytes are not
// included; ReportBytes returns them separately.
func (d Descriptor) ConfigDescriptor() []byte {
	var b bytes.Buffer
	h := ConfigHeader{
		WTotalLength:        0, // patched below
		BNumInterfaces:      uint8(len(d.Interfaces)),
		BConfigurationValue: ConfigValueDefault,
		IConfiguration:      0,
		BMAttributes:        ConfigAttrBusPowered,
		BMaxPower:           ConfigMaxPower100mA,
	}
	h.Write(&b)
	for _, iface := range d.Interfaces {
		iface.Descriptor.Write(&b)
		if len(iface.HIDDescriptor) > 0 {
			b.Write(iface.HIDDescriptor)
		}
		for _, ep := range iface.Endpoints {
			ep.Write(&b)
		}
		if len(iface.VendorData) > 0 {
			b.Write(iface.VendorData)
		}
	}
	data := b.Bytes()
	binary.LittleEndian.PutUint16(data[2:4], uint16(len(data)))
	return data
}

// ReportBytes returns the concatenated HID report descriptor bytes of
// every interface carrying one, in interface order.
func (d Descriptor) ReportBytes() []byte {
	var b bytes.Buffer
	for _, iface := range d.Interfaces {
		b.Write(iface.HIDReport)
	}
	return b.Bytes()
}

// Bundle assembles the complete static descriptor set hidforge's
// usb command emits: device descriptor, configuration descriptor
// (interfaces/HID/endpoints inline), the HID report descriptor bytes
// of every interface, and the string descriptor table ordered by
// index, LangID (index 0) first if present.
func (d Descriptor) Bundle() []byte {
	var b bytes.Buffer
	b.Write(d.Bytes())
	b.Write(d.ConfigDescriptor())
	b.Write(d.ReportBytes())
	if len(d.Strings) > 0 {
		indices := make([]uint8, 0, len(d.Strings))
		for idx := range d.Strings {
			indices = append(indices, idx)
		}
		sortUint8(indices)
		for _, idx := range indices {
			b.Write(EncodeStringDescriptor(d.Strings[idx]))
		}
	}
	return b.Bytes()
}

// sortUint8 sorts a small slice of uint8 in place without pulling in
// sort's generic machinery for eight-bit keys.
func sortUint8(s []uint8) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// ConfigHeader represents the USB configuration descriptor header (9 bytes).
type ConfigHeader struct {
	WTotalLength        uint16 // LE, to be patched after building
	BNumInterfaces      uint8
	BConfigurationValue uint8
	IConfiguration      uint8
	BMAttributes        uint8
	BMaxPower           uint8
}

func (h ConfigHeader) Write(b *bytes.Buffer) {
	b.WriteByte(ConfigDescLen)
	b.WriteByte(ConfigDescType)
	_ = binary.Write(b, binary.LittleEndian, h.WTotalLength)
	b.WriteByte(h.BNumInterfaces)
	b.WriteByte(h.BConfigurationValue)
	b.WriteByte(h.IConfiguration)
	b.WriteByte(h.BMAttributes)
	b.WriteByte(h.BMaxPower)

}

// InterfaceDescriptor (9 bytes) for each interface altsetting.
type InterfaceDescriptor struct {
	BInterfaceNumber   uint8
	BAlternateSetting  uint8
	BNumEndpoints      uint8
	BInterfaceClass    uint8
	BInterfaceSubClass uint8
	BInterfaceProtocol uint8
	IInterface         uint8
}

func (i InterfaceDescriptor) Write(b *bytes.Buffer) {
	b.WriteByte(InterfaceDescLen)
	b.WriteByte(InterfaceDescType)
	b.WriteByte(i.BInterfaceNumber)
	b.WriteByte(i.BAlternateSetting)
	b.WriteByte(i.BNumEndpoints)
	b.WriteByte(i.BInterfaceClass)
	b.WriteByte(i.BInterfaceSubClass)
	b.WriteByte(i.BInterfaceProtocol)
	b.WriteByte(i.IInterface)

}

// EndpointDescriptor (7 bytes) for each endpoint.
type EndpointDescriptor struct {
	BEndpointAddress uint8
	BMAttributes     uint8
	WMaxPacketSize   uint16 // LE
	BInterval        uint8
}

func (e EndpointDescriptor) Write(b *bytes.Buffer) {
	b.WriteByte(EndpointDescLen)
	b.WriteByte(EndpointDescType)
	b.WriteByte(e.BEndpointAddress)
	b.WriteByte(e.BMAttributes)
	_ = binary.Write(b, binary.LittleEndian, e.WMaxPacketSize)
	b.WriteByte(e.BInterval)

}

// HIDDescriptor (class descriptor, 0x21) with one subordinate report descriptor (0x22).
type HIDDescriptor struct {
	BcdHID            uint16 // LE
	BCountryCode      uint8
	BNumDescriptors   uint8
	ClassDescType     uint8  // 0x22 (report)
	WDescriptorLength uint16 // LE, report descriptor length
}

func (h HIDDescriptor) Write(b *bytes.Buffer) {
	b.WriteByte(HIDDescLen)
	b.WriteByte(HIDDescType)
	_ = binary.Write(b, binary.LittleEndian, h.BcdHID)
	b.WriteByte(h.BCountryCode)
	b.WriteByte(h.BNumDescriptors)
	b.WriteByte(h.ClassDescType)
	_ = binary.Write(b, binary.LittleEndian, h.WDescriptorLength)

}

