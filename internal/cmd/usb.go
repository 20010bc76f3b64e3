package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/quillhid/hidforge/internal/cli"
	"github.com/quillhid/hidforge/internal/log"
	"github.com/quillhid/hidforge/internal/paramsource"
	"github.com/quillhid/hidforge/report"
	"github.com/quillhid/hidforge/usb"
)

// UsbCmd compiles HID report descriptor source and wraps the result in
// a complete static USB enumeration descriptor bundle (device,
// configuration, interface, endpoint and HID class descriptors plus
// string descriptors), the way the teacher's device packages hand-wrote
// a literal report descriptor byte array alongside a usb.Descriptor —
// except here the report bytes come from the compiler.
type UsbCmd struct {
	sourceInput `embed:""`
	Device      string `required:"" help:"Device descriptor bundle config file (JSON/YAML/TOML) describing VID/PID, interfaces and endpoints"`
	Out         string `help:"Write the descriptor bundle to this file instead of stdout"`
	JSON        bool   `help:"On compile failure, print the diagnostic as JSON instead of line:column: message text"`
}

// usbDeviceConfig is the on-disk shape of --device: everything needed
// to populate a usb.Descriptor except the HID report bytes themselves,
// which come from compiling sourceInput.
type usbDeviceConfig struct {
	BcdUSB             uint16            `json:"bcdUSB" yaml:"bcdUSB" toml:"bcdUSB"`
	BDeviceClass       uint8             `json:"bDeviceClass" yaml:"bDeviceClass" toml:"bDeviceClass"`
	BDeviceSubClass    uint8             `json:"bDeviceSubClass" yaml:"bDeviceSubClass" toml:"bDeviceSubClass"`
	BDeviceProtocol    uint8             `json:"bDeviceProtocol" yaml:"bDeviceProtocol" toml:"bDeviceProtocol"`
	BMaxPacketSize0    uint8             `json:"bMaxPacketSize0" yaml:"bMaxPacketSize0" toml:"bMaxPacketSize0"`
	IDVendor           uint16            `json:"idVendor" yaml:"idVendor" toml:"idVendor"`
	IDProduct          uint16            `json:"idProduct" yaml:"idProduct" toml:"idProduct"`
	BcdDevice          uint16            `json:"bcdDevice" yaml:"bcdDevice" toml:"bcdDevice"`
	BNumConfigurations uint8             `json:"bNumConfigurations" yaml:"bNumConfigurations" toml:"bNumConfigurations"`
	Speed              uint32            `json:"speed" yaml:"speed" toml:"speed"`
	Interface          usbInterfaceConfig `json:"interface" yaml:"interface" toml:"interface"`
	Manufacturer       string            `json:"manufacturer" yaml:"manufacturer" toml:"manufacturer"`
	Product            string            `json:"product" yaml:"product" toml:"product"`
	Serial             string            `json:"serial" yaml:"serial" toml:"serial"`
}

type usbInterfaceConfig struct {
	BInterfaceClass    uint8             `json:"bInterfaceClass" yaml:"bInterfaceClass" toml:"bInterfaceClass"`
	BInterfaceSubClass uint8             `json:"bInterfaceSubClass" yaml:"bInterfaceSubClass" toml:"bInterfaceSubClass"`
	BInterfaceProtocol uint8             `json:"bInterfaceProtocol" yaml:"bInterfaceProtocol" toml:"bInterfaceProtocol"`
	Endpoint           usbEndpointConfig `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
}

type usbEndpointConfig struct {
	BEndpointAddress uint8  `json:"bEndpointAddress" yaml:"bEndpointAddress" toml:"bEndpointAddress"`
	BMAttributes     uint8  `json:"bmAttributes" yaml:"bmAttributes" toml:"bmAttributes"`
	WMaxPacketSize   uint16 `json:"wMaxPacketSize" yaml:"wMaxPacketSize" toml:"wMaxPacketSize"`
	BInterval        uint8  `json:"bInterval" yaml:"bInterval" toml:"bInterval"`
}

func (c *UsbCmd) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	src, err := readSource(c.File)
	if err != nil {
		return cli.ErrIO(err.Error())
	}
	rawLogger.Log(true, src)

	params, err := paramsource.Load(c.Params, c.Param)
	if err != nil {
		return cli.ErrUsage(err.Error())
	}

	cfg, err := loadUsbDeviceConfig(c.Device)
	if err != nil {
		return cli.ErrUsage(err.Error())
	}

	reportBytes, diag := report.CompileBytes(src, params)
	if diag.IsError() {
		if c.JSON {
			cli.PrintDiagnosticJSON(os.Stderr, diag)
		} else {
			cli.PrintDiagnostic(os.Stderr, src, diag)
		}
		return cli.Error{ExitCode: 1, Title: "compile failed"}
	}
	rawLogger.Log(false, reportBytes)
	logger.Info("compiled report", "bytes", len(reportBytes))

	desc := buildDescriptor(cfg, reportBytes)
	bundle := desc.Bundle()
	logger.Info("assembled descriptor bundle", "bytes", len(bundle))

	return writeOutput(c.Out, bundle)
}

func buildDescriptor(cfg usbDeviceConfig, reportBytes []byte) usb.Descriptor {
	iface := usb.InterfaceConfig{
		Descriptor: usb.InterfaceDescriptor{
			BInterfaceNumber:   0,
			BAlternateSetting:  0,
			BNumEndpoints:      1,
			BInterfaceClass:    cfg.Interface.BInterfaceClass,
			BInterfaceSubClass: cfg.Interface.BInterfaceSubClass,
			BInterfaceProtocol: cfg.Interface.BInterfaceProtocol,
			IInterface:         0,
		},
		HIDDescriptor: usb.BuildHIDDescriptorHeader(len(reportBytes)),
		HIDReport:     reportBytes,
		Endpoints: []usb.EndpointDescriptor{{
			BEndpointAddress: cfg.Interface.Endpoint.BEndpointAddress,
			BMAttributes:     cfg.Interface.Endpoint.BMAttributes,
			WMaxPacketSize:   cfg.Interface.Endpoint.WMaxPacketSize,
			BInterval:        cfg.Interface.Endpoint.BInterval,
		}},
	}

	strs := map[uint8]string{0: "\x04\x09"} // LangID: en-US
	next := uint8(1)
	var iManufacturer, iProduct, iSerial uint8
	if cfg.Manufacturer != "" {
		strs[next] = cfg.Manufacturer
		iManufacturer = next
		next++
	}
	if cfg.Product != "" {
		strs[next] = cfg.Product
		iProduct = next
		next++
	}
	if cfg.Serial != "" {
		strs[next] = cfg.Serial
		iSerial = next
		next++
	}

	return usb.Descriptor{
		Device: usb.DeviceDescriptor{
			BcdUSB:             cfg.BcdUSB,
			BDeviceClass:       cfg.BDeviceClass,
			BDeviceSubClass:    cfg.BDeviceSubClass,
			BDeviceProtocol:    cfg.BDeviceProtocol,
			BMaxPacketSize0:    cfg.BMaxPacketSize0,
			IDVendor:           cfg.IDVendor,
			IDProduct:          cfg.IDProduct,
			BcdDevice:          cfg.BcdDevice,
			IManufacturer:      iManufacturer,
			IProduct:           iProduct,
			ISerialNumber:      iSerial,
			BNumConfigurations: cfg.BNumConfigurations,
			Speed:              cfg.Speed,
		},
		Interfaces: []usb.InterfaceConfig{iface},
		Strings:    strs,
	}
}

func loadUsbDeviceConfig(path string) (usbDeviceConfig, error) {
	cfg := usbDeviceConfig{
		BcdUSB:             0x0200,
		BMaxPacketSize0:    0x40,
		BNumConfigurations: 1,
		Speed:              2,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading device config %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing device config %s: %w", path, err)
	}
	return cfg, nil
}
