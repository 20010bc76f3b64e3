// Package cmd holds the kong command structs for hidforge's CLI:
// compile, validate, size, usb and config init.
package cmd

// CLI is the root command set parsed by kong in cmd/hidforge.
type CLI struct {
	Compile  CompileCmd    `cmd:"" help:"Compile HID report descriptor source to bytes"`
	Validate ValidateCmd   `cmd:"" help:"Check HID report descriptor source for errors without emitting bytes"`
	Size     SizeCmd       `cmd:"" help:"Report the compiled size of HID report descriptor source, in bytes"`
	Usb      UsbCmd        `cmd:"" name:"usb" help:"Compile HID report descriptor source and wrap it in a full USB enumeration descriptor bundle"`
	Config   ConfigCommand `cmd:"" help:"Manage hidforge configuration files"`

	Log struct {
		Level   string `help:"Log level: trace, debug, info, warn, error" enum:"trace,debug,info,warn,error" default:"info"`
		File    string `help:"Also write logs to this file, in addition to stderr"`
		RawFile string `help:"Write raw compiler input/output byte traces to this file"`
	} `embed:"" prefix:"log."`

	ConfigFile string `name:"config" help:"Path to a config file (JSON, YAML or TOML)"`
}

// sourceInput is embedded by every command that reads HID report
// descriptor source text.
type sourceInput struct {
	File   string   `arg:"" optional:"" name:"file" help:"Source file to compile (defaults to stdin)"`
	Param  []string `help:"Bind a {name} parameter used in source text, as name=value" name:"param"`
	Params string   `help:"Load {name} parameter bindings from a JSON/YAML/TOML file" name:"params"`
}
