package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/quillhid/hidforge/internal/cli"
	"github.com/quillhid/hidforge/internal/log"
	"github.com/quillhid/hidforge/internal/paramsource"
	"github.com/quillhid/hidforge/report"
)

// SizeCmd reports the compiled size of HID report descriptor source in
// bytes, without allocating a buffer for the compiled output, using
// report.CompiledSize's counting sink.
type SizeCmd struct {
	sourceInput `embed:""`
}

func (c *SizeCmd) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	src, err := readSource(c.File)
	if err != nil {
		return cli.ErrIO(err.Error())
	}
	rawLogger.Log(true, src)

	params, err := paramsource.Load(c.Params, c.Param)
	if err != nil {
		return cli.ErrUsage(err.Error())
	}

	size, diag := report.CompiledSize(src, params)
	if diag.IsError() {
		cli.PrintDiagnostic(os.Stderr, src, diag)
		return cli.Error{ExitCode: 1, Title: "size failed"}
	}

	logger.Debug("computed size", "bytes", size)
	fmt.Println(size)
	return nil
}
