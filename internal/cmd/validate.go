package cmd

import (
	"log/slog"
	"os"

	"github.com/quillhid/hidforge/internal/cli"
	"github.com/quillhid/hidforge/internal/log"
	"github.com/quillhid/hidforge/internal/paramsource"
	"github.com/quillhid/hidforge/report"
)

// ValidateCmd checks HID report descriptor source for errors without
// emitting the compiled bytes, using report.CompileError's discard sink.
type ValidateCmd struct {
	sourceInput `embed:""`
	JSON        bool `help:"Print the diagnostic as JSON on failure"`
}

func (c *ValidateCmd) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	src, err := readSource(c.File)
	if err != nil {
		return cli.ErrIO(err.Error())
	}
	rawLogger.Log(true, src)

	params, err := paramsource.Load(c.Params, c.Param)
	if err != nil {
		return cli.ErrUsage(err.Error())
	}

	diag := report.CompileError(src, params)
	if diag.IsError() {
		if c.JSON {
			cli.PrintDiagnosticJSON(os.Stderr, diag)
		} else {
			cli.PrintDiagnostic(os.Stderr, src, diag)
		}
		return cli.Error{ExitCode: 1, Title: "validation failed"}
	}

	logger.Info("valid")
	return nil
}
