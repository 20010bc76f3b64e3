package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/quillhid/hidforge/internal/cache"
	"github.com/quillhid/hidforge/internal/cli"
	"github.com/quillhid/hidforge/internal/configpaths"
	"github.com/quillhid/hidforge/internal/log"
	"github.com/quillhid/hidforge/internal/paramsource"
	"github.com/quillhid/hidforge/report"
)

// CompileCmd compiles HID report descriptor source text to bytes,
// streaming the result to stdout (or --out), the CLI analogue of
// etc/HidWebCompiler.cpp's compile() export.
type CompileCmd struct {
	sourceInput `embed:""`
	Out         string `help:"Write compiled bytes to this file instead of stdout"`
	JSON        bool   `help:"On failure, print the diagnostic as JSON instead of line:column: message text"`
	NoCache     bool   `help:"Bypass the compiled-descriptor cache"`
}

func (c *CompileCmd) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	src, err := readSource(c.File)
	if err != nil {
		return cli.ErrIO(err.Error())
	}
	rawLogger.Log(true, src)

	params, err := paramsource.Load(c.Params, c.Param)
	if err != nil {
		return cli.ErrUsage(err.Error())
	}

	key := cache.Key(src, params.Canonical())
	var out *cache.Cache
	if !c.NoCache {
		if dir, dirErr := configpaths.DefaultConfigDir(); dirErr == nil {
			if opened, openErr := cache.Open(dir+"/cache", []byte("hidforge-compile-cache")); openErr == nil {
				out = opened
				if data, ok := out.Get(key); ok {
					logger.Debug("cache hit", "key", key)
					rawLogger.Log(false, data)
					return writeOutput(c.Out, data)
				}
			}
		}
	}

	data, diag := report.CompileBytes(src, params)
	if diag.IsError() {
		if c.JSON {
			cli.PrintDiagnosticJSON(os.Stderr, diag)
		} else {
			cli.PrintDiagnostic(os.Stderr, src, diag)
		}
		return cli.Error{ExitCode: 1, Title: "compile failed"}
	}

	rawLogger.Log(false, data)
	logger.Info("compiled", "bytes", len(data))

	if out != nil {
		if err := out.Put(key, data); err != nil {
			logger.Warn("failed to write cache entry", "error", err)
		}
	}

	return writeOutput(c.Out, data)
}

func readSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
