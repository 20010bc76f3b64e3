package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/quillhid/hidforge/report"
	"golang.org/x/term"
)

// PrintDiagnostic writes a compile failure to w. When w is a terminal
// (checked with term.IsTerminal, the same call the teacher's CLI layer
// uses for width-aware output) the offending line is shown with a caret
// under the failing column and the message is highlighted; otherwise
// plain "line:column: message" text is written, matching
// report.Diagnostic.Error().
func PrintDiagnostic(w io.Writer, source []byte, diag report.Diagnostic) {
	if !diag.IsError() {
		return
	}

	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(w, diag.Error())
		return
	}

	const (
		red   = "\x1b[31m"
		bold  = "\x1b[1m"
		reset = "\x1b[0m"
	)

	line := lineAt(source, diag.Position.Line)
	fmt.Fprintf(w, "%s%d:%d:%s %serror:%s %s\n", bold, diag.Position.Line, diag.Position.Column, reset, red, reset, diag.Message)
	if line != "" {
		fmt.Fprintf(w, "  %s\n", line)
		if diag.Position.Column > 0 {
			fmt.Fprintf(w, "  %*s%s^%s\n", diag.Position.Column-1, "", red, reset)
		}
	}
}

// PrintDiagnosticJSON writes diag to w as a single JSON object, for
// tooling that wants structured output instead of prose, the moral
// equivalent of etc/HidWebCompiler.cpp's setResult(msg, pos, line, col)
// callback.
func PrintDiagnosticJSON(w io.Writer, diag report.Diagnostic) {
	fmt.Fprintf(w, `{"character":%d,"line":%d,"column":%d,"message":%q}`+"\n",
		diag.Position.Character, diag.Position.Line, diag.Position.Column, diag.Message)
}

func lineAt(source []byte, lineNum int) string {
	if lineNum < 1 {
		return ""
	}
	line := 1
	start := 0
	for i, b := range source {
		if line == lineNum {
			start = i
			break
		}
		if b == '\n' {
			line++
			start = i + 1
		}
	}
	if line != lineNum {
		return ""
	}
	end := start
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return string(source[start:end])
}
