package report_test

import (
	"os"
	"testing"

	"github.com/quillhid/hidforge/report"
)

// FuzzCompile is the Go-native analogue of test/fuzzy.cpp's mutation
// fuzzer and test/klee.cpp's symbolic-execution harness: it asserts
// that arbitrary byte input never panics, never overruns a
// fixed-capacity sink, and never produces an ErrorKind outside the
// closed set the compiler defines. It makes no claim about what a
// mutated program should compile to, since a mutated program has no
// defined "correct" output.
func FuzzCompile(f *testing.F) {
	if joystick, err := os.ReadFile("testdata/joystick.hid"); err == nil {
		f.Add(joystick)
	}
	seeds := []string{
		"UsagePage(GenericDesktop)\nUsage(Mouse)\nCollection(Application)\nEndCollection",
		"LogicalMaximum(-129)",
		"Unit(SiLin(Length^2 Mass^3 Time^4 Temp^5 Current^6 Luminous^7))",
		"Delimiter(Open)",
		"UsagePage(1)\nUsage(Pointer)",
		"ReportSize({bits})",
		"Push(10)",
		// The exact mutation alphabet test/fuzzy.cpp draws single-character
		// substitutions from, seeded on its own so the fuzzer's corpus
		// includes the characters most likely to flip compiler state.
		" _#;^-,aAx09(){}\x00",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, src []byte) {
		const maxOut = 1 << 20
		sink := report.NewBufferSink(maxOut)
		diag := report.Compile(src, sink, nil)

		if diag.Kind < report.ErrNone || diag.Kind > report.ErrNegativeNumberNotAllowed {
			t.Fatalf("diagnostic kind %d outside the closed ErrorKind range", diag.Kind)
		}
		if sink.Len() > maxOut {
			t.Fatalf("sink overran its fixed capacity: wrote %d of %d bytes", sink.Len(), maxOut)
		}
	})
}
