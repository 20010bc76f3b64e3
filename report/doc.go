// Package report compiles human-readable HID report descriptor source
// text into the binary short-item encoding defined by the HID 1.11
// specification (sections 5.8 and 6.2.2).
//
// Source text is a sequence of items such as:
//
//	UsagePage(GenericDesktop)
//	Usage(Mouse)
//	Collection(Application)
//	  UsagePage(Button)
//	  UsageMinimum(1)
//	  UsageMaximum(3)
//	  LogicalMinimum(0)
//	  LogicalMaximum(1)
//	  ReportCount(3)
//	  ReportSize(1)
//	  Input(Data, Var, Abs)
//	EndCollection
//
// Compile, CompiledSize and CompileError all run the same state machine
// over the same source; they differ only in what they do with the
// bytes it produces, mirroring the three writer shapes (discard, count,
// buffer) that made the machine's estimate-then-emit workflow possible
// without duplicating the compiler itself.
package report
