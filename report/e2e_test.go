package report_test

import (
	"testing"

	"github.com/quillhid/hidforge/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndScenarios(t *testing.T) {
	type scenario struct {
		name     string
		source   string
		kind     report.ErrorKind
		errorPos int
		data     []byte
	}

	scenarios := []scenario{
		{name: "empty source", source: "", data: []byte{}},
		{name: "top level hex literal", source: "0xFF", data: []byte{0xFF}},
		{name: "usage page", source: "UsagePage(GenericDesktop)", data: []byte{0x05, 0x01}},
		{
			name:   "collection with input",
			source: "UsagePage(Button)\nUsage(Button20)\nCollection(Application)\nInput(Data, Var, Abs)\nEndCollection",
			data:   []byte{0x05, 0x09, 0x09, 0x14, 0xA1, 0x01, 0x81, 0x02, 0xC0},
		},
		{name: "signed logical maximum", source: "LogicalMaximum(-129)", data: []byte{0x26, 0x7F, 0xFF}},
		{
			name:   "unit with six dimensions",
			source: "Unit(SiLin(Length^2 Mass^3 Time^4 Temp^5 Current^6 Luminous^7))",
			data:   []byte{0x67, 0x21, 0x43, 0x65, 0x07},
		},
		{
			name:     "delimiter left open",
			source:   "Delimiter(Open)",
			kind:     report.ErrMissingDelimiterClose,
			errorPos: 15,
			data:     []byte{0xA9, 0x01},
		},
		{
			name:     "usage before usage page",
			source:   "Usage(Pointer)",
			kind:     report.ErrMissingUsagePage,
			errorPos: 13,
		},
		{
			name:     "named usage on numeric usage page",
			source:   "UsagePage(1)\nUsage(Pointer)",
			kind:     report.ErrMissingNamedUsagePage,
			errorPos: 26,
			data:     []byte{0x05, 0x01},
		},
		{
			name:     "collection without usage",
			source:   "Collection(Application)",
			kind:     report.ErrMissingUsageForCollection,
			errorPos: 10,
		},
		{
			name:     "logical maximum overflow",
			source:   "LogicalMaximum(2147483648)",
			kind:     report.ErrNumberOverflow,
			errorPos: 25,
		},
		{
			name:     "push takes no arguments",
			source:   "Push(10)",
			kind:     report.ErrItemHasNoArguments,
			errorPos: 4,
		},
	}

	for _, s := range scenarios {
		s := s
		t.Run(s.name, func(t *testing.T) {
			bytes, diag := report.CompileBytes([]byte(s.source), nil)
			assert.Equal(t, s.kind, diag.Kind)
			if s.kind != report.ErrNone {
				assert.Equal(t, s.errorPos, diag.Position.Character)
				assert.Nil(t, bytes)
				return
			}
			require.False(t, diag.IsError(), diag.Error())
			assert.Equal(t, s.data, bytes)
		})
	}
}

func TestCompiledSizeMatchesCompile(t *testing.T) {
	src := []byte("UsagePage(GenericDesktop)\nUsage(Mouse)\nCollection(Application)\nReportSize(1)\nReportCount(8)\nEndCollection")
	size, diag := report.CompiledSize(src, nil)
	require.False(t, diag.IsError(), diag.Error())

	sink := report.NewBufferSink(size)
	diag = report.Compile(src, sink, nil)
	require.False(t, diag.IsError(), diag.Error())
	assert.Equal(t, size, sink.Len())
}

func TestCompileErrorDiscardsOutput(t *testing.T) {
	diag := report.CompileError([]byte("UsagePage(GenericDesktop)\nUsage(0x10000)"), nil)
	assert.Equal(t, report.ErrArgumentValueOutOfRange, diag.Kind)
	assert.Equal(t, 39, diag.Position.Character)
}

func TestCompileBytesFailsCleanly(t *testing.T) {
	bytes, diag := report.CompileBytes([]byte("EndCollection"), nil)
	assert.Nil(t, bytes)
	assert.Equal(t, report.ErrUnexpectedEndCollection, diag.Kind)
}

func TestDiagnosticPositionTracksLinesAndColumns(t *testing.T) {
	_, diag := report.CompileBytes([]byte("UsagePage(GenericDesktop)\nUsage(0x10000)"), nil)
	require.True(t, diag.IsError())
	assert.Equal(t, 2, diag.Position.Line)
	assert.Equal(t, 14, diag.Position.Column)
}

func TestParamsLastMatchWins(t *testing.T) {
	p := report.NewParams()
	p.Set("width", 1)
	p.Set("width", 2)
	v, ok := p.Find("width")
	assert.True(t, ok)
	assert.Equal(t, int64(2), v)
}

func TestMapParamsResolvesByName(t *testing.T) {
	bytes, diag := report.CompileBytes([]byte("ReportSize({bits})"), report.MapParams{"bits": 8})
	require.False(t, diag.IsError(), diag.Error())
	assert.Equal(t, []byte{0x75, 0x08}, bytes)
}
