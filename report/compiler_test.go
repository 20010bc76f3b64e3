package report_test

import (
	"testing"

	"github.com/quillhid/hidforge/report"
	"github.com/stretchr/testify/assert"
)

type fixedParams map[string]int64

func (f fixedParams) Find(name string) (int64, bool) {
	v, ok := f[name]
	return v, ok
}

var vectorParams = fixedParams{
	"arg1":   1,
	"arg2":   256,
	"arg3":   -1,
	"arg4":   4294967295,
	" arg5 ": 4294967296,
}

type vector struct {
	name     string
	source   string
	kind     report.ErrorKind
	errorPos int
	data     []byte
}

func runVectors(t *testing.T, vectors []vector) {
	t.Helper()
	for _, v := range vectors {
		v := v
		t.Run(v.name, func(t *testing.T) {
			out := report.NewBufferSink(65536)
			diag := report.Compile([]byte(v.source), out, vectorParams)
			assert.Equal(t, v.kind, diag.Kind, "source %q", v.source)
			if v.kind != report.ErrNone {
				assert.Equal(t, v.errorPos, diag.Position.Character, "source %q", v.source)
			}
			if v.data != nil {
				assert.Equal(t, v.data, out.Bytes(), "source %q", v.source)
			} else {
				assert.Equal(t, 0, out.Len(), "source %q", v.source)
			}
		})
	}
}

func TestCompileSanity(t *testing.T) {
	src := "\nUsagePage(Button)\nUsage(Button20)\nCollection(Application)\nUnit(SiLin(Length Mass^2))\nInput(3, Rel, {arg2})\n0x13\n{arg1}\nEndCollection\n"
	expected := []byte{0x05, 0x09, 0x09, 0x14, 0xA1, 0x01, 0x66, 0x11, 0x02, 0x82, 0x07, 0x01, 0x13, 0x01, 0xC0}
	out := report.NewBufferSink(65536)
	diag := report.Compile([]byte(src), out, vectorParams)
	assert.Equal(t, report.ErrNone, diag.Kind)
	assert.Equal(t, expected, out.Bytes())
}

func TestCompileComments(t *testing.T) {
	runVectors(t, []vector{
		{name: "hash", source: "#", kind: report.ErrNone},
		{name: "hash_lf", source: "#\n", kind: report.ErrNone},
		{name: "hash_cr", source: "#\r", kind: report.ErrNone},
		{name: "hash_lf_zero", source: "#\n0", kind: report.ErrNone, data: []byte{0}},
		{name: "hash_cr_zero", source: "#\r0", kind: report.ErrNone, data: []byte{0}},
		{name: "hash_text", source: "# text", kind: report.ErrNone},
		{name: "hash_text_lf", source: "# text\n", kind: report.ErrNone},
		{name: "hash_text_cr", source: "# text\r", kind: report.ErrNone},
		{name: "hash_text_lf_zero", source: "# text\n0", kind: report.ErrNone, data: []byte{0}},
		{name: "hash_text_cr_zero", source: "# text\r0", kind: report.ErrNone, data: []byte{0}},
		{name: "semi", source: ";", kind: report.ErrNone},
		{name: "semi_lf", source: ";\n", kind: report.ErrNone},
		{name: "semi_cr", source: ";\r", kind: report.ErrNone},
		{name: "semi_lf_zero", source: ";\n0", kind: report.ErrNone, data: []byte{0}},
		{name: "semi_cr_zero", source: ";\r0", kind: report.ErrNone, data: []byte{0}},
		{name: "semi_text", source: "; text", kind: report.ErrNone},
		{name: "semi_text_lf", source: "; text\n", kind: report.ErrNone},
		{name: "semi_text_cr", source: "; text\r", kind: report.ErrNone},
		{name: "semi_text_lf_zero", source: "; text\n0", kind: report.ErrNone, data: []byte{0}},
		{name: "semi_text_cr_zero", source: "; text\r0", kind: report.ErrNone, data: []byte{0}},
	})
}

func TestCompileTopLevelNumberLiteral(t *testing.T) {
	runVectors(t, []vector{
		{name: "zero", source: "0", data: []byte{0}},
		{name: "zero_lf", source: "0\n", data: []byte{0}},
		{name: "zero_cr", source: "0\r", data: []byte{0}},
		{name: "zero_space", source: "0 ", data: []byte{0}},
		{name: "one", source: "1", data: []byte{1}},
		{name: "two_fifty_six", source: "256", data: []byte{0, 1}},
		{name: "max_uint32", source: "4294967295", data: []byte{255, 255, 255, 255}},
		{name: "overflow", source: "4294967296", kind: report.ErrNumberOverflow, errorPos: 9},
		{name: "overflow_long", source: "42949672950", kind: report.ErrNumberOverflow, errorPos: 10},
		{name: "negative", source: "-1", kind: report.ErrNegativeNumberNotAllowed, errorPos: 0},
		{name: "trailing_alpha", source: "1a", kind: report.ErrInvalidNumericValue, errorPos: 1},
		{name: "trailing_hash", source: "1#", kind: report.ErrInvalidNumericValue, errorPos: 1},
		{name: "trailing_semi", source: "1;", kind: report.ErrInvalidNumericValue, errorPos: 1},
	})
}

func TestCompileTopLevelHexLiteral(t *testing.T) {
	runVectors(t, []vector{
		{name: "zero", source: "0x0", data: []byte{0x00}},
		{name: "zero_lf", source: "0x0\n", data: []byte{0x00}},
		{name: "zero_cr", source: "0x0\r", data: []byte{0x00}},
		{name: "zero_space", source: "0x0 ", data: []byte{0x00}},
		{name: "one", source: "0x1", data: []byte{0x01}},
		{name: "two_fifty_six", source: "0x100", data: []byte{0x00, 0x01}},
		{name: "max_upper", source: "0xFFFFFFFF", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "max_lower", source: "0xffffffff", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "overflow", source: "0x100000000", kind: report.ErrNumberOverflow, errorPos: 10},
		{name: "capital_x", source: "0X0", kind: report.ErrInvalidNumericValue, errorPos: 1},
		{name: "trailing_z", source: "0x0z", kind: report.ErrInvalidHexValue, errorPos: 3},
		{name: "trailing_hash", source: "0x0#", kind: report.ErrInvalidHexValue, errorPos: 3},
		{name: "trailing_semi", source: "0x0;", kind: report.ErrInvalidHexValue, errorPos: 3},
		{name: "unterminated", source: "0x", kind: report.ErrUnexpectedEndOfSource, errorPos: 2},
		{name: "no_digits", source: "0xZ", kind: report.ErrInvalidHexValue, errorPos: 2},
	})
}

func TestCompileTopLevelParameter(t *testing.T) {
	runVectors(t, []vector{
		{name: "arg1", source: "{arg1}", data: []byte{1}},
		{name: "arg1_lf", source: "{arg1}\n", data: []byte{1}},
		{name: "arg1_cr", source: "{arg1}\r", data: []byte{1}},
		{name: "arg1_space", source: "{arg1} ", data: []byte{1}},
		{name: "arg1_twice", source: "{arg1}{arg1}", data: []byte{1, 1}},
		{name: "arg2", source: "{arg2}", data: []byte{0, 1}},
		{name: "arg3_negative", source: "{arg3}", kind: report.ErrNegativeNumberNotAllowed, errorPos: 5},
		{name: "arg4", source: "{arg4}", data: []byte{255, 255, 255, 255}},
		{name: "arg5_out_of_range", source: "{ arg5 }", kind: report.ErrParameterValueOutOfRange, errorPos: 7},
		{name: "unknown", source: "{arg6}", kind: report.ErrExpectedValidParameterName, errorPos: 5},
		{name: "leading_space", source: "{ arg1}", kind: report.ErrExpectedValidParameterName, errorPos: 6},
		{name: "trailing_space", source: "{arg1 }", kind: report.ErrExpectedValidParameterName, errorPos: 6},
		{name: "both_spaces", source: "{ arg1 }", kind: report.ErrExpectedValidParameterName, errorPos: 7},
		{name: "unterminated", source: "{arg1", kind: report.ErrUnexpectedEndOfSource, errorPos: 5},
	})
}

func TestCompileItems(t *testing.T) {
	runVectors(t, []vector{
		{name: "push", source: "Push", data: []byte{0xA4}},
		{name: "push_upper", source: "PUSH", data: []byte{0xA4}},
		{name: "push_lower", source: "push", data: []byte{0xA4}},
		{name: "pushx", source: "pushx", kind: report.ErrInvalidItemName, errorPos: 5},
		{name: "pushx_space", source: "pushx ", kind: report.ErrInvalidItemName, errorPos: 5},
		{name: "push_dollar", source: "push$", kind: report.ErrUnexpectedItemNameCharacter, errorPos: 4},
		{name: "push_with_args", source: "Push(10)", kind: report.ErrItemHasNoArguments, errorPos: 4},
		{name: "pushx_with_args", source: "Pushx(10)", kind: report.ErrInvalidItemName, errorPos: 5},
		{name: "usagepage", source: "UsagePage(GenericDesktop)", data: []byte{0x05, 0x01}},
		{name: "usagepage_upper", source: "USAGEPAGE(GENERICDESKTOP)", data: []byte{0x05, 0x01}},
		{name: "usagepage_spaced", source: "  UsagePage  (  GenericDesktop  )  ", data: []byte{0x05, 0x01}},
		{name: "usagepage_lf", source: "\nUsagePage\n(\nGenericDesktop\n)\n", data: []byte{0x05, 0x01}},
		{name: "usagepage_cr", source: "\rUsagePage\r(\nGenericDesktop\r)\r", data: []byte{0x05, 0x01}},
		{name: "usagepage_tab", source: "\tUsagePage\t(\nGenericDesktop\t)\t", data: []byte{0x05, 0x01}},
	})
}

func TestCompileArguments(t *testing.T) {
	runVectors(t, []vector{
		{name: "numeric", source: "UsagePage(1)", data: []byte{0x05, 0x01}},
		{name: "hex", source: "UsagePage(0x1)", data: []byte{0x05, 0x01}},
		{name: "delimiter_pair", source: "Delimiter(Open)Delimiter(Close)", data: []byte{0xA9, 0x01, 0xA9, 0x00}},
		{name: "delimiter_pair_space", source: "Delimiter(Open) Delimiter(Close)", data: []byte{0xA9, 0x01, 0xA9, 0x00}},
		{name: "delimiter_pair_lf", source: "Delimiter(Open)\nDelimiter(Close)", data: []byte{0xA9, 0x01, 0xA9, 0x00}},
		{name: "delimiter_pair_tab", source: "Delimiter(Open)\tDelimiter(Close)", data: []byte{0xA9, 0x01, 0xA9, 0x00}},
		{name: "delimiter_pair_cr", source: "Delimiter(Open)\rDelimiter(Close)", data: []byte{0xA9, 0x01, 0xA9, 0x00}},
		{name: "delimiter_two_names", source: "Delimiter(Open Open)\rDelimiter(Close)", kind: report.ErrUnexpectedToken, errorPos: 15},
		{name: "delimiter_unknown", source: "Delimiter(Open)\nDelimiter(Unknown)", kind: report.ErrInvalidArgumentName, errorPos: 33, data: []byte{0xA9, 0x01}},
		{name: "delimiter_bad_numeric", source: "Delimiter(2)", kind: report.ErrUnexpectedDelimiterValue, errorPos: 11},
		{name: "usagepage_negative", source: "UsagePage(-1)", kind: report.ErrNegativeNumberNotAllowed, errorPos: 10},
		{name: "usagepage_unterminated", source: "UsagePage(1", kind: report.ErrUnexpectedEndOfSource, errorPos: 11},
		{name: "usagepage_hex_unterminated", source: "UsagePage(0x", kind: report.ErrUnexpectedEndOfSource, errorPos: 12},
		{name: "usagepage_hex_digit_unterminated", source: "UsagePage(0x1", kind: report.ErrUnexpectedEndOfSource, errorPos: 13},
		{name: "usagepage_bad_hex", source: "UsagePage(0xZ)", kind: report.ErrInvalidHexValue, errorPos: 12},
		{name: "usagepage_bad_hex2", source: "UsagePage(0xAZ)", kind: report.ErrInvalidHexValue, errorPos: 13},
		{name: "usagepage_bad_name_char", source: "UsagePage(a$)", kind: report.ErrUnexpectedArgumentNameCharacter, errorPos: 11},
		{name: "logicalmax_1", source: "LogicalMaximum(1)", data: []byte{0x25, 0x01}},
		{name: "logicalmax_neg1", source: "LogicalMaximum(-1)", data: []byte{0x25, 0xFF}},
		{name: "logicalmax_127", source: "LogicalMaximum(127)", data: []byte{0x25, 0x7F}},
		{name: "logicalmax_neg128", source: "LogicalMaximum(-128)", data: []byte{0x25, 0x80}},
		{name: "logicalmax_128", source: "LogicalMaximum(128)", data: []byte{0x26, 0x80, 0x00}},
		{name: "logicalmax_neg129", source: "LogicalMaximum(-129)", data: []byte{0x26, 0x7F, 0xFF}},
		{name: "logicalmax_32767", source: "LogicalMaximum(32767)", data: []byte{0x26, 0xFF, 0x7F}},
		{name: "logicalmax_neg32768", source: "LogicalMaximum(-32768)", data: []byte{0x26, 0x00, 0x80}},
		{name: "logicalmax_32768", source: "LogicalMaximum(32768)", data: []byte{0x27, 0x00, 0x80, 0x00, 0x00}},
		{name: "logicalmax_neg32769", source: "LogicalMaximum(-32769)", data: []byte{0x27, 0xFF, 0x7F, 0xFF, 0xFF}},
		{name: "logicalmax_int32max", source: "LogicalMaximum(2147483647)", data: []byte{0x27, 0xFF, 0xFF, 0xFF, 0x7F}},
		{name: "logicalmax_hex_int32max", source: "LogicalMaximum(0x7FFFFFFF)", data: []byte{0x27, 0xFF, 0xFF, 0xFF, 0x7F}},
		{name: "logicalmax_hex_int32max_lower", source: "LogicalMaximum(0x7fffffff)", data: []byte{0x27, 0xFF, 0xFF, 0xFF, 0x7F}},
		{name: "logicalmax_int32min", source: "LogicalMaximum(-2147483648)", data: []byte{0x27, 0x00, 0x00, 0x00, 0x80}},
		{name: "logicalmax_overflow", source: "LogicalMaximum(2147483648)", kind: report.ErrNumberOverflow, errorPos: 25},
		{name: "logicalmax_hex_overflow", source: "LogicalMaximum(0x80000000)", kind: report.ErrNumberOverflow, errorPos: 25},
		{name: "logicalmax_neg_overflow", source: "LogicalMaximum(-2147483649)", kind: report.ErrNumberOverflow, errorPos: 26},
		{name: "logicalmax_param_out_of_range", source: "LogicalMaximum({arg4})", kind: report.ErrParameterValueOutOfRange, errorPos: 20},
		{name: "stringmax_overflow", source: "StringMaximum(4294967296)", kind: report.ErrNumberOverflow, errorPos: 23},
		{name: "stringmax_overflow_long", source: "StringMaximum(42949672950)", kind: report.ErrNumberOverflow, errorPos: 24},
		{name: "stringmax_hex_overflow", source: "StringMaximum(0x100000000)", kind: report.ErrNumberOverflow, errorPos: 24},
		{name: "stringmax_bad_numeric", source: "StringMaximum(10z)", kind: report.ErrInvalidNumericValue, errorPos: 16},
		{name: "reportid", source: "ReportId(1)", data: []byte{0x85, 0x01}},
		{name: "reportid_param", source: "ReportId({arg4})", data: []byte{0x87, 0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "reportid_unterminated", source: "ReportId({arg4", kind: report.ErrUnexpectedEndOfSource, errorPos: 14},
		{name: "reportid_negative", source: "ReportId(-1)", kind: report.ErrNegativeNumberNotAllowed, errorPos: 9},
		{name: "usagepage_again", source: "UsagePage(1)", data: []byte{0x05, 0x01}},
		{name: "usagepage_out_of_range", source: "UsagePage(0x10000)", kind: report.ErrArgumentValueOutOfRange, errorPos: 17},
		{name: "usagepage_param_out_of_range", source: "UsagePage({arg4})", kind: report.ErrArgumentValueOutOfRange, errorPos: 16},
		{name: "usagepage_param_value_out_of_range", source: "UsagePage({ arg5 })", kind: report.ErrParameterValueOutOfRange, errorPos: 17},
		{name: "usage_out_of_range", source: "UsagePage(GenericDesktop)\nUsage(0x10000)", kind: report.ErrArgumentValueOutOfRange, errorPos: 39, data: []byte{0x05, 0x01}},
		{name: "usage_param_out_of_range", source: "UsagePage(GenericDesktop)\nUsage({arg4})", kind: report.ErrArgumentValueOutOfRange, errorPos: 38, data: []byte{0x05, 0x01}},
		{name: "usagemin_out_of_range", source: "UsagePage(GenericDesktop)\nUsageMinimum(0x10000)", kind: report.ErrArgumentValueOutOfRange, errorPos: 46, data: []byte{0x05, 0x01}},
		{name: "usagemin_param_out_of_range", source: "UsagePage(GenericDesktop)\nUsageMinimum({arg4})", kind: report.ErrArgumentValueOutOfRange, errorPos: 45, data: []byte{0x05, 0x01}},
		{name: "usagemax_out_of_range", source: "UsagePage(GenericDesktop)\nUsageMaximum(0x10000)", kind: report.ErrArgumentValueOutOfRange, errorPos: 46, data: []byte{0x05, 0x01}},
		{name: "usagemax_param_out_of_range", source: "UsagePage(GenericDesktop)\nUsageMaximum({arg4})", kind: report.ErrArgumentValueOutOfRange, errorPos: 45, data: []byte{0x05, 0x01}},
		{name: "usagepage_space_in_name", source: "UsagePage(Generic Desktop)", kind: report.ErrInvalidArgumentName, errorPos: 17},
		{name: "usagepage_lf_in_name", source: "UsagePage(Generic\nDesktop)", kind: report.ErrInvalidArgumentName, errorPos: 17},
	})
}

func TestCompileIndexedArguments(t *testing.T) {
	runVectors(t, []vector{
		{name: "no_button_pressed", source: "UsagePage(Button)\nUsage(NoButtonPressed)", data: []byte{0x05, 0x09, 0x09, 0x00}},
		{name: "button1", source: "UsagePage(Button)\nUsage(Button1)", data: []byte{0x05, 0x09, 0x09, 0x01}},
		{name: "button65535", source: "UsagePage(Button)\nUsage(Button65535)", data: []byte{0x05, 0x09, 0x0A, 0xFF, 0xFF}},
		{name: "enum0", source: "UsagePage(MonitorEnumeratedValues)\nUsage(Enum0)", data: []byte{0x05, 0x81, 0x09, 0x00}},
		{name: "button65536_out_of_range", source: "UsagePage(Button)\nUsage(Button65536)", kind: report.ErrArgumentIndexOutOfRange, errorPos: 35, data: []byte{0x05, 0x09}},
		{name: "button01_leading_zero", source: "UsagePage(Button)\nUsage(Button01)", kind: report.ErrInvalidArgumentName, errorPos: 32, data: []byte{0x05, 0x09}},
		{name: "button1x_bad_char", source: "UsagePage(Button)\nUsage(Button1x)", kind: report.ErrUnexpectedArgumentNameCharacter, errorPos: 32, data: []byte{0x05, 0x09}},
		{name: "butto1_bad_prefix", source: "UsagePage(Button)\nUsage(Butto1)", kind: report.ErrInvalidArgumentName, errorPos: 30, data: []byte{0x05, 0x09}},
		{name: "button_index_overflow", source: "UsagePage(Button)\nUsage(Button4294967295)", kind: report.ErrArgumentIndexOutOfRange, errorPos: 40, data: []byte{0x05, 0x09}},
		{name: "button_index_overflow2", source: "UsagePage(Button)\nUsage(Button4294967296)", kind: report.ErrArgumentIndexOutOfRange, errorPos: 40, data: []byte{0x05, 0x09}},
	})
}

func TestCompileMultiValueArguments(t *testing.T) {
	runVectors(t, []vector{
		{name: "numeric_zero", source: "Input(0)", data: []byte{0x81, 0x00}},
		{name: "cnst", source: "Input(Cnst)", data: []byte{0x81, 0x01}},
		{name: "cnst_lower", source: "Input(cnst)", data: []byte{0x81, 0x01}},
		{name: "cnst_upper", source: "Input(CNST)", data: []byte{0x81, 0x01}},
		{name: "cnst_then_data", source: "Input(Cnst, Data)", data: []byte{0x81, 0x00}},
		{name: "data_then_cnst", source: "Input(Data, Cnst)", data: []byte{0x81, 0x01}},
		{name: "numeric_combo", source: "Input(0,1)", data: []byte{0x81, 0x01}},
		{name: "numeric_triple", source: "Input(2, 1, 256)", data: []byte{0x82, 0x03, 0x01}},
		{name: "param_and_hex_and_named", source: "Input(2, {arg1}, 0x100, Rel)", data: []byte{0x82, 0x07, 0x01}},
		{name: "param_and_hex_and_data", source: "Input(2, {arg1}, 0x100, Data)", data: []byte{0x82, 0x02, 0x01}},
		{name: "input_all_flags", source: "Input(Cnst, Var, Rel, Warp, NLin, NPrf, Null, Buf)", data: []byte{0x82, 0x7F, 0x01}},
		{name: "output_all_flags", source: "Output(Cnst, Var, Rel, Warp, NLin, NPrf, Null, Vol, Buf)", data: []byte{0x92, 0xFF, 0x01}},
		{name: "feature_all_flags", source: "Feature(Cnst, Var, Rel, Warp, NLin, NPrf, Null, Vol, Buf)", data: []byte{0xB2, 0xFF, 0x01}},
		{name: "space_separated_bad", source: "Input(0 1)", kind: report.ErrUnexpectedToken, errorPos: 8},
		{name: "output_only_flag", source: "Input(NVol)", kind: report.ErrInvalidArgumentName, errorPos: 10},
		{name: "unterminated_flag", source: "Input(Null", kind: report.ErrUnexpectedEndOfSource, errorPos: 10},
	})
}

func TestCompileUnitExponent(t *testing.T) {
	runVectors(t, []vector{
		{name: "zero", source: "UnitExponent(0)", data: []byte{0x55, 0x00}},
		{name: "one", source: "UnitExponent(1)", data: []byte{0x55, 0x01}},
		{name: "seven", source: "UnitExponent(7)", data: []byte{0x55, 0x07}},
		{name: "eight_out_of_range", source: "UnitExponent(8)", kind: report.ErrArgumentValueOutOfRange, errorPos: 14},
		{name: "neg_one", source: "UnitExponent(-1)", data: []byte{0x55, 0x0F}},
		{name: "neg_eight", source: "UnitExponent(-8)", data: []byte{0x55, 0x08}},
		{name: "neg_nine_out_of_range", source: "UnitExponent(-9)", kind: report.ErrArgumentValueOutOfRange, errorPos: 15},
		{name: "bad_name", source: "UnitExponent(x1)", kind: report.ErrInvalidArgumentName, errorPos: 15},
		// -0 is rejected here the same way Unit(None(Length^-0)) is
		// rejected in TestCompileUnit's exponent_neg_zero vector: a
		// negative sign on a zero exponent has no valid encoding.
		{name: "neg_zero", source: "UnitExponent(-0)", kind: report.ErrInvalidUnitExponent, errorPos: 15},
	})
}

func TestCompileUnit(t *testing.T) {
	runVectors(t, []vector{
		{name: "numeric_1", source: "Unit(1)", data: []byte{0x65, 0x01}},
		{name: "hex_1", source: "Unit(0x1)", data: []byte{0x65, 0x01}},
		{name: "param", source: "Unit({arg1})", data: []byte{0x65, 0x01}},
		{name: "none", source: "Unit(None)", data: []byte{0x65, 0x00}},
		{name: "silin", source: "Unit(SiLin)", data: []byte{0x65, 0x01}},
		{name: "none_parens", source: "Unit(None())", data: []byte{0x65, 0x00}},
		{name: "silin_parens", source: "Unit(SiLin())", data: []byte{0x65, 0x01}},
		{name: "sirot_parens", source: "Unit(SiRot())", data: []byte{0x65, 0x02}},
		{name: "englin_parens", source: "Unit(ENGLIN())", data: []byte{0x65, 0x03}},
		{name: "engrot_parens", source: "Unit(engrot())", data: []byte{0x65, 0x04}},
		{name: "none_length", source: "Unit(None(Length))", data: []byte{0x65, 0x10}},
		{name: "silin_length", source: "Unit(SiLin(Length))", data: []byte{0x65, 0x11}},
		{name: "silin_length_spaced", source: "Unit  (  SiLin  (  Length  )  )  ", data: []byte{0x65, 0x11}},
		{name: "silin_length_mass", source: "Unit(SiLin(Length Mass))", data: []byte{0x66, 0x11, 0x01}},
		{name: "silin_length1_mass1", source: "Unit(SiLin(Length^1Mass^1))", data: []byte{0x66, 0x11, 0x01}},
		{name: "silin_length_mass1", source: "Unit(SiLin(Length Mass^1))", data: []byte{0x66, 0x11, 0x01}},
		{name: "silin_length1_mass", source: "Unit(SiLin(Length^1 Mass))", data: []byte{0x66, 0x11, 0x01}},
		{name: "silin_length0_mass", source: "Unit(SiLin(Length^0 Mass))", data: []byte{0x66, 0x01, 0x01}},
		{name: "silin_length_mass0", source: "Unit(SiLin(Length Mass^0))", data: []byte{0x65, 0x11}},
		{name: "silin_length_neg8_mass7", source: "Unit(SiLin(Length^-8Mass^7))", data: []byte{0x66, 0x81, 0x07}},
		{name: "silin_length7_mass_neg1", source: "Unit(SiLin(Length^7Mass^-1))", data: []byte{0x66, 0x71, 0x0F}},
		{name: "silin_temp3", source: "Unit(SiLin(Temp^3))", data: []byte{0x67, 0x01, 0x00, 0x03, 0x00}},
		{name: "silin_all_dimensions", source: "Unit(SiLin(Length^2Mass^3Time^4temp^5CURRENT^6luminouS^7))", data: []byte{0x67, 0x21, 0x43, 0x65, 0x07}},
		{name: "silin_all_dimensions_reversed", source: "Unit(SiLin(luminouS^7CURRENT^6temp^5Time^4Mass^3Length^2))", data: []byte{0x67, 0x21, 0x43, 0x65, 0x07}},
		{name: "empty_parens", source: "Unit(())", kind: report.ErrUnexpectedArgumentNameCharacter, errorPos: 5},
		{name: "no_args", source: "Unit()", kind: report.ErrMissingArgument, errorPos: 5},
		{name: "unknown_system", source: "Unit(Unknown())", kind: report.ErrInvalidUnitSystemName, errorPos: 12},
		{name: "bad_dimension_char", source: "Unit(None(Length$))", kind: report.ErrUnexpectedUnitNameCharacter, errorPos: 16},
		{name: "unknown_dimension", source: "Unit(None(LengthX))", kind: report.ErrInvalidUnitName, errorPos: 17},
		{name: "caret_no_name", source: "Unit(None(^1))", kind: report.ErrUnexpectedUnitNameCharacter, errorPos: 10},
		{name: "digit_no_name", source: "Unit(None(1))", kind: report.ErrUnexpectedUnitNameCharacter, errorPos: 10},
		{name: "dash_no_name", source: "Unit(None(-1))", kind: report.ErrUnexpectedUnitNameCharacter, errorPos: 10},
		{name: "trailing_dash_exponent", source: "Unit(None(Length^1-))", kind: report.ErrInvalidUnitExponent, errorPos: 18},
		{name: "bad_exponent_char", source: "Unit(None(Length^x))", kind: report.ErrInvalidUnitExponent, errorPos: 17},
		{name: "exponent_too_large", source: "Unit(None(Length^8))", kind: report.ErrInvalidUnitExponent, errorPos: 18},
		{name: "exponent_too_small", source: "Unit(None(Length^-9))", kind: report.ErrInvalidUnitExponent, errorPos: 19},
		{name: "exponent_neg_zero", source: "Unit(None(Length^-0))", kind: report.ErrInvalidUnitExponent, errorPos: 19},
		{name: "system_dollar", source: "Unit(None$())", kind: report.ErrUnexpectedArgumentNameCharacter, errorPos: 9},
		{name: "two_system_names", source: "Unit(None None)", kind: report.ErrInvalidUnitName, errorPos: 14},
		{name: "system_then_bare_name", source: "Unit(None() None)", kind: report.ErrUnexpectedToken, errorPos: 12},
		{name: "unterminated", source: "Unit(", kind: report.ErrUnexpectedEndOfSource, errorPos: 5},
		{name: "unterminated_system", source: "Unit(None(", kind: report.ErrUnexpectedEndOfSource, errorPos: 10},
		{name: "unterminated_system_parens", source: "Unit(None()", kind: report.ErrUnexpectedEndOfSource, errorPos: 11},
	})
}

func TestCompileSemanticErrors(t *testing.T) {
	runVectors(t, []vector{
		{name: "usagepage_missing_arg", source: "UsagePage", kind: report.ErrMissingArgument, errorPos: 9},
		{name: "usagepage_missing_arg_space", source: "UsagePage ", kind: report.ErrMissingArgument, errorPos: 9},
		{name: "usage_missing_arg", source: "UsagePage(GenericDesktop)\nUsage", kind: report.ErrMissingArgument, errorPos: 31, data: []byte{0x05, 0x01}},
		{name: "usage_missing_arg_space", source: "UsagePage(GenericDesktop)\nUsage ", kind: report.ErrMissingArgument, errorPos: 31, data: []byte{0x05, 0x01}},
		{name: "bare_usage_missing_arg", source: "Usage", kind: report.ErrMissingArgument, errorPos: 5},
		{name: "bare_usage_missing_arg_space", source: "Usage ", kind: report.ErrMissingArgument, errorPos: 5},
		{name: "usage_without_usagepage", source: "Usage(Pointer)", kind: report.ErrMissingUsagePage, errorPos: 13},
		{name: "collection_missing_usage", source: "Collection", kind: report.ErrMissingUsageForCollection, errorPos: 10},
		{name: "collection_app_missing_usage", source: "Collection(Application)", kind: report.ErrMissingUsageForCollection, errorPos: 10},
		{name: "endcollection_unexpected", source: "EndCollection", kind: report.ErrUnexpectedEndCollection, errorPos: 13},
		{name: "endcollection_unexpected_space", source: "EndCollection ", kind: report.ErrUnexpectedEndCollection, errorPos: 13},
		{name: "usagepage_numeric_usage_numeric", source: "UsagePage(1)\nUsage(1)", data: []byte{0x05, 0x01, 0x09, 0x01}},
		{name: "usagepage_hex_usage_hex", source: "UsagePage(0x1)\nUsage(0x1)", data: []byte{0x05, 0x01, 0x09, 0x01}},
		{name: "usagepage_param_usage_param", source: "UsagePage({arg1})\nUsage({arg1})", data: []byte{0x05, 0x01, 0x09, 0x01}},
		{name: "usagepage_numeric_usage_named", source: "UsagePage(1)\nUsage(Pointer)", kind: report.ErrMissingNamedUsagePage, errorPos: 26, data: []byte{0x05, 0x01}},
		{name: "usagepage_hex_usage_named", source: "UsagePage(0x1)\nUsage(Pointer)", kind: report.ErrMissingNamedUsagePage, errorPos: 28, data: []byte{0x05, 0x01}},
		{name: "usagepage_param_usage_named", source: "UsagePage({arg1})\nUsage(Pointer)", kind: report.ErrMissingNamedUsagePage, errorPos: 31, data: []byte{0x05, 0x01}},
		{name: "collection_missing_arg", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection", kind: report.ErrMissingArgument, errorPos: 51, data: []byte{0x05, 0x01, 0x09, 0x01}},
		{name: "collection_missing_end", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)", kind: report.ErrMissingEndCollection, errorPos: 64, data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01}},
		{name: "collection_missing_end_space", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application) ", kind: report.ErrMissingEndCollection, errorPos: 65, data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01}},
		{name: "missing_reportcount", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nEndCollection", kind: report.ErrMissingReportCount, errorPos: 92, data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01, 0x75, 0x01}},
		{name: "missing_reportcount_space", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nEndCollection ", kind: report.ErrMissingReportCount, errorPos: 92, data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01, 0x75, 0x01}},
		{name: "missing_reportsize", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportCount(1)\nEndCollection", kind: report.ErrMissingReportSize, errorPos: 93, data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01, 0x95, 0x01}},
		{name: "missing_reportsize_space", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportCount(1)\nEndCollection ", kind: report.ErrMissingReportSize, errorPos: 93, data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01, 0x95, 0x01}},
		{name: "complete_collection", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nReportCount(1)\nEndCollection", data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01, 0x75, 0x01, 0x95, 0x01, 0xC0}},
		{name: "complete_collection_space", source: "UsagePage(GenericDesktop)\nUsage(Pointer)\nCollection(Application)\nReportSize(1)\nReportCount(1)\nEndCollection ", data: []byte{0x05, 0x01, 0x09, 0x01, 0xA1, 0x01, 0x75, 0x01, 0x95, 0x01, 0xC0}},
		{name: "delimiter_numeric_close_unopened", source: "Delimiter(0)", kind: report.ErrUnexpectedDelimiterClose, errorPos: 11},
		{name: "delimiter_named_close_unopened", source: "Delimiter(Close)", kind: report.ErrUnexpectedDelimiterClose, errorPos: 15},
		{name: "delimiter_open_unclosed", source: "Delimiter(Open)", kind: report.ErrMissingDelimiterClose, errorPos: 15, data: []byte{0xA9, 0x01}},
		{name: "delimiter_open_unclosed_space", source: "Delimiter(Open) ", kind: report.ErrMissingDelimiterClose, errorPos: 16, data: []byte{0xA9, 0x01}},
	})
}

func TestCompileMiscellaneous(t *testing.T) {
	runVectors(t, []vector{
		{name: "empty_source", source: "", kind: report.ErrNone},
		{name: "dollar", source: "$", kind: report.ErrUnexpectedToken, errorPos: 0},
	})
}
