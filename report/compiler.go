package report

// stateFlags tracks which of the compiler's parsing modes are active.
// They are bits rather than an exclusive state precisely because more
// than one can be true together - for example WITHIN_ARG_LIST stays
// set for the whole "Unit(SiLin(...))" argument while WITHIN_UNIT_SYS,
// WITHIN_UNIT_DESC, WITHIN_UNIT and WITHIN_UNIT_EXP switch in and out
// underneath it as the unit sub-grammar is parsed.
type stateFlags uint32

const (
	stStart      stateFlags = 0
	stComment    stateFlags = 1 << 0
	stItem       stateFlags = 1 << 1
	stArgList    stateFlags = 1 << 2
	stArg        stateFlags = 1 << 3
	stParam      stateFlags = 1 << 4
	stHexLit     stateFlags = 1 << 5
	stNumLit     stateFlags = 1 << 6
	stUnitSys    stateFlags = 1 << 7
	stUnitDesc   stateFlags = 1 << 8
	stUnit       stateFlags = 1 << 9
	stUnitExp    stateFlags = 1 << 10
)

func (f stateFlags) has(bit stateFlags) bool { return f&bit != 0 }

// compiler holds the mutable state of a single compile pass. A fresh
// compiler is created for every call to Compile/CompiledSize/CompileError;
// none of its state is reused across calls.
type compiler struct {
	src    []byte
	out    Sink
	params ParamProvider

	flags stateFlags

	itemStart, itemLen   int
	argStart, argLen     int
	paramStart, paramLen int

	item    uint32
	arg     uint32
	hasArg  bool
	multiArg bool

	negLit bool
	lit    uint64

	colLevel     int
	delimLevel   int
	usageAtLevel int
	reportSizes  int
	reportCounts int

	usagePage    *Encoding
	hasUsagePage bool

	encMap  *Encoding
	encUnit *Encoding
}

func newCompiler(src []byte, out Sink, params ParamProvider) *compiler {
	if params == nil {
		params = noParams{}
	}
	return &compiler{
		src:          src,
		out:          out,
		params:       params,
		usageAtLevel: -1,
	}
}

// fail builds a Diagnostic anchored at byte offset pos.
func (c *compiler) fail(pos int, kind ErrorKind) Diagnostic {
	return newDiagnostic(c.src, pos, kind)
}

func (c *compiler) itemToken() string  { return string(c.src[c.itemStart : c.itemStart+c.itemLen]) }
func (c *compiler) argToken() string   { return string(c.src[c.argStart : c.argStart+c.argLen]) }
func (c *compiler) paramToken() string { return string(c.src[c.paramStart : c.paramStart+c.paramLen]) }

// run executes the byte-at-a-time state machine over c.src, writing
// compiled bytes to c.out. It returns the zero Diagnostic on success.
func (c *compiler) run() Diagnostic {
	n := 0
	for n < len(c.src) {
		next, diag, failed := c.step(n)
		if failed {
			return diag
		}
		n = next
	}
	return c.finish(n)
}

// step processes the byte at position n and returns the position to
// resume at: usually n+1 (byte consumed) or n (reprocess the same byte
// under the new state), matching the "continue" jumps of the original
// state machine; a few transitions consume more than one byte at once,
// such as n+2 past the "0x" prefix of a hex literal.
func (c *compiler) step(n int) (int, Diagnostic, bool) {
	ch := c.src[n]

	switch {
	case c.flags == stStart:
		return c.stepStart(n, ch)
	case c.flags.has(stComment):
		return c.stepComment(n, ch)
	case c.flags.has(stParam):
		return c.stepParam(n, ch)
	case c.flags.has(stItem):
		return c.stepItem(n, ch)
	case c.flags.has(stArg) && c.flags.has(stUnitDesc) && c.flags.has(stUnit):
		return c.stepUnitName(n, ch)
	case c.flags.has(stArg) && c.flags.has(stUnitDesc) && c.flags.has(stUnitExp):
		return c.stepUnitExponentName(n, ch)
	case c.flags.has(stArg) && c.flags.has(stUnitDesc):
		return c.stepUnitDesc(n, ch)
	case c.flags.has(stArg):
		return c.stepArg(n, ch)
	case c.flags.has(stHexLit):
		return c.stepHexLit(n, ch)
	case c.flags.has(stNumLit):
		return c.stepNumLit(n, ch)
	case c.flags.has(stArgList):
		return c.stepArgList(n, ch)
	default:
		return 0, c.fail(n, ErrInternal), true
	}
}

// --- HID_START -----------------------------------------------------

func (c *compiler) stepStart(n int, ch byte) (int, Diagnostic, bool) {
	switch {
	case isItemChar(ch):
		c.flags = stItem
		c.itemStart, c.itemLen = n, 1
		return n + 1, Diagnostic{}, false
	case ch == '{':
		c.flags = stParam
		c.paramStart, c.paramLen = n+1, 0
		return n + 1, Diagnostic{}, false
	case ch == '0' && n+1 < len(c.src) && c.src[n+1] == 'x':
		if n+2 >= len(c.src) {
			return 0, c.fail(n+2, ErrUnexpectedEndOfSource), true
		}
		if !isHexDigit(c.src[n+2]) {
			return 0, c.fail(n+2, ErrInvalidHexValue), true
		}
		c.flags = stHexLit
		c.lit = 0
		return n + 2, Diagnostic{}, false
	case isDigit(ch):
		c.flags = stNumLit
		c.lit = 0
		c.negLit = false
		return n, Diagnostic{}, false
	case ch == '-':
		return 0, c.fail(n, ErrNegativeNumberNotAllowed), true
	case isComment(ch):
		c.flags = stComment
		return n + 1, Diagnostic{}, false
	case isWhitespace(ch):
		return n + 1, Diagnostic{}, false
	default:
		return 0, c.fail(n, ErrUnexpectedToken), true
	}
}

func (c *compiler) stepComment(n int, ch byte) (int, Diagnostic, bool) {
	if ch == '\r' || ch == '\n' {
		c.flags = stStart
	}
	return n + 1, Diagnostic{}, false
}

// --- {param} ---------------------------------------------------------

func (c *compiler) stepParam(n int, ch byte) (int, Diagnostic, bool) {
	if ch != '}' {
		c.paramLen++
		return n + 1, Diagnostic{}, false
	}
	value, ok := c.params.Find(c.paramToken())
	if !ok {
		return 0, c.fail(n, ErrExpectedValidParameterName), true
	}
	if c.flags.has(stArgList) {
		if c.encMap != nil && tableKind(c.encMap.Child) == KindNumSigned {
			if value < -0x80000000 || value > 0x7FFFFFFF {
				return 0, c.fail(n, ErrParameterValueOutOfRange), true
			}
		} else if value < 0 || value > 0xFFFFFFFF {
			return 0, c.fail(n, ErrParameterValueOutOfRange), true
		}
		c.arg |= uint32(value)
		c.hasArg = true
		c.flags &^= stParam
		return n + 1, Diagnostic{}, false
	}
	if value < 0 {
		return 0, c.fail(n, ErrNegativeNumberNotAllowed), true
	}
	if value > 0xFFFFFFFF {
		return 0, c.fail(n, ErrParameterValueOutOfRange), true
	}
	if !encodeUnsigned(c.out, uint32(value)) {
		return 0, c.fail(n, ErrUnexpectedEndOfSource), true
	}
	c.flags = stStart
	return n + 1, Diagnostic{}, false
}

// --- item name -------------------------------------------------------

func (c *compiler) stepItem(n int, ch byte) (int, Diagnostic, bool) {
	if isItemChar(ch) {
		c.itemLen++
		return n + 1, Diagnostic{}, false
	}
	if !isWhitespace(ch) && ch != '(' {
		return 0, c.fail(n, ErrUnexpectedItemNameCharacter), true
	}

	token := c.itemToken()
	enc, kind, found := resolve(&itemTable, token)
	if kind != ErrNone {
		return 0, c.fail(n, kind), true
	}
	if !found {
		return 0, c.fail(n, ErrInvalidItemName), true
	}
	c.encMap = &enc

	if enc.Child != nil && tableKind(enc.Child) == KindCollection {
		if c.usageAtLevel != c.colLevel {
			return 0, c.fail(n, ErrMissingUsageForCollection), true
		}
		c.colLevel++
	}
	if enc.Child != nil && tableKind(enc.Child) == KindEndCollection {
		if c.colLevel <= 0 {
			return 0, c.fail(n, ErrUnexpectedEndCollection), true
		}
		if c.reportSizes < c.reportCounts {
			return 0, c.fail(n, ErrMissingReportSize), true
		}
		if c.reportCounts < c.reportSizes {
			return 0, c.fail(n, ErrMissingReportCount), true
		}
		c.colLevel--
		c.usageAtLevel--
	}
	if len(token) == len("Usage") && equalFoldASCII(token, "Usage") {
		c.usageAtLevel = c.colLevel
	}

	// skip extra whitespace before checking for '('
	m := n
	for m < len(c.src) && isWhitespace(c.src[m]) {
		m++
	}
	if m < len(c.src) && c.src[m] == '(' {
		if enc.Child == nil {
			return 0, c.fail(m, ErrItemHasNoArguments), true
		}
		c.flags = stArgList
		if tableKind(enc.Child) == KindUnitSystem {
			c.flags |= stUnitSys
		}
		c.item = enc.Value
		c.arg = 0
		c.hasArg = false
		c.multiArg = tableKind(enc.Child) == KindFlags
		return m + 1, Diagnostic{}, false
	}

	if requiresNamedArgument(enc.Child) {
		return 0, c.fail(n, ErrMissingArgument), true
	}
	if !encodeUnsigned(c.out, enc.Value) {
		return 0, c.fail(n, ErrUnexpectedEndOfSource), true
	}
	c.flags = stStart
	return n, Diagnostic{}, false
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// --- unit sub-grammar --------------------------------------------------

func (c *compiler) stepUnitName(n int, ch byte) (int, Diagnostic, bool) {
	if isAlpha(ch) {
		c.argLen++
		return n + 1, Diagnostic{}, false
	}
	if isWhitespace(ch) || ch == ')' || ch == '^' {
		enc, kind, found := resolve(c.encMap.Child, c.argToken())
		if kind != ErrNone {
			return 0, c.fail(n, kind), true
		}
		if !found {
			return 0, c.fail(n, ErrInvalidUnitName), true
		}
		c.encUnit = &enc
		if ch == '^' {
			c.flags = (c.flags &^ stUnit) | stUnitExp
			c.argStart, c.argLen = n+1, 0
			return n + 1, Diagnostic{}, false
		}
		offset := 4 * enc.Value
		clearNibble(&c.arg, offset)
		setNibble(&c.arg, offset, 1)
		c.flags &^= stUnit
		return n, Diagnostic{}, false
	}
	return 0, c.fail(n, ErrUnexpectedUnitNameCharacter), true
}

func (c *compiler) stepUnitExponentName(n int, ch byte) (int, Diagnostic, bool) {
	if ch == '-' {
		if c.argLen != 0 {
			return 0, c.fail(n, ErrInvalidUnitExponent), true
		}
		c.argLen++
		return n + 1, Diagnostic{}, false
	}
	if isDigit(ch) {
		c.argLen++
		return n + 1, Diagnostic{}, false
	}
	if isTerminator(ch, false) || isAlpha(ch) {
		enc, kind, found := resolve(c.encUnit.Child, c.argToken())
		if kind != ErrNone {
			return 0, c.fail(n, kind), true
		}
		if !found {
			return 0, c.fail(n, ErrInvalidUnitExponent), true
		}
		offset := 4 * c.encUnit.Value
		clearNibble(&c.arg, offset)
		setNibble(&c.arg, offset, enc.Value)
		c.flags &^= stUnitExp
		return n, Diagnostic{}, false
	}
	return 0, c.fail(n, ErrInvalidUnitExponent), true
}

func (c *compiler) stepUnitDesc(n int, ch byte) (int, Diagnostic, bool) {
	if isAlpha(ch) {
		c.flags |= stUnit
		c.argStart, c.argLen = n, 1
		return n + 1, Diagnostic{}, false
	}
	if ch == ')' {
		c.flags &^= stArg | stUnitSys | stUnitDesc
		return n + 1, Diagnostic{}, false
	}
	if isWhitespace(ch) {
		return n + 1, Diagnostic{}, false
	}
	return 0, c.fail(n, ErrUnexpectedUnitNameCharacter), true
}

func clearNibble(v *uint32, bitOffset uint32) {
	*v &^= 0xF << bitOffset
}
func setNibble(v *uint32, bitOffset, value uint32) {
	*v |= (value & 0xF) << bitOffset
}

// --- generic argument name -------------------------------------------

func (c *compiler) stepArg(n int, ch byte) (int, Diagnostic, bool) {
	if isArgChar(ch) {
		c.argLen++
		return n + 1, Diagnostic{}, false
	}
	if c.flags.has(stUnitSys) {
		if c.hasArg {
			return 0, c.fail(n, ErrInternal), true
		}
		if isWhitespace(ch) || ch == '(' {
			m := n
			for m < len(c.src) && isWhitespace(c.src[m]) {
				m++
			}
			hasParen := m < len(c.src) && c.src[m] == '('
			enc, kind, found := resolve(c.encMap.Child, c.argToken())
			if kind != ErrNone {
				return 0, c.fail(n, kind), true
			}
			if !found {
				return 0, c.fail(n, ErrInvalidUnitSystemName), true
			}
			c.flags = stArgList | stUnitSys | stArg | stUnitDesc
			c.arg = enc.Value
			c.encMap = &enc
			c.hasArg = true
			if hasParen {
				return m + 1, Diagnostic{}, false
			}
			return n, Diagnostic{}, false
		}
		if ch == ')' {
			c.flags &^= stUnitSys
			return n, Diagnostic{}, false
		}
		return 0, c.fail(n, ErrUnexpectedArgumentNameCharacter), true
	}
	if isTerminator(ch, c.multiArg) {
		c.flags &^= stArg
		lookupTable := c.encMap.Child
		if c.encMap.Child != nil && tableKind(c.encMap.Child) == KindUsageRef {
			if c.usagePage == nil || c.usagePage.Child == nil {
				if c.hasUsagePage {
					return 0, c.fail(n, ErrMissingNamedUsagePage), true
				}
				return 0, c.fail(n, ErrMissingUsagePage), true
			}
			lookupTable = c.usagePage.Child
		}
		enc, kind, found := resolve(lookupTable, c.argToken())
		if kind != ErrNone {
			return 0, c.fail(n, kind), true
		}
		if !found {
			return 0, c.fail(n, ErrInvalidArgumentName), true
		}
		if lookupTable != nil && tableKind(lookupTable) == KindUsagePage {
			usagePageCopy := enc
			c.usagePage = &usagePageCopy
		}
		if enc.Clear {
			c.arg &^= enc.Value
		} else {
			c.arg |= enc.Value
		}
		c.hasArg = !c.multiArg || n >= len(c.src) || c.src[n] != ','
		if ch == ')' {
			return n, Diagnostic{}, false
		}
		return n + 1, Diagnostic{}, false
	}
	return 0, c.fail(n, ErrUnexpectedArgumentNameCharacter), true
}

// --- hex / decimal literal --------------------------------------------

func (c *compiler) stepHexLit(n int, ch byte) (int, Diagnostic, bool) {
	if isHexDigit(ch) {
		c.lit = (c.lit << 4) | hexVal(ch)
		if c.lit > 0xFFFFFFFF {
			return 0, c.fail(n, ErrNumberOverflow), true
		}
		return n + 1, Diagnostic{}, false
	}
	if c.flags.has(stArgList) && isTerminator(ch, c.multiArg) {
		c.flags &^= stHexLit
		if c.encMap != nil && tableKind(c.encMap.Child) == KindNumSigned && c.lit > 0x7FFFFFFF {
			return 0, c.fail(n, ErrNumberOverflow), true
		}
		c.arg |= uint32(c.lit)
		c.hasArg = !c.multiArg || n >= len(c.src) || c.src[n] != ','
		if ch == ')' {
			return n, Diagnostic{}, false
		}
		return n + 1, Diagnostic{}, false
	}
	if isWhitespace(ch) {
		if !encodeUnsigned(c.out, uint32(c.lit)) {
			return 0, c.fail(n, ErrUnexpectedEndOfSource), true
		}
		c.flags = stStart
		return n + 1, Diagnostic{}, false
	}
	return 0, c.fail(n, ErrInvalidHexValue), true
}

func (c *compiler) stepNumLit(n int, ch byte) (int, Diagnostic, bool) {
	if isDigit(ch) {
		c.lit = c.lit*10 + uint64(ch-'0')
		if c.lit > 0xFFFFFFFF {
			return 0, c.fail(n, ErrNumberOverflow), true
		}
		return n + 1, Diagnostic{}, false
	}
	if c.flags.has(stArgList) && isTerminator(ch, c.multiArg) {
		c.flags &^= stNumLit
		if c.negLit {
			if c.lit > 0x80000000 {
				return 0, c.fail(n, ErrNumberOverflow), true
			}
			if c.lit == 0 && c.encMap != nil && c.encMap.Child != nil && tableKind(c.encMap.Child) == KindUnitExponent {
				return 0, c.fail(n, ErrInvalidUnitExponent), true
			}
			c.arg |= uint32(-int64(c.lit))
			c.negLit = false
		} else {
			if c.encMap != nil && tableKind(c.encMap.Child) == KindNumSigned && c.lit > 0x7FFFFFFF {
				return 0, c.fail(n, ErrNumberOverflow), true
			}
			c.arg |= uint32(c.lit)
		}
		c.hasArg = !c.multiArg || n >= len(c.src) || c.src[n] != ','
		if ch == ')' {
			return n, Diagnostic{}, false
		}
		return n + 1, Diagnostic{}, false
	}
	if isWhitespace(ch) {
		if !encodeUnsigned(c.out, uint32(c.lit)) {
			return 0, c.fail(n, ErrUnexpectedEndOfSource), true
		}
		c.flags = stStart
		return n + 1, Diagnostic{}, false
	}
	return 0, c.fail(n, ErrInvalidNumericValue), true
}

// --- argument list ------------------------------------------------------

func (c *compiler) stepArgList(n int, ch byte) (int, Diagnostic, bool) {
	if c.hasArg {
		if ch == ')' {
			c.flags &^= stArgList | stUnitSys

			childKind := KindGeneric
			if c.encMap != nil && c.encMap.Child != nil {
				childKind = tableKind(c.encMap.Child)
			}

			switch childKind {
			case KindNumSigned:
				sArg := int32(c.arg)
				length := encodedSizeSigned(sArg)
				c.item |= encodedSizeCode(length)
				if !encodeUnsigned(c.out, c.item) || !encodeSigned(c.out, sArg) {
					return 0, c.fail(n, ErrUnexpectedEndOfSource), true
				}
			case KindUnitExponent:
				sArg := int32(c.arg)
				if sArg < -8 || sArg > 7 {
					return 0, c.fail(n, ErrArgumentValueOutOfRange), true
				}
				if !encodeUnsigned(c.out, c.item|1) || !encodeUnsigned(c.out, uint32(sArg)&0xF) {
					return 0, c.fail(n, ErrUnexpectedEndOfSource), true
				}
			default:
				switch childKind {
				case KindDelimiter:
					switch c.arg {
					case 0:
						if c.delimLevel <= 0 {
							return 0, c.fail(n, ErrUnexpectedDelimiterClose), true
						}
						c.delimLevel--
					case 1:
						c.delimLevel++
					default:
						return 0, c.fail(n, ErrUnexpectedDelimiterValue), true
					}
				case KindUsagePage, KindUsageRef:
					if c.arg > 0xFFFF {
						return 0, c.fail(n, ErrArgumentValueOutOfRange), true
					}
					if childKind == KindUsagePage {
						c.hasUsagePage = true
					}
				default:
					if c.encMap != nil && c.encMap.Value == 0x74 {
						c.reportSizes++
					} else if c.encMap != nil && c.encMap.Value == 0x94 {
						c.reportCounts++
					}
				}
				c.item |= encodedSizeCode(encodedSize(c.arg))
				if !encodeUnsigned(c.out, c.item) || !encodeUnsigned(c.out, c.arg) {
					return 0, c.fail(n, ErrUnexpectedEndOfSource), true
				}
			}
			c.multiArg = false
			c.flags = stStart
			return n + 1, Diagnostic{}, false
		}
		if c.multiArg && ch == ',' {
			c.hasArg = false
			return n + 1, Diagnostic{}, false
		}
		if !isWhitespace(ch) {
			return 0, c.fail(n, ErrUnexpectedToken), true
		}
		return n + 1, Diagnostic{}, false
	}

	switch {
	case isItemChar(ch):
		c.flags |= stArg
		c.argStart, c.argLen = n, 1
		return n + 1, Diagnostic{}, false
	case ch == '0' && n+1 < len(c.src) && c.src[n+1] == 'x':
		if n+2 >= len(c.src) {
			return 0, c.fail(n+2, ErrUnexpectedEndOfSource), true
		}
		if !isHexDigit(c.src[n+2]) {
			return 0, c.fail(n+2, ErrInvalidHexValue), true
		}
		c.flags |= stHexLit
		c.lit = 0
		return n + 2, Diagnostic{}, false
	case ch == '-':
		childKind := KindGeneric
		if c.encMap != nil && c.encMap.Child != nil {
			childKind = tableKind(c.encMap.Child)
		}
		if childKind != KindNumSigned && childKind != KindUnitExponent {
			return 0, c.fail(n, ErrNegativeNumberNotAllowed), true
		}
		c.flags |= stNumLit
		c.lit = 0
		c.negLit = true
		return n + 1, Diagnostic{}, false
	case isDigit(ch):
		c.flags |= stNumLit
		c.lit = 0
		c.negLit = false
		return n, Diagnostic{}, false
	case ch == '{':
		c.flags |= stParam
		c.paramStart, c.paramLen = n+1, 0
		return n + 1, Diagnostic{}, false
	case ch == ')':
		return 0, c.fail(n, ErrMissingArgument), true
	case isWhitespace(ch):
		return n + 1, Diagnostic{}, false
	default:
		return 0, c.fail(n, ErrUnexpectedArgumentNameCharacter), true
	}
}

// --- end of source -------------------------------------------------------

func (c *compiler) finish(n int) Diagnostic {
	if c.flags.has(stHexLit) || c.flags.has(stNumLit) {
		if c.flags == (stHexLit) || c.flags == (stNumLit) {
			if !encodeUnsigned(c.out, uint32(c.lit)) {
				return c.fail(n, ErrUnexpectedEndOfSource)
			}
		}
		c.flags &^= stHexLit | stNumLit
	}

	if c.flags.has(stItem) {
		token := c.itemToken()
		enc, kind, found := resolve(&itemTable, token)
		if kind != ErrNone {
			return c.fail(n, kind)
		}
		if !found {
			return c.fail(n, ErrInvalidItemName)
		}
		c.encMap = &enc
		if enc.Child != nil && tableKind(enc.Child) == KindCollection {
			if c.usageAtLevel != c.colLevel {
				return c.fail(n, ErrMissingUsageForCollection)
			}
			c.colLevel++
		}
		if enc.Child != nil && tableKind(enc.Child) == KindEndCollection {
			if c.colLevel <= 0 {
				return c.fail(n, ErrUnexpectedEndCollection)
			}
			if c.reportSizes < c.reportCounts {
				return c.fail(n, ErrMissingReportSize)
			}
			if c.reportCounts < c.reportSizes {
				return c.fail(n, ErrMissingReportCount)
			}
			c.colLevel--
			c.usageAtLevel--
		}
		if requiresNamedArgument(enc.Child) {
			return c.fail(n, ErrMissingArgument)
		}
		if c.flags == stItem {
			if !encodeUnsigned(c.out, enc.Value) {
				return c.fail(n, ErrUnexpectedEndOfSource)
			}
		}
		c.flags &^= stItem
	}

	if c.colLevel > 0 {
		return c.fail(n, ErrMissingEndCollection)
	}
	if c.delimLevel > 0 {
		return c.fail(n, ErrMissingDelimiterClose)
	}
	if c.flags != stStart && c.flags != stComment {
		return c.fail(n, ErrUnexpectedEndOfSource)
	}
	return Diagnostic{}
}

// Compile translates HID report descriptor source text into binary
// short items, writing each byte to out as it is produced. It returns
// the zero Diagnostic on success, or a Diagnostic describing the first
// error encountered along with its position in src.
func Compile(src []byte, out Sink, params ParamProvider) Diagnostic {
	c := newCompiler(src, out, params)
	return c.run()
}

// CompiledSize reports the number of bytes Compile would write for src,
// or a non-zero Diagnostic if src does not compile.
func CompiledSize(src []byte, params ParamProvider) (int, Diagnostic) {
	sink := &sizeSink{}
	diag := Compile(src, sink, params)
	if diag.IsError() {
		return 0, diag
	}
	return sink.Len(), Diagnostic{}
}

// CompileError compiles src discarding all output and returns only the
// resulting Diagnostic - the zero Diagnostic if src compiles cleanly.
func CompileError(src []byte, params ParamProvider) Diagnostic {
	return Compile(src, nullSink{}, params)
}

// CompileBytes is a convenience wrapper that compiles src into a freshly
// allocated byte slice.
func CompileBytes(src []byte, params ParamProvider) ([]byte, Diagnostic) {
	size, diag := CompiledSize(src, params)
	if diag.IsError() {
		return nil, diag
	}
	sink := NewBufferSink(size)
	diag = Compile(src, sink, params)
	if diag.IsError() {
		return nil, diag
	}
	return sink.Bytes(), Diagnostic{}
}
