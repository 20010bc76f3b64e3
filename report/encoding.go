package report

// UsageType is a bitmask describing how a usage may be used within a
// control, as defined by the HID Usage Tables specification. A single
// usage entry can advertise more than one applicable control type, so
// the values are combined with bitwise OR rather than picked from an
// exclusive set.
type UsageType uint32

const (
	TypeNone UsageType = 0

	TypeLinearControl        UsageType = 1 << 0
	TypeOnOffControl         UsageType = 1 << 1
	TypeMomentaryControl     UsageType = 1 << 2
	TypeOneShotControl       UsageType = 1 << 3
	TypeRetriggerControl     UsageType = 1 << 4
	TypeSelector             UsageType = 1 << 5
	TypeStaticValue          UsageType = 1 << 6
	TypeStaticFlag           UsageType = 1 << 7
	TypeDynamicValue         UsageType = 1 << 8
	TypeDynamicFlag          UsageType = 1 << 9
	TypeNamedArray           UsageType = 1 << 10
	TypeApplicationCollection UsageType = 1 << 11
	TypeLogicalCollection    UsageType = 1 << 12
	TypePhysicalCollection   UsageType = 1 << 13
	TypeUsageSwitch          UsageType = 1 << 14
	TypeUsageModifier        UsageType = 1 << 15
	TypeBufferedBytes        UsageType = 1 << 16
)

// Encoding is one named entry in a lookup table: an item keyword, an
// argument flag, a usage, or a unit dimension. Value carries the bits
// this entry contributes when resolved; Clear marks entries (like the
// "Data" side of "Data"/"Cnst") that reset rather than set their bit.
// Child, when non-nil, is the table an argument to this entry resolves
// against - e.g. the "Input" item's Child is the input flag table, and
// the "GenericDesktop" usage page's Child is the desktop usage table.
type Encoding struct {
	Name  string
	Value uint32
	Type  UsageType
	Clear bool
	Child *Table
}

// Table is an ordered list of encodings searched by resolve. A small
// number of tables carry no entries at all and exist only so that
// their address can be recognized by tableKind: they mark an argument
// position whose value is a bare number rather than a name.
type Table []Encoding

// TableKind classifies the handful of tables the compiler must treat
// specially, replacing the pointer-identity checks of the original
// design with tagged comparisons.
type TableKind int

const (
	// KindGeneric covers ordinary named lookup tables: usage pages,
	// usage tables, unit dimensions, and so on.
	KindGeneric TableKind = iota
	// KindNumUnsigned marks an argument position that takes a bare
	// unsigned number (ReportSize, ReportCount, DesignatorIndex, ...).
	KindNumUnsigned
	// KindNumSigned marks an argument position that takes a bare
	// signed number (LogicalMinimum, PhysicalMaximum, ...).
	KindNumSigned
	// KindUsageRef marks the Usage/UsageMinimum/UsageMaximum argument,
	// which resolves against whichever usage page is currently active.
	KindUsageRef
	// KindCollection marks Collection's argument table.
	KindCollection
	// KindEndCollection marks EndCollection's (empty) argument table.
	KindEndCollection
	// KindFlags marks Input/Output/Feature's argument table, whose
	// entries may be combined with commas within one argument list.
	KindFlags
	// KindUnitSystem marks Unit's argument table.
	KindUnitSystem
	// KindUnitExponent marks UnitExponent's argument table, and the
	// per-dimension exponent table nested under a unit system.
	KindUnitExponent
	// KindDelimiter marks Delimiter's argument table.
	KindDelimiter
	// KindUsagePage marks UsagePage's argument table.
	KindUsagePage
)

// tableKind classifies t by identity. This is the tagged-variant
// replacement for comparing raw table pointers throughout the
// compiler: every special table the state machine needs to recognize
// is listed here exactly once.
func tableKind(t *Table) TableKind {
	switch t {
	case &numArgTable:
		return KindNumUnsigned
	case &signedNumArgTable:
		return KindNumSigned
	case &usageArgTable:
		return KindUsageRef
	case &collectionArgTable:
		return KindCollection
	case &endColTable:
		return KindEndCollection
	case &inputFlagTable, &outputFeatureFlagTable:
		return KindFlags
	case &unitSystemTable:
		return KindUnitSystem
	case &unitExponentTable:
		return KindUnitExponent
	case &delimiterTable:
		return KindDelimiter
	case &usagePageTable:
		return KindUsagePage
	default:
		return KindGeneric
	}
}

// requiresNamedArgument reports whether an item whose Child is t must
// be followed by an argument list - i.e. writing the item's bare name
// with no parentheses is a Missing_argument error rather than a valid
// zero-payload item.
func requiresNamedArgument(t *Table) bool {
	if t == nil {
		return false
	}
	return len(*t) > 0 || tableKind(t) == KindUsageRef
}
