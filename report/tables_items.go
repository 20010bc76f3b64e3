package report

// Sentinel tables carry no entries; their identity alone (via tableKind)
// signals how the compiler must treat an item's argument.
var (
	numArgTable       Table
	signedNumArgTable Table
	usageArgTable     Table
	endColTable       Table
)

var collectionArgTable = Table{
	{Name: "Physical", Value: 0x00, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Application", Value: 0x01, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Logical", Value: 0x02, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Report", Value: 0x03, Type: TypeNone, Clear: false, Child: nil},
	{Name: "NamedArray", Value: 0x04, Type: TypeNone, Clear: false, Child: nil},
	{Name: "UsageSwitch", Value: 0x05, Type: TypeNone, Clear: false, Child: nil},
	{Name: "UsageModifier", Value: 0x06, Type: TypeNone, Clear: false, Child: nil},
}

var inputFlagTable = Table{
	{Name: "Data", Value: 0x001, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Cnst", Value: 0x001, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Ary", Value: 0x002, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Var", Value: 0x002, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Abs", Value: 0x004, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Rel", Value: 0x004, Type: TypeNone, Clear: false, Child: nil},
	{Name: "NWarp", Value: 0x008, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Warp", Value: 0x008, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Lin", Value: 0x010, Type: TypeNone, Clear: true, Child: nil},
	{Name: "NLin", Value: 0x010, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Prf", Value: 0x020, Type: TypeNone, Clear: true, Child: nil},
	{Name: "NPrf", Value: 0x020, Type: TypeNone, Clear: false, Child: nil},
	{Name: "NNull", Value: 0x040, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Null", Value: 0x040, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Bit", Value: 0x100, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Buf", Value: 0x100, Type: TypeNone, Clear: false, Child: nil},
}

var outputFeatureFlagTable = Table{
	{Name: "Data", Value: 0x001, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Cnst", Value: 0x001, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Ary", Value: 0x002, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Var", Value: 0x002, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Abs", Value: 0x004, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Rel", Value: 0x004, Type: TypeNone, Clear: false, Child: nil},
	{Name: "NWarp", Value: 0x008, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Warp", Value: 0x008, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Lin", Value: 0x010, Type: TypeNone, Clear: true, Child: nil},
	{Name: "NLin", Value: 0x010, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Prf", Value: 0x020, Type: TypeNone, Clear: true, Child: nil},
	{Name: "NPrf", Value: 0x020, Type: TypeNone, Clear: false, Child: nil},
	{Name: "NNull", Value: 0x040, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Null", Value: 0x040, Type: TypeNone, Clear: false, Child: nil},
	{Name: "NVol", Value: 0x080, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Vol", Value: 0x080, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Bit", Value: 0x100, Type: TypeNone, Clear: true, Child: nil},
	{Name: "Buf", Value: 0x100, Type: TypeNone, Clear: false, Child: nil},
}

var unitExponentTable = Table{
	{Name: "0", Value: 0x0, Type: TypeNone, Clear: false, Child: nil},
	{Name: "1", Value: 0x1, Type: TypeNone, Clear: false, Child: nil},
	{Name: "2", Value: 0x2, Type: TypeNone, Clear: false, Child: nil},
	{Name: "3", Value: 0x3, Type: TypeNone, Clear: false, Child: nil},
	{Name: "4", Value: 0x4, Type: TypeNone, Clear: false, Child: nil},
	{Name: "5", Value: 0x5, Type: TypeNone, Clear: false, Child: nil},
	{Name: "6", Value: 0x6, Type: TypeNone, Clear: false, Child: nil},
	{Name: "7", Value: 0x7, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-8", Value: 0x8, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-7", Value: 0x9, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-6", Value: 0xA, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-5", Value: 0xB, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-4", Value: 0xC, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-3", Value: 0xD, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-2", Value: 0xE, Type: TypeNone, Clear: false, Child: nil},
	{Name: "-1", Value: 0xF, Type: TypeNone, Clear: false, Child: nil},
}

var unitTable = Table{
	{Name: "Length", Value: 1, Type: TypeNone, Clear: false, Child: &unitExponentTable},
	{Name: "Mass", Value: 2, Type: TypeNone, Clear: false, Child: &unitExponentTable},
	{Name: "Time", Value: 3, Type: TypeNone, Clear: false, Child: &unitExponentTable},
	{Name: "Temp", Value: 4, Type: TypeNone, Clear: false, Child: &unitExponentTable},
	{Name: "Current", Value: 5, Type: TypeNone, Clear: false, Child: &unitExponentTable},
	{Name: "Luminous", Value: 6, Type: TypeNone, Clear: false, Child: &unitExponentTable},
}

var unitSystemTable = Table{
	{Name: "None", Value: 0x00, Type: TypeNone, Clear: false, Child: &unitTable},
	{Name: "SiLin", Value: 0x01, Type: TypeNone, Clear: false, Child: &unitTable},
	{Name: "SiRot", Value: 0x02, Type: TypeNone, Clear: false, Child: &unitTable},
	{Name: "EngLin", Value: 0x03, Type: TypeNone, Clear: false, Child: &unitTable},
	{Name: "EngRot", Value: 0x04, Type: TypeNone, Clear: false, Child: &unitTable},
}

var delimiterTable = Table{
	{Name: "Close", Value: 0x00, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Open", Value: 0x01, Type: TypeNone, Clear: false, Child: nil},
}

var usagePageTable = Table{
	{Name: "GenericDesktop", Value: 0x01, Type: TypeNone, Clear: false, Child: &genericDesktopTable},
	{Name: "SimulationControls", Value: 0x02, Type: TypeNone, Clear: false, Child: &simulationControlsTable},
	{Name: "VrControls", Value: 0x03, Type: TypeNone, Clear: false, Child: &vrControlsTable},
	{Name: "SportControls", Value: 0x04, Type: TypeNone, Clear: false, Child: &sportControlsTable},
	{Name: "GameControls", Value: 0x05, Type: TypeNone, Clear: false, Child: &gameControlsTable},
	{Name: "GenericDeviceControls", Value: 0x06, Type: TypeNone, Clear: false, Child: &genericDeviceControlsTable},
	{Name: "Keyboard", Value: 0x07, Type: TypeNone, Clear: false, Child: &keyboardTable},
	{Name: "Led", Value: 0x08, Type: TypeNone, Clear: false, Child: &ledTable},
	{Name: "Button", Value: 0x09, Type: TypeNone, Clear: false, Child: &buttonTable},
	{Name: "Ordinal", Value: 0x0A, Type: TypeNone, Clear: false, Child: &ordinalTable},
	{Name: "TelephonyDevice", Value: 0x0B, Type: TypeNone, Clear: false, Child: &telephonyDeviceTable},
	{Name: "Consumer", Value: 0x0C, Type: TypeNone, Clear: false, Child: &consumerTable},
	{Name: "Digitizers", Value: 0x0D, Type: TypeNone, Clear: false, Child: &digitizersTable},
	{Name: "Haptics", Value: 0x0E, Type: TypeNone, Clear: false, Child: &hapticsTable},
	{Name: "Pid", Value: 0x0F, Type: TypeNone, Clear: false, Child: &pidTable},
	{Name: "Unicode", Value: 0x10, Type: TypeNone, Clear: false, Child: &unicodeTable},
	{Name: "EyeAndHeadTrackers", Value: 0x12, Type: TypeNone, Clear: false, Child: &eyeAndHeadTrackerTable},
	{Name: "AuxiliaryDisplay", Value: 0x14, Type: TypeNone, Clear: false, Child: &auxiliaryDisplayTable},
	{Name: "Sensors", Value: 0x20, Type: TypeNone, Clear: false, Child: &sensorTable},
	{Name: "MediacalInstrument", Value: 0x40, Type: TypeNone, Clear: false, Child: &medicalInstrumentTable},
	{Name: "BrailleDisplay", Value: 0x41, Type: TypeNone, Clear: false, Child: &brailleDisplayTable},
	{Name: "LightingAndIllumination", Value: 0x59, Type: TypeNone, Clear: false, Child: &lightingTable},
	{Name: "Monitor", Value: 0x80, Type: TypeNone, Clear: false, Child: &monitorTable},
	{Name: "MonitorEnumeratedValues", Value: 0x81, Type: TypeNone, Clear: false, Child: &monitorEnumeratedTable},
	{Name: "VesaVirtualControls", Value: 0x82, Type: TypeNone, Clear: false, Child: &vesaVirtualControlsTable},
	{Name: "Power", Value: 0x84, Type: TypeNone, Clear: false, Child: &powerDeviceTable},
	{Name: "BarCodeScanner", Value: 0x8C, Type: TypeNone, Clear: false, Child: &barCodeScannerTable},
	{Name: "WeighingDevices", Value: 0x8D, Type: TypeNone, Clear: false, Child: &weighingDeviceTable},
	{Name: "MagneticStripeReaderDevices", Value: 0x8E, Type: TypeNone, Clear: false, Child: &magStripeReaderTable},
	{Name: "CameraControl", Value: 0x90, Type: TypeNone, Clear: false, Child: &cameraControlTable},
	{Name: "Arcade", Value: 0x91, Type: TypeNone, Clear: false, Child: &arcadeTable},
	{Name: "GamingDevice", Value: 0x92, Type: TypeNone, Clear: false, Child: nil},
	{Name: "FidoAlliance", Value: 0xF1D0, Type: TypeNone, Clear: false, Child: &fidoAllianceTable},
}

var itemTable = Table{
	{Name: "Input", Value: 0x80, Type: TypeNone, Clear: false, Child: &inputFlagTable},
	{Name: "Output", Value: 0x90, Type: TypeNone, Clear: false, Child: &outputFeatureFlagTable},
	{Name: "Feature", Value: 0xB0, Type: TypeNone, Clear: false, Child: &outputFeatureFlagTable},
	{Name: "Collection", Value: 0xA0, Type: TypeNone, Clear: false, Child: &collectionArgTable},
	{Name: "EndCollection", Value: 0xC0, Type: TypeNone, Clear: false, Child: &endColTable},
	{Name: "UsagePage", Value: 0x04, Type: TypeNone, Clear: false, Child: &usagePageTable},
	{Name: "LogicalMinimum", Value: 0x14, Type: TypeNone, Clear: false, Child: &signedNumArgTable},
	{Name: "LogicalMaximum", Value: 0x24, Type: TypeNone, Clear: false, Child: &signedNumArgTable},
	{Name: "PhysicalMinimum", Value: 0x34, Type: TypeNone, Clear: false, Child: &signedNumArgTable},
	{Name: "PhysicalMaximum", Value: 0x44, Type: TypeNone, Clear: false, Child: &signedNumArgTable},
	{Name: "UnitExponent", Value: 0x54, Type: TypeNone, Clear: false, Child: &unitExponentTable},
	{Name: "Unit", Value: 0x64, Type: TypeNone, Clear: false, Child: &unitSystemTable},
	{Name: "ReportSize", Value: 0x74, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "ReportId", Value: 0x84, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "ReportCount", Value: 0x94, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "Push", Value: 0xA4, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Pop", Value: 0xB4, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Usage", Value: 0x08, Type: TypeNone, Clear: false, Child: &usageArgTable},
	{Name: "UsageMinimum", Value: 0x18, Type: TypeNone, Clear: false, Child: &usageArgTable},
	{Name: "UsageMaximum", Value: 0x28, Type: TypeNone, Clear: false, Child: &usageArgTable},
	{Name: "DesignatorIndex", Value: 0x38, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "DesignatorMinimum", Value: 0x48, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "DesignatorMaximum", Value: 0x58, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "StringIndex", Value: 0x78, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "StringMinimum", Value: 0x88, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "StringMaximum", Value: 0x98, Type: TypeNone, Clear: false, Child: &numArgTable},
	{Name: "Delimiter", Value: 0xA8, Type: TypeNone, Clear: false, Child: &delimiterTable},
}

