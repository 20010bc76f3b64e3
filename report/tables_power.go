package report

var powerDeviceTable = Table{
	{Name: "IName", Value: 0x01, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PresentStatus", Value: 0x02, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChangedStatus", Value: 0x03, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Ups", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "PowerSupply", Value: 0x05, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "BatterySystem", Value: 0x10, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BatterySystemId", Value: 0x11, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Battery", Value: 0x12, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BatteryId", Value: 0x13, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Charger", Value: 0x14, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ChargerId", Value: 0x15, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PowerConverer", Value: 0x16, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PowerConvererId", Value: 0x17, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "OutletSystem", Value: 0x18, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OutletSystemId", Value: 0x19, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Input", Value: 0x1A, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "InputId", Value: 0x1B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Output", Value: 0x1C, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OutputId", Value: 0x1D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Flow", Value: 0x1E, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "FlowId", Value: 0x1F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Outlet", Value: 0x20, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OutletId", Value: 0x21, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Gang", Value: 0x22, Type: TypeLogicalCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "GangId", Value: 0x23, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PowerSummary", Value: 0x24, Type: TypeLogicalCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PowerSummaryId", Value: 0x25, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Voltage", Value: 0x30, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Current", Value: 0x31, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Frequency", Value: 0x32, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ApparentPower", Value: 0x33, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ActivePower", Value: 0x34, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PercentLoad", Value: 0x35, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Temperature", Value: 0x36, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Humidity", Value: 0x37, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BadCount", Value: 0x38, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigVoltage", Value: 0x40, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigCurrent", Value: 0x41, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigFrequency", Value: 0x42, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigApparentPower", Value: 0x43, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigActivePower", Value: 0x44, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigPercentLoad", Value: 0x45, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigTemperature", Value: 0x46, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigHumidity", Value: 0x47, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SwitchOnControl", Value: 0x50, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SwitchOffControl", Value: 0x51, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ToggleControl", Value: 0x52, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LowVoltageTransfer", Value: 0x53, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "HighVoltageTransfer", Value: 0x54, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DelayBeforeReboot", Value: 0x55, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DelayBeforeStartup", Value: 0x56, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DelayBeforeShutdown", Value: 0x57, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Test", Value: 0x58, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ModuleReset", Value: 0x59, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AudibleAlarmControl", Value: 0x5A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Present", Value: 0x60, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Good", Value: 0x61, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "InternalFailure", Value: 0x62, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "VoltageOutOfRange", Value: 0x63, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "FrequencyOutOfRange", Value: 0x64, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Overload", Value: 0x65, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "OverCharged", Value: 0x66, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "OverTemperature", Value: 0x67, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ShutdownRequested", Value: 0x68, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ShutdownImminent", Value: 0x69, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "SwitchOnOff", Value: 0x6B, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Switchable", Value: 0x6C, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Used", Value: 0x6D, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Boost", Value: 0x6E, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Buck", Value: 0x6F, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Initialized", Value: 0x70, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Tested", Value: 0x71, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "AwaitingPower", Value: 0x72, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "CommunicationLost", Value: 0x73, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "IManufacturer", Value: 0xFD, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "IProduct", Value: 0xFE, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "ISerialNumber", Value: 0xFF, Type: TypeStaticValue, Clear: false, Child: nil},
}

var barCodeScannerTable = Table{
	{Name: "BarCodeBadgeReader", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "BarCodeScanner", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "DumbBarCodeScanner", Value: 0x03, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "CordlessScannerBase", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "BarCodeScannerCradle", Value: 0x05, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "AttributeReport", Value: 0x10, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "SettingsReport", Value: 0x11, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScannedDataReport", Value: 0x12, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "RawScannedDataReport", Value: 0x13, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "TriggerReport", Value: 0x14, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "StatusReport", Value: 0x15, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "UpsEanControlReport", Value: 0x16, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Ean23LabelControlReport", Value: 0x17, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Code39ControlReport", Value: 0x18, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Interleaved2Of5ControlReport", Value: 0x19, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Standard2Of5ConrolReport", Value: 0x1A, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "MsiPlesseyControlReport", Value: 0x1B, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "CodabarControlReport", Value: 0x1C, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Code128ControlReport", Value: 0x1D, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Misc2dConrolReport", Value: 0x1E, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Control2dReport", Value: 0x1F, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "AimingPoinerMode", Value: 0x30, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "BarCodePresentSensor", Value: 0x31, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "Class1aLaser", Value: 0x32, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "Class2Laser", Value: 0x33, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "HeaterPresent", Value: 0x34, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "ContactScanner", Value: 0x35, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "ElectronicArticleSurveillanceNotification", Value: 0x36, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "ConstantElectronicArticleSurveillance", Value: 0x37, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "ErrorIndication", Value: 0x38, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "FixedBeeper", Value: 0x39, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "GoodDecoderIndication", Value: 0x3A, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "HandsFreeScanning", Value: 0x3B, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "IntrinsicallySafe", Value: 0x3C, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "KlasseEinsLaser", Value: 0x3D, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "LongRangeScanner", Value: 0x3E, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "MirrorSpeedControl", Value: 0x3F, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "NotOnFileIndication", Value: 0x40, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "ProgrammableBeeper", Value: 0x41, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "Triggerless", Value: 0x42, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "Wand", Value: 0x43, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "WaterResistant", Value: 0x44, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "MultiRangeScanner", Value: 0x45, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "ProximitySensor", Value: 0x46, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "FragmentDecoder", Value: 0x4D, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ScannerReadConfidence", Value: 0x4E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataPrefix", Value: 0x4F, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PrefixAimi", Value: 0x50, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PrefixNone", Value: 0x51, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PrefixProprietary", Value: 0x52, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActiveTime", Value: 0x55, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AimingLaserPattern", Value: 0x56, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "BarCodePresent", Value: 0x57, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "BeeperState", Value: 0x58, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "LaserOnTime", Value: 0x59, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LaserState", Value: 0x5A, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "LockoutTime", Value: 0x5B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MotorState", Value: 0x5C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "MotorTimeout", Value: 0x5D, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PowerOnResetScanner", Value: 0x5E, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PreventReadOfBarcodes", Value: 0x5F, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "InitiateBarcodeRead", Value: 0x60, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "TriggerState", Value: 0x61, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "TriggerMode", Value: 0x62, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "TriggerModeBlinkingLaserOn", Value: 0x63, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "TriggerModeContinuousLaserOn", Value: 0x64, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "TriggerModeLaserOnWhilePulled", Value: 0x65, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "TriggerModeLaserStaysOnAfterTriggerRelease", Value: 0x66, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CommitParametersToNvm", Value: 0x6D, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ParameterScanning", Value: 0x6E, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ParametersChanged", Value: 0x6F, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SetParameterDefaultValues", Value: 0x70, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ScannerInCradle", Value: 0x75, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ScannerInRange", Value: 0x76, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "AimDuration", Value: 0x7A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GoodReadLampDuration", Value: 0x7B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GoodReadLampIntensity", Value: 0x7C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GoodReadLed", Value: 0x7D, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "GoodReadToneFrequency", Value: 0x7E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GoodReadToneLength", Value: 0x7F, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GoodReadToneVolume", Value: 0x80, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "NoReadMessage", Value: 0x82, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "NotOnFileVolume", Value: 0x83, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PowerupBeep", Value: 0x84, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "SoundErrorBeep", Value: 0x85, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "SoundGoodReadBeep", Value: 0x86, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "SoundNotOnFileBeep", Value: 0x87, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "GoodReadWhenToWrite", Value: 0x88, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "GrwtiAfterDecode", Value: 0x89, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GrwtiBeepLampAferTransmit", Value: 0x8A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GrwtiNoBeepLampUseAtAll", Value: 0x8B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BooklandEan", Value: 0x91, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ConvertEan8To13Type", Value: 0x92, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ConvertUpcAToEan13", Value: 0x93, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ConvertUpcEToA", Value: 0x94, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Ean13", Value: 0x95, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Ean8", Value: 0x96, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Ean99128Mandatory", Value: 0x97, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Ean99P5128Optional", Value: 0x98, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcEan", Value: 0x9A, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcEanCouponCode", Value: 0x9B, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcEanPeriodicals", Value: 0x9C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "UpcA", Value: 0x9D, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcAWith128Mandatory", Value: 0x9E, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcAWith128Optional", Value: 0x9F, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcAWithP5Optional", Value: 0xA0, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcE", Value: 0xA1, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UpcE1", Value: 0xA2, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Periodical", Value: 0xA9, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PeriodicalAutoDiscriminatePlus2", Value: 0xAA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PeriodicalOnlyDecodeWidthPlus2", Value: 0xAB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PeriodicalIgnorePlus2", Value: 0xAC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PeriodicalAutoDiscriminatePlus5", Value: 0xAD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PeriodicalOnlyDecodeWidthPlus5", Value: 0xAE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PeriodicalIgnorePlus5", Value: 0xAF, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Check", Value: 0xB0, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "CheckDisablePrice", Value: 0xB1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckEnable4DigitPrice", Value: 0xB2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckEnable5DigitPrice", Value: 0xB3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckEnableEuropean4DigitPrice", Value: 0xB4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckEnableEuropean5DigitPrice", Value: 0xB5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EanTwoLabel", Value: 0xB7, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "EanThreeLabel", Value: 0xB8, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Ean8FlagDigit1", Value: 0xB9, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Ean8FlagDigit2", Value: 0xBA, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Ean8FlagDigit3", Value: 0xBB, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Ean13FlagDigit1", Value: 0xBC, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Ean13FlagDigit2", Value: 0xBD, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Ean13FlagDigit3", Value: 0xBE, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AddEan23LabelDefinition", Value: 0xBF, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ClearAllEan23LabelDefinitions", Value: 0xC0, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Codabar", Value: 0xC3, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Code128", Value: 0xC4, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Code39", Value: 0xC7, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Code93", Value: 0xC8, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "FullAsciiConversion", Value: 0xC9, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Interleaved2Of5", Value: 0xCA, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ItalianPharmacyCode", Value: 0xCB, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "MsiPlessey", Value: 0xCC, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Standard2Of5Iata", Value: 0xCD, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Standard2Of5", Value: 0xCE, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "TransmitStartStop", Value: 0xD3, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "TriOptic", Value: 0xD4, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UccEan128", Value: 0xD5, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "CheckDigit", Value: 0xD6, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "CheckDigitDisable", Value: 0xD7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitEnableInerleaved2Of5Opcc", Value: 0xD8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitEnableInterleaved2Of5Uss", Value: 0xD9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitEnableStandard2Of5Opcc", Value: 0xDA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitEnableStandard2Of5Uss", Value: 0xDB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitEnableOneMsiPlessey", Value: 0xDC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitEnableTwoMsiPlessey", Value: 0xDD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitCodabarEnable", Value: 0xDE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CheckDigitCode39Enable", Value: 0xDF, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "TransmitCheckDigit", Value: 0xF0, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DisableCheckDigitTransmit", Value: 0xF1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EnableCheckDigitTransmit", Value: 0xF2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SymbologyIdentifier1", Value: 0xFB, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SymbologyIdentifier2", Value: 0xFC, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SymbologyIdentifier3", Value: 0xFD, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DecodedData", Value: 0xFE, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DecodedDataContinued", Value: 0xFF, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "BarSpaceData", Value: 0x100, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ScannerDataAccuracy", Value: 0x101, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RawDataPolarity", Value: 0x102, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PolarityInvertedBarCode", Value: 0x103, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PolarityNormalBarCode", Value: 0x104, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MinimumLengthToDecode", Value: 0x106, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MaximumLengthToDecode", Value: 0x107, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FirstDiscreteLengthToDecode", Value: 0x108, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SecondDiscreteLengthToDecode", Value: 0x109, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataLengthMethod", Value: 0x10A, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DlMethodReadAny", Value: 0x10B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DlMethodCheckInRange", Value: 0x10C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DlMethodCheckForDiscrete", Value: 0x10D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AztecCode", Value: 0x110, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Bc412", Value: 0x111, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ChannelCode", Value: 0x112, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Code16", Value: 0x113, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Code32", Value: 0x114, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Code49", Value: 0x115, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "CodeOne", Value: 0x116, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ColorCode", Value: 0x117, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DataMatrix", Value: 0x118, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "MaxiCode", Value: 0x119, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "MicroPdf", Value: 0x11A, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Pdf417", Value: 0x11B, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PosiCode", Value: 0x11C, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "QrCode", Value: 0x11D, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "SuperCode", Value: 0x11E, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "UltraCode", Value: 0x11F, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Usd5SlugCode", Value: 0x120, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "VeriCode", Value: 0x121, Type: TypeDynamicFlag, Clear: false, Child: nil},
}

var weighingDeviceTable = Table{
	{Name: "WeighingDevice", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "ScaleDevice", Value: 0x20, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleClass", Value: 0x21, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleClassIMetric", Value: 0x22, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassIiMetric", Value: 0x23, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassIiiMetric", Value: 0x24, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassIiilMetric", Value: 0x25, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassIvMetric", Value: 0x26, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassIiiEnglish", Value: 0x27, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassIiilEnglish", Value: 0x28, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassIvEnglish", Value: 0x29, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleClassGeneric", Value: 0x2A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleAttributeReport", Value: 0x30, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleControlReport", Value: 0x31, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleDataReport", Value: 0x32, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleStatusReport", Value: 0x33, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleWeightLimitReport", Value: 0x34, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleStatisticsReport", Value: 0x35, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "DataWeight", Value: 0x40, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataScaling", Value: 0x41, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "WeightUnit", Value: 0x50, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "WeightUnitMilligram", Value: 0x51, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitGram", Value: 0x52, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitKilogram", Value: 0x53, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitCarats", Value: 0x54, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitTaels", Value: 0x55, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitGrains", Value: 0x56, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitPennyweights", Value: 0x57, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitMetricTon", Value: 0x58, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitAvoirTon", Value: 0x59, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitTroyOunce", Value: 0x5A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitOunce", Value: 0x5B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WeightUnitPound", Value: 0x5C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CalibrationCount", Value: 0x60, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ReZeroCount", Value: 0x61, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ScaleStatus", Value: 0x70, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ScaleStatusFault", Value: 0x71, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleStatusStableAtCenterOfZero", Value: 0x72, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleStatusInMotion", Value: 0x73, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleStatusWeightStable", Value: 0x74, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleStatusUnderZero", Value: 0x75, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleStatusOverWeightLimit", Value: 0x76, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleStatusRequiresCalibration", Value: 0x77, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ScaleStatusRequiresRezeroing", Value: 0x78, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ZeroScale", Value: 0x80, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "EnforcedZeroReturn", Value: 0x81, Type: TypeOnOffControl, Clear: false, Child: nil},
}

var magStripeReaderTable = Table{
	{Name: "MsrDeviceReadOnly", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Track1Length", Value: 0x11, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "Track2Length", Value: 0x12, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "Track3Length", Value: 0x13, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "TrackJisLength", Value: 0x14, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "TrackData", Value: 0x20, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "Track1Data", Value: 0x21, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "Track2Data", Value: 0x22, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "Track3Data", Value: 0x23, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
	{Name: "TrackJisData", Value: 0x24, Type: TypeStaticFlag | TypeDynamicFlag | TypeSelector, Clear: false, Child: nil},
}

var cameraControlTable = Table{
	{Name: "CameraAutoFocus", Value: 0x20, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "CameraShutter", Value: 0x21, Type: TypeOneShotControl, Clear: false, Child: nil},
}

var arcadeTable = Table{
	{Name: "GeneralPurposeIoCard", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "CoinDoor", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "WatchdogTimer", Value: 0x03, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "GeneralPurposeAnalogInputState", Value: 0x30, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GeneralPurposeDigitalInputState", Value: 0x31, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GeneralPurposeOpticalInputState", Value: 0x32, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GeneralPurposeDigitalOutputState", Value: 0x33, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "NumberOfCoinDoors", Value: 0x34, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CoinDrawerDropCount", Value: 0x35, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CoinDrawerDropStart", Value: 0x36, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CoinDrawerDropService", Value: 0x37, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CoinDrawerDropTilt", Value: 0x38, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CoinDoorTest", Value: 0x39, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CoinDoorLockout", Value: 0x40, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "WatchdogTimeout", Value: 0x41, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "WatchdogAction", Value: 0x42, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "WatchdogReboot", Value: 0x43, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WatchdogRestart", Value: 0x44, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlarmInput", Value: 0x45, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CoinDoorCounter", Value: 0x46, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "IoDirectionMapping", Value: 0x47, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SetIoDirection", Value: 0x48, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ExtendedOpticalInputState", Value: 0x49, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PinPadInputState", Value: 0x4A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PinPadStatus", Value: 0x4B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PinPadOutput", Value: 0x4C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "PinPadCommand", Value: 0x4D, Type: TypeDynamicValue, Clear: false, Child: nil},
}

var fidoAllianceTable = Table{
	{Name: "U2fAuthenticatorDevice", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "InputReportData", Value: 0x20, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "OutputReportData", Value: 0x21, Type: TypeDynamicValue, Clear: false, Child: nil},
}

