package report

var digitizersTable = Table{
	{Name: "Digitizer", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Pen", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "LightPen", Value: 0x03, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "TouchScreen", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "TouchPad", Value: 0x05, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Whiteboard", Value: 0x06, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "CoordinateMeasuringMachine", Value: 0x07, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Digitizer3d", Value: 0x08, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "StereoPlotter", Value: 0x09, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "ArticulatedArm", Value: 0x0A, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Armature", Value: 0x0B, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "MultiplePointDigitizer", Value: 0x0C, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "FreeSpaceWand", Value: 0x0D, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "DeviceConfiguration", Value: 0x0E, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "CapacitiveHeatMapDigitizer", Value: 0x0F, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Stylus", Value: 0x20, Type: TypeApplicationCollection | TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Puck", Value: 0x21, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Finger", Value: 0x22, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "DeviceSettings", Value: 0x23, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "CharacterGesture", Value: 0x24, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "TipPressure", Value: 0x30, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BarrelPressure", Value: 0x31, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "InRange", Value: 0x32, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Touch", Value: 0x33, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Untouch", Value: 0x34, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Tap", Value: 0x35, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Quality", Value: 0x36, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataValid", Value: 0x37, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "TransducerIndex", Value: 0x38, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TabletFunctionKeys", Value: 0x39, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ProgramChangeKeys", Value: 0x3A, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "BatteryStrength", Value: 0x3B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Invert", Value: 0x3C, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "XTilt", Value: 0x3D, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "YTilt", Value: 0x3E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Azimuth", Value: 0x3F, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Altitude", Value: 0x40, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Twist", Value: 0x41, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TipSwitch", Value: 0x42, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "SecondaryTipSwitch", Value: 0x43, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "BarrelSwitch", Value: 0x44, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Eraser", Value: 0x45, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "TabletPick", Value: 0x46, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "TouchValid", Value: 0x47, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Width", Value: 0x48, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Height", Value: 0x49, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactIdentifier", Value: 0x51, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DeviceMode", Value: 0x52, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DeviceIdentifier", Value: 0x53, Type: TypeDynamicValue | TypeStaticValue, Clear: false, Child: nil},
	{Name: "ContactCount", Value: 0x54, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactCountMaximum", Value: 0x55, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "ScanTime", Value: 0x56, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SurfaceSwitch", Value: 0x57, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ButtonSwitch", Value: 0x58, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PadType", Value: 0x59, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "SecondaryBarrelSwitch", Value: 0x5A, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "TransducerSerialNumber", Value: 0x5B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PreferredColor", Value: 0x5C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PreferredColorIsLocked", Value: 0x5D, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "PreferredLineWidth", Value: 0x5E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PreferredLineWidthIsLocked", Value: 0x5F, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "LatencyMode", Value: 0x60, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "GestureCharacterQuality", Value: 0x61, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CharacterGestureDataLength", Value: 0x62, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CharacterGestureData", Value: 0x63, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GestureCharacterEncoding", Value: 0x64, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "Utf8CharacterGestureEncoding", Value: 0x65, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Utf16LittleEndianCharacterGestureEncoding", Value: 0x66, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Utf16BigEndianCharacterGestureEncoding", Value: 0x67, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Utf32LittleEndianCharacterGestureEncoding", Value: 0x68, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Utf32BigEndianCharacterGestureEncoding", Value: 0x69, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CapacitiveHeatMapProtocolVendorId", Value: 0x6A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CapacitiveHeatMapProtocolVersion", Value: 0x6B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CapacitiveHeatMapFrameData", Value: 0x6C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GestureCharacterEnable", Value: 0x6D, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PreferredLineStyle", Value: 0x70, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PreferredLineStyleIsLocked", Value: 0x71, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Ink", Value: 0x72, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Pencil", Value: 0x73, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Highlighter", Value: 0x74, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ChiselMarker", Value: 0x75, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Brush", Value: 0x76, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "NoPreference", Value: 0x77, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DigitizerDiagnostic", Value: 0x80, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "DigitizerError", Value: 0x81, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "ErrNormalStatus", Value: 0x82, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ErrTransducersExceeded", Value: 0x83, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ErrFullTransFeaturesUnavailable", Value: 0x84, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ErrChargeLow", Value: 0x85, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "TransducerSoftwareInfo", Value: 0x90, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "TransducerVendorId", Value: 0x91, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "TransducerProductId", Value: 0x92, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DeviceSupportedProtocols", Value: 0x93, Type: TypeNamedArray | TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "TransducerSupportedProtocols", Value: 0x94, Type: TypeNamedArray | TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "NoProtocol", Value: 0x95, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "WacomAesProtocol", Value: 0x96, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UsiProtocol", Value: 0x97, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MicrosoftPenProtocol", Value: 0x98, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SupportedReportRates", Value: 0xA0, Type: TypeStaticValue | TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ReportRate", Value: 0xA1, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TransducerConnected", Value: 0xA2, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "SwitchDisabled", Value: 0xA3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SwitchUnimplemented", Value: 0xA4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "TransducerSwitches", Value: 0xA5, Type: TypeSelector, Clear: false, Child: nil},
}

var hapticsTable = Table{
	{Name: "SimpleHapticController", Value: 0x01, Type: TypeApplicationCollection | TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "WaveformList", Value: 0x10, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DurationList", Value: 0x11, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "AutoTrigger", Value: 0x20, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ManualTrigger", Value: 0x21, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AutoTriggerAssociatedControl", Value: 0x22, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Intensity", Value: 0x23, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RepeatCount", Value: 0x24, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RetriggerPeriod", Value: 0x25, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "WaveformVendorPage", Value: 0x26, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformVendorId", Value: 0x27, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformCutoffTime", Value: 0x28, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformNone", Value: 0x1001, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformStop", Value: 0x1002, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformClick", Value: 0x1003, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformBuzzContinuous", Value: 0x1004, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformRumbleContinuous", Value: 0x1005, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformPress", Value: 0x1006, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "WaveformRelease", Value: 0x1007, Type: TypeStaticValue, Clear: false, Child: nil},
}

var pidTable = Table{
	{Name: "PhysicalInterfaceDevice", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Normal", Value: 0x20, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SetEffectReport", Value: 0x21, Type: TypeLogicalCollection | TypeLinearControl | TypeStaticValue, Clear: false, Child: nil},
	{Name: "EffectBlockIndex", Value: 0x22, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ParameterBlockOffset", Value: 0x23, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RomFlag", Value: 0x24, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "EffectType", Value: 0x25, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "EtConstantForce", Value: 0x26, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtRamp", Value: 0x27, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtCustomForceData", Value: 0x28, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtSquare", Value: 0x30, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtSine", Value: 0x31, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtTriangle", Value: 0x32, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtSawtoothUp", Value: 0x33, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtSawtoothDown", Value: 0x34, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtSpring", Value: 0x40, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtDamper", Value: 0x41, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtInertia", Value: 0x42, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EtFriction", Value: 0x43, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Duration", Value: 0x50, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SamplePeriod", Value: 0x51, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Gain", Value: 0x52, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TriggerButton", Value: 0x53, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TriggerRepeatInterval", Value: 0x54, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AxesEnable", Value: 0x55, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "DirectionEnable", Value: 0x56, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Direction", Value: 0x57, Type: TypeLogicalCollection | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TypeSpecificBlockOffset", Value: 0x58, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "BlockType", Value: 0x59, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "SetEnvelopeReport", Value: 0x5A, Type: TypeLogicalCollection | TypeLinearControl | TypeStaticValue, Clear: false, Child: nil},
	{Name: "AttackLevel", Value: 0x5B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AttackTime", Value: 0x5C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FadeLevel", Value: 0x5D, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FadeTime", Value: 0x5E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SetConditionReport", Value: 0x5F, Type: TypeLogicalCollection | TypeLinearControl | TypeStaticValue, Clear: false, Child: nil},
	{Name: "CpOffset", Value: 0x60, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PositiveCoefficient", Value: 0x61, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "NegativeCoefficient", Value: 0x62, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PositiveSaturation", Value: 0x63, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "NegativeSaturation", Value: 0x64, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DeadBand", Value: 0x65, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DownloadForceSample", Value: 0x66, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "IsochCustomForceEnable", Value: 0x67, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "CustomForceDataReport", Value: 0x68, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "CustomForceData", Value: 0x69, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CustomForceVendorDefinedData", Value: 0x6A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SetCustomForceReport", Value: 0x6B, Type: TypeLogicalCollection | TypeLinearControl | TypeStaticValue, Clear: false, Child: nil},
	{Name: "CustomForceDataOffset", Value: 0x6C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SampleCount", Value: 0x6D, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SetPeriodicReport", Value: 0x6E, Type: TypeLogicalCollection | TypeLinearControl | TypeStaticValue, Clear: false, Child: nil},
	{Name: "Offset", Value: 0x6F, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Magnitude", Value: 0x70, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Phase", Value: 0x71, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Period", Value: 0x72, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SetConstantForceReport", Value: 0x73, Type: TypeLogicalCollection | TypeLinearControl | TypeStaticValue, Clear: false, Child: nil},
	{Name: "SetRampForceReport", Value: 0x74, Type: TypeLogicalCollection | TypeLinearControl | TypeStaticValue, Clear: false, Child: nil},
	{Name: "RampStart", Value: 0x75, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RampEnd", Value: 0x76, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "EffectOperationReport", Value: 0x77, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "EffectOperation", Value: 0x78, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "OpEffectStart", Value: 0x79, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "OpEffectStartSolo", Value: 0x7A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "OpEffectStop", Value: 0x7B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "LoopCount", Value: 0x7C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DeviceGainReport", Value: 0x7D, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "DeviceGain", Value: 0x7E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PidPoolReport", Value: 0x7F, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "RamPoolSize", Value: 0x80, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RomPoolSize", Value: 0x81, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "RomEffectBlockCount", Value: 0x82, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "SimultaneousEffectsMax", Value: 0x83, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PoolAlignment", Value: 0x84, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PidPoolMoveReport", Value: 0x85, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "MoveSource", Value: 0x86, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MoveDestination", Value: 0x87, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MoveLength", Value: 0x88, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PidBlockLoadReport", Value: 0x89, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "BlockLoadStatus", Value: 0x8B, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "BlockLoadSuccess", Value: 0x8C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BlockLoadFull", Value: 0x8D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BlockLoadError", Value: 0x8E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BlockHandle", Value: 0x8F, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PidBlockFreeReport", Value: 0x90, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "TypeSpecificBlockHandle", Value: 0x91, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "PidStateReport", Value: 0x92, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "EffectPlaying", Value: 0x94, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PidDeviceControlReport", Value: 0x95, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "PidDeviceControl", Value: 0x96, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DcEnableActuators", Value: 0x97, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DcDisableActuators", Value: 0x98, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DcStopAllEffects", Value: 0x99, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DcDeviceReset", Value: 0x9A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DcDevicePause", Value: 0x9B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DcDeviceContinue", Value: 0x9C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DevicePaused", Value: 0x9F, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ActuatorsEnabled", Value: 0xA0, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "SafetySwitch", Value: 0xA4, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ActuatorOverrideSwitch", Value: 0xA5, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ActuatorPower", Value: 0xA6, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "StartDelay", Value: 0xA7, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ParameterBlockSize", Value: 0xA8, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "DeviceManagedPool", Value: 0xA9, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "SharedParameterBlocks", Value: 0xAA, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "CreateNewEffectReport", Value: 0xAB, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "RamPoolAvailable", Value: 0xAC, Type: TypeDynamicValue, Clear: false, Child: nil},
}

