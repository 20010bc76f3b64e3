package report

var unicodeTable = Table{
	{Name: "Ucs#", Value: 0x0000, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Ucs#", Value: 0xFFFF, Type: TypeNone, Clear: false, Child: nil},
}

var eyeAndHeadTrackerTable = Table{
	{Name: "EyeTracker", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "HeadTracker", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "TrackingData", Value: 0x10, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Capabilities", Value: 0x11, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Configuration", Value: 0x12, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Status", Value: 0x13, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Control", Value: 0x14, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "SensorTimestamp", Value: 0x20, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PositionX", Value: 0x21, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PositionY", Value: 0x22, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PositionZ", Value: 0x23, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GazePoint", Value: 0x24, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LeftEyePosition", Value: 0x25, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "RightEyePosition", Value: 0x26, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "HeadPosition", Value: 0x27, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "HeadDirectionPoint", Value: 0x28, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "RotationAboutXAxis", Value: 0x29, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RotationAboutYAxis", Value: 0x2A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RotationAboutZAxis", Value: 0x2B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TrackerQuality", Value: 0x100, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "MinimumTrackingDistance", Value: 0x101, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "OptimumTrackingDistance", Value: 0x102, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "MaximumTrackingDistance", Value: 0x103, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "MaximumScreenPlaneWidth", Value: 0x104, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "MaximumScreenPlaneHeight", Value: 0x105, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DisplayManufacturerId", Value: 0x200, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DisplayProductId", Value: 0x201, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DisplaySerialNumber", Value: 0x202, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DisplayManufacturerDate", Value: 0x203, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CalibratedScreenWidth", Value: 0x204, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CalibratedScreenHeight", Value: 0x205, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "SamplingFrequency", Value: 0x300, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ConfigurationStatus", Value: 0x301, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DeviceModeRequest", Value: 0x400, Type: TypeDynamicValue, Clear: false, Child: nil},
}

var auxiliaryDisplayTable = Table{
	{Name: "AlphanumericDisplay", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "AuxiliaryDisplay", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "DisplayAttributesReport", Value: 0x20, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "AsciiCharacterSet", Value: 0x21, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataReadBack", Value: 0x22, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "FontReadBack", Value: 0x23, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DisplayControlReport", Value: 0x24, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ClearDisplay", Value: 0x25, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DisplayEnable", Value: 0x26, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ScreenSaverDelay", Value: 0x27, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ScreenSaverEnable", Value: 0x28, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "VerticalScroll", Value: 0x29, Type: TypeStaticFlag | TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "HorizontalScroll", Value: 0x2A, Type: TypeStaticFlag | TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "CharacterReport", Value: 0x2B, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "DisplayData", Value: 0x2C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DisplayStatus", Value: 0x2D, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "StatNotReady", Value: 0x2E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StatReady", Value: 0x2F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ErrNotALoadableCharacter", Value: 0x30, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ErrFontDataCannotBeRead", Value: 0x31, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CursorPositionReport", Value: 0x32, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Row", Value: 0x33, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Column", Value: 0x34, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Rows", Value: 0x35, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Columns", Value: 0x36, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CursorPixelPosition", Value: 0x37, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "CursorMode", Value: 0x38, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "CursorEnable", Value: 0x39, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "CursorBlink", Value: 0x3A, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "FontReport", Value: 0x3B, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "FontData", Value: 0x3C, Type: TypeBufferedBytes, Clear: false, Child: nil},
	{Name: "CharacterWidth", Value: 0x3D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CharacterHeight", Value: 0x3E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CharacterSpacingHorizontal", Value: 0x3F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CharacterSpacingVertical", Value: 0x40, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "UnicodeCharacterSet", Value: 0x41, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "Font7Segment", Value: 0x42, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DirectMap7Segment", Value: 0x43, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "Font14Segment", Value: 0x44, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DirectMap14Segment", Value: 0x45, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DisplayBrightness", Value: 0x46, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DisplayContrast", Value: 0x47, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CharacterAttribute", Value: 0x48, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "AtributeReadback", Value: 0x49, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "AttributeData", Value: 0x4A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CharAttrEnhance", Value: 0x4B, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CharAttrUnderline", Value: 0x4C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CharAttrBlink", Value: 0x4D, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "BitmapSizeX", Value: 0x80, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BitmapSizeY", Value: 0x81, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "MaxBlitSize", Value: 0x82, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BitDepthFormat", Value: 0x83, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DisplayOrientation", Value: 0x84, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PaletteReport", Value: 0x85, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "PaletteDataSize", Value: 0x86, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PaletteDataOffset", Value: 0x87, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PaletteData", Value: 0x88, Type: TypeBufferedBytes, Clear: false, Child: nil},
	{Name: "BlitReport", Value: 0x8A, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "BlitRectangleX1", Value: 0x8B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BlitRectangleY1", Value: 0x8C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BlitRectangleX2", Value: 0x8D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BlitRectangleY2", Value: 0x8E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BlitData", Value: 0x8F, Type: TypeBufferedBytes, Clear: false, Child: nil},
	{Name: "SoftButton", Value: 0x90, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "SoftButtonId", Value: 0x91, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "SoftButtonSide", Value: 0x92, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "SoftButtonOffset1", Value: 0x93, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "SoftButtonOffset2", Value: 0x94, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "SoftButtonReport", Value: 0x95, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "SoftKeys", Value: 0xC2, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DisplayDataExtensions", Value: 0xCC, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "CharacterMapping", Value: 0xCF, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "UnicodeEquivalent", Value: 0xDD, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CharacterPageMapping", Value: 0xDF, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "RequestReport", Value: 0xFF, Type: TypeDynamicValue, Clear: false, Child: nil},
}

var medicalInstrumentTable = Table{
	{Name: "MedicalUlrasound", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "VcrAcquisition", Value: 0x20, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "FreezeThaw", Value: 0x21, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ClipStore", Value: 0x22, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Update", Value: 0x23, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Next", Value: 0x24, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Save", Value: 0x25, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Print", Value: 0x26, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MicrophoneEnable", Value: 0x27, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Cine", Value: 0x40, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "TransmitPower", Value: 0x41, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Volume", Value: 0x42, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Focus", Value: 0x43, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Depth", Value: 0x44, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "SoftStepPrimary", Value: 0x60, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "SoftStepSecondary", Value: 0x61, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "DepthGainCompensation", Value: 0x70, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "ZoomSelect", Value: 0x80, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ZoomAdjust", Value: 0x81, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "SpectralDopplerModeSelect", Value: 0x82, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SpectralDopplerAdjust", Value: 0x83, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "ColorDopplerModeSelect", Value: 0x84, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ColorDopplerAdjust", Value: 0x85, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "MotionModeSelect", Value: 0x86, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MotionModeAdjust", Value: 0x87, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Mode2dSelect", Value: 0x88, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Mode2dAdjust", Value: 0x89, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "SoftControlSelect", Value: 0xA0, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SoftControlAdjust", Value: 0xA1, Type: TypeLinearControl, Clear: false, Child: nil},
}

var brailleDisplayTable = Table{
	{Name: "BrailleDisplay", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "BrailleRow", Value: 0x02, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "Dot8BrailleCell", Value: 0x03, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Dot6BrailleCell", Value: 0x04, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "NumberOfBrailleCells", Value: 0x05, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ScreenReaderControl", Value: 0x06, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "ScreenReaderIdentifier", Value: 0x07, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RouterSet1", Value: 0xFA, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "RouterSet2", Value: 0xFB, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "RouterSet3", Value: 0xFC, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "RouterKey", Value: 0x100, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "RowRouterKey", Value: 0x101, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleButtons", Value: 0x200, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot1", Value: 0x201, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot2", Value: 0x202, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot3", Value: 0x203, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot4", Value: 0x204, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot5", Value: 0x205, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot6", Value: 0x206, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot7", Value: 0x207, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardDot8", Value: 0x208, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardSpace", Value: 0x209, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardLeftSpace", Value: 0x20A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleKeyboardRightSpace", Value: 0x20B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleFaceConrols", Value: 0x20C, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "BrailleLeftControls", Value: 0x20D, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "BrailleRightControls", Value: 0x20E, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "BrailleTopControls", Value: 0x20F, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "BrailleJoystickCenter", Value: 0x210, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleJoystickUp", Value: 0x211, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleJoystickDown", Value: 0x212, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleJoystickLeft", Value: 0x213, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleJoystickRight", Value: 0x214, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleDPadCenter", Value: 0x215, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleDPadUp", Value: 0x216, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleDPadDown", Value: 0x217, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleDPadLeft", Value: 0x218, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleDPadRight", Value: 0x219, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BraillePanLeft", Value: 0x21A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BraillePanRight", Value: 0x21B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleRockerUp", Value: 0x21C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleRockerDown", Value: 0x21D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BrailleRockerPress", Value: 0x21E, Type: TypeSelector, Clear: false, Child: nil},
}

var lightingTable = Table{
	{Name: "LampArray", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "LampArrayAttributesReport", Value: 0x02, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "LampCount", Value: 0x03, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BoundingBoxWidthInMicrometers", Value: 0x04, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BoundingBoxHeightInMicrometers", Value: 0x05, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "BoundingBoxDepthInMicrometers", Value: 0x06, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "LampArrayKind", Value: 0x07, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "MinUpdateIntervalInMicroseconds", Value: 0x08, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "LampAtributesRequestReport", Value: 0x20, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "LampId", Value: 0x21, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LampAtributesResponseReport", Value: 0x22, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "PositionXInMicrometers", Value: 0x23, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PositionYInMicrometers", Value: 0x24, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PositionZInMicrometers", Value: 0x25, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LampPurposes", Value: 0x26, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "UpdateLatencyInMicroseconds", Value: 0x27, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RedLevelCount", Value: 0x28, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GreenLevelCount", Value: 0x29, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BlueLevelCount", Value: 0x2A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "IntensityLevelCount", Value: 0x2B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "IsProgrammable", Value: 0x2C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "InputBinding", Value: 0x2D, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LampMultiUpdateReport", Value: 0x50, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "RedUpdateChannel", Value: 0x51, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GreenUpdateChannel", Value: 0x52, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BlueUpdateChannel", Value: 0x53, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "IntensityUpdateChannel", Value: 0x54, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LampUpdateFlags", Value: 0x55, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LampRangeUpdateReport", Value: 0x60, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "LampIdStart", Value: 0x61, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LampIdEnd", Value: 0x62, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LampArrayControlReport", Value: 0x70, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "AutonomousMode", Value: 0x71, Type: TypeDynamicValue, Clear: false, Child: nil},
}

var monitorTable = Table{
	{Name: "MonitorControl", Value: 0x01, Type: TypeNone, Clear: false, Child: nil},
	{Name: "EdidInformation", Value: 0x02, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VdifInformation", Value: 0x03, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VesaVersion", Value: 0x04, Type: TypeNone, Clear: false, Child: nil},
}

var monitorEnumeratedTable = Table{
	{Name: "Enum#", Value: 0x00, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Enum#", Value: 0x3E, Type: TypeNone, Clear: false, Child: nil},
}

var vesaVirtualControlsTable = Table{
	{Name: "Brightness", Value: 0x10, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Contrast", Value: 0x12, Type: TypeNone, Clear: false, Child: nil},
	{Name: "RedVideoGain", Value: 0x16, Type: TypeNone, Clear: false, Child: nil},
	{Name: "GreenVideoGain", Value: 0x18, Type: TypeNone, Clear: false, Child: nil},
	{Name: "BlueVideoGain", Value: 0x1A, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Focus", Value: 0x1C, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalPosition", Value: 0x20, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalSize", Value: 0x22, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalPincushion", Value: 0x24, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalPincushionBalance", Value: 0x26, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalMisconvergence", Value: 0x28, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalLinearity", Value: 0x2A, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalLinearityBalance", Value: 0x2C, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalPosition", Value: 0x30, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalSize", Value: 0x32, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalPincushion", Value: 0x34, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalPincushionBalance", Value: 0x36, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalMisconvergence", Value: 0x38, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalLinearity", Value: 0x3A, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalLinearityBalance", Value: 0x3C, Type: TypeNone, Clear: false, Child: nil},
	{Name: "ParallelogramDistortionKeyBalance", Value: 0x40, Type: TypeNone, Clear: false, Child: nil},
	{Name: "TrapezoidalDistortionKey", Value: 0x42, Type: TypeNone, Clear: false, Child: nil},
	{Name: "TiltRotation", Value: 0x44, Type: TypeNone, Clear: false, Child: nil},
	{Name: "TopCornerDistortionControl", Value: 0x46, Type: TypeNone, Clear: false, Child: nil},
	{Name: "TopCornerDistortionBalance", Value: 0x48, Type: TypeNone, Clear: false, Child: nil},
	{Name: "BottomCornerDistortionControl", Value: 0x4A, Type: TypeNone, Clear: false, Child: nil},
	{Name: "BottomCornerDistortionBalance", Value: 0x4C, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalMoire", Value: 0x56, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalMoire", Value: 0x58, Type: TypeNone, Clear: false, Child: nil},
	{Name: "RedVideoBlackLevel", Value: 0x6C, Type: TypeNone, Clear: false, Child: nil},
	{Name: "GreenVideoBlackLevel", Value: 0x6E, Type: TypeNone, Clear: false, Child: nil},
	{Name: "BlueVideoBlackLevel", Value: 0x70, Type: TypeNone, Clear: false, Child: nil},
	{Name: "InputLevelSelect", Value: 0x5E, Type: TypeNone, Clear: false, Child: nil},
	{Name: "InputSourceSelect", Value: 0x60, Type: TypeNone, Clear: false, Child: nil},
	{Name: "OnScreenDisplay", Value: 0xCA, Type: TypeNone, Clear: false, Child: nil},
	{Name: "StereoMode", Value: 0xD4, Type: TypeNone, Clear: false, Child: nil},
	{Name: "AutoSizeCenter", Value: 0xA2, Type: TypeNone, Clear: false, Child: nil},
	{Name: "PolarityHorizontalSynchronization", Value: 0xA4, Type: TypeNone, Clear: false, Child: nil},
	{Name: "PolarityVerticalSynchronization", Value: 0xA6, Type: TypeNone, Clear: false, Child: nil},
	{Name: "SynchronizationType", Value: 0xA8, Type: TypeNone, Clear: false, Child: nil},
	{Name: "ScreenOrientation", Value: 0xAA, Type: TypeNone, Clear: false, Child: nil},
	{Name: "HorizontalFrequency", Value: 0xAC, Type: TypeNone, Clear: false, Child: nil},
	{Name: "VerticalFrequency", Value: 0xAE, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Degauss", Value: 0x01, Type: TypeNone, Clear: false, Child: nil},
	{Name: "Settings", Value: 0xB0, Type: TypeNone, Clear: false, Child: nil},
}

