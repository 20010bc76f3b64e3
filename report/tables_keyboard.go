package report

var keyboardTable = Table{
	{Name: "NoEventIndicated", Value: 0x00, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardErrorRollOver", Value: 0x01, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPostFail", Value: 0x02, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardErrorUndefined", Value: 0x03, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardA", Value: 0x04, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardB", Value: 0x05, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardC", Value: 0x06, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardD", Value: 0x07, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardE", Value: 0x08, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF", Value: 0x09, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardG", Value: 0x0A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardH", Value: 0x0B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardI", Value: 0x0C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardJ", Value: 0x0D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardK", Value: 0x0E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardL", Value: 0x0F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardM", Value: 0x10, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardN", Value: 0x11, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardO", Value: 0x12, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardP", Value: 0x13, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardQ", Value: 0x14, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardR", Value: 0x15, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardS", Value: 0x16, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardT", Value: 0x17, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardU", Value: 0x18, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardV", Value: 0x19, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardW", Value: 0x1A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardX", Value: 0x1B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardY", Value: 0x1C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardZ", Value: 0x1D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard1", Value: 0x1E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard2", Value: 0x1F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard3", Value: 0x20, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard4", Value: 0x21, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard5", Value: 0x22, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard6", Value: 0x23, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard7", Value: 0x24, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard8", Value: 0x25, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard9", Value: 0x26, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keyboard0", Value: 0x27, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardEnter", Value: 0x28, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardEscape", Value: 0x29, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardDelete", Value: 0x2A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardTab", Value: 0x2B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardSpacebar", Value: 0x2C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardMinus", Value: 0x2D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardEqual", Value: 0x2E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardCurlyBracketOpen", Value: 0x2F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardCurlyBracketClose", Value: 0x30, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardBackslash", Value: 0x31, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardNonUsHash", Value: 0x32, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardColon", Value: 0x33, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardApostrophe", Value: 0x34, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardGraveAccentAndTilde", Value: 0x35, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardComma", Value: 0x36, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPoint", Value: 0x37, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardSlash", Value: 0x38, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardCapsLock", Value: 0x39, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF1", Value: 0x3A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF2", Value: 0x3B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF3", Value: 0x3C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF4", Value: 0x3D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF5", Value: 0x3E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF6", Value: 0x3F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF7", Value: 0x40, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF8", Value: 0x41, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF9", Value: 0x42, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF10", Value: 0x43, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF11", Value: 0x44, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF12", Value: 0x45, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPrintScreen", Value: 0x46, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardScrollLock", Value: 0x47, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPause", Value: 0x48, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInsert", Value: 0x49, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardHome", Value: 0x4A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPageUp", Value: 0x4B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardDeleteForward", Value: 0x4C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardEnd", Value: 0x4D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPageDown", Value: 0x4E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardRightArrow", Value: 0x4F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLeftArrow", Value: 0x50, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardDownArrow", Value: 0x51, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardUpArrow", Value: 0x52, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadNumLockAndClear", Value: 0x53, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadDivide", Value: 0x54, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMultiply", Value: 0x55, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMinus", Value: 0x56, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadPlus", Value: 0x57, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadEnter", Value: 0x58, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad1", Value: 0x59, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad2", Value: 0x5A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad3", Value: 0x5B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad4", Value: 0x5C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad5", Value: 0x5D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad6", Value: 0x5E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad7", Value: 0x5F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad8", Value: 0x60, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad9", Value: 0x61, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad0", Value: 0x62, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadPoint", Value: 0x63, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardNonUsBackslash", Value: 0x64, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardApplication", Value: 0x65, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPower", Value: 0x66, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardEqual", Value: 0x67, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF13", Value: 0x68, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF14", Value: 0x69, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF15", Value: 0x6A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF16", Value: 0x6B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF17", Value: 0x6C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF18", Value: 0x6D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF19", Value: 0x6E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF20", Value: 0x6F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF21", Value: 0x70, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF22", Value: 0x71, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF23", Value: 0x72, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardF24", Value: 0x73, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardExecute", Value: 0x74, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardHelp", Value: 0x75, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardMenu", Value: 0x76, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardSelect", Value: 0x77, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardStop", Value: 0x78, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardAgain", Value: 0x79, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardUndo", Value: 0x7A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardCut", Value: 0x7B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardCopy", Value: 0x7C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPaste", Value: 0x7D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardFind", Value: 0x7E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardMute", Value: 0x7F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardVolumeUp", Value: 0x80, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardVolumeDown", Value: 0x81, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLockingCapsLock", Value: 0x82, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLockingNumLock", Value: 0x83, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLockingScrollLock", Value: 0x84, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadComma", Value: 0x85, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadEqual", Value: 0x86, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational1", Value: 0x87, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational2", Value: 0x88, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational3", Value: 0x89, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational4", Value: 0x8A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational5", Value: 0x8B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational6", Value: 0x8C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational7", Value: 0x8D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational8", Value: 0x8E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInternational9", Value: 0x8F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang1", Value: 0x90, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang2", Value: 0x91, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang3", Value: 0x92, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang4", Value: 0x93, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang5", Value: 0x94, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang6", Value: 0x95, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang7", Value: 0x96, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang8", Value: 0x97, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLang9", Value: 0x98, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardAlternateErase", Value: 0x99, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardSysReqAttention", Value: 0x9A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardCancel", Value: 0x9B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardClear", Value: 0x9C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardPrior", Value: 0x9D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardReturn", Value: 0x9E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardSeparator", Value: 0x9F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardOut", Value: 0xA0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardOper", Value: 0xA1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardClearAgain", Value: 0xA2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardCrSelProps", Value: 0xA3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardExSel", Value: 0xA4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad00", Value: 0xB0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Keypad000", Value: 0xB1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ThausendsSeparator", Value: 0xB2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DecimalSeparator", Value: 0xB3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CurrencyUnit", Value: 0xB4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CurrencySubUnit", Value: 0xB5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadBracketOpen", Value: 0xB6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadBracketClose", Value: 0xB7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadCurlyBracketOpen", Value: 0xB8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadCurlyBracketClose", Value: 0xB9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadTab", Value: 0xBA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadBackspace", Value: 0xBB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadA", Value: 0xBC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadB", Value: 0xBD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadC", Value: 0xBE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadD", Value: 0xBF, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadE", Value: 0xC0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadF", Value: 0xC1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadXor", Value: 0xC2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadCircumflex", Value: 0xC3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadPercent", Value: 0xC4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadLessThan", Value: 0xC5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadGreaterThan", Value: 0xC6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadAmpersand", Value: 0xC7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadDoubleAmpersand", Value: 0xC8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadVerticalBar", Value: 0xC9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadDoubleVerticalBar", Value: 0xCA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadColon", Value: 0xCB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadHash", Value: 0xCC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadSpace", Value: 0xCD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadAtSign", Value: 0xCE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadExclamationMark", Value: 0xCF, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMemoryStore", Value: 0xD0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMemoryRecall", Value: 0xD1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMemoryClear", Value: 0xD2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMemoryAdd", Value: 0xD3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMemorySubtract", Value: 0xD4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMemoryMultiply", Value: 0xD5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadMemoryDivide", Value: 0xD6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadPlusMinus", Value: 0xD7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadClear", Value: 0xD8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadClearEntry", Value: 0xD9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadBinary", Value: 0xDA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadOctal", Value: 0xDB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadDecimal", Value: 0xDC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeypadHexadecimal", Value: 0xDD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardLeftControl", Value: 0xE0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "KeyboardLeftShift", Value: 0xE1, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "KeyboardLeftAlt", Value: 0xE2, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "KeyboardLeftGui", Value: 0xE3, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "KeyboardRightControl", Value: 0xE4, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "KeyboardRightShift", Value: 0xE5, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "KeyboardRightAlt", Value: 0xE6, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "KeyboardRightGui", Value: 0xE7, Type: TypeDynamicValue, Clear: false, Child: nil},
}

var ledTable = Table{
	{Name: "NumLock", Value: 0x01, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CapsLock", Value: 0x02, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ScrollLock", Value: 0x03, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Compose", Value: 0x04, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Kana", Value: 0x05, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Power", Value: 0x06, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Shift", Value: 0x07, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DoNotDisturb", Value: 0x08, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Mute", Value: 0x09, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ToneEnable", Value: 0x0A, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "HighCutFilter", Value: 0x0B, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "LowCutFitler", Value: 0x0C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "EqualizerEnable", Value: 0x0D, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SoundFieldOn", Value: 0x0E, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SurroundOn", Value: 0x0F, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Repeat", Value: 0x10, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Stereo", Value: 0x11, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SamplingRateDetect", Value: 0x12, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Spinning", Value: 0x13, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Cav", Value: 0x14, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Clv", Value: 0x15, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "RecordingFormatDetect", Value: 0x16, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "OffHook", Value: 0x17, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Ring", Value: 0x18, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "MessageWaiting", Value: 0x19, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DataMode", Value: 0x1A, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "BatteryOperation", Value: 0x1B, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "BatteryOk", Value: 0x1C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "BatteryLow", Value: 0x1D, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Speaker", Value: 0x1E, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "HeadSet", Value: 0x1F, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Hold", Value: 0x20, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Microphone", Value: 0x21, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Coverage", Value: 0x22, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "NightMode", Value: 0x23, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SendCalls", Value: 0x24, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CallPickup", Value: 0x25, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Conference", Value: 0x26, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Standby", Value: 0x27, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CameraOn", Value: 0x28, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CameraOff", Value: 0x29, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "OnLine", Value: 0x2A, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "OffLine", Value: 0x2B, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Busy", Value: 0x2C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Ready", Value: 0x2D, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "PaperOut", Value: 0x2E, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "PaperJam", Value: 0x2F, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Remote", Value: 0x30, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Forward", Value: 0x31, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Reverse", Value: 0x32, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Stop", Value: 0x33, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Rewind", Value: 0x34, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "FastForward", Value: 0x35, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Play", Value: 0x36, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Pause", Value: 0x37, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Record", Value: 0x38, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Error", Value: 0x39, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "UsageSelectedIndicator", Value: 0x3A, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "UsageInUseIndicator", Value: 0x3B, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "UsageMultiModeIndicator", Value: 0x3C, Type: TypeUsageModifier, Clear: false, Child: nil},
	{Name: "IndicatorOn", Value: 0x3D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "IndicatorFlash", Value: 0x3E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "IndicatorSlowBlink", Value: 0x3F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "IndicatorFastBlink", Value: 0x40, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "IndicatorOff", Value: 0x41, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FlashOnTime", Value: 0x42, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SlowBlinkOnTime", Value: 0x43, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SlowBlinkOffTime", Value: 0x44, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FastBlinkOnTime", Value: 0x45, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FastBlinkOffTime", Value: 0x46, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "UsageIndicatorColor", Value: 0x47, Type: TypeUsageModifier, Clear: false, Child: nil},
	{Name: "IndicatorRed", Value: 0x48, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "IndicatorGreen", Value: 0x49, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "IndicatorAmber", Value: 0x4A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GenericIndicator", Value: 0x4B, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SystemSyspend", Value: 0x4C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ExternalPowerConnected", Value: 0x4D, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "IndicatorBlue", Value: 0x4E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "IndicatorOrange", Value: 0x4F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GoodStatus", Value: 0x50, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "WarningStatus", Value: 0x51, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "RgbLed", Value: 0x52, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "RedLedChannel", Value: 0x53, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BlueLedChannel", Value: 0x54, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "GreenLedChannel", Value: 0x55, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LedIntensity", Value: 0x56, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PlayerIndicator", Value: 0x60, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "Player1", Value: 0x61, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Player2", Value: 0x62, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Player3", Value: 0x63, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Player4", Value: 0x64, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Player5", Value: 0x65, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Player6", Value: 0x66, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Player7", Value: 0x67, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Player8", Value: 0x68, Type: TypeSelector, Clear: false, Child: nil},
}

var buttonTable = Table{
	{Name: "NoButtonPressed", Value: 0x00, Type: TypeSelector | TypeOnOffControl | TypeMomentaryControl | TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Button#", Value: 0x01, Type: TypeSelector | TypeOnOffControl | TypeMomentaryControl | TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Button#", Value: 0xFFFF, Type: TypeSelector | TypeOnOffControl | TypeMomentaryControl | TypeOneShotControl, Clear: false, Child: nil},
}

var ordinalTable = Table{
	{Name: "Instance#", Value: 0x01, Type: TypeUsageModifier, Clear: false, Child: nil},
	{Name: "Instance#", Value: 0xFFFF, Type: TypeUsageModifier, Clear: false, Child: nil},
}

