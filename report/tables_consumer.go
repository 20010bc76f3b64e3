package report

var telephonyDeviceTable = Table{
	{Name: "Phone", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "AnsweringMachine", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "MessageControls", Value: 0x03, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Handset", Value: 0x04, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Headset", Value: 0x05, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "TelephonyKeyPad", Value: 0x06, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "ProgrammableButton", Value: 0x07, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "HookSwitch", Value: 0x20, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Flash", Value: 0x21, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Feature", Value: 0x22, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Hold", Value: 0x23, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Radial", Value: 0x24, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Transfer", Value: 0x25, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Drop", Value: 0x26, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Park", Value: 0x27, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ForwardCalls", Value: 0x28, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "AlternateFunction", Value: 0x29, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Line", Value: 0x2A, Type: TypeOneShotControl | TypeNamedArray, Clear: false, Child: nil},
	{Name: "SpeakerPhone", Value: 0x2B, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Conference", Value: 0x2C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "RingEnable", Value: 0x2D, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "RingSelect", Value: 0x2E, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PhoneMute", Value: 0x2F, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CallerId", Value: 0x30, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Send", Value: 0x31, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SpeedDial", Value: 0x50, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "StoreNumber", Value: 0x51, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "RecallNumber", Value: 0x52, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PhoneDirectory", Value: 0x53, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "VoiceMail", Value: 0x70, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ScreenCalls", Value: 0x71, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DoNotDisturb", Value: 0x72, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Message", Value: 0x73, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "AnswerOnOff", Value: 0x74, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "InsideDialTone", Value: 0x90, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "OutsideDialTone", Value: 0x91, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "InsideRingTone", Value: 0x92, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "OutsideRingTone", Value: 0x93, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "PriorityRingTone", Value: 0x94, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "InsideRingback", Value: 0x95, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "PriorityRingback", Value: 0x96, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "LineBusyTone", Value: 0x97, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "ReorderTone", Value: 0x98, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "CallWaitingTone", Value: 0x99, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "ConfirmationTone1", Value: 0x9A, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "ConfirmationTone2", Value: 0x9B, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "TonesOff", Value: 0x9C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "OutsideRingback", Value: 0x9D, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Ringer", Value: 0x9E, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "PhoneKey0", Value: 0xB0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey1", Value: 0xB1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey2", Value: 0xB2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey3", Value: 0xB3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey4", Value: 0xB4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey5", Value: 0xB5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey6", Value: 0xB6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey7", Value: 0xB7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey8", Value: 0xB8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKey9", Value: 0xB9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKeyStar", Value: 0xBA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKeyPound", Value: 0xBB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKeyA", Value: 0xBC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKeyB", Value: 0xBD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKeyC", Value: 0xBE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneKeyD", Value: 0xBF, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneCallHistoryKey", Value: 0xC0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneCallerIdKey", Value: 0xC1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PhoneSettingsKey", Value: 0xC2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HostControl", Value: 0xF0, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "HostAvailable", Value: 0xF1, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "HostCallActive", Value: 0xF2, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ActivateHandsetAudio", Value: 0xF3, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "RingType", Value: 0xF4, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "RediablePhoneNumber", Value: 0xF5, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "StopRingTone", Value: 0xF8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PstnRingTone", Value: 0xF9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HostRingTone", Value: 0xFA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlertSoundError", Value: 0xFB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlertSoundConfirm", Value: 0xFC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlertSoundNotification", Value: 0xFD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SilentRing", Value: 0xFE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "EmailMessageWaiting", Value: 0x108, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "VoicemailMessageWaiting", Value: 0x109, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "HostHold", Value: 0x10A, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "IncomingCallHistoryCount", Value: 0x110, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "OutgoingCallHistoryCount", Value: 0x111, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "IncomingCallHistory", Value: 0x112, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "OutgoingCallHistory", Value: 0x113, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "PhoneLocale", Value: 0x114, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PhoneTimeSecond", Value: 0x140, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PhoneTimeMinute", Value: 0x141, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PhoneTimeHour", Value: 0x142, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PhoneTimeDay", Value: 0x143, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PhoneTimeMonth", Value: 0x144, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PhoneTimeYear", Value: 0x145, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "HandsetNickname", Value: 0x146, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AddressBookId", Value: 0x147, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CallDuration", Value: 0x14A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DualModePhone", Value: 0x14B, Type: TypeApplicationCollection, Clear: false, Child: nil},
}

var consumerTable = Table{
	{Name: "ConsumerControl", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "NumericKeyPad", Value: 0x02, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "ProgrammableButtons", Value: 0x03, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "Microphone", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Headphone", Value: 0x05, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "GraphicEqualizer", Value: 0x06, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Plus10", Value: 0x20, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Plus100", Value: 0x21, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "AmPm", Value: 0x22, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Power", Value: 0x30, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Reset", Value: 0x31, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Sleep", Value: 0x32, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SleepAfter", Value: 0x33, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SleepMode", Value: 0x34, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "Illumination", Value: 0x35, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "FunctionButtons", Value: 0x36, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "Menu", Value: 0x40, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "MenuPick", Value: 0x41, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MenuUp", Value: 0x42, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MenuDown", Value: 0x43, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MenuLeft", Value: 0x44, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MenuRight", Value: 0x45, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MenuEscape", Value: 0x46, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MenuValueIncrease", Value: 0x47, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MenuValueDecrease", Value: 0x48, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "DataOnScreen", Value: 0x60, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ClosedCaption", Value: 0x61, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ClosedCaptionSelect", Value: 0x62, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "VcrTv", Value: 0x63, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "BroadcastMode", Value: 0x64, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Snapshot", Value: 0x65, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Still", Value: 0x66, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PictureInPictureToggle", Value: 0x67, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PictureInPictureSwap", Value: 0x68, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "RedMenuButton", Value: 0x69, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "GreenMenuButton", Value: 0x6A, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "BlueMenuButton", Value: 0x6B, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "YellowMenuButton", Value: 0x6C, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Aspect", Value: 0x6D, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Mode3dSelect", Value: 0x6E, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "DisplayBrightnessIncrement", Value: 0x6F, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "DisplayBrightnessDecrement", Value: 0x70, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "DisplayBrightness", Value: 0x71, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "DisplayBacklightToggle", Value: 0x72, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DisplaySetBrightnessToMinimum", Value: 0x73, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "DisplaySetBrightnessToMaximum", Value: 0x74, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "DisplaySetAutoBrightness", Value: 0x75, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CameraAccessEnabled", Value: 0x76, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CameraAccessDisabled", Value: 0x77, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "CameraAccessToggle", Value: 0x78, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "KeyboardBrightnessIncrement", Value: 0x79, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "KeyboardBrightnessDecrement", Value: 0x7A, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "KeyboardBacklightSetLevel", Value: 0x7B, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "KeyboardBacklightOoc", Value: 0x7C, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "KeyboardBacklightSetMinimum", Value: 0x7D, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "KeyboardBacklightSetMaximum", Value: 0x7E, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "KeyboardBacklightAuto", Value: 0x7F, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Selection", Value: 0x80, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "AssignSelection", Value: 0x81, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ModeStep", Value: 0x82, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "RecallLast", Value: 0x83, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "EnterChannel", Value: 0x84, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "OrderMovie", Value: 0x85, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Channel", Value: 0x86, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "MediaSelection", Value: 0x87, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "MediaSelectComputer", Value: 0x88, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectTv", Value: 0x89, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectWww", Value: 0x8A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectDvd", Value: 0x8B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectTelephone", Value: 0x8C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectProgramGuide", Value: 0x8D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectVideoPhone", Value: 0x8E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectGames", Value: 0x8F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectMessages", Value: 0x90, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectCd", Value: 0x91, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectVcr", Value: 0x92, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectTuner", Value: 0x93, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Quit", Value: 0x94, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Help", Value: 0x95, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "MediaSelectTape", Value: 0x96, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectCable", Value: 0x97, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectSatellite", Value: 0x98, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectSecurity", Value: 0x99, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectHome", Value: 0x9A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MediaSelectCall", Value: 0x9B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ChannelIncrement", Value: 0x9C, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ChannelDecrement", Value: 0x9D, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MediaSelectSap", Value: 0x9E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VcrPlus", Value: 0xA0, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Once", Value: 0xA1, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Daily", Value: 0xA2, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Weekly", Value: 0xA3, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Monthly", Value: 0xA4, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Play", Value: 0xB0, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Pause", Value: 0xB1, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Record", Value: 0xB2, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "FastForward", Value: 0xB3, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Rewind", Value: 0xB4, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ScanNextTrack", Value: 0xB5, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ScanPreviousTrack", Value: 0xB6, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Stop", Value: 0xB7, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Eject", Value: 0xB8, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "RandomPlay", Value: 0xB9, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SelectDisc", Value: 0xBA, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "EnterDisc", Value: 0xBB, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Repeat", Value: 0xBC, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Tracking", Value: 0xBD, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "TrackNormal", Value: 0xBE, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SlowTracking", Value: 0xBF, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "FrameForward", Value: 0xC0, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "FrameBack", Value: 0xC1, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "Mark", Value: 0xC2, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ClearMark", Value: 0xC3, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "RepeatFromMark", Value: 0xC4, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ReturnToMark", Value: 0xC5, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SearchMarkForward", Value: 0xC6, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SearchMarkBackwards", Value: 0xC7, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "CounterReset", Value: 0xC8, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ShowCounter", Value: 0xC9, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "TrackingIncrement", Value: 0xCA, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "TrackingDecrement", Value: 0xCB, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "StopEject", Value: 0xCC, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PlayPause", Value: 0xCD, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PlaySkip", Value: 0xCE, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "VoiceCommand", Value: 0xCF, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "InvokeCaptureInterface", Value: 0xD0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StartOrStopGameRecording", Value: 0xD1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HistoricalGameCapture", Value: 0xD2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "CaptureGameScreenshot", Value: 0xD3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ShowOrHideRecordingIndicator", Value: 0xD4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StartOrStopMicrophoneCapture", Value: 0xD5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StartOrStopCameraCapture", Value: 0xD6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StartOrStopGameBroadcast", Value: 0xD7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Volume", Value: 0xE0, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Balance", Value: 0xE1, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Mute", Value: 0xE2, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Bass", Value: 0xE3, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Treble", Value: 0xE4, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "BassBoost", Value: 0xE5, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SurroundMode", Value: 0xE6, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Loudness", Value: 0xE7, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Mpx", Value: 0xE8, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "VolumeIncrement", Value: 0xE9, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "VolumeDecrement", Value: 0xEA, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "SpeedSelect", Value: 0xF0, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PlaybackSpeed", Value: 0xF1, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "StandardPlay", Value: 0xF2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "LongPlay", Value: 0xF3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExtendedPlay", Value: 0xF4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Slow", Value: 0xF5, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "FanEnable", Value: 0x100, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "FanSpeed", Value: 0x101, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "LightEnable", Value: 0x102, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "LightIlluminationLevel", Value: 0x103, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "ClimateControlEnable", Value: 0x104, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "RoomTemperature", Value: 0x105, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "SecurityEnalbe", Value: 0x106, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "FireAlarm", Value: 0x107, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PoliceAlarm", Value: 0x108, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Proximity", Value: 0x109, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "Motion", Value: 0x10A, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "DuressAlarm", Value: 0x10B, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "HoldupAlarm", Value: 0x10C, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "MedicalAlarm", Value: 0x10D, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "BalanceRight", Value: 0x150, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "BalanceLeft", Value: 0x151, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "BassIncrement", Value: 0x152, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "BassDecrement", Value: 0x153, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "TrebleIncrement", Value: 0x154, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "TrebleDecrement", Value: 0x155, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "SpeakerSystem", Value: 0x160, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelLeft", Value: 0x161, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelRight", Value: 0x162, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelCenter", Value: 0x163, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelFront", Value: 0x164, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelCenterFront", Value: 0x165, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelSide", Value: 0x166, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelSurround", Value: 0x167, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelLowFrequencyEnhancement", Value: 0x168, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelTop", Value: 0x169, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ChannelUnknown", Value: 0x16A, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "SubChannel", Value: 0x170, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "SubChannelIncrement", Value: 0x171, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SubChannelDecrement", Value: 0x172, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "AlternateAudioIncrement", Value: 0x173, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "AlternateAudioDecrement", Value: 0x174, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ApplicationLaunchButtons", Value: 0x180, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "AlLaunchButtonConfigurationTool", Value: 0x181, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlProgrammableButtonConfiguration", Value: 0x182, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlConsumerControlConfiguration", Value: 0x183, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlWordProcessor", Value: 0x184, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlTextEditor", Value: 0x185, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlSpreadsheet", Value: 0x186, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlGraphicsEditor", Value: 0x187, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlPresentationApp", Value: 0x188, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlDatabaseApp", Value: 0x189, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlEmailReader", Value: 0x18A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlNewsreader", Value: 0x18B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlVoicemail", Value: 0x18C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlContactsAddressBook", Value: 0x18D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlCalenderSchedule", Value: 0x18E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlTaskProjectManager", Value: 0x18F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlLogJournalTimecard", Value: 0x190, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlCheckbookFinance", Value: 0x191, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlCalculator", Value: 0x192, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlAvCapturePlayback", Value: 0x193, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlLocalMachineBrowser", Value: 0x194, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlLanWanBrowser", Value: 0x195, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlInternetBrowser", Value: 0x196, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlRemoteNetworkingIspConnect", Value: 0x197, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlNetworkConference", Value: 0x198, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlNetworkChat", Value: 0x199, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlTelephonyDialer", Value: 0x19A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlLogon", Value: 0x19B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlLogoff", Value: 0x19C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlLogonLogoff", Value: 0x19D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlTerminalLockScreensaver", Value: 0x19E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlControlPanel", Value: 0x19F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlCommandLineProcessorRun", Value: 0x1A0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlProcessTaskManager", Value: 0x1A1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlSelectTaskApplication", Value: 0x1A2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlNextTaskApplication", Value: 0x1A3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlPreviousTaskApplication", Value: 0x1A4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlPreemptiveHaltTaskApplication", Value: 0x1A5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlIntegratedHelpCenter", Value: 0x1A6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlDocuments", Value: 0x1A7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlThesaurus", Value: 0x1A8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlDictionary", Value: 0x1A9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlDesktop", Value: 0x1AA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlSpellCheck", Value: 0x1AB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlGrammarCheck", Value: 0x1AC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlWirelessStatus", Value: 0x1AD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlKeyboardLayout", Value: 0x1AE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlVirusProtection", Value: 0x1AF, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlEncryption", Value: 0x1B0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlScreenSaver", Value: 0x1B1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlAlarms", Value: 0x1B2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlClock", Value: 0x1B3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlFileBrowser", Value: 0x1B4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlPowerStatus", Value: 0x1B5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlImageBrowser", Value: 0x1B6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlAudioBrowser", Value: 0x1B7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlMovieBrowser", Value: 0x1B8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlDigitalRightsManager", Value: 0x1B9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlDigitalWallet", Value: 0x1BA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlInstantMessaging", Value: 0x1BC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlOemFeatureTipsTutorialBrowser", Value: 0x1BD, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlOemHelp", Value: 0x1BE, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlOnlineCommunity", Value: 0x1BF, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlEntertainmentContentBrowser", Value: 0x1C0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlOnlineShoppingBrowser", Value: 0x1C1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlSmartCardInformationHelp", Value: 0x1C2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlMarketMonitorFinanceBrowser", Value: 0x1C3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlCustomizedCorporateNewsBrowser", Value: 0x1C4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlOnlineActivityBrowser", Value: 0x1C5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlResearchSearchBrowser", Value: 0x1C6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlAudioPlayer", Value: 0x1C7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlMessageStatus", Value: 0x1C8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlContactSync", Value: 0x1C9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlNavigation", Value: 0x1CA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AlContextAwareDesktopAssistant", Value: 0x1CB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GenericGuiApplicationControls", Value: 0x200, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "AcNew", Value: 0x201, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcOpen", Value: 0x202, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcClose", Value: 0x203, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcExit", Value: 0x204, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcMaximize", Value: 0x205, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcMinimize", Value: 0x206, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSave", Value: 0x207, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPrint", Value: 0x208, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcProperties", Value: 0x209, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcUndo", Value: 0x21A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcCopy", Value: 0x21B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcCut", Value: 0x21C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPaste", Value: 0x21D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectAll", Value: 0x21E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFind", Value: 0x21F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFindAndReplace", Value: 0x220, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSearch", Value: 0x221, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcGoTo", Value: 0x222, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcHome", Value: 0x223, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcBack", Value: 0x224, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcForward", Value: 0x225, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcStop", Value: 0x226, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcRefresh", Value: 0x227, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPreviousLink", Value: 0x228, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcNextLink", Value: 0x229, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcBookmarks", Value: 0x22A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcHistory", Value: 0x22B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSubscriptions", Value: 0x22C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcZoomIn", Value: 0x22D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcZoomOut", Value: 0x22E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcZoom", Value: 0x22F, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "AcFullScreenView", Value: 0x230, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcNormalView", Value: 0x231, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcViewToggle", Value: 0x232, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcScrollUp", Value: 0x233, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcScrollDown", Value: 0x234, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcScroll", Value: 0x235, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "AcPanLeft", Value: 0x236, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPanRight", Value: 0x237, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPan", Value: 0x238, Type: TypeLinearControl, Clear: false, Child: nil},
	{Name: "AcNewWindow", Value: 0x239, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcTileHorizontally", Value: 0x23A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcTileVertically", Value: 0x23B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFormat", Value: 0x23C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcEdit", Value: 0x23D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcBold", Value: 0x23E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcItalics", Value: 0x23F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcUnderline", Value: 0x240, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcStrikethrough", Value: 0x241, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSubscript", Value: 0x242, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSuperscript", Value: 0x243, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcAllCaps", Value: 0x244, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcRemote", Value: 0x245, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcResize", Value: 0x246, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFlipHorizontal", Value: 0x247, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFlipVertical", Value: 0x248, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcMirrorHorizontal", Value: 0x249, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcMirrorVertical", Value: 0x24A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFontSelect", Value: 0x24B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFontColor", Value: 0x24C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFontSize", Value: 0x24D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyLeft", Value: 0x24E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyCenterH", Value: 0x24F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyRight", Value: 0x250, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyBlockH", Value: 0x251, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyTop", Value: 0x252, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyCenterV", Value: 0x253, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyBottom", Value: 0x254, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcJustifyBlockV", Value: 0x255, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcIndentDecrease", Value: 0x256, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcIndentIncrease", Value: 0x257, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcNumberedList", Value: 0x258, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcRestartNumbering", Value: 0x259, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcBulletedList", Value: 0x25A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPromote", Value: 0x25B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDemote", Value: 0x25C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcYes", Value: 0x25D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcNo", Value: 0x25E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcCancel", Value: 0x25F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcCatalog", Value: 0x260, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcBuyCheckout", Value: 0x261, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcAddToChart", Value: 0x262, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcExpand", Value: 0x263, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcExpandAll", Value: 0x264, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcCollapse", Value: 0x265, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcCollapseAll", Value: 0x266, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPrintPreview", Value: 0x267, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcPasteSpecial", Value: 0x268, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcInsertMode", Value: 0x269, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDelete", Value: 0x26A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcLock", Value: 0x26B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcUnlock", Value: 0x26C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcProtect", Value: 0x26D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcUnprotect", Value: 0x26E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcAttachComment", Value: 0x26F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDeleteComment", Value: 0x270, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcViewComment", Value: 0x271, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectWord", Value: 0x272, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectSentence", Value: 0x273, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectPragraph", Value: 0x274, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectColumn", Value: 0x275, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectRow", Value: 0x276, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectTable", Value: 0x277, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectObject", Value: 0x278, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcRedoRepeat", Value: 0x279, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSort", Value: 0x27A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSortAscending", Value: 0x27B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSortDescending", Value: 0x27C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcFilter", Value: 0x27D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSetClock", Value: 0x27E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcViewClock", Value: 0x27F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSelectTimeZone", Value: 0x280, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcEditTimeZones", Value: 0x281, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSetAlarm", Value: 0x282, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcClearAlarm", Value: 0x283, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSnoozeAlarm", Value: 0x284, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcResetAlarm", Value: 0x285, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSynchronize", Value: 0x286, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSendReceive", Value: 0x287, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSendTo", Value: 0x288, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcReply", Value: 0x289, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcReplyAll", Value: 0x28A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcForwardMsg", Value: 0x28B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSend", Value: 0x28C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcAttachFile", Value: 0x28D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcUpload", Value: 0x28E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDownload", Value: 0x28F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSetBoarders", Value: 0x290, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcInsertRow", Value: 0x291, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcInsertColumn", Value: 0x292, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcInsertFile", Value: 0x293, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcInsertPicture", Value: 0x294, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcInsertObject", Value: 0x295, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcInsertSymbol", Value: 0x296, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSaveAndClose", Value: 0x297, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcRename", Value: 0x298, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcMerge", Value: 0x299, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSplit", Value: 0x29A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDistributeHorizontally", Value: 0x29B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDistributeVertically", Value: 0x29C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcNextKeyboardLayoutSelect", Value: 0x29D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcNavigateGuidance", Value: 0x29E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDesktopShowAllWindows", Value: 0x29F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSoftKeyLeft", Value: 0x2A0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcSoftKeyRight", Value: 0x2A1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcDesktopShowAllApplications", Value: 0x2A2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AcIdleKeepAlive", Value: 0x2B0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExtendedKeyboardAttributesCollection", Value: 0x2C0, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "KeyboardFormFactor", Value: 0x2C1, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "KeyboardKeyType", Value: 0x2C2, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "KeyboardPhysicalLayout", Value: 0x2C3, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "VendorSpecificKeyboardPhysicalLayout", Value: 0x2C4, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "KeyboardIetfLanguageTagIndex", Value: 0x2C5, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "ImplementedKeyboardInputAssistControls", Value: 0x2C6, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "KeyboardInputAssistPrevious", Value: 0x2C7, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInputAssistNext", Value: 0x2C8, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInputAssistPreviousGroup", Value: 0x2C9, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInputAssistNextGroup", Value: 0x2CA, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInputAssistAccept", Value: 0x2CB, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KeyboardInputAssistCancel", Value: 0x2CC, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PrivacyScreenToggle", Value: 0x2D0, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "PrivacyScreenLevelDecrement", Value: 0x2D1, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "PrivacyScreenLevelIncrement", Value: 0x2D2, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "PrivacyScreenLevelMinimum", Value: 0x2D3, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "PrivacyScreenLevelMaximum", Value: 0x2D4, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ContactEdited", Value: 0x500, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ContactAdded", Value: 0x501, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ContactRecordedActive", Value: 0x502, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ContactIndex", Value: 0x503, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactNickname", Value: 0x504, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactFirstName", Value: 0x505, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactLastName", Value: 0x506, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactFullName", Value: 0x507, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactPhoneNumberPersonal", Value: 0x508, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactPhoneNumberBusiness", Value: 0x509, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactPhoneNumberMobile", Value: 0x50A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactPhoneNumberPager", Value: 0x50B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactPhoneNumberFax", Value: 0x50C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactPhoneNumberOther", Value: 0x50D, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactEmailPersonal", Value: 0x50E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactEmailBusiness", Value: 0x50F, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactEmailOther", Value: 0x510, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactEmailMain", Value: 0x511, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactSpeedDialNumber", Value: 0x512, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactStatusFlag", Value: 0x513, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ContactMisc", Value: 0x514, Type: TypeDynamicValue, Clear: false, Child: nil},
}

