package report

var genericDesktopTable = Table{
	{Name: "Pointer", Value: 0x01, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Mouse", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Joystick", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Gamepad", Value: 0x05, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Keyboard", Value: 0x06, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Keypad", Value: 0x07, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "MultiAxisController", Value: 0x08, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "TabletPcSystemControls", Value: 0x09, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "WaterCoolingDevice", Value: 0x0A, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "ComputerChassisDevice", Value: 0x0B, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "WirelessRadioControls", Value: 0x0C, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "PortableDeviceControl", Value: 0x0D, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "SystemMultiAxisController", Value: 0x0E, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "SpatialController", Value: 0x0F, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "AssistiveControl", Value: 0x10, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "DeviceDock", Value: 0x11, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "DockableDevice", Value: 0x12, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "X", Value: 0x30, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Y", Value: 0x31, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Z", Value: 0x32, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Rx", Value: 0x33, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Ry", Value: 0x34, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Rz", Value: 0x35, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Slider", Value: 0x36, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Dial", Value: 0x37, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Wheel", Value: 0x38, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "HatSwitch", Value: 0x39, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CountedBuffer", Value: 0x3A, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ByteCount", Value: 0x3B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MotionWakeup", Value: 0x3C, Type: TypeOneShotControl | TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "Start", Value: 0x3D, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Select", Value: 0x3E, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Vx", Value: 0x40, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Vy", Value: 0x41, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Vz", Value: 0x42, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Vbrx", Value: 0x43, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Vbry", Value: 0x44, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Vbrz", Value: 0x45, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Vno", Value: 0x46, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FeatureNotification", Value: 0x47, Type: TypeDynamicValue | TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "ResolutionMultiplier", Value: 0x48, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Qx", Value: 0x49, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Qy", Value: 0x4A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Qz", Value: 0x4B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Qw", Value: 0x4C, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SystemControl", Value: 0x80, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "SystemPowerDown", Value: 0x81, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemSleep", Value: 0x82, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemWakeUp", Value: 0x83, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemContextMenu", Value: 0x84, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemMainMenu", Value: 0x85, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemAppMenu", Value: 0x86, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemMenuHelp", Value: 0x87, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemMenuExit", Value: 0x88, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemMenuSelect", Value: 0x89, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemMenuRight", Value: 0x8A, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "SystemMenuLeft", Value: 0x8B, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "SystemMenuUp", Value: 0x8C, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "SystemMenuDown", Value: 0x8D, Type: TypeRetriggerControl, Clear: false, Child: nil},
	{Name: "SystemColdRestart", Value: 0x8E, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemWarmRestart", Value: 0x8F, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "DpadUp", Value: 0x90, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DpadDown", Value: 0x91, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DpadRight", Value: 0x92, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DpadLeft", Value: 0x93, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "IndexTrigger", Value: 0x94, Type: TypeMomentaryControl | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PalmTrigger", Value: 0x95, Type: TypeMomentaryControl | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Thumbstick", Value: 0x96, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "SystemFunctionShift", Value: 0x97, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "SystemFunctionShiftLock", Value: 0x98, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SystemFunctionShiftLockIndicator", Value: 0x99, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SystemDismissNotification", Value: 0x9A, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDoNotDisturb", Value: 0x9B, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SystemDock", Value: 0xA0, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemUndock", Value: 0xA1, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemSetup", Value: 0xA2, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemBreak", Value: 0xA3, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDebuggerBreak", Value: 0xA4, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ApplicationBreak", Value: 0xA5, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ApplicationDebuggerBreak", Value: 0xA6, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemSpeakerMute", Value: 0xA7, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemHibernate", Value: 0xA8, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplayInvert", Value: 0xB0, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplayInternal", Value: 0xB1, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplayExternal", Value: 0xB2, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplayBoth", Value: 0xB3, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplayDual", Value: 0xB4, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplayToggleIntExtMode", Value: 0xB5, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplaySwapPrimarySecondary", Value: 0xB6, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SystemDisplayToggleLcdAutoscale", Value: 0xB7, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SensorZone", Value: 0xC0, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Rpm", Value: 0xC1, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CoolantLevel", Value: 0xC2, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "CoolantCriticalLevel", Value: 0xC3, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "CoolantPump", Value: 0xC4, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ChassisEnclosure", Value: 0xC5, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "WirelessRadioButton", Value: 0xC6, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "WirelessRadioLed", Value: 0xC7, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "WirelessRadioSliderSwitch", Value: 0xC8, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SystemDisplayRotationLockButton", Value: 0xC9, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "SystemDisplayRotationLockSliderSwitch", Value: 0xCA, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ControlEnable", Value: 0xCB, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DockableDeviceUniqueId", Value: 0xD0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DockableDeviceVendorId", Value: 0xD1, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DockableDevicePrimaryUsagePage", Value: 0xD2, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DockableDevicePrimaryUsageId", Value: 0xD3, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DockableDeviceDockingState", Value: 0xD4, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DockableDeviceDisplayOcclusion", Value: 0xD5, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "DockableDeviceObjectType", Value: 0xD6, Type: TypeDynamicValue, Clear: false, Child: nil},
}

