package report

var simulationControlsTable = Table{
	{Name: "FlighSimulationDevice", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "AutomobileSimulationDevice", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "TankSimulationDevice", Value: 0x03, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "SpaceshipSimulationDevice", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "SubmarineSimulationDevice", Value: 0x05, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "SailingSimulationDevice", Value: 0x06, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "MotorcycleSimiulationDevice", Value: 0x07, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "SportsSimulationDevice", Value: 0x08, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "AirplaneSimulationDevice", Value: 0x09, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "HelicopterSimulationDevice", Value: 0x0A, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "MagicCarpetSimulationDevice", Value: 0x0B, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "BicycleSimulationDevice", Value: 0x0C, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "FlightControlStick", Value: 0x20, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "FlightStick", Value: 0x21, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "CyclicControl", Value: 0x22, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "CyclicTrim", Value: 0x23, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "FlightYoke", Value: 0x24, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "TrackControl", Value: 0x25, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Aileron", Value: 0xB0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AileronTrim", Value: 0xB1, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AntiTorqueControl", Value: 0xB2, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "AutopilotEnable", Value: 0xB3, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ChaffRelease", Value: 0xB4, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "CollectiveControl", Value: 0xB5, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DiveBrake", Value: 0xB6, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ElectronicCountermeasures", Value: 0xB7, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "Elevator", Value: 0xB8, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "ElevatorTrim", Value: 0xB9, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Rudder", Value: 0xBA, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Throttle", Value: 0xBB, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FlightCommunications", Value: 0xBC, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "FlareRelease", Value: 0xBD, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "LandingGear", Value: 0xBE, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "ToeBrake", Value: 0xBF, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Trigger", Value: 0xC0, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "WeaponsArm", Value: 0xC1, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "WeaponsSelect", Value: 0xC2, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "WingFlaps", Value: 0xC3, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Accelerator", Value: 0xC4, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Brake", Value: 0xC5, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Clutch", Value: 0xC6, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Shifter", Value: 0xC7, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Steering", Value: 0xC8, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "TurretDirection", Value: 0xC9, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BarrelElevation", Value: 0xCA, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DivePlane", Value: 0xCB, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Ballast", Value: 0xCC, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "BicycleCrank", Value: 0xCD, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "HandleBars", Value: 0xCE, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "FrontBrake", Value: 0xCF, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RearBrake", Value: 0xD0, Type: TypeDynamicValue, Clear: false, Child: nil},
}

var vrControlsTable = Table{
	{Name: "Belt", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "BodySuit", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Flexor", Value: 0x03, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Grove", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "HeadTracker", Value: 0x05, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "HeadMountedDisplay", Value: 0x06, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "HandTracker", Value: 0x07, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Oculometer", Value: 0x08, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Vest", Value: 0x09, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "AnimatronicDevice", Value: 0x0A, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "StereoEnable", Value: 0x20, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "DisplayEnable", Value: 0x21, Type: TypeOnOffControl, Clear: false, Child: nil},
}

var sportControlsTable = Table{
	{Name: "BaseballBat", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "GolfBat", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "RowingMachine", Value: 0x03, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Treadmill", Value: 0x04, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "Oar", Value: 0x30, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Slope", Value: 0x31, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Rate", Value: 0x32, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "StickSpeed", Value: 0x33, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "StickFaceAngle", Value: 0x34, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "StickHeelToe", Value: 0x35, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "StickFollowThrough", Value: 0x36, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "StickTempo", Value: 0x37, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "StickType", Value: 0x38, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "StickHeight", Value: 0x39, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Putter", Value: 0x50, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron1", Value: 0x51, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron2", Value: 0x52, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron3", Value: 0x53, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron4", Value: 0x54, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron5", Value: 0x55, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron6", Value: 0x56, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron7", Value: 0x57, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron8", Value: 0x58, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron9", Value: 0x59, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron10", Value: 0x5A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Iron11", Value: 0x5B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SandWedge", Value: 0x5C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "LoftWedge", Value: 0x5D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PowerWedge", Value: 0x5E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Wood1", Value: 0x5F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Wood3", Value: 0x60, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Wood5", Value: 0x61, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Wood7", Value: 0x62, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Wood9", Value: 0x63, Type: TypeSelector, Clear: false, Child: nil},
}

var gameControlsTable = Table{
	{Name: "3dGameController", Value: 0x01, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "PinballDevice", Value: 0x02, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "GunDevice", Value: 0x03, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "PointOfView", Value: 0x20, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "TurnRightLeft", Value: 0x21, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PitchForwardBackward", Value: 0x22, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "RollRightLeft", Value: 0x23, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MoveRightLeft", Value: 0x24, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MoveForwardBackward", Value: 0x25, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "MoveUpDown", Value: 0x26, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LeanRightLeft", Value: 0x27, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "LeanForwardBackward", Value: 0x28, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "HeightOfPov", Value: 0x29, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "Flipper", Value: 0x2A, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "SecondaryFlipper", Value: 0x2B, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "Bump", Value: 0x2C, Type: TypeMomentaryControl, Clear: false, Child: nil},
	{Name: "NewGame", Value: 0x2D, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "ShootBall", Value: 0x2E, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "Player", Value: 0x2F, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "GunBolt", Value: 0x30, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "GunClip", Value: 0x31, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "GunSelector", Value: 0x32, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "GunSingleShot", Value: 0x33, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GunBurst", Value: 0x34, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GunAutomatic", Value: 0x35, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GunSafety", Value: 0x36, Type: TypeOnOffControl, Clear: false, Child: nil},
	{Name: "GamepadFireJump", Value: 0x37, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "GamepadTrigger", Value: 0x39, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "FormFittingGamepad", Value: 0x3A, Type: TypeStaticFlag, Clear: false, Child: nil},
}

var genericDeviceControlsTable = Table{
	{Name: "BackgroundNonuserControls", Value: 0x06, Type: TypeApplicationCollection, Clear: false, Child: nil},
	{Name: "BatteryStrength", Value: 0x20, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "WirelessChannel", Value: 0x21, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "WirelessId", Value: 0x22, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DiscoverWirelessControl", Value: 0x23, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SecurityCodeCharacterEntered", Value: 0x24, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SecurityCodeCharacterErased", Value: 0x25, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SecurityCodeCleared", Value: 0x26, Type: TypeOneShotControl, Clear: false, Child: nil},
	{Name: "SequenceId", Value: 0x27, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SequenceIdReset", Value: 0x28, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "RfSignalStrength", Value: 0x29, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "SofwareVersion", Value: 0x2A, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "ProtocolVersion", Value: 0x2B, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "HardwareVersion", Value: 0x2C, Type: TypeLogicalCollection, Clear: false, Child: nil},
	{Name: "Major", Value: 0x2D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Minor", Value: 0x2E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Revision", Value: 0x2F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "Handedness", Value: 0x30, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "EitherHand", Value: 0x31, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "LeftHand", Value: 0x32, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "RightHand", Value: 0x33, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "BothHands", Value: 0x34, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GripPoseOffset", Value: 0x40, Type: TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PointerPoseOffset", Value: 0x41, Type: TypePhysicalCollection, Clear: false, Child: nil},
}

