package report

var sensorTable = Table{
	{Name: "Sensor", Value: 0x01, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Biometric", Value: 0x10, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricHumanPresence", Value: 0x11, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricHumanProximity", Value: 0x12, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricHumanTouch", Value: 0x13, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricBloodPressure", Value: 0x14, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricBodyTemperature", Value: 0x15, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricHeartRate", Value: 0x16, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricHeartRateVariability", Value: 0x17, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricPeripheralOxygenSaturation", Value: 0x18, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "BiometricRespiratoryRate", Value: 0x19, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Electrical", Value: 0x20, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalCapacitance", Value: 0x21, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalCurrent", Value: 0x22, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalPower", Value: 0x23, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalInductance", Value: 0x24, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalResistance", Value: 0x25, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalVoltage", Value: 0x26, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalPotentiometer", Value: 0x27, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalFrequency", Value: 0x28, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ElectricalPeriod", Value: 0x29, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Environmental", Value: 0x30, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalAtmosphericPressure", Value: 0x31, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalHumidity", Value: 0x32, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalTemperature", Value: 0x33, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalWindDirection", Value: 0x34, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalWindSpeed", Value: 0x35, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalAirQuality", Value: 0x36, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalHeatIndex", Value: 0x37, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalSurfaceTemperature", Value: 0x38, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalVolatileOrganicCompounds", Value: 0x39, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalObjectPresence", Value: 0x3A, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "EnvironmentalObjectProximity", Value: 0x3B, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Light", Value: 0x40, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LightAmbientLight", Value: 0x41, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LightConsumerInfrared", Value: 0x42, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LightInfraredLight", Value: 0x43, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LightVisibleLight", Value: 0x44, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LightUltravioletLight", Value: 0x45, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Location", Value: 0x50, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LocationBroadcast", Value: 0x51, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LocationDeadReckoning", Value: 0x52, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LocationGps", Value: 0x53, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LocationLookup", Value: 0x54, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LocationOther", Value: 0x55, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LocationStatic", Value: 0x56, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "LocationTriangulation", Value: 0x57, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Mechanical", Value: 0x60, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalBooleanSwitch", Value: 0x61, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalBooleanSwitchArray", Value: 0x62, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalMultivalueSwitch", Value: 0x63, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalForce", Value: 0x64, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalPressure", Value: 0x65, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalStrain", Value: 0x66, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalWeight", Value: 0x67, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalHapticVibrator", Value: 0x68, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MechanicalHallEffectSwitch", Value: 0x69, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Motion", Value: 0x70, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionAccelerometer1d", Value: 0x71, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionAccelerometer2d", Value: 0x72, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionAccelerometer3d", Value: 0x73, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionGyrometer1d", Value: 0x74, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionGyrometer2d", Value: 0x75, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionGyrometer3d", Value: 0x76, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionMotionDetector", Value: 0x77, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionSpeedometer", Value: 0x78, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionAccelerometer", Value: 0x79, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionGyrometer", Value: 0x7A, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionGraviyVector", Value: 0x7B, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "MotionLinearAccelerometer", Value: 0x7C, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Orientation", Value: 0x80, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationCompass1d", Value: 0x81, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationCompass2d", Value: 0x82, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationCompass3d", Value: 0x83, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationInclinometer1d", Value: 0x84, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationInclinometer2d", Value: 0x85, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationInclinometer3d", Value: 0x86, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationDistance1d", Value: 0x87, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationDistance2d", Value: 0x88, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationDistance3d", Value: 0x89, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationDeviceOrientation", Value: 0x8A, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationCompass", Value: 0x8B, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationInclinometer", Value: 0x8C, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationDistance", Value: 0x8D, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationRelativeOrientation", Value: 0x8E, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationSimpleOrientation", Value: 0x8F, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Scanner", Value: 0x90, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ScannerBarcode", Value: 0x91, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ScannerRfid", Value: 0x92, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "ScannerNfc", Value: 0x93, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Time", Value: 0xA0, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "TimeAlarmTimer", Value: 0xA1, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "TimeRealTimeClock", Value: 0xA2, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PersonalActivity", Value: 0xB0, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PersonalActivityActivityDetection", Value: 0xB1, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PersonalActivityDevicePosition", Value: 0xB2, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PersonalActivityPedometer", Value: 0xB3, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "PersonalActivityStepDetection", Value: 0xB4, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationExtended", Value: 0xC0, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationExtendedGeomagneticOrientation", Value: 0xC1, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OrientationExtendedMagnetometer", Value: 0xC2, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Gesture", Value: 0xD0, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "GestureChassisFlipGesture", Value: 0xD1, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "GestureHingeFoldGesture", Value: 0xD2, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Other", Value: 0xE0, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OtherCustom", Value: 0xE1, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OtherGeneric", Value: 0xE2, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OtherGenericEnumerator", Value: 0xE3, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "OtherHingeAngle", Value: 0xE4, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved1", Value: 0xF0, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved2", Value: 0xF1, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved3", Value: 0xF2, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved4", Value: 0xF3, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved5", Value: 0xF4, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved6", Value: 0xF5, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved7", Value: 0xF6, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved8", Value: 0xF7, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved9", Value: 0xF8, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved10", Value: 0xF9, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved11", Value: 0xFA, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved12", Value: 0xFB, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved13", Value: 0xFC, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved14", Value: 0xFD, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved15", Value: 0xFE, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "VendorReserved16", Value: 0xFF, Type: TypeApplicationCollection | TypePhysicalCollection, Clear: false, Child: nil},
	{Name: "Event", Value: 0x200, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "EventSensorState", Value: 0x201, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "EventSensorEvent", Value: 0x202, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "Property", Value: 0x300, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyFriendlyName", Value: 0x301, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyPersistentUniqueId", Value: 0x302, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertySensorStatus", Value: 0x303, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyMinimumReportInterval", Value: 0x304, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertySensorManufacturer", Value: 0x305, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertySensorModel", Value: 0x306, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertySensorSerialNumber", Value: 0x307, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertySensorDescription", Value: 0x308, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertySensorConnectionType", Value: 0x309, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertySensorDevicePath", Value: 0x30A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyHardwareRevision", Value: 0x30B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyFirmwareVersion", Value: 0x30C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyReleaseDate", Value: 0x30D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyReportInterval", Value: 0x30E, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyChangeSensitivityAbsolute", Value: 0x30F, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyChangeSensitivityPercentOfRange", Value: 0x310, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyChangeSensitivityPercentRelative", Value: 0x311, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyAccuracy", Value: 0x312, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyResolution", Value: 0x313, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyMaximum", Value: 0x314, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyMinimum", Value: 0x315, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyReportingState", Value: 0x316, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertySamplingRate", Value: 0x317, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyResponseCurve", Value: 0x318, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyPowerState", Value: 0x319, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertyMaximumFifoEvents", Value: 0x31A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyReportLatency", Value: 0x31B, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyFlushFifoEvents", Value: 0x31C, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PropertyMaximumPowerConsumption", Value: 0x31D, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyIsPrimary", Value: 0x31E, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DataFieldLocation", Value: 0x400, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldAltitudeAntennaSeaLevel", Value: 0x402, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDifferentialReferenceStationId", Value: 0x403, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAltitudeEllipsoidError", Value: 0x404, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAltitudeEllipsoid", Value: 0x405, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAltitudeSeaLevelError", Value: 0x406, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAltitudeSeaLevel", Value: 0x407, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDifferentialGpsDataAge", Value: 0x408, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldErrorRadius", Value: 0x409, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldFixQuality", Value: 0x40A, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldFixType", Value: 0x40B, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldGeoidalSeparation", Value: 0x40C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGpsOperationMode", Value: 0x40D, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldGpsSelectionMode", Value: 0x40E, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldGpsStatus", Value: 0x40F, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldPositionDilutionOfPrecision", Value: 0x410, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHorizontalDilutionOfPrecision", Value: 0x411, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldVerticalDilutionOfPrecision", Value: 0x412, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldLatitude", Value: 0x413, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldLongitude", Value: 0x414, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTrueHeading", Value: 0x415, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMagneticHeading", Value: 0x416, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMagneticVariation", Value: 0x417, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSpeed", Value: 0x418, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesInView", Value: 0x419, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesInViewAzimuth", Value: 0x41A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesInViewElevation", Value: 0x41B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesInViewIds", Value: 0x41C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesInViewPrns", Value: 0x41D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesInViewSnRatio", Value: 0x41E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesUsedCount", Value: 0x41F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSatellitesUsedPrns", Value: 0x420, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldNmeaSentence", Value: 0x421, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAddressLine1", Value: 0x422, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAddressLine2", Value: 0x423, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCity", Value: 0x424, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldStateOrProvince", Value: 0x425, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCountryOrRegion", Value: 0x426, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldPostalCode", Value: 0x427, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyLocation", Value: 0x42A, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyLocationDesiredAccuracy", Value: 0x42B, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldEnvironmental", Value: 0x430, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAtmosphericPressure", Value: 0x431, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldRelativeHumidity", Value: 0x433, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTemperature", Value: 0x434, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldWindDirection", Value: 0x435, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldWindSpeed", Value: 0x436, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAirQualityIndex", Value: 0x437, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldEquivalentCo2", Value: 0x438, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldVolatileOrganicCompoundConcentration", Value: 0x439, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldObjectPresence", Value: 0x43A, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataFieldObjectProximityRange", Value: 0x43B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldObjectProximityOutOfRange", Value: 0x43C, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "PropertyEnvironmental", Value: 0x440, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyReferencePressure", Value: 0x441, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMotion", Value: 0x450, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldMotionState", Value: 0x451, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataFieldAcceleration", Value: 0x452, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAccelerationAxisX", Value: 0x453, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAccelerationAxisY", Value: 0x454, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAccelerationAxisZ", Value: 0x455, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularVelocity", Value: 0x456, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularVelocityAboutXAxis", Value: 0x457, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularVelocityAboutYAxis", Value: 0x458, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularVelocityAboutZAxis", Value: 0x459, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularPosition", Value: 0x45A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularPositionAboutXAxis", Value: 0x45B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularPositionAboutYAxis", Value: 0x45C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAngularPositionAboutZAxis", Value: 0x45D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMotionSpeed", Value: 0x45E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMotionIntensity", Value: 0x45F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldOrientation", Value: 0x470, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldHeading", Value: 0x471, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeadingXAxis", Value: 0x472, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeadingYAxis", Value: 0x473, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeadingZAxis", Value: 0x474, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeadingCompensatedMagneticNorth", Value: 0x475, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeadingCompensatedTrueNorth", Value: 0x476, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeadingMagneticNorth", Value: 0x477, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeadingTrueNorth", Value: 0x478, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDistance", Value: 0x479, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDistanceXAxis", Value: 0x47A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDistanceYAxis", Value: 0x47B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDistanceZAxis", Value: 0x47C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDistanceOutOfRange", Value: 0x47D, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataFieldTilt", Value: 0x47E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTiltXAxis", Value: 0x47F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTiltYAxis", Value: 0x480, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTiltZAxis", Value: 0x481, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldRotationMatrix", Value: 0x482, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldQuaternion", Value: 0x483, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMagneticFlux", Value: 0x484, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMagneticFluxXAxis", Value: 0x485, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMagneticFluxYAxis", Value: 0x486, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMagneticFluxZAxis", Value: 0x487, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMagnetometerAccuracy", Value: 0x488, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldSimpleOrientationDirection", Value: 0x489, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldMechanical", Value: 0x490, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldBooleanSwitchState", Value: 0x491, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataFieldBooleanSwitchArrayStates", Value: 0x492, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMultivalueSwitchValue", Value: 0x493, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldField", Value: 0x494, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldAbsolutePressure", Value: 0x495, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGaugePressure", Value: 0x496, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldStrain", Value: 0x497, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldWeight", Value: 0x498, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyMechanical", Value: 0x4A0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyVibrationState", Value: 0x4A1, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PropertyForwardVibrationSpeed", Value: 0x4A2, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyBackwardVibrationSpeed", Value: 0x4A3, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldBiometric", Value: 0x4B0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldHumanPresence", Value: 0x4B1, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataFieldHumanProximityRange", Value: 0x4B2, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHumanProximityOutOfRange", Value: 0x4B3, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataFieldHumanTouchState", Value: 0x4B4, Type: TypeStaticFlag, Clear: false, Child: nil},
	{Name: "DataFieldBloodPressure", Value: 0x4B5, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldBloodPressureDiastolic", Value: 0x4B6, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldBloodPressureSystolic", Value: 0x4B7, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeartRate", Value: 0x4B8, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldRestingHeartRate", Value: 0x4B9, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHeartbeatInterval", Value: 0x4BA, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldRespiratoryRate", Value: 0x4BB, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSpo2", Value: 0x4BC, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldLight", Value: 0x4D0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldIlluminance", Value: 0x4D1, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldColorTemperature", Value: 0x4D2, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldChromaticity", Value: 0x4D3, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldChromaticityX", Value: 0x4D4, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldChromaticityY", Value: 0x4D5, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldConsumerIrSentenceReceive", Value: 0x4D6, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldInfraredLight", Value: 0x4D7, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldRedLight", Value: 0x4D8, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGreenLight", Value: 0x4D9, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldBlueLight", Value: 0x4DA, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldUltravioletALight", Value: 0x4DB, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldUltravioletBLight", Value: 0x4DC, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldUltravioletIndex", Value: 0x4DD, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldNearInfraredLight", Value: 0x4DE, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyLight", Value: 0x4DF, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyConsumerIrSentenceSend", Value: 0x4E0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyAutoBrightnessPreferred", Value: 0x4E2, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PropertyAutoColorPreferred", Value: 0x4E3, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DataFieldScanner", Value: 0x4F0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldRfidTag40Bit", Value: 0x4F1, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldNfcSentenceReceive", Value: 0x4F2, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyScanner", Value: 0x4F8, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyNfcSentenceSend", Value: 0x4F9, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldElectrical", Value: 0x500, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCapacitance", Value: 0x501, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCurrent", Value: 0x502, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldElectricalPower", Value: 0x503, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldInductance", Value: 0x504, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldResistance", Value: 0x505, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldVoltage", Value: 0x506, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldFrequency", Value: 0x507, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldPeriod", Value: 0x508, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldPercentOfRange", Value: 0x509, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTime", Value: 0x520, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldYear", Value: 0x521, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMonth", Value: 0x522, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDay", Value: 0x523, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldDayOfWeek", Value: 0x524, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldHour", Value: 0x525, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMinute", Value: 0x526, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldSecond", Value: 0x527, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldMillisecond", Value: 0x528, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTimestamp", Value: 0x529, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldJulianDayOfYear", Value: 0x52A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldTimeSinceSystemBoot", Value: 0x52B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyTime", Value: 0x530, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyTimeZoneOffsetFromUtc", Value: 0x531, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyTimeZoneName", Value: 0x532, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyDaylightSavingsTimeObserved", Value: 0x533, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "PropertyTimeTrimAdjustment", Value: 0x534, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyArmAlarm", Value: 0x535, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DataFieldCustom", Value: 0x540, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomUsage", Value: 0x541, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomBooleanArray", Value: 0x542, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue", Value: 0x543, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue1", Value: 0x544, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue2", Value: 0x545, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue3", Value: 0x546, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue4", Value: 0x547, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue5", Value: 0x548, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue6", Value: 0x549, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue7", Value: 0x54A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue8", Value: 0x54B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue9", Value: 0x54C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue10", Value: 0x54D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue11", Value: 0x54E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue12", Value: 0x54F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue13", Value: 0x550, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue14", Value: 0x551, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue15", Value: 0x552, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue16", Value: 0x553, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue17", Value: 0x554, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue18", Value: 0x555, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue19", Value: 0x556, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue20", Value: 0x557, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue21", Value: 0x558, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue22", Value: 0x559, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue23", Value: 0x55A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue24", Value: 0x55B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue25", Value: 0x55C, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue26", Value: 0x55D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue27", Value: 0x55E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomValue28", Value: 0x55F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGeneric", Value: 0x560, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericGuidOrPropertykey", Value: 0x561, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericCategoryGuid", Value: 0x562, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericTypeGuid", Value: 0x563, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericEventPropertykey", Value: 0x564, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericPropertyPropertykey", Value: 0x565, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericDataFieldPropertykey", Value: 0x566, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericEvent", Value: 0x567, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericProperty", Value: 0x568, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericDataField", Value: 0x569, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldEnumeratorTableRowIndex", Value: 0x56A, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldEnumeratorTableRowCount", Value: 0x56B, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericGuidOrPropertykeyKind", Value: 0x56C, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldGenericGuid", Value: 0x56D, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericPropertykey", Value: 0x56E, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericTopLevelCollectionId", Value: 0x56F, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericReportId", Value: 0x570, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericReportItemPositionIndex", Value: 0x571, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericFirmwareVartype", Value: 0x572, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldGenericUnitOfMessure", Value: 0x573, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldGenericUnitExponent", Value: 0x574, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldGenericReportSize", Value: 0x575, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldGenericReportCount", Value: 0x576, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyGeneric", Value: 0x580, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyEnumeratorTableRowIndex", Value: 0x581, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyEnumeratorTableRowCount", Value: 0x582, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldPersonalActivity", Value: 0x590, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldActivityType", Value: 0x591, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldActivityState", Value: 0x592, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldDevicePosition", Value: 0x593, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldStepCount", Value: 0x594, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldStepCountReset", Value: 0x595, Type: TypeDynamicFlag, Clear: false, Child: nil},
	{Name: "DataFieldStepDuration", Value: 0x596, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldStepType", Value: 0x597, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertyMinimumActivityDetectionInterval", Value: 0x5A0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertySupportedActivityTypes", Value: 0x5A1, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertySubscribedActivityTypes", Value: 0x5A2, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertySupportedStepTypes", Value: 0x5A3, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertySubscribedStepTypes", Value: 0x5A4, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "PropertyFloorHeight", Value: 0x5A5, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldCustomTypeId", Value: 0x5B0, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "PropertyCustom", Value: 0x5C0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue1", Value: 0x5C1, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue2", Value: 0x5C2, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue3", Value: 0x5C3, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue4", Value: 0x5C4, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue5", Value: 0x5C5, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue6", Value: 0x5C6, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue7", Value: 0x5C7, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue8", Value: 0x5C8, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue9", Value: 0x5C9, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue10", Value: 0x5CA, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue11", Value: 0x5CB, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue12", Value: 0x5CC, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue13", Value: 0x5CD, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue14", Value: 0x5CE, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue15", Value: 0x5CF, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "PropertyCustomValue16", Value: 0x5D0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldHinge", Value: 0x5E0, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldHingeAngle", Value: 0x5E1, Type: TypeStaticValue | TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldGestureSensor", Value: 0x5F0, Type: TypeDynamicValue, Clear: false, Child: nil},
	{Name: "DataFieldGestureState", Value: 0x5F1, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldHingeFoldInitialAngle", Value: 0x5F2, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHingeFoldFinalAngle", Value: 0x5F3, Type: TypeStaticValue, Clear: false, Child: nil},
	{Name: "DataFieldHingeFoldContributionPanel", Value: 0x5F4, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "DataFieldHingeFoldType", Value: 0x5F5, Type: TypeNamedArray, Clear: false, Child: nil},
	{Name: "SensorStateUndefined", Value: 0x800, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorStateReady", Value: 0x801, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorStateNotAvailable", Value: 0x802, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorStateNoData", Value: 0x803, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorStateInitializing", Value: 0x804, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorStateAccessDenied", Value: 0x805, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorStateError", Value: 0x806, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventUnknown", Value: 0x810, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventStateChanged", Value: 0x811, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventPropertyChanged", Value: 0x812, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventDataUploaded", Value: 0x813, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventPollResponse", Value: 0x814, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventChangeSensitivity", Value: 0x815, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventRangeMaximumReached", Value: 0x816, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventRangeMinimumReached", Value: 0x817, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventHighThresholdCrossUpward", Value: 0x818, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventHighThresholdCrossDownward", Value: 0x819, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventLowThresholdCrossUpward", Value: 0x81A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventLowThresholdCrossDownward", Value: 0x81B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventZeroThresholdCrossUpward", Value: 0x81C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventZeroThresholdCrossDownward", Value: 0x81D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventPeriodExceeded", Value: 0x81E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventFrequencyExceeded", Value: 0x81F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SensorEventComplexTrigger", Value: 0x820, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ConnectionTypePcIntegrated", Value: 0x830, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ConnectionTypePcAttached", Value: 0x831, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ConnectionTypePcExternal", Value: 0x832, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ReportingStateReportNoEvents", Value: 0x840, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ReportingStateReportAllEvents", Value: 0x841, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ReportingStateReportThresholdEvents", Value: 0x842, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ReportingStateWakeOnNoEvents", Value: 0x843, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ReportingStateWakeOnAllEvents", Value: 0x844, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ReportingStateWakeOnThresholdEvents", Value: 0x845, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PowerStateUndefined", Value: 0x850, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PowerStateD0FullPower", Value: 0x851, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PowerStateD1LowPower", Value: 0x852, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PowerStateD2StandbyPowerWithWakeup", Value: 0x853, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PowerStateD3SleepWithWakeup", Value: 0x854, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "PowerStateD4PowerOff", Value: 0x855, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixQualityNoFix", Value: 0x870, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixQualityGps", Value: 0x871, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixQualityDgps", Value: 0x872, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeNoFix", Value: 0x880, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeGpsSpsModeFixValid", Value: 0x881, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeDgpsSpsModeFixValid", Value: 0x882, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeGpsPpsModeFixValid", Value: 0x883, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeRealTimeKinematic", Value: 0x884, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeFloatRtk", Value: 0x885, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeEstimatedDeadReckoned", Value: 0x886, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeManualInputMode", Value: 0x887, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "FixTypeSimulatorMode", Value: 0x888, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsOperationModeManual", Value: 0x890, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsOperationModeAutomatic", Value: 0x891, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsSelectionModeAutonomous", Value: 0x8A0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsSelectionModeDgps", Value: 0x8A1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsSelectionModeEstimatedDeadReckoned", Value: 0x8A2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsSelectionModeManualInput", Value: 0x8A3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsSelectionModeSimulator", Value: 0x8A4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsSelectionModeDataNotValid", Value: 0x8A5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsStatusDataValid", Value: 0x8B0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GpsStatusDataNotValid", Value: 0x8B1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AccuracyDefault", Value: 0x860, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AccuracyHigh", Value: 0x861, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AccuracyMedium", Value: 0x862, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "AccuracyLow", Value: 0x863, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DayOfWeekSunday", Value: 0x8C0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DayOfWeekMonday", Value: 0x8C1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DayOfWeekTuesday", Value: 0x8C2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DayOfWeekWednesday", Value: 0x8C3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DayOfWeekThursday", Value: 0x8C4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DayOfWeekFriday", Value: 0x8C5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DayOfWeekSaturday", Value: 0x8C6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KindCategory", Value: 0x8D0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KindType", Value: 0x8D1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KindEvent", Value: 0x8D2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KindProperty", Value: 0x8D3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "KindDataField", Value: 0x8D4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MagnetometerAccuracyLow", Value: 0x8E0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MagnetometerAccuracyMedium", Value: 0x8E1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "MagnetometerAccuracyHigh", Value: 0x8E2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SimpleOrientationDirectionNotRotated", Value: 0x8F0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SimpleOrientationDirectionRotated90DegreesCcw", Value: 0x8F1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SimpleOrientationDirectionRotated180DegreesCcw", Value: 0x8F2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SimpleOrientationDirectionRotated270DegreesCcw", Value: 0x8F3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SimpleOrientationDirectionFaceUp", Value: 0x8F4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "SimpleOrientationDirectionFaceDown", Value: 0x8F5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtNull", Value: 0x900, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtBool", Value: 0x901, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtUi1", Value: 0x902, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtI1", Value: 0x903, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtUi2", Value: 0x904, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtI2", Value: 0x905, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtUi4", Value: 0x906, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtI4", Value: 0x907, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtUi8", Value: 0x908, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtI8", Value: 0x909, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtR4", Value: 0x90A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtR8", Value: 0x90B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtWstr", Value: 0x90C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtStr", Value: 0x90D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtClsid", Value: 0x90E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtVectorVtUi1", Value: 0x90F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E0", Value: 0x910, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E1", Value: 0x911, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E2", Value: 0x912, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E3", Value: 0x913, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E4", Value: 0x914, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E5", Value: 0x915, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E6", Value: 0x916, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E7", Value: 0x917, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E8", Value: 0x918, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16E9", Value: 0x919, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16EA", Value: 0x91A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16EB", Value: 0x91B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16EC", Value: 0x91C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16ED", Value: 0x91D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16EE", Value: 0x91E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF16EF", Value: 0x91F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E0", Value: 0x920, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E1", Value: 0x921, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E2", Value: 0x922, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E3", Value: 0x923, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E4", Value: 0x924, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E5", Value: 0x925, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E6", Value: 0x926, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E7", Value: 0x927, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E8", Value: 0x928, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32E9", Value: 0x929, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32EA", Value: 0x92A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32EB", Value: 0x92B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32EC", Value: 0x92C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32ED", Value: 0x92D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32EE", Value: 0x92E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "VtF32EF", Value: 0x92F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeUnknown", Value: 0x930, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeStationary", Value: 0x931, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeFidgeting", Value: 0x932, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeWalking", Value: 0x933, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeRunning", Value: 0x934, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeInVehicle", Value: 0x935, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeBiking", Value: 0x936, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityTypeIdle", Value: 0x937, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitNotSpecified", Value: 0x940, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitLux", Value: 0x941, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitDegreesKelvin", Value: 0x942, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitDegreesCelsius", Value: 0x943, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitPascal", Value: 0x944, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitNewton", Value: 0x945, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitMetersPerSecond", Value: 0x946, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitKilogram", Value: 0x947, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitMeter", Value: 0x948, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitMetersPerSecondSquared", Value: 0x949, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitFarad", Value: 0x94A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitAmpere", Value: 0x94B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitWatt", Value: 0x94C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitHenry", Value: 0x94D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitOhm", Value: 0x94E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitVolt", Value: 0x94F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitHerz", Value: 0x950, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitBar", Value: 0x951, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitDegreesAntiClockwise", Value: 0x952, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitDegreesClockwise", Value: 0x953, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitDegrees", Value: 0x954, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitDegreesPerSecond", Value: 0x955, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitDegreesPerSecondSquared", Value: 0x956, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitKnot", Value: 0x957, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitPercent", Value: 0x958, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitSecond", Value: 0x959, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitMillisecond", Value: 0x95A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitG", Value: 0x95B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitBytes", Value: 0x95C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitMilligauss", Value: 0x95D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "UnitBits", Value: 0x95E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityStateNoStateChange", Value: 0x960, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityStateStartActivity", Value: 0x961, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ActivityStateEndActivity", Value: 0x962, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent0", Value: 0x970, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent1", Value: 0x971, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent2", Value: 0x972, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent3", Value: 0x973, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent4", Value: 0x974, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent5", Value: 0x975, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent6", Value: 0x976, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent7", Value: 0x977, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent8", Value: 0x978, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "Exponent9", Value: 0x979, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExponentA", Value: 0x97A, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExponentB", Value: 0x97B, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExponentC", Value: 0x97C, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExponentD", Value: 0x97D, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExponentE", Value: 0x97E, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ExponentF", Value: 0x97F, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DevicePositionUnknown", Value: 0x980, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DevicePositionUnchanged", Value: 0x981, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DevicePositionOnDesk", Value: 0x982, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DevicePositionInHand", Value: 0x983, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DevicePositionMovingInBag", Value: 0x984, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "DevicePositionStationaryInBag", Value: 0x985, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StepTypeUnknown", Value: 0x990, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StepTypeRunning", Value: 0x991, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "StepTypeWalking", Value: 0x992, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GestureStateUnknown", Value: 0x9A0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GestureStateStarted", Value: 0x9A1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GestureStateCompleted", Value: 0x9A2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "GestureStateCancelled", Value: 0x9A3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HingeFoldContributionPanelUnknown", Value: 0x9B0, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HingeFoldContributionPanelPanel1", Value: 0x9B1, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HingeFoldContributionPanelPanel2", Value: 0x9B2, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HingeFoldContributionPanelBoth", Value: 0x9B3, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HingeFoldTypeUnknown", Value: 0x9B4, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HingeFoldTypeIncreasing", Value: 0x9B5, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "HingeFoldTypeDecreasing", Value: 0x9B6, Type: TypeSelector, Clear: false, Child: nil},
	{Name: "ModifierChangeSensitivityAbsolute", Value: 0x1000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierMaximum", Value: 0x2000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierMinimum", Value: 0x3000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierAccuracy", Value: 0x4000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierResolution", Value: 0x5000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierThresholdHigh", Value: 0x6000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierThresholdLow", Value: 0x7000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierCalibrationOffset", Value: 0x8000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierCalibrationMultiplier", Value: 0x9000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierReportInterval", Value: 0xA000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierFrequencyMax", Value: 0xB000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierPeriodMax", Value: 0xC000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierChangeSensitivityPercentOfRange", Value: 0xD000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierChangeSensitivityPercentRelative", Value: 0xE000, Type: TypeUsageSwitch, Clear: false, Child: nil},
	{Name: "ModifierVendorReserved", Value: 0xF000, Type: TypeUsageSwitch, Clear: false, Child: nil},
}

