package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseADCSettings(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		expected    []ADCSetting
	}{
		{
			description: "both ADC segments",
			raw:         "0,2,.000106;1,0,.00800",
			expected: []ADCSetting{
				{Type: ADCHighSpeed, Mode: ADCModeNPLC, Time: ".000106"},
				{Type: ADCHighResolution, Mode: ADCModeAuto, Time: ".00800"},
			},
		},
		{
			description: "single segment",
			raw:         "1,0,.00800",
			expected: []ADCSetting{
				{Type: ADCHighResolution, Mode: ADCModeAuto, Time: ".00800"},
			},
		},
		{
			description: "time field is kept literally",
			raw:         "0,1,128;1,2,10",
			expected: []ADCSetting{
				{Type: ADCHighSpeed, Mode: ADCModeManual, Time: "128"},
				{Type: ADCHighResolution, Mode: ADCModeNPLC, Time: "10"},
			},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		settings, err := ParseADCSettings(test.raw)
		require.NoError(err)
		require.Equal(test.expected, settings)
	}
}

func TestParseADCSettings_Malformed(t *testing.T) {
	tests := []struct {
		description string
		raw         string
	}{
		{
			description: "too few fields in a segment",
			raw:         "0,2;1,0,.00800",
		},
		{
			description: "too many fields in a segment",
			raw:         "0,2,.000106,9;1,0,.00800",
		},
		{
			description: "empty response",
			raw:         "",
		},
		{
			description: "non-integer type field",
			raw:         "x,2,.000106",
		},
		{
			description: "non-integer mode field",
			raw:         "0,x,.000106",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		settings, err := ParseADCSettings(test.raw)
		require.ErrorIs(err, ErrMalformedResponse)
		require.ErrorContains(err, "ADC settings readback")
		require.Nil(settings)
	}
}

func TestADCSettingFor(t *testing.T) {
	require := require.New(t)

	raw := "0,2,.000106;1,0,.00800"

	highSpeed, err := ADCSettingFor(raw, ADCHighSpeed)
	require.NoError(err)
	require.Equal(ADCSetting{Type: ADCHighSpeed, Mode: ADCModeNPLC, Time: ".000106"}, highSpeed)

	highRes, err := ADCSettingFor(raw, ADCHighResolution)
	require.NoError(err)
	require.Equal(ADCSetting{Type: ADCHighResolution, Mode: ADCModeAuto, Time: ".00800"}, highRes)

	// missing segment for the requested ADC
	_, err = ADCSettingFor("0,2,.000106", ADCHighResolution)
	require.ErrorIs(err, ErrMalformedResponse)

	// unknown ADC type is rejected before decoding
	_, err = ADCSettingFor(raw, ADCType(5))
	require.ErrorIs(err, ErrInvalidArgument)
}

func TestADCSetting_CheckMode(t *testing.T) {
	require := require.New(t)

	setting := ADCSetting{Type: ADCHighSpeed, Mode: ADCModeManual, Time: "128"}

	require.NoError(setting.CheckMode(ADCModeManual))

	err := setting.CheckMode(ADCModeNPLC)
	require.ErrorIs(err, ErrUnexpectedMode)
	require.ErrorContains(err, "manual")
	require.ErrorContains(err, "nplc")

	// the setting itself stays valid regardless of the warning
	require.Equal("128", setting.Time)
}

func TestParseModuleQuery(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		expected    map[SlotNr]string
	}{
		{
			description: "fully populated response with empty slots",
			raw:         "B1517A,0;B1517A,0;B1520A,0;0,0;0,0;0,0;0,0;0,0;0,0;0,0",
			expected: map[SlotNr]string{
				Slot1: "B1517A",
				Slot2: "B1517A",
				Slot3: "B1520A",
			},
		},
		{
			description: "single module",
			raw:         "B1517A,0",
			expected:    map[SlotNr]string{Slot1: "B1517A"},
		},
		{
			description: "module in a later slot",
			raw:         "0,0;0,0;B1530A,1",
			expected:    map[SlotNr]string{Slot3: "B1530A"},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		population, err := ParseModuleQuery(test.raw)
		require.NoError(err)
		require.Equal(test.expected, population)
	}
}

func TestParseModuleQuery_Malformed(t *testing.T) {
	tests := []struct {
		description string
		raw         string
	}{
		{
			description: "segment without revision field",
			raw:         "B1517A;0,0",
		},
		{
			description: "segment with extra field",
			raw:         "B1517A,0,0",
		},
		{
			description: "more segments than mainframe slots",
			raw:         "0,0;0,0;0,0;0,0;0,0;0,0;0,0;0,0;0,0;0,0;0,0",
		},
		{
			description: "empty model field",
			raw:         ",0",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		population, err := ParseModuleQuery(test.raw)
		require.ErrorIs(err, ErrMalformedResponse)
		require.Nil(population)
	}
}

func TestParseCALResult(t *testing.T) {
	require := require.New(t)

	result, err := ParseCALResult("0")
	require.NoError(err)
	require.True(result.Passed())
	require.Empty(result.FailedSlots())
	require.False(result.MainframeFailed())

	result, err = ParseCALResult("2053")
	require.NoError(err)
	require.False(result.Passed())
	require.Equal([]int{1, 3}, result.FailedSlots())
	require.True(result.MainframeFailed())

	// a mainframe-only failure reports no failed slots
	result, err = ParseCALResult("2048")
	require.NoError(err)
	require.False(result.Passed())
	require.Empty(result.FailedSlots())
	require.True(result.MainframeFailed())

	// bit 10 is unused and never attributed to the mainframe
	require.False(CALResult(1024).MainframeFailed())

	_, err = ParseCALResult("banana")
	require.ErrorIs(err, ErrMalformedResponse)

	_, err = ParseCALResult("-1")
	require.ErrorIs(err, ErrMalformedResponse)

	_, err = ParseCALResult("4096")
	require.ErrorIs(err, ErrMalformedResponse)
}

func TestParseStatus(t *testing.T) {
	require := require.New(t)

	status, err := ParseStatus("16")
	require.NoError(err)
	require.Equal(16, status)

	status, err = ParseStatus(" 0 ")
	require.NoError(err)
	require.Equal(0, status)

	_, err = ParseStatus("ready")
	require.ErrorIs(err, ErrMalformedResponse)
}
