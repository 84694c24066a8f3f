package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Message(t *testing.T) {
	tests := []struct {
		description string
		build       func(b *Builder) *Builder
		expected    string
	}{
		{
			description: "enable all channels omits the channel list",
			build:       func(b *Builder) *Builder { return b.CN() },
			expected:    "CN",
		},
		{
			description: "enable explicit channels",
			build:       func(b *Builder) *Builder { return b.CN(1, 2, 3) },
			expected:    "CN 1,2,3",
		},
		{
			description: "disable all channels omits the channel list",
			build:       func(b *Builder) *Builder { return b.CL() },
			expected:    "CL",
		},
		{
			description: "disable explicit channels",
			build:       func(b *Builder) *Builder { return b.CL(10) },
			expected:    "CL 10",
		},
		{
			description: "integration time without coefficient elides the argument",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighSpeed, ADCModeNPLC) },
			expected:    "AIT 0,2",
		},
		{
			description: "integration time with coefficient",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighResolution, ADCModeNPLC, 10) },
			expected:    "AIT 1,2,10",
		},
		{
			description: "manual mode allows the full averaging range",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighSpeed, ADCModeManual, 1023) },
			expected:    "AIT 0,1,1023",
		},
		{
			description: "autozero on",
			build:       func(b *Builder) *Builder { return b.AZ(true) },
			expected:    "AZ 1",
		},
		{
			description: "autozero off",
			build:       func(b *Builder) *Builder { return b.AZ(false) },
			expected:    "AZ 0",
		},
		{
			description: "self-calibration of all units omits the slot",
			build:       func(b *Builder) *Builder { return b.CALQuery() },
			expected:    "*CAL?",
		},
		{
			description: "self-calibration of one slot",
			build:       func(b *Builder) *Builder { return b.CALQuery(Slot3) },
			expected:    "*CAL? 3",
		},
		{
			description: "self-calibration of the mainframe",
			build:       func(b *Builder) *Builder { return b.CALQuery(SlotMainframe) },
			expected:    "*CAL? 11",
		},
		{
			description: "error queue query without mode omits the argument",
			build:       func(b *Builder) *Builder { return b.ERRXQuery() },
			expected:    "ERRX?",
		},
		{
			description: "error queue query with code-only mode",
			build:       func(b *Builder) *Builder { return b.ERRXQuery(ERRXModeCodeOnly) },
			expected:    "ERRX? 1",
		},
		{
			description: "module inventory query",
			build:       func(b *Builder) *Builder { return b.UNTQuery(UNTModeModuleInfo) },
			expected:    "UNT? 0",
		},
		{
			description: "learn query for the ADC settings",
			build:       func(b *Builder) *Builder { return b.LRNQuery(LRNADCSettings) },
			expected:    "LRN? 55",
		},
		{
			description: "reset",
			build:       func(b *Builder) *Builder { return b.RST() },
			expected:    "*RST",
		},
		{
			description: "status byte query",
			build:       func(b *Builder) *Builder { return b.STBQuery() },
			expected:    "*STB?",
		},
		{
			description: "accumulated commands join with a semicolon",
			build:       func(b *Builder) *Builder { return b.CN(1, 2).AZ(true).AIT(ADCHighSpeed, ADCModeNPLC, 5) },
			expected:    "CN 1,2;AZ 1;AIT 0,2,5",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		msg, err := test.build(NewBuilder()).Message()
		require.NoError(err)
		require.Equal(test.expected, msg)

		// identical inputs always render identically
		again, err := test.build(NewBuilder()).Message()
		require.NoError(err)
		require.Equal(msg, again)
	}
}

func TestBuilder_InvalidArgument(t *testing.T) {
	tests := []struct {
		description string
		build       func(b *Builder) *Builder
	}{
		{
			description: "channel number below range",
			build:       func(b *Builder) *Builder { return b.CN(0) },
		},
		{
			description: "channel number above range",
			build:       func(b *Builder) *Builder { return b.CL(11) },
		},
		{
			description: "NPLC coefficient above range",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighSpeed, ADCModeNPLC, 101) },
		},
		{
			description: "NPLC coefficient below range",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighSpeed, ADCModeNPLC, 0) },
		},
		{
			description: "manual coefficient above range",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighSpeed, ADCModeManual, 1024) },
		},
		{
			description: "unknown ADC type",
			build:       func(b *Builder) *Builder { return b.AIT(ADCType(2), ADCModeNPLC) },
		},
		{
			description: "unknown ADC mode",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighSpeed, ADCMode(3)) },
		},
		{
			description: "more than one coefficient",
			build:       func(b *Builder) *Builder { return b.AIT(ADCHighSpeed, ADCModeNPLC, 1, 2) },
		},
		{
			description: "slot number above range",
			build:       func(b *Builder) *Builder { return b.CALQuery(SlotNr(12)) },
		},
		{
			description: "unknown error queue mode",
			build:       func(b *Builder) *Builder { return b.ERRXQuery(ERRXMode(2)) },
		},
		{
			description: "unknown inventory query mode",
			build:       func(b *Builder) *Builder { return b.UNTQuery(UNTMode(2)) },
		},
		{
			description: "learn item above range",
			build:       func(b *Builder) *Builder { return b.LRNQuery(111) },
		},
		{
			description: "learn item below range",
			build:       func(b *Builder) *Builder { return b.LRNQuery(-1) },
		},
		{
			description: "empty builder",
			build:       func(b *Builder) *Builder { return b },
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		msg, err := test.build(NewBuilder()).Message()
		require.ErrorIs(err, ErrInvalidArgument)
		require.Empty(msg)
	}
}

func TestBuilder_FirstErrorSticks(t *testing.T) {
	require := require.New(t)

	b := NewBuilder().CN(42).AZ(true).AIT(ADCHighSpeed, ADCModeNPLC, 5)

	require.ErrorIs(b.Err(), ErrInvalidArgument)
	require.ErrorContains(b.Err(), "channel number 42")

	msg, err := b.Message()
	require.ErrorIs(err, ErrInvalidArgument)
	require.ErrorContains(err, "channel number 42")
	require.Empty(msg)

	// commands after the failing one are not accumulated
	require.Empty(b.Commands())
}
