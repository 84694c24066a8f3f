package b1500

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-b1500/flex"
)

func TestFromModelName(t *testing.T) {
	tests := []struct {
		description      string
		model            string
		slot             int
		expectedKind     ModuleKind
		expectedChannels []int
	}{
		{
			description:      "B1517A resolves to an SMU with one channel",
			model:            "B1517A",
			slot:             2,
			expectedKind:     KindSMU,
			expectedChannels: []int{2},
		},
		{
			description:      "B1520A resolves to a CMU with one channel",
			model:            "B1520A",
			slot:             5,
			expectedKind:     KindCMU,
			expectedChannels: []int{5},
		},
		{
			description:      "B1530A resolves to a WGFMU with two sub-channels",
			model:            "B1530A",
			slot:             7,
			expectedKind:     KindWGFMU,
			expectedChannels: []int{701, 702},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		module, err := FromModelName(test.model, test.slot)
		require.NoError(err)
		require.Equal(test.model, module.Model())
		require.Equal(test.expectedKind, module.Kind())
		require.Equal(test.slot, module.SlotNr())
		require.Equal(test.expectedChannels, module.Channels())
	}
}

func TestFromModelName_Unsupported(t *testing.T) {
	require := require.New(t)

	module, err := FromModelName("B2200A", 1)
	require.ErrorIs(err, flex.ErrUnsupportedModule)
	require.ErrorContains(err, "B2200A")
	require.ErrorContains(err, "slot 1")
	require.Nil(module)
}
