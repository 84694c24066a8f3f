package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		description string
		cmd         Command
		expected    string
	}{
		{
			description: "bare opcode renders without trailing space",
			cmd:         newCommand(OpCN),
			expected:    "CN",
		},
		{
			description: "single argument",
			cmd:         newCommand(OpAZ, "1"),
			expected:    "AZ 1",
		},
		{
			description: "multiple arguments join with commas",
			cmd:         newCommand(OpAIT, "0", "2", "10"),
			expected:    "AIT 0,2,10",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require.Equal(test.expected, test.cmd.String())
		require.Equal(test.cmd.String(), test.cmd.String())
	}
}

func TestCommand_Opcode(t *testing.T) {
	require := require.New(t)

	cmd := newCommand(OpUNT, "0")
	require.Equal(OpUNT, cmd.Opcode())
}
