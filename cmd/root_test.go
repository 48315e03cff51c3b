package cmd

import (
	"testing"

	"randgen/numgen"

	"github.com/stretchr/testify/require"
)

func TestGenerateRejectsInvalidInputs(t *testing.T) {
	flags = Flags{Kind: "bool", Min: 1, Max: 10, Count: 1}
	require.ErrorIs(t, generate(), numgen.ErrInvalidArgument)

	flags = Flags{Kind: "int", Min: 10, Max: 1, Count: 1}
	require.ErrorIs(t, generate(), numgen.ErrInvalidRange)

	flags = Flags{Kind: "float", Min: 1, Max: 10, Count: 0}
	require.ErrorIs(t, generate(), numgen.ErrInvalidArgument)
}

func TestPrintExamples(t *testing.T) {
	require.NoError(t, printExamples())
}
