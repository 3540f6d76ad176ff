package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_SeparateChannels(t *testing.T) {
	var out, errOut bytes.Buffer
	w := NewWriterTo(&out, &errOut)

	w.PrintLine("render.spp <- 400")
	w.ErrorLine("JSON syntax error")
	w.PrintLine("Updated scene /tmp/castle.json")

	require.Equal(t, "render.spp <- 400\nUpdated scene /tmp/castle.json\n", out.String())
	require.Equal(t, "JSON syntax error\n", errOut.String())
}

func TestWriter_ErrorStylingIgnoredForNonTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	w := NewWriterTo(&out, &errOut, WithErrorStyling())

	w.ErrorLine("Unrecognized option: -x")

	require.Equal(t, "Unrecognized option: -x\n", errOut.String())
}
