package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := Escape{Target: TargetForeground, Op: OpSet, Component: ComponentBlue}
	wire := e.Encode()
	decoded, n, err := Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, e, decoded)
}

func TestDecodeRejectsInvalidBytes(t *testing.T) {
	_, _, err := Decode("\x1bZSR")
	assert.Error(t, err)
}

func TestTranslateEmitsSGR(t *testing.T) {
	seq := Escape{Target: TargetForeground, Op: OpSet, Component: ComponentBlue}.Encode()
	out := Translate("hello " + seq + "world")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "world")
}

func TestToggleFlipsBit(t *testing.T) {
	var st State
	on := st.Apply(Escape{Target: TargetForeground, Op: OpToggle, Component: ComponentRed})
	assert.Equal(t, byte(1), on)
	off := st.Apply(Escape{Target: TargetForeground, Op: OpToggle, Component: ComponentRed})
	assert.Equal(t, byte(0), off)
}
