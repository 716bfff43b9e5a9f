package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvDumpStripsPseudoVarQuotes(t *testing.T) {
	env := parseEnvDump("CD=\"C:\\Users\\me\"\nFOO=bar\nERRORLEVEL=\"0\"\n")
	assert.Equal(t, `C:\Users\me`, env["CD"])
	assert.Equal(t, "bar", env["FOO"])
	assert.Equal(t, "0", env["ERRORLEVEL"])
}

func TestIsCrashSignature(t *testing.T) {
	assert.True(t, isCrashSignature(map[string]string{"CD": "x", "ERRORLEVEL": "1"}))
	assert.False(t, isCrashSignature(map[string]string{"CD": "x", "PATH": "/bin"}))
	assert.False(t, isCrashSignature(map[string]string{}))
}
