package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
	. "winsync/internel/shared"
)

func TestParseConfigDefaults(t *testing.T) {
	var out bytes.Buffer
	conf, help, err := ParseConfig(nil, &out)
	require.NoError(t, err)
	assert.False(t, help)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, conf.Dir)
	assert.Equal(t, Both, conf.Mode)
	assert.False(t, conf.Quiet)
	assert.Equal(t, DefaultLink, conf.Link)
	assert.Equal(t, DefaultDevice, conf.Device)
	assert.Equal(t, DefaultMountPoint, conf.Mount)
	assert.Equal(t, DefaultFstype, conf.Fstype)
	assert.Empty(t, out.String())
}

func TestParseConfigOptions(t *testing.T) {
	var out bytes.Buffer
	conf, _, err := ParseConfig([]string{"-q", "-d", "/home/me/docs/", "-m", "PULL"}, &out)
	require.NoError(t, err)
	assert.True(t, conf.Quiet)
	assert.Equal(t, "/home/me/docs", conf.Dir)
	assert.Equal(t, Pull, conf.Mode)
	assert.Equal(t, DefaultLink, conf.Link)

	conf, _, err = ParseConfig([]string{"--link", "Shared", "--fstype", "ntfs3", "--mount-point", "/mnt/c"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Shared", conf.Link)
	assert.Equal(t, "ntfs3", conf.Fstype)
	assert.Equal(t, "/mnt/c", conf.Mount)
	assert.Equal(t, DefaultDevice, conf.Device)
	assert.Equal(t, Both, conf.Mode)
}

func TestParseConfigHelp(t *testing.T) {
	var out bytes.Buffer
	conf, help, err := ParseConfig([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, help)
	assert.Nil(t, conf)
	assert.Contains(t, out.String(), "--mode")
}

func TestParseConfigInvalidMode(t *testing.T) {
	var out bytes.Buffer
	_, help, err := ParseConfig([]string{"-m", "sideways"}, &out)
	require.Error(t, err)
	assert.False(t, help)
	assert.Contains(t, out.String(), "invalid mode")
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseConfigUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	_, _, err := ParseConfig([]string{"-x"}, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunExitCodes(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-h"}))
	assert.Equal(t, 1, run([]string{"-m", "nope", "-q"}))
	assert.Equal(t, 1, run([]string{"-q", "--skip-mount-check", "-d", t.TempDir()}))
}
