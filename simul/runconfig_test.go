package main

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
)

func TestDecodeRunConfig(t *testing.T) {
	var conf RunConfig
	_, err := toml.DecodeFile("runconfig.toml", &conf)
	require.NoError(t, err)

	require.Equal(t, uint64(42), conf.Seed)
	require.Equal(t, 5000, conf.Samples)
	require.Equal(t, "png", conf.Format)
	require.Equal(t, 15, conf.FixedBins)
}

func TestApplyDefaults(t *testing.T) {
	var conf RunConfig
	conf.applyDefaults()

	require.Equal(t, 5000, conf.Samples)
	require.Equal(t, "figures", conf.OutDir)
	require.Equal(t, "png", conf.Format)
	require.NotZero(t, conf.FixedBins)
	require.NotZero(t, conf.GridBins)
	require.NotZero(t, conf.Rho)
}
