// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/tvbdd"
)

func TestLoadFileConfigDefaults(t *testing.T) {
	c, err := loadFileConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Varnum)
	assert.Equal(t, "greedy1", c.Heuristic)
}

func TestLoadFileConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "varnum: 12\nheuristic: random\ntimeout_ms: 50\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Varnum)
	assert.Equal(t, "random", c.Heuristic)
	assert.Equal(t, 50, c.TimeoutMS)

	opts := c.options()
	assert.NotEmpty(t, opts)
}

func TestLoadFileConfigRejectsUnknownHeuristic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("heuristic: bogus\n"), 0o644))

	_, err := loadFileConfig(path)
	require.Error(t, err)
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestHeuristicFuncDefaultsToGreedy1(t *testing.T) {
	c := &fileConfig{}
	assert.NotNil(t, c.heuristicFunc())
	assert.Equal(t, reflect.ValueOf(tvbdd.HeuristicOneStepGreedy).Pointer(), reflect.ValueOf(c.heuristicFunc()).Pointer())
}
