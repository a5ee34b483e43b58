package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bowtie = `0 0
2 2
2 0
0 2
`

func TestRun(t *testing.T) {
	var out bytes.Buffer
	cfg := config{input: "-", format: "text", names: true}
	require.NoError(t, run(cfg, strings.NewReader(bowtie), &out))

	summary := out.String()
	assert.Contains(t, summary, "Read 1 outlines")
	assert.Contains(t, summary, "winding -1")
	assert.Contains(t, summary, "winding 1")
	assert.Contains(t, summary, "(outside)")
	assert.NotContains(t, summary, "failed")
}

func TestRunFlags(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "square.yaml")
	require.NoError(t, os.WriteFile(inputPath, []byte("outlines:\n  - [[0, 0], [1, 0], [1, 1], [0, 1]]\n"), 0o644))
	configPath := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("disable_split: true\n"), 0o644))
	pngPath := filepath.Join(dir, "out.png")

	var cfg config
	app := newApp(&cfg)
	_, err := app.Parse([]string{"--format=yaml", "--config", configPath, "--png", pngPath, "--no-color", inputPath})
	require.NoError(t, err)
	assert.Equal(t, 100.0, cfg.scale)

	var out bytes.Buffer
	require.NoError(t, run(cfg, nil, &out))
	assert.Contains(t, out.String(), "0 split triangles")
	assert.NotContains(t, out.String(), "\x1b[")
	_, err = os.Stat(pngPath)
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(config{input: "-", format: "text"}, strings.NewReader("0 0\n1 x\n"), &out)
	assert.Error(t, err)

	err = run(config{input: "-", format: "text"}, strings.NewReader(""), &out)
	assert.Error(t, err)

	var cfg config
	_, err = newApp(&cfg).Parse([]string{"--format=obj"})
	assert.Error(t, err)
}
