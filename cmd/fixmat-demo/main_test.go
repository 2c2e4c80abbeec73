// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/render"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/sqlstore"
)

func TestRunPrintsAllMatrices(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, config{}))

	s := out.String()
	require.Contains(t, s, "This is a demo example!")
	require.Contains(t, s, "\nm1 = [\n[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n]\n")
	require.Contains(t, s, "\nm4 = [\n[0, 0, 0]\n[0, 0, 0]\n[0, 0, 0]\n]\n")
	require.Contains(t, s, "\nm6 = [\n[1, 2, 3]\n[4, 5, 6]\n[7, 8, 9]\n]\n")
	require.Contains(t, s, "\nm7 = [\n[3, 4, 6]\n[8, 11, 12]\n[14, 16, 19]\n]\n")
}

func TestRunOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		heatmap: filepath.Join(dir, "m7.svg"),
		store:   filepath.Join(dir, "m7.fxm"),
		db:      filepath.Join(dir, "m.db"),
	}
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, cfg))

	require.Contains(t, out.String(), "\nstored m7 = [\n[3, 4, 6]\n[8, 11, 12]\n[14, 16, 19]\n]\n")

	svg, err := os.ReadFile(cfg.heatmap)
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")

	st, err := sqlstore.Open(cfg.db)
	require.NoError(t, err)
	defer st.Close()
	names, err := st.Names(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"m1", "m2", "m3", "m5", "m6", "m7"}, names)
	m3, err := sqlstore.Get[float32, shape.D3, shape.D3](context.Background(), st, "m3")
	require.NoError(t, err)
	require.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, m3.Values())
}

func TestRunBadHeatMapFormat(t *testing.T) {
	cfg := config{heatmap: filepath.Join(t.TempDir(), "m7.xyz")}
	err := run(context.Background(), &bytes.Buffer{}, cfg)
	require.ErrorIs(t, err, render.ErrFormat)
	require.NoFileExists(t, cfg.heatmap)
}
