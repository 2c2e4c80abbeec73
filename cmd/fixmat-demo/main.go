// SPDX-License-Identifier: MIT

// Command fixmat-demo walks through the fixmat containers: the identity
// view, default, converted, assigned and literal matrices, and m + m + I.
//
// Usage:
//
//	fixmat-demo [-heatmap out.png] [-store m7.fxm] [-db matrices.db]
//
// -heatmap renders m + m + I (format taken from the file extension),
// -store saves it to a memory-mapped file and reads it back, and -db
// stores every printed matrix in a SQLite database under its name.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/mmstore"
	"github.com/katalvlaran/fixmat/render"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/sqlstore"
	"github.com/katalvlaran/fixmat/traits"
)

type (
	eye3 = matrix.Identity[float32, shape.D3, shape.D3]
	m3x3 = matrix.Matrix[float32, shape.D3, shape.D3]
	r3x3 = traits.Reader[float32, shape.D3, shape.D3]
)

// config carries the command-line flags.
type config struct {
	heatmap string
	store   string
	db      string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.heatmap, "heatmap", "", "render m7 as a heat map to `FILE` (png, svg, pdf, ...)")
	flag.StringVar(&cfg.store, "store", "", "save m7 to the memory-mapped `FILE` and print it back")
	flag.StringVar(&cfg.db, "db", "", "store every matrix in the SQLite database `FILE`")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("fixmat-demo: ")
	if err := run(context.Background(), os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// named pairs a printed matrix with its label.
type named struct {
	name string
	m    r3x3
}

func run(ctx context.Context, w io.Writer, cfg config) error {
	fmt.Fprintln(w, "This is a demo example!")

	var all []named
	show := func(name string, m r3x3) {
		printMatrix(w, name, m)
		all = append(all, named{name, m})
	}

	var u3 eye3
	show("m1", u3)

	show("m2", new(m3x3))

	m3, err := matrix.Convert[float32, float32, shape.D3, shape.D3](u3)
	if err != nil {
		return err
	}
	show("m3", m3)

	m4 := new(m3x3)
	printMatrix(w, "m4", m4)
	if err = m4.Assign(u3); err != nil {
		return err
	}
	show("m5", m4)

	m6, err := matrix.FromValues[float32, shape.D3, shape.D3](1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err != nil {
		return err
	}
	show("m6", m6)

	twice, err := m6.Plus(m6)
	if err != nil {
		return err
	}
	m7, err := twice.Plus(u3)
	if err != nil {
		return err
	}
	show("m7", m7)

	if cfg.heatmap != "" {
		if err = writeHeatMap(cfg.heatmap, m7); err != nil {
			return err
		}
		log.Printf("heat map written to %s", cfg.heatmap)
	}
	if cfg.store != "" {
		if err = roundTrip(w, cfg.store, m7); err != nil {
			return err
		}
	}
	if cfg.db != "" {
		if err = storeAll(ctx, cfg.db, all); err != nil {
			return err
		}
		log.Printf("%d matrices stored in %s", len(all), cfg.db)
	}

	return nil
}

func printMatrix(w io.Writer, name string, m r3x3) {
	s, err := matrix.Format[float32, shape.D3, shape.D3](m)
	if err != nil {
		s = err.Error() + "\n"
	}
	fmt.Fprintf(w, "\n%s = [\n%s]\n", name, s)
}

func writeHeatMap(path string, m r3x3) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if err := render.CheckFormat(format); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.Write[float32, shape.D3, shape.D3](f, m, format, render.WithTitle("m + m + I")); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	return f.Close()
}

func roundTrip(w io.Writer, path string, m r3x3) error {
	if err := mmstore.Save[float32, shape.D3, shape.D3](path, m); err != nil {
		return err
	}
	v, err := mmstore.OpenRO[float32, shape.D3, shape.D3](path)
	if err != nil {
		return err
	}
	defer v.Close()
	printMatrix(w, "stored m7", v)

	return nil
}

func storeAll(ctx context.Context, dsn string, all []named) error {
	st, err := sqlstore.Open(dsn)
	if err != nil {
		return err
	}
	defer st.Close()
	for _, n := range all {
		if err = sqlstore.Put[float32, shape.D3, shape.D3](ctx, st, n.name, n.m); err != nil {
			return err
		}
	}

	return nil
}
