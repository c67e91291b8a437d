package main

// Output writers: the tab-delimited block table and the ItemXML document.

import (
	"context"
	"io"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/mgijax/bio-synteny/encoding/itemxml"
	"github.com/mgijax/bio-synteny/synteny"
)

// writeBlockTable writes one row per block: genome-A chromosome/start/end,
// genome-B chromosome/start/end, block name, orientation, pair count, and
// the block's starting rank in each genome. No header row.
func writeBlockTable(ctx context.Context, path string, blocks []*synteny.Block) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	w := tsv.NewWriter(out.Writer(ctx))
	for _, b := range blocks {
		w.WriteString(b.A.Chrom)
		w.WriteInt64(int64(b.A.Start))
		w.WriteInt64(int64(b.A.End))
		w.WriteString(b.B.Chrom)
		w.WriteInt64(int64(b.B.Start))
		w.WriteInt64(int64(b.B.End))
		w.WriteString(b.ID)
		if b.Orientation > 0 {
			w.WriteString("+")
		} else {
			w.WriteString("-")
		}
		w.WriteInt64(int64(b.PairCount))
		w.WriteInt64(int64(b.FirstRankA))
		w.WriteInt64(int64(b.StartRankB()))
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Close(ctx)
}

func writeItemXML(ctx context.Context, flags syntenyFlags, blocks []*synteny.Block) error {
	var w io.Writer = os.Stdout
	var out file.File
	if flags.xmlOutputPath != "" {
		var err error
		if out, err = file.Create(ctx, flags.xmlOutputPath); err != nil {
			return err
		}
		w = out.Writer(ctx)
	}
	a, b := flags.genomes()
	opts := itemxml.EmitterOpts{SymbolTag: flags.symbolTag, NamePrefix: flags.namePrefix}
	e := itemxml.NewEmitter(w, a, b, opts)
	for _, blk := range blocks {
		if err := e.WriteBlock(blk); err != nil {
			return err
		}
	}
	if err := e.Close(); err != nil {
		return err
	}
	if out != nil {
		return out.Close(ctx)
	}
	return nil
}
