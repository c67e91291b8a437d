package ortho

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
	"github.com/mgijax/bio-synteny/synteny"
	"github.com/pkg/errors"
)

// tsvRow mirrors the pair-table header. Columns follow the upstream query
// naming: genome A is the organism of the first gene, genome B the second.
type tsvRow struct {
	SymbolA string `tsv:"symbolA"`
	ChromA  string `tsv:"chrA"`
	StartA  string `tsv:"startA"`
	EndA    string `tsv:"endA"`
	StrandA string `tsv:"strandA"`
	SymbolB string `tsv:"symbolB"`
	ChromB  string `tsv:"chrB"`
	StartB  string `tsv:"startB"`
	EndB    string `tsv:"endB"`
	StrandB string `tsv:"strandB"`
}

// ReadTSV reads normalized ortholog pairs from a tab-delimited file with a
// header row. Files ending in .gz are decompressed transparently. The first
// malformed record aborts the read.
func ReadTSV(ctx context.Context, path string) ([]synteny.Pair, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer in.Close(ctx) // nolint: errcheck
	var inr io.Reader = in.Reader(ctx)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(inr)
		if err != nil {
			return nil, errors.Wrapf(err, "gunzip %s", path)
		}
		defer gz.Close() // nolint: errcheck
		inr = gz
	}
	pairs, err := readTSV(bufio.NewReaderSize(inr, 64<<10))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return pairs, nil
}

func readTSV(in io.Reader) ([]synteny.Pair, error) {
	r := tsv.NewReader(in)
	r.HasHeaderRow = true
	r.UseHeaderNames = true
	r.RequireParseAllColumns = true

	var pairs []synteny.Pair
	var row tsvRow
	for {
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		rec := Record(row)
		p, err := rec.Pair()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
