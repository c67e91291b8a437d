package main

// Command bio-synteny produces a two-genome synteny mapping from ortholog
// pair records.
//
// Pairs come either from a tab-delimited file or from a homology database:
//
//    bio-synteny -input pairs.tsv -xml-output synteny.xml
//    bio-synteny -db 'user:pw@tcp(dbhost:3306)/mgd' -blocks-output blocks.txt
//
// The ItemXML document (organisms, chromosomes, and per block two linked
// SyntenicRegion features with their Locations) goes to -xml-output, or
// standard output when the flag is empty. -blocks-output additionally writes
// a tab-delimited block table, one row per block.
//
// Defaults describe the mouse/human mapping; the organism flags generalize
// to any genome pair.

import (
	"context"
	"flag"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/mgijax/bio-synteny/encoding/itemxml"
	"github.com/mgijax/bio-synteny/ortho"
	"github.com/mgijax/bio-synteny/synteny"
)

type syntenyFlags struct {
	inputPath        string
	dbDSN            string
	xmlOutputPath    string
	blocksOutputPath string
	validate         bool

	taxonA, taxonB   string
	chromsA, chromsB string
	labelA, labelB   string
	symbolTag        string
	namePrefix       string
}

func (f *syntenyFlags) genomes() (itemxml.Genome, itemxml.Genome) {
	a := itemxml.Genome{Name: f.labelA, TaxonID: f.taxonA, Chromosomes: strings.Split(f.chromsA, ",")}
	b := itemxml.Genome{Name: f.labelB, TaxonID: f.taxonB, Chromosomes: strings.Split(f.chromsB, ",")}
	return a, b
}

func loadPairs(ctx context.Context, flags syntenyFlags) []synteny.Pair {
	if (flags.inputPath == "") == (flags.dbDSN == "") {
		log.Fatalf("exactly one of -input and -db must be set")
	}
	if flags.inputPath != "" {
		pairs, err := ortho.ReadTSV(ctx, flags.inputPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		return pairs
	}
	db, err := ortho.OpenDB(flags.dbDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close() // nolint: errcheck
	src := ortho.DBSource{DB: db}
	pairs, err := src.Pairs(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return pairs
}

func main() {
	var flags syntenyFlags
	flag.StringVar(&flags.inputPath, "input", "", "Tab-delimited ortholog pair file (may be .gz).")
	flag.StringVar(&flags.dbDSN, "db", "", "Homology database DSN. Mutually exclusive with -input.")
	flag.StringVar(&flags.xmlOutputPath, "xml-output", "", "ItemXML output path. (default stdout)")
	flag.StringVar(&flags.blocksOutputPath, "blocks-output", "", "Optional tab-delimited block table output path.")
	flag.BoolVar(&flags.validate, "validate", false, "Check partition and non-overlap invariants before writing output.")
	flag.StringVar(&flags.taxonA, "taxon-a", mouseTaxonID, "NCBI taxonomy ID of genome A.")
	flag.StringVar(&flags.taxonB, "taxon-b", humanTaxonID, "NCBI taxonomy ID of genome B.")
	flag.StringVar(&flags.chromsA, "chromosomes-a", strings.Join(mouseChromosomes, ","), "Comma-separated chromosome names of genome A.")
	flag.StringVar(&flags.chromsB, "chromosomes-b", strings.Join(humanChromosomes, ","), "Comma-separated chromosome names of genome B.")
	flag.StringVar(&flags.labelA, "label-a", "mouse", "Display label of genome A.")
	flag.StringVar(&flags.labelB, "label-b", "human", "Display label of genome B.")
	flag.StringVar(&flags.symbolTag, "symbol-tag", itemxml.DefaultEmitterOpts.SymbolTag, "Tag used in SyntenicRegion symbols.")
	flag.StringVar(&flags.namePrefix, "name-prefix", itemxml.DefaultEmitterOpts.NamePrefix, "Prefix of SyntenicRegion names.")
	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	pairs := loadPairs(ctx, flags)
	log.Printf("loaded %d ortholog pairs", len(pairs))

	blocks, ranked := synteny.BuildBlocks(pairs)
	log.Printf("built %d synteny blocks from %d filtered pairs", len(blocks), len(ranked))

	if flags.validate {
		if err := synteny.ValidatePairs(ranked); err != nil {
			log.Fatalf("%v", err)
		}
		if err := synteny.ValidateBlocks(blocks); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if flags.blocksOutputPath != "" {
		if err := writeBlockTable(ctx, flags.blocksOutputPath, blocks); err != nil {
			log.Fatalf("write %s: %v", flags.blocksOutputPath, err)
		}
	}
	if err := writeItemXML(ctx, flags, blocks); err != nil {
		log.Fatalf("write itemxml: %v", err)
	}
}
