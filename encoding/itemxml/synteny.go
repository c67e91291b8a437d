package itemxml

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mgijax/bio-synteny/synteny"
)

// Genome describes one organism side of a synteny mapping for emission.
type Genome struct {
	// Name is a display label ("mouse", "human") used in region names.
	Name    string
	TaxonID string
	// Chromosomes lists the chromosome identifiers to register, in emission
	// order. Blocks may only refer to chromosomes listed here.
	Chromosomes []string
}

// EmitterOpts configures block emission.
type EmitterOpts struct {
	// SymbolTag is interpolated into each region's symbol attribute:
	// "SynBlock:<tag>:<blockID>".
	SymbolTag string
	// NamePrefix precedes the block ID in each region's name attribute.
	NamePrefix string
}

// DefaultEmitterOpts matches the historical mouse/human output.
var DefaultEmitterOpts = EmitterOpts{
	SymbolTag:  "mmhs",
	NamePrefix: "NCBI Mouse/Human Synteny Block ",
}

type organismRefs struct {
	id     string
	chroms map[string]string
}

// Emitter writes a synteny mapping as an item-exchange document: Organism
// and Chromosome reference items up front, then two linked SyntenicRegion
// features (one per genome) plus their Location sub-records for every block.
// Blocks carry no strand; each Location's strand attribute is fixed at 0.
type Emitter struct {
	w    *Writer
	ids  *IDSource
	opts EmitterOpts
	refs [2]organismRefs
}

// NewEmitter starts a document on out and emits the organism and chromosome
// items for both genomes.
func NewEmitter(out io.Writer, a, b Genome, opts EmitterOpts) *Emitter {
	e := &Emitter{w: NewWriter(out), ids: NewIDSource(), opts: opts}
	for i, g := range []Genome{a, b} {
		e.refs[i] = e.writeOrganism(g)
	}
	return e
}

func (e *Emitter) writeOrganism(g Genome) organismRefs {
	refs := organismRefs{id: e.ids.Next("Organism"), chroms: map[string]string{}}
	e.w.Write(Item{
		Class: "Organism",
		ID:    refs.id,
		Attrs: []Attr{{"taxonId", g.TaxonID}},
	})
	for _, c := range g.Chromosomes {
		cid := e.ids.Next("Chromosome")
		refs.chroms[c] = cid
		e.w.Write(Item{
			Class: "Chromosome",
			ID:    cid,
			Attrs: []Attr{{"primaryIdentifier", c}},
			Refs:  []Ref{{"organism", refs.id}},
		})
	}
	return refs
}

// WriteBlock emits one synteny block: a SyntenicRegion and Location per
// genome, with the two regions referencing each other as partners.
func (e *Emitter) WriteBlock(blk *synteny.Block) error {
	regionA, locA, err := e.region(0, blk.A, blk.ID)
	if err != nil {
		return err
	}
	regionB, locB, err := e.region(1, blk.B, blk.ID)
	if err != nil {
		return err
	}
	regionA.Refs = append(regionA.Refs, Ref{"partner", regionB.ID})
	regionB.Refs = append(regionB.Refs, Ref{"partner", regionA.ID})
	e.w.Write(regionA)
	e.w.Write(locA)
	e.w.Write(regionB)
	e.w.Write(locB)
	return nil
}

func (e *Emitter) region(g int, iv synteny.Interval, blockID string) (Item, Item, error) {
	refs := e.refs[g]
	cid, ok := refs.chroms[iv.Chrom]
	if !ok {
		return Item{}, Item{}, fmt.Errorf("itemxml: block %s: unregistered chromosome %q", blockID, iv.Chrom)
	}
	fid := e.ids.Next("SyntenicRegion")
	lid := e.ids.Next("Location")
	region := Item{
		Class: "SyntenicRegion",
		ID:    fid,
		Attrs: []Attr{
			{"symbol", "SynBlock:" + e.opts.SymbolTag + ":" + blockID},
			{"name", e.opts.NamePrefix + blockID},
		},
		Refs: []Ref{
			{"organism", refs.id},
			{"chromosome", cid},
			{"chromosomeLocation", lid},
		},
	}
	loc := Item{
		Class: "Location",
		ID:    lid,
		Attrs: []Attr{
			{"start", strconv.Itoa(iv.Start)},
			{"end", strconv.Itoa(iv.End)},
			{"strand", "0"},
		},
		Refs: []Ref{
			{"feature", fid},
			{"locatedOn", cid},
		},
	}
	return region, loc, nil
}

// Close finishes the document.
func (e *Emitter) Close() error {
	return e.w.Close()
}
