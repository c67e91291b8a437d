/*Package synteny builds a synteny mapping between two genomes from pairs of
  orthologous genes.

  A synteny block is a pair of genomic ranges, one per genome, deemed
  equivalent. A synteny mapping is a set of blocks that partitions both
  genomes: in each genome the blocks are non-overlapping and cover every
  chromosome that carries a block from position 1 onward.

  Construction is a one-shot, in-memory pipeline over the full pair list:

    1. FilterOverlaps removes pairs whose interval overlaps the previously
       retained pair's, first in genome-A coordinate order, then genome-B.
    2. AssignRanks gives each survivor its 0-based position in each genome's
       (chromosome, start) order.
    3. GenerateBlocks scans pairs in genome-A rank order, merging runs that
       stay collinear in both genomes (same chromosomes, same strand
       relationship, adjacent genome-B ranks) into blocks.
    4. MassageBlocks closes the gaps between neighboring blocks and anchors
       each chromosome's first block at position 1, independently per genome.

  Example: mouse genes a, b, c sit on the + strand of chr 6, and their human
  orthologs A, B, C sit on the - strand of chr 22 in reverse order. The three
  pairs merge into a single block pairing the mouse chr 6 range with the
  human chr 22 range in the - orientation.

  The computation is deterministic and single-threaded; rerunning it on the
  same input yields an identical block list.
*/
package synteny
