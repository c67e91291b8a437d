package ortho

import (
	"context"
	"database/sql"

	"github.com/mgijax/bio-synteny/synteny"
	"github.com/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
)

// pairQuery joins the homology tables to one row per ortholog pair, with
// symbol, chromosome, coordinates, and strand for both genes. Rows come back
// ordered by genome-A chromosome and start, the order the overlap filter
// expects to see first.
const pairQuery = `
SELECT DISTINCT
    m1.symbol AS symbolA,
    mlc.chromosome AS chrA,
    CAST(mlc.startCoordinate AS SIGNED) AS startA,
    CAST(mlc.endCoordinate AS SIGNED) AS endA,
    mlc.strand AS strandA,
    m2.symbol AS symbolB,
    ch.chromosome AS chrB,
    CAST(mf.startCoordinate AS SIGNED) AS startB,
    CAST(mf.endCoordinate AS SIGNED) AS endB,
    mf.strand AS strandB
FROM
    hmd_homology hh1,
    hmd_homology_marker hm1,
    mrk_marker m1,
    mrk_location_cache mlc,
    hmd_homology hh2,
    hmd_homology_marker hm2,
    mrk_marker m2,
    map_coord_feature mf,
    map_coordinate mc,
    mrk_chromosome ch
WHERE hh1._class_key = hh2._class_key
AND hh1._homology_key = hm1._homology_key
AND hm1._marker_key = m1._marker_key
AND m1._organism_key = ?
AND m1._marker_key = mlc._marker_key
AND mlc.startCoordinate IS NOT NULL
AND hh2._homology_key = hm2._homology_key
AND hm2._marker_key = m2._marker_key
AND m2._organism_key = ?
AND m2._marker_key = mf._object_key
AND mf._map_key = mc._map_key
AND mc._collection_key = ?
AND mc._object_key = ch._chromosome_key
ORDER BY chrA, startA
`

// Default organism and map-collection keys for the mouse/human homology
// tables.
const (
	DefaultOrganismA  = 1
	DefaultOrganismB  = 2
	DefaultCollection = 47
)

// DBSource reads ortholog pairs from a homology database.
type DBSource struct {
	DB *sql.DB
	// OrganismA, OrganismB, and Collection override the default mouse/human
	// query keys when nonzero.
	OrganismA  int
	OrganismB  int
	Collection int
}

// OpenDB opens a database handle for the given DSN using the mysql driver.
// The handle is not connected until first use.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open homology db")
	}
	return db, nil
}

// Pairs runs the homology query and returns normalized pairs. The first
// malformed row aborts the query.
func (s *DBSource) Pairs(ctx context.Context) ([]synteny.Pair, error) {
	orgA, orgB, coll := s.OrganismA, s.OrganismB, s.Collection
	if orgA == 0 {
		orgA = DefaultOrganismA
	}
	if orgB == 0 {
		orgB = DefaultOrganismB
	}
	if coll == 0 {
		coll = DefaultCollection
	}
	rows, err := s.DB.QueryContext(ctx, pairQuery, orgA, orgB, coll)
	if err != nil {
		return nil, errors.Wrap(err, "query ortholog pairs")
	}
	defer rows.Close() // nolint: errcheck

	var pairs []synteny.Pair
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.SymbolA, &rec.ChromA, &rec.StartA, &rec.EndA, &rec.StrandA,
			&rec.SymbolB, &rec.ChromB, &rec.StartB, &rec.EndB, &rec.StrandB); err != nil {
			return nil, errors.Wrap(err, "scan ortholog pair")
		}
		p, err := rec.Pair()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read ortholog pairs")
	}
	return pairs, nil
}
