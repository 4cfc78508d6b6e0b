package catalog

import (
	"bytes"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/internal/hash"
)

// Record is one row of a table: a dense id, the content hash, and the
// serialized record bytes it was computed from.
type Record struct {
	ID      uint16
	Hash    uint64
	Content []byte
}

// table is the content-addressed store behind one of a crate's three
// statement/shape kinds. Ids are dense array indices, so FindByID is O(1);
// Insert is O(1) expected, degrading only under a genuine hash collision,
// which is resolved by comparing content directly rather than trusting the
// hash (spec.md §4.F Invariants: "Hash collisions never cause aliasing").
type table struct {
	records []Record
	byHash  map[uint64][]int
}

func newTable() *table {
	return &table{byHash: make(map[uint64][]int)}
}

// findByID returns the record at id, if any.
func (t *table) findByID(id uint16) (Record, bool) {
	if int(id) >= len(t.records) {
		return Record{}, false
	}

	return t.records[id], true
}

// findByHash returns every record sharing hash h, for collision inspection.
func (t *table) findByHash(h uint64) []Record {
	idxs := t.byHash[h]
	if len(idxs) == 0 {
		return nil
	}

	out := make([]Record, len(idxs))
	for i, idx := range idxs {
		out[i] = t.records[idx]
	}

	return out
}

// insert computes content's hash, reuses the id of any existing record with
// equal content, and otherwise appends a new row.
func (t *table) insert(content []byte) (uint16, error) {
	h := hash.Content(content)

	for _, idx := range t.byHash[h] {
		if bytes.Equal(t.records[idx].Content, content) {
			return t.records[idx].ID, nil
		}
	}

	if len(t.records) > 0xffff {
		return 0, deferrs.ErrTableFull
	}

	id := uint16(len(t.records))
	stored := append([]byte(nil), content...)
	t.records = append(t.records, Record{ID: id, Hash: h, Content: stored})
	t.byHash[h] = append(t.byHash[h], len(t.records)-1)

	return id, nil
}
