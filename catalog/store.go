package catalog

import "github.com/deferfmt/deferfmt/wire"

// Store holds the three content-addressed tables for one crate: print
// statements, write statements, and type structures (spec.md §3, §4.F).
//
// SchemaVersion is an out-of-band value, never transmitted on the wire,
// checked only when a snapshot is loaded from disk (see filestore.go and
// DESIGN.md's "Catalog versioning" open-question decision).
type Store struct {
	SchemaVersion uint32

	print *table
	write *table
	typ   *table
}

// NewStore creates an empty, in-memory store.
func NewStore(schemaVersion uint32) *Store {
	return &Store{
		SchemaVersion: schemaVersion,
		print:         newTable(),
		write:         newTable(),
		typ:           newTable(),
	}
}

// InsertPrintStatement stores a serialized print-statement record, reusing
// the id of an existing record with identical content.
func (s *Store) InsertPrintStatement(content []byte) (wire.PrintStatementID, error) {
	id, err := s.print.insert(content)
	return wire.PrintStatementID(id), err
}

// FindPrintStatementByID retrieves a print-statement record by id.
func (s *Store) FindPrintStatementByID(id wire.PrintStatementID) (Record, bool) {
	return s.print.findByID(uint16(id))
}

// FindPrintStatementByHash returns every print-statement record sharing a
// content hash, for collision inspection.
func (s *Store) FindPrintStatementByHash(h uint64) []Record {
	return s.print.findByHash(h)
}

// InsertWriteStatement stores a serialized write-statement record.
func (s *Store) InsertWriteStatement(content []byte) (wire.WriteStatementID, error) {
	id, err := s.write.insert(content)
	return wire.WriteStatementID(id), err
}

// FindWriteStatementByID retrieves a write-statement record by id.
func (s *Store) FindWriteStatementByID(id wire.WriteStatementID) (Record, bool) {
	return s.write.findByID(uint16(id))
}

// FindWriteStatementByHash returns every write-statement record sharing a
// content hash.
func (s *Store) FindWriteStatementByHash(h uint64) []Record {
	return s.write.findByHash(h)
}

// InsertTypeStructure stores a serialized type-structure record.
func (s *Store) InsertTypeStructure(content []byte) (wire.TypeStructureID, error) {
	id, err := s.typ.insert(content)
	return wire.TypeStructureID(id), err
}

// FindTypeStructureByID retrieves a type-structure record by id.
func (s *Store) FindTypeStructureByID(id wire.TypeStructureID) (Record, bool) {
	return s.typ.findByID(uint16(id))
}

// FindTypeStructureByHash returns every type-structure record sharing a
// content hash.
func (s *Store) FindTypeStructureByHash(h uint64) []Record {
	return s.typ.findByHash(h)
}
