package catalog

import (
	"encoding/binary"

	"github.com/deferfmt/deferfmt/deferrs"
)

// Snapshot serializes the store's three tables, in insertion order, into a
// single byte slice suitable for persistence. Records are stored in id
// order, so loading a snapshot reproduces the original ids exactly; the
// content hash is never stored, since it is cheap to recompute from the
// content and recomputing it rebuilds the collision index for free.
//
// Layout: schema_version(4) then, for print/write/type in that order,
// record_count(4) followed by record_count entries of
// content_length(4) + content bytes. All integers are big-endian.
func (s *Store) Snapshot() []byte {
	var out []byte

	out = appendUint32(out, s.SchemaVersion)
	for _, t := range []*table{s.print, s.write, s.typ} {
		out = appendUint32(out, uint32(len(t.records)))
		for _, rec := range t.records {
			out = appendUint32(out, uint32(len(rec.Content)))
			out = append(out, rec.Content...)
		}
	}

	return out
}

// LoadSnapshot reconstructs a Store from bytes produced by Snapshot,
// rejecting a schema version that doesn't match expectedSchemaVersion.
func LoadSnapshot(data []byte, expectedSchemaVersion uint32) (*Store, error) {
	r := snapshotReader{data: data}

	version, ok := r.readUint32()
	if !ok {
		return nil, deferrs.ErrSnapshotCorrupt
	}

	if version != expectedSchemaVersion {
		return nil, deferrs.ErrSchemaVersionMismatch
	}

	store := NewStore(expectedSchemaVersion)
	for _, t := range []*table{store.print, store.write, store.typ} {
		if err := r.readTable(t); err != nil {
			return nil, err
		}
	}

	if !r.exhausted() {
		return nil, deferrs.ErrSnapshotCorrupt
	}

	return store, nil
}

type snapshotReader struct {
	data   []byte
	offset int
}

func (r *snapshotReader) exhausted() bool {
	return r.offset == len(r.data)
}

func (r *snapshotReader) readUint32() (uint32, bool) {
	if r.offset+4 > len(r.data) {
		return 0, false
	}

	v := binary.BigEndian.Uint32(r.data[r.offset:])
	r.offset += 4

	return v, true
}

func (r *snapshotReader) readBytes(n uint32) ([]byte, bool) {
	if r.offset+int(n) > len(r.data) {
		return nil, false
	}

	b := r.data[r.offset : r.offset+int(n)]
	r.offset += int(n)

	return b, true
}

func (r *snapshotReader) readTable(t *table) error {
	count, ok := r.readUint32()
	if !ok {
		return deferrs.ErrSnapshotCorrupt
	}

	for i := uint32(0); i < count; i++ {
		length, ok := r.readUint32()
		if !ok {
			return deferrs.ErrSnapshotCorrupt
		}

		content, ok := r.readBytes(length)
		if !ok {
			return deferrs.ErrSnapshotCorrupt
		}

		if _, err := t.insert(content); err != nil {
			return err
		}
	}

	return nil
}

func appendUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}
