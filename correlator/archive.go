package correlator

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Archive layout: a zip with two entries, mirroring the original
// header+mapping contract — a human-readable yaml header carrying the
// lattice extents, and a gob-encoded record table carrying the mapping.
// gob keeps float64 values bit-identical across a round trip, which yaml
// cannot guarantee.
const (
	archiveHeaderName = "header.yaml"
	archiveDataName   = "correlators.gob"
)

// archiveHeader is the yaml header entry. Pointer fields distinguish a
// missing field from a zero one during validation.
type archiveHeader struct {
	L *int `yaml:"l"`
	T *int `yaml:"t"`
}

// archiveRecord is one serialized (Key, Series) pair.
type archiveRecord struct {
	Label    string
	Masses   []float64
	Momentum [3]int
	Source   Smearing
	Sink     Smearing
	Data     []float64
	Folded   bool
}

// Save writes the store to path as a single atomic archive: the file is
// created (truncating any previous content) and both entries are written
// in one pass.
func (s *Store) Save(path string) error {
	if s == nil {
		return ErrNilStore
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("correlator: creating archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	hw, err := zw.Create(archiveHeaderName)
	if err != nil {
		return fmt.Errorf("correlator: writing archive header: %w", err)
	}
	header, err := yaml.Marshal(archiveHeader{L: &s.l, T: &s.t})
	if err != nil {
		return fmt.Errorf("correlator: encoding archive header: %w", err)
	}
	if _, err = hw.Write(header); err != nil {
		return fmt.Errorf("correlator: writing archive header: %w", err)
	}

	dw, err := zw.Create(archiveDataName)
	if err != nil {
		return fmt.Errorf("correlator: writing archive data: %w", err)
	}
	if err = gob.NewEncoder(dw).Encode(s.records()); err != nil {
		return fmt.Errorf("correlator: encoding archive data: %w", err)
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("correlator: finalizing archive: %w", err)
	}

	return f.Close()
}

// records renders the entry table in canonical key order.
func (s *Store) records() []archiveRecord {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]archiveRecord, len(ids))
	for i, id := range ids {
		e := s.entries[id]
		out[i] = archiveRecord{
			Label:    e.key.Label,
			Masses:   e.key.Masses,
			Momentum: e.key.Momentum,
			Source:   e.key.Source,
			Sink:     e.key.Sink,
			Data:     e.series.Data,
			Folded:   e.series.Folded,
		}
	}

	return out
}

// Load reads an archive produced by Save and materializes the store. The
// header is validated (both extents present and positive) before any data
// is decoded, and every record's series must have length T.
//
// Errors: ErrBadFormat for any structural problem with the archive.
func Load(path string) (*Store, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("correlator: opening archive: %w", ErrBadFormat)
	}
	defer zr.Close()

	header, err := readHeader(&zr.Reader)
	if err != nil {
		return nil, err
	}

	store, err := NewStore(*header.L, *header.T)
	if err != nil {
		return nil, fmt.Errorf("correlator: archive header extents: %w", ErrBadFormat)
	}

	records, err := readRecords(&zr.Reader)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if len(r.Data) != store.t {
			return nil, fmt.Errorf("correlator: record %q has length %d, header says T=%d: %w",
				r.Label, len(r.Data), store.t, ErrBadFormat)
		}
		key := NewKey(r.Label, r.Masses, r.Momentum, r.Source, r.Sink)
		store.entries[key.id()] = entry{
			key:    key,
			series: Series{Data: r.Data, Folded: r.Folded},
		}
	}

	return store, nil
}

// readHeader locates, decodes and validates the yaml header entry.
func readHeader(zr *zip.Reader) (archiveHeader, error) {
	var header archiveHeader

	raw, err := readArchiveEntry(zr, archiveHeaderName)
	if err != nil {
		return header, err
	}
	if err = yaml.Unmarshal(raw, &header); err != nil {
		return header, fmt.Errorf("correlator: decoding archive header: %w", ErrBadFormat)
	}
	if header.L == nil || header.T == nil {
		return header, fmt.Errorf("correlator: archive header missing extents: %w", ErrBadFormat)
	}

	return header, nil
}

// readRecords locates and decodes the gob entry table.
func readRecords(zr *zip.Reader) ([]archiveRecord, error) {
	raw, err := readArchiveEntry(zr, archiveDataName)
	if err != nil {
		return nil, err
	}

	var records []archiveRecord
	if err = gob.NewDecoder(bytes.NewReader(raw)).Decode(&records); err != nil {
		return nil, fmt.Errorf("correlator: decoding archive data: %w", ErrBadFormat)
	}

	return records, nil
}

// readArchiveEntry reads one named entry fully into memory.
func readArchiveEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("correlator: opening archive entry %q: %w", name, ErrBadFormat)
		}
		defer rc.Close()

		raw, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("correlator: reading archive entry %q: %w", name, ErrBadFormat)
		}

		return raw, nil
	}

	return nil, fmt.Errorf("correlator: archive entry %q missing: %w", name, ErrBadFormat)
}
