// Package export serializes finished statues to gzipped JSON documents.
// The document is self-contained: block list, the palette that produced it,
// and the settings needed to reproduce the build.
package export

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"mc-skin-statue/internal/palette"
	"mc-skin-statue/internal/voxel"
)

// Ext is the statue document file extension.
const Ext = ".statue.json.gz"

// Block is one voxel in the document.
type Block struct {
	X  int    `json:"x"`
	Y  int    `json:"y"`
	Z  int    `json:"z"`
	ID string `json:"id"`
}

// Document is the serialized statue.
type Document struct {
	Generator string          `json:"generator"`
	Created   time.Time       `json:"created"`
	Source    string          `json:"source"`
	Model     string          `json:"model"`
	Pose      string          `json:"pose"`
	Hollow    bool            `json:"hollow"`
	Size      [3]int          `json:"size"`
	Palette   []palette.Entry `json:"palette"`
	Blocks    []Block         `json:"blocks"`
}

// NewDocument assembles a document from a grounded voxel set. Blocks are
// sorted (y, z, x) so identical inputs produce identical files.
func NewDocument(s *voxel.Set, pal palette.Palette, source, model, poseName string, hollow bool) Document {
	doc := Document{
		Generator: "mc-skin-statue",
		Created:   time.Now().UTC(),
		Source:    source,
		Model:     model,
		Pose:      poseName,
		Hollow:    hollow,
		Palette:   pal.Entries,
		Blocks:    make([]Block, 0, s.Len()),
	}
	if min, max, ok := s.Bounds(); ok {
		doc.Size = [3]int{max.X - min.X + 1, max.Y - min.Y + 1, max.Z - min.Z + 1}
	}
	for _, c := range s.Sorted() {
		id, _ := s.Get(c)
		doc.Blocks = append(doc.Blocks, Block{X: c.X, Y: c.Y, Z: c.Z, ID: id})
	}
	return doc
}

// Write stores the document as gzipped JSON.
func Write(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	enc := json.NewEncoder(zw)
	if err := enc.Encode(doc); err != nil {
		zw.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("export: flush %s: %w", path, err)
	}
	return nil
}

// Read loads a document back; used by tooling and tests.
func Read(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return Document{}, fmt.Errorf("export: gunzip %s: %w", path, err)
	}
	defer zr.Close()

	var doc Document
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: decode %s: %w", path, err)
	}
	return doc, nil
}
