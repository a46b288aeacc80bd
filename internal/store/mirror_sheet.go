// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/account-vault/models"
)

// DefaultMirrorColumns is used when no column list is configured.
const DefaultMirrorColumns = "id,ciphertext,nonce,salt,title,tags,created_at,updated_at"

// MirrorColumn maps a source key (a record field or a meta key) to a header.
type MirrorColumn struct {
	Key    string
	Header string
}

// ParseMirrorColumns parses "key" and "key|Header" entries separated by
// commas. Blank entries are skipped; an empty spec yields the defaults.
func ParseMirrorColumns(spec string) []MirrorColumn {
	if strings.TrimSpace(spec) == "" {
		spec = DefaultMirrorColumns
	}

	cols := make([]MirrorColumn, 0, 8)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, header, found := strings.Cut(part, "|")
		key = strings.TrimSpace(key)
		header = strings.TrimSpace(header)
		if !found {
			header = key
		}
		cols = append(cols, MirrorColumn{Key: key, Header: header})
	}
	return cols
}

// SheetMirror appends every created record as a row of a CSV sheet. The
// first row always holds the configured headers; it is rewritten in place
// when the column list changes. Only ciphertext and plaintext lookup fields
// ever reach the sheet.
type SheetMirror struct {
	mu      sync.Mutex
	path    string
	columns []MirrorColumn
	// headerOK is set once the sheet is known to start with the current
	// header and reset after a failed append.
	headerOK bool
}

// NewSheetMirror constructs a [SheetMirror] writing to path.
func NewSheetMirror(path, columns string) *SheetMirror {
	return &SheetMirror{
		path:    path,
		columns: ParseMirrorColumns(columns),
	}
}

// Append implements [Mirror].
func (m *SheetMirror) Append(_ context.Context, rec models.Record, meta models.Meta) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureHeader(); err != nil {
		return fmt.Errorf("mirror header: %w", err)
	}

	if err := m.appendRow(m.row(rec, meta)); err != nil {
		m.headerOK = false
		return err
	}
	return nil
}

func (m *SheetMirror) appendRow(row []string) error {
	f, err := os.OpenFile(m.path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open mirror: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append mirror row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (m *SheetMirror) headers() []string {
	out := make([]string, len(m.columns))
	for i, c := range m.columns {
		out[i] = c.Header
	}
	return out
}

// row renders rec in column order. Meta values fill keys that are not
// record fields; they can never overwrite the record itself.
func (m *SheetMirror) row(rec models.Record, meta models.Meta) []string {
	source := map[string]string{
		"id":         rec.ID,
		"ciphertext": rec.Ciphertext,
		"nonce":      rec.Nonce,
		"salt":       rec.Salt,
		"title":      rec.Title,
		"tags":       rec.Tags,
		"created_at": rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at": rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for k, v := range meta {
		if _, core := source[k]; !core {
			source[k] = v
		}
	}

	values := make([]string, len(m.columns))
	for i, c := range m.columns {
		values[i] = source[c.Key]
	}
	return values
}

// ensureHeader makes sure the sheet starts with the configured header. Only
// the first row is read unless the header differs and the rows have to be
// carried over.
func (m *SheetMirror) ensureHeader() error {
	if m.headerOK {
		return nil
	}
	want := m.headers()

	f, err := os.Open(m.path)
	if errors.Is(err, os.ErrNotExist) {
		if err = m.rewrite(want, nil); err != nil {
			return err
		}
		m.headerOK = true
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	first, err := r.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read mirror: %w", err)
	}
	if err == nil && slices.Equal(first, want) {
		m.headerOK = true
		return nil
	}

	var rows [][]string
	if err == nil {
		if rows, err = r.ReadAll(); err != nil {
			return fmt.Errorf("read mirror: %w", err)
		}
	}
	if err = m.rewrite(want, rows); err != nil {
		return err
	}
	m.headerOK = true
	return nil
}

// rewrite replaces the sheet with header followed by rows, atomically.
func (m *SheetMirror) rewrite(header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(m.path), filepath.Base(m.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), m.path)
}

// NopMirror discards every record. Used when no mirror path is configured.
type NopMirror struct{}

func (NopMirror) Append(context.Context, models.Record, models.Meta) error { return nil }

// NewMirror returns a [SheetMirror] for a non-empty path and a [NopMirror]
// otherwise.
func NewMirror(path, columns string) Mirror {
	if path == "" {
		return NopMirror{}
	}
	return NewSheetMirror(path, columns)
}
