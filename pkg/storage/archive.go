// Package storage archives decoded PRJ records in a pebble database.
//
// Every project is identified by a KSUID. A record is stored as its canonical
// PRJ text under "<project>/<kind>/<nr>", with nr zero padded so that a
// prefix scan returns records in numeric order.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/contamprj/pkg/prj"
)

// Errors
var (
	ErrNotFound        = errors.New("record not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidNumber   = errors.New("record number must not be negative")
)

const projectPrefix = "project/"

// Archive is a pebble backed record store. It is safe for concurrent use.
type Archive struct {
	db   *pebble.DB
	opts prj.DecodeOptions
}

// Open opens or creates the archive in dir. opts is used when stored records
// are decoded again.
func Open(dir string, opts prj.DecodeOptions) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", dir, err)
	}
	return &Archive{db: db, opts: opts}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func projectKey(id ksuid.KSUID) []byte {
	return []byte(projectPrefix + id.String())
}

func kindPrefix(id ksuid.KSUID, k prj.Kind) []byte {
	return []byte(id.String() + "/" + k.String() + "/")
}

func recordKey(id ksuid.KSUID, k prj.Kind, nr int) []byte {
	return append(kindPrefix(id, k), fmt.Sprintf("%010d", nr)...)
}

// prefixEnd returns the smallest key greater than every key with prefix p.
func prefixEnd(p []byte) []byte {
	end := bytes.Clone(p)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

// NewProject registers a new project and returns its id.
func (a *Archive) NewProject() (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := a.db.Set(projectKey(id), nil, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

// HasProject reports whether id was created by NewProject.
func (a *Archive) HasProject(id ksuid.KSUID) (bool, error) {
	_, closer, err := a.db.Get(projectKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	closer.Close()
	return true, nil
}

// Projects returns every project id, sorted by id and so roughly by
// creation time.
func (a *Archive) Projects() ([]ksuid.KSUID, error) {
	prefix := []byte(projectPrefix)
	iter, err := a.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: prefixEnd(prefix)})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.Parse(strings.TrimPrefix(string(iter.Key()), projectPrefix))
		if err != nil {
			return nil, fmt.Errorf("corrupt project key %q: %w", iter.Key(), err)
		}
		ids = append(ids, id)
	}
	return ids, iter.Error()
}

func (a *Archive) requireProject(id ksuid.KSUID) error {
	ok, err := a.HasProject(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return nil
}

// Put stores rec under project id, replacing any record of the same kind and
// number. RunControl is stored as number 0.
func (a *Archive) Put(id ksuid.KSUID, rec prj.Record) error {
	if rec.Number() < 0 {
		return fmt.Errorf("%w: %s %d", ErrInvalidNumber, rec.Kind(), rec.Number())
	}
	if err := prj.Validate(rec); err != nil {
		return err
	}
	if err := a.requireProject(id); err != nil {
		return err
	}
	key := recordKey(id, rec.Kind(), rec.Number())
	if err := a.db.Set(key, []byte(rec.Write()), pebble.NoSync); err != nil {
		return fmt.Errorf("put %s %d: %w", rec.Kind(), rec.Number(), err)
	}
	return nil
}

// PutAll stores records in one batch.
func (a *Archive) PutAll(id ksuid.KSUID, records []prj.Record) error {
	if err := a.requireProject(id); err != nil {
		return err
	}
	batch := a.db.NewBatch()
	defer batch.Close()
	for _, rec := range records {
		if rec.Number() < 0 {
			return fmt.Errorf("%w: %s %d", ErrInvalidNumber, rec.Kind(), rec.Number())
		}
		if err := prj.Validate(rec); err != nil {
			return err
		}
		if err := batch.Set(recordKey(id, rec.Kind(), rec.Number()), []byte(rec.Write()), nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

// GetText returns the stored PRJ text of a record.
func (a *Archive) GetText(id ksuid.KSUID, k prj.Kind, nr int) (string, error) {
	data, closer, err := a.db.Get(recordKey(id, k, nr))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", fmt.Errorf("%w: %s %d", ErrNotFound, k, nr)
	}
	if err != nil {
		return "", err
	}
	defer closer.Close()

	return string(data), nil
}

// Get returns the decoded record.
func (a *Archive) Get(id ksuid.KSUID, k prj.Kind, nr int) (prj.Record, error) {
	text, err := a.GetText(id, k, nr)
	if err != nil {
		return nil, err
	}
	return prj.Decode(k, text, a.opts)
}

// List returns every record of kind k in the project ordered by number.
func (a *Archive) List(id ksuid.KSUID, k prj.Kind) ([]prj.Record, error) {
	prefix := kindPrefix(id, k)
	iter, err := a.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: prefixEnd(prefix)})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var records []prj.Record
	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := prj.Decode(k, string(iter.Value()), a.opts)
		if err != nil {
			nr, _ := strconv.Atoi(string(bytes.TrimPrefix(iter.Key(), prefix)))
			return records, fmt.Errorf("stored %s %d: %w", k, nr, err)
		}
		records = append(records, rec)
	}
	return records, iter.Error()
}

// Delete removes a record. Deleting a missing record returns ErrNotFound.
func (a *Archive) Delete(id ksuid.KSUID, k prj.Kind, nr int) error {
	key := recordKey(id, k, nr)
	_, closer, err := a.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, k, nr)
	}
	if err != nil {
		return err
	}
	closer.Close()

	return a.db.Delete(key, pebble.NoSync)
}
