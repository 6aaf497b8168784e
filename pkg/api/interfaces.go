package api

import (
	"github.com/segmentio/ksuid"
	"github.com/ssargent/contamprj/pkg/prj"
	"github.com/ssargent/contamprj/pkg/storage"
)

// RecordArchive is the storage the API serves records from
type RecordArchive interface {
	NewProject() (ksuid.KSUID, error)
	Projects() ([]ksuid.KSUID, error)
	Put(id ksuid.KSUID, rec prj.Record) error
	GetText(id ksuid.KSUID, k prj.Kind, nr int) (string, error)
	List(id ksuid.KSUID, k prj.Kind) ([]prj.Record, error)
	Delete(id ksuid.KSUID, k prj.Kind, nr int) error
}

var _ RecordArchive = (*storage.Archive)(nil)
