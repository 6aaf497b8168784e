// Package di provides dependency injection container
package di

import (
	"context"
	"log/slog"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/contamprj/pkg/api" //nolint:depguard
	"github.com/ssargent/contamprj/pkg/prj"
	"github.com/ssargent/contamprj/pkg/storage"
)

// Archive is the storage used by the commands
type Archive interface {
	api.RecordArchive
	PutAll(id ksuid.KSUID, records []prj.Record) error
	Close() error
}

// ArchiveOpener opens the archive in a data directory
type ArchiveOpener func(dir string, opts prj.DecodeOptions) (Archive, error)

// ServerStarter runs the REST API until ctx is cancelled
type ServerStarter func(ctx context.Context, archive api.RecordArchive, config api.ServerConfig, logger *slog.Logger) error

// Container holds all the dependencies for the application
type Container struct {
	archiveOpener ArchiveOpener
	serverStarter ServerStarter
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		archiveOpener: func(dir string, opts prj.DecodeOptions) (Archive, error) {
			a, err := storage.Open(dir, opts)
			if err != nil {
				return nil, err
			}
			return a, nil
		},
		serverStarter: api.StartServer,
	}
}

// GetArchiveOpener returns the archive opener
func (c *Container) GetArchiveOpener() ArchiveOpener {
	return c.archiveOpener
}

// SetArchiveOpener allows overriding the archive opener (for testing)
func (c *Container) SetArchiveOpener(opener ArchiveOpener) {
	c.archiveOpener = opener
}

// GetServerStarter returns the server starter
func (c *Container) GetServerStarter() ServerStarter {
	return c.serverStarter
}

// SetServerStarter allows overriding the server starter (for testing)
func (c *Container) SetServerStarter(starter ServerStarter) {
	c.serverStarter = starter
}
