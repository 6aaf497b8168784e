package di

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ssargent/contamprj/pkg/api"
	"github.com/ssargent/contamprj/pkg/prj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_OpensArchive(t *testing.T) {
	c := NewContainer()

	archive, err := c.GetArchiveOpener()(t.TempDir(), prj.DecodeOptions{})
	require.NoError(t, err)
	defer archive.Close()

	id, err := archive.NewProject()
	require.NoError(t, err)
	require.NoError(t, archive.PutAll(id, []prj.Record{&prj.Ahs{Nr: 1, Name: "a"}}))

	records, err := archive.List(id, prj.KindAhs)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestContainer_SetServerStarter(t *testing.T) {
	c := NewContainer()
	assert.NotNil(t, c.GetServerStarter())

	var got api.ServerConfig
	c.SetServerStarter(func(ctx context.Context, archive api.RecordArchive, config api.ServerConfig, logger *slog.Logger) error {
		got = config
		return nil
	})

	err := c.GetServerStarter()(context.Background(), nil, api.ServerConfig{Addr: ":1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ":1", got.Addr)
}
