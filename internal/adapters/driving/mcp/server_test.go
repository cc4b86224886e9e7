package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil catalog service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCatalogService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Catalog: &mockCatalogService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("catalog only is valid", func(t *testing.T) {
		ports := &Ports{Catalog: &mockCatalogService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{Catalog: &mockCatalogService{}, Exif: &mockExifService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("exif alone is not enough", func(t *testing.T) {
		ports := &Ports{Exif: &mockExifService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogService)
	})
}
