package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coreid/internal/platform/config"
)

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"profiles"`, quoteIdent("profiles"))
	assert.Equal(t, `"bad""name"`, quoteIdent(`bad"name`))
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{})
	require.Error(t, err)
}

func TestRunInTxHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewTx(nil).RunInTx(ctx, func(context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
