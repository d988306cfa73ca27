package migrations_test

import (
	"testing"

	"github.com/SscSPs/finance_tracker/internal/platform/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_UpAndDownPairs(t *testing.T) {
	for _, dialect := range []string{"postgres", "sqlite"} {
		files, err := migrations.Files(dialect)
		require.NoError(t, err)
		assert.Len(t, files, 4, dialect)
		assert.Contains(t, files, dialect+"/000002_create_transactions.up.sql")
	}
}
