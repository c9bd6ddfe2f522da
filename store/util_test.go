package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func setupLevelDB(t *testing.T) (*leveldb.DB, func()) {
	db, err := leveldb.OpenFile(t.TempDir(), nil)
	require.NoError(t, err)

	return db, func() {
		require.NoError(t, db.Close())
	}
}
