package store

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func TestPrefixer(t *testing.T) {
	base := Prefixer("records")

	tests := []struct {
		in  []byte
		out string
	}{
		{
			base("data", "cafe"),
			"records/data/cafe",
		},
		{
			base(),
			"records",
		},
		{
			base(""),
			"records/",
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, string(tt.in))
	}
}

func TestWithTxCommits(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	require.NoError(t, WithTx(db, func(tx *leveldb.Transaction) error {
		return tx.Put([]byte("k"), []byte("v"), nil)
	}))

	val, err := db.Get([]byte("k"), nil)
	require.NoError(t, err)
	require.Equal(t, []byte("v"), val)
}

func TestWithTxDiscardsOnError(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	boom := errors.New("boom")
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		if err := tx.Put([]byte("k"), []byte("v"), nil); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = db.Get([]byte("k"), nil)
	require.ErrorIs(t, err, leveldb.ErrNotFound)
}
