package store

import (
	"sort"
	"testing"

	"github.com/BitcoinHQ/ethereum/crypto"
	"github.com/BitcoinHQ/ethereum/rlp"

	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func putTestRecord(t *testing.T, db *leveldb.DB, encoded []byte) crypto.Hash {
	t.Helper()
	var digest crypto.Hash
	require.NoError(t, WithTx(db, func(tx *leveldb.Transaction) error {
		var err error
		digest, err = PutRecordTx(tx, encoded)
		return err
	}))
	return digest
}

func TestPutGetRecord(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	encoded, err := rlp.EncodeList(uint64(1), "dog")
	require.NoError(t, err)
	digest := putTestRecord(t, db, encoded)
	require.Equal(t, crypto.Blake2B256(encoded), digest)

	data, err := GetRecord(db, digest)
	require.NoError(t, err)
	require.Equal(t, encoded, data)

	exists, err := HasRecord(db, digest)
	require.NoError(t, err)
	require.True(t, exists)

	count, err := GetRecordCount(db)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	info, err := GetRecordInfo(db, digest)
	require.NoError(t, err)
	require.Equal(t, digest, info.Digest)
	require.Equal(t, len(encoded), info.Size)
	require.Equal(t, "List", info.Kind)
	require.Equal(t, 2, info.ItemCount)
	require.False(t, info.ReceivedAt.IsZero())
}

func TestPutRecordRejectsMalformed(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	err := WithTx(db, func(tx *leveldb.Transaction) error {
		_, err := PutRecordTx(tx, []byte{0x82, 0x01})
		return err
	})
	require.ErrorIs(t, err, rlp.ErrTruncated)

	err = WithTx(db, func(tx *leveldb.Transaction) error {
		_, err := PutRecordTx(tx, []byte{0x00, 0xaa})
		return err
	})
	require.ErrorIs(t, err, rlp.ErrTrailingBytes)

	count, err := GetRecordCount(db)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestPutRecordIdempotent(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	encoded := []byte{0x43, 'd', 'o', 'g'}
	first := putTestRecord(t, db, encoded)
	second := putTestRecord(t, db, encoded)
	require.Equal(t, first, second)

	count, err := GetRecordCount(db)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestGetRecordNotFound(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	missing := crypto.Blake2B256([]byte("nope"))
	_, err := GetRecord(db, missing)
	require.ErrorIs(t, err, ErrRecordNotFound)
	_, err = GetRecordInfo(db, missing)
	require.ErrorIs(t, err, ErrRecordNotFound)

	exists, err := HasRecord(db, missing)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestStreamRecordInfos(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	var digests []string
	for i := 0; i < 5; i++ {
		enc := rlp.NewStream().AppendUint64(uint64(i + 1000)).Out()
		digests = append(digests, putTestRecord(t, db, enc).String())
	}
	sort.Strings(digests)

	stream, err := StreamRecordInfos(db, crypto.ZeroHash)
	require.NoError(t, err)
	var got []string
	for {
		info, err := stream.Next()
		require.NoError(t, err)
		if info == nil {
			break
		}
		got = append(got, info.Digest.String())
	}
	require.NoError(t, stream.Close())
	require.Equal(t, digests, got)

	// Resuming from the second digest yields everything after it.
	start, err := crypto.NewHashFromHex(digests[1])
	require.NoError(t, err)
	stream, err = StreamRecordInfos(db, start)
	require.NoError(t, err)
	got = nil
	for {
		info, err := stream.Next()
		require.NoError(t, err)
		if info == nil {
			break
		}
		got = append(got, info.Digest.String())
	}
	require.NoError(t, stream.Close())
	require.Equal(t, digests[2:], got)
}

func TestTruncateRecordStore(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	digest := putTestRecord(t, db, []byte{0x05})
	require.NoError(t, TruncateRecordStore(db))

	exists, err := HasRecord(db, digest)
	require.NoError(t, err)
	require.False(t, exists)

	count, err := GetRecordCount(db)
	require.NoError(t, err)
	require.Zero(t, count)
}
