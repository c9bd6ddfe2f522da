package store

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/BitcoinHQ/ethereum/crypto"
	"github.com/BitcoinHQ/ethereum/rlp"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// ErrRecordNotFound is returned when no record exists under the
// requested digest.
var ErrRecordNotFound = errors.New("record not found")

// RecordInfo describes an archived record. Records are opaque encoded
// values keyed by the Blake2B-256 digest of their raw bytes; the
// archive decodes only the outermost header for bookkeeping and
// enforces nothing about their meaning.
type RecordInfo struct {
	Digest     crypto.Hash `json:"digest"`
	Size       int         `json:"size"`
	Kind       string      `json:"kind"`
	ItemCount  int         `json:"item_count"`
	StringSize int         `json:"string_size"`
	ReceivedAt time.Time   `json:"received_at"`
}

var (
	recordsPrefix    = Prefixer("records")
	recordCountKey   = Prefixer(string(recordsPrefix("count")))()
	recordDataPrefix = Prefixer(string(recordsPrefix("data")))
	recordInfoPrefix = Prefixer(string(recordsPrefix("info")))
)

// PutRecordTx archives an encoded value and returns its digest. The
// value must pass rlp.Validate; the archive never stores bytes it
// cannot decode. Storing the same bytes twice is a no-op yielding the
// same digest.
func PutRecordTx(tx *leveldb.Transaction, encoded []byte) (crypto.Hash, error) {
	node := rlp.NewNode(encoded)
	if err := node.Validate(); err != nil {
		return crypto.ZeroHash, errors.Wrap(err, "error validating record")
	}
	digest := crypto.Blake2B256(encoded)
	exists, err := tx.Has(recordDataPrefix(digest.String()), nil)
	if err != nil {
		return crypto.ZeroHash, errors.Wrap(err, "error checking record existence")
	}
	if exists {
		return digest, nil
	}
	info := &RecordInfo{
		Digest:     digest,
		Size:       len(encoded),
		Kind:       node.Kind().String(),
		ItemCount:  node.ItemCount(),
		StringSize: node.StringSize(),
		ReceivedAt: time.Now(),
	}
	if err := tx.Put(recordDataPrefix(digest.String()), encoded, nil); err != nil {
		return crypto.ZeroHash, errors.Wrap(err, "error writing record data")
	}
	if err := tx.Put(recordInfoPrefix(digest.String()), mustMarshalJSON(info), nil); err != nil {
		return crypto.ZeroHash, errors.Wrap(err, "error writing record info")
	}
	if err := IncrementRecordCount(tx); err != nil {
		return crypto.ZeroHash, err
	}
	logger.Debug("stored record", "digest", digest.String(), "size", info.Size, "kind", info.Kind)
	return digest, nil
}

func GetRecord(db *leveldb.DB, digest crypto.Hash) ([]byte, error) {
	data, err := db.Get(recordDataPrefix(digest.String()), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "error getting record data")
	}
	return data, nil
}

func GetRecordInfo(db *leveldb.DB, digest crypto.Hash) (*RecordInfo, error) {
	data, err := db.Get(recordInfoPrefix(digest.String()), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "error getting record info")
	}
	info := new(RecordInfo)
	mustUnmarshalJSON(data, info)
	return info, nil
}

func HasRecord(db *leveldb.DB, digest crypto.Hash) (bool, error) {
	exists, err := db.Has(recordDataPrefix(digest.String()), nil)
	if err != nil {
		return false, errors.Wrap(err, "error checking record existence")
	}
	return exists, nil
}

func GetRecordCount(db *leveldb.DB) (int, error) {
	res, err := db.Get(recordCountKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "error getting record count")
	}
	return mustDecodeInt(res), nil
}

var rCountMu sync.Mutex

func IncrementRecordCount(tx *leveldb.Transaction) error {
	rCountMu.Lock()
	defer rCountMu.Unlock()
	count, err := tx.Get(recordCountKey, nil)
	if err != nil && !errors.Is(err, leveldb.ErrNotFound) {
		return errors.Wrap(err, "error getting record count")
	}
	if err := tx.Put(recordCountKey, mustEncodeInt(mustDecodeInt(count)+1), nil); err != nil {
		return errors.Wrap(err, "error putting record count")
	}
	return nil
}

type RecordInfoStream struct {
	iter iterator.Iterator
}

func (ris *RecordInfoStream) Next() (*RecordInfo, error) {
	if !ris.iter.Next() {
		return nil, nil
	}
	info := new(RecordInfo)
	mustUnmarshalJSON(ris.iter.Value(), info)
	return info, nil
}

func (ris *RecordInfoStream) Close() error {
	ris.iter.Release()
	return ris.iter.Error()
}

// StreamRecordInfos iterates record metadata in digest order. A
// non-zero start digest resumes the stream just after it.
func StreamRecordInfos(db *leveldb.DB, start crypto.Hash) (*RecordInfoStream, error) {
	if start == crypto.ZeroHash {
		return &RecordInfoStream{
			iter: db.NewIterator(util.BytesPrefix(recordInfoPrefix()), nil),
		}, nil
	}

	iterRange := &util.Range{
		Start: recordInfoPrefix(start.String()),
		Limit: recordInfoPrefix(string([]byte{0xff})),
	}
	last := iterRange.Start[len(iterRange.Start)-1]
	iterRange.Start[len(iterRange.Start)-1] = last + 1
	return &RecordInfoStream{
		iter: db.NewIterator(iterRange, nil),
	}, nil
}

func TruncateRecordStore(db *leveldb.DB) error {
	var deleted int
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		iter := tx.NewIterator(util.BytesPrefix(recordsPrefix()), nil)
		for iter.Next() {
			if err := tx.Delete(iter.Key(), nil); err != nil {
				iter.Release()
				return errors.Wrap(err, "error deleting record store key")
			}
			deleted++
		}
		iter.Release()
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "error truncating record store")
	}
	logger.Info("truncated record store", "keys_deleted", deleted)
	return nil
}

func mustEncodeInt(in int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(in))
	return buf
}

func mustDecodeInt(in []byte) int {
	if len(in) == 0 {
		return 0
	}
	out := binary.BigEndian.Uint64(in)
	if out > math.MaxInt32 {
		panic("overflow")
	}
	return int(out)
}

func mustMarshalJSON(in interface{}) []byte {
	out, err := json.Marshal(in)
	if err != nil {
		panic(err)
	}
	return out
}

func mustUnmarshalJSON(data []byte, in interface{}) {
	if err := json.Unmarshal(data, in); err != nil {
		panic(err)
	}
}
