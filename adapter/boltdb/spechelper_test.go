package boltdb_test

import (
	"os"
	"path/filepath"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/boltdb/bolt"
	"github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

type SampleEntity struct {
	Name string
}

func NewEntityForTest() SampleEntity {
	return SampleEntity{Name: randomdata.SillyName()}
}

func NewEntitiesForTest(n int) []SampleEntity {
	vs := make([]SampleEntity, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, NewEntityForTest())
	}
	return vs
}

func NewDBForTest(tb testing.TB) *bolt.DB {
	dbPath := filepath.Join(os.TempDir(), uuid.NewV4().String())
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() {
		require.Nil(tb, db.Close())
		require.Nil(tb, os.Remove(dbPath))
	})
	return db
}

// NewBucketForTest opens a writable transaction that lives until the end of the test
// and returns a fresh bucket within it. The transaction is rolled back on cleanup.
func NewBucketForTest(tb testing.TB) *bolt.Bucket {
	db := NewDBForTest(tb)
	tx, err := db.Begin(true)
	if err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() { require.Nil(tb, tx.Rollback()) })
	bucket, err := tx.CreateBucketIfNotExists([]byte(`entities`))
	if err != nil {
		tb.Fatal(err)
	}
	return bucket
}
