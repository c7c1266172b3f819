package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/cafes-service/cmd/api/cafe"
	"github.com/hashicorp/go-memdb"
)

const cafeTable = "cafe"

type InMemoryStore struct {
	db     *memdb.MemDB
	lastID atomic.Int64
}

func NewInMemoryStore() (*InMemoryStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			cafeTable: {
				Name: cafeTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					// memdb does not reject duplicates on secondary indexes,
					// writes check this index before inserting.
					"name": {
						Name:    "name",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
		},
	}

	err := schema.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating in-memory schema: %w", err)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db}, nil
}

func (store *InMemoryStore) Close() error {
	return nil
}

func (store *InMemoryStore) ListCafes(ctx context.Context) ([]cafe.Cafe, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(cafeTable, "id")
	if err != nil {
		return nil, fmt.Errorf("listing cafes from db: %w", err)
	}

	cafes := []cafe.Cafe{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		cafes = append(cafes, *obj.(*cafe.Cafe))
	}

	// The int index is varint encoded, so its iteration order is not numeric.
	sort.Slice(cafes, func(i, j int) bool {
		return cafes[i].ID < cafes[j].ID
	})
	return cafes, nil
}

func (store *InMemoryStore) GetCafeByID(ctx context.Context, id int64) (cafe.Cafe, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(cafeTable, "id", id)
	if err != nil {
		return cafe.Cafe{}, fmt.Errorf("searching by ID: %w", err)
	}
	if raw == nil {
		return cafe.Cafe{}, fmt.Errorf("searching by ID: %w", cafe.ErrResponseCafeNotFound)
	}

	return *raw.(*cafe.Cafe), nil
}

func (store *InMemoryStore) CreateCafe(ctx context.Context, entry cafe.Cafe) (cafe.Cafe, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	err := nameTaken(txn, entry.Name, 0)
	if err != nil {
		return cafe.Cafe{}, fmt.Errorf("storing cafe on db: %w", err)
	}

	entry.ID = store.lastID.Add(1)
	err = txn.Insert(cafeTable, &entry)
	if err != nil {
		return cafe.Cafe{}, fmt.Errorf("storing cafe on db: %w", err)
	}

	txn.Commit()
	return entry, nil
}

func (store *InMemoryStore) UpdateCafe(ctx context.Context, entry cafe.Cafe) (cafe.Cafe, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(cafeTable, "id", entry.ID)
	if err != nil {
		return cafe.Cafe{}, fmt.Errorf("updating on db: %w", err)
	}
	if raw == nil {
		return cafe.Cafe{}, fmt.Errorf("updating on db: %w", cafe.ErrResponseCafeNotFound)
	}

	err = nameTaken(txn, entry.Name, entry.ID)
	if err != nil {
		return cafe.Cafe{}, fmt.Errorf("updating on db: %w", err)
	}

	// Insert replaces the object found under the same id.
	err = txn.Insert(cafeTable, &entry)
	if err != nil {
		return cafe.Cafe{}, fmt.Errorf("updating on db: %w", err)
	}

	txn.Commit()
	return entry, nil
}

func (store *InMemoryStore) DeleteCafe(ctx context.Context, id int64) error {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(cafeTable, "id", id)
	if err != nil {
		return fmt.Errorf("deleting cafe from db: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("deleting cafe from db: %w", cafe.ErrResponseCafeNotFound)
	}

	err = txn.Delete(cafeTable, raw)
	if err != nil {
		return fmt.Errorf("deleting cafe from db: %w", err)
	}

	txn.Commit()
	return nil
}

/* Fails with a name conflict when a cafe other than ownerID already uses name. */
func nameTaken(txn *memdb.Txn, name string, ownerID int64) error {
	raw, err := txn.First(cafeTable, "name", name)
	if err != nil {
		return err
	}
	if raw != nil && raw.(*cafe.Cafe).ID != ownerID {
		return cafe.ErrResponseCafeNameConflict
	}
	return nil
}
