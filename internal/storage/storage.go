// Package storage implements the persistence gateway as a flat key-value
// blob store on sqlite. The two collections are serialized wholesale and
// written under one key each, the direct analog of the original browser
// storage this backend replaces.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ascent-finance/backend/internal/models"
	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	keyTransactions = "transactions"
	keyBudgets      = "budgets"
)

// saveRetries bounds the exponential backoff around a snapshot save.
const saveRetries = 4

// Blob is one row of the key-value store.
type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (Blob) TableName() string {
	return "kv_blobs"
}

// KV is a key-value blob gateway backed by a sqlite database.
type KV struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and migrates the blob
// table.
func Open(path string) (*KV, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Blob{})
	if err != nil {
		return nil, err
	}

	return &KV{db: db}, nil
}

// Load reads both collections. Missing keys yield empty collections, as
// does a blob that can no longer be unmarshaled: corrupt data fails closed
// to an empty store instead of taking the backend down.
func (kv *KV) Load() ([]models.Transaction, []models.Budget, error) {
	transactions, err := loadBlob[models.Transaction](kv, keyTransactions)
	if err != nil {
		return nil, nil, err
	}

	budgets, err := loadBlob[models.Budget](kv, keyBudgets)
	if err != nil {
		return nil, nil, err
	}

	return transactions, budgets, nil
}

// loadBlob reads and decodes one collection. Decoding is all or nothing:
// a blob that cannot be unmarshaled completely yields an empty collection,
// never records that would not have passed validation on admission.
func loadBlob[T any](kv *KV, key string) ([]T, error) {
	records := make([]T, 0)

	var blob Blob
	err := kv.db.First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %q failed: %w", key, err)
	}

	if err := json.Unmarshal(blob.Value, &records); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("stored blob is not readable, starting empty")
		return make([]T, 0), nil
	}

	return records, nil
}

// Save writes a full snapshot of both collections in one database
// transaction. Transient failures are retried with exponential backoff
// before the error is reported.
func (kv *KV) Save(transactions []models.Transaction, budgets []models.Budget) error {
	transactionBlob, err := json.Marshal(transactions)
	if err != nil {
		return err
	}

	budgetBlob, err := json.Marshal(budgets)
	if err != nil {
		return err
	}

	save := func() error {
		return kv.db.Transaction(func(tx *gorm.DB) error {
			for _, blob := range []Blob{
				{Key: keyTransactions, Value: transactionBlob},
				{Key: keyBudgets, Value: budgetBlob},
			} {
				err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "key"}},
					UpdateAll: true,
				}).Create(&blob).Error
				if err != nil {
					return err
				}
			}

			return nil
		})
	}

	return backoff.Retry(save, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), saveRetries))
}

// Ping reports whether the database is reachable.
func (kv *KV) Ping() error {
	sqlDB, err := kv.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Close closes the database connection.
func (kv *KV) Close() error {
	sqlDB, err := kv.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
