package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/envelope-zero/savings-goals/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobKey is the key under which the goal collection is stored.
const BlobKey = "savings_goals"

// Blob is a string value stored under a unique key.
type Blob struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// BlobPersister stores all goals as one JSON array in a single Blob row.
type BlobPersister struct {
	DB *gorm.DB
}

// Load reads the goals. If no blob has been written yet, there are no goals.
func (p BlobPersister) Load() ([]models.Goal, error) {
	var blob Blob
	err := p.DB.Where(&Blob{Key: BlobKey}).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if blob.Value == "" {
		return nil, nil
	}

	var goals []models.Goal
	if err := json.Unmarshal([]byte(blob.Value), &goals); err != nil {
		return nil, fmt.Errorf("failed to parse blob %s: %w", BlobKey, err)
	}

	return goals, nil
}

// Save replaces the stored blob with the goals.
func (p BlobPersister) Save(goals []models.Goal) error {
	if goals == nil {
		goals = []models.Goal{}
	}

	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}

	return p.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&Blob{
		Key:   BlobKey,
		Value: string(data),
	}).Error
}

// Ping checks that the database is reachable.
func (p BlobPersister) Ping() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}
