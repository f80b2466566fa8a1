package db

import (
	"fmt"

	"redbook/internal/content"
	"redbook/internal/identity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens Postgres with error translation on, so unique-index
// violations come back as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&identity.User{},
		&content.Note{},
		&content.Comment{},
	); err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_comments_note_id on comments(note_id, id);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
