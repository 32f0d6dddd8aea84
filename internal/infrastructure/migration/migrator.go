// Package migration wraps golang-migrate for schema management.
package migration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
)

// Migrator applies versioned SQL migrations from a directory.
type Migrator struct {
	db          *gorm.DB
	scriptsPath string
}

func NewMigrator(db *gorm.DB, scriptsPath string) *Migrator {
	return &Migrator{
		db:          db,
		scriptsPath: scriptsPath,
	}
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	inst, err := migrate.NewWithDatabaseInstance("file://"+m.scriptsPath, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}

	return inst, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	inst, err := m.instance()
	if err != nil {
		return err
	}

	if err := inst.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	inst, err := m.instance()
	if err != nil {
		return err
	}

	if err := inst.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}

	return nil
}

// Version reports the current schema version and dirty flag.
func (m *Migrator) Version() (uint, bool, error) {
	inst, err := m.instance()
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := inst.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}

	return version, dirty, nil
}

// Create writes a pair of empty up/down migration files named after the
// current timestamp.
func Create(scriptsPath, name string) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("migration name is required")
	}

	version := time.Now().UTC().Format("20060102150405")
	upPath := filepath.Join(scriptsPath, fmt.Sprintf("%s_%s.up.sql", version, name))
	downPath := filepath.Join(scriptsPath, fmt.Sprintf("%s_%s.down.sql", version, name))

	for _, p := range []string{upPath, downPath} {
		if err := os.WriteFile(p, []byte("-- write migration here\n"), 0o644); err != nil {
			return "", "", fmt.Errorf("failed to create migration file %s: %w", p, err)
		}
	}

	return upPath, downPath, nil
}
