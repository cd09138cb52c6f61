package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
)

// ApplyMigrations накатывает *.up.sql из dir в лексикографическом порядке
// и возвращает имена применённых файлов
func ApplyMigrations(tb testing.TB, db *sqlx.DB, dir string) ([]string, error) {
	tb.Helper()

	upFiles, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations in %s: %w", dir, err)
	}
	if len(upFiles) == 0 {
		return nil, fmt.Errorf("no up migrations in %s", dir)
	}
	sort.Strings(upFiles)

	applied := make([]string, 0, len(upFiles))
	for _, path := range upFiles {
		name := filepath.Base(path)
		content, err := os.ReadFile(path)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}

		if _, err := db.ExecContext(context.Background(), string(content)); err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", name, err)
		}
		applied = append(applied, name)
	}

	tb.Logf("asset schema migrated: %s", strings.Join(applied, ", "))
	return applied, nil
}
