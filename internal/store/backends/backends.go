// Package backends opens a store.Backend by name.
package backends

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/store/memstore"
	"github.com/idilsaglam/tada/internal/store/sqlitestore"
)

// Backend names accepted by Open.
const (
	JSON   = "json"
	SQLite = "sqlite"
	Memory = "memory"
)

// Names lists the supported backends.
var Names = []string{JSON, SQLite, Memory}

// Open returns the backend called name, keeping its files under dir.
func Open(name, dir string) (store.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case JSON, "":
		s, err := jsonstore.Open(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case SQLite:
		s, err := sqlitestore.Open(filepath.Join(dir, sqlitestore.FileName))
		if err != nil {
			return nil, err
		}
		return s, nil
	case Memory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q: must be one of %s", name, strings.Join(Names, ", "))
	}
}
