package localstore

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Options selects and configures a Storage driver.
type Options struct {
	Driver string
	// Path is a directory for the file driver and a database file for sqlite.
	Path string
}

// Open returns the Storage selected by opt.Driver.
func Open(opt Options) (Storage, error) {
	switch opt.Driver {
	case "", DriverFile:
		return NewFileStorage(afero.NewOsFs(), opt.Path)
	case DriverSQLite:
		return NewSQLiteStorage(opt.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opt.Driver)
	}
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
