package pixelate

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/pixelate/palette"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	db *sql.DB
}

func NewDB(file string) (*DB, error) {
	// Scan workers write to the ledger concurrently
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS palette (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, colors BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL, settings TEXT NOT NULL, output TEXT NOT NULL, UNIQUE(crc, settings))"); err != nil {
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) PutPalette(name string, p palette.Palette) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var old string
	switch err := db.db.QueryRow("SELECT sha1 FROM palette WHERE name = ?", name).Scan(&old); err {
	case sql.ErrNoRows:
		if _, err := db.db.Exec("INSERT INTO palette (name, sha1, colors) VALUES (?, ?, ?)", name, sha, b); err != nil {
			return err
		}
		return nil
	case nil:
		if old == sha {
			return nil
		}
		if _, err := db.db.Exec("UPDATE palette SET sha1 = ?, colors = ? WHERE name = ?", sha, b, name); err != nil {
			return err
		}
		return nil
	default:
		return err
	}
}

func (db *DB) Palette(name string) (palette.Palette, error) {
	var colors []byte
	switch err := db.db.QueryRow("SELECT colors FROM palette WHERE name = ?", name).Scan(&colors); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		var p palette.Palette
		if err := p.UnmarshalBinary(colors); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, err
	}
}

func (db *DB) Palettes() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM palette ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (db *DB) ImportJSON(file string) (string, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	name, p, err := palette.FromJSON(b)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	if err := db.PutPalette(name, p); err != nil {
		return "", err
	}

	return name, nil
}

func (db *DB) addConversion(crc, settings, output string) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO conversion (crc, settings, output) VALUES (?, ?, ?)", crc, settings, output); err != nil {
		return err
	}
	return nil
}

func (db *DB) findConversion(crc, settings string) (string, error) {
	var output string
	switch err := db.db.QueryRow("SELECT output FROM conversion WHERE crc = ? AND settings = ?", crc, settings).Scan(&output); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return output, nil
	default:
		return "", err
	}
}
