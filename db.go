package sbrx

import (
	"bytes"
	"database/sql"
	"fmt"
	"image"
	"image/png"
	"io"

	_ "github.com/mattn/go-sqlite3" // register driver
	"github.com/zeebo/blake3"
)

// DB is a workspace database of images staged for writing to the ROM
type DB struct {
	db *sql.DB
}

// NewDB opens, creating if necessary, the workspace database in file
func NewDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, hash TEXT NOT NULL UNIQUE, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sheet (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, image_id INTEGER NOT NULL, FOREIGN KEY(image_id) REFERENCES image(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) addImage(m image.Image) (int64, error) {
	h := blake3.New()
	b := new(bytes.Buffer)
	if err := png.Encode(io.MultiWriter(h, b), m); err != nil {
		return 0, err
	}
	hash := fmt.Sprintf("%X", h.Sum(nil))

	var id int64
	switch err := db.db.QueryRow("SELECT id FROM image WHERE hash = ?", hash).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO image (hash, data) VALUES (?, ?)", hash, b.Bytes())
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// AddImage stages m as the spritesheet image for the named character,
// replacing any image already staged. Identical images are only stored once.
func (db *DB) AddImage(name string, m image.Image) error {
	id, err := db.addImage(m)
	if err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO sheet (name, image_id) VALUES (?, ?)", name, id); err != nil {
		return err
	}

	return nil
}

// FindImage returns the image staged for the named character, or nil if
// there isn't one
func (db *DB) FindImage(name string) (image.Image, error) {
	var data []byte
	switch err := db.db.QueryRow("SELECT i.data FROM sheet AS s JOIN image AS i ON s.image_id = i.id WHERE s.name = ?", name).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return png.Decode(bytes.NewReader(data))
	default:
		return nil, err
	}
}

// Names returns the names of every character with a staged image
func (db *DB) Names() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM sheet ORDER BY name")
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

// Remove unstages the image for the named character. Images no longer
// referenced are deleted.
func (db *DB) Remove(name string) error {
	if _, err := db.db.Exec("DELETE FROM sheet WHERE name = ?", name); err != nil {
		return err
	}

	if _, err := db.db.Exec("DELETE FROM image WHERE id NOT IN (SELECT image_id FROM sheet)"); err != nil {
		return err
	}

	return nil
}
