package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

var _ KV = (*SQLiteStore)(nil)

// Entry es una fila del almacén clave-valor.
type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;not null"`
}

// TableName fija el nombre de la tabla.
func (Entry) TableName() string { return "kv_entries" }

// SQLiteStore implementación de KV sobre un único archivo SQLite local.
// Cumple el mismo papel que el localStorage del navegador: almacenamiento
// durable, síncrono, de strings bajo claves string.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite abre (o crea) el archivo de datos y migra el esquema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir almacén sqlite: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrar esquema kv: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get devuelve el valor bajo key. Una clave ausente no es un error.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var e Entry
	err := s.db.First(&e, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("leer clave %q: %w", key, err)
	}
	return e.Value, true, nil
}

// Set guarda value bajo key, sobrescribiendo cualquier valor anterior.
func (s *SQLiteStore) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	return nil
}
