// Package storage implementa la persistencia local de la aplicación: un
// almacén clave-valor sobre un archivo SQLite y un contenedor genérico que
// serializa colecciones completas como JSON bajo una clave fija.
package storage

// KV es el almacén clave-valor durable: claves string, valores string.
// El segundo retorno de Get indica si la clave existe.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
