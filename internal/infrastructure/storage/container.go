package storage

import (
	"encoding/json"

	"github.com/jhoicas/facturia/pkg/logger"
)

// Container adapta el KV a un único valor tipado bajo una clave fija, con
// serialización JSON explícita. Ningún fallo de almacenamiento cruza esta
// frontera: Read degrada al valor inicial y Write deja el estado en memoria
// como autoridad; en ambos casos el fallo solo se registra en el log.
type Container[T any] struct {
	kv  KV
	key string
	log *logger.Logger
}

// NewContainer crea el contenedor para una clave.
func NewContainer[T any](kv KV, key string, log *logger.Logger) *Container[T] {
	return &Container[T]{kv: kv, key: key, log: log}
}

// Read carga y deserializa el valor almacenado. Si la clave no existe, el
// almacén falla o el JSON está corrupto, devuelve initial.
func (c *Container[T]) Read(initial T) T {
	raw, ok, err := c.kv.Get(c.key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("lectura del almacén fallida, usando valor inicial")
		return initial
	}
	if !ok {
		return initial
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("valor almacenado corrupto, usando valor inicial")
		return initial
	}
	return v
}

// Write serializa v y lo persiste, reemplazando el valor completo bajo la
// clave. Un fallo se registra y el valor anterior queda sin actualizar.
func (c *Container[T]) Write(v T) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Error().Err(err).Str("key", c.key).Msg("serialización fallida, valor no persistido")
		return
	}
	if err := c.kv.Set(c.key, string(data)); err != nil {
		c.log.Error().Err(err).Str("key", c.key).Msg("escritura del almacén fallida, valor no persistido")
	}
}
