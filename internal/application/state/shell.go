// Package state contiene la raíz de estado de la aplicación: las dos
// colecciones persistidas (clientes y documentos) y la vista activa. El
// Shell se construye una sola vez en el punto de composición y se inyecta
// en los casos de uso; no hay estado global.
package state

import (
	"sync"

	"github.com/jhoicas/facturia/internal/domain/entity"
	"github.com/jhoicas/facturia/internal/infrastructure/storage"
	"github.com/jhoicas/facturia/pkg/logger"
)

// View identifica la vista activa de la aplicación.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewCustomers View = "customers"
	ViewCreator   View = "creator"
)

// Claves bajo las que se persisten las colecciones.
const (
	keyCustomers = "customers"
	keyDocuments = "documents"
)

// Shell es el propietario único del estado mutable compartido. Toda mutación
// pasa por sus métodos y se persiste write-through antes de la siguiente
// lectura. El mutex existe porque la finalización de una generación con IA
// llega de forma asíncrona respecto a las acciones del usuario.
type Shell struct {
	mu        sync.Mutex
	customers []entity.Customer
	documents []entity.Document
	active    View

	customersBox *storage.Container[[]entity.Customer]
	documentsBox *storage.Container[[]entity.Document]
	log          *logger.Logger
}

// NewShell carga ambas colecciones del almacén (o las inicializa vacías si
// faltan o están corruptas) y arranca en el dashboard.
func NewShell(kv storage.KV, log *logger.Logger) *Shell {
	s := &Shell{
		active:       ViewDashboard,
		customersBox: storage.NewContainer[[]entity.Customer](kv, keyCustomers, log),
		documentsBox: storage.NewContainer[[]entity.Document](kv, keyDocuments, log),
		log:          log,
	}
	s.customers = s.customersBox.Read([]entity.Customer{})
	s.documents = s.documentsBox.Read([]entity.Document{})
	log.Info().
		Int("customers", len(s.customers)).
		Int("documents", len(s.documents)).
		Msg("estado cargado del almacén")
	return s
}

// Customers devuelve una copia de la colección de clientes en orden de inserción.
func (s *Shell) Customers() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Documents devuelve una copia de la colección de documentos en orden de inserción.
func (s *Shell) Documents() []entity.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// CustomerByID busca un cliente por ID.
func (s *Shell) CustomerByID(id string) (entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// CustomerReferenced indica si algún documento referencia al cliente.
func (s *Shell) CustomerReferenced(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.documents {
		if d.CustomerID == id {
			return true
		}
	}
	return false
}

// AppendCustomer agrega un cliente y persiste la colección completa.
func (s *Shell) AppendCustomer(c entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
	s.customersBox.Write(s.customers)
}

// RemoveCustomer elimina un cliente por ID y persiste. Devuelve false si no existe.
func (s *Shell) RemoveCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.customers {
		if c.ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			s.customersBox.Write(s.customers)
			return true
		}
	}
	return false
}

// AppendDocument agrega un documento y persiste la colección completa.
func (s *Shell) AppendDocument(d entity.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, d)
	s.documentsBox.Write(s.documents)
}

// ActiveView devuelve la vista activa.
func (s *Shell) ActiveView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Navigate cambia la vista activa.
func (s *Shell) Navigate(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = v
}
