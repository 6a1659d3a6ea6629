package entity

import "time"

// User cliente o empleado dueño de pedidos. La emisión de credenciales vive en
// un servicio externo; aquí solo se valida la referencia.
type User struct {
	ID           string
	FullName     string
	Email        string
	IsActive     bool
	CreationDate time.Time
}
