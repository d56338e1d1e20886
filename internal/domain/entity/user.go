package entity

import "time"

// Role rol lógico derivado del role_id del backend. Son exactamente dos:
// el backend no envía el nombre del rol, solo el id numérico.
type Role string

const (
	RolePelayan Role = "Pelayan" // mesero: abre mesas y arma órdenes
	RoleKasir   Role = "Kasir"   // cajero: recibos y cierre de cuenta
)

// RoleFromID mapea role_id a rol lógico: 1 = Pelayan, cualquier otro = Kasir.
func RoleFromID(roleID int) Role {
	if roleID == 1 {
		return RolePelayan
	}
	return RoleKasir
}

// User usuario autenticado contra el backend. Inmutable una vez obtenido;
// role_id es la única señal de autorización del lado del cliente.
type User struct {
	ID        int
	RoleID    int
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role devuelve el rol lógico del usuario.
func (u User) Role() Role {
	return RoleFromID(u.RoleID)
}
