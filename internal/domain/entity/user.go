package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RoleConducteur = "CONDUCTEUR" // conductor de obra
)

// Credenciales del usuario demo. La contraseña sólo existe en claro aquí para poder hashearla.
const (
	DemoUserEmail    = "admin@btpconnect.local"
	DemoUserPassword = "admin123"
	DemoUserName     = "Admin"
	DemoUserSurname  = "Demo"
)

// User representa un usuario del sistema (pertenece a una Enterprise).
type User struct {
	ID           string    `db:"id"`
	EnterpriseID string    `db:"enterprise_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"` // bcrypt, nunca la contraseña en claro
	Name         string    `db:"name"`
	Surname      string    `db:"surname"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
