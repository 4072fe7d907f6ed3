package entity

import "time"

// Datos fijos de la empresa demo (creada perezosamente en el primer acceso sin token).
const (
	DemoEnterpriseName  = "BTP Excellence SAS"
	DemoEnterpriseSiret = "12345678900012"
	DemoEnterprisePlan  = PlanPro
	PlanPro             = "pro"
)

// Enterprise representa el tenant: una empresa constructora con sus datos aislados.
// Inmutable después de creada.
type Enterprise struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	RegistrationNumber string    `db:"registration_number"` // SIRET
	Plan               string    `db:"plan"`
	IsDefault          bool      `db:"is_default"` // marca única de la empresa demo
	CreatedAt          time.Time `db:"created_at"`
}
