package entity

import "time"

// Estados de un documento de cumplimiento.
const (
	DocumentStatusValid   = "valide"
	DocumentStatusExpired = "expire"
)

// DocumentType es una entrada del catálogo estático de documentos.
type DocumentType struct {
	Code      string
	Label     string
	Mandatory bool
}

// DocumentTypes catálogo de documentos exigibles a un sous-traitant.
var DocumentTypes = []DocumentType{
	{Code: "attestation_urssaf", Label: "Attestation URSSAF", Mandatory: true},
	{Code: "kbis", Label: "Extrait Kbis", Mandatory: true},
	{Code: "assurance_rc", Label: "Assurance RC Pro", Mandatory: true},
	{Code: "assurance_decennale", Label: "Assurance Décennale", Mandatory: true},
	{Code: "carte_pro", Label: "Carte Professionnelle BTP", Mandatory: false},
	{Code: "devis", Label: "Devis", Mandatory: false},
	{Code: "facture", Label: "Facture", Mandatory: false},
	{Code: "plan", Label: "Plan", Mandatory: false},
	{Code: "photo", Label: "Photo", Mandatory: false},
	{Code: "autre", Label: "Autre", Mandatory: false},
}

// IsDocumentType informa si code pertenece al catálogo.
func IsDocumentType(code string) bool {
	for _, t := range DocumentTypes {
		if t.Code == code {
			return true
		}
	}
	return false
}

// Document es un documento de cumplimiento de un sous-traitant (URSSAF, Kbis, seguros...).
type Document struct {
	ID              string    `db:"id"`
	EnterpriseID    string    `db:"enterprise_id"`
	SubcontractorID string    `db:"subcontractor_id"`
	Type            string    `db:"type"`
	Name            string    `db:"name"`
	FileURL         *string   `db:"file_url"`
	ExpiresOn       *string   `db:"expires_on"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

var expiryLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseExpiry interpreta la fecha de expiración; ok=false si no tiene un formato conocido.
func ParseExpiry(s string) (time.Time, bool) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsExpired informa si la fecha de expiración ya pasó en now.
func (d *Document) IsExpired(now time.Time) bool {
	if d.ExpiresOn == nil {
		return false
	}
	t, ok := ParseExpiry(*d.ExpiresOn)
	return ok && t.Before(now)
}
