package dto

import "time"

// CreateDocumentRequest entrada para registrar un documento.
type CreateDocumentRequest struct {
	SousTraitantID string  `json:"sousTraitantId"`
	Type           string  `json:"type"`
	Nom            string  `json:"nom"`
	FichierURL     *string `json:"fichierUrl"`
	DateExpiration *string `json:"dateExpiration"`
	Statut         *string `json:"statut"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID             string    `json:"id"`
	EntrepriseID   string    `json:"entrepriseId"`
	SousTraitantID string    `json:"sousTraitantId"`
	Type           string    `json:"type"`
	Nom            string    `json:"nom"`
	FichierURL     *string   `json:"fichierUrl"`
	DateExpiration *string   `json:"dateExpiration"`
	Statut         string    `json:"statut"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DocumentTypeResponse entrada del catálogo de tipos.
type DocumentTypeResponse struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Obligatoire bool   `json:"obligatoire"`
}

// DocumentTypesResponse salida de GET /documents/types.
type DocumentTypesResponse struct {
	Types []DocumentTypeResponse `json:"types"`
}
