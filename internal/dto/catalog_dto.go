package dto

import "github.com/google/uuid"

// CreateCatalogItemRequest covers symptom and medication creation alike.
type CreateCatalogItemRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsCustom    bool       `json:"is_custom"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
}

// UpdateCatalogItemRequest carries optional fields; nil means "keep".
type UpdateCatalogItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsCustom    *bool   `json:"is_custom,omitempty"`
}
