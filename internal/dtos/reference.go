package dtos

import "github.com/localnerve/imoveis/internal/types"

// Reference is a write-side identity pointing at a row of Model
type Reference struct {
	Field string
	ID    *types.ID
	Model interface{}
}

// Referencer is implemented by inputs carrying references
type Referencer interface {
	References() []Reference
}
