// Package apidoc embeds the OpenAPI document of the webhook. The same
// document drives request validation and the Swagger UI.
package apidoc

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var document []byte

var registerOnce sync.Once

type doc struct{}

// ReadDoc implements swag.Swagger.
func (doc) ReadDoc() string {
	return string(document)
}

// Raw returns the embedded document.
func Raw() []byte {
	return document
}

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	api, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = api.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return api, nil
}

// Register publishes the document in the swag registry under swag.Name,
// where echo-swagger looks it up. Repeated calls are no-ops.
func Register() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, doc{})
	})
}
