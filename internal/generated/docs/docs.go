// Package docs exposes the API document to Swagger UI through swag.
package docs

import (
	"encoding/json"
	"fmt"
	"sync"

	"mozdelivery/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Moz Delivery",
	Description:      "Order ledger, dispatch workflow and role views of the Moz Delivery platform.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register renders the embedded OpenAPI document as JSON and registers it with swag so
// that echo-swagger can serve it. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		doc, err := servers.GetSwagger()
		if err != nil {
			registerErr = fmt.Errorf("failed to load openapi document: %w", err)
			return
		}

		data, err := json.Marshal(doc)
		if err != nil {
			registerErr = fmt.Errorf("failed to render openapi document: %w", err)
			return
		}

		SwaggerInfo.SwaggerTemplate = string(data)
		swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	})
	return registerErr
}
