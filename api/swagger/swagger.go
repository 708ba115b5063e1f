// Package swagger embeds the OpenAPI document describing the REST API.
package swagger

import _ "embed"

// Spec is the OpenAPI 2.0 document served at /swagger/doc.json.
//
//go:embed user.swagger.json
var Spec []byte
