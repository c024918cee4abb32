//go:build tools

package docs

// Pins the swagger generator used by go:generate.
import _ "github.com/swaggo/swag/cmd/swag"
