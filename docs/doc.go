// Package docs provides generated OpenAPI documentation.
//
// Folio API
//
//	@title			Folio API
//	@version		1.0
//	@description	PDF table-of-contents generation and watermarking API.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/versbook/folio
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/folio/serve.go -o ./swagger --parseDependency --parseInternal
