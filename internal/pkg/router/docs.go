package router

import (
	"context"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

// APIDocPath is where the OpenAPI document lives, relative to the project root.
const APIDocPath = "public/docs/v1/openapi.yml"

var paramPattern = regexp.MustCompile(`:([A-Za-z0-9_]+)`)

// LoadAPIDoc reads and validates the OpenAPI document served by the swagger UI.
func LoadAPIDoc(ctx context.Context, path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// UndocumentedRoutes lists the /api routes of app that the document does not describe,
// as "METHOD /path".
func UndocumentedRoutes(app *fiber.App, doc *openapi3.T) []string {
	var missing []string
	for _, route := range app.GetRoutes(true) {
		if !strings.HasPrefix(route.Path, "/api/") || strings.Contains(route.Path, "*") {
			continue
		}
		if route.Method == fiber.MethodHead {
			continue
		}
		path := paramPattern.ReplaceAllString(route.Path, "{$1}")
		item := doc.Paths.Find(path)
		if item == nil || item.GetOperation(route.Method) == nil {
			missing = append(missing, route.Method+" "+route.Path)
		}
	}
	return missing
}
