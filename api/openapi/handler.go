// Package openapi serves Swagger UI over the OpenAPI 3.1 document the API
// registry generates at /openapi.json.
package openapi

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SpecPath is where the generated document is served.
const SpecPath = "/openapi.json"

// UIPath is the Swagger UI entry point.
const UIPath = "/swagger/index.html"

// persistAuthorization keeps a pasted session token across reloads, since
// every payment operation needs one.
var uiTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: {{.SpecURL}},
      dom_id: "#swagger-ui",
      persistAuthorization: true,
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`))

// RegisterRoutes adds the Swagger UI routes to the Echo instance. The page is
// rendered once with title.
func RegisterRoutes(e *echo.Echo, title string) {
	var buf bytes.Buffer
	// Only string fields are rendered into a bytes.Buffer; Execute cannot fail.
	_ = uiTemplate.Execute(&buf, struct{ Title, SpecURL string }{title, SpecPath})
	page := buf.Bytes()

	e.GET(UIPath, func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, page)
	})
	redirect := func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, UIPath)
	}
	e.GET("/swagger", redirect)
	e.GET("/swagger/", redirect)
}
