package handlers

import "github.com/gin-gonic/gin"

const docsUIHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width,initial-scale=1" />
    <title>UserHub API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>
      body { margin: 0; background: #f8fafc; }
      #swagger-ui { max-width: 1200px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: "/docs/openapi.yaml",
        dom_id: "#swagger-ui",
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
        layout: "BaseLayout"
      });
    </script>
  </body>
</html>`

const openAPIYAML = `openapi: 3.0.3
info:
  title: UserHub API
  version: "1.0"
  description: File-backed users CRUD behind a JWT bearer gate.
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
      bearerFormat: JWT
  schemas:
    User:
      type: object
      properties:
        id: { type: integer }
        name: { type: string }
        email: { type: string }
        age: { type: integer }
    Error:
      type: object
      properties:
        error: { type: string }
security:
  - bearerAuth: []
paths:
  /login:
    post:
      security: []
      summary: Exchange the API key for a JWT
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [api_key]
              properties:
                api_key: { type: string }
      responses:
        "200":
          description: JWT token
          content:
            application/json:
              schema:
                type: object
                properties:
                  token: { type: string }
        "400": { description: api_key is required }
        "401": { description: Invalid API key }
  /users:
    get:
      summary: List all users
      responses:
        "200":
          description: All users
          content:
            application/json:
              schema:
                type: array
                items: { $ref: "#/components/schemas/User" }
        "401": { description: Unauthorized }
    post:
      summary: Create a user
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [name, email, age]
              properties:
                name: { type: string }
                email: { type: string }
                age: { type: integer }
      responses:
        "201":
          description: Created user
          content:
            application/json:
              schema: { $ref: "#/components/schemas/User" }
        "400": { description: Missing required fields }
        "401": { description: Unauthorized }
  /users/{id}:
    parameters:
      - name: id
        in: path
        required: true
        schema: { type: integer }
    get:
      summary: Get a user by id
      responses:
        "200":
          description: The user
          content:
            application/json:
              schema: { $ref: "#/components/schemas/User" }
        "401": { description: Unauthorized }
        "404": { description: User not found }
    put:
      summary: Partially update a user
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                name: { type: string }
                email: { type: string }
                age: { type: integer }
      responses:
        "200":
          description: Updated user
          content:
            application/json:
              schema: { $ref: "#/components/schemas/User" }
        "400": { description: Request body is required }
        "401": { description: Unauthorized }
        "404": { description: User not found }
    delete:
      summary: Delete a user
      responses:
        "200":
          description: Confirmation message
          content:
            application/json:
              schema:
                type: object
                properties:
                  message: { type: string }
        "401": { description: Unauthorized }
        "404": { description: User not found }
`

func DocsUI(ctx *gin.Context) {
	ctx.Data(200, "text/html; charset=utf-8", []byte(docsUIHTML))
}

func OpenAPISpec(ctx *gin.Context) {
	ctx.Data(200, "application/yaml; charset=utf-8", []byte(openAPIYAML))
}
