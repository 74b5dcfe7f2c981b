// Package docs ViVeMap API.
//
// Описание OpenAPI регистрируется в swag и отдаётся fiber-swagger по /swagger/doc.json.
// Аннотации находятся в cmd/api/main.go и в handler-ах; пересборка: swag init -g cmd/api/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@vivemap.pe"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Состояние сервиса",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Список категорий",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Категория",
                "parameters": [{"type": "string", "description": "ID категории", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/categories/{id}/subcategories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Подкатегории категории",
                "parameters": [{"type": "string", "description": "ID категории", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/places": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Места по фильтрам",
                "parameters": [
                    {"type": "string", "description": "Категория", "name": "category", "in": "query"},
                    {"type": "string", "description": "Подкатегории через запятую", "name": "subcategories", "in": "query"},
                    {"enum": ["Hoy", "Fin de semana", "Esta semana", "Este mes"], "type": "string", "description": "Временная рамка", "name": "time_frame", "in": "query"},
                    {"type": "boolean", "description": "Только эвентуальные", "name": "eventual", "in": "query"},
                    {"type": "boolean", "description": "Только постоянные", "name": "permanent", "in": "query"},
                    {"type": "boolean", "description": "Только бесплатные", "name": "free", "in": "query"},
                    {"type": "boolean", "description": "Промоакции", "name": "promotions", "in": "query"},
                    {"enum": ["reels", "list", "map"], "type": "string", "default": "reels", "description": "Представление", "name": "view", "in": "query"},
                    {"type": "number", "description": "Широта пользователя", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Долгота пользователя", "name": "lon", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/places/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Детальная карточка места",
                "parameters": [{"type": "integer", "description": "ID места", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/places/{id}/map": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Карта одного места",
                "parameters": [{"type": "integer", "description": "ID места", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Метка активных фильтров",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/map/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Настройки виджета карты",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Новая сессия фильтров",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Состояние сессии",
                "parameters": [{"type": "string", "description": "ID сессии (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/sessions/{id}/actions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Применить действие к фильтрам",
                "parameters": [
                    {"type": "string", "description": "ID сессии (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Действие", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/sessions/{id}/places": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Места по состоянию сессии",
                "parameters": [
                    {"type": "string", "description": "ID сессии (UUID)", "name": "id", "in": "path", "required": true},
                    {"enum": ["reels", "list", "map"], "type": "string", "default": "reels", "description": "Представление", "name": "view", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/sessions/{id}/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Недавние поиски сессии",
                "parameters": [{"type": "string", "description": "ID сессии (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/searches/presets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Searches"],
                "summary": "Готовые поиски",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/searches/popular": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Searches"],
                "summary": "Популярные поиски",
                "parameters": [{"type": "integer", "default": 10, "description": "Количество (1-50)", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "dto.ActionRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["toggle_category", "toggle_subcategory", "toggle_time_frame", "toggle_flag", "set_flag", "apply_preset", "reset"]},
                "value": {"type": "string"},
                "flag": {"type": "string", "enum": ["eventual", "permanent", "free_only", "promotions"]},
                "enabled": {"type": "boolean"},
                "preset_id": {"type": "string"},
                "patch": {"type": "object"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "services": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "ViVeMap API",
	Description:      "API каталога мест Huancayo Vive: фильтры, сессии фильтров, представления reels, list и map.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
