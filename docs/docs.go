// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {
                        "description": "auth",
                        "name": "auth",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tAuthorization"}
                    }
                ],
                "responses": {
                    "200": {"description": "user authenticated"},
                    "400": {"description": "bad request format"},
                    "401": {"description": "wrong username/password pair"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["auth"],
                "summary": "Register user",
                "parameters": [
                    {
                        "description": "registration",
                        "name": "registration",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tRegistration"}
                    }
                ],
                "responses": {
                    "201": {"description": "user registered and authenticated"},
                    "400": {"description": "bad request format"},
                    "409": {"description": "username already taken"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/clients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "List clients",
                "responses": {
                    "200": {
                        "description": "clients with current aggregates",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.tClient"}}
                    },
                    "401": {"description": "not authorized"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Add client",
                "parameters": [
                    {
                        "description": "client",
                        "name": "client",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tClientRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.tClient"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "409": {"description": "phone already registered"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/clients/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Update client",
                "parameters": [
                    {"type": "integer", "description": "client id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "client",
                        "name": "client",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tClientRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.tClient"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "client not found"},
                    "500": {"description": "internal error"}
                }
            },
            "delete": {
                "produces": ["text/plain"],
                "tags": ["client"],
                "summary": "Delete client",
                "parameters": [
                    {"type": "integer", "description": "client id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "client deleted"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "client not found"},
                    "409": {"description": "client has orders"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/clients/{id}/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "List client orders",
                "parameters": [
                    {"type": "integer", "description": "client id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.tOrder"}}
                    },
                    "401": {"description": "not authorized"},
                    "404": {"description": "client not found"}
                }
            }
        },
        "/api/clients/{id}/recalculate": {
            "post": {
                "description": "recompute total purchases and discount from qualifying orders",
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Recalculate client aggregate",
                "parameters": [
                    {"type": "integer", "description": "client id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "client with refreshed aggregate",
                        "schema": {"$ref": "#/definitions/rest.tClient"}
                    },
                    "401": {"description": "not authorized"},
                    "404": {"description": "client not found"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/materials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List materials",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.tMaterial"}}
                    },
                    "401": {"description": "not authorized"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Add material",
                "parameters": [
                    {
                        "description": "material",
                        "name": "material",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tMaterial"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.tMaterial"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/materials/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Update material",
                "parameters": [
                    {"type": "integer", "description": "material id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "material",
                        "name": "material",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tMaterial"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.tMaterial"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "material not found"},
                    "500": {"description": "internal error"}
                }
            },
            "delete": {
                "produces": ["text/plain"],
                "tags": ["catalog"],
                "summary": "Delete material",
                "parameters": [
                    {"type": "integer", "description": "material id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "material deleted"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "material not found"},
                    "409": {"description": "material used by order lines"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "List orders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.tOrder"}}
                    },
                    "401": {"description": "not authorized"}
                }
            },
            "post": {
                "description": "create an order with its material lines; IN_PROCESS when no status given",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Add order",
                "parameters": [
                    {
                        "description": "order",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tOrderRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.tOrder"}},
                    "400": {"description": "bad request format"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "referenced client, product type or material not found"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Get order",
                "parameters": [
                    {"type": "integer", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.tOrder"}},
                    "401": {"description": "not authorized"},
                    "404": {"description": "order not found"}
                }
            },
            "put": {
                "description": "overwrite order fields and replace its material lines",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Update order",
                "parameters": [
                    {"type": "integer", "description": "order id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "order",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tOrderRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.tOrder"}},
                    "400": {"description": "bad request format"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "order not found"},
                    "500": {"description": "internal error"}
                }
            },
            "delete": {
                "produces": ["text/plain"],
                "tags": ["order"],
                "summary": "Delete order",
                "parameters": [
                    {"type": "integer", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "order and its lines deleted"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "order not found"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/product-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List product types",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.tProductType"}}
                    },
                    "401": {"description": "not authorized"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Add product type",
                "parameters": [
                    {
                        "description": "product type",
                        "name": "productType",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tProductType"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.tProductType"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/product-types/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Update product type",
                "parameters": [
                    {"type": "integer", "description": "product type id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "product type",
                        "name": "productType",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tProductType"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.tProductType"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "product type not found"},
                    "500": {"description": "internal error"}
                }
            },
            "delete": {
                "produces": ["text/plain"],
                "tags": ["catalog"],
                "summary": "Delete product type",
                "parameters": [
                    {"type": "integer", "description": "product type id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "product type deleted"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "product type not found"},
                    "409": {"description": "product type used by orders"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/roles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "List roles",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.tRole"}}
                    },
                    "401": {"description": "not authorized"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Add role",
                "parameters": [
                    {
                        "description": "role",
                        "name": "role",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tRole"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.tRole"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "409": {"description": "role name already exists"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/roles/{id}": {
            "delete": {
                "produces": ["text/plain"],
                "tags": ["user"],
                "summary": "Delete role",
                "parameters": [
                    {"type": "integer", "description": "role id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "role deleted"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "role not found"},
                    "409": {"description": "role assigned to users"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.tUser"}}
                    },
                    "401": {"description": "not authorized"}
                }
            },
            "post": {
                "description": "create a back-office user without switching the session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Add user",
                "parameters": [
                    {
                        "description": "user",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tRegistration"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.tUser"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "409": {"description": "username already taken"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/api/users/{id}": {
            "put": {
                "description": "change username, role or password; empty password keeps the current one",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Update user",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "user",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.tRegistration"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.tUser"}},
                    "400": {"description": "missing required field"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "user not found"},
                    "409": {"description": "username already taken"},
                    "500": {"description": "internal error"}
                }
            },
            "delete": {
                "produces": ["text/plain"],
                "tags": ["user"],
                "summary": "Delete user",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "user deleted"},
                    "401": {"description": "not authorized"},
                    "404": {"description": "user not found"},
                    "500": {"description": "internal error"}
                }
            }
        }
    },
    "definitions": {
        "rest.tAuthorization": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "rest.tRegistration": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "role_id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "rest.tClientRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "rest.tClient": {
            "type": "object",
            "properties": {
                "discount": {"type": "integer"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "id": {"type": "integer"},
                "phone": {"type": "string"},
                "total_purchases": {"type": "number"}
            }
        },
        "rest.tOrderLine": {
            "type": "object",
            "properties": {
                "material_id": {"type": "integer"},
                "weight": {"type": "number"}
            }
        },
        "rest.tOrderRequest": {
            "type": "object",
            "properties": {
                "client_id": {"type": "integer"},
                "materials": {"type": "array", "items": {"$ref": "#/definitions/rest.tOrderLine"}},
                "order_date": {"type": "string"},
                "price": {"type": "number"},
                "product_type_id": {"type": "integer"},
                "status": {"type": "string"},
                "total_weight": {"type": "number"}
            }
        },
        "rest.tOrder": {
            "type": "object",
            "properties": {
                "client_id": {"type": "integer"},
                "id": {"type": "integer"},
                "materials": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "material": {"type": "string"},
                            "material_id": {"type": "integer"},
                            "total_cost": {"type": "number"},
                            "weight": {"type": "number"}
                        }
                    }
                },
                "order_date": {"type": "string"},
                "price": {"type": "number"},
                "product_type_id": {"type": "integer"},
                "status": {"type": "string"},
                "total_weight": {"type": "number"}
            }
        },
        "rest.tMaterial": {
            "type": "object",
            "properties": {
                "cost_per_gram": {"type": "number"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "rest.tProductType": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "labor_cost": {"type": "number"},
                "name": {"type": "string"}
            }
        },
        "rest.tRole": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "rest.tUser": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "role": {"type": "string"},
                "role_id": {"type": "integer"},
                "username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Jewelry workshop back office",
	Description:      "Order lifecycle and client aggregate service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
