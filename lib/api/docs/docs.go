// Package docs holds the swagger description of the prism API, in the form
// swag generates it from the handler annotations.
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
        "/api/kill": {
            "post": {
                "tags": [
                    "base"
                ],
                "summary": "Stop rendering and exit",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/reload": {
            "post": {
                "tags": [
                    "base"
                ],
                "summary": "Recompile the shader program from its sources",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "base"
                ],
                "summary": "Get render statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.Snapshot"
                        }
                    }
                }
            }
        },
        "/api/ws": {
            "get": {
                "tags": [
                    "base"
                ],
                "summary": "Open websocket for realtime render statistics",
                "parameters": [
                    {
                        "type": "string",
                        "description": "websocket",
                        "name": "Upgrade",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    }
                }
            }
        },
        "/prof": {
            "get": {
                "produces": [
                    "application/octet-stream"
                ],
                "tags": [
                    "debug"
                ],
                "summary": "Profile the CPU for ten seconds",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "stats.Snapshot": {
            "type": "object",
            "properties": {
                "colour": {
                    "$ref": "#/definitions/utils.Colour"
                },
                "exercise": {
                    "type": "string"
                },
                "fps": {
                    "type": "integer"
                },
                "frames": {
                    "type": "integer"
                },
                "shader_reloads": {
                    "type": "integer"
                },
                "uptime": {
                    "type": "number"
                },
                "ws_clients": {
                    "type": "integer"
                }
            }
        },
        "utils.Colour": {
            "type": "object",
            "properties": {
                "a": {
                    "type": "number"
                },
                "b": {
                    "type": "number"
                },
                "g": {
                    "type": "number"
                },
                "r": {
                    "type": "number"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "prism API",
	Description:      "Control and statistics for the prism render loop",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
