// Package docs contém a especificação OpenAPI servida em /swagger.
// Regerar com: swag init -g cmd/api/main.go -o docs
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
		"/api/categorias": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "Categoria",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CategoriaRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.CategoriaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Criar categoria",
				"tags": [
					"categorias"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.CategoriaResponse"
							}
						}
					}
				},
				"summary": "Listar categorias",
				"tags": [
					"categorias"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/categorias/reordenar": {
			"put": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "IDs na nova ordem",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"type": "integer"
							}
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"summary": "Reordenar categorias",
				"tags": [
					"categorias"
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/categorias/{id}": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da categoria",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CategoriaComPictogramasResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Categoria com pictogramas",
				"tags": [
					"categorias"
				],
				"produces": [
					"application/json"
				]
			},
			"put": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da categoria",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Categoria",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CategoriaRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CategoriaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Atualizar categoria",
				"tags": [
					"categorias"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da categoria",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Desativar categoria",
				"tags": [
					"categorias"
				]
			}
		},
		"/api/configuracoes": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ConfiguracaoResponse"
						}
					}
				},
				"summary": "Obter configurações",
				"tags": [
					"configuracoes"
				],
				"produces": [
					"application/json"
				]
			},
			"put": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "Campos a alterar",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ConfiguracaoRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ConfiguracaoResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Atualizar configurações",
				"tags": [
					"configuracoes"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/configuracoes/resetar": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ConfiguracaoResponse"
						}
					}
				},
				"summary": "Resetar configurações",
				"tags": [
					"configuracoes"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/frases-favoritas": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "Frase",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.FraseFavoritaRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.FraseFavoritaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Criar frase favorita",
				"tags": [
					"frases-favoritas"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.FraseFavoritaResponse"
							}
						}
					}
				},
				"summary": "Listar frases favoritas",
				"tags": [
					"frases-favoritas"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/frases-favoritas/mais-usadas": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.FraseFavoritaResponse"
							}
						}
					}
				},
				"summary": "Frases mais usadas",
				"tags": [
					"frases-favoritas"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/frases-favoritas/reordenar": {
			"put": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "IDs na nova ordem",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"type": "integer"
							}
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"summary": "Reordenar frases favoritas",
				"tags": [
					"frases-favoritas"
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/api/frases-favoritas/{id}": {
			"put": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da frase",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Frase",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.FraseFavoritaRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.FraseFavoritaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Atualizar frase favorita",
				"tags": [
					"frases-favoritas"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da frase",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Desativar frase favorita",
				"tags": [
					"frases-favoritas"
				]
			}
		},
		"/api/frases-favoritas/{id}/usar": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da frase",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Registrar uso da frase",
				"tags": [
					"frases-favoritas"
				]
			}
		},
		"/api/mensagens": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "Mensagem",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.MensagemRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.MensagemResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Salvar mensagem",
				"tags": [
					"mensagens"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "Página (começa em 1)",
						"name": "page",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Itens por página (padrão 20)",
						"name": "size",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-dto_MensagemResponse"
						}
					}
				},
				"summary": "Histórico de mensagens",
				"tags": [
					"mensagens"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/mensagens/estatisticas": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Início (RFC 3339)",
						"name": "inicio",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Fim (RFC 3339)",
						"name": "fim",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.EstatisticasResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Estatísticas de mensagens",
				"tags": [
					"mensagens"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/mensagens/favoritas": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.MensagemResponse"
							}
						}
					}
				},
				"summary": "Mensagens favoritas",
				"tags": [
					"mensagens"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/mensagens/periodo": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Início (RFC 3339)",
						"name": "inicio",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Fim (RFC 3339)",
						"name": "fim",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.MensagemResponse"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Mensagens por período",
				"tags": [
					"mensagens"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/mensagens/{id}/favorita": {
			"put": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da mensagem",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MensagemResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Alternar favorita",
				"tags": [
					"mensagens"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/mensagens/{id}/reutilizar": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da mensagem",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Reutilizar mensagem",
				"tags": [
					"mensagens"
				]
			}
		},
		"/api/pictogramas": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "Pictograma",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PictogramaRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.PictogramaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Criar pictograma",
				"tags": [
					"pictogramas"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas-externos/buscar": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Palavra-chave",
						"name": "palavra",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "1 a 50 (padrão 20)",
						"name": "limite",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PictogramaExternoResponse"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Buscar no catálogo",
				"tags": [
					"pictogramas-externos"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas-externos/categoria/{nome}": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Nome da categoria",
						"name": "nome",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "1 a 50 (padrão 30)",
						"name": "limite",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PictogramaExternoResponse"
							}
						}
					}
				},
				"summary": "Buscar no catálogo por categoria",
				"tags": [
					"pictogramas-externos"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas-externos/importar": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "Pictograma a importar",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ImportarRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PictogramaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Importar pictograma",
				"tags": [
					"pictogramas-externos"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas-externos/importar-lote": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"description": "Pictogramas a importar",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ImportarRequest"
							}
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ImportarLoteResponse"
						}
					}
				},
				"summary": "Importar em lote",
				"tags": [
					"pictogramas-externos"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas-externos/status": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.StatusCatalogoResponse"
						}
					}
				},
				"summary": "Status do catálogo",
				"tags": [
					"pictogramas-externos"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas-externos/sugerir": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Texto livre",
						"name": "texto",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "1 a 30 (padrão 15)",
						"name": "limite",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PictogramaExternoResponse"
							}
						}
					}
				},
				"summary": "Sugerir pictogramas",
				"tags": [
					"pictogramas-externos"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas-externos/{idExterno}": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": false
					},
					{
						"type": "integer",
						"description": "ID no ARASAAC",
						"name": "idExterno",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PictogramaExternoResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Pictograma do catálogo",
				"tags": [
					"pictogramas-externos"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas/buscar": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Texto a procurar",
						"name": "termo",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PictogramaResponse"
							}
						}
					}
				},
				"summary": "Buscar pictogramas",
				"tags": [
					"pictogramas"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas/categoria/{categoriaId}": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID da categoria",
						"name": "categoriaId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PictogramaResponse"
							}
						}
					}
				},
				"summary": "Pictogramas da categoria",
				"tags": [
					"pictogramas"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas/mais-usados": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "Quantidade (padrão 10)",
						"name": "limite",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PictogramaResponse"
							}
						}
					}
				},
				"summary": "Pictogramas mais usados",
				"tags": [
					"pictogramas"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/pictogramas/{id}": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do pictograma",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PictogramaResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Buscar pictograma",
				"tags": [
					"pictogramas"
				],
				"produces": [
					"application/json"
				]
			},
			"put": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID do pictograma",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Pictograma",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PictogramaRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PictogramaResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Atualizar pictograma",
				"tags": [
					"pictogramas"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "Usuario-Id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID do pictograma",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Desativar pictograma",
				"tags": [
					"pictogramas"
				]
			}
		},
		"/api/pictogramas/{id}/usar": {
			"post": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do pictograma",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Registrar uso",
				"tags": [
					"pictogramas"
				]
			}
		},
		"/api/usuarios": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "Página (começa em 1)",
						"name": "page",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Itens por página",
						"name": "size",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "USER ou ADMIN",
						"name": "role",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-dto_UsuarioResponse"
						}
					}
				},
				"summary": "Listar usuários",
				"tags": [
					"usuarios"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/usuarios/{id}": {
			"get": {
				"parameters": [
					{
						"type": "integer",
						"description": "ID do usuário",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UsuarioResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Buscar usuário",
				"tags": [
					"usuarios"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/auth/login": {
			"post": {
				"parameters": [
					{
						"description": "Credenciais",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TokenResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Login",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/auth/me": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UsuarioResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Usuário autenticado",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/auth/register": {
			"post": {
				"parameters": [
					{
						"description": "Dados do usuário",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.RegisterResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"summary": "Registrar usuário",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		}
	},
	"definitions": {
		"dto.CategoriaComPictogramasResponse": {
			"allOf": [
				{
					"$ref": "#/definitions/dto.CategoriaResponse"
				},
				{
					"type": "object",
					"properties": {
						"pictogramas": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PictogramaResponse"
							}
						}
					}
				}
			]
		},
		"dto.CategoriaRequest": {
			"type": "object",
			"properties": {
				"cor": {
					"type": "string"
				},
				"descricao": {
					"type": "string"
				},
				"icone": {
					"type": "string"
				},
				"nome": {
					"type": "string"
				},
				"ordem": {
					"type": "integer"
				}
			}
		},
		"dto.CategoriaResponse": {
			"type": "object",
			"properties": {
				"ativa": {
					"type": "boolean"
				},
				"atualizadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"cor": {
					"type": "string"
				},
				"criadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"descricao": {
					"type": "string"
				},
				"icone": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"nome": {
					"type": "string"
				},
				"ordem": {
					"type": "integer"
				},
				"padrao": {
					"type": "boolean"
				},
				"usuarioId": {
					"type": "integer"
				}
			}
		},
		"dto.ConfiguracaoRequest": {
			"type": "object",
			"properties": {
				"confirmarSelecao": {
					"type": "boolean"
				},
				"habilitarSom": {
					"type": "boolean"
				},
				"idiomaVoz": {
					"type": "string"
				},
				"modoAltoContraste": {
					"type": "boolean"
				},
				"modoEscuro": {
					"type": "boolean"
				},
				"modoVarredura": {
					"type": "boolean"
				},
				"permitirRelatorios": {
					"type": "boolean"
				},
				"salvarHistorico": {
					"type": "boolean"
				},
				"tamanhoPictograma": {
					"type": "string"
				},
				"tempoVarredura": {
					"type": "integer"
				},
				"velocidadeVoz": {
					"type": "number"
				}
			}
		},
		"dto.ConfiguracaoResponse": {
			"type": "object",
			"properties": {
				"atualizadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"confirmarSelecao": {
					"type": "boolean"
				},
				"habilitarSom": {
					"type": "boolean"
				},
				"id": {
					"type": "integer"
				},
				"idiomaVoz": {
					"type": "string"
				},
				"modoAltoContraste": {
					"type": "boolean"
				},
				"modoEscuro": {
					"type": "boolean"
				},
				"modoVarredura": {
					"type": "boolean"
				},
				"permitirRelatorios": {
					"type": "boolean"
				},
				"salvarHistorico": {
					"type": "boolean"
				},
				"tamanhoPictograma": {
					"type": "string"
				},
				"tempoVarredura": {
					"type": "integer"
				},
				"usuarioId": {
					"type": "integer"
				},
				"velocidadeVoz": {
					"type": "number"
				}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"detail": {
					"type": "string"
				},
				"error": {
					"type": "string"
				},
				"errors": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"instance": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"path": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				},
				"timestamp": {
					"type": "string",
					"format": "date-time"
				},
				"title": {
					"type": "string"
				},
				"type": {
					"type": "string"
				}
			}
		},
		"dto.EstatisticasResponse": {
			"type": "object",
			"properties": {
				"mensagensNoPeriodo": {
					"type": "integer"
				},
				"totalMensagens": {
					"type": "integer"
				}
			}
		},
		"dto.FraseFavoritaRequest": {
			"type": "object",
			"properties": {
				"conteudoJson": {
					"type": "string"
				},
				"ordem": {
					"type": "integer"
				},
				"textoCompleto": {
					"type": "string"
				},
				"titulo": {
					"type": "string"
				}
			}
		},
		"dto.FraseFavoritaResponse": {
			"type": "object",
			"properties": {
				"ativa": {
					"type": "boolean"
				},
				"atualizadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"conteudoJson": {
					"type": "string"
				},
				"criadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"id": {
					"type": "integer"
				},
				"ordem": {
					"type": "integer"
				},
				"textoCompleto": {
					"type": "string"
				},
				"titulo": {
					"type": "string"
				},
				"usuarioId": {
					"type": "integer"
				},
				"vezesUsada": {
					"type": "integer"
				}
			}
		},
		"dto.ImportarLoteResponse": {
			"type": "object",
			"properties": {
				"pictogramas": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.PictogramaResponse"
					}
				},
				"totalFalhas": {
					"type": "integer"
				},
				"totalImportado": {
					"type": "integer"
				},
				"totalSolicitado": {
					"type": "integer"
				}
			}
		},
		"dto.ImportarRequest": {
			"type": "object",
			"properties": {
				"categoriaId": {
					"type": "integer"
				},
				"colorido": {
					"type": "boolean"
				},
				"idExterno": {
					"type": "integer"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"senha": {
					"type": "string"
				},
				"username": {
					"type": "string"
				}
			}
		},
		"dto.MensagemRequest": {
			"type": "object",
			"properties": {
				"conteudoJson": {
					"type": "string"
				},
				"contexto": {
					"type": "string"
				},
				"dispositivoOrigem": {
					"type": "string"
				},
				"textoCompleto": {
					"type": "string"
				}
			}
		},
		"dto.MensagemResponse": {
			"type": "object",
			"properties": {
				"conteudoJson": {
					"type": "string"
				},
				"contexto": {
					"type": "string"
				},
				"criadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"dispositivoOrigem": {
					"type": "string"
				},
				"favorita": {
					"type": "boolean"
				},
				"id": {
					"type": "integer"
				},
				"textoCompleto": {
					"type": "string"
				},
				"usuarioId": {
					"type": "integer"
				},
				"vezesReutilizada": {
					"type": "integer"
				}
			}
		},
		"dto.PageResponse-dto_MensagemResponse": {
			"type": "object",
			"properties": {
				"conteudo": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.MensagemResponse"
					}
				},
				"pagina": {
					"type": "integer"
				},
				"tamanho": {
					"type": "integer"
				},
				"totalElementos": {
					"type": "integer"
				},
				"totalPaginas": {
					"type": "integer"
				}
			}
		},
		"dto.PageResponse-dto_UsuarioResponse": {
			"type": "object",
			"properties": {
				"conteudo": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.UsuarioResponse"
					}
				},
				"pagina": {
					"type": "integer"
				},
				"tamanho": {
					"type": "integer"
				},
				"totalElementos": {
					"type": "integer"
				},
				"totalPaginas": {
					"type": "integer"
				}
			}
		},
		"dto.PictogramaExternoResponse": {
			"type": "object",
			"properties": {
				"categorias": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"fonte": {
					"type": "string"
				},
				"idExterno": {
					"type": "integer"
				},
				"imagemUrl": {
					"type": "string"
				},
				"imagemUrlAlta": {
					"type": "string"
				},
				"imagemUrlColorida": {
					"type": "string"
				},
				"importado": {
					"type": "boolean"
				},
				"keywords": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"label": {
					"type": "string"
				},
				"labelAlternativo": {
					"type": "string"
				},
				"pictogramaVoxId": {
					"type": "integer"
				}
			}
		},
		"dto.PictogramaRequest": {
			"type": "object",
			"properties": {
				"categoriaId": {
					"type": "integer"
				},
				"cor": {
					"type": "string"
				},
				"icone": {
					"type": "string"
				},
				"imagemUrl": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"labelAlternativo": {
					"type": "string"
				},
				"ordem": {
					"type": "integer"
				},
				"tipo": {
					"type": "string"
				}
			}
		},
		"dto.PictogramaResponse": {
			"type": "object",
			"properties": {
				"ativo": {
					"type": "boolean"
				},
				"atualizadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"categoriaId": {
					"type": "integer"
				},
				"categoriaNome": {
					"type": "string"
				},
				"cor": {
					"type": "string"
				},
				"criadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"icone": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"imagemUrl": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"labelAlternativo": {
					"type": "string"
				},
				"ordem": {
					"type": "integer"
				},
				"padrao": {
					"type": "boolean"
				},
				"tipo": {
					"type": "string"
				},
				"usuarioId": {
					"type": "integer"
				},
				"vezesUsado": {
					"type": "integer"
				}
			}
		},
		"dto.RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"nome": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"senha": {
					"type": "string"
				},
				"telefone": {
					"type": "string"
				}
			}
		},
		"dto.RegisterResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"success": {
					"type": "boolean"
				},
				"userId": {
					"type": "integer"
				}
			}
		},
		"dto.StatusCatalogoResponse": {
			"type": "object",
			"properties": {
				"disponivel": {
					"type": "boolean"
				},
				"fonte": {
					"type": "string"
				},
				"mensagem": {
					"type": "string"
				}
			}
		},
		"dto.TokenResponse": {
			"type": "object",
			"properties": {
				"tipo": {
					"type": "string"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"dto.UsuarioResponse": {
			"type": "object",
			"properties": {
				"atualizadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"criadoEm": {
					"type": "string",
					"format": "date-time"
				},
				"email": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"nome": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"telefone": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo contém as informações exportadas da especificação
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vox API",
	Description:      "Backend de comunicação aumentativa e alternativa: pictogramas, frases, histórico e catálogo ARASAAC.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
