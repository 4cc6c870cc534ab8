// Package swagger holds the OpenAPI document served under /swagger.
package swagger

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
        "/api/admin/cache/invalidate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Invalidate caches",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/api/calculator": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Prices a vehicle bought at a US auction and delivered to Armenia. Without a valid token the restricted figures are returned as \"unavailable\".",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "calculator"
                ],
                "summary": "Calculate import cost",
                "parameters": [
                    {
                        "description": "Vehicle quote",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.VehicleQuote"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.CostBreakdown"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/api/exchange-rates": {
            "get": {
                "description": "Current AMD per USD and AMD per EUR rates and the derived EUR to USD cross rate",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rates"
                ],
                "summary": "Get exchange rates",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.ExchangeRates"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/shipping/cities": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shipping"
                ],
                "summary": "List pickup cities",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Auction house",
                        "name": "auction",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Vehicle category",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "City or state prefix",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "description": "Limit",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "allOf": [
                                                {
                                                    "$ref": "#/definitions/pagination.Page"
                                                },
                                                {
                                                    "type": "object",
                                                    "properties": {
                                                        "items": {
                                                            "type": "array",
                                                            "items": {
                                                                "$ref": "#/definitions/shipping.CityOption"
                                                            }
                                                        }
                                                    }
                                                }
                                            ]
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/shipping/price": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Resolves the inland and ocean shipping price from a pickup city",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shipping"
                ],
                "summary": "Get shipping price",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pickup city",
                        "name": "city",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "copart",
                        "description": "Auction house",
                        "name": "auction",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "default": "sedan",
                        "description": "Vehicle category",
                        "name": "category",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.ShippingPrice"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "model.AuctionFeeBreakdown": {
            "type": "object",
            "properties": {
                "bid_fee": {
                    "type": "string"
                },
                "environmental_fee": {
                    "type": "string"
                },
                "gate_fee": {
                    "type": "string"
                },
                "secured_payment_fee": {
                    "type": "string"
                },
                "title_shipping_fee": {
                    "type": "string"
                },
                "total_fees": {
                    "type": "string"
                }
            }
        },
        "model.CostBreakdown": {
            "type": "object",
            "properties": {
                "auction_fee_detail": {
                    "$ref": "#/definitions/model.AuctionFeeBreakdown"
                },
                "auction_fees": {
                    "type": "string"
                },
                "customs_duty_usd": {
                    "type": "string"
                },
                "environmental_tax_usd": {
                    "type": "string"
                },
                "exchange_rates": {
                    "$ref": "#/definitions/model.ExchangeRates"
                },
                "insurance_fee": {
                    "type": "string"
                },
                "redacted": {
                    "type": "boolean"
                },
                "service_fee": {
                    "type": "string"
                },
                "shipping_price": {
                    "type": "string"
                },
                "shipping_source": {
                    "type": "string"
                },
                "tax_regime": {
                    "type": "string"
                },
                "total_usd": {
                    "type": "string"
                },
                "vat_usd": {
                    "type": "string"
                },
                "vehicle_price": {
                    "type": "string"
                }
            }
        },
        "model.ExchangeRates": {
            "type": "object",
            "properties": {
                "amd_per_eur": {
                    "type": "string"
                },
                "amd_per_usd": {
                    "type": "string"
                },
                "eur_fetched_at": {
                    "type": "string"
                },
                "eur_per_usd": {
                    "type": "string"
                },
                "fallback": {
                    "type": "boolean"
                },
                "usd_fetched_at": {
                    "type": "string"
                }
            }
        },
        "model.ShippingPrice": {
            "type": "object",
            "properties": {
                "auction": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "port": {
                    "type": "string"
                },
                "price_usd": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                }
            }
        },
        "model.VehicleQuote": {
            "type": "object",
            "required": [
                "auction_city",
                "auction_house",
                "buyer_type",
                "engine_type",
                "vehicle_category"
            ],
            "properties": {
                "auction_city": {
                    "type": "string"
                },
                "auction_house": {
                    "type": "string",
                    "enum": [
                        "copart",
                        "iaai",
                        "manheim",
                        "other"
                    ]
                },
                "buyer_type": {
                    "type": "string",
                    "enum": [
                        "individual",
                        "legal_entity"
                    ]
                },
                "engine_power_kw": {
                    "type": "string"
                },
                "engine_type": {
                    "type": "string",
                    "enum": [
                        "gasoline",
                        "diesel",
                        "electric",
                        "hybrid"
                    ]
                },
                "engine_volume_liters": {
                    "type": "string"
                },
                "insured": {
                    "type": "boolean"
                },
                "is_off_road": {
                    "type": "boolean"
                },
                "price_usd": {
                    "type": "string"
                },
                "purchase_date": {
                    "type": "string",
                    "format": "date"
                },
                "use_live_bid": {
                    "type": "boolean"
                },
                "vehicle_category": {
                    "type": "string",
                    "enum": [
                        "sedan",
                        "crossover",
                        "suv",
                        "pickup",
                        "motorcycle"
                    ]
                }
            }
        },
        "pagination.Meta": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "pagination.Page": {
            "type": "object",
            "properties": {
                "items": {},
                "meta": {
                    "$ref": "#/definitions/pagination.Meta"
                }
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "description": "stable machine-readable error code",
                    "type": "string"
                },
                "data": {},
                "error": {
                    "type": "string"
                },
                "status": {
                    "description": "\"success\" or \"error\"",
                    "type": "string"
                },
                "status_code": {
                    "description": "HTTP status code",
                    "type": "integer"
                }
            }
        },
        "shipping.CityOption": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "port": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "state": {
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Car Import Cost API",
	Description:      "Import cost calculator for vehicles bought at US auctions and delivered to Armenia.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
