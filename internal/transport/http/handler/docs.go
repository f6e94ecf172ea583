package handler

import "net/http"

// DocsHandler serves a static OpenAPI 3 description of the public routes.
type DocsHandler struct {
	doc map[string]interface{}
}

func NewDocsHandler(apiTitle string) *DocsHandler {
	str := map[string]interface{}{"type": "string"}
	integer := map[string]interface{}{"type": "integer"}
	jsonBody := func(schema map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"application/json": map[string]interface{}{"schema": schema},
		}
	}
	request := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"nemIdCode": mergeDesc(str, "code of four digits"),
			"nemId":     mergeDesc(str, "generated 9 digit nemId"),
		},
	}
	result := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"generatedCode": mergeDesc(integer, "random 6 digits code, 0 when rejected"),
			"statusCode":    mergeDesc(integer, "200 on success, 403 on rejection"),
			"message":       mergeDesc(str, "response message"),
		},
	}
	return &DocsHandler{doc: map[string]interface{}{
		"openapi": "3.0.3",
		"info":    map[string]interface{}{"title": apiTitle, "version": "1.0.0"},
		"paths": map[string]interface{}{
			"/": map[string]interface{}{
				"get": map[string]interface{}{
					"tags":      []string{"Ping"},
					"summary":   "Service info",
					"responses": map[string]interface{}{"200": map[string]interface{}{"description": "documentation location"}},
				},
			},
			"/nemid-auth": map[string]interface{}{
				"post": map[string]interface{}{
					"tags":        []string{"NemId Code"},
					"summary":     "Generate NemId code",
					"requestBody": map[string]interface{}{"required": true, "content": jsonBody(request)},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "verification outcome", "content": jsonBody(result)},
						"400": map[string]interface{}{"description": "malformed JSON body"},
						"500": map[string]interface{}{"description": "identity store unavailable"},
					},
				},
			},
		},
	}}
}

func mergeDesc(schema map[string]interface{}, desc string) map[string]interface{} {
	out := make(map[string]interface{}, len(schema)+1)
	for k, v := range schema {
		out[k] = v
	}
	out["description"] = desc
	return out
}

func (h *DocsHandler) OpenAPI(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.doc)
}
