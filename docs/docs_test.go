// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package docs

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc_Registered(t *testing.T) {
	t.Parallel()

	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc() error = %v", err)
	}

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}
	if spec.Info.Title != "Playstats API" {
		t.Errorf("title = %q, want Playstats API", spec.Info.Title)
	}
	if spec.BasePath != "/api/v1" {
		t.Errorf("basePath = %q, want /api/v1", spec.BasePath)
	}
	if len(spec.Paths) == 0 {
		t.Error("doc should describe at least one path")
	}
}

func TestSwaggerDoc_SimilarDescription(t *testing.T) {
	t.Parallel()

	doc := SwaggerInfo.ReadDoc()
	if !strings.Contains(doc, "genres, specs, developer and item id") {
		t.Error("game recommendation description should list every feature text field")
	}
}
