// response.go
//
// Farm record keeping and crop prediction data service for Gaine Africa
// Copyright (c) 2026 Gaine Africa
//
// This file is part of farmrecords.
// farmrecords is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// farmrecords is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with farmrecords.
// If not, see <https://www.gnu.org/licenses/>.

package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// AssertErrorEnvelope verifies the standard error envelope shape and type
func AssertErrorEnvelope(t *testing.T, resp *http.Response, status int, errorType string) {
	t.Helper()
	AssertStatus(t, resp, status)

	var envelope map[string]interface{}
	ParseJSON(t, resp, &envelope)

	if envelope["ok"] != false {
		t.Errorf("Expected ok=false in error envelope, got %v", envelope["ok"])
	}
	if envelope["status"] != float64(status) {
		t.Errorf("Expected status %d in envelope, got %v", status, envelope["status"])
	}
	if _, ok := envelope["timestamp"].(string); !ok {
		t.Error("Expected timestamp in error envelope")
	}
	if errorType != "" && envelope["type"] != errorType {
		t.Errorf("Expected type %s, got %v", errorType, envelope["type"])
	}
}
