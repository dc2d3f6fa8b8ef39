package helpers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a 10 character password with a capital and special char
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		numbers = "0123456789"
		all     = lower + upper + special + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = special[randInt(len(special))]
	password[2] = numbers[randInt(len(numbers))]

	for i := 3; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// DoJSON executes a JSON request against the app with an optional bearer token
func DoJSON(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// RegisterPayload builds a complete registration body for the given email
func RegisterPayload(email, password string) map[string]interface{} {
	return map[string]interface{}{
		"name":      "Test Farmer",
		"email":     email,
		"password":  password,
		"phone":     "+254700000000",
		"age":       30,
		"location":  "Eldoret",
		"land_size": 1.5,
		"crop":      "maize",
	}
}

// AcquireAccount registers and logs in, returning the user id and access token
func AcquireAccount(t *testing.T, app *fiber.App, email, password string) (string, string) {
	t.Helper()

	resp := DoJSON(t, app, "POST", "/api/register", "", RegisterPayload(email, password))
	AssertStatus(t, resp, 201)

	var reg map[string]interface{}
	ParseJSON(t, resp, &reg)
	userID, ok := reg["id"].(string)
	if !ok || userID == "" {
		t.Fatalf("Registration returned no id: %v", reg)
	}

	resp = DoJSON(t, app, "POST", "/api/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	AssertStatus(t, resp, 200)

	var login map[string]interface{}
	ParseJSON(t, resp, &login)
	token, ok := login["access_token"].(string)
	if !ok || token == "" {
		t.Fatal("Login returned no access token")
	}

	return userID, token
}
