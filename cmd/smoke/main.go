// Command smoke exercises a running dashboard API end to end.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("SMOKE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8050"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test against", baseURL)

	steps := []struct {
		name    string
		method  string
		path    string
		payload any
	}{
		{"Health", http.MethodGet, "/health", nil},
		{"Filter options", http.MethodGet, "/api/filters", nil},
		{"Dashboard", http.MethodGet, "/api/dashboard", nil},
		{"Keyword leaderboard", http.MethodGet, "/api/leaderboard?column=kws&top=5", nil},
		{"Keyword co-occurrence", http.MethodGet, "/api/cooccurrence?column=kws&top=10", nil},
		{"Context", http.MethodGet, "/api/context?max_articles=3", nil},
		{"Ask", http.MethodPost, "/api/chat", map[string]any{"question": "Fais un résumé des articles"}},
		{"History", http.MethodGet, "/api/chat", nil},
	}

	for i, step := range steps {
		fmt.Printf("%d. %s...\n", i+1, step.name)
		if !sendRequest(baseURL, step.method, step.path, step.payload) {
			fmt.Printf("FAILED: %s\n", step.name)
			os.Exit(1)
		}
		fmt.Printf("PASSED: %s\n", step.name)
	}
}

func sendRequest(baseURL, method, endpoint string, payload any) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 90 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	if len(respBody) > 300 {
		respBody = append(respBody[:300], "..."...)
	}
	fmt.Printf("Response: %s\n", string(respBody))

	return true
}
