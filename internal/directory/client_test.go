package directory

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// Mock directory response - two matching characters
const mockSearchResponse = `{"info":{"count":2,"pages":1},"results":[{"id":1,"name":"Rick Sanchez","status":"Alive","species":"Human","image":"https://rickandmortyapi.com/api/character/avatar/1.jpeg","episode":["https://rickandmortyapi.com/api/episode/1","https://rickandmortyapi.com/api/episode/2"]},{"id":2,"name":"Morty Smith","status":"Alive","species":"Human","image":"https://rickandmortyapi.com/api/character/avatar/2.jpeg","episode":["https://rickandmortyapi.com/api/episode/1"]}]}`

// Mock response without a results key (treated as empty)
const mockEmptyResponse = `{"info":{"count":0,"pages":0}}`

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", client.BaseURL, DefaultBaseURL)
	}

	if client.HTTPClient == nil {
		t.Error("HTTPClient should not be nil")
	}

	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestNewClientWithURL(t *testing.T) {
	client := NewClientWithURL("http://localhost:8080/api")

	if client.BaseURL != "http://localhost:8080/api" {
		t.Errorf("BaseURL = %s, want http://localhost:8080/api", client.BaseURL)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient()
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Request method = %s, want GET", r.Method)
		}

		if r.URL.Path != "/character/" {
			t.Errorf("Request path = %s, want /character/", r.URL.Path)
		}

		if got := r.URL.Query().Get("name"); got != "rick" {
			t.Errorf("name query = %q, want %q", got, "rick")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockSearchResponse))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	results, err := client.Search("rick")

	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}

	if len(results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(results))
	}

	if results[0].ID != 1 {
		t.Errorf("results[0].ID = %d, want 1", results[0].ID)
	}

	if results[0].Name != "Rick Sanchez" {
		t.Errorf("results[0].Name = %s, want Rick Sanchez", results[0].Name)
	}

	if len(results[0].Episode) != 2 {
		t.Errorf("results[0] episode count = %d, want 2", len(results[0].Episode))
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	requestCount := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockSearchResponse))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	results, err := client.Search("")

	if err != nil {
		t.Errorf("Search(\"\") error = %v, want nil", err)
	}

	if len(results) != 0 {
		t.Errorf("Search(\"\") returned %d results, want 0", len(results))
	}

	if requestCount != 0 {
		t.Errorf("Search(\"\") issued %d requests, want 0", requestCount)
	}
}

func TestSearch_QueryEncoding(t *testing.T) {
	var rawQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockEmptyResponse))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Search("rick & morty?")

	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}

	if strings.Contains(rawQuery, " ") || strings.Contains(rawQuery, "&name") {
		t.Errorf("query was not percent-encoded: %s", rawQuery)
	}

	if rawQuery != "name=rick+%26+morty%3F" {
		t.Errorf("RawQuery = %s, want name=rick+%%26+morty%%3F", rawQuery)
	}
}

func TestSearch_NotFoundIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"There is nothing here"}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	results, err := client.Search("zzzzzz")

	if err != nil {
		t.Errorf("Search() error = %v, want nil for 404", err)
	}

	if len(results) != 0 {
		t.Errorf("Search() returned %d results, want 0 for 404", len(results))
	}
}

func TestSearch_MissingResultsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockEmptyResponse))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	results, err := client.Search("rick")

	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}

	if results == nil {
		t.Error("Search() should return an empty slice, not nil, for a missing results key")
	}

	if len(results) != 0 {
		t.Errorf("Search() returned %d results, want 0", len(results))
	}
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Search("rick")

	if err == nil {
		t.Fatal("Search() should return error for HTTP 500")
	}

	if !IsHTTPError(err) {
		t.Errorf("Search() error should be HTTP error, got %T: %v", err, err)
	}
}

func TestSearch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not valid JSON at all"))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Search("rick")

	if err == nil {
		t.Fatal("Search() should return error for invalid JSON")
	}

	if !IsParseError(err) {
		t.Errorf("Search() error should be parse error, got %T: %v", err, err)
	}
}

func TestSearch_NetworkFailure(t *testing.T) {
	// TEST-NET-1 address, guaranteed unreachable
	client := NewClientWithURL("http://192.0.2.1")
	client.SetTimeout(100 * time.Millisecond)

	_, err := client.Search("rick")

	if err == nil {
		t.Fatal("Search() should return error for network failure")
	}

	if !IsNetworkError(err) {
		t.Errorf("Search() error should be network error, got %T: %v", err, err)
	}
}

func TestSearchURL(t *testing.T) {
	client := NewClientWithURL("http://example.test/api")

	got := client.SearchURL("rick sanchez")
	want := "http://example.test/api/character/?name=rick+sanchez"

	if got != want {
		t.Errorf("SearchURL() = %s, want %s", got, want)
	}
}

func TestPing_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockSearchResponse))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)

	if err := client.Ping(); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}
}

func TestPing_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)

	err := client.Ping()
	if err == nil {
		t.Fatal("Ping() should return error for HTTP 503")
	}

	if !IsHTTPError(err) {
		t.Errorf("Ping() error should be HTTP error, got %T", err)
	}
}
