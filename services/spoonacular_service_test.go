package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testSpoonacular(srv *httptest.Server) *SpoonacularService {
	return &SpoonacularService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSpoonacular_Configured(t *testing.T) {
	if (&SpoonacularService{}).Configured() {
		t.Error("service without an API key reports configured")
	}
	if !(&SpoonacularService{apiKey: "k"}).Configured() {
		t.Error("service with an API key reports not configured")
	}
}

func TestSpoonacular_Classify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/food/images/classify" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("content type = %s, want multipart", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"category":"pizza","confidence":0.82}`))
	}))
	defer srv.Close()

	cls, err := testSpoonacular(srv).Classify(context.Background(), []byte("img"), "pic.jpg")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if cls.Category != "pizza" || cls.Confidence != 0.82 {
		t.Errorf("got %+v, want pizza/0.82", cls)
	}
}

func TestSpoonacular_Classify_DefaultConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"category":"burrito"}`))
	}))
	defer srv.Close()

	cls, err := testSpoonacular(srv).Classify(context.Background(), nil, "pic.jpg")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if cls.Confidence != 0.7 {
		t.Errorf("confidence = %v, want default 0.7", cls.Confidence)
	}
}

func TestSpoonacular_Classify_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	if _, err := testSpoonacular(srv).Classify(context.Background(), nil, "pic.jpg"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestSpoonacular_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/food/products/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("query"); q != "pizza" {
			t.Errorf("query = %q, want pizza", q)
		}
		w.Write([]byte(`{"products":[{"title":"Frozen Pizza","nutrition":{"calories":285,"servingSize":"1 slice"},"ingredients":["flour","tomato","cheese"]}]}`))
	}))
	defer srv.Close()

	info, err := testSpoonacular(srv).Lookup(context.Background(), "pizza")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if info == nil {
		t.Fatal("Lookup returned no data")
	}
	if info.Calories != 285 || info.ServingSize != "1 slice" || len(info.Ingredients) != 3 {
		t.Errorf("got %+v", info)
	}
}

func TestSpoonacular_Lookup_NoProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[]}`))
	}))
	defer srv.Close()

	info, err := testSpoonacular(srv).Lookup(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil info for empty product list, got %+v", info)
	}
}

func TestSpoonacular_Lookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer srv.Close()

	if _, err := testSpoonacular(srv).Lookup(context.Background(), "pizza"); err == nil {
		t.Fatal("expected error for malformed JSON body")
	}
}
