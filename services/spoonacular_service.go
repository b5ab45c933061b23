package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// SpoonacularService is the remote recognition collaborator: image
// classification plus a product-search nutrition lookup, both against the
// Spoonacular REST API. It implements FoodClassifier and NutritionLookup.
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSpoonacularService() *SpoonacularService {
	return &SpoonacularService{
		apiKey:  os.Getenv("SPOONACULAR_API_KEY"),
		baseURL: "https://api.spoonacular.com",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an API credential is present. Without one
// the remote tier is disabled entirely.
func (s *SpoonacularService) Configured() bool {
	return s.apiKey != ""
}

type classifyResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Classify posts the image to the food-image classification endpoint and
// returns the recognized category with its confidence.
func (s *SpoonacularService) Classify(ctx context.Context, img []byte, filename string) (*Classification, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to build classify form: %w", err)
	}
	if _, err := part.Write(img); err != nil {
		return nil, fmt.Errorf("failed to build classify form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build classify form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/food/images/classify", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create classify request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("x-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call classify API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classify response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classify API error %d: %s", resp.StatusCode, string(body))
	}

	var cr classifyResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse classify JSON: %w", err)
	}
	if cr.Confidence == 0 {
		cr.Confidence = 0.7
	}
	return &Classification{Category: cr.Category, Confidence: cr.Confidence}, nil
}

type productSearchResponse struct {
	Products []struct {
		Title     string `json:"title"`
		Nutrition struct {
			Calories    float64 `json:"calories"`
			ServingSize string  `json:"servingSize"`
		} `json:"nutrition"`
		Ingredients []string `json:"ingredients"`
	} `json:"products"`
}

// Lookup searches the product database for the category and extracts
// calories, serving size and an ingredient list from the best match.
// Returns (nil, nil) when no product carries nutrition data.
func (s *SpoonacularService) Lookup(ctx context.Context, category string) (*NutritionInfo, error) {
	u := fmt.Sprintf(
		"%s/food/products/search?query=%s&number=1&apiKey=%s",
		s.baseURL, url.QueryEscape(category), s.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call product search API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product search API error %d: %s", resp.StatusCode, string(body))
	}

	var pr productSearchResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse product search JSON: %w", err)
	}
	if len(pr.Products) == 0 {
		return nil, nil
	}

	p := pr.Products[0]
	if p.Nutrition.Calories <= 0 && p.Nutrition.ServingSize == "" && len(p.Ingredients) == 0 {
		return nil, nil
	}
	return &NutritionInfo{
		Calories:    p.Nutrition.Calories,
		ServingSize: p.Nutrition.ServingSize,
		Ingredients: p.Ingredients,
	}, nil
}
