package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"testing"
)

type stubClassifier struct {
	result *Classification
	err    error
}

func (s *stubClassifier) Classify(_ context.Context, _ []byte, _ string) (*Classification, error) {
	return s.result, s.err
}

type stubNutrition struct {
	result *NutritionInfo
	err    error
}

func (s *stubNutrition) Lookup(_ context.Context, _ string) (*NutritionInfo, error) {
	return s.result, s.err
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestIdentify_FilenameTier(t *testing.T) {
	id := NewFoodIdentifier(nil, nil)
	res := id.Identify(context.Background(), pngBytes(t, 10, 10), "photo_of_my_banana.png")

	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(res.Items))
	}
	item := res.Items[0]
	if item.Name != "banana" || item.Calories != 105 || item.ServingSize != "1 medium" || item.Confidence != 0.9 {
		t.Errorf("unexpected item: %+v", item)
	}
	if res.TotalCalories != 105 {
		t.Errorf("total = %v, want 105", res.TotalCalories)
	}
}

func TestIdentify_FilenameTier_MultipleKeywords(t *testing.T) {
	id := NewFoodIdentifier(nil, nil)
	res := id.Identify(context.Background(), nil, "banana_bread.jpg")

	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(res.Items), res.Items)
	}
	if res.Items[0].Name != "banana" || res.Items[1].Name != "bread" {
		t.Errorf("items = %q, %q; want banana, bread", res.Items[0].Name, res.Items[1].Name)
	}
	if res.TotalCalories != 184 {
		t.Errorf("total = %v, want 184", res.TotalCalories)
	}
}

func TestIdentify_GeometryTier(t *testing.T) {
	id := NewFoodIdentifier(nil, nil)

	// 1000x1000: scale = clamp(4.0, 0.5, 3.0) = 3.0 -> 900 kcal.
	res := id.Identify(context.Background(), pngBytes(t, 1000, 1000), "IMG_1234.png")
	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(res.Items))
	}
	item := res.Items[0]
	if item.Name != "unknown_food" || item.Confidence != 0.5 {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.Calories != 900 || res.TotalCalories != 900 {
		t.Errorf("calories = %v (total %v), want 900", item.Calories, res.TotalCalories)
	}

	// Tiny image clamps at the lower bound: 0.5 -> 150 kcal.
	res = id.Identify(context.Background(), pngBytes(t, 100, 100), "IMG_5678.png")
	if got := res.Items[0].Calories; got != 150 {
		t.Errorf("small image calories = %v, want 150", got)
	}
}

func TestIdentify_TerminalFallback(t *testing.T) {
	id := NewFoodIdentifier(nil, nil)
	res := id.Identify(context.Background(), []byte("definitely not an image"), "IMG_0001.png")

	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(res.Items))
	}
	item := res.Items[0]
	if item.Name != "unknown_food" || item.Confidence != 0.2 || item.Calories != 300 {
		t.Errorf("unexpected terminal item: %+v", item)
	}
	if res.TotalCalories != 300 {
		t.Errorf("total = %v, want 300", res.TotalCalories)
	}
}

func TestIdentify_RemoteTier(t *testing.T) {
	ingredients := make([]string, 12)
	for i := range ingredients {
		ingredients[i] = fmt.Sprintf("ingredient-%d", i)
	}
	id := NewFoodIdentifier(
		&stubClassifier{result: &Classification{Category: "chicken_curry", Confidence: 0.99}},
		&stubNutrition{result: &NutritionInfo{Calories: 320.5, ServingSize: "1 bowl", Ingredients: ingredients}},
	)

	res := id.Identify(context.Background(), nil, "upload.jpg")
	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(res.Items))
	}
	item := res.Items[0]
	if item.Name != "Chicken Curry" {
		t.Errorf("name = %q, want %q", item.Name, "Chicken Curry")
	}
	if item.Confidence != 0.95 {
		t.Errorf("confidence = %v, want capped at 0.95", item.Confidence)
	}
	if item.Calories != 320.5 || item.ServingSize != "1 bowl" {
		t.Errorf("nutrition not applied: %+v", item)
	}
	if len(item.Ingredients) != 10 {
		t.Errorf("ingredients = %d, want truncated to 10", len(item.Ingredients))
	}
	if res.TotalCalories != 320.5 {
		t.Errorf("total = %v, want 320.5", res.TotalCalories)
	}
}

func TestIdentify_RemoteTier_NutritionLookupDegrades(t *testing.T) {
	classifier := &stubClassifier{result: &Classification{Category: "pizza", Confidence: 0.8}}

	for name, nutrition := range map[string]NutritionLookup{
		"lookup error": &stubNutrition{err: errors.New("quota exceeded")},
		"no data":      &stubNutrition{},
		"not wired":    nil,
	} {
		id := NewFoodIdentifier(classifier, nutrition)
		res := id.Identify(context.Background(), nil, "upload.jpg")
		item := res.Items[0]
		if item.Calories != 250 || item.ServingSize != "1 serving" {
			t.Errorf("%s: got %+v, want 250 kcal / 1 serving defaults", name, item)
		}
		if len(item.Ingredients) != 0 {
			t.Errorf("%s: unexpected ingredients %v", name, item.Ingredients)
		}
	}
}

func TestIdentify_RemoteFailureFallsThrough(t *testing.T) {
	id := NewFoodIdentifier(&stubClassifier{err: errors.New("service unreachable")}, nil)

	res := id.Identify(context.Background(), nil, "salad.jpg")
	if len(res.Items) != 1 || res.Items[0].Name != "salad" {
		t.Fatalf("expected filename-tier salad after remote failure, got %+v", res.Items)
	}
	if res.TotalCalories != 150 {
		t.Errorf("total = %v, want 150", res.TotalCalories)
	}
}

func TestIdentify_EmptyCategoryFallsThrough(t *testing.T) {
	id := NewFoodIdentifier(&stubClassifier{result: &Classification{}}, nil)

	res := id.Identify(context.Background(), pngBytes(t, 500, 500), "IMG_9999.png")
	if res.Items[0].Name != "unknown_food" {
		t.Fatalf("expected geometry tier, got %+v", res.Items)
	}
	// 500x500 is the reference area: scale 1.0 -> 300 kcal.
	if res.Items[0].Calories != 300 || res.Items[0].Confidence != 0.5 {
		t.Errorf("unexpected geometry item: %+v", res.Items[0])
	}
}
