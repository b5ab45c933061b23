package services

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"strings"
	"unicode"

	"github.com/zakariamer/fitnessWebsite/utils"
)

// Classification is what a remote recognizer says about an image.
type Classification struct {
	Category   string
	Confidence float64
}

// NutritionInfo is the result of the secondary nutrition lookup for a
// recognized category.
type NutritionInfo struct {
	Calories    float64
	ServingSize string
	Ingredients []string
}

// FoodClassifier turns image bytes into a food category. Implementations
// must bound their own network calls with a timeout.
type FoodClassifier interface {
	Classify(ctx context.Context, img []byte, filename string) (*Classification, error)
}

// NutritionLookup resolves calories and serving info for a category.
// A nil result with nil error means "no nutrition data found".
type NutritionLookup interface {
	Lookup(ctx context.Context, category string) (*NutritionInfo, error)
}

type FoodEstimate struct {
	Name        string   `json:"name"`
	Confidence  float64  `json:"confidence"`
	Calories    float64  `json:"calories"`
	ServingSize string   `json:"serving_size"`
	Ingredients []string `json:"ingredients,omitempty"`
}

type FoodIdentification struct {
	Items         []FoodEstimate `json:"items"`
	TotalCalories float64        `json:"total_calories"`
}

const (
	defaultRemoteCalories = 250
	defaultServingSize    = "1 serving"
	maxIngredients        = 10

	fallbackCalories = 300
	referenceArea    = 500 * 500
)

// Keyword table for the filename tier. Ordered so multi-keyword
// filenames produce a stable item sequence.
var filenameFoods = []struct {
	name     string
	calories float64
	serving  string
}{
	{"pizza", 285, "1 slice"},
	{"banana", 105, "1 medium"},
	{"salad", 150, "1 bowl"},
	{"burger", 354, "1 burger"},
	{"sushi", 48, "1 piece"},
	{"chicken", 165, "1 chicken breast"},
	{"apple", 95, "1 medium"},
	{"orange", 62, "1 medium"},
	{"bread", 79, "1 slice"},
	{"rice", 130, "1 cup cooked"},
	{"pasta", 131, "1 cup cooked"},
	{"egg", 78, "1 large"},
	{"milk", 103, "1 cup"},
	{"cheese", 113, "1 oz"},
	{"fish", 206, "1 fillet"},
	{"beef", 250, "3 oz"},
	{"pork", 242, "3 oz"},
}

// FoodIdentifier runs the tiered identification chain:
//
//  1. remote recognition (only when a classifier is configured)
//  2. filename keyword heuristic
//  3. image-geometry heuristic, whose undecodable branch is the terminal
//     fallback
//
// The chain is a failover, not a retry loop: each tier either produces a
// complete result or hands over to the next. The policy for remote
// failures is lenient — a failed remote call is logged and the filename
// tier is attempted — so Identify never fails once it holds image bytes.
type FoodIdentifier struct {
	classifier FoodClassifier
	nutrition  NutritionLookup
}

// NewFoodIdentifier builds the chain. classifier may be nil (remote tier
// disabled); nutrition may be nil (remote tier uses default calories).
func NewFoodIdentifier(classifier FoodClassifier, nutrition NutritionLookup) *FoodIdentifier {
	return &FoodIdentifier{classifier: classifier, nutrition: nutrition}
}

func (f *FoodIdentifier) Identify(ctx context.Context, img []byte, filename string) *FoodIdentification {
	if f.classifier != nil {
		if res := f.identifyRemote(ctx, img, filename); res != nil {
			return res
		}
	}
	if res := identifyByFilename(filename); res != nil {
		return res
	}
	return identifyByGeometry(img)
}

func (f *FoodIdentifier) identifyRemote(ctx context.Context, img []byte, filename string) *FoodIdentification {
	cls, err := f.classifier.Classify(ctx, img, filename)
	if err != nil {
		log.Printf("food classification failed, falling back: %v", err)
		return nil
	}
	if cls == nil || cls.Category == "" {
		return nil
	}

	item := FoodEstimate{
		Name:        titleWords(strings.ReplaceAll(cls.Category, "_", " ")),
		Confidence:  math.Min(cls.Confidence, 0.95),
		Calories:    defaultRemoteCalories,
		ServingSize: defaultServingSize,
	}

	if f.nutrition != nil {
		info, err := f.nutrition.Lookup(ctx, cls.Category)
		if err != nil {
			log.Printf("nutrition lookup failed, using defaults: %v", err)
		} else if info != nil {
			if info.Calories > 0 {
				item.Calories = info.Calories
			}
			if info.ServingSize != "" {
				item.ServingSize = info.ServingSize
			}
			item.Ingredients = info.Ingredients
			if len(item.Ingredients) > maxIngredients {
				item.Ingredients = item.Ingredients[:maxIngredients]
			}
		}
	}

	return &FoodIdentification{
		Items:         []FoodEstimate{item},
		TotalCalories: utils.Round1(item.Calories),
	}
}

// identifyByFilename scans the uploaded file's original name for known
// food keywords; every match contributes an item. Returns nil when
// nothing matches.
func identifyByFilename(filename string) *FoodIdentification {
	fname := strings.ToLower(filename)
	var items []FoodEstimate
	var total float64
	for _, food := range filenameFoods {
		if strings.Contains(fname, food.name) {
			items = append(items, FoodEstimate{
				Name:        food.name,
				Confidence:  0.9,
				Calories:    food.calories,
				ServingSize: food.serving,
			})
			total += food.calories
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &FoodIdentification{Items: items, TotalCalories: utils.Round1(total)}
}

// identifyByGeometry estimates calories from pixel area, scaled against a
// 500x500 reference and clamped to [0.5, 3.0]. The undecodable branch is
// the terminal fallback and never fails.
func identifyByGeometry(img []byte) *FoodIdentification {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return &FoodIdentification{
			Items: []FoodEstimate{{
				Name:        "unknown_food",
				Confidence:  0.2,
				Calories:    fallbackCalories,
				ServingSize: "est",
			}},
			TotalCalories: fallbackCalories,
		}
	}

	area := float64(cfg.Width) * float64(cfg.Height)
	scale := area / referenceArea
	if scale < 0.5 {
		scale = 0.5
	} else if scale > 3.0 {
		scale = 3.0
	}
	calories := math.Round(fallbackCalories * scale)

	return &FoodIdentification{
		Items: []FoodEstimate{{
			Name:        "unknown_food",
			Confidence:  0.5,
			Calories:    calories,
			ServingSize: "est",
		}},
		TotalCalories: utils.Round1(calories),
	}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
