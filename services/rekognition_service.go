package services

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService is an alternative FoodClassifier backed by AWS
// Rekognition label detection. It only classifies; pair it with a
// NutritionLookup (e.g. Spoonacular) for calorie data.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(ctx context.Context) (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

func (r *RekognitionService) Classify(ctx context.Context, img []byte, _ string) (*Classification, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: img},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(55),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Labels) == 0 {
		return nil, errors.New("no labels detected")
	}

	top := out.Labels[0]
	category := strings.ToLower(strings.ReplaceAll(aws.ToString(top.Name), " ", "_"))
	confidence := float64(aws.ToFloat32(top.Confidence)) / 100.0
	return &Classification{Category: category, Confidence: confidence}, nil
}
