package di

import (
	"context"
	"fmt"
	"time"

	"fitness_backend/internal/feature/foodvision/adapters/gemini"
	"fitness_backend/internal/feature/foodvision/adapters/vision"
	foodvisionhandler "fitness_backend/internal/feature/foodvision/transport/handler"
	"fitness_backend/internal/feature/foodvision/usecase"
	"fitness_backend/internal/shared/ratelimiter"
)

// externalAPILimit は外部API（Vision / Gemini）の1分あたりの呼び出し上限です。
const externalAPILimit = 30

// FoodVision bundles the foodvision usecase with the resources it owns.
type FoodVision struct {
	Usecase foodvisionhandler.FoodVisionUsecase

	detector *vision.VisionLabelDetector
}

// NewFoodVision creates the food vision usecase backed by the Vision and
// Gemini clients. Both clients authenticate via ADC.
func NewFoodVision(ctx context.Context) (*FoodVision, error) {
	detector, err := vision.NewVisionLabelDetector(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build label detector: %w", err)
	}

	analyzer, err := gemini.NewGeminiAnalyzer(ctx)
	if err != nil {
		if cerr := detector.Close(); cerr != nil {
			err = fmt.Errorf("%w (also failed to close vision client: %v)", err, cerr)
		}
		return nil, fmt.Errorf("failed to build nutrition analyzer: %w", err)
	}

	limiter := ratelimiter.NewRateLimiter(externalAPILimit, time.Minute)
	return &FoodVision{
		Usecase:  usecase.NewFoodVisionUsecase(detector, analyzer, limiter),
		detector: detector,
	}, nil
}

// Close releases the underlying API clients.
func (f *FoodVision) Close() error {
	return f.detector.Close()
}
