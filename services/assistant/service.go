package assistant

import (
	"context"
	"fmt"
	"strings"

	packageRepo "weddify/database/repository/packages"
	vendorRepo "weddify/database/repository/vendor"
	"weddify/utils"

	"go.uber.org/zap"
)

// AssistantService answers free-form planning questions and recommends
// vendors and packages for a budget.
type AssistantService interface {
	SuggestPackages(ctx context.Context, city string, budget int64, question string) (string, error)
}

type generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultAssistantService grounds the model on live catalogue data so
// recommendations only name vendors that actually exist.
type DefaultAssistantService struct {
	Gemini      generator
	VendorRepo  vendorRepo.VendorRepository
	PackageRepo packageRepo.PackageRepository
}

func (s *DefaultAssistantService) SuggestPackages(ctx context.Context, city string, budget int64, question string) (string, error) {
	vendors, err := s.VendorRepo.Search(vendorRepo.VendorSearchCriteria{City: city, Limit: 10})
	if err != nil {
		return "", fmt.Errorf("failed to load vendors for suggestions: %w", err)
	}

	var catalogue strings.Builder
	for _, v := range vendors {
		pkgs, err := s.PackageRepo.GetByVendor(v.ID)
		if err != nil {
			utils.GetLogger().Warn("assistant: failed to load vendor packages",
				zap.String("vendorID", v.ID), zap.Error(err))
			continue
		}
		for _, p := range pkgs {
			if !p.IsActive || !p.Availability.IsAvailable {
				continue
			}
			if budget > 0 && p.Pricing.BasePrice > budget {
				continue
			}
			fmt.Fprintf(&catalogue, "- %s by %s (%s): %s %.2f\n",
				p.Name, v.Profile.BusinessName, p.Category,
				p.Pricing.Currency, float64(p.Pricing.BasePrice)/100)
		}
	}

	if catalogue.Len() == 0 {
		return fallbackSuggestion(city), nil
	}
	if s.Gemini == nil {
		return "Available options within your budget:\n" + catalogue.String(), nil
	}

	prompt := fmt.Sprintf(
		"You are a wedding planning assistant. A couple planning a wedding in %s asked: %q. "+
			"Recommend from ONLY these available packages, staying within their budget:\n%s"+
			"Keep the answer short and practical.",
		city, question, catalogue.String())

	answer, err := s.Gemini.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("assistant: gemini call failed, returning catalogue", zap.Error(err))
		return "Available options within your budget:\n" + catalogue.String(), nil
	}
	return answer, nil
}

func fallbackSuggestion(city string) string {
	if city == "" {
		return "No packages matched. Try widening your search or raising the budget."
	}
	return fmt.Sprintf("No packages matched in %s. Try widening your search or raising the budget.", city)
}
