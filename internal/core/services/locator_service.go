package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/SscSPs/newswire_macros/internal/core/ports/providers"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
)

var headlinePrefix = regexp.MustCompile(`^([A-Z]{2,6}):`)

// locatorService implements the LocatorSvcFacade interface
type locatorService struct {
	BaseService
	rules           domain.LocatorRules
	sportCategories map[string]struct{}
	known           map[string]struct{}
}

// NewLocatorService reads the categories vocabulary once and builds the mapper.
func NewLocatorService(ctx context.Context, vocabulary providers.VocabularyProvider, rules domain.LocatorRules) (portssvc.LocatorSvcFacade, error) {
	categories, err := vocabulary.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories vocabulary: %w", err)
	}

	svc := &locatorService{
		rules:           rules,
		sportCategories: make(map[string]struct{}),
		known:           rules.KnownLocators(),
	}
	for _, c := range categories {
		if c.IsSport() {
			svc.sportCategories[strings.ToUpper(c.QCode)] = struct{}{}
		}
	}

	svc.LogDebug(ctx, "Locator mapper ready",
		slog.Int("categories", len(categories)),
		slog.Int("sport_categories", len(svc.sportCategories)))
	return svc, nil
}

// Ensure locatorService implements the LocatorSvcFacade interface
var _ portssvc.LocatorSvcFacade = (*locatorService)(nil)

func (s *locatorService) MapLocator(article *domain.Article, category string) (string, bool) {
	if article == nil {
		return "", false
	}
	category = strings.ToUpper(strings.TrimSpace(category))

	if _, ok := s.sportCategories[category]; ok {
		if loc, found := s.sportLocator(article.Subject); found {
			return loc, true
		}
		if s.rules.GenericSport != "" {
			return s.rules.GenericSport, true
		}
	}

	for _, topic := range s.rules.Topics {
		if !strings.EqualFold(topic.Category, category) || !hasSubjectPrefix(article.Subject, topic.SubjectPrefix) {
			continue
		}
		if s.isDomestic(article.Place) {
			return topic.Domestic, true
		}
		return topic.International, true
	}

	if loc, found := s.sportLocator(article.Subject); found {
		return loc, true
	}

	for _, p := range article.Place {
		if p.QCode != "" {
			return p.QCode, true
		}
	}

	if loc, ok := s.rules.Categories[category]; ok && loc != "" {
		return loc, true
	}

	return "", false
}

func (s *locatorService) FormattedHeadline(article *domain.Article, category string) string {
	if article == nil {
		return ""
	}
	if strings.TrimSpace(category) == "" {
		category = article.PrimaryCategory()
	}

	locator, found := s.MapLocator(article, category)

	if m := headlinePrefix.FindStringSubmatch(article.Headline); m != nil {
		_, known := s.known[m[1]]
		if known || article.AutoPublish || (found && m[1] == strings.ToUpper(locator)) {
			return article.Headline
		}
	}

	if !found {
		return article.Headline
	}
	return locator + ":" + article.Headline
}

// sportLocator returns the locator of the last listed subject whose sport family is mapped.
func (s *locatorService) sportLocator(subjects []domain.Subject) (string, bool) {
	for i := len(subjects) - 1; i >= 0; i-- {
		family := domain.SportFamily(subjects[i].QCode)
		if family == "" {
			continue
		}
		if loc, ok := s.rules.SportFamilies[family]; ok && loc != "" {
			return loc, true
		}
	}
	return "", false
}

// isDomestic looks at the first place only.
func (s *locatorService) isDomestic(places []domain.Place) bool {
	if len(places) == 0 || s.rules.DomesticCountry == "" {
		return false
	}
	p := places[0]
	return strings.EqualFold(p.Country, s.rules.DomesticCountry) || strings.EqualFold(p.Group, s.rules.DomesticCountry)
}

func hasSubjectPrefix(subjects []domain.Subject, prefix string) bool {
	if prefix == "" {
		return false
	}
	for _, subj := range subjects {
		if strings.HasPrefix(subj.QCode, prefix) {
			return true
		}
	}
	return false
}
