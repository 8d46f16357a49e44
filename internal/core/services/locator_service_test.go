package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	placeNSW = domain.Place{Name: "NSW", WorldRegion: "Oceania", Group: "Australia", QCode: "NSW", Country: "Australia"}
	placeCHN = domain.Place{Name: "CHINA", WorldRegion: "China", Group: "Rest of the World", QCode: "CHN", Country: "China"}
)

func subjects(codes ...string) []domain.Subject {
	out := make([]domain.Subject, 0, len(codes))
	for _, c := range codes {
		out = append(out, domain.Subject{QCode: c})
	}
	return out
}

type LocatorServiceTestSuite struct {
	suite.Suite
	service portssvc.LocatorSvcFacade
}

func (suite *LocatorServiceTestSuite) SetupTest() {
	vocab := new(MockVocabularyProvider)
	vocab.On("ListCategories", mock.Anything).Return([]domain.CategoryVocabulary{
		{IsActive: true, Name: "Overseas Sport", QCode: "S", Subject: "15000000"},
		{IsActive: true, Name: "Domestic Sport", QCode: "T", Subject: "15000000"},
		{IsActive: true, Name: "Finance", QCode: "F", Subject: "04000000"},
		{IsActive: true, Name: "World News", QCode: "I"},
		{IsActive: true, Name: "Entertainment", QCode: "e", Subject: "01000000"},
		{IsActive: true, Name: "Australian General News", QCode: "a"},
	}, nil)

	svc, err := services.NewLocatorService(context.Background(), vocab, domain.DefaultLocatorRules())
	suite.Require().NoError(err)
	suite.service = svc
}

func (suite *LocatorServiceTestSuite) assertLocator(article *domain.Article, category, want string) {
	got, found := suite.service.MapLocator(article, category)
	suite.True(found, "expected a locator for category %s", category)
	suite.Equal(want, got)
}

func (suite *LocatorServiceTestSuite) TestTravelDomesticAndInternational() {
	suite.assertLocator(&domain.Article{Subject: subjects("15011002", "10006000")}, "C", "TRAVI")
	suite.assertLocator(&domain.Article{Subject: subjects("15011002", "10006000"), Place: []domain.Place{placeNSW}}, "C", "TRAVD")
	suite.assertLocator(&domain.Article{Subject: subjects("15011002", "10006000"), Place: []domain.Place{placeCHN}}, "C", "TRAVI")
	suite.assertLocator(&domain.Article{Subject: subjects("10006000", "15011002")}, "c", "TRAVI")
}

func (suite *LocatorServiceTestSuite) TestSportCategories() {
	volleyball := &domain.Article{Subject: subjects("15063000", "15067000")}
	suite.assertLocator(volleyball, "S", "VOL")
	suite.assertLocator(volleyball, "T", "VOL")
	suite.assertLocator(&domain.Article{Subject: subjects("15000000", "15063000")}, "T", "TTEN")
	suite.assertLocator(&domain.Article{Subject: subjects("15063000")}, "s", "TTEN")
}

func (suite *LocatorServiceTestSuite) TestSportCategoryWithoutMappedSport() {
	suite.assertLocator(&domain.Article{Subject: subjects("15073000"), Place: []domain.Place{placeNSW}}, "S", "SPO")
}

func (suite *LocatorServiceTestSuite) TestNoLocator() {
	loc, found := suite.service.MapLocator(&domain.Article{Subject: subjects("9999999")}, "D")
	suite.False(found)
	suite.Empty(loc)

	loc, found = suite.service.MapLocator(nil, "S")
	suite.False(found)
	suite.Empty(loc)
}

func (suite *LocatorServiceTestSuite) TestUnknownCategoryFallsBackToSubjectThenPlace() {
	suite.assertLocator(&domain.Article{Subject: subjects("15011002", "10006000"), Place: []domain.Place{placeCHN}}, "X", "SKI")
	suite.assertLocator(&domain.Article{Subject: subjects("10006000"), Place: []domain.Place{placeCHN}}, "X", "CHN")
}

func (suite *LocatorServiceTestSuite) TestCategoryTable() {
	suite.assertLocator(&domain.Article{Subject: subjects("04001000")}, "F", "FIN")
	suite.assertLocator(&domain.Article{}, "e", "ENT")
}

func (suite *LocatorServiceTestSuite) TestFormattedHeadline() {
	tests := []struct {
		name     string
		article  *domain.Article
		category string
		want     string
	}{
		{
			name:     "sport prefix",
			article:  &domain.Article{Headline: "This is test headline", Subject: subjects("15063000"), Place: []domain.Place{placeNSW}},
			category: "S",
			want:     "TTEN:This is test headline",
		},
		{
			name:     "legacy prefix kept",
			article:  &domain.Article{Headline: "VOL:This is test headline", Subject: subjects("15063000"), Place: []domain.Place{placeNSW}, AutoPublish: true},
			category: "S",
			want:     "VOL:This is test headline",
		},
		{
			name:     "place prefix",
			article:  &domain.Article{Headline: "This is test headline", Subject: subjects("04001000"), Place: []domain.Place{placeNSW}},
			category: "A",
			want:     "NSW:This is test headline",
		},
		{
			name:     "no place",
			article:  &domain.Article{Headline: "This is test headline", Subject: subjects("04001000")},
			category: "A",
			want:     "This is test headline",
		},
		{
			name: "racing not prefixed",
			article: &domain.Article{
				ID:           "urn:newsml:localhost:2018-07-19T15:25:10.511062:feabfc1d-7686-4d39-bc88-b91fc2bd5b1e",
				Source:       "BRA",
				Headline:     "Townsville gallops selections Saturday",
				AnpaCategory: []domain.Category{{QCode: "r", Name: "Racing (Turf)"}},
				Type:         domain.ContentTypeText,
				Subject:      []domain.Subject{{QCode: "15030000", Name: "horse racing, harness racing"}},
				BodyHTML:     "<pre>Townsville gallops selections Saturday</pre>",
			},
			category: "R",
			want:     "Townsville gallops selections Saturday",
		},
		{
			name:     "missing sport",
			article:  &domain.Article{Headline: "This is test headline", Subject: subjects("15073000"), Place: []domain.Place{placeNSW}},
			category: "S",
			want:     "SPO:This is test headline",
		},
		{
			name:     "category from article",
			article:  &domain.Article{Headline: "Shares up", AnpaCategory: []domain.Category{{QCode: "f"}}},
			category: "",
			want:     "FIN:Shares up",
		},
		{
			name:     "own prefix not doubled",
			article:  &domain.Article{Headline: "CHN:Trade talks", Place: []domain.Place{placeCHN}},
			category: "I",
			want:     "CHN:Trade talks",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Equal(tt.want, suite.service.FormattedHeadline(tt.article, tt.category))
		})
	}
}

func (suite *LocatorServiceTestSuite) TestVocabularyFailure() {
	vocab := new(MockVocabularyProvider)
	vocab.On("ListCategories", mock.Anything).Return(nil, errors.New("vocabulary unavailable"))

	svc, err := services.NewLocatorService(context.Background(), vocab, domain.DefaultLocatorRules())
	suite.Error(err)
	suite.Nil(svc)
}

func TestLocatorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LocatorServiceTestSuite))
}
