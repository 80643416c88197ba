package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"worldpop/internal/platform/logger"
	"worldpop/internal/population/handler/mocks"
	"worldpop/internal/population/models"
	"worldpop/internal/population/store"
	dErrors "worldpop/pkg/domain-errors"
)

type PopulationHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestPopulationHandlerSuite(t *testing.T) {
	suite.Run(t, new(PopulationHandlerSuite))
}

func (s *PopulationHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.service, logger.Discard()).Register(s.router)
}

func (s *PopulationHandlerSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PopulationHandlerSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *PopulationHandlerSuite) TestBreakdownShape() {
	s.service.EXPECT().CountryBreakdown(gomock.Any()).Return([]models.Summary{{
		Name:            "Overcounted",
		TotalPopulation: 500000,
		Split: &models.Split{
			CityPopulation:    700000,
			NonCityPopulation: -200000,
			CityPercentage:    140,
			NonCityPercentage: -40,
		},
	}}, nil)

	w := s.get("/population/countries")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/json", w.Header().Get("Content-Type"))
	s.JSONEq(`{
		"level": "country",
		"results": [{
			"name": "Overcounted",
			"total_population": 500000,
			"city_population": 700000,
			"non_city_population": -200000,
			"city_percentage": 140,
			"non_city_percentage": -40
		}]
	}`, w.Body.String())
}

func (s *PopulationHandlerSuite) TestBreakdownRoutes() {
	s.service.EXPECT().ContinentBreakdown(gomock.Any()).Return([]models.Summary{}, nil)
	s.service.EXPECT().RegionBreakdown(gomock.Any()).Return([]models.Summary{}, nil)

	for path, level := range map[string]string{
		"/population/continents": "continent",
		"/population/regions":    "region",
	} {
		w := s.get(path)
		s.Equal(http.StatusOK, w.Code, path)
		s.JSONEq(`{"level":"`+level+`","results":[]}`, w.Body.String(), path)
	}
}

func (s *PopulationHandlerSuite) TestWorld() {
	s.service.EXPECT().World(gomock.Any()).Return([]models.Summary{{Name: "World", TotalPopulation: 6078749450}}, nil)

	w := s.get("/population/world")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"level":"world","results":[{"name":"World","total_population":6078749450}]}`, w.Body.String())
}

func (s *PopulationHandlerSuite) TestLookup() {
	s.Run("decodes the name", func() {
		s.service.EXPECT().Population(gomock.Any(), models.LevelCity, "São Paulo").
			Return([]models.Summary{{Name: "São Paulo", TotalPopulation: 9968485}}, nil)

		w := s.get("/population/city/S%C3%A3o%20Paulo")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"level":"city","results":[{"name":"São Paulo","total_population":9968485}]}`, w.Body.String())
	})

	s.Run("names are decoded exactly once", func() {
		cases := []struct {
			target string
			level  models.Level
			name   string
		}{
			{"/population/city/100%25", models.LevelCity, "100%"},
			{"/population/city/Caf%2541", models.LevelCity, "Caf%41"},
			{"/population/district/North%2FSouth", models.LevelDistrict, "North/South"},
		}
		for _, tc := range cases {
			s.service.EXPECT().Population(gomock.Any(), tc.level, tc.name).Return([]models.Summary{}, nil)

			w := s.get(tc.target)

			s.Equal(http.StatusOK, w.Code, tc.target)
		}
	})

	s.Run("unknown name is an empty result", func() {
		s.service.EXPECT().Population(gomock.Any(), models.LevelCountry, "Unknownland").Return([]models.Summary{}, nil)

		w := s.get("/population/country/Unknownland")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"level":"country","results":[]}`, w.Body.String())
	})

	s.Run("unknown level is rejected before the service", func() {
		w := s.get("/population/province/Ontario")

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("validation", s.decode(w)["error"])
	})

	s.Run("service validation error", func() {
		s.service.EXPECT().Population(gomock.Any(), models.LevelDistrict, " ").
			Return(nil, dErrors.New(dErrors.CodeValidation, "district name is required"))

		w := s.get("/population/district/%20")

		s.Equal(http.StatusBadRequest, w.Code)
		body := s.decode(w)
		s.Equal("validation", body["error"])
		s.Equal("district name is required", body["error_description"])
	})
}

func (s *PopulationHandlerSuite) TestErrors() {
	fetchErr := &store.FetchError{Set: store.SetCities, Err: errors.New("connection refused")}
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unavailable", dErrors.Wrap(fetchErr, dErrors.CodeUnavailable, "population data is unavailable"), http.StatusServiceUnavailable, "unavailable"},
		{"timeout", dErrors.Wrap(fetchErr, dErrors.CodeTimeout, "population report timed out"), http.StatusGatewayTimeout, "timeout"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().ContinentBreakdown(gomock.Any()).Return(nil, tc.err)

			w := s.get("/population/continents")

			s.Equal(tc.status, w.Code)
			body := s.decode(w)
			s.Equal(tc.code, body["error"])
			if tc.code == "internal_error" {
				s.NotContains(body, "error_description")
			}
		})
	}
}

func (s *PopulationHandlerSuite) TestLanguages() {
	s.Run("default targets", func() {
		s.service.EXPECT().Languages(gomock.Any(), []string{}).Return([]models.LanguageSummary{
			{Language: "Chinese", Speakers: 1175353360, WorldPercentage: 19.34},
		}, nil)

		w := s.get("/languages")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"level":"language","results":[{"language":"Chinese","speakers":1175353360,"world_percentage":19.34}]}`, w.Body.String())
	})

	s.Run("explicit targets", func() {
		s.service.EXPECT().Languages(gomock.Any(), []string{"Hindi", "Arabic"}).Return([]models.LanguageSummary{}, nil)

		w := s.get("/languages?languages=Hindi,%20Arabic,Hindi")

		s.Equal(http.StatusOK, w.Code)
	})
}
