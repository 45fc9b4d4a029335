package app

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/kinosvet/cinema-booking/api"
	"github.com/kinosvet/cinema-booking/internal/domain"
	"github.com/kinosvet/cinema-booking/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScreeningsTestSuite struct {
	suite.Suite
	app           *Application
	screeningRepo *mocks.MockScreeningRepo
}

func (s *ScreeningsTestSuite) SetupTest() {
	s.screeningRepo = new(mocks.MockScreeningRepo)

	s.app = newTestApplication(func(a *Application) {
		a.screeningRepo = s.screeningRepo
	})
}

func TestScreeningsSuite(t *testing.T) {
	suite.Run(t, new(ScreeningsTestSuite))
}

func (s *ScreeningsTestSuite) TestCreateScreening() {
	tests := []struct {
		name           string
		body           api.CreateScreeningRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "should create screening in the future",
			body: api.CreateScreeningRequest{
				MovieId:   1,
				HallId:    2,
				Date:      "2100-01-01",
				StartTime: "19:30",
			},
			setupMocks: func() {
				s.screeningRepo.On("Create", mock.Anything, mock.MatchedBy(func(sc *domain.Screening) bool {
					return sc.MovieID == 1 &&
						sc.HallID == 2 &&
						sc.StartTime == 19*time.Hour+30*time.Minute
				})).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Screening).ID = 9
				})

				s.screeningRepo.On("GetWithHall", mock.Anything, 9).Return(&domain.ScreeningDetails{
					Screening: domain.Screening{
						ID:        9,
						MovieID:   1,
						HallID:    2,
						Date:      time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
						StartTime: 19*time.Hour + 30*time.Minute,
					},
					Hall:          domain.Hall{ID: 2, Name: "Blue Hall"},
					MovieTitle:    "Solaris",
					MovieDuration: 167,
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "should fail when screening is in the past",
			body: api.CreateScreeningRequest{
				MovieId:   1,
				HallId:    2,
				Date:      "2000-01-01",
				StartTime: "19:30",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "Screening must be scheduled in the future",
		},
		{
			name: "should fail when referenced movie or hall is missing",
			body: api.CreateScreeningRequest{
				MovieId:   99,
				HallId:    2,
				Date:      "2100-01-01",
				StartTime: "19:30",
			},
			setupMocks: func() {
				s.screeningRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "The referenced movie or hall does not exist",
		},
		{
			name: "should fail validation on malformed date",
			body: api.CreateScreeningRequest{
				MovieId:   1,
				HallId:    2,
				Date:      "01.01.2100",
				StartTime: "19:30",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.screeningRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w := executeRequest(s.T(), s.app, http.MethodPost, "/screenings", tt.body)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp api.Screening
				err := json.NewDecoder(w.Body).Decode(&resp)
				s.Require().NoError(err)

				s.Equal(9, resp.Id)
				s.Equal("2100-01-01", resp.Date)
				s.Equal("19:30", resp.StartTime)
				s.Equal("Solaris", resp.Movie.Title)
				s.Equal("Blue Hall", resp.Hall.Name)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *ScreeningsTestSuite) TestListScreenings() {
	s.screeningRepo.On("GetAll", mock.Anything).Return([]domain.ScreeningDetails{
		{
			Screening: domain.Screening{
				ID:        9,
				MovieID:   1,
				HallID:    2,
				Date:      time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
				StartTime: 19*time.Hour + 30*time.Minute,
			},
			Hall:          domain.Hall{ID: 2, Name: "Blue Hall"},
			MovieTitle:    "Solaris",
			MovieDuration: 167,
		},
	}, nil)

	w := executeRequest(s.T(), s.app, http.MethodGet, "/screenings", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp api.ScreeningListResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	s.Require().NoError(err)

	s.Require().Len(resp.Screenings, 1)
	s.Equal("19:30", resp.Screenings[0].StartTime)
}

func (s *ScreeningsTestSuite) TestDeleteScreening() {
	s.screeningRepo.On("Delete", mock.Anything, 9).Return(nil)

	w := executeRequest(s.T(), s.app, http.MethodDelete, "/screenings/9", nil)

	s.Equal(http.StatusOK, w.Code)
	s.screeningRepo.AssertExpectations(s.T())
}
