//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"promocode-service/internal/handler/api"
	resdto "promocode-service/internal/handler/dto/response"
	"promocode-service/internal/usecase/commands"
	"promocode-service/internal/usecase/queries"
	"promocode-service/tests/common/builder"
	"promocode-service/tests/common/httptest"
	commandsmock "promocode-service/tests/mock/commands"
	queriesmock "promocode-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockProfileCommands
	q        *queriesmock.MockUserQueries
	userID   uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.q = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewProfileHandler(s.cmds, s.q)

	g := s.router.Group("/user", asSubject(s.userID))
	g.GET("/profile", h.Get)
	g.PATCH("/profile", h.Patch)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) TestGet() {
	view := builder.NewUserBuilder().BuildProfileView()
	s.q.EXPECT().GetProfile(gomock.Any(), s.userID).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/profile", nil, "")

	var response resdto.ProfileResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(view.Email, response.Email)
	s.Equal(23, response.Other.Age)
	s.Equal("ru", response.Other.Country)
	s.NotContains(rec.Body.String(), "password")
}

func (s *ProfileHandlerTestSuite) TestPatch() {
	s.Run("success: returns the updated profile", func() {
		name := "Pyotr"
		s.cmds.EXPECT().UpdateProfile(gomock.Any(), s.userID, commands.UpdateProfileRequest{Name: &name}).Return(nil).Times(1)
		view := builder.NewUserBuilder().WithName("Pyotr", "Petrov").BuildProfileView()
		s.q.EXPECT().GetProfile(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/user/profile", map[string]any{"name": name}, "")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Pyotr", response.Name)
	})

	s.Run("error: validation", func() {
		for _, body := range []map[string]any{
			{"name": ""},
			{"avatar_url": "not a url"},
			{"password": "short"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/user/profile", body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: account gone", func() {
		s.cmds.EXPECT().UpdateProfile(gomock.Any(), s.userID, gomock.Any()).Return(commands.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/user/profile", map[string]any{"surname": "Ivanov"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: profile lookup fails after update", func() {
		s.cmds.EXPECT().UpdateProfile(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)
		s.q.EXPECT().GetProfile(gomock.Any(), s.userID).Return(nil, queries.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/user/profile", map[string]any{"surname": "Ivanov"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
