//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/comment"
	"cuponera-backend/internal/handler/api"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/pkg/ptr"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"
	"cuponera-backend/tests/common/builder"
	"cuponera-backend/tests/common/httptest"
	"cuponera-backend/tests/common/testutil"
	commandsmock "cuponera-backend/tests/mock/commands"
	queriesmock "cuponera-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommentHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockCommentCommands
	q        *queriesmock.MockCommentQueries
	clientID uuid.UUID
	actorID  uuid.UUID
}

func (s *CommentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockCommentCommands(s.mockCtrl)
	s.q = queriesmock.NewMockCommentQueries(s.mockCtrl)
	s.clientID = uuid.New()
	s.actorID = uuid.New()

	h := api.NewCommentHandler(s.cmds, s.q)
	s.router.GET("/actors/:id/comments", h.ListByActor)
	authed := s.router.Group("/", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.clientID)
		}
		c.Next()
	})
	authed.POST("/comments", h.Create)
	authed.PATCH("/comments/:id", h.Update)
	authed.DELETE("/comments/:id", h.Delete)
	authed.GET("/me/comments/:actorId", h.Mine)
	authed.PUT("/me/comments/:actorId", h.UpsertMine)
	authed.DELETE("/me/comments/:actorId", h.DeleteMine)
	authed.GET("/me/comments/:actorId/eligibility", h.Eligibility)
}

func (s *CommentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommentHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}

func rating(sum, count int, average string) actor.Rating {
	return actor.Rating{Sum: sum, Count: count, Average: decimal.RequireFromString(average)}
}

func (s *CommentHandlerTestSuite) result(rate int, text string, agg actor.Rating) *commands.CommentResult {
	return &commands.CommentResult{CommentID: uuid.New(), ActorID: s.actorID, ClientID: s.clientID, Rating: rate, Text: text, Aggregate: agg}
}

func (s *CommentHandlerTestSuite) TestCreate() {
	url := "/comments"
	reqBody := builder.NewCommentBuilder().With(func(b *builder.CommentBuilder) { b.ActorID = s.actorID }).WithRating(3).BuildCreateRequestDTO()

	s.Run("success: 201 with the new aggregate", func() {
		s.cmds.EXPECT().Create(gomock.Any(), s.actorID, s.clientID, 3, reqBody.Text).
			Return(s.result(3, reqBody.Text, rating(8, 2, "4.00")), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "token")

		var response resdto.CommentResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(3, response.Rating)
		s.Equal(2, response.Aggregate.Count)
		s.True(decimal.RequireFromString("4").Equal(response.Aggregate.Average), "average %s", response.Aggregate.Average)
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "rating below range", mutate: testutil.Field("rating", 0)},
			{name: "rating above range", mutate: testutil.Field("rating", 6)},
			{name: "missing actor", mutate: testutil.Field("actor_id", nil)},
			{name: "text too long", mutate: testutil.Field("text", strings.Repeat("a", 1001))},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: rule violations", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "no prior redemption", err: comment.ErrNotEligible, expectedStatus: http.StatusBadRequest},
			{name: "second comment", err: comment.ErrAlreadyCommented, expectedStatus: http.StatusConflict},
			{name: "unknown actor", err: actor.ErrNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.cmds.EXPECT().Create(gomock.Any(), s.actorID, s.clientID, 3, reqBody.Text).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.err.Error())
			})
		}
	})
}

func (s *CommentHandlerTestSuite) TestUpdate() {
	id := uuid.New()

	s.Run("only provided fields are edited", func() {
		s.cmds.EXPECT().Update(gomock.Any(), id, commands.CommentEdit{Rating: ptr.To(1)}).
			Return(s.result(1, "rico", rating(4, 2, "2.00")), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "PATCH", "/comments/"+id.String(), map[string]any{"rating": 1}, "token")

		var response resdto.CommentResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Rating)
	})

	s.Run("error: 404 on unknown comment", func() {
		s.cmds.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, comment.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "PATCH", "/comments/"+id.String(), map[string]any{"text": "editado"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "comment not found")
	})

	s.Run("error: 400 on out of range rating", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "PATCH", "/comments/"+id.String(), map[string]any{"rating": 9}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CommentHandlerTestSuite) TestDelete() {
	id := uuid.New()
	s.cmds.EXPECT().Delete(gomock.Any(), id).Return(actor.Rating{Average: decimal.Zero}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, "DELETE", "/comments/"+id.String(), nil, "token")

	var response resdto.CommentRemovedResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Zero(response.Aggregate.Count)
	s.True(response.Aggregate.Average.IsZero())

	rec = httptest.PerformRequest(s.T(), s.router, "DELETE", "/comments/nope", nil, "token")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
}

func (s *CommentHandlerTestSuite) TestListByActor() {
	page := &queries.CommentPage{Items: []*queries.CommentView{{Rating: 5}}, Total: 11, Page: 3, Limit: 5, TotalPages: 3}
	s.q.EXPECT().ListByActor(gomock.Any(), s.actorID, 3, 5).Return(page, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, "GET", "/actors/"+s.actorID.String()+"/comments?page=3&limit=5", nil, "")

	var response queries.CommentPage
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(11, response.Total)
	s.Equal(3, response.TotalPages)

	rec = httptest.PerformRequest(s.T(), s.router, "GET", "/actors/"+s.actorID.String()+"/comments?limit=500", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
}

func (s *CommentHandlerTestSuite) TestMine() {
	url := "/me/comments/" + s.actorID.String()

	s.Run("returns the caller's comment", func() {
		view := &queries.CommentView{ID: uuid.New(), Rating: 4, Text: "buen café"}
		s.q.EXPECT().Mine(gomock.Any(), s.actorID, s.clientID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")

		var response queries.CommentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("404 when the caller has not commented", func() {
		s.q.EXPECT().Mine(gomock.Any(), s.actorID, s.clientID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "comment not found")
	})

	s.Run("401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *CommentHandlerTestSuite) TestUpsertMine() {
	url := "/me/comments/" + s.actorID.String()
	s.cmds.EXPECT().UpsertMine(gomock.Any(), s.actorID, s.clientID, 5, "volveré").
		Return(s.result(5, "volveré", rating(5, 1, "5.00")), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, "PUT", url, map[string]any{"rating": 5, "text": "volveré"}, "token")

	var response resdto.CommentResultResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(1, response.Aggregate.Count)

	rec = httptest.PerformRequest(s.T(), s.router, "PUT", url, map[string]any{"text": "sin nota"}, "token")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
}

func (s *CommentHandlerTestSuite) TestDeleteMine() {
	url := "/me/comments/" + s.actorID.String()

	s.cmds.EXPECT().DeleteMine(gomock.Any(), s.actorID, s.clientID).Return(rating(3, 1, "3.00"), nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, "DELETE", url, nil, "token")
	var response resdto.CommentRemovedResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(1, response.Aggregate.Count)

	s.cmds.EXPECT().DeleteMine(gomock.Any(), s.actorID, s.clientID).Return(actor.Rating{}, comment.ErrNotFound).Times(1)
	rec = httptest.PerformRequest(s.T(), s.router, "DELETE", url, nil, "token")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "comment not found")
}

func (s *CommentHandlerTestSuite) TestEligibility() {
	s.q.EXPECT().Eligibility(gomock.Any(), s.actorID, s.clientID).Return(&queries.CommentEligibility{Eligible: true}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, "GET", "/me/comments/"+s.actorID.String()+"/eligibility", nil, "token")

	var response queries.CommentEligibility
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.True(response.Eligible)
	s.False(response.HasComment)
	s.Nil(response.Comment)
}
