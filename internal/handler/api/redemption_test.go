//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/domain/redemption"
	"cuponera-backend/internal/handler/api"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/pkg/localtime"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"
	"cuponera-backend/tests/common/httptest"
	commandsmock "cuponera-backend/tests/mock/commands"
	queriesmock "cuponera-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// instant matches a time.Time regardless of its monotonic reading.
type instant time.Time

func (i instant) Matches(x any) bool {
	t, ok := x.(time.Time)
	return ok && t.Equal(time.Time(i))
}

func (i instant) String() string { return fmt.Sprintf("is %s", time.Time(i)) }

// openEnded matches a range starting at from with no upper bound.
type openEnded time.Time

func (o openEnded) Matches(x any) bool {
	r, ok := x.(queries.DateRange)
	return ok && r.To == nil && r.From != nil && r.From.Equal(time.Time(o))
}

func (o openEnded) String() string { return fmt.Sprintf("from %s, open end", time.Time(o)) }

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockRedemptionCommands
	q        *queriesmock.MockRedemptionQueries
	actorID  uuid.UUID
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.q = queriesmock.NewMockRedemptionQueries(s.mockCtrl)
	s.actorID = uuid.New()

	h := api.NewRedemptionHandler(s.cmds, s.q)
	authed := s.router.Group("/", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actorID)
		}
		c.Next()
	})
	authed.POST("/redemptions", h.Register)
	authed.POST("/redemptions/validate", h.Validate)
	authed.GET("/reports/redemptions", h.ListByDateRange)
	authed.GET("/me/redemptions", h.ListMine)
	authed.GET("/redemptions/actors/:id", h.ListByActor)
	authed.GET("/coupons/:id/redemptions/count", h.CountByCoupon)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func (s *RedemptionHandlerTestSuite) TestRegister() {
	url := "/redemptions"
	couponID := uuid.New()
	body := map[string]any{"coupon_id": couponID}

	s.Run("success: 201 with the stored record", func() {
		scannedAt := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
		res := &commands.ScanResult{RedemptionID: uuid.New(), CouponID: couponID, ActorID: s.actorID, GroupID: uuid.New(), ScannedAt: scannedAt}
		s.cmds.EXPECT().RegisterScan(gomock.Any(), couponID, s.actorID).Return(res, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "token")

		var response resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(res.RedemptionID, response.RedemptionID)
		s.Equal(res.GroupID, response.GroupID)
		s.True(scannedAt.Equal(response.ScannedAt))
	})

	s.Run("error: 401 without an authenticated actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 400 on malformed body", func() {
		for name, payload := range map[string]any{
			"missing coupon": map[string]any{},
			"not a uuid":     map[string]any{"coupon_id": "cupon-7"},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, payload, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: rule violations map to their kind", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedKind   string
		}{
			{name: "unknown coupon", err: coupon.ErrNotFound, expectedStatus: http.StatusNotFound, expectedKind: "NotFound"},
			{name: "already redeemed by group", err: redemption.ErrAlreadyRedeemed, expectedStatus: http.StatusBadRequest, expectedKind: "InvalidArgument"},
			{name: "city mismatch", err: redemption.ErrCityMismatch, expectedStatus: http.StatusBadRequest, expectedKind: "InvalidArgument"},
			{name: "expired", err: coupon.ErrExpired, expectedStatus: http.StatusUnprocessableEntity, expectedKind: "InvalidState"},
			{name: "ceiling reached", err: redemption.ErrCeilingReached, expectedStatus: http.StatusUnprocessableEntity, expectedKind: "InvalidState"},
			{name: "lost the race", err: redemption.ErrDuplicateRedemption, expectedStatus: http.StatusConflict, expectedKind: "Conflict"},
			{name: "storage failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedKind: "Internal"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.cmds.EXPECT().RegisterScan(gomock.Any(), couponID, s.actorID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "token")

				s.Equal(tc.expectedStatus, rec.Code)
				var response struct {
					Error struct {
						Message string `json:"message"`
						Kind    string `json:"kind"`
					} `json:"error"`
				}
				s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &response))
				s.Equal(tc.expectedKind, response.Error.Kind)
				if tc.expectedStatus == http.StatusInternalServerError {
					s.Equal("Internal server error", response.Error.Message)
				} else {
					s.Equal(tc.err.Error(), response.Error.Message)
				}
			})
		}
	})
}

func (s *RedemptionHandlerTestSuite) TestValidate() {
	couponID := uuid.New()
	s.cmds.EXPECT().ValidateBeforeRegister(gomock.Any(), couponID, s.actorID).
		Return(&commands.ScanValidation{Valid: false, Message: redemption.ErrAlreadyRedeemed.Error()}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, "POST", "/redemptions/validate", map[string]any{"coupon_id": couponID}, "token")

	var response resdto.ScanValidationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.False(response.Valid)
	s.Equal(redemption.ErrAlreadyRedeemed.Error(), response.Message)
}

func (s *RedemptionHandlerTestSuite) TestListByDateRange() {
	s.Run("success: dates are read as local days", func() {
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, localtime.Zone)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, localtime.Zone)
		rows := []*queries.RedemptionView{{ID: uuid.New(), Sequence: 3}}
		s.q.EXPECT().ListByDateRange(gomock.Any(), instant(start), instant(end)).Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/reports/redemptions?start=2025-03-01&end=2025-03-31", nil, "token")

		var response resdto.ItemsResponse[queries.RedemptionView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(3, response.Items[0].Sequence)
	})

	s.Run("success: empty result is an empty list", func() {
		s.q.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/reports/redemptions?start=2025-03-01&end=2025-03-01", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on missing or invalid bounds", func() {
		for _, query := range []string{"", "?start=2025-03-01", "?start=ayer&end=2025-03-01"} {
			rec := httptest.PerformRequest(s.T(), s.router, "GET", "/reports/redemptions"+query, nil, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 400 on reversed range", func() {
		s.q.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, localtime.ErrInvalidRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/reports/redemptions?start=2025-03-31&end=2025-03-01", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, localtime.ErrInvalidRange.Error())
	})
}

func (s *RedemptionHandlerTestSuite) TestListMine() {
	s.Run("open bounds when omitted", func() {
		s.q.EXPECT().ListByGroup(gomock.Any(), s.actorID, queries.DateRange{}).Return([]*queries.RedemptionView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/me/redemptions", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("start only", func() {
		from := time.Date(2025, 3, 5, 0, 0, 0, 0, localtime.Zone)
		s.q.EXPECT().ListByGroup(gomock.Any(), s.actorID, openEnded(from)).Return([]*queries.RedemptionView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/me/redemptions?start=2025-03-05", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *RedemptionHandlerTestSuite) TestListByActor() {
	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/redemptions/actors/local-1", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("success", func() {
		actorID := uuid.New()
		s.q.EXPECT().ListByActor(gomock.Any(), actorID).Return([]*queries.RedemptionView{{ActorID: actorID}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/redemptions/actors/"+actorID.String(), nil, "token")

		var response resdto.ItemsResponse[queries.RedemptionView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})
}

func (s *RedemptionHandlerTestSuite) TestCountByCoupon() {
	couponID := uuid.New()
	s.q.EXPECT().CountByCoupon(gomock.Any(), couponID).Return(2, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, "GET", "/coupons/"+couponID.String()+"/redemptions/count", nil, "token")

	var response resdto.CountResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(2, response.Count)
}
