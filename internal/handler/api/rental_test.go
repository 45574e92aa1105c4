//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"boxrent/internal/domain/rental"
	"boxrent/internal/domain/user"
	"boxrent/internal/handler/api"
	resdto "boxrent/internal/handler/dto/response"
	"boxrent/internal/pkg/errs"
	"boxrent/internal/usecase/commands"
	"boxrent/internal/usecase/queries"
	"boxrent/tests/common/builder"
	"boxrent/tests/common/httptest"
	"boxrent/tests/common/testutil"
	commandsmock "boxrent/tests/mock/commands"
	queriesmock "boxrent/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler
	actorID      uuid.UUID
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: every request arrives authenticated as admin.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	})

	rentals := s.router.Group("/rentals")
	{
		rentals.POST("", s.handler.CreateRental)
		rentals.GET("", s.handler.ListRentals)
		rentals.POST("/conflicts/preview", s.handler.PreviewConflicts)
		rentals.GET("/:id", s.handler.GetRental)
		rentals.PATCH("/:id", s.handler.UpdateRental)
		rentals.POST("/:id/cancel", s.handler.CancelRental)
		rentals.POST("/:id/renew", s.handler.RenewRental)
		rentals.DELETE("/:id", s.handler.RemoveRental)
	}
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func conflictGroups(resourceID uuid.UUID) []rental.ConflictGroup {
	return []rental.ConflictGroup{
		{
			Weekday:        time.Monday,
			ResourceID:     resourceID,
			RequestedSlots: []rental.ScheduleSlot{builder.MustSlot(time.Monday, "10:00", "13:00", true)},
			ExistingSlots:  []rental.ScheduleSlot{builder.MustSlot(time.Monday, "09:00", "12:00", true)},
			RentalIDs:      []uuid.UUID{uuid.New()},
			SpanStart:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			SpanEnd:        time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (s *RentalHandlerTestSuite) TestCreateRental() {
	url := "/rentals"

	reqBody := builder.NewRentalBuilder().BuildCreateDTO()
	returnView := builder.NewRentalBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.ResourceName, response.ResourceName)
		s.Len(response.Schedule, 1)
	})

	s.Run("error: 409 Conflict carries grouped detail", func() {
		groups := conflictGroups(reqBody.ResourceID)
		conflictErr := errs.Mark(&commands.ConflictError{Groups: groups}, commands.ErrRentalConflict)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, conflictErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())

		var body struct {
			Error     string                         `json:"error"`
			Conflicts []resdto.ConflictGroupResponse `json:"conflicts"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Require().Len(body.Conflicts, 1)
		s.Equal("Monday", body.Conflicts[0].Weekday)
		s.Equal(reqBody.ResourceID, body.Conflicts[0].ResourceID)
		s.Equal("10:00", body.Conflicts[0].RequestedSlots[0].StartTime)
		s.Equal("09:00", body.Conflicts[0].ExistingSlots[0].StartTime)
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: 403 Forbidden for disallowed actor", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 Bad Request for domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation")
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing resource_id", mutate: testutil.Field("resource_id", nil)},
			{name: "missing slots", mutate: testutil.Field("slots", nil)},
			{name: "empty slots", mutate: testutil.Field("slots", []any{})},
			{name: "negative price", mutate: testutil.Field("monthly_price_cents", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestGetRental() {
	returnView := builder.NewRentalBuilder().BuildReadModel()
	url := "/rentals/" + returnView.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.TenantEmail, response.TenantEmail)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(nil, queries.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental not found")
	})

	s.Run("error: 403 Forbidden for foreign rental", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental ID")
	})
}

func (s *RentalHandlerTestSuite) TestListRentals() {
	items := []*queries.RentalListItem{builder.NewRentalBuilder().BuildListItem()}

	s.Run("success: no filters lists everything", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals", nil, "")

		var response []resdto.RentalListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("success: status=active filter", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?status=active", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: tenant filter", func() {
		tenantID := uuid.New()
		s.mockQueries.EXPECT().ListByTenant(gomock.Any(), tenantID).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?tenant_id="+tenantID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: resource filter", func() {
		resourceID := uuid.New()
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), resourceID).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?resource_id="+resourceID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: expiring filter", func() {
		s.mockQueries.EXPECT().ListExpiringWithin(gomock.Any(), 30).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?expiring_within_days=30", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for malformed tenant ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?tenant_id=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid tenant ID")
	})

	s.Run("error: 400 Bad Request for non-numeric days", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?expiring_within_days=soon", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "expiring_within_days")
	})
}

func (s *RentalHandlerTestSuite) TestUpdateRental() {
	returnView := builder.NewRentalBuilder().BuildReadModel()
	url := "/rentals/" + returnView.ID.String()
	newTotal := int64(60000)
	reqBody := map[string]any{"total_price_cents": newTotal}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 422 Unprocessable Entity for illegal status transition", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "EXPIRED"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Illegal status transition")
	})

	s.Run("error: 409 Conflict when the new footprint collides", func() {
		conflictErr := errs.Mark(&commands.ConflictError{Groups: conflictGroups(returnView.ResourceID)}, commands.ErrRentalConflict)
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, conflictErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	})
}

func (s *RentalHandlerTestSuite) TestCancelRental() {
	returnView := builder.NewRentalBuilder().BuildReadModel()
	url := "/rentals/" + returnView.ID.String() + "/cancel"
	reqBody := map[string]any{"reason": "tenant moved out"}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), returnView.ID, "tenant moved out").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 Unprocessable Entity when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), returnView.ID, "tenant moved out").
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Illegal status transition")
	})
}

func (s *RentalHandlerTestSuite) TestRenewRental() {
	returnView := builder.NewRentalBuilder().BuildReadModel()
	url := "/rentals/" + returnView.ID.String() + "/renew"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Renew(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 422 Unprocessable Entity for custom duration class", func() {
		s.mockCommands.EXPECT().Renew(gomock.Any(), gomock.Any(), returnView.ID).
			Return(nil, commands.ErrUnsupportedRenewal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "does not support renewal")
	})

	s.Run("error: 409 Conflict when the extension collides", func() {
		conflictErr := errs.Mark(&commands.ConflictError{Groups: conflictGroups(returnView.ResourceID)}, commands.ErrRentalConflict)
		s.mockCommands.EXPECT().Renew(gomock.Any(), gomock.Any(), returnView.ID).
			Return(nil, conflictErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	})
}

func (s *RentalHandlerTestSuite) TestRemoveRental() {
	id := uuid.New()
	url := "/rentals/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 422 Unprocessable Entity for an active rental", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), gomock.Any(), id).
			Return(commands.ErrRemoveActiveRental).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Active rental cannot be removed")
	})

	s.Run("error: 404 Not Found for unknown rental", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), gomock.Any(), id).
			Return(commands.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental not found")
	})
}

func (s *RentalHandlerTestSuite) TestPreviewConflicts() {
	url := "/rentals/conflicts/preview"

	candidate := builder.NewRentalBuilder().BuildCreateDTO()
	reqBody := map[string]any{"candidates": []any{testutil.DtoMap(s.T(), candidate)}}

	s.Run("success: returns the grouped conflicts", func() {
		groups := conflictGroups(candidate.ResourceID)
		s.mockCommands.EXPECT().PreviewConflicts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(groups, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response []resdto.ConflictGroupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Monday", response[0].Weekday)
	})

	s.Run("success: a clear schedule yields an empty list", func() {
		s.mockCommands.EXPECT().PreviewConflicts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response []resdto.ConflictGroupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request without candidates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"candidates": []any{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
