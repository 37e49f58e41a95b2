//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/api"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/common/testutil"
	commandsmock "room-reservation/tests/mock/commands"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var paris = time.FixedZone("CET", 3600)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler

	userID uuid.UUID
	role   user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, paris)

	s.userID = uuid.New()
	s.role = user.RoleSalarie

	authed := s.router.Group("")
	authed.Use(func(c *gin.Context) {
		// stands in for RequireAuth
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", s.role)
		}
		c.Next()
	})
	authed.POST("/reservations", s.handler.Create)
	authed.GET("/reservations/upcoming", s.handler.ListUpcoming)
	authed.GET("/reservations/history", s.handler.ListHistory)
	authed.GET("/reservations/:id", s.handler.Get)
	authed.PUT("/reservations/:id", s.handler.Update)
	authed.DELETE("/reservations/:id", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) requester() reservation.Requester {
	return reservation.Requester{ID: s.userID, Privileged: s.role.IsPrivileged()}
}

func morning() (time.Time, time.Time) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, paris)
	return start, start.Add(90 * time.Minute)
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	start, end := morning()
	b := builder.NewReservationBuilder().WithOwner(s.userID).WithSlot(start, end)
	reqBody := b.BuildCreateRequestDTO(paris)
	created := b.BuildDomain()
	view := b.BuildView()

	s.Run("success: returns 201 with the stored reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateReservationInput) (*reservation.Reservation, error) {
				s.Equal(b.RoomID, in.RoomID)
				s.Equal(s.userID, in.OwnerID)
				s.True(start.Equal(in.Start), "start %s", in.Start)
				s.True(end.Equal(in.End), "end %s", in.End)
				return created, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), created.ID(), s.requester()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(string(reservation.StatusActive), response.Status)
		s.True(start.Equal(response.StartTime))
		_, offset := response.StartTime.Zone()
		s.Equal(3600, offset)
	})

	s.Run("error: 400 on malformed requests", func() {
		testCases := []struct {
			name   string
			mutate testutil.Mutation
			msg    string
		}{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil), msg: "Invalid request format"},
			{name: "room_id is not a uuid", mutate: testutil.Field("room_id", "salle-1"), msg: "Invalid request format"},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil), msg: "Invalid request format"},
			{name: "start_time with seconds", mutate: testutil.Field("start_time", "2026-03-02T09:00:00"), msg: "Invalid date format"},
			{name: "end_time not a date", mutate: testutil.Field("end_time", "tomorrow"), msg: "Invalid date format"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 422 when end is not after start", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Slot(reqBody.StartTime, reqBody.StartTime))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "End time must be after start time")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "slot already taken",
				commandsError:  errs.Mark(errors.New("overlap"), commands.ErrRoomUnavailable),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room is already booked",
			},
			{
				name:           "owner vanished is not reported as a missing room",
				commandsError:  errs.Mark(errors.New("fk"), commands.ErrOwnerNotFound),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 500 without an authenticated principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().WithOwner(s.userID).AsCancelled().BuildView()

	s.Run("success: cancelled reservations are still readable", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.requester()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(reservation.StatusCancelled), response.Status)
		s.NotNil(response.CancelledAt)
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when the reservation is not visible", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.requester()).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdate() {
	start, end := morning()
	b := builder.NewReservationBuilder().WithOwner(s.userID).WithSlot(start.Add(time.Hour), end.Add(time.Hour))
	id := b.ID
	url := "/reservations/" + id.String()
	body := map[string]any{
		"start_time": "2026-03-02T10:00",
		"end_time":   "2026-03-02T11:30",
	}

	s.Run("success: keeps the room when room_id is omitted", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.UpdateReservationInput) (*reservation.Reservation, error) {
				s.Equal(id, in.ReservationID)
				s.Equal(s.requester(), in.Requester)
				s.Nil(in.RoomID)
				s.True(start.Add(time.Hour).Equal(in.Start))
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.requester()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: moves to another room", func() {
		otherRoom := uuid.New()
		withRoom := testutil.DtoMap(s.T(), body, testutil.Field("room_id", otherRoom.String()))

		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.UpdateReservationInput) (*reservation.Reservation, error) {
				s.Require().NotNil(in.RoomID)
				s.Equal(otherRoom, *in.RoomID)
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.requester()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, withRoom, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not the owner", commandsError: commands.ErrForbidden, expectedStatus: http.StatusForbidden},
			{name: "cancelled or missing", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound},
			{name: "slot already taken", commandsError: commands.ErrRoomUnavailable, expectedStatus: http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), commands.CancelReservationInput{
			ReservationID: id,
			Requester:     s.requester(),
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: second cancel is 404", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 403 for someone else's reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ReservationHandlerTestSuite) TestLists() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().WithOwner(s.userID).BuildView(),
	}
	otherOwner := uuid.New()

	s.Run("success: employees are scoped to their own reservations", func() {
		s.role = user.RoleSalarie
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), queries.ListFilter{OwnerID: &s.userID}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/upcoming?owner_id="+otherOwner.String(), nil, "token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: admins may filter by owner", func() {
		s.role = user.RoleAdmin
		s.mockQueries.EXPECT().ListCanceledOrPast(gomock.Any(), queries.ListFilter{OwnerID: &otherOwner}).
			Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/history?owner_id="+otherOwner.String(), nil, "token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("success: admins without a filter see everyone", func() {
		s.role = user.RoleAdmin
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), queries.ListFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/upcoming", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed owner filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/upcoming?owner_id=nope", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid owner filter")
	})
}
