//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/handler/api"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockRooms        *queriesmock.MockRoomQueries
	mockReservations *queriesmock.MockReservationQueries
	handler          *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockRooms, s.mockReservations, paris)

	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/:id", s.handler.Get)
	s.router.GET("/rooms/:id/availability", s.handler.Availability)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: returns rooms in store order", func() {
		rooms := []*queries.RoomView{
			builder.NewRoomBuilder().WithName("Salle A").BuildView(),
			builder.NewRoomBuilder().WithName("Salle B").BuildView(),
		}
		s.mockRooms.EXPECT().List(gomock.Any()).Return(rooms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Salle A", response[0].Name)
		s.Equal(rooms[0].Capacity, response[0].Capacity)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockRooms.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	room := builder.NewRoomBuilder().BuildView()

	s.Run("success: returns the room", func() {
		s.mockRooms.EXPECT().GetByID(gomock.Any(), room.ID).Return(room, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+room.ID.String(), nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(room.ID, response.ID)
		s.InDelta(room.Area, response.Area, 0.001)
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockRooms.EXPECT().GetByID(gomock.Any(), room.ID).Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+room.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestAvailability() {
	roomID := uuid.New()
	base := "/rooms/" + roomID.String() + "/availability"

	s.Run("success: reports a free slot", func() {
		wantStart := time.Date(2026, 3, 2, 9, 0, 0, 0, paris)
		s.mockReservations.EXPECT().CheckAvailability(gomock.Any(), roomID, gomock.Any(), (*uuid.UUID)(nil)).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2026-03-02T09:00&end=2026-03-02T10:00", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.True(wantStart.Equal(response.StartTime))
	})

	s.Run("success: passes the excluded reservation through", func() {
		exclude := uuid.New()
		s.mockReservations.EXPECT().CheckAvailability(gomock.Any(), roomID, gomock.Any(), &exclude).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			base+"?start=2026-03-02T09:00&end=2026-03-02T10:00&exclude="+exclude.String(), nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("error: 400 on unparsable dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=02/03/2026&end=2026-03-02T10:00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 400 when a bound is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2026-03-02T09:00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 422 on a reversed range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2026-03-02T10:00&end=2026-03-02T09:00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}
