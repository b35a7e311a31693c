package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dcastilloq/reservation-service/internal/errs"
	"github.com/dcastilloq/reservation-service/internal/model"
	"github.com/dcastilloq/reservation-service/pkg/validate"
)

type Handler struct {
	reservationSvc ReservationService
	log            *zap.Logger
}

func New(reservationSvc ReservationService, log *zap.Logger) *Handler {
	return &Handler{
		reservationSvc: reservationSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		newRequestIDMW(),
		newRateLimiterMW(apiRPS),
	)

	api.GET("/reservaciones", h.ListReservations)
	api.GET("/reservaciones/nombre/:nombre", h.ListReservationsByName)
	api.POST("/reservaciones", h.CreateReservation)
	api.PUT("/reservaciones/:id", h.UpdateReservation)
	api.DELETE("/reservaciones/fecha/:fecha", h.DeleteReservationByDate)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListReservations(c echo.Context) error {
	ctx := c.Request().Context()
	rsv, err := h.reservationSvc.GetReservations(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) ListReservationsByName(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("nombre")
	rsv, err := h.reservationSvc.GetReservationsByName(ctx, name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.Reservation
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if _, err := h.reservationSvc.CreateReservation(ctx, req); err != nil {
		if errors.Is(err, errs.ErrDateAlreadyReserved) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, "reservation registered successfully")
}

func (h *Handler) UpdateReservation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req model.Reservation
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if _, err := h.reservationSvc.UpdateReservation(ctx, id, req); err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) || errors.Is(err, errs.ErrDateAlreadyReserved) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, "reservation updated successfully")
}

func (h *Handler) DeleteReservationByDate(c echo.Context) error {
	date, err := model.ParseDate(c.Param("fecha"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	ctx := c.Request().Context()
	if err := h.reservationSvc.DeleteReservationByDate(ctx, date); err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, "reservation deleted successfully")
}
