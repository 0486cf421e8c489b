package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dalu/pkg/respond"
	"dalu/pkg/statistics/service"
)

type StatisticsCtrl struct{ s service.StatisticsService }

func New(s service.StatisticsService) *StatisticsCtrl { return &StatisticsCtrl{s} }

// reply writes out or the error from fetching it.
func reply[T any](c echo.Context, out T, err error) error {
	if err != nil {
		return respond.Error(c, err, "not found")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatisticsCtrl) Overview(c echo.Context) error {
	out, err := h.s.Overview(c.Request().Context())
	return reply(c, out, err)
}

func (h *StatisticsCtrl) Crops(c echo.Context) error {
	out, err := h.s.Crops(c.Request().Context())
	return reply(c, out, err)
}

func (h *StatisticsCtrl) Animals(c echo.Context) error {
	out, err := h.s.Animals(c.Request().Context())
	return reply(c, out, err)
}

func (h *StatisticsCtrl) Flowers(c echo.Context) error {
	out, err := h.s.Flowers(c.Request().Context())
	return reply(c, out, err)
}

func (h *StatisticsCtrl) Charts(c echo.Context) error {
	out, err := h.s.Charts(c.Request().Context())
	return reply(c, out, err)
}

// Calendar defaults year to the current one.
func (h *StatisticsCtrl) Calendar(c echo.Context) error {
	year := time.Now().Year()
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 9999 {
			return respond.Detail(c, http.StatusUnprocessableEntity, "invalid year")
		}
		year = n
	}
	out, err := h.s.Calendar(c.Request().Context(), year)
	return reply(c, out, err)
}
