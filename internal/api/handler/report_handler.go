package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aismap/position-api/internal/core/domain"
	"github.com/aismap/position-api/internal/core/ports"
)

// helloBody is the fixed liveness reply of GET /hello.
const helloBody = "world!"

// ReportHandler serves position reports over HTTP.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Hello handles GET /hello. It never touches the database.
//
// @Summary      Liveness check
// @Tags         probes
// @Produce      plain
// @Success      200  {string}  string  "world!"
// @Router       /hello [get]
func (h *ReportHandler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, helloBody)
}

// Get handles GET /ship/:id.
//
// A vessel without a stored report is not an error: the body is JSON null.
//
// @Summary      Get the position report of a vessel
// @Tags         ships
// @Produce      json
// @Param        id   path      integer  true  "Vessel MMSI"
// @Success      200  {object}  domain.PositionReport  "report, or null when the vessel is unknown"
// @Failure      400  {object}  map[string]string
// @Failure      500  {string}  string  "error description"
// @Router       /ship/{id} [get]
func (h *ReportHandler) Get(c echo.Context) error {
	mmsi, err := parseMMSI(c.Param("id"))
	if err != nil {
		return err
	}

	report, err := h.service.GetReport(c.Request().Context(), mmsi)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// parseMMSI accepts any base-10 uint32, including 0 and an optional leading
// '+'. Anything else is a 400.
func parseMMSI(raw string) (uint32, error) {
	digits := raw
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid vessel id: "+raw).SetInternal(err)
	}
	return uint32(v), nil
}

// List handles GET /ships.
//
// @Summary      Latest report per vessel
// @Description  Most recent report of each vessel, newest first, at most 10 vessels.
// @Tags         ships
// @Produce      json
// @Success      200  {array}   domain.PositionReport
// @Failure      500  {string}  string  "error description"
// @Router       /ships [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.service.LatestReports(c.Request().Context())
	if err != nil {
		return err
	}
	if reports == nil {
		reports = []domain.PositionReport{}
	}
	return c.JSON(http.StatusOK, reports)
}
