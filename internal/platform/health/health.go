// Package health serves the health-check and welcome endpoints.
package health

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// Status is the health-check envelope. Echo and PathEcho are only set
// when the caller supplied them.
type Status struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"`
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Welcome)
	e.GET("/health", h.Check)
	e.GET("/health/:path_echo", h.CheckWithPath)
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Carebook API.",
	})
}

func (h *Handler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status(c, nil))
}

func (h *Handler) CheckWithPath(c echo.Context) error {
	pathEcho := c.Param("path_echo")
	return c.JSON(http.StatusOK, h.status(c, &pathEcho))
}

func (h *Handler) status(c echo.Context, pathEcho *string) Status {
	var echoParam *string
	if c.QueryParams().Has("echo") {
		v := c.QueryParam("echo")
		echoParam = &v
	}
	return Status{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     h.now().UTC().Format(time.RFC3339),
		IPAddress:     hostAddress(),
		Echo:          echoParam,
		PathEcho:      pathEcho,
	}
}

// hostAddress resolves the host's own address, falling back to loopback
// when resolution fails.
func hostAddress() string {
	host, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupHost(host)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}
