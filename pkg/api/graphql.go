package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo"
)

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handlePostGraphQL(c echo.Context) error {
	req := Request{}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	return h.execute(c, req)
}

func (h *Handler) handleGetGraphQL(c echo.Context) error {
	req := Request{
		Query:         c.QueryParam("query"),
		OperationName: c.QueryParam("operationName"),
	}

	if req.Query == "" && h.graphiql && acceptsHTML(c.Request()) {
		return c.HTML(http.StatusOK, graphiqlPage)
	}

	if v := c.QueryParam("variables"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid variables"})
		}
	}

	return h.execute(c, req)
}

func (h *Handler) execute(c echo.Context, req Request) error {
	if strings.TrimSpace(req.Query) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "query is required"})
	}

	res := h.exec.Execute(c.Request().Context(), req)
	return c.JSON(http.StatusOK, res)
}

func acceptsHTML(req *http.Request) bool {
	return strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
