package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
)

// handleListItems translates query params into an ItemFilter. Unknown
// params are ignored.
func (s *Server) handleListItems(c echo.Context) error {
	filter := store.ItemFilter{
		ProjectID: c.QueryParam("projectId"),
		Area:      c.QueryParam("area"),
		Inbox:     c.QueryParam("inbox") == "true",
		Today:     c.QueryParam("today") == "true",
		Overdue:   c.QueryParam("overdue") == "true",
	}

	items, err := s.store.ListItems(c.Request().Context(), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) handleGetItem(c echo.Context) error {
	item, err := s.store.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (s *Server) handleCreateItem(c echo.Context) error {
	var draft model.ItemDraft
	if err := c.Bind(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := s.store.CreateItem(c.Request().Context(), draft)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// handleUpdateItem applies a merge patch. The patch type enumerates exactly
// the mutable columns; unknown keys are rejected rather than silently
// dropped.
func (s *Server) handleUpdateItem(c echo.Context) error {
	patch, err := decodeItemPatch(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	item, err := s.store.UpdateItem(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (s *Server) handleDeleteItem(c echo.Context) error {
	if err := s.store.ArchiveItem(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func decodeItemPatch(c echo.Context) (model.ItemPatch, error) {
	var patch model.ItemPatch
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return model.ItemPatch{}, err
		}
		return model.ItemPatch{}, errInvalidBody
	}
	return patch, nil
}
