package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
)

func (s *Server) handleListProjects(c echo.Context) error {
	opts := store.ProjectListOptions{
		IncludeArchived: c.QueryParam("includeArchived") == "true",
		Area:            c.QueryParam("area"),
	}

	projects, err := s.store.ListProjects(c.Request().Context(), opts)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) handleGetProject(c echo.Context) error {
	project, err := s.store.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var draft model.ProjectDraft
	if err := c.Bind(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}

	project, err := s.store.CreateProject(c.Request().Context(), draft)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(c echo.Context) error {
	var patch model.ProjectPatch
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return badRequest(c, err.Error())
		}
		return badRequest(c, "invalid request body")
	}

	project, err := s.store.UpdateProject(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleDeleteProject(c echo.Context) error {
	if err := s.store.ArchiveProject(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
