package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dalu/pkg/crop/service"
	"dalu/pkg/respond"
	"dalu/pkg/schema"
)

const notFound = "crop not found"

type CropCtrl struct{ s service.CropService }

func New(s service.CropService) *CropCtrl { return &CropCtrl{s} }

func (h *CropCtrl) List(c echo.Context) error {
	p, err := schema.ParseCropListParams(c.QueryParams())
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	out, err := h.s.List(c.Request().Context(), p)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var in schema.CropCreate
	if err := respond.Bind(c, &in); err != nil {
		return err
	}
	out, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	var in schema.CropUpdate
	if err := respond.Bind(c, &in); err != nil {
		return err
	}
	out, err := h.s.Update(c.Request().Context(), id, in)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CropCtrl) Harvest(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	var in schema.CropHarvest
	if err := respond.Bind(c, &in); err != nil {
		return err
	}
	out, err := h.s.Harvest(c.Request().Context(), id, in)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, out)
}
