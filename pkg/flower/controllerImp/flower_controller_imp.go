package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dalu/entities"
	"dalu/pkg/flower/repository"
	"dalu/pkg/respond"
	"dalu/pkg/schema"
)

const notFound = "flower not found"

type FlowerCtrl struct{ repo repository.FlowerRepository }

func New(repo repository.FlowerRepository) *FlowerCtrl { return &FlowerCtrl{repo} }

func (h *FlowerCtrl) List(c echo.Context) error {
	p, err := schema.ParseListParams(c.QueryParams())
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	items, total, err := h.repo.List(c.Request().Context(), p)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, schema.ListResponse[entities.Flower]{Items: items, Total: total, Skip: p.Skip, Limit: p.Limit})
}

func (h *FlowerCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	f, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FlowerCtrl) Create(c echo.Context) error {
	var in schema.FlowerCreate
	if err := respond.Bind(c, &in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return respond.Error(c, err, notFound)
	}
	f := in.Entity()
	if err := h.repo.Create(c.Request().Context(), &f); err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FlowerCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	var in schema.FlowerUpdate
	if err := respond.Bind(c, &in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return respond.Error(c, err, notFound)
	}
	ctx := c.Request().Context()
	f, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	in.Apply(f)
	if err := h.repo.Save(ctx, f); err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FlowerCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.NoContent(http.StatusNoContent)
}
