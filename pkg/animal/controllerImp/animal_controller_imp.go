package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dalu/entities"
	"dalu/pkg/animal/repository"
	"dalu/pkg/respond"
	"dalu/pkg/schema"
)

const notFound = "animal not found"

type AnimalCtrl struct{ repo repository.AnimalRepository }

func New(repo repository.AnimalRepository) *AnimalCtrl { return &AnimalCtrl{repo} }

func (h *AnimalCtrl) List(c echo.Context) error {
	p, err := schema.ParseListParams(c.QueryParams())
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	items, total, err := h.repo.List(c.Request().Context(), p)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, schema.ListResponse[entities.Animal]{Items: items, Total: total, Skip: p.Skip, Limit: p.Limit})
}

func (h *AnimalCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AnimalCtrl) Create(c echo.Context) error {
	var in schema.AnimalCreate
	if err := respond.Bind(c, &in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return respond.Error(c, err, notFound)
	}
	a := in.Entity()
	if err := h.repo.Create(c.Request().Context(), &a); err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AnimalCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	var in schema.AnimalUpdate
	if err := respond.Bind(c, &in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return respond.Error(c, err, notFound)
	}
	ctx := c.Request().Context()
	a, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return respond.Error(c, err, notFound)
	}
	in.Apply(a)
	if err := h.repo.Save(ctx, a); err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AnimalCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, notFound)
	}
	return c.NoContent(http.StatusNoContent)
}
