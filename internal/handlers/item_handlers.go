package handlers

import (
	"bytes"
	"database/sql"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"shelftrack/internal/models"
	"shelftrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Messages shown when Update or Delete is attempted without a selected row.
const (
	msgSelectFirst    = "please select an item first"
	msgSelectToDelete = "please select an item to delete"
	msgStoreFailure   = "the inventory store could not be reached; nothing was changed"
)

// ItemHandlers drives the form-and-table page and the JSON API. Every
// mutation ends in a redirect back to the index so the table is always a
// fresh snapshot of the store.
type ItemHandlers struct {
	itemService services.ItemService
	templates   *template.Template
	logger      zerolog.Logger
}

func NewItemHandlers(itemService services.ItemService, logger zerolog.Logger) (*ItemHandlers, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.gohtml")
	if err != nil {
		return nil, err
	}
	return &ItemHandlers{
		itemService: itemService,
		templates:   tmpl,
		logger:      logger,
	}, nil
}

// itemForm carries the three editable fields exactly as the user typed them,
// so rejected input survives a re-render.
type itemForm struct {
	Name     string
	Location string
	Qty      string
}

// itemPage is the whole controller state for one render: the snapshot, the
// at-most-one selection, the form contents and an optional notice.
type itemPage struct {
	Items        []models.Item
	SelectedID   int64
	SelectedName string
	Form         itemForm
	Notice       string
}

func blankForm() itemForm {
	return itemForm{Qty: "1"}
}

// Index renders the page from a fresh snapshot. A ?selected=<id> query param
// re-establishes the selection and fills the form from the listed row; a
// selection that no longer exists simply leaves nothing selected.
func (h *ItemHandlers) Index(c echo.Context) error {
	items, err := h.itemService.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list items")
		return h.render(c, http.StatusInternalServerError, itemPage{
			Items:  []models.Item{},
			Form:   blankForm(),
			Notice: msgStoreFailure,
		})
	}

	page := itemPage{Items: items, Form: blankForm()}
	if sel := c.QueryParam("selected"); sel != "" {
		if id, err := strconv.ParseInt(sel, 10, 64); err == nil {
			for _, item := range items {
				if item.ID == id {
					page.SelectedID = item.ID
					page.SelectedName = item.Name
					page.Form = itemForm{
						Name:     item.Name,
						Location: item.Location,
						Qty:      strconv.Itoa(item.Qty),
					}
					break
				}
			}
		}
	}

	return h.render(c, http.StatusOK, page)
}

// AddItem handles the Add button. Validation failures re-render with the
// input preserved; success clears the form via the redirect.
func (h *ItemHandlers) AddItem(c echo.Context) error {
	form := itemForm{
		Name:     c.FormValue("name"),
		Location: c.FormValue("location"),
		Qty:      c.FormValue("qty"),
	}

	if _, err := h.itemService.Create(c.Request().Context(), form.Name, form.Location, form.Qty); err != nil {
		return h.renderFailure(c, err, form, 0)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// UpdateItem handles the Update button. The selection travels as a hidden id
// field; without one the request is rejected before anything is validated.
func (h *ItemHandlers) UpdateItem(c echo.Context) error {
	form := itemForm{
		Name:     c.FormValue("name"),
		Location: c.FormValue("location"),
		Qty:      c.FormValue("qty"),
	}

	idStr := c.FormValue("id")
	if idStr == "" {
		return h.renderNotice(c, http.StatusUnprocessableEntity, msgSelectFirst, form, 0)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return h.renderNotice(c, http.StatusUnprocessableEntity, msgSelectFirst, form, 0)
	}

	if err := h.itemService.Update(c.Request().Context(), id, form.Name, form.Location, form.Qty); err != nil {
		return h.renderFailure(c, err, form, id)
	}

	// Keep the same row selected after the reload when it still exists.
	return c.Redirect(http.StatusSeeOther, "/?selected="+idStr)
}

// DeleteItem handles the Delete button. The confirmation dialog runs in the
// page before the form is submitted; a declined confirm never reaches here.
func (h *ItemHandlers) DeleteItem(c echo.Context) error {
	idStr := c.FormValue("id")
	if idStr == "" {
		return h.renderNotice(c, http.StatusUnprocessableEntity, msgSelectToDelete, blankForm(), 0)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return h.renderNotice(c, http.StatusUnprocessableEntity, msgSelectToDelete, blankForm(), 0)
	}

	if err := h.itemService.Delete(c.Request().Context(), id); err != nil {
		return h.renderFailure(c, err, blankForm(), 0)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// renderFailure maps a service error to a re-render: validation errors name
// the rejected field, anything else is a storage failure.
func (h *ItemHandlers) renderFailure(c echo.Context, err error, form itemForm, selectedID int64) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return h.renderNotice(c, http.StatusUnprocessableEntity, ve.Error(), form, selectedID)
	}

	h.logger.Error().Err(err).Msg("store operation failed")
	return h.renderNotice(c, http.StatusInternalServerError, msgStoreFailure, form, selectedID)
}

func (h *ItemHandlers) renderNotice(c echo.Context, status int, notice string, form itemForm, selectedID int64) error {
	items, err := h.itemService.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list items")
		items = []models.Item{}
	}

	page := itemPage{
		Items:      items,
		SelectedID: selectedID,
		Form:       form,
		Notice:     notice,
	}
	for _, item := range items {
		if item.ID == selectedID {
			page.SelectedName = item.Name
			break
		}
	}

	return h.render(c, status, page)
}

func (h *ItemHandlers) render(c echo.Context, status int, page itemPage) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.gohtml", page); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// ItemRequest is the JSON payload for create and update. Qty defaults to 1
// when omitted.
type ItemRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Qty      *int   `json:"qty"`
}

func (r ItemRequest) qty() string {
	if r.Qty == nil {
		return "1"
	}
	return strconv.Itoa(*r.Qty)
}

// ListItems returns the full ordered snapshot.
func (h *ItemHandlers) ListItems(c echo.Context) error {
	items, err := h.itemService.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list items")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list items")
	}
	return c.JSON(http.StatusOK, items)
}

// CreateItem persists a new item and returns it with its assigned id.
func (h *ItemHandlers) CreateItem(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	item, err := h.itemService.Create(c.Request().Context(), req.Name, req.Location, req.qty())
	if err != nil {
		return h.jsonError(err)
	}

	return c.JSON(http.StatusCreated, item)
}

// GetItem returns a single item by id.
func (h *ItemHandlers) GetItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	item, err := h.itemService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		h.logger.Error().Err(err).Int64("id", id).Msg("get item")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get item")
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateItemJSON overwrites an item's fields. A missing id affects nothing
// and still succeeds.
func (h *ItemHandlers) UpdateItemJSON(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	if err := h.itemService.Update(c.Request().Context(), id, req.Name, req.Location, req.qty()); err != nil {
		return h.jsonError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item updated"})
}

// DeleteItemJSON removes an item. A missing id is a no-op, not an error.
func (h *ItemHandlers) DeleteItemJSON(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if err := h.itemService.Delete(c.Request().Context(), id); err != nil {
		return h.jsonError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item deleted"})
}

func (h *ItemHandlers) jsonError(err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ve.Error())
	}
	h.logger.Error().Err(err).Msg("store operation failed")
	return echo.NewHTTPError(http.StatusInternalServerError, "storage unavailable")
}
