package controller

import (
	"fmt"
	"io"
	"strconv"

	"github.com/khangviet/storefront/internal/admin"
	"github.com/khangviet/storefront/internal/dto"
	localmiddleware "github.com/khangviet/storefront/internal/middleware"
	"github.com/khangviet/storefront/internal/service"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const uploadField = "files"

type AdminController struct {
	registry *admin.Registry
	uploads  service.UploadService
}

func CreateAdminController(g *echo.Group, registry *admin.Registry, uploads service.UploadService, requireAdmin echo.MiddlewareFunc) {
	c := AdminController{registry: registry, uploads: uploads}

	a := g.Group("/admin", requireAdmin)

	a.GET("/orders", c.GetOrders)
	a.PATCH("/orders/:id/status", c.UpdateOrderStatus)

	a.GET("/:resource", c.GetList)
	a.POST("/:resource/editor", c.AddNew)
	a.POST("/:resource/editor/:id", c.Edit)
	a.PATCH("/:resource/editor", c.Patch)
	a.POST("/:resource/editor/submit", c.Submit)
	a.DELETE("/:resource/editor", c.Cancel)
	a.PUT("/:resource/editor/images", c.ReorderImages)
	a.POST("/:resource/editor/images", c.UploadImages)
	a.POST("/:resource/editor/images/move", c.MoveImage)
	a.DELETE("/:resource/editor/images", c.RemoveImage)
	a.DELETE("/:resource/:id", c.Delete)
}

func (c *AdminController) workspace(e echo.Context) *admin.Workspace {
	return c.registry.Get(localmiddleware.SessionID(e))
}

func (c *AdminController) editor(e echo.Context) (admin.Handle, error) {
	return c.workspace(e).Editor(e.Param("resource"))
}

// respond writes the editor state on success and alongside the error on failure.
func respond(e echo.Context, h admin.Handle, err error) error {
	if err != nil {
		return response.WriteErrorResponse(e, err, h.Snapshot())
	}
	return response.WriteSuccessResponse(e, "", h.Snapshot())
}

func (c *AdminController) GetList(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return respond(e, h, h.Refresh(e.Request().Context()))
}

func (c *AdminController) AddNew(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	h.AddNew()
	return respond(e, h, nil)
}

func (c *AdminController) Edit(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return respond(e, h, h.Edit(e.Param("id")))
}

func (c *AdminController) Patch(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	body, err := io.ReadAll(e.Request().Body)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AdminPatch").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	return respond(e, h, h.Patch(body))
}

func (c *AdminController) Submit(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return respond(e, h, h.Submit(e.Request().Context()))
}

func (c *AdminController) Cancel(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	h.Cancel()
	return respond(e, h, nil)
}

func (c *AdminController) Delete(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	confirmed, _ := strconv.ParseBool(e.QueryParam("confirm"))
	return respond(e, h, h.Delete(e.Request().Context(), e.Param("id"), confirmed))
}

func (c *AdminController) ReorderImages(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ImageReorderRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "ReorderImages").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	return respond(e, h, h.ReorderImages(payload.Images))
}

// MoveImage ignores releases that never travelled far enough to be a drag.
func (c *AdminController) MoveImage(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ImageMoveRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "MoveImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if payload.Travel != nil && !admin.ExceedsThreshold(payload.Travel.DX, payload.Travel.DY) {
		return respond(e, h, nil)
	}

	return respond(e, h, h.MoveImage(payload.Active, payload.Over))
}

func (c *AdminController) RemoveImage(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ImageRemoveRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "RemoveImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}
	if payload.URL == "" {
		return response.WriteErrorResponse(e, errs.NewValidationError("url"), nil)
	}

	return respond(e, h, h.RemoveImage(payload.URL))
}

// UploadImages uploads a multipart batch and appends every successful URL to
// the draft. Partial failures are reported, not rolled back.
func (c *AdminController) UploadImages(e echo.Context) error {
	h, err := c.editor(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	// nothing may reach the image host unless the draft can take the URLs
	if err := h.CanAcceptImages(); err != nil {
		return response.WriteErrorResponse(e, err, h.Snapshot())
	}

	form, err := e.MultipartForm()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UploadImages").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	headers := form.File[uploadField]
	if len(headers) == 0 {
		return response.WriteErrorResponse(e, errs.NewValidationError(uploadField), nil)
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return response.WriteErrorResponse(e, errs.ErrClient, nil)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return response.WriteErrorResponse(e, errs.ErrClient, nil)
		}
		files = append(files, service.UploadFile{Name: fh.Filename, Data: data})
	}

	result := c.uploads.UploadImages(e.Request().Context(), files)
	if len(result.URLs) > 0 {
		if err := h.AppendImages(result.URLs...); err != nil {
			return response.WriteErrorResponse(e, err, h.Snapshot())
		}
	}

	resp := dto.UploadResponse{
		URLs:     result.URLs,
		Uploaded: len(result.URLs),
		Failed:   result.Failed,
		Failures: result.Failures,
		Editor:   h.Snapshot(),
	}

	message := fmt.Sprintf("%d images uploaded", resp.Uploaded)
	if result.Failed > 0 {
		message = fmt.Sprintf("%d of %d images failed to upload", result.Failed, len(files))
	}
	return response.WriteSuccessResponse(e, message, resp)
}

func (c *AdminController) GetOrders(e echo.Context) error {
	filter := dto.OrderFilter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetOrders").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	view, err := c.workspace(e).Orders.Refresh(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, view)
	}

	return response.WriteSuccessResponse(e, "", view)
}

func (c *AdminController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	board := c.workspace(e).Orders
	order, err := board.UpdateStatus(e.Request().Context(), e.Param("id"), payload.Status)
	if err != nil {
		return response.WriteErrorResponse(e, err, board.View())
	}

	return response.WriteSuccessResponse(e, fmt.Sprintf("order %s is now %s", order.ID, order.Status), board.View())
}
