package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/staffing/api/http/presenter"
	"github.com/artem13815/staffing/pkg/document"
	"github.com/artem13815/staffing/pkg/security/jwt"
	"github.com/artem13815/staffing/pkg/staffing"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RequestsHandler — CRUD разобранных заявок на подбор.
type RequestsHandler struct {
	svc      staffing.UseCase
	maxBytes int64
	logger   *zap.Logger
}

func NewRequestsHandler(svc staffing.UseCase, maxBytes int64, logger *zap.Logger) *RequestsHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestsHandler{svc: svc, maxBytes: maxBytes, logger: logger}
}

// TextRequest — тело запроса с текстом заявки.
type TextRequest struct {
	Text string `json:"text" example:"CV - QA - Automation QA - Insider - tmura - R-12793"`
}

// Create разбирает заявку из файла или из текста и сохраняет результат.
// @Summary     Разобрать и сохранить заявку
// @Description multipart/form-data с полем file (txt, docx, pdf, html) или JSON {"text": "..."}.
// @Tags        Заявки
// @Accept      multipart/form-data
// @Accept      json
// @Produce     json
// @Param       file formData file        false "Файл заявки"
// @Param       body body     TextRequest false "Текст заявки"
// @Security    BearerAuth
// @Success     201 {object} staffing.Request
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     415 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /requests [post]
func (h *RequestsHandler) Create(c *fiber.Ctx) error {
	owner, ok := jwt.OwnerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var (
		r   staffing.Request
		err error
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, ferr := c.FormFile("file")
		if ferr != nil || fh == nil {
			return presenter.Error(c, http.StatusBadRequest, "file is required")
		}
		file, ferr := fh.Open()
		if ferr != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		}
		defer file.Close()
		data, ferr := readAtMost(file, h.maxBytes)
		if ferr != nil {
			return presenter.Error(c, http.StatusBadRequest, ferr.Error())
		}
		r, err = h.svc.Parse(c.Context(), owner, fh.Filename, data)
	} else {
		var body TextRequest
		if err := c.BodyParser(&body); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid body: expected JSON {\"text\": ...} or multipart file")
		}
		r, err = h.svc.ParseText(c.Context(), owner, body.Text)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, r)
}

// Preview прогоняет текст через конвейер без сохранения.
// @Summary  Предпросмотр разбора
// @Tags     Заявки
// @Accept   json
// @Produce  json
// @Param    body body TextRequest true "Текст заявки"
// @Security BearerAuth
// @Success  200 {object} staffing.Extraction
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /requests/preview [post]
func (h *RequestsHandler) Preview(c *fiber.Ctx) error {
	var body TextRequest
	if err := c.BodyParser(&body); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid body: expected JSON {\"text\": ...}")
	}
	ex, err := h.svc.Preview(c.Context(), body.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, ex)
}

// List возвращает заявки владельца, новые первыми.
// @Summary  Список заявок
// @Tags     Заявки
// @Produce  json
// @Param    limit  query int false "Размер страницы (1..200)" default(20)
// @Param    offset query int false "Смещение" default(0)
// @Security BearerAuth
// @Success  200 {object} presenter.Page[staffing.Request]
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /requests [get]
func (h *RequestsHandler) List(c *fiber.Ctx) error {
	owner, ok := jwt.OwnerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	page := readPage(c)
	items, err := h.svc.List(c.Context(), owner, page.Limit, page.Offset)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, pageOf(page, items))
}

// Get возвращает одну заявку.
// @Summary  Заявка по ID
// @Tags     Заявки
// @Produce  json
// @Param    id path string true "ID заявки"
// @Security BearerAuth
// @Success  200 {object} staffing.Request
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /requests/{id} [get]
func (h *RequestsHandler) Get(c *fiber.Ctx) error {
	owner, id, ok := h.target(c)
	if !ok {
		return nil
	}
	r, err := h.svc.Get(c.Context(), owner, id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, r)
}

// Export отдаёт заявку в XLSX.
// @Summary  Выгрузка заявки в XLSX
// @Tags     Заявки
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id path string true "ID заявки"
// @Security BearerAuth
// @Success  200 {file} file
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /requests/{id}/export [get]
func (h *RequestsHandler) Export(c *fiber.Ctx) error {
	owner, id, ok := h.target(c)
	if !ok {
		return nil
	}
	b, err := h.svc.Export(c.Context(), owner, id)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="request-%s.xlsx"`, id))
	return c.Status(http.StatusOK).Send(b)
}

// Delete удаляет заявку.
// @Summary  Удалить заявку
// @Tags     Заявки
// @Param    id path string true "ID заявки"
// @Security BearerAuth
// @Success  204
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /requests/{id} [delete]
func (h *RequestsHandler) Delete(c *fiber.Ctx) error {
	owner, id, ok := h.target(c)
	if !ok {
		return nil
	}
	if err := h.svc.Delete(c.Context(), owner, id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// target достаёт владельца и id из пути; при ошибке ответ уже записан.
func (h *RequestsHandler) target(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool) {
	owner, ok := jwt.OwnerID(c)
	if !ok {
		_ = presenter.Error(c, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, "invalid request id")
		return uuid.Nil, uuid.Nil, false
	}
	return owner, id, true
}

func (h *RequestsHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, staffing.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "request not found")
	case errors.Is(err, staffing.ErrEmptyText):
		return presenter.Error(c, http.StatusBadRequest, "request text is empty")
	case errors.Is(err, document.ErrUnsupportedFormat):
		return presenter.Error(c, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, document.ErrUnreadable):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	h.logger.Error("request handler failed", zap.String("path", c.Path()), zap.Error(err))
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
