package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/render"
	"github.com/guttosm/label-service/internal/service"
	"github.com/guttosm/label-service/internal/spreadsheet"
)

const (
	// UploadFieldName is the multipart form field carrying the workbook.
	UploadFieldName = "data_file"
	// DownloadName is the attachment filename for the generated PDF.
	DownloadName = "labels.pdf"
)

// Handler provides HTTP handlers for label generation routes.
type Handler struct {
	generator         service.LabelGenerator
	allowedExtensions []string
	maxUploadBytes    int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAllowedExtensions overrides the accepted upload extensions.
func WithAllowedExtensions(exts []string) HandlerOption {
	return func(h *Handler) {
		if len(exts) > 0 {
			h.allowedExtensions = exts
		}
	}
}

// WithMaxUploadBytes overrides the upload size limit.
func WithMaxUploadBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(generator service.LabelGenerator, opts ...HandlerOption) *Handler {
	h := &Handler{
		generator:         generator,
		allowedExtensions: spreadsheet.DefaultAllowedExtensions,
		maxUploadBytes:    10 * 1024 * 1024,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// GenerateLabels handles POST /api/labels requests.
//
// @Summary      Generate label sheet PDF
// @Description  Accepts a spreadsheet upload (columns: name, carry out, dine in; common alias spellings accepted), aggregates duplicate customers, expands carry-out totals into pack labels, and streams back a print-ready PDF: label grid pages followed by a dine-in summary page.
// @Tags         Labels
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        data_file formData file true "Order workbook (.xlsx)"
// @Success      200 {file} file "Generated label sheet"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing file, unsupported type, unreadable or empty workbook"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - required columns missing"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/labels [post]
func (h *Handler) GenerateLabels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	fileHeader, err := c.FormFile(UploadFieldName)
	if err != nil {
		builder.Error(http.StatusBadRequest, "Please choose a spreadsheet file before uploading", err)
		return
	}

	if !spreadsheet.AllowedFile(fileHeader.Filename, h.allowedExtensions) {
		builder.Error(http.StatusBadRequest, "File type not supported. Upload an .xlsx workbook", nil)
		return
	}

	if fileHeader.Size > h.maxUploadBytes {
		builder.Error(http.StatusBadRequest, "Uploaded file exceeds the size limit", nil)
		return
	}

	upload, err := fileHeader.Open()
	if err != nil {
		builder.Error(http.StatusBadRequest, "Could not read uploaded file", err)
		return
	}
	defer func() { _ = upload.Close() }()

	rows, err := spreadsheet.ReadOrders(upload)
	if err != nil {
		metrics.RecordDocumentBuild(0, "parse_error")
		builder.Error(http.StatusBadRequest, "Could not read the workbook: "+err.Error(), err)
		return
	}

	doc, ok := h.buildDocument(c, rows)
	if !ok {
		return
	}

	pdfBytes, err := render.PDF(doc)
	if err != nil {
		metrics.RecordDocumentBuild(0, "render_error")
		builder.Error(http.StatusInternalServerError, "Failed to generate PDF", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+DownloadName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// PreviewLabels handles POST /api/labels/preview requests.
//
// @Summary      Preview label sequence
// @Description  Computes the label card sequence, dine-in summary, and page counts for the given order rows without rendering a PDF. Useful for validating a sheet before printing.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        request body dto.PreviewLabelsRequest true "Order rows"
// @Success      200 {object} dto.SuccessResponse "Computed label preview"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - required columns missing"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/labels/preview [post]
func (h *Handler) PreviewLabels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PreviewLabelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	rows := make([]model.RawOrderRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, model.RawOrderRow(r))
	}

	doc, ok := h.buildDocument(c, rows)
	if !ok {
		return
	}

	builder.SuccessOK(dto.NewLabelPreviewResponse(doc))
}

// buildDocument runs the engine and translates its failure modes to HTTP.
// A false return means a response was already written.
func (h *Handler) buildDocument(c *gin.Context, rows []model.RawOrderRow) (*model.Document, bool) {
	builder := NewResponseBuilder(c)

	start := time.Now()
	doc, err := h.generator.BuildDocument(rows)
	duration := time.Since(start)

	if err != nil {
		var schemaErr *service.SchemaError
		if errors.As(err, &schemaErr) {
			metrics.RecordDocumentBuild(duration, "schema_error")
			builder.Error(http.StatusUnprocessableEntity, schemaErr.Error(), err)
		} else {
			metrics.RecordDocumentBuild(duration, "error")
			builder.Error(http.StatusInternalServerError, "Failed to build label document", err)
		}
		return nil, false
	}

	metrics.RecordDocumentBuild(duration, "success")
	cards := 0
	for _, page := range doc.LabelPages {
		cards += len(page.Cells)
	}
	metrics.RecordDocumentShape(cards, doc.PageCount())

	return doc, true
}
