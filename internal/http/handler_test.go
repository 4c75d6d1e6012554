package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/mocks"
	"github.com/guttosm/label-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	generator := service.NewLabelGeneratorService()
	handler := NewHandler(generator)
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

// multipartWorkbook builds a multipart body carrying an xlsx workbook with
// the given rows under the data_file field.
func multipartWorkbook(t *testing.T, filename string, rows [][]interface{}) (*bytes.Buffer, string) {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}
	var workbook bytes.Buffer
	require.NoError(t, file.Write(&workbook))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(UploadFieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestGenerateLabels(t *testing.T) {
	router := setupRouter()

	t.Run("valid workbook returns a PDF attachment", func(t *testing.T) {
		body, contentType := multipartWorkbook(t, "orders.xlsx", [][]interface{}{
			{"Name", "Carry-Out", "Dine In"},
			{"Alice", 3, 2},
			{"Bob", 1, 0},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/labels", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), DownloadName)
		require.True(t, w.Body.Len() > 4)
		assert.Equal(t, "%PDF", w.Body.String()[:4])
	})

	t.Run("missing file field returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/labels", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported extension returns 400", func(t *testing.T) {
		body, contentType := multipartWorkbook(t, "orders.xls", [][]interface{}{
			{"Name", "Carry-Out", "Dine In"},
			{"Alice", 3, 2},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/labels", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	})

	t.Run("workbook without data rows returns 400", func(t *testing.T) {
		body, contentType := multipartWorkbook(t, "orders.xlsx", [][]interface{}{
			{"Name", "Carry-Out", "Dine In"},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/labels", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required column returns 422", func(t *testing.T) {
		body, contentType := multipartWorkbook(t, "orders.xlsx", [][]interface{}{
			{"Name", "Carry-Out"},
			{"Alice", 3},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/labels", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeUnprocessable, resp.Error)
		assert.Contains(t, resp.Message, "dine_in")
		assert.NotEmpty(t, resp.RequestID)
	})
}

func TestPreviewLabels(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "valid rows",
			body:           `{"rows": [{"Name": "Bob", "Carry-Out": "5", "Dine In": "1"}]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)

				dataBytes, _ := json.Marshal(resp.Data)
				var preview dto.LabelPreviewResponse
				require.NoError(t, json.Unmarshal(dataBytes, &preview))

				// Bob 5 -> primary + 2 continuations + pack summary.
				require.Len(t, preview.Cards, 4)
				require.NotNil(t, preview.Cards[0].Count)
				assert.Equal(t, 5, *preview.Cards[0].Count)
				assert.True(t, preview.Cards[3].IsPackSummary())
				assert.Equal(t, 1, preview.LabelPages)
				assert.Equal(t, 2, preview.TotalPages)
				require.Len(t, preview.DineInSummary, 1)
				assert.Equal(t, "Bob", preview.DineInSummary[0].Name)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty rows",
			body:           `{"rows": []}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing field",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing columns",
			body:           `{"rows": [{"Name": "Bob"}]}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "zero totals preview to a minimal document",
			body:           `{"rows": [{"name": "Ann", "carry out": "0", "dine in": "0"}]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				dataBytes, _ := json.Marshal(resp.Data)
				var preview dto.LabelPreviewResponse
				require.NoError(t, json.Unmarshal(dataBytes, &preview))
				assert.Empty(t, preview.Cards)
				assert.Equal(t, 0, preview.LabelPages)
				assert.Equal(t, 1, preview.TotalPages)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/labels/preview", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestPreviewLabels_GeneratorFailure(t *testing.T) {
	mockGen := mocks.NewMockLabelGenerator(t)
	mockGen.On("BuildDocument", mock.Anything).Return(nil, errors.New("boom"))

	handler := NewHandler(mockGen)
	router := NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/labels/preview",
		bytes.NewBufferString(`{"rows": [{"name": "x", "carry out": "1", "dine in": "0"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlerOptions(t *testing.T) {
	generator := service.NewLabelGeneratorService()

	h := NewHandler(generator,
		WithAllowedExtensions([]string{".csv"}),
		WithMaxUploadBytes(1024),
	)
	assert.Equal(t, []string{".csv"}, h.allowedExtensions)
	assert.Equal(t, int64(1024), h.maxUploadBytes)

	// Zero/empty options keep defaults.
	h = NewHandler(generator, WithAllowedExtensions(nil), WithMaxUploadBytes(0))
	assert.NotEmpty(t, h.allowedExtensions)
	assert.Equal(t, int64(10*1024*1024), h.maxUploadBytes)
}
