package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-records/internal/dto"
	"hr-records/pkg/config"
	appmiddleware "hr-records/pkg/middleware"
	"hr-records/pkg/types"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDepartmentService struct {
	pagination types.Pagination
}

func (s *stubDepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	return &dto.DepartmentDTO{ID: 1, Name: payload.Name}, nil
}

func (s *stubDepartmentService) GetDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	return &dto.DepartmentDTO{ID: id}, nil
}

func (s *stubDepartmentService) GetDepartments(ctx context.Context, p types.Pagination) ([]dto.DepartmentDTO, error) {
	s.pagination = p
	return []dto.DepartmentDTO{}, nil
}

func (s *stubDepartmentService) GetDepartmentEmployees(ctx context.Context, id uint64) ([]dto.EmployeeDTO, error) {
	return []dto.EmployeeDTO{}, nil
}

func (s *stubDepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	return &dto.DepartmentDTO{ID: id, Name: payload.Name}, nil
}

func (s *stubDepartmentService) DeleteDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	return &dto.DepartmentDTO{ID: id}, nil
}

func newTestRouter(t *testing.T, dept *stubDepartmentService) *echo.Echo {
	t.Helper()
	e := NewEcho(config.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}}, zap.NewNop())
	InitRouter(e, &Services{Department: dept}, zap.NewNop())
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_TrailingSlashIsOptional(t *testing.T) {
	dept := &stubDepartmentService{}
	e := newTestRouter(t, dept)

	for _, path := range []string{"/departments", "/departments/", "/departments/?skip=3&limit=7"} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
	assert.Equal(t, types.Pagination{Skip: 3, Limit: 7}, dept.pagination)
}

func TestRouter_UnknownRouteIsJSONError(t *testing.T) {
	e := newTestRouter(t, &stubDepartmentService{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
}

func TestRouter_RequestIDHeader(t *testing.T) {
	e := newTestRouter(t, &stubDepartmentService{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/departments/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(appmiddleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/departments/1", nil)
	req.Header.Set(appmiddleware.RequestIDHeader, "req-42")
	rec = serve(e, req)
	assert.Equal(t, "req-42", rec.Header().Get(appmiddleware.RequestIDHeader))
}

func TestRouter_CORS(t *testing.T) {
	e := newTestRouter(t, &stubDepartmentService{})

	req := httptest.NewRequest(http.MethodOptions, "/departments", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
	rec := serve(e, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
