package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tahfidzku_backend/internals/features/tahfidz/halaqoh/dto"
	"tahfidzku_backend/internals/features/tahfidz/halaqoh/model"
	helper "tahfidzku_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.HalaqohModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewHalaqohController(db)
	app.Get("/halaqoh", ctrl.List)
	app.Post("/halaqoh", ctrl.Create)
	return app, db
}

func TestListHalaqohPaginated(t *testing.T) {
	app, db := newTestApp(t)

	for _, nama := range []string{"Halaqoh Alfa", "Halaqoh Beta", "Halaqoh Gamma"} {
		h := model.HalaqohModel{NamaHalaqoh: nama}
		if err := db.Create(&h).Error; err != nil {
			t.Fatalf("seed halaqoh: %v", err)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/halaqoh?page=2&per_page=2", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body struct {
		Success    bool                 `json:"success"`
		Data       []dto.HalaqohResponse `json:"data"`
		Pagination helper.Pagination    `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if !body.Success {
		t.Error("expected success=true")
	}
	// Halaman 2 dari 3 baris @2 → sisa 1, urut nama ASC
	if len(body.Data) != 1 {
		t.Fatalf("page 2 len = %d, want 1", len(body.Data))
	}
	if body.Data[0].NamaHalaqoh != "Halaqoh Gamma" {
		t.Errorf("page 2 row = %q, want Halaqoh Gamma", body.Data[0].NamaHalaqoh)
	}
	if body.Pagination.Total != 3 || body.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v, want total 3 / total_pages 2", body.Pagination)
	}
	if !body.Pagination.HasPrev || body.Pagination.HasNext {
		t.Errorf("pagination flags = %+v, want has_prev only", body.Pagination)
	}
	if body.Pagination.Count != 1 {
		t.Errorf("pagination count = %d, want 1", body.Pagination.Count)
	}
}

func TestCreateHalaqohValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/halaqoh", strings.NewReader(`{"nama_halaqoh":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body helper.ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.Success {
		t.Error("expected success=false")
	}
	if body.ErrorCode != "VALIDATION_ERROR" {
		t.Errorf("error_code = %q, want VALIDATION_ERROR", body.ErrorCode)
	}
	if len(body.Errors["namahalaqoh"]) == 0 {
		t.Errorf("expected field error for nama_halaqoh, got %v", body.Errors)
	}
}
