package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/users/asatidz/model"
	userModel "tahfidzku_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	// :memory: per koneksi; satu koneksi supaya semua query lihat DB yang sama
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&model.ProfileModel{},
		&model.UserRoleModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleInput() AsatidzInput {
	return AsatidzInput{
		NamaLengkap: "Ustadz Ahmad",
		Username:    "ahmad",
		Email:       "Ahmad@Example.com",
		NoHP:        "081234567800",
		Password:    "password123",
	}
}

func TestProvisionAsatidzCreatesIdentityRoleAndProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProvisioningService(db)
	ctx := context.Background()

	id, err := svc.ProvisionAsatidz(ctx, sampleInput())
	if err != nil {
		t.Fatalf("ProvisionAsatidz: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected non-nil user id")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		t.Fatalf("identity row missing: %v", err)
	}
	if user.Email != "ahmad@example.com" {
		t.Errorf("email not normalized, got %q", user.Email)
	}
	if user.Password == "password123" {
		t.Error("password stored in plaintext")
	}

	var grants int64
	if err := db.Model(&model.UserRoleModel{}).
		Where("user_id = ? AND role = ?", id, constants.RoleAsatidz).
		Count(&grants).Error; err != nil {
		t.Fatalf("count grants: %v", err)
	}
	if grants != 1 {
		t.Errorf("expected 1 role grant, got %d", grants)
	}

	var profile model.ProfileModel
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		t.Fatalf("profile row missing: %v", err)
	}
	if !profile.Aktif {
		t.Error("expected profile aktif=true")
	}
	if profile.NamaLengkap != "Ustadz Ahmad" {
		t.Errorf("nama_lengkap = %q", profile.NamaLengkap)
	}
	if profile.NoHP == nil || *profile.NoHP != "081234567800" {
		t.Errorf("no_hp = %v", profile.NoHP)
	}
}

func TestProvisionAsatidzDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewProvisioningService(db)
	ctx := context.Background()

	if _, err := svc.ProvisionAsatidz(ctx, sampleInput()); err != nil {
		t.Fatalf("first provision: %v", err)
	}

	in := sampleInput()
	in.Username = "ahmad2"
	_, err := svc.ProvisionAsatidz(ctx, in)
	if !errors.Is(err, ErrIdentityConflict) {
		t.Fatalf("expected ErrIdentityConflict, got %v", err)
	}
}

func TestProvisionAsatidzShortPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewProvisioningService(db)

	in := sampleInput()
	in.Password = "abc"
	_, err := svc.ProvisionAsatidz(context.Background(), in)
	if !errors.Is(err, ErrIdentityInvalid) {
		t.Fatalf("expected ErrIdentityInvalid, got %v", err)
	}

	// Gagal di step identity → tidak ada state parsial sama sekali
	var users int64
	if err := db.Model(&userModel.UserModel{}).Count(&users).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 0 {
		t.Errorf("expected no identity rows, got %d", users)
	}
}

func TestProvisionAsatidzIncompleteThenRepair(t *testing.T) {
	db := newTestDB(t)
	svc := NewProvisioningService(db)
	ctx := context.Background()

	// Paksa step role grant gagal: tabelnya dihapus dulu
	if err := db.Migrator().DropTable(&model.UserRoleModel{}); err != nil {
		t.Fatalf("drop user_roles: %v", err)
	}

	_, err := svc.ProvisionAsatidz(ctx, sampleInput())
	var incomplete *ProvisioningIncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected ProvisioningIncompleteError, got %v", err)
	}
	if incomplete.Step != StepRoleGrant {
		t.Errorf("failed step = %q, want %q", incomplete.Step, StepRoleGrant)
	}
	if incomplete.UserID == uuid.Nil {
		t.Fatal("expected partial user id in error")
	}

	// Identity TIDAK di-rollback
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", incomplete.UserID).Error; err != nil {
		t.Fatalf("identity should survive partial failure: %v", err)
	}

	// Pulihkan tabel lalu repair
	if err := db.AutoMigrate(&model.UserRoleModel{}); err != nil {
		t.Fatalf("recreate user_roles: %v", err)
	}
	fix := ProfileUpdateInput{
		NamaLengkap: "Ustadz Ahmad",
		Username:    "ahmad",
		Email:       "ahmad@example.com",
		NoHP:        "081234567800",
	}
	if err := svc.RepairAsatidz(ctx, incomplete.UserID, fix); err != nil {
		t.Fatalf("RepairAsatidz: %v", err)
	}
	// Idempoten: replay kedua tidak boleh error atau duplikasi
	if err := svc.RepairAsatidz(ctx, incomplete.UserID, fix); err != nil {
		t.Fatalf("RepairAsatidz replay: %v", err)
	}

	var grants int64
	if err := db.Model(&model.UserRoleModel{}).
		Where("user_id = ? AND role = ?", incomplete.UserID, constants.RoleAsatidz).
		Count(&grants).Error; err != nil {
		t.Fatalf("count grants: %v", err)
	}
	if grants != 1 {
		t.Errorf("expected exactly 1 role grant after double repair, got %d", grants)
	}

	var profiles int64
	if err := db.Model(&model.ProfileModel{}).Where("id = ?", incomplete.UserID).Count(&profiles).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if profiles != 1 {
		t.Errorf("expected exactly 1 profile after double repair, got %d", profiles)
	}
}

func TestUpdateAsatidz(t *testing.T) {
	db := newTestDB(t)
	svc := NewProvisioningService(db)
	ctx := context.Background()

	id, err := svc.ProvisionAsatidz(ctx, sampleInput())
	if err != nil {
		t.Fatalf("ProvisionAsatidz: %v", err)
	}

	out, err := svc.UpdateAsatidz(ctx, id, ProfileUpdateInput{
		NamaLengkap: "Ustadz Ahmad Fauzi",
		Username:    "ahmadf",
		Email:       "ahmad@example.com",
		NoHP:        "",
	})
	if err != nil {
		t.Fatalf("UpdateAsatidz: %v", err)
	}
	if out.NamaLengkap != "Ustadz Ahmad Fauzi" || out.Username != "ahmadf" {
		t.Errorf("snapshot not updated: %+v", out)
	}
	if out.NoHP != nil {
		t.Errorf("empty no_hp should become nil, got %v", *out.NoHP)
	}
}

func TestUpdateAsatidzNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProvisioningService(db)

	_, err := svc.UpdateAsatidz(context.Background(), uuid.New(), ProfileUpdateInput{
		NamaLengkap: "X", Username: "x", Email: "x@example.com",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeactivateAsatidz(t *testing.T) {
	db := newTestDB(t)
	svc := NewProvisioningService(db)
	ctx := context.Background()

	id, err := svc.ProvisionAsatidz(ctx, sampleInput())
	if err != nil {
		t.Fatalf("ProvisionAsatidz: %v", err)
	}

	if err := svc.DeactivateAsatidz(ctx, id); err != nil {
		t.Fatalf("DeactivateAsatidz: %v", err)
	}
	// Aman diulang
	if err := svc.DeactivateAsatidz(ctx, id); err != nil {
		t.Fatalf("DeactivateAsatidz replay: %v", err)
	}

	var grants int64
	if err := db.Model(&model.UserRoleModel{}).Where("user_id = ?", id).Count(&grants).Error; err != nil {
		t.Fatalf("count grants: %v", err)
	}
	if grants != 0 {
		t.Errorf("expected role grant removed, got %d", grants)
	}

	// Profil tetap ada (nonaktif) dan masih bisa di-lookup by id
	profile, err := svc.GetProfile(ctx, id)
	if err != nil {
		t.Fatalf("GetProfile after deactivate: %v", err)
	}
	if profile.Aktif {
		t.Error("expected aktif=false after deactivate")
	}
}
