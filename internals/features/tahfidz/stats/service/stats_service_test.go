package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	absensiModel "tahfidzku_backend/internals/features/tahfidz/absensi/model"
	halaqohModel "tahfidzku_backend/internals/features/tahfidz/halaqoh/model"
	santriModel "tahfidzku_backend/internals/features/tahfidz/santri/model"
	setoranModel "tahfidzku_backend/internals/features/tahfidz/setoran/model"
	asatidzModel "tahfidzku_backend/internals/features/users/asatidz/model"
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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&asatidzModel.ProfileModel{},
		&asatidzModel.UserRoleModel{},
		&halaqohModel.HalaqohModel{},
		&santriModel.SantriModel{},
		&setoranModel.SetoranModel{},
		&absensiModel.AbsensiModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func newProfile(t *testing.T, db *gorm.DB, nama string, aktif bool) asatidzModel.ProfileModel {
	t.Helper()
	p := asatidzModel.ProfileModel{
		ID:          uuid.New(),
		NamaLengkap: nama,
		Username:    nama,
		Email:       nama + "@example.com",
		Aktif:       aktif,
	}
	mustCreate(t, db, &p)
	// GORM mengganti zero value dengan nilai tag default saat INSERT,
	// jadi aktif=false harus ditulis lewat Update eksplisit.
	if err := db.Model(&asatidzModel.ProfileModel{}).Where("id = ?", p.ID).
		Update("aktif", aktif).Error; err != nil {
		t.Fatalf("set aktif: %v", err)
	}
	return p
}

func newHalaqoh(t *testing.T, db *gorm.DB, nama string, asatidzID *uuid.UUID) halaqohModel.HalaqohModel {
	t.Helper()
	h := halaqohModel.HalaqohModel{NamaHalaqoh: nama, IDAsatidz: asatidzID}
	mustCreate(t, db, &h)
	return h
}

func newSantri(t *testing.T, db *gorm.DB, nama, nis string, halaqohID *uuid.UUID) santriModel.SantriModel {
	t.Helper()
	s := santriModel.SantriModel{
		NamaSantri: nama,
		NIS:        nis,
		Status:     santriModel.StatusAktif,
		IDHalaqoh:  halaqohID,
	}
	mustCreate(t, db, &s)
	return s
}

func TestListHalaqohWithStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	ahmad := newProfile(t, db, "ahmad", true)
	alfa := newHalaqoh(t, db, "Halaqoh Alfa", &ahmad.ID)
	newHalaqoh(t, db, "Halaqoh Beta", nil)

	newSantri(t, db, "Santri A", "S001", &alfa.ID)
	newSantri(t, db, "Santri B", "S002", &alfa.ID)
	// Beta sengaja kosong

	out, err := svc.ListHalaqohWithStats(ctx)
	if err != nil {
		t.Fatalf("ListHalaqohWithStats: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 halaqoh, got %d", len(out))
	}
	// Urut nama ASC
	if out[0].NamaHalaqoh != "Halaqoh Alfa" || out[1].NamaHalaqoh != "Halaqoh Beta" {
		t.Errorf("wrong order: %q, %q", out[0].NamaHalaqoh, out[1].NamaHalaqoh)
	}
	if out[0].JumlahSantri != 2 {
		t.Errorf("Alfa jumlah_santri = %d, want 2", out[0].JumlahSantri)
	}
	// Halaqoh kosong → 0, bukan error
	if out[1].JumlahSantri != 0 {
		t.Errorf("Beta jumlah_santri = %d, want 0", out[1].JumlahSantri)
	}
	if out[0].NamaAsatidz == nil || *out[0].NamaAsatidz != "ahmad" {
		t.Errorf("Alfa nama_asatidz = %v, want ahmad", out[0].NamaAsatidz)
	}
	if out[1].NamaAsatidz != nil {
		t.Errorf("Beta nama_asatidz = %v, want nil", *out[1].NamaAsatidz)
	}
}

func TestListHalaqohWithStatsMissingProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	// Halaqoh menunjuk asatidz yang profilnya tidak ada
	ghost := uuid.New()
	newHalaqoh(t, db, "Halaqoh Yatim", &ghost)

	out, err := svc.ListHalaqohWithStats(context.Background())
	if err != nil {
		t.Fatalf("ListHalaqohWithStats: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 halaqoh, got %d", len(out))
	}
	if out[0].NamaAsatidz != nil {
		t.Errorf("expected nil nama_asatidz for missing profile, got %v", *out[0].NamaAsatidz)
	}
}

func TestListAsatidzWithStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	ahmad := newProfile(t, db, "ahmad", true)
	newProfile(t, db, "budi", true)
	nonaktif := newProfile(t, db, "candra", false)

	newHalaqoh(t, db, "Halaqoh 1", &ahmad.ID)
	newHalaqoh(t, db, "Halaqoh 2", &ahmad.ID)
	newHalaqoh(t, db, "Halaqoh 3", &nonaktif.ID)

	out, err := svc.ListAsatidzWithStats(ctx)
	if err != nil {
		t.Fatalf("ListAsatidzWithStats: %v", err)
	}
	// Profil nonaktif tidak muncul
	if len(out) != 2 {
		t.Fatalf("expected 2 aktif asatidz, got %d", len(out))
	}
	if out[0].NamaLengkap != "ahmad" || out[0].JumlahHalaqoh != 2 {
		t.Errorf("ahmad: %+v", out[0])
	}
	if out[1].NamaLengkap != "budi" || out[1].JumlahHalaqoh != 0 {
		t.Errorf("budi: %+v", out[1])
	}
}

// Asatidz yang dinonaktifkan hilang dari daftar, tapi halaqoh yang masih
// menunjuknya tetap menampilkan namanya (referensi di-resolve saat baca).
func TestDeactivatedAsatidzStillResolvedInHalaqohStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	p := newProfile(t, db, "ahmad", true)
	newHalaqoh(t, db, "Halaqoh Alfa", &p.ID)

	if err := db.Model(&asatidzModel.ProfileModel{}).Where("id = ?", p.ID).
		Update("aktif", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	asatidz, err := svc.ListAsatidzWithStats(ctx)
	if err != nil {
		t.Fatalf("ListAsatidzWithStats: %v", err)
	}
	if len(asatidz) != 0 {
		t.Fatalf("expected nonaktif asatidz hidden, got %d rows", len(asatidz))
	}

	halaqoh, err := svc.ListHalaqohWithStats(ctx)
	if err != nil {
		t.Fatalf("ListHalaqohWithStats: %v", err)
	}
	if len(halaqoh) != 1 {
		t.Fatalf("expected 1 halaqoh, got %d", len(halaqoh))
	}
	if halaqoh[0].NamaAsatidz == nil || *halaqoh[0].NamaAsatidz != "ahmad" {
		t.Errorf("expected name still resolved, got %v", halaqoh[0].NamaAsatidz)
	}
}

func TestListSetoranEnriched(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	ahmad := newProfile(t, db, "ahmad", true)
	h := newHalaqoh(t, db, "Halaqoh Alfa", &ahmad.ID)
	santri := newSantri(t, db, "Santri A", "S001", &h.ID)

	kemarin := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	hariIni := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	lama := setoranModel.SetoranModel{
		IDSantri: santri.ID, IDAsatidz: ahmad.ID, TanggalSetoran: kemarin,
		Juz: 1, AyatDari: 1, AyatSampai: 7, NilaiKelancaran: 80,
		Status: setoranModel.StatusLancar,
	}
	baru := setoranModel.SetoranModel{
		IDSantri: santri.ID, IDAsatidz: ahmad.ID, TanggalSetoran: hariIni,
		Juz: 1, AyatDari: 8, AyatSampai: 14, NilaiKelancaran: 90,
		Status: setoranModel.StatusLancar,
	}
	// Setoran yatim: santri & evaluator sudah tidak ada
	yatim := setoranModel.SetoranModel{
		IDSantri: uuid.New(), IDAsatidz: uuid.New(), TanggalSetoran: kemarin,
		Juz: 2, AyatDari: 1, AyatSampai: 5, NilaiKelancaran: 70,
		Status: setoranModel.StatusUlang,
	}
	mustCreate(t, db, &lama)
	mustCreate(t, db, &baru)
	mustCreate(t, db, &yatim)

	out, err := svc.ListSetoranEnriched(ctx, 100, 0)
	if err != nil {
		t.Fatalf("ListSetoranEnriched: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 setoran, got %d", len(out))
	}
	// Terbaru dulu
	if out[0].ID != baru.ID {
		t.Errorf("expected newest first, got %v", out[0].ID)
	}
	if out[0].NamaSantri != "Santri A" || out[0].NIS != "S001" || out[0].NamaAsatidz != "ahmad" {
		t.Errorf("join fields: %+v", out[0])
	}

	// Baris yatim pakai placeholder, bukan error
	var yatimRow *SetoranEnriched
	for i := range out {
		if out[i].ID == yatim.ID {
			yatimRow = &out[i]
		}
	}
	if yatimRow == nil {
		t.Fatal("orphan setoran missing from list")
	}
	if yatimRow.NamaSantri != "-" || yatimRow.NIS != "-" || yatimRow.NamaAsatidz != "-" {
		t.Errorf("expected placeholders for orphan row: %+v", yatimRow)
	}
}

func TestListSetoranEnrichedPaging(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	h := newHalaqoh(t, db, "Halaqoh Alfa", nil)
	santri := newSantri(t, db, "Santri A", "S001", &h.ID)

	tanggal := []time.Time{
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
	}
	for _, tgl := range tanggal {
		s := setoranModel.SetoranModel{
			IDSantri: santri.ID, IDAsatidz: uuid.New(), TanggalSetoran: tgl,
			Juz: 1, AyatDari: 1, AyatSampai: 7, NilaiKelancaran: 80,
			Status: setoranModel.StatusLancar,
		}
		mustCreate(t, db, &s)
	}

	total, err := svc.CountSetoran(ctx)
	if err != nil {
		t.Fatalf("CountSetoran: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}

	// Halaman pertama: 2 terbaru
	page1, err := svc.ListSetoranEnriched(ctx, 2, 0)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(page1) != 2 {
		t.Fatalf("page 1 len = %d, want 2", len(page1))
	}
	if !page1[0].TanggalSetoran.After(page1[1].TanggalSetoran) {
		t.Errorf("page 1 not ordered newest first: %v, %v", page1[0].TanggalSetoran, page1[1].TanggalSetoran)
	}

	// Halaman kedua: sisa 1 (yang paling lama)
	page2, err := svc.ListSetoranEnriched(ctx, 2, 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("page 2 len = %d, want 1", len(page2))
	}
	if !page2[0].TanggalSetoran.Equal(tanggal[0]) {
		t.Errorf("page 2 row = %v, want oldest %v", page2[0].TanggalSetoran, tanggal[0])
	}
}

func TestListAbsensiEnriched(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	h := newHalaqoh(t, db, "Halaqoh Alfa", nil)
	santri := newSantri(t, db, "Santri A", "S001", &h.ID)

	kemarin := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	hariIni := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	lama := absensiModel.AbsensiModel{IDSantri: santri.ID, Tanggal: kemarin, StatusKehadiran: absensiModel.StatusHadir}
	baru := absensiModel.AbsensiModel{IDSantri: santri.ID, Tanggal: hariIni, StatusKehadiran: absensiModel.StatusSakit}
	yatim := absensiModel.AbsensiModel{IDSantri: uuid.New(), Tanggal: kemarin, StatusKehadiran: absensiModel.StatusAlpha}
	mustCreate(t, db, &lama)
	mustCreate(t, db, &baru)
	mustCreate(t, db, &yatim)

	out, err := svc.ListAbsensiEnriched(ctx, 100, 0)
	if err != nil {
		t.Fatalf("ListAbsensiEnriched: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 absensi, got %d", len(out))
	}
	if out[0].ID != baru.ID {
		t.Errorf("expected newest first, got %v", out[0].ID)
	}
	if out[0].NamaSantri != "Santri A" || out[0].StatusKehadiran != absensiModel.StatusSakit {
		t.Errorf("join fields: %+v", out[0])
	}

	var yatimRow *AbsensiEnriched
	for i := range out {
		if out[i].ID == yatim.ID {
			yatimRow = &out[i]
		}
	}
	if yatimRow == nil {
		t.Fatal("orphan absensi missing from list")
	}
	if yatimRow.NamaSantri != "-" || yatimRow.NIS != "-" {
		t.Errorf("expected placeholders for orphan row: %+v", yatimRow)
	}
}
