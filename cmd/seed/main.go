// cmd/seed/main.go
// Seeder data dummy untuk development: akun asatidz via provisioning,
// lalu halaqoh, santri, setoran, dan absensi contoh.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/configs"
	database "tahfidzku_backend/internals/databases"
	absensiModel "tahfidzku_backend/internals/features/tahfidz/absensi/model"
	halaqohModel "tahfidzku_backend/internals/features/tahfidz/halaqoh/model"
	santriModel "tahfidzku_backend/internals/features/tahfidz/santri/model"
	setoranModel "tahfidzku_backend/internals/features/tahfidz/setoran/model"
	asatidzModel "tahfidzku_backend/internals/features/users/asatidz/model"
	asatidzService "tahfidzku_backend/internals/features/users/asatidz/service"
	authModel "tahfidzku_backend/internals/features/users/auth/model"
	userModel "tahfidzku_backend/internals/features/users/user/model"
)

func main() {
	configs.LoadEnv()
	database.ConnectDB()
	db := database.DB

	log.Println("⚙️ Menjalankan migrasi skema...")
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&asatidzModel.ProfileModel{},
		&asatidzModel.UserRoleModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklist{},
		&halaqohModel.HalaqohModel{},
		&santriModel.SantriModel{},
		&setoranModel.SetoranModel{},
		&absensiModel.AbsensiModel{},
	); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}

	ctx := context.Background()
	svc := asatidzService.NewProvisioningService(db)

	// ===================== ASATIDZ =====================
	asatidz := []asatidzService.AsatidzInput{
		{NamaLengkap: "Ustadz Ahmad", Username: "ahmad", Email: "ahmad@example.com", Password: "password123", NoHP: "081234567800"},
		{NamaLengkap: "Ustadz Budi", Username: "budi", Email: "budi@example.com", Password: "password123", NoHP: "081234567801"},
	}

	asatidzIDs := make([]uuid.UUID, 0, len(asatidz))
	for _, input := range asatidz {
		id, err := svc.ProvisionAsatidz(ctx, input)
		if err != nil {
			log.Printf("ℹ️ Asatidz '%s' dilewati: %v", input.Email, err)
			// Pakai profil yang sudah ada kalau memang sudah terdaftar
			var existing asatidzModel.ProfileModel
			if dbErr := db.Where("email = ?", input.Email).First(&existing).Error; dbErr != nil {
				continue
			}
			asatidzIDs = append(asatidzIDs, existing.ID)
			continue
		}
		log.Printf("✅ Asatidz '%s' dibuat (%s)", input.NamaLengkap, id)
		asatidzIDs = append(asatidzIDs, id)
	}
	if len(asatidzIDs) < 2 {
		log.Fatal("❌ Butuh minimal 2 asatidz untuk seed halaqoh")
	}

	// ===================== HALAQOH =====================
	tingkatPemula, tingkatMenengah := "Pemula", "Menengah"
	halaqohs := []halaqohModel.HalaqohModel{
		{NamaHalaqoh: "Halaqoh Umar bin Khattab", IDAsatidz: &asatidzIDs[0], Tingkat: &tingkatPemula},
		{NamaHalaqoh: "Halaqoh Ali bin Abi Thalib", IDAsatidz: &asatidzIDs[1], Tingkat: &tingkatMenengah},
	}
	for i := range halaqohs {
		upsertHalaqoh(db, &halaqohs[i])
	}

	// ===================== SANTRI =====================
	santris := []santriModel.SantriModel{
		{NamaSantri: "Santri A", NIS: "S001", Status: santriModel.StatusAktif, IDHalaqoh: &halaqohs[0].ID},
		{NamaSantri: "Santri B", NIS: "S002", Status: santriModel.StatusAktif, IDHalaqoh: &halaqohs[0].ID},
		{NamaSantri: "Santri C", NIS: "S003", Status: santriModel.StatusAktif, IDHalaqoh: &halaqohs[1].ID},
	}
	for i := range santris {
		upsertSantri(db, &santris[i])
	}

	// ===================== SETORAN & ABSENSI =====================
	today := time.Now().UTC().Truncate(24 * time.Hour)
	setorans := []setoranModel.SetoranModel{
		{IDSantri: santris[0].ID, IDAsatidz: asatidzIDs[0], TanggalSetoran: today, Juz: 1, AyatDari: 1, AyatSampai: 7, NilaiKelancaran: 80, Status: setoranModel.StatusLancar},
		{IDSantri: santris[1].ID, IDAsatidz: asatidzIDs[0], TanggalSetoran: today, Juz: 2, AyatDari: 1, AyatSampai: 20, NilaiKelancaran: 90, Status: setoranModel.StatusLancar},
		{IDSantri: santris[2].ID, IDAsatidz: asatidzIDs[1], TanggalSetoran: today, Juz: 1, AyatDari: 1, AyatSampai: 10, NilaiKelancaran: 85, Status: setoranModel.StatusUlang},
	}
	for i := range setorans {
		if err := db.Create(&setorans[i]).Error; err != nil {
			log.Printf("❌ Gagal insert setoran: %v", err)
		}
	}

	for _, s := range santris {
		absen := absensiModel.AbsensiModel{
			IDSantri:        s.ID,
			Tanggal:         today,
			StatusKehadiran: absensiModel.StatusHadir,
		}
		if err := db.Create(&absen).Error; err != nil {
			log.Printf("❌ Gagal insert absensi: %v", err)
		}
	}

	log.Printf("✅ Seed selesai: %d asatidz, %d halaqoh, %d santri, %d setoran",
		len(asatidzIDs), len(halaqohs), len(santris), len(setorans))
}

func upsertHalaqoh(db *gorm.DB, h *halaqohModel.HalaqohModel) {
	var existing halaqohModel.HalaqohModel
	if err := db.Where("nama_halaqoh = ?", h.NamaHalaqoh).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Halaqoh '%s' sudah ada, dilewati.", h.NamaHalaqoh)
		*h = existing
		return
	}
	if err := db.Create(h).Error; err != nil {
		log.Fatalf("❌ Gagal insert halaqoh '%s': %v", h.NamaHalaqoh, err)
	}
	log.Printf("✅ Berhasil insert halaqoh '%s'", h.NamaHalaqoh)
}

func upsertSantri(db *gorm.DB, s *santriModel.SantriModel) {
	var existing santriModel.SantriModel
	if err := db.Where("nis = ?", s.NIS).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Santri NIS '%s' sudah ada, dilewati.", s.NIS)
		*s = existing
		return
	}
	if err := db.Create(s).Error; err != nil {
		log.Fatalf("❌ Gagal insert santri '%s': %v", s.NamaSantri, err)
	}
	log.Printf("✅ Berhasil insert santri '%s'", s.NamaSantri)
}
