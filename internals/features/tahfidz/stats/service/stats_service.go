package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==========================
   Roster Aggregator
========================== */

// StatsService menghitung statistik roster turunan langsung dari storage,
// tanpa cache — setiap panggilan membaca state terkini. Tidak ada jaminan
// isolasi antar query dalam satu panggilan (store tidak punya transaksi
// multi-statement), jadi hasilnya "approximately current".
//
// Jumlah round trip dijaga konstan terhadap besar roster: satu query list,
// satu grouped count, satu batched lookup — bukan satu count per baris.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

/* ==========================
   Halaqoh + jumlah santri
========================== */

type HalaqohWithStats struct {
	ID           uuid.UUID  `json:"id"`
	NamaHalaqoh  string     `json:"nama_halaqoh"`
	IDAsatidz    *uuid.UUID `json:"id_asatidz,omitempty"`
	NamaAsatidz  *string    `json:"nama_asatidz,omitempty"` // nil = belum ada pembimbing / profil hilang
	Tingkat      *string    `json:"tingkat,omitempty"`
	JumlahSantri int64      `json:"jumlah_santri"`
}

// ListHalaqohWithStats: daftar halaqoh urut nama ASC (tie-break id) +
// jumlah santri per halaqoh + nama asatidz pembimbing.
// jumlah_santri dihitung tanpa filter status santri (sengaja: semua baris
// yang menunjuk halaqoh ikut dihitung).
func (s *StatsService) ListHalaqohWithStats(ctx context.Context) ([]HalaqohWithStats, error) {
	type halaqohRow struct {
		ID          uuid.UUID
		NamaHalaqoh string
		IDAsatidz   *uuid.UUID
		Tingkat     *string
	}
	var rows []halaqohRow
	if err := s.db.WithContext(ctx).Raw(`
		SELECT id, nama_halaqoh, id_asatidz, tingkat
		FROM halaqoh
		ORDER BY nama_halaqoh ASC, id ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	// Satu grouped count untuk semua halaqoh sekaligus
	counts, err := s.santriCountByHalaqoh(ctx)
	if err != nil {
		return nil, err
	}

	// Satu batched lookup nama asatidz (bukan satu query per halaqoh)
	asatidzIDs := make([]uuid.UUID, 0, len(rows))
	seen := map[uuid.UUID]struct{}{}
	for _, r := range rows {
		if r.IDAsatidz != nil {
			if _, ok := seen[*r.IDAsatidz]; !ok {
				seen[*r.IDAsatidz] = struct{}{}
				asatidzIDs = append(asatidzIDs, *r.IDAsatidz)
			}
		}
	}
	names, err := s.profileNamesByID(ctx, asatidzIDs)
	if err != nil {
		return nil, err
	}

	out := make([]HalaqohWithStats, 0, len(rows))
	for _, r := range rows {
		item := HalaqohWithStats{
			ID:           r.ID,
			NamaHalaqoh:  r.NamaHalaqoh,
			IDAsatidz:    r.IDAsatidz,
			Tingkat:      r.Tingkat,
			JumlahSantri: counts[r.ID], // 0 kalau belum ada santri, bukan error
		}
		if r.IDAsatidz != nil {
			if nama, ok := names[*r.IDAsatidz]; ok {
				item.NamaAsatidz = &nama
			}
			// profil hilang → dibiarkan nil (dianggap "belum ada pembimbing")
		}
		out = append(out, item)
	}
	return out, nil
}

/* ==========================
   Asatidz + jumlah halaqoh
========================== */

type AsatidzWithStats struct {
	ID            uuid.UUID `json:"id"`
	NamaLengkap   string    `json:"nama_lengkap"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	NoHP          *string   `json:"no_hp,omitempty"`
	JumlahHalaqoh int64     `json:"jumlah_halaqoh"`
}

// ListAsatidzWithStats: profil aktif urut nama ASC + jumlah halaqoh yang
// dibimbing. Asatidz nonaktif tidak muncul di sini (lookup by id tetap bisa).
// jumlah_halaqoh dihitung dari baris halaqoh yang menunjuk id asatidz,
// tidak peduli flag aktif.
func (s *StatsService) ListAsatidzWithStats(ctx context.Context) ([]AsatidzWithStats, error) {
	type profileRow struct {
		ID          uuid.UUID
		NamaLengkap string
		Username    string
		Email       string
		NoHP        *string
	}
	var rows []profileRow
	if err := s.db.WithContext(ctx).Raw(`
		SELECT id, nama_lengkap, username, email, no_hp
		FROM profiles
		WHERE aktif = ?
		ORDER BY nama_lengkap ASC, id ASC
	`, true).Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts, err := s.halaqohCountByAsatidz(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AsatidzWithStats, 0, len(rows))
	for _, r := range rows {
		out = append(out, AsatidzWithStats{
			ID:            r.ID,
			NamaLengkap:   r.NamaLengkap,
			Username:      r.Username,
			Email:         r.Email,
			NoHP:          r.NoHP,
			JumlahHalaqoh: counts[r.ID],
		})
	}
	return out, nil
}

/* ==========================
   Log setoran/absensi enriched
========================== */

// Placeholder saat join target-nya sudah tidak ada — bukan error.
const missingJoinPlaceholder = "-"

type SetoranEnriched struct {
	ID              uuid.UUID `json:"id"`
	IDSantri        uuid.UUID `json:"id_santri"`
	IDAsatidz       uuid.UUID `json:"id_asatidz"`
	TanggalSetoran  time.Time `json:"tanggal_setoran"`
	Juz             int       `json:"juz"`
	AyatDari        int       `json:"ayat_dari"`
	AyatSampai      int       `json:"ayat_sampai"`
	NilaiKelancaran int       `json:"nilai_kelancaran"`
	Status          string    `json:"status"`
	Catatan         *string   `json:"catatan,omitempty"`
	NamaSantri      string    `json:"nama_santri"`
	NIS             string    `json:"nis"`
	NamaAsatidz     string    `json:"nama_asatidz"`
}

// CountSetoran: total baris setoran, buat pagination.
func (s *StatsService) CountSetoran(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM setoran`).Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// ListSetoranEnriched: log setoran + nama/NIS santri + nama evaluator,
// urut tanggal terbaru dulu. limit/offset untuk pagination.
func (s *StatsService) ListSetoranEnriched(ctx context.Context, limit, offset int) ([]SetoranEnriched, error) {
	type row struct {
		SetoranEnriched
		NamaSantriJoin  *string
		NISJoin         *string
		NamaAsatidzJoin *string
	}
	var rows []row
	if err := s.db.WithContext(ctx).Raw(`
		SELECT st.id, st.id_santri, st.id_asatidz, st.tanggal_setoran,
		       st.juz, st.ayat_dari, st.ayat_sampai, st.nilai_kelancaran,
		       st.status, st.catatan,
		       sa.nama_santri AS nama_santri_join,
		       sa.nis AS nis_join,
		       p.nama_lengkap AS nama_asatidz_join
		FROM setoran st
		LEFT JOIN santri sa ON sa.id = st.id_santri
		LEFT JOIN profiles p ON p.id = st.id_asatidz
		ORDER BY st.tanggal_setoran DESC, st.created_at DESC, st.id ASC
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]SetoranEnriched, 0, len(rows))
	for _, r := range rows {
		item := r.SetoranEnriched
		item.NamaSantri = orPlaceholder(r.NamaSantriJoin)
		item.NIS = orPlaceholder(r.NISJoin)
		item.NamaAsatidz = orPlaceholder(r.NamaAsatidzJoin)
		out = append(out, item)
	}
	return out, nil
}

type AbsensiEnriched struct {
	ID              uuid.UUID `json:"id"`
	IDSantri        uuid.UUID `json:"id_santri"`
	Tanggal         time.Time `json:"tanggal"`
	StatusKehadiran string    `json:"status_kehadiran"`
	Keterangan      *string   `json:"keterangan,omitempty"`
	NamaSantri      string    `json:"nama_santri"`
	NIS             string    `json:"nis"`
}

// CountAbsensi: total baris absensi, buat pagination.
func (s *StatsService) CountAbsensi(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM absensi`).Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// ListAbsensiEnriched: log absensi + nama/NIS santri, urut tanggal terbaru
// dulu. limit/offset untuk pagination.
func (s *StatsService) ListAbsensiEnriched(ctx context.Context, limit, offset int) ([]AbsensiEnriched, error) {
	type row struct {
		AbsensiEnriched
		NamaSantriJoin *string
		NISJoin        *string
	}
	var rows []row
	if err := s.db.WithContext(ctx).Raw(`
		SELECT ab.id, ab.id_santri, ab.tanggal, ab.status_kehadiran, ab.keterangan,
		       sa.nama_santri AS nama_santri_join,
		       sa.nis AS nis_join
		FROM absensi ab
		LEFT JOIN santri sa ON sa.id = ab.id_santri
		ORDER BY ab.tanggal DESC, ab.created_at DESC, ab.id ASC
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]AbsensiEnriched, 0, len(rows))
	for _, r := range rows {
		item := r.AbsensiEnriched
		item.NamaSantri = orPlaceholder(r.NamaSantriJoin)
		item.NIS = orPlaceholder(r.NISJoin)
		out = append(out, item)
	}
	return out, nil
}

/* ==========================
   Query internal (grouped / batched)
========================== */

func (s *StatsService) santriCountByHalaqoh(ctx context.Context) (map[uuid.UUID]int64, error) {
	type countRow struct {
		IDHalaqoh uuid.UUID
		Jumlah    int64
	}
	var rows []countRow
	if err := s.db.WithContext(ctx).Raw(`
		SELECT id_halaqoh, COUNT(*) AS jumlah
		FROM santri
		WHERE id_halaqoh IS NOT NULL
		GROUP BY id_halaqoh
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		out[r.IDHalaqoh] = r.Jumlah
	}
	return out, nil
}

func (s *StatsService) halaqohCountByAsatidz(ctx context.Context) (map[uuid.UUID]int64, error) {
	type countRow struct {
		IDAsatidz uuid.UUID
		Jumlah    int64
	}
	var rows []countRow
	if err := s.db.WithContext(ctx).Raw(`
		SELECT id_asatidz, COUNT(*) AS jumlah
		FROM halaqoh
		WHERE id_asatidz IS NOT NULL
		GROUP BY id_asatidz
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		out[r.IDAsatidz] = r.Jumlah
	}
	return out, nil
}

func (s *StatsService) profileNamesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	type nameRow struct {
		ID          uuid.UUID
		NamaLengkap string
	}
	var rows []nameRow
	if err := s.db.WithContext(ctx).Raw(`
		SELECT id, nama_lengkap FROM profiles WHERE id IN ?
	`, ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.NamaLengkap
	}
	return out, nil
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return missingJoinPlaceholder
	}
	return *s
}
