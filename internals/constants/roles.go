package constants

// Nama role yang dikenal sistem.
// "Asatidz" adalah role pengajar halaqoh — dipakai Provisioning saat membuat akun ustadz.
const (
	RoleAdmin   = "Admin"
	RoleAsatidz = "Asatidz"
)
