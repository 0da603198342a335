package models

// Category kategori produk yang dikelola admin. Daftar yang tampil di
// publik adalah gabungan koleksi ini dengan kategori yang terpakai produk.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
