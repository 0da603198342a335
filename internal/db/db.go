// Package db memegang satu koneksi GORM untuk seumur hidup proses.
// Kontraknya handle-or-nil: kalau dial gagal, Handle() mengembalikan nil
// dan pembaca turun ke data seed, bukan error ke user.
package db

import (
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once   sync.Once
	handle *gorm.DB
)

// Connect membuka koneksi sekali dan menyimpannya. Panggilan berikutnya
// mengembalikan handle yang sama apa pun dsn-nya.
func Connect(dsn string) *gorm.DB {
	once.Do(func() {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			logrus.WithError(err).Warn("database tidak bisa diakses, jalan dengan data seed")
			return
		}
		handle = gdb
	})
	return handle
}

// Handle koneksi yang sudah dibuka Connect, atau nil kalau dial gagal.
func Handle() *gorm.DB {
	return handle
}
