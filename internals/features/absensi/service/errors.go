package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kelas error domain absensi. Controller memetakan ke HTTP lewat HTTPStatus;
// service cukup membungkus dengan %w supaya errors.Is tetap jalan.
var (
	// ErrInvalidTransition: aksi tidak sah untuk status sesi saat ini
	// (misal absen sebelum sesi mulai).
	ErrInvalidTransition = errors.New("transisi status tidak valid")

	// ErrLocked: record lama dan unlock global sedang mati.
	ErrLocked = errors.New("absensi terkunci")

	// ErrForbidden: pemanggil bukan pemilik peran yang berhak.
	ErrForbidden = errors.New("tidak berhak melakukan aksi ini")

	// ErrConflict: tabrakan unique constraint (submit ganda bersamaan).
	ErrConflict = errors.New("data sudah ada")

	ErrNotFound = errors.New("data tidak ditemukan")

	// ErrData: payload tidak bisa diproses (enum tidak dikenal, jam rusak).
	ErrData = errors.New("data tidak valid")
)

// HTTPStatus memetakan error domain ke kode HTTP.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrLocked):
		return fiber.StatusLocked
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrData):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
