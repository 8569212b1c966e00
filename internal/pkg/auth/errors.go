package auth

import "errors"

var (
	ErrNotFound         = errors.New("account not found")
	ErrMismatch         = errors.New("password mismatch")
	ErrSessionExpired   = errors.New("session expired")
	ErrNotAdmin         = errors.New("account is not an admin")
	ErrKeyMismatch      = errors.New("admin key mismatch")
	ErrStoreUnavailable = errors.New("credential store unavailable")

	// ErrRecordNotFound is returned by stores when the requested row does not exist.
	ErrRecordNotFound = errors.New("record not found")
)

// Message maps a verifier error to the message shown in the panel.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "Username tidak ditemukan"
	case errors.Is(err, ErrMismatch):
		return "Password salah"
	case errors.Is(err, ErrSessionExpired):
		return "Session expired"
	case errors.Is(err, ErrNotAdmin):
		return "Bukan admin"
	case errors.Is(err, ErrKeyMismatch):
		return "Admin key salah"
	case errors.Is(err, ErrStoreUnavailable):
		return "Database tidak tersedia, coba lagi nanti"
	default:
		return "Terjadi kesalahan"
	}
}
