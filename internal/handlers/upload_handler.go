package handlers

import (
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/prasetyadi-dev/portal_konten_be/internal/storage"
)

type UploadHandler struct {
	// Uploader nil kalau kredensial storage tidak dikonfigurasi.
	Uploader *storage.Uploader
}

func NewUploadHandler(u *storage.Uploader) *UploadHandler {
	return &UploadHandler{Uploader: u}
}

type PresignReq struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

var allowedUploadExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true, ".pdf": true,
}

// PresignedURL menerbitkan URL tulis 5 menit ke object storage.
// Rate limit 10/menit/IP dipasang sebagai middleware di router.
func (h *UploadHandler) PresignedURL(c *fiber.Ctx) error {
	if h.Uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Object storage tidak dikonfigurasi",
		})
	}

	var req PresignReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	ext := strings.ToLower(path.Ext(strings.TrimSpace(req.FileName)))
	if req.FileName == "" {
		errs.Add("fileName", "Nama file wajib diisi")
	} else if !allowedUploadExt[ext] {
		errs.Add("fileName", "Ekstensi file tidak didukung")
	}
	if req.ContentType == "" {
		errs.Add("contentType", "Content type wajib diisi")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	uploadURL, publicURL, key, err := h.Uploader.PresignPut(c.Context(), req.FileName, req.ContentType)
	if err != nil {
		return internalErr(c, "upload.presign", err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"uploadUrl": uploadURL,
		"publicUrl": publicURL,
		"key":       key,
	})
}
