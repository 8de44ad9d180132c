package middlewares

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/pkg/resp"
)

const maxImageSize = 10 << 20 // 10MB per file

// ImageUpload saves multipart files from the "images" field into
// uploads/<subdir> and leaves the public URLs in the context under
// "imageUrls". Non-image files and oversized files reject the request.
// Requests without files pass through untouched, so JSON bodies keep working.
func ImageUpload(subdir string, maxCount int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			resp.BadRequest(c, "Invalid multipart form")
			c.Abort()
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			c.Next()
			return
		}
		if len(files) > maxCount {
			resp.BadRequest(c, fmt.Sprintf("At most %d images allowed", maxCount))
			c.Abort()
			return
		}

		urls := make([]string, 0, len(files))
		for _, file := range files {
			if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
				resp.BadRequest(c, "Not an image! Please upload only images.")
				c.Abort()
				return
			}
			if file.Size > maxImageSize {
				resp.BadRequest(c, "Image exceeds the 10MB limit")
				c.Abort()
				return
			}

			filename := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
			savePath := filepath.Join("uploads", subdir, filename)
			if err := c.SaveUploadedFile(file, savePath); err != nil {
				resp.Error(c, err)
				c.Abort()
				return
			}

			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
			urls = append(urls, fmt.Sprintf("%s://%s/uploads/%s/%s", scheme, c.Request.Host, subdir, filename))
		}

		c.Set("imageUrls", urls)
		c.Next()
	}
}

// UploadedImageURLs returns whatever ImageUpload stored for this request.
func UploadedImageURLs(c *gin.Context) []string {
	if v, ok := c.Get("imageUrls"); ok {
		if urls, ok := v.([]string); ok {
			return urls
		}
	}
	return nil
}
