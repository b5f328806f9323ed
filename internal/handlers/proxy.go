// internal/handlers/proxy.go
package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

// ProxyHandler fetches remote product images server side so the admin panel
// never hits third-party CORS walls.
type ProxyHandler struct {
	client *http.Client
}

func NewProxyHandler(timeout time.Duration) *ProxyHandler {
	return &ProxyHandler{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// ProxyImage handles GET /proxy-image?url=. The upstream fetch is bounded by
// the client timeout; a slow or dead origin turns into an error response,
// never a hang.
func (h *ProxyHandler) ProxyImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		utils.BadRequestResponse(c, "url query parameter required", nil)
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		utils.BadRequestResponse(c, "invalid url", nil)
		return
	}

	lang := utils.GetLangFromContext(c)

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		utils.BadRequestResponse(c, "invalid url", nil)
		return
	}
	// Some image CDNs reject requests without browser-like headers.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Accept", "image/avif,image/webp,image/*,*/*;q=0.8")
	req.Header.Set("Referer", parsed.Scheme+"://"+parsed.Host+"/")

	resp, err := h.client.Do(req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "FETCH_FAILED",
			i18n.T(lang, i18n.KeyProxyFetchFailed), nil)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND",
			i18n.T(lang, i18n.KeyProxyImageNotFound), nil)
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}
