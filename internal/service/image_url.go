package service

import "strings"

// ImagePathPrefix is where the HTTP server mounts IMAGE_DIR.
const ImagePathPrefix = "/images"

// PublicImageURL turns a catalog-relative image path into an absolute URL.
func PublicImageURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(baseURL, "/") + ImagePathPrefix + "/" + strings.TrimLeft(path, "/")
}
