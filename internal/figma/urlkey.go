package figma

import (
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL means the URL carries no /file/<key> or /design/<key> segment.
var ErrInvalidURL = fmt.Errorf("figma: invalid project URL")

// ExtractFileKey pulls the stable file key out of a Figma project URL.
// Both the old /file/<key>/... and the new /design/<key>/... path schemes
// are accepted; the key is the segment right after the marker.
func ExtractFileKey(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	parts := strings.Split(u.Path, "/")
	for i, part := range parts {
		if part != "file" && part != "design" {
			continue
		}
		if i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
}
