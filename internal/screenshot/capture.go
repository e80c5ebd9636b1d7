package screenshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hasib303/figma-info-gen/internal/artifact"
	"github.com/Hasib303/figma-info-gen/internal/figma"
)

// Capturer renders the top-level nodes of every page to PNG files.
type Capturer struct {
	Client *figma.Client
	Store  *artifact.Store // optional mirror of captured files, may be nil
	OutDir string
}

// CaptureAll fetches the file and captures one screenshot per top-level
// node of each CANVAS page. A failed node is reported and skipped; the
// batch continues. A failed file fetch aborts the whole run. Returns the
// paths of the files written.
func (c *Capturer) CaptureAll(ctx context.Context, fileKey string) ([]string, error) {
	file, err := c.Client.File(ctx, fileKey)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return nil, err
	}

	var saved []string
	for _, page := range file.Pages() {
		if page.Type != figma.NodeCanvas {
			continue
		}
		fmt.Printf("  - Processing page: %s\n", page.Name)
		for _, node := range page.Children {
			name := sanitizeName(node.Name)
			outPath := filepath.Join(c.OutDir, fmt.Sprintf("%s_%s.png", sanitizeName(page.Name), name))

			fmt.Printf("    - Capturing node: %s (%s)\n", name, node.ID)
			if err := c.captureNode(ctx, fileKey, node.ID, outPath); err != nil {
				fmt.Printf("      - Error capturing node %s: %v\n", node.ID, err)
				continue
			}
			fmt.Printf("      - Saved to: %s\n", outPath)
			saved = append(saved, outPath)
		}
	}
	return saved, nil
}

func (c *Capturer) captureNode(ctx context.Context, fileKey, nodeID, outPath string) error {
	imageURL, err := c.Client.NodeImage(ctx, fileKey, nodeID)
	if err != nil {
		return err
	}
	data, err := c.Client.DownloadImage(ctx, imageURL)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	if c.Store != nil {
		if err := c.Store.Put(ctx, fileKey, filepath.Base(outPath), data, "image/png"); err != nil {
			fmt.Printf("      - Upload skipped for %s: %v\n", filepath.Base(outPath), err)
		}
	}
	return nil
}

// sanitizeName makes a node or page name safe to embed in a filename.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, "\\", "_")
}
