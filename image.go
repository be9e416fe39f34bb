package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andareed/memoria/memorial"
	tea "github.com/charmbracelet/bubbletea"
)

type imageFailedMsg struct {
	err *memorial.ImageLoadError
}

// checkImageCmd resolves ref off the event loop. Only failures produce a message.
func checkImageCmd(ref, baseDir string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := resolveImage(ctx, ref, baseDir); err != nil {
			return imageFailedMsg{err: &memorial.ImageLoadError{Ref: ref, Err: err}}
		}
		return nil
	}
}

func resolveImage(ctx context.Context, ref, baseDir string) error {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, ref, nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil
	}

	path := ref
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
