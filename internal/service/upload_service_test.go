package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mustafayildiz-m/iw-project/pkg/storage"
)

func newUploadFixture(t *testing.T, maxSize int64) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.LocalConfig{BasePath: dir})
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	return NewUploadService(store, maxSize), dir
}

func TestClassifyFile(t *testing.T) {
	cases := []struct {
		filename string
		kind     FileKind
		wantErr  bool
	}{
		{"photo.jpg", FileKindImage, false},
		{"PHOTO.JPEG", FileKindImage, false},
		{"anim.gif", FileKindImage, false},
		{"clip.mp4", FileKindVideo, false},
		{"clip.WEBM", FileKindVideo, false},
		{"kitap.pdf", FileKindPDF, false},
		{"malware.exe", "", true},
		{"noext", "", true},
	}
	for _, tc := range cases {
		kind, err := ClassifyFile(tc.filename)
		if tc.wantErr {
			if !errors.Is(err, ErrUnsupportedFileType) {
				t.Errorf("%s: expected ErrUnsupportedFileType, got %v", tc.filename, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.filename, err)
			continue
		}
		if kind != tc.kind {
			t.Errorf("%s: expected %s, got %s", tc.filename, tc.kind, kind)
		}
	}
}

func TestStoreRoutesByKind(t *testing.T) {
	svc, dir := newUploadFixture(t, 1<<20)

	content := strings.NewReader("fake image bytes")
	kind, url, err := svc.Store(context.Background(), "resim.png", 16, "image/png", content)
	if err != nil {
		t.Fatalf("store image: %v", err)
	}
	if kind != FileKindImage {
		t.Errorf("expected image kind, got %s", kind)
	}
	if !strings.Contains(url, "/"+DirPostImages+"/") {
		t.Errorf("image url not under image dir: %s", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("extension not preserved: %s", url)
	}

	entries, err := os.ReadDir(filepath.Join(dir, DirPostImages))
	if err != nil {
		t.Fatalf("read image dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored file, got %d", len(entries))
	}

	kind, url, err = svc.Store(context.Background(), "video.mp4", 16, "video/mp4", strings.NewReader("fake video bytes"))
	if err != nil {
		t.Fatalf("store video: %v", err)
	}
	if kind != FileKindVideo || !strings.Contains(url, "/"+DirPostVideos+"/") {
		t.Errorf("unexpected video routing: kind=%s url=%s", kind, url)
	}

	kind, url, err = svc.Store(context.Background(), "kitap.pdf", 16, "application/pdf", strings.NewReader("fake pdf bytes"))
	if err != nil {
		t.Fatalf("store pdf: %v", err)
	}
	if kind != FileKindPDF || !strings.Contains(url, "/"+DirPDFs+"/") {
		t.Errorf("unexpected pdf routing: kind=%s url=%s", kind, url)
	}
}

func TestStoreRejectsBeforeWriting(t *testing.T) {
	svc, dir := newUploadFixture(t, 10)

	_, _, err := svc.Store(context.Background(), "zararli.exe", 5, "application/octet-stream", strings.NewReader("nope"))
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}

	_, _, err = svc.Store(context.Background(), "buyuk.png", 11, "image/png", strings.NewReader("12345678901"))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	// Nothing reached the disk for either rejection.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty storage dir, found %d entries", len(entries))
	}
}

func TestStoredFilenamesAreUnique(t *testing.T) {
	svc, _ := newUploadFixture(t, 1<<20)

	_, first, err := svc.Store(context.Background(), "ayni.jpg", 4, "image/jpeg", strings.NewReader("aaaa"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	_, second, err := svc.Store(context.Background(), "ayni.jpg", 4, "image/jpeg", strings.NewReader("bbbb"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if first == second {
		t.Errorf("expected unique keys for identical filenames, got %s twice", first)
	}
}
