package fs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "orig.txt")
	writeFile(t, good, []byte("今天是星期天，天气晴。"))

	content, err := NewReader().ReadDocument(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "今天是星期天，天气晴。" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestReadDocument_UpperCaseExt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ORIG.TXT")
	writeFile(t, path, []byte("hello"))

	if _, err := NewReader().ReadDocument(path); err != nil {
		t.Errorf("expected .TXT to be accepted, got %v", err)
	}
}

func TestReadDocument_StripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.txt")
	writeFile(t, path, append([]byte{0xEF, 0xBB, 0xBF}, []byte("text")...))

	content, err := NewReader().ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if content != "text" {
		t.Errorf("expected BOM to be dropped, got %q", content)
	}
}

func TestReadDocument_Failures(t *testing.T) {
	dir := t.TempDir()

	notTxt := filepath.Join(dir, "orig.md")
	writeFile(t, notTxt, []byte("x"))

	latin1 := filepath.Join(dir, "latin1.txt")
	writeFile(t, latin1, []byte{'c', 'a', 'f', 0xE9})

	subdir := filepath.Join(dir, "folder.txt")
	if err := os.Mkdir(subdir, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"wrong extension", notTxt, ErrNotTxt},
		{"missing", filepath.Join(dir, "missing.txt"), ErrNotFound},
		{"invalid utf-8", latin1, ErrEncoding},
		{"directory", subdir, ErrIsDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader().ReadDocument(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestReadDocument_Permission(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	path := filepath.Join(t.TempDir(), "locked.txt")
	writeFile(t, path, []byte("secret"))
	if err := os.Chmod(path, 0000); err != nil {
		t.Fatal(err)
	}

	_, err := NewReader().ReadDocument(path)
	if !errors.Is(err, ErrPermission) {
		t.Errorf("expected ErrPermission, got %v", err)
	}
}

func TestWriteResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "result.txt")

	if err := NewWriter().WriteResult(path, 0.9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0.90" {
		t.Errorf("expected 0.90, got %q", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the result file, found %d entries", len(entries))
	}
}

func TestWriteResult_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	writeFile(t, path, []byte("0.10"))

	if err := NewWriter().WriteResult(path, 0.456); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "0.46" {
		t.Errorf("expected 0.46, got %q", data)
	}
}

func TestWriteResult_RejectsNonTxt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "result.csv")

	err := NewWriter().WriteResult(path, 0.5)
	if !errors.Is(err, ErrNotTxt) {
		t.Fatalf("expected ErrNotTxt, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Error("no directory should be created for a rejected path")
	}
}

func TestWalker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), []byte("a"))
	writeFile(t, filepath.Join(root, "sub", "b.txt"), []byte("b"))
	writeFile(t, filepath.Join(root, "sub", "notes.md"), []byte("c"))
	writeFile(t, filepath.Join(root, "drafts", "c.txt"), []byte("d"))
	writeFile(t, filepath.Join(root, ".plagcheck", "d.txt"), []byte("e"))

	w := NewWalker([]string{"**/*.txt"}, []string{"drafts/**", "**/.plagcheck/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	var rel []string
	for _, f := range files {
		rel = append(rel, f.RelPath)
	}
	want := []string{"a.txt", "sub/b.txt"}
	if !reflect.DeepEqual(rel, want) {
		t.Errorf("got %v, want %v", rel, want)
	}
}

func TestWalker_DefaultIncludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.txt"), []byte("x"))
	writeFile(t, filepath.Join(root, "y.log"), []byte("y"))

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].RelPath != "x.txt" {
		t.Errorf("unexpected files: %+v", files)
	}
}
