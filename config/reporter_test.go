package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return r
}

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Archive(t *testing.T) {
	r := newTestReport(t)

	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "a.css"), []byte(".a{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "sub", "b.css"), []byte(".b{}"), 0644); err != nil {
		t.Fatal(err)
	}
	logName := filepath.Join(src, "run.log")
	if err := os.WriteFile(logName, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("final.log", logName)
	r.StoreData("tree.txt", []byte("dump"))
	if err := r.StoreCopy("input", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}

	name := r.Name()
	if !filepath.IsAbs(name) {
		t.Errorf("Name() = %q, expected absolute path", name)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, name)
	for fname, want := range map[string]string{
		"final.log":       "log line",
		"tree.txt":        "dump",
		"input/a.css":     ".a{}",
		"input/sub/b.css": ".b{}",
	} {
		if got, ok := files[fname]; !ok || got != want {
			t.Errorf("archive entry %s = %q (present %v), want %q", fname, got, ok, want)
		}
	}
	manifest := files["MANIFEST"]
	for _, entry := range []string{"final.log", "tree.txt", "input"} {
		if !strings.Contains(manifest, "\t"+entry+"\t") {
			t.Errorf("MANIFEST does not list %s:\n%s", entry, manifest)
		}
	}
}

func TestReport_StoreCopyIsSnapshot(t *testing.T) {
	r := newTestReport(t)

	path := filepath.Join(t.TempDir(), "a.css")
	if err := os.WriteFile(path, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("a.css", path); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := os.WriteFile(path, []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}
	// same name is versioned
	if err := r.StoreCopy("a.css", path); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	scratch := append([]string(nil), r.scratch...)

	name := r.Name()
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, name)
	if files["a.css"] != "before" {
		t.Errorf("first snapshot = %q, want before", files["a.css"])
	}
	var versioned int
	for fname, content := range files {
		if strings.HasPrefix(fname, "a.css-") && content == "after" {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned snapshot, got %d in %v", versioned, files)
	}

	for _, dir := range scratch {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("snapshot directory %s was not removed", dir)
		}
	}
}

func TestReport_StoreCopyMissing(t *testing.T) {
	r := newTestReport(t)
	defer r.Close()

	if err := r.StoreCopy("x", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestReport_StorePanicsOnConflict(t *testing.T) {
	r := newTestReport(t)
	defer r.Close()

	r.Store("final.log", "/tmp/a.log")
	// same path again is fine
	r.Store("final.log", "/tmp/a.log")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting entry")
		}
	}()
	r.Store("final.log", "/tmp/b.log")
}

func TestReport_Nil(t *testing.T) {
	var r *Report

	r.Store("a", "b")
	r.StoreData("a", []byte("b"))
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReporterConfig_PrepareFallsBackToTemp(t *testing.T) {
	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "missing", "dir", "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	name := r.Name()
	defer os.Remove(name)

	if !strings.HasPrefix(filepath.Base(name), "cssshare-report.") {
		t.Errorf("unexpected fallback report name %q", name)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
