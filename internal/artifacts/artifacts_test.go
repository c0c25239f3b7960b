package artifacts

import (
	"os"
	"path/filepath"
	"testing"
)

type fakeSource map[Name][]byte

func (f fakeSource) Bytes(name Name) ([]byte, error) {
	data, ok := f[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func TestMaterializeWritesFile(t *testing.T) {
	dir := t.TempDir()
	src := fakeSource{InjectHelper: []byte("binary-bytes")}

	path, err := MaterializeWithPolicy(src, InjectHelper, PathPolicy{Dir: dir})
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("path = %s, want dir %s", path, dir)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "binary-bytes" {
		t.Fatalf("content = %q, want %q", got, "binary-bytes")
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := fakeSource{InjectHelper: []byte("binary-bytes")}

	path1, err := MaterializeWithPolicy(src, InjectHelper, PathPolicy{Dir: dir})
	if err != nil {
		t.Fatalf("first Materialize: %v", err)
	}
	info1, _ := os.Stat(path1)

	path2, err := MaterializeWithPolicy(src, InjectHelper, PathPolicy{Dir: dir})
	if err != nil {
		t.Fatalf("second Materialize: %v", err)
	}
	info2, _ := os.Stat(path2)

	if path1 != path2 {
		t.Fatalf("paths differ across calls: %s vs %s", path1, path2)
	}
	if !info1.ModTime().Equal(info2.ModTime()) {
		t.Fatalf("file was rewritten on second call despite unchanged content")
	}
}

func TestMaterializeByHashSeparatesRevisions(t *testing.T) {
	dir := t.TempDir()
	srcV1 := fakeSource{HookDLL: []byte("v1")}
	srcV2 := fakeSource{HookDLL: []byte("v2")}

	path1, err := MaterializeWithPolicy(srcV1, HookDLL, PathPolicy{Dir: dir, ByHash: true})
	if err != nil {
		t.Fatalf("materialize v1: %v", err)
	}
	path2, err := MaterializeWithPolicy(srcV2, HookDLL, PathPolicy{Dir: dir, ByHash: true})
	if err != nil {
		t.Fatalf("materialize v2: %v", err)
	}
	if path1 == path2 {
		t.Fatalf("expected distinct paths for distinct content, got %s for both", path1)
	}
}

func TestMaterializeMissingAssetErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := MaterializeWithPolicy(fakeSource{}, HookDLL, PathPolicy{Dir: dir})
	if err == nil {
		t.Fatal("expected error for missing asset")
	}
}
