package engine

import "testing"

func TestDefaultExcludes(t *testing.T) {
	files := map[string]bool{
		"web/app.min.js":         true,
		"yarn.lock":              true,
		"ios/pubspec.lock":       true,
		"lib/model.g.dart":       true,
		"assets/.ds_store":       true,
		"api/types.pb.go":        true,
		"src/app.js":             false,
		"config/settings.py":     false,
		"lib/screens/login.dart": false,
	}
	for p, want := range files {
		if got := isDefaultFileExcluded(p); got != want {
			t.Fatalf("isDefaultFileExcluded(%q)=%v want %v", p, got, want)
		}
	}
	for _, d := range []string{"node_modules", ".git", ".github", ".dart_tool", "__pycache__"} {
		if !isDefaultDirExcluded(d) {
			t.Fatalf("expected %s to be excluded", d)
		}
	}
	if isDefaultDirExcluded("src") {
		t.Fatalf("src should not be excluded")
	}
}

func TestGlobFilter(t *testing.T) {
	f := newGlobFilter("**/*.go, ./cmd/**", "**/*_test.go")
	cases := map[string]bool{
		"main.go":              true,
		"internal/a/b.go":      true,
		"internal/a/b_test.go": false,
		"cmd/tool/README":      true,
		"docs/index.md":        false,
	}
	for p, want := range cases {
		if got := f.allowed(p); got != want {
			t.Fatalf("allowed(%q)=%v want %v", p, got, want)
		}
	}
	if !newGlobFilter("", "").allowed("anything/at/all.txt") {
		t.Fatalf("empty filter should allow everything")
	}
}
