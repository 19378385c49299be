package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "timeaify/internal/modules/"

// walkImports calls check for every module import in the non-test Go files
// under root.
func walkImports(t *testing.T, root string, check func(path, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.Contains(importPath, modulePrefix) {
				check(filepath.ToSlash(path), importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules"), func(path, importPath string) {
		module := moduleName(path)
		layer := detectLayer(path)
		if module == "" || layer == "" {
			return
		}
		if violatesLayerRule(module, layer, importPath) {
			t.Errorf("forbidden import in %s (%s): %s", path, layer, importPath)
		}
	})
}

func TestPlatformIsModuleAgnostic(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "platform"), func(path, importPath string) {
		t.Errorf("platform package %s imports module code: %s", path, importPath)
	})
}

func TestUIUsesOnlyDTOs(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "ui"), func(path, importPath string) {
		if !isDTO(importPath) {
			t.Errorf("ui package %s must talk to modules through dto types only: %s", path, importPath)
		}
	})
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func violatesLayerRule(module, layer, importPath string) bool {
	sameModule := strings.Contains(importPath, "/internal/modules/"+module+"/")
	if !sameModule {
		return !isPortIn(importPath) && !isDTO(importPath)
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return strings.Contains(importPath, "/adapter/")
	case "service":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/")
	case "domain", "dto":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") || strings.Contains(importPath, "/service/")
	default:
		return false
	}
}
