package templates

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed scaffold
var scaffoldFS embed.FS

// ScaffoldData is the substitution set for project templates
type ScaffoldData struct {
	Name     string   // crate name
	Library  string   // shared library name, the crate name with '-' replaced
	Authors  []string // "Name <email>" entries
	GroupID  string
	Artifact string
}

// ScaffoldFile is one rendered project file, relative to the project root
type ScaffoldFile struct {
	Path    string
	Content string
}

// Flavors lists the available project flavors
func Flavors() []string {
	entries, err := fs.ReadDir(scaffoldFS, "scaffold")
	if err != nil {
		return nil
	}
	var flavors []string
	for _, entry := range entries {
		if entry.IsDir() {
			flavors = append(flavors, entry.Name())
		}
	}
	sort.Strings(flavors)
	return flavors
}

// RenderScaffold renders every template of a flavor. The .tmpl suffix is
// dropped and gitignore becomes .gitignore.
func RenderScaffold(flavor string, data ScaffoldData) ([]ScaffoldFile, error) {
	root := path.Join("scaffold", flavor)
	var files []ScaffoldFile

	err := fs.WalkDir(scaffoldFS, root, func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		raw, err := scaffoldFS.ReadFile(name)
		if err != nil {
			return err
		}

		content, err := executeTemplate(name, string(raw), data)
		if err != nil {
			return err
		}

		files = append(files, ScaffoldFile{
			Path:    scaffoldTarget(strings.TrimPrefix(name, root+"/")),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func scaffoldTarget(rel string) string {
	rel = strings.TrimSuffix(rel, ".tmpl")
	dir, file := path.Split(rel)
	if file == "gitignore" {
		file = ".gitignore"
	}
	return dir + file
}
