package templates

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestHostStubTemplate_NoDeclarations(t *testing.T) {
	got, err := ExecuteTemplate(HostStubTemplate, HostStubData{Name: "Entity", Library: "mylib"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "public class Entity {\n\n\tstatic {\n\t\tSystem.loadLibrary(\"mylib\");\n\t}\n\n}\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHostStubTemplate_Declarations(t *testing.T) {
	got, err := ExecuteTemplate(HostStubTemplate, HostStubData{
		Name:    "Entity",
		Library: "mylib",
		Declarations: []string{
			"public static native void a();",
			"public native int b(int x);",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "public class Entity {\n\n\tstatic {\n\t\tSystem.loadLibrary(\"mylib\");\n\t}\n" +
		"\n\tpublic static native void a();\n" +
		"\n\tpublic native int b(int x);\n" +
		"\n}\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGlueFunctionTemplate(t *testing.T) {
	tests := []struct {
		name     string
		data     GlueFunctionData
		expected string
	}{
		{
			name: "void",
			data: GlueFunctionData{
				Symbol: "Host_Entity_foobar",
				Params: []string{"_env: roast::JNIEnv", "_class: roast::JClass"},
				Body:   "Entity::foobar();",
			},
			expected: "#[no_mangle]\npub extern \"system\" fn Host_Entity_foobar(_env: roast::JNIEnv, _class: roast::JClass) {\n    Entity::foobar();\n}\n",
		},
		{
			name: "with return",
			data: GlueFunctionData{
				Symbol:     "Host_Entity_count",
				Params:     []string{"env: roast::JNIEnv", "_obj: roast::JObject"},
				ReturnType: "roast::jint",
				Body:       "roast::convert::convert_retval_i32(&env, Entity::count())",
			},
			expected: "#[no_mangle]\npub extern \"system\" fn Host_Entity_count(env: roast::JNIEnv, _obj: roast::JObject) -> roast::jint {\n    roast::convert::convert_retval_i32(&env, Entity::count())\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExecuteTemplate(GlueFunctionTemplate, tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGlueFileTemplate(t *testing.T) {
	got, err := ExecuteTemplate(GlueFileTemplate, GlueFileData{
		Imports:   []string{"crate::Entity"},
		Functions: "fn a() {}\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "// Code generated by roast. DO NOT EDIT.\n\nuse crate::Entity;\n\nfn a() {}\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	empty, err := ExecuteTemplate(GlueFileTemplate, GlueFileData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != "// Code generated by roast. DO NOT EDIT.\n" {
		t.Errorf("unexpected empty file %q", empty)
	}
}

func TestGlueModTemplate(t *testing.T) {
	got, err := ExecuteTemplate(GlueModTemplate, GlueModData{Modules: []string{"entity", "hello"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := GeneratedHeader + "\n\nmod entity;\nmod hello;\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExecuteTemplate_Unknown(t *testing.T) {
	if _, err := ExecuteTemplate("missing", nil); err == nil {
		t.Error("expected error for unregistered template")
	}
}

func TestTemplateRegistry_MustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewTemplateRegistry().MustGet("missing")
}

func TestRenderScaffold_Maven(t *testing.T) {
	files, err := RenderScaffold("maven", ScaffoldData{
		Name:     "my-lib",
		Library:  "my_lib",
		Authors:  []string{"Jane Doe <jane@example.com>"},
		GroupID:  "rs.roast.gen",
		Artifact: "my-lib",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byPath := make(map[string]string)
	for _, f := range files {
		byPath[f.Path] = f.Content
	}

	for _, path := range []string{"Cargo.toml", "roast.toml", "pom.xml", ".gitignore", "src/lib.rs", "src/generated/mod.rs"} {
		if _, ok := byPath[path]; !ok {
			t.Errorf("expected scaffold file %s, got %v", path, files)
		}
	}

	if !strings.Contains(byPath["Cargo.toml"], `authors = ["Jane Doe <jane@example.com>"]`) {
		t.Errorf("authors not substituted:\n%s", byPath["Cargo.toml"])
	}
	if !strings.Contains(byPath["pom.xml"], "<groupId>rs.roast.gen</groupId>") {
		t.Error("group id not substituted")
	}
	if !strings.Contains(byPath["roast.toml"], `name = "my_lib"`) {
		t.Error("library name not substituted")
	}
}

func TestRenderScaffold_AuthorIsEscaped(t *testing.T) {
	author := `Jane "JD" O'Doe \ <jane@example.com>`
	files, err := RenderScaffold("maven", ScaffoldData{
		Name:     "my-lib",
		Library:  "my_lib",
		Authors:  []string{author, "Second"},
		GroupID:  "rs.roast.gen",
		Artifact: "my-lib",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var cargo string
	for _, f := range files {
		if f.Path == "Cargo.toml" {
			cargo = f.Content
		}
	}

	var manifest struct {
		Package struct {
			Authors []string `toml:"authors"`
		} `toml:"package"`
	}
	if _, err := toml.Decode(cargo, &manifest); err != nil {
		t.Fatalf("rendered Cargo.toml is not valid TOML: %v\n%s", err, cargo)
	}
	if len(manifest.Package.Authors) != 2 || manifest.Package.Authors[0] != author || manifest.Package.Authors[1] != "Second" {
		t.Errorf("unexpected authors %q", manifest.Package.Authors)
	}
}

func TestFlavors(t *testing.T) {
	flavors := Flavors()
	if len(flavors) != 1 || flavors[0] != "maven" {
		t.Errorf("expected [maven], got %v", flavors)
	}
}
