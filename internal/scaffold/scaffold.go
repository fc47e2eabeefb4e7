// Package scaffold creates a new roast project from the embedded templates.
package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"go.uber.org/zap"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/templates"
	"github.com/toyz/roast/internal/utils"
	"github.com/toyz/roast/internal/utils/fileops"
)

// Defaults for roast new
const (
	DefaultFlavor  = "maven"
	DefaultGroupID = "rs.roast.gen"
)

// AuthorFunc returns the "Name <email>" used for the crate authors
type AuthorFunc func() (string, error)

// Options describes the project to create
type Options struct {
	Name    string // crate and artifact name, also the directory name
	Dir     string // parent directory; "" is the working directory
	Flavor  string
	GroupID string
	Author  AuthorFunc
	Logger  *zap.Logger
}

// Result lists what was created
type Result struct {
	Root   string
	Author string
	Files  []string
}

// GitAuthor reads user.name and user.email from the global git config
func GitAuthor() (string, error) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return "", errors.Wrap(err, "failed to read global git config")
	}
	if cfg.User.Name == "" {
		return "", errors.WithHint(errors.New("git user.name is not set"),
			"run: git config --global user.name \"Your Name\"")
	}
	if cfg.User.Email == "" {
		return cfg.User.Name, nil
	}
	return fmt.Sprintf("%s <%s>", cfg.User.Name, cfg.User.Email), nil
}

// Create scaffolds the project, initializes a git repository in it and
// renders every template of the flavor. An existing target is refused.
func Create(opts Options) (*Result, error) {
	opts = withDefaults(opts)
	logger := opts.Logger

	if err := validate(opts); err != nil {
		return nil, errors.ScaffoldError(opts.Name, err.Error())
	}

	ops := fileops.NewFileOps()
	root := filepath.Join(opts.Dir, opts.Name)
	if ops.Exists(root) {
		return nil, errors.ScaffoldError(opts.Name, fmt.Sprintf("directory %q already exists", root)).
			WithSuggestion("Choose another name or remove the directory")
	}

	author, err := opts.Author()
	if err != nil {
		logger.Warn("no author for the new project", zap.Error(err))
		author = ""
	}

	logger.Debug("initializing git repository", zap.String("root", root))
	if _, err := git.PlainInit(root, false); err != nil {
		return nil, errors.WrapCode(errors.ScaffoldErrorCode, "failed to initialize git repository", err).
			WithContext("target", root)
	}

	var authors []string
	if author != "" {
		authors = []string{author}
	}

	files, err := templates.RenderScaffold(opts.Flavor, templates.ScaffoldData{
		Name:     opts.Name,
		Library:  strings.ReplaceAll(opts.Name, "-", "_"),
		Authors:  authors,
		GroupID:  opts.GroupID,
		Artifact: opts.Name,
	})
	if err != nil {
		discard(ops, root, logger)
		return nil, errors.WrapTemplateError(opts.Flavor, "render", err)
	}

	result := &Result{Root: root, Author: author}
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file.Path))
		logger.Debug("creating file", zap.String("path", path))
		if err := ops.WriteFile(path, []byte(file.Content)); err != nil {
			discard(ops, root, logger)
			return nil, err
		}
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// discard removes a partially created project so the name can be reused
func discard(ops *fileops.FileOps, root string, logger *zap.Logger) {
	if err := ops.RemoveAll(root); err != nil {
		logger.Warn("failed to remove partial project", zap.String("root", root), zap.Error(err))
	}
}

func withDefaults(opts Options) Options {
	if opts.Flavor == "" {
		opts.Flavor = DefaultFlavor
	}
	if opts.GroupID == "" {
		opts.GroupID = DefaultGroupID
	}
	if opts.Author == nil {
		opts.Author = GitAuthor
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func validate(opts Options) error {
	name := utils.NewValidatorChain(utils.NotEmpty("name"), utils.IsValidCrateName("name"))
	if err := name.Validate(opts.Name); err != nil {
		return err
	}
	if err := utils.IsOneOf("flavor", templates.Flavors()...)(opts.Flavor); err != nil {
		return err
	}
	return utils.IsValidJavaPackage("groupid")(opts.GroupID)
}
