package provision

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"text/template"

	"bucket-provisioner/core/urlhelper"

	"go.uber.org/zap"
)

var helperFuncs = template.FuncMap{"quote": strconv.Quote}

var goHelper = template.Must(template.New("go").Funcs(helperFuncs).Parse(`// Code generated by bucket-provisioner. DO NOT EDIT.

package {{.Package}}

const (
	// Bucket holds the uploaded images.
	Bucket = {{quote .Bucket}}
	// PathPrefix is prepended to every image name inside Bucket.
	PathPrefix = {{quote .PathPrefix}}
	// BaseURL is the platform endpoint serving public objects.
	BaseURL = {{quote .BaseURL}}
)

// {{.Func}} returns the public URL of the named image.
func {{.Func}}(name string) string {
	return BaseURL + "/storage/v1/object/public/" + Bucket + "/" + PathPrefix + name
}
`))

var tsHelper = template.Must(template.New("ts").Funcs(helperFuncs).Parse(`// Generated by bucket-provisioner. Do not edit.

export const BUCKET = {{quote .Bucket}};
export const PATH_PREFIX = {{quote .PathPrefix}};
export const BASE_URL = {{quote .BaseURL}};

export const {{.Func}} = (name: string): string =>
  BASE_URL + "/storage/v1/object/public/" + BUCKET + "/" + PATH_PREFIX + name;
`))

// HelperData is interpolated into the helper template.
type HelperData struct {
	Package    string
	Func       string
	Bucket     string
	PathPrefix string
	BaseURL    string
}

// RenderHelper renders the helper source for language.
func RenderHelper(language string, data HelperData) ([]byte, error) {
	var tmpl *template.Template
	switch language {
	case urlhelper.LanguageGo, "":
		tmpl = goHelper
	case urlhelper.LanguageTypeScript:
		tmpl = tsHelper
	default:
		return nil, fmt.Errorf("unsupported helper language: %s", language)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render helper: %w", err)
	}
	if tmpl != goHelper {
		return buf.Bytes(), nil
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated helper is not valid Go: %w", err)
	}
	return src, nil
}

// WriteHelper renders the helper and writes it, replacing any previous
// version. The helper directory is created when missing.
func (p *Provisioner) WriteHelper() (string, error) {
	h := p.opts.Helper
	src, err := RenderHelper(h.Language, HelperData{
		Package:    h.PackageName(),
		Func:       h.FuncName(),
		Bucket:     p.opts.Bucket.Name,
		PathPrefix: p.opts.Bucket.PathPrefix,
		BaseURL:    p.opts.BaseURL,
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create helper directory %s: %w", h.Dir, err)
	}

	path := h.Path()
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("failed to write helper %s: %w", path, err)
	}

	p.logger.Info("Helper written", zap.String("path", path), zap.String("language", h.Language))
	return path, nil
}
