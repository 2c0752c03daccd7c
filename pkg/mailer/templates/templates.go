package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names.
const (
	VerifyEmail   = "verify_email"
	ResetPassword = "reset_password"
)

// EmailData carries the fields the embedded templates render.
type EmailData struct {
	Name      string
	ActionURL string
	ExpiresIn time.Duration
	AppName   string
}

// ToMap converts EmailData to a map for EmailJob.Data.
func ToMap(d EmailData) map[string]any {
	return map[string]any{
		"Name":      d.Name,
		"ActionURL": d.ActionURL,
		"ExpiresIn": d.ExpiresIn.String(),
		"AppName":   d.AppName,
	}
}

// SubjectFor returns the mail subject for a template name.
func SubjectFor(name string) string {
	switch name {
	case VerifyEmail:
		return "Please verify your email address"
	case ResetPassword:
		return "Password reset request"
	default:
		return "Notification"
	}
}

// RenderHTML loads and renders <name>.html.tmpl from the embedded FS.
func RenderHTML(name string, data any) (string, error) {
	filename := name + ".html.tmpl"
	tpl, err := htmpl.New(filename).ParseFS(FS, filename)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", filename, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", filename, err)
	}
	return buf.String(), nil
}
