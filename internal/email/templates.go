package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const (
	TemplateEnquiryNotification = "enquiry_notification"
	TemplateEnquiryReceipt      = "enquiry_receipt"
)

// TemplateManager holds parsed html templates by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			panic(err)
		}
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

var builtinTemplates = map[string]string{
	TemplateEnquiryNotification: `<h2>New {{.Type}} from {{.Name}}</h2>
<table>
<tr><td>Email</td><td>{{.Email}}</td></tr>
{{if .Phone}}<tr><td>Phone</td><td>{{.Phone}}</td></tr>{{end}}
{{if .PackageName}}<tr><td>Package</td><td><a href="{{.PackageURL}}">{{.PackageName}}</a></td></tr>{{end}}
{{if .TravelDate}}<tr><td>Travel date</td><td>{{.TravelDate}}</td></tr>{{end}}
<tr><td>Travellers</td><td>{{.Travelers}}</td></tr>
</table>
{{if .Message}}<p>{{.Message}}</p>{{end}}
<p><a href="{{.AdminURL}}">Open in dashboard</a></p>`,

	TemplateEnquiryReceipt: `<p>Hi {{.Name}},</p>
<p>Thanks for getting in touch{{if .PackageName}} about <strong>{{.PackageName}}</strong>{{end}}. Our travel desk will contact you shortly.</p>
<p>Reference: {{.Reference}}</p>`,
}
