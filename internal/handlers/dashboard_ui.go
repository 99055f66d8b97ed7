package handlers

import "strings"

// RenderDashboardHTML fills the template variables of the embedded
// dashboard page.
func RenderDashboardHTML(templateHTML, version string) string {
	html := strings.ReplaceAll(templateHTML, "{{.Title}}", "Funnelboard Dashboard")
	html = strings.ReplaceAll(html, "{{.Version}}", version)
	return html
}
