package server

import (
	"html/template"
	"net/http"

	"github.com/UnknownOlympus/staffbook/internal/models"
)

var employeesTemplate = template.Must(template.New("employees").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Employees</title>
</head>
<body>
	<h1>Employees</h1>
	<p id="employee-count">{{len .}} employees</p>
	<table id="employees">
		<thead>
			<tr><th>ID</th><th>First name</th><th>Last name</th><th>Email</th><th>Address</th><th>Phone</th></tr>
		</thead>
		<tbody>
		{{- range .}}
			<tr data-id="{{if .ID}}{{.ID}}{{end}}">
				<td class="id">{{if .ID}}{{.ID}}{{end}}</td>
				<td class="firstname">{{.Firstname}}</td>
				<td class="lastname">{{.Lastname}}</td>
				<td class="email">{{if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}</td>
				<td class="address">{{.Address}}</td>
				<td class="phone">{{.Phone}}</td>
			</tr>
		{{- end}}
		</tbody>
	</table>
</body>
</html>
`))

// employeesPage renders every employee as an HTML table.
func (h *handler) employeesPage(w http.ResponseWriter, r *http.Request) {
	list, err := h.staff.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if list == nil {
		list = []models.Employee{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = employeesTemplate.Execute(w, list); err != nil {
		h.log.ErrorContext(r.Context(), "Failed to render employees page", "error", err)
	}
}
