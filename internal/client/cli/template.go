package cli

import (
	"fmt"
	"text/template"
	"time"
)

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"date": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04")
	},
	"weight": func(w float64) string {
		return fmt.Sprintf("%g kg", w)
	},
	"check": func(done bool) string {
		if done {
			return "[x]"
		}
		return "[ ]"
	},
}

const trainingTemplate = `
=== Training Details ===

Name:    {{.Name}}
ID:      {{.ID}}
Created: {{date .CreatedAt}}

Exercises:
{{- range $i, $ex := .Exercises}}
  {{inc $i}}. {{$ex.Name}} ({{$ex.ExerciseID}})
{{- if $ex.TargetReps}} {{$ex.TargetReps}} reps{{end}}
{{- if $ex.TargetWeight}} @ {{weight $ex.TargetWeight}}{{end}}
{{- if $ex.Notes}}
     {{$ex.Notes}}
{{- end}}
{{- end}}
`

const sessionTemplate = `
=== Session Details ===

Name:     {{.Name}}
ID:       {{.ID}}
Training: {{.TrainingID}}
Status:   {{.Status}}
Started:  {{date .StartedAt}}
{{- if .FinishedAt}}
Finished: {{date .FinishedAt}}
{{- end}}
{{range $i, $ex := .Exercises}}
{{$i}}. {{$ex.Name}}
{{- range $j, $s := $ex.Series}}
   {{$j}} {{check $s.Checked}} {{$s.Reps}} x {{weight $s.Weight}}
{{- end}}
{{- end}}
`

const statsTemplate = `
=== {{.ExerciseID}} ===

Sessions:   {{.Sessions}}
Series:     {{.Series}}
Total reps: {{.TotalReps}}
Max weight: {{weight .MaxWeight}}
Volume:     {{weight .Volume}}
{{- if .LastPerformed}}
Last:       {{date .LastPerformed}}
{{- end}}
{{- if .History}}

History:
{{- range .History}}
  {{date .Date}}  {{.Reps}} reps, max {{weight .MaxWeight}}, volume {{weight .Volume}}
{{- end}}
{{- end}}
`

var (
	trainingTmpl = template.Must(template.New("training").Funcs(funcs).Parse(trainingTemplate))
	sessionTmpl  = template.Must(template.New("session").Funcs(funcs).Parse(sessionTemplate))
	statsTmpl    = template.Must(template.New("stats").Funcs(funcs).Parse(statsTemplate))
)
