package quest

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Stage names a point in a contract's life where the giver speaks.
type Stage string

const (
	StageOffer     Stage = "offer"
	StageAccepted  Stage = "accepted"
	StageReminder  Stage = "reminder"
	StageReady     Stage = "ready"
	StageSuccess   Stage = "success"
	StageCompleted Stage = "completed"
)

// Each stage falls back to a generated line when the catalog entry
// leaves that stage blank, so a giver always has something to say.
var stageTemplates = map[Stage]*template.Template{
	StageOffer:     stageTemplate("offer", `{{ .Dialog.Offer | default (printf "%s: %s" .Title .Description) }}`),
	StageAccepted:  stageTemplate("accepted", `{{ .Dialog.Accepted | default (printf "Mission accepted: %s." .Title) }}`),
	StageReminder:  stageTemplate("reminder", `{{ .Dialog.Reminder | default (printf "%s: %s" .Title .Description) }}`),
	StageReady:     stageTemplate("ready", `{{ .Dialog.Ready | default "You got it? Hand it over." }}`),
	StageSuccess:   stageTemplate("success", `{{ .Dialog.Success | default (printf "Mission complete: %s!" .Title) }}`),
	StageCompleted: stageTemplate("completed", `{{ .Dialog.Completed | default "We're square. Come back later." }}`),
}

func stageTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(sprig.FuncMap()).Parse(text))
}

// Line renders the giver's line for a contract stage.
func Line(m Mission, stage Stage) string {
	tmpl, ok := stageTemplates[stage]
	if !ok {
		return ""
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, m); err != nil {
		return m.Description
	}
	return sb.String()
}
