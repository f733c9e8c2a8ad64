package promotion

import "strings"

type ConsultationMode string

const (
	// ConsultationGenerated keeps the text derived from the selected
	// services; every selection change regenerates it.
	ConsultationGenerated ConsultationMode = "generated"
	// ConsultationOverridden latches a manual edit; regeneration stops
	// until an explicit reset.
	ConsultationOverridden ConsultationMode = "overridden"
)

// ConsultationSteps is the procedure text shown to reception alongside a
// promotion. It is either generated from the selected services or manually
// overridden; the two variants make the latch explicit.
type ConsultationSteps struct {
	mode ConsultationMode
	text string
}

func GeneratedConsultation(services []PromotionService) ConsultationSteps {
	return ConsultationSteps{mode: ConsultationGenerated, text: generateConsultationText(services)}
}

func ReconstructConsultation(mode ConsultationMode, text string) ConsultationSteps {
	if mode != ConsultationOverridden {
		mode = ConsultationGenerated
	}
	return ConsultationSteps{mode: mode, text: text}
}

func (c ConsultationSteps) Mode() ConsultationMode { return c.mode }
func (c ConsultationSteps) Text() string           { return c.text }
func (c ConsultationSteps) IsOverridden() bool     { return c.mode == ConsultationOverridden }

// regenerate recomputes the text from the current selection unless a manual
// override is latched.
func (c ConsultationSteps) regenerate(services []PromotionService) ConsultationSteps {
	if c.mode == ConsultationOverridden {
		return c
	}
	return GeneratedConsultation(services)
}

func (c ConsultationSteps) override(text string) ConsultationSteps {
	return ConsultationSteps{mode: ConsultationOverridden, text: text}
}

func (c ConsultationSteps) reset(services []PromotionService) ConsultationSteps {
	return GeneratedConsultation(services)
}

func generateConsultationText(services []PromotionService) string {
	blocks := make([]string, 0, len(services))
	for _, svc := range services {
		if svc.ConsultationNote == "" {
			continue
		}
		blocks = append(blocks, svc.Name+"\n"+svc.ConsultationNote)
	}
	return strings.Join(blocks, "\n\n")
}
