package knowledge

import (
	"context"
	"strings"
)

// Repository is the in-memory reference database. Lookups are keyword
// scans over a small seeded table; it stands behind the Retriever
// interface so a real parts database can replace it without touching the
// analysis path.
type Repository struct {
	components []Component
	standards  []Standard
}

var _ Retriever = (*Repository)(nil)

// NewRepository builds the repository with the built-in seed data.
func NewRepository() *Repository {
	return &Repository{
		components: seedComponents(),
		standards:  seedStandards(),
	}
}

const maxResults = 5

// Retrieve matches components by part number or keyword against the
// query text and standards by hardware domain. Compliance-flavored
// intents pull in standards even without a direct domain match.
func (r *Repository) Retrieve(_ context.Context, intent, domain, text string) (Context, error) {
	norm := strings.ToLower(text)
	var out Context

	for _, c := range r.components {
		if len(out.Components) >= maxResults {
			break
		}
		if strings.Contains(norm, strings.ToLower(c.PartNumber)) {
			out.Components = append(out.Components, c)
			continue
		}
		for _, k := range c.Keywords {
			if strings.Contains(norm, k) {
				out.Components = append(out.Components, c)
				break
			}
		}
	}

	complianceIntent := intent == "compliance_checking" || intent == "design_validation"
	for _, s := range r.standards {
		if len(out.Standards) >= maxResults {
			break
		}
		if hasDomain(s.Domains, domain) {
			out.Standards = append(out.Standards, s)
			continue
		}
		if complianceIntent && strings.Contains(norm, strings.ToLower(s.Name)) {
			out.Standards = append(out.Standards, s)
		}
	}

	return out, nil
}

func hasDomain(domains []string, domain string) bool {
	for _, d := range domains {
		if d == domain {
			return true
		}
	}
	return false
}

func seedComponents() []Component {
	return []Component{
		{
			PartNumber:  "2N3904",
			Category:    "bipolar transistor",
			Description: "General-purpose NPN transistor, 40V, 200mA, TO-92",
			Domains:     []string{"analog_rf", "consumer"},
			Keywords:    []string{"npn transistor"},
		},
		{
			PartNumber:  "LM317",
			Category:    "linear regulator",
			Description: "Adjustable positive linear regulator, 1.2V to 37V, 1.5A",
			Domains:     []string{"power_electronics"},
			Keywords:    []string{"adjustable regulator"},
		},
		{
			PartNumber:  "TPS54331",
			Category:    "switching regulator",
			Description: "3A 28V step-down converter with Eco-mode",
			Domains:     []string{"power_electronics", "automotive"},
			Keywords:    []string{"buck converter", "step-down"},
		},
		{
			PartNumber:  "STM32F407",
			Category:    "microcontroller",
			Description: "ARM Cortex-M4 MCU, 168MHz, 1MB flash, FPU",
			Domains:     []string{"embedded_hardware", "digital_design"},
			Keywords:    []string{"cortex-m4", "stm32"},
		},
		{
			PartNumber:  "AD8051",
			Category:    "operational amplifier",
			Description: "Low-cost rail-to-rail amplifier, 110MHz bandwidth",
			Domains:     []string{"analog_rf"},
			Keywords:    []string{"rail-to-rail op-amp"},
		},
		{
			PartNumber:  "ESP32-S3",
			Category:    "wireless soc",
			Description: "Dual-core Xtensa SoC with Wi-Fi and BLE for IoT designs",
			Domains:     []string{"embedded_hardware", "consumer"},
			Keywords:    []string{"esp32", "wifi soc"},
		},
	}
}

func seedStandards() []Standard {
	return []Standard{
		{
			Name:    "AEC-Q100",
			Title:   "Failure mechanism based stress test qualification for integrated circuits",
			Domains: []string{"automotive"},
			Summary: "Qualification requirements for ICs in automotive applications, graded by operating temperature range",
		},
		{
			Name:    "ISO 26262",
			Title:   "Road vehicles - functional safety",
			Domains: []string{"automotive"},
			Summary: "Functional safety lifecycle for automotive E/E systems, ASIL A through D",
		},
		{
			Name:    "IEC 60601-1",
			Title:   "Medical electrical equipment - general requirements for basic safety",
			Domains: []string{"medical"},
			Summary: "Safety and essential performance requirements including patient leakage current limits",
		},
		{
			Name:    "IEC 61508",
			Title:   "Functional safety of electrical/electronic safety-related systems",
			Domains: []string{"industrial"},
			Summary: "SIL-based functional safety framework for industrial control systems",
		},
		{
			Name:    "MIL-STD-883",
			Title:   "Test method standard for microcircuits",
			Domains: []string{"industrial"},
			Summary: "Environmental, mechanical and electrical test methods for military-grade microcircuits",
		},
	}
}
