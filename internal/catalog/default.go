package catalog

// Well-known category names. The tables are data; these constants only
// exist so wiring code and tests do not scatter string literals.
const (
	IntentGeneralInquiry = "general_inquiry"
	DomainUnspecified    = "unspecified_domain"
)

// Default returns the built-in routing catalog. A YAML file loaded through
// LoadFile overrides it section by section; the defaults are the reference
// configuration the test suite is written against.
func Default() *Catalog {
	return &Catalog{
		Version:        "1.0.0",
		MatchThreshold: 0.25,
		NotableSignal:  0.5,
		DefaultIntent:  IntentGeneralInquiry,
		DefaultDomain:  DomainUnspecified,

		Intents: []IntentCategory{
			{
				Name:           "compliance_checking",
				Priority:       1,
				Description:    "AEC-Q100 verification, EMC standards adherence, safety regulation compliance",
				BaseComplexity: 0.9,
				Patterns: []string{
					"compliance", "aec-q100", "iso 26262", "iec 60601", "functional safety",
					"asil", "sil", "certification", "qualification", "regulation", "standard",
					"safety", "risk assessment", "hazard analysis", "automotive grade",
					"medical grade", "emc",
				},
			},
			{
				Name:           "design_validation",
				Priority:       2,
				Description:    "Design review protocols, margin analysis, worst-case scenario evaluation",
				BaseComplexity: 0.8,
				Patterns: []string{
					"validation", "verification", "design review", "margin analysis",
					"worst-case", "monte carlo", "sensitivity analysis", "tolerance",
					"reliability", "mtbf", "derating", "corner analysis", "stress analysis",
				},
			},
			{
				Name:           "signal_integrity",
				Priority:       3,
				Description:    "Impedance matching, crosstalk mitigation, EMI suppression techniques",
				BaseComplexity: 0.8,
				Patterns: []string{
					"impedance", "crosstalk", "signal integrity", "transmission line",
					"reflection", "ringing", "ground plane", "differential", "shielding",
					"termination", "eye diagram",
				},
			},
			{
				Name:           "thermal_analysis",
				Priority:       4,
				Description:    "Heat sink calculations, power dissipation modeling, thermal resistance analysis",
				BaseComplexity: 0.7,
				Patterns: []string{
					"thermal", "heat sink", "heatsink", "junction temperature", "temperature",
					"power dissipation", "thermal resistance", "cooling", "airflow",
					"thermal management", "heat transfer",
				},
			},
			{
				Name:           "component_selection",
				Priority:       5,
				Description:    "Microcontroller evaluation, power IC comparison, sensor selection criteria",
				BaseComplexity: 0.5,
				Patterns: []string{
					"compare", "select", "selection", "recommendation", "alternative",
					"substitute", "equivalent", "evaluation", "microcontroller", "mcu",
					"sensor", "voltage regulator", "ldo", "arm cortex", "better than",
				},
			},
			{
				Name:           "circuit_analysis",
				Priority:       6,
				Description:    "Buck converter design optimization, op-amp configuration analysis, filter topology selection",
				BaseComplexity: 0.6,
				Patterns: []string{
					"circuit", "buck converter", "boost converter", "op-amp",
					"operational amplifier", "filter", "topology", "gain",
					"frequency response", "stability", "feedback", "compensation",
					"optimization", "analysis", "design",
				},
			},
			{
				Name:           "troubleshooting",
				Priority:       7,
				Description:    "Failure mode analysis, measurement interpretation, debug methodology",
				BaseComplexity: 0.6,
				Patterns: []string{
					"troubleshoot", "debug", "failure", "fault", "not working", "broken",
					"diagnosis", "root cause", "fmea", "oscilloscope", "multimeter",
					"intermittent",
				},
			},
			{
				Name:           "cost_optimization",
				Priority:       8,
				Description:    "BOM cost reduction strategies, alternative sourcing, volume pricing analysis",
				BaseComplexity: 0.4,
				Patterns: []string{
					"cost", "bom", "price", "budget", "sourcing", "supplier", "cheaper",
					"lower cost", "volume pricing", "value engineering", "procurement",
				},
			},
			{
				Name:           "lifecycle_management",
				Priority:       9,
				Description:    "Obsolescence monitoring, availability assessment, migration planning",
				BaseComplexity: 0.5,
				Patterns: []string{
					"obsolescence", "end-of-life", "eol", "lifecycle", "availability",
					"migration", "replacement", "roadmap", "supply chain", "legacy",
					"long-term",
				},
			},
			{
				Name:           "schematic_review",
				Priority:       10,
				Description:    "Schematic walkthroughs, connectivity checks, symbol and pinout review",
				BaseComplexity: 0.6,
				Patterns: []string{
					"schematic", "netlist", "wiring", "connection", "pinout", "symbol",
					"layout review",
				},
			},
			{
				Name:           "educational_content",
				Priority:       11,
				Description:    "Circuit principle explanations, component fundamentals, methodology guidance",
				BaseComplexity: 0.3,
				Patterns: []string{
					"explain", "how does", "what is", "why does", "principle",
					"fundamental", "basics", "theory", "concept", "tutorial", "learn",
					"understanding",
				},
			},
			{
				Name:           IntentGeneralInquiry,
				Priority:       12,
				Description:    "Fallback for queries that match no specialized intent",
				BaseComplexity: 0.3,
				Patterns:       nil,
			},
		},

		Domains: []DomainCategory{
			{
				Name:             "medical",
				Priority:         1,
				Description:      "IEC 60601 compliance, biocompatibility, patient safety isolation",
				ComplexityWeight: 1.5,
				Patterns: []string{
					"medical", "iec 60601", "patient", "biocompatibility",
					"leakage current", "defibrillation", "sterilization", "healthcare",
				},
			},
			{
				Name:             "automotive",
				Priority:         2,
				Description:      "AEC-Q100 qualified components, ISO 26262 functional safety, EMC compliance",
				ComplexityWeight: 1.4,
				Patterns: []string{
					"automotive", "aec-q100", "iso 26262", "asil", "ecu", "can bus",
					"lin", "flexray", "vibration", "under hood", "emi",
					"temperature cycling",
				},
			},
			{
				Name:             "analog_rf",
				Priority:         3,
				Description:      "Op-amps, filters, signal conditioning, RF circuits, mixed-signal design",
				ComplexityWeight: 1.3,
				Patterns: []string{
					"analog", "op-amp", "opamp", "operational amplifier", "filter", "rf",
					"mixer", "amplifier", "adc", "dac", "comparator",
					"signal conditioning", "instrumentation",
				},
			},
			{
				Name:             "power_electronics",
				Priority:         4,
				Description:      "Buck/boost converters, LDOs, switching regulators, power management ICs",
				ComplexityWeight: 1.2,
				Patterns: []string{
					"power supply", "buck", "boost", "ldo", "smps", "pmic", "regulator",
					"converter", "dc-dc", "ripple", "power management",
				},
			},
			{
				Name:             "industrial",
				Priority:         5,
				Description:      "Motor drives, industrial sensors, PLC interfaces, fieldbus protocols",
				ComplexityWeight: 1.2,
				Patterns: []string{
					"industrial", "plc", "modbus", "profibus", "ethercat", "4-20ma",
					"motor drive", "isolation", "noise immunity",
				},
			},
			{
				Name:             "digital_design",
				Priority:         6,
				Description:      "Microcontrollers, FPGAs, logic circuits, digital signal processing",
				ComplexityWeight: 1.1,
				Patterns: []string{
					"digital", "fpga", "verilog", "vhdl", "logic", "flip-flop",
					"state machine", "dsp", "microcontroller", "cpu", "memory",
				},
			},
			{
				Name:             "embedded_hardware",
				Priority:         7,
				Description:      "MCU selection, peripheral interfaces, system integration, real-time constraints",
				ComplexityWeight: 1.0,
				Patterns: []string{
					"embedded", "mcu", "peripheral", "uart", "spi", "i2c", "can bus",
					"usb", "rtos", "interrupt", "dma", "firmware", "real-time",
				},
			},
			{
				Name:             "consumer",
				Priority:         8,
				Description:      "Cost optimization, miniaturization, battery life, user experience",
				ComplexityWeight: 0.8,
				Patterns: []string{
					"consumer", "battery", "portable", "wearable", "iot", "low power",
					"cost", "miniaturization", "wireless", "charging",
				},
			},
		},

		Tiers: []ModelTier{
			{
				ModelID:       "gpt-4o-mini",
				MinComplexity: 0.0,
				MaxComplexity: 0.4,
				CostWeight:    1.0,
				Strengths:     []string{"educational_content", "lifecycle_management"},
				Description:   "Simple specification lookups and basic information retrieval",
			},
			{
				ModelID:       "gpt-4o",
				MinComplexity: 0.4,
				MaxComplexity: 0.6,
				CostWeight:    3.0,
				Strengths:     []string{"educational_content", "circuit_analysis", "troubleshooting", "schematic_review"},
				Description:   "General hardware engineering knowledge and education",
			},
			{
				ModelID:       "grok-2",
				MinComplexity: 0.6,
				MaxComplexity: 0.8,
				CostWeight:    5.0,
				Strengths:     []string{"component_selection", "cost_optimization", "lifecycle_management"},
				Description:   "Component selection and trade-off analysis",
			},
			{
				ModelID:       "claude-sonnet-4",
				MinComplexity: 0.8,
				MaxComplexity: 1.0,
				CostWeight:    8.0,
				Strengths:     []string{"compliance_checking", "design_validation", "signal_integrity", "thermal_analysis"},
				Description:   "Complex hardware analysis requiring deep domain expertise",
			},
		},

		SignalWeights: []SignalWeight{
			{Name: SignalTechnicalDensity, Weight: 0.15},
			{Name: SignalStandardsMention, Weight: 0.25},
			{Name: SignalConstraintCount, Weight: 0.10},
			{Name: SignalDomainSpecificity, Weight: 0.10},
			{Name: SignalComparative, Weight: 0.20},
			{Name: SignalSpecificity, Weight: 0.15},
			{Name: SignalAnalysisDepth, Weight: 0.05},
		},

		Lexicon: Lexicon{
			TechnicalTerms: []string{
				"optimization", "analysis", "simulation", "modeling", "algorithm",
				"impedance", "emi", "emc", "thermal", "junction", "temperature",
				"efficiency", "ripple", "inductor", "capacitor", "resistor",
				"transistor", "mosfet", "diode", "converter", "regulator", "buck",
				"boost", "ldo", "microcontroller", "mcu", "fpga", "dsp", "adc", "dac",
				"gpio", "uart", "spi", "i2c", "usb", "pwm", "rtos", "interrupt",
				"firmware", "schematic", "netlist", "pcb", "crosstalk", "shielding",
				"bandwidth", "gain", "phase", "stability", "feedback", "compensation",
				"noise", "distortion", "voltage", "current", "power", "frequency",
				"rf", "antenna", "oscillator", "clock", "timing", "latency",
				"derating", "tolerance", "reliability", "mtbf", "automotive",
				"medical", "industrial", "iot", "wearable", "battery", "sensor",
				"actuator", "amplifier", "opamp", "comparator", "filter", "arm",
				"cortex", "esp32", "stm32", "avr", "pic", "qualification",
				"certification", "compliance", "safety", "functional", "grade",
				"asil", "sil", "iso", "iec", "aec", "ul", "fcc", "datasheet",
				"footprint", "package", "pinout", "bom", "isolation", "dissipation",
				"heatsink", "topology",
			},
			StandardsTokens: []string{
				"aec-q100", "aec-q200", "iso 26262", "iec 60601", "iec 61508",
				"iso 13485", "mil-std-883", "asil", "functional safety",
				"automotive grade", "medical grade",
			},
			ConstraintGroups: []ConstraintGroup{
				{Name: "thermal", Terms: []string{"thermal", "temperature", "junction", "heat", "cooling", "heatsink", "dissipation"}},
				{Name: "emi", Terms: []string{"emi", "emc", "interference", "crosstalk", "shielding"}},
				{Name: "cost", Terms: []string{"cost", "price", "budget", "bom", "cheap", "affordable"}},
				{Name: "timing", Terms: []string{"timing", "latency", "deadline", "real-time", "jitter"}},
				{Name: "safety", Terms: []string{"safety", "asil", "sil", "hazard", "fail-safe", "redundancy"}},
				{Name: "power", Terms: []string{"power", "efficiency", "consumption", "battery", "low power"}},
				{Name: "compliance", Terms: []string{"compliance", "qualification", "certification", "regulation", "aec-q100", "iso 26262", "iec 60601"}},
				{Name: "reliability", Terms: []string{"reliability", "mtbf", "lifetime", "derating", "endurance"}},
			},
			ComparativeCues: []string{
				"compare", "comparison", "versus", "vs", "alternative", "alternatives",
				"trade-off", "tradeoff", "better than", "difference between",
				"substitute", "equivalent",
			},
			CalculationCues: []string{
				"calculate", "calculation", "compute", "derive", "formula", "equation",
				"design", "analysis", "analyze", "optimization", "optimize",
				"simulation", "simulate", "modeling", "evaluate",
			},
		},

		Context: ContextAdjustment{
			Expert:       0.08,
			Senior:       0.05,
			Novice:       -0.08,
			LatePhase:    0.02,
			ConceptPhase: -0.02,
			Cap:          0.10,
		},
	}
}
