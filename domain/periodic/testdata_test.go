package periodic

func sampleRows() []Row {
	return []Row{
		{TypeCode: "INTJ", Category: "Analyst", Personality: "Architect", Group: "2", GroupName: `Inner\nWorld`, Period: "1", AtomicNumber: "2", Symbol: "Pl", ElementName: `Long-term\nPlanning`, Excerpt: `Always\nplanning`, Color: "#F4B183"},
		{TypeCode: "INTJ", Category: "Analyst", Personality: "Architect", Group: "1", GroupName: "Strengths", Period: "1", AtomicNumber: "1", Symbol: "Lo", ElementName: "Logic", Excerpt: "Cold logic", Color: "#9DC3E6"},
		{TypeCode: "INTJ", Category: "Analyst", Personality: "Architect", Group: "1", GroupName: "Strengths", Period: "2", AtomicNumber: "3", Symbol: "In", ElementName: "Independence", Excerpt: "Alone", Color: "#9DC3E6"},
		{TypeCode: "INFP", Category: "Diplomat", Personality: "Mediator", Group: "1", GroupName: "Strengths", Period: "1", AtomicNumber: "1", Symbol: "Em", ElementName: "Empathy", Excerpt: "Feels", Color: "#A9D18E"},
		{TypeCode: "nan", Category: "", Personality: "", Group: "", GroupName: "", Period: "", AtomicNumber: "", Symbol: "", ElementName: "", Excerpt: "", Color: ""},
		{TypeCode: "ENTJX", Category: "Bad", Personality: "Row", Group: "9", GroupName: "X", Period: "9", AtomicNumber: "9", Symbol: "X", ElementName: "X", Excerpt: "X", Color: "#000000"},
	}
}
