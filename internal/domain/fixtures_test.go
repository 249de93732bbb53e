package domain

func alpha(v float64) *float64 { return &v }

func scales(names ...string) []Scale {
	out := make([]Scale, len(names))
	for i, n := range names {
		out[i] = Scale{Name: n}
	}
	return out
}

// testCatalog is a trimmed copy of a few real entries
func testCatalog() []Questionnaire {
	return []Questionnaire{
		{
			Name:  "System Usability Scale",
			Short: "SUS",
			Data:  []LocalizedData{{Language: "EN", Scales: scales("Usability")}},
			Metadata: Metadata{
				Time:      []Time{TimePostStudy},
				Languages: []string{"EN", "DE"},
			},
		},
		{
			Name:  "User Experience Questionnaire - Short",
			Short: "UEQ-S",
			Data: []LocalizedData{{
				Language: "EN",
				Scales: []Scale{
					{Name: "Hedonic", CronbachsAlpha: alpha(0.81)},
					{Name: "Pragmatic", CronbachsAlpha: alpha(0.85)},
				},
				ParticipantDetails: &ParticipantDetails{N: 31, Types: []string{"Students"}},
			}},
			Metadata: Metadata{
				Time:      []Time{TimePostStudy},
				Languages: []string{"DE", "EN", "FR"},
			},
		},
		{
			Name:  "Robot Interaction Questionnaire",
			Short: "ACIR-Q",
			Data:  []LocalizedData{{Language: "EN", Scales: scales("Social", "task")}},
			Metadata: Metadata{
				Time:      []Time{TimePreStudy, TimeStandalone},
				Languages: []string{"DE", "EN"},
			},
		},
		{
			Name:  "Trust in Automation",
			Short: "TiA",
			Data: []LocalizedData{
				{Language: "EN", Scales: scales("Reliability", "Familiarity")},
				{Language: "DE", Scales: scales("Reliability", "Vertrautheit")},
			},
			Metadata: Metadata{
				Time:      []Time{TimePostStudy},
				Languages: []string{"EN", "DE"},
			},
		},
		{
			Name:  "AttrakDiff",
			Short: "AttrakDiff",
			Data:  []LocalizedData{{Language: "DE", Scales: scales("Hedonische Qualität")}},
			Metadata: Metadata{
				Time:      []Time{TimePostStudy},
				Languages: []string{"DE"},
			},
		},
	}
}

func shorts(qs []Questionnaire) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Short
	}
	return out
}
