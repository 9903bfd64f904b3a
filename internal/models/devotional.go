package models

// Devotional is a read-only daily devotional entry shown on the home screen.
type Devotional struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Verse   string `json:"verse"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// SeedDevotionals returns the built-in devotional list. There is no mutation
// path for devotionals.
func SeedDevotionals() []Devotional {
	return []Devotional{
		{
			ID:      "dev-1",
			Title:   "A Suficiência da Graça",
			Verse:   "2 Coríntios 12:9",
			Content: "A graça de Deus não remove o espinho, mas sustenta o servo em meio a ele. O poder se aperfeiçoa na fraqueza.",
			Date:    "2024-01-01",
		},
		{
			ID:      "dev-2",
			Title:   "O Pastor e as Ovelhas",
			Verse:   "Salmos 23:1",
			Content: "Quando o Senhor é o pastor, nada falta à ovelha. A confiança do salmista nasce do caráter de quem conduz.",
			Date:    "2024-01-02",
		},
		{
			ID:      "dev-3",
			Title:   "Todas as Coisas",
			Verse:   "Romanos 8:28",
			Content: "A providência divina coopera em todas as circunstâncias para o bem daqueles que amam a Deus e são chamados segundo o seu propósito.",
			Date:    "2024-01-03",
		},
	}
}
